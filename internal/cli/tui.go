package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"docsearch/internal/api"
	"docsearch/internal/eventbus"
	"docsearch/internal/search"
	"docsearch/internal/ui"
)

// ErrNotTerminal is returned when the interactive UI is started without a terminal
var ErrNotTerminal = errors.New("interactive mode needs a terminal; use 'docsearch search <query>' instead")

var isTerminal = func(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// runTUI wires the event bus, search service and UI together and runs the program
func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	if !isTerminal(os.Stdin.Fd()) || !isTerminal(os.Stdout.Fd()) {
		return ErrNotTerminal
	}
	cfg := opts.cfg

	client, err := opts.client()
	if err != nil {
		return err
	}

	bus := eventbus.New()
	defer bus.Close()

	docs := api.NewCachedDocuments(client, cfg.Search.DocCacheSize)
	svc := search.NewService(bus, client, docs, cfg.Timeout())
	defer svc.Close()

	model := ui.NewModel(bus, cfg)

	programOpts := []tea.ProgramOption{tea.WithContext(cmd.Context())}
	if cfg.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, programOpts...)

	// Completions re-enter the UI loop as messages
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	for _, eventType := range []eventbus.EventType{
		eventbus.EventSearchCompleted,
		eventbus.EventSearchFailed,
		eventbus.EventDocumentLoaded,
		eventbus.EventDocumentFailed,
	} {
		unsubscribe := bus.Subscribe(eventType, forward)
		defer unsubscribe()
	}

	log.Info().Str("api", client.BaseURL()).Msg("starting UI")
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && cmd.Context().Err() != nil {
			log.Info().Msg("interrupted")
			return nil
		}
		return fmt.Errorf("failed to run program: %w", err)
	}
	log.Info().Msg("UI exited normally")
	return nil
}
