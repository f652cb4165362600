package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// pagerCommand shows text in the ov pager.
// It satisfies tea.ExecCommand so bubbletea releases the terminal while it runs.
type pagerCommand struct {
	content string
}

func (c *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Don't write the document back to the terminal on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	if err := root.Run(); err != nil {
		return fmt.Errorf("pager exited: %w", err)
	}
	return nil
}

// ov opens the tty itself
func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

// openPager returns a command that pages content and reports back with pagerExitMsg
func openPager(id, content string) tea.Cmd {
	return tea.Exec(&pagerCommand{content: content}, func(err error) tea.Msg {
		return pagerExitMsg{id: id, err: err}
	})
}
