package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"docsearch/internal/domain"
)

// searchOptions holds CLI flags for search
type searchOptions struct {
	page   int
	size   int
	format string
}

func newSearchCmd(root *rootOptions) *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run one search and print the results",
		Long: `Run one search against the API and print a page of results.

Examples:
  docsearch search germany
  docsearch search "climate change" --page 2 --size 5
  docsearch search germany --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, root, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "Page number, starting at 1")
	cmd.Flags().IntVarP(&opts.size, "size", "n", 0, "Results per page (default from config)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "Output format: text, json")

	return cmd
}

func runSearch(cmd *cobra.Command, root *rootOptions, query string, opts searchOptions) error {
	if err := checkFormat(opts.format); err != nil {
		return err
	}
	if opts.page < 1 {
		return fmt.Errorf("--page must be at least 1")
	}
	size := opts.size
	if size <= 0 {
		size = root.cfg.Search.PageSize
	}

	client, err := root.client()
	if err != nil {
		return err
	}

	q := domain.SearchQuery{Text: query, Page: opts.page, Size: size}
	start := time.Now()
	resp, err := client.Search(cmd.Context(), q)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	log.Debug().Str("query", query).Int("total", resp.Total).Dur("elapsed", elapsed).Msg("search completed")

	if opts.format == formatJSON {
		return writeJSON(cmd.OutOrStdout(), searchOutput{
			Query:      q.Text,
			Page:       q.Page,
			Size:       q.Size,
			Total:      resp.Total,
			ElapsedMs:  elapsed.Milliseconds(),
			Suggestion: resp.Suggestion,
			Results:    resp.Results,
		})
	}
	return writeSearchText(cmd.OutOrStdout(), q, resp, elapsed, root.cfg.UI.SnippetLength)
}
