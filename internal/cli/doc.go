package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"docsearch/internal/api"
)

func newDocCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "doc <id>",
		Short: "Print a full document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			client, err := root.client()
			if err != nil {
				return err
			}

			doc, err := client.Document(cmd.Context(), args[0])
			if errors.Is(err, api.ErrNotFound) {
				return fmt.Errorf("no document with id %q", args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to fetch document: %w", err)
			}

			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), doc)
			}
			return writeDocumentText(cmd.OutOrStdout(), doc)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, json")
	return cmd
}
