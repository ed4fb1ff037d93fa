package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/split-it/splitit/internal/devserver"
)

// newRenderCmd implements 'splitit render'.
func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print the HTML of the initial view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if err := devserver.Prerender(out); err != nil {
				return err
			}
			_, err := fmt.Fprintln(out)
			return err
		},
	}
}
