package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the splitit command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "splitit",
		Short: "Split-It development tooling",
		Long: `Tooling for the Split-It counter view.

The view itself runs in the browser as WebAssembly. These commands host the
build locally and print the server-side render of the initial view.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newRenderCmd())
	return root
}
