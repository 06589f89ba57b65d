package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/swapcheck/codebase"
	"github.com/dhamidi/swapcheck/swap"
)

func newLSPCmd() *cobra.Command {
	var annotation string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Long: `Start a language server on stdin/stdout that publishes swap contract
violations as diagnostics when documents are opened, changed or saved.
The workspace's .swapcheck.yaml is read on initialization.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := codebase.NewLSPServer(version, swap.WithAnnotation(annotation))
			return server.RunStdio()
		},
	}

	cmd.Flags().StringVar(&annotation, "annotation", "", "override the configured swap annotation, matched by simple name")

	return cmd
}
