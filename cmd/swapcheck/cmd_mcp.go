package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/swapcheck/mcpserver"
)

func newMCPCmd() *cobra.Command {
	var flags configFlags

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the check_swap_contracts tool over MCP on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			p, err := loadProject(cfg)
			if err != nil {
				return err
			}
			return mcpserver.New(p, cfg, version).Run(cmd.Context())
		},
	}

	flags.register(cmd)

	return cmd
}
