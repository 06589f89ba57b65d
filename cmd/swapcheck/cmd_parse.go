package main

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/dhamidi/swapcheck/format"
	"github.com/dhamidi/swapcheck/java"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .java file and dump its declarations as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := java.CompilationUnitFromFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			if err := format.NewUnitJSONEncoder(cmd.OutOrStdout()).Encode(unit); err != nil {
				return errors.Errorf("encode json: %w", err)
			}
			return nil
		},
	}
}
