package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"gitlab.com/tozd/go/errors"

	"github.com/dhamidi/swapcheck/codebase"
	"github.com/dhamidi/swapcheck/config"
	"github.com/dhamidi/swapcheck/format"
	"github.com/dhamidi/swapcheck/project"
	"github.com/dhamidi/swapcheck/swap"
)

func newCheckCmd() *cobra.Command {
	var flags configFlags
	var outputFormat string
	var watch bool

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Check that every swap-annotated method has a matching counterpart",
		Long: `Check parses the given Java files, or every .java file below the given
directories, and reports each method annotated with the swap annotation whose
named counterpart is missing from the same type or has a different signature.

Without arguments the source roots from the configuration are checked.
The exit status is 1 when any violation, including a parse error, is found.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = outputFormat
			}
			enc, err := format.NewEncoder(cfg.Format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			p, err := loadProject(cfg)
			if err != nil {
				return err
			}

			if watch {
				return runWatch(cmd.Context(), p, cfg, args, enc)
			}
			return runCheck(cmd.Context(), p, cfg, args, enc)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&outputFormat, "format", "text", "output format: text or json")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep running and re-check files when they change")

	return cmd
}

func runCheck(ctx context.Context, p *project.Project, cfg *config.Config, args []string, enc format.Encoder) error {
	var files []string
	var err error
	if len(args) == 0 {
		files, err = p.JavaFiles()
	} else {
		files, err = p.Collect(args)
	}
	if err != nil {
		return err
	}

	r := swap.Validate(ctx, files, cfg.ValidatorOptions()...)
	if err := enc.Encode(r); err != nil {
		return errors.Errorf("encode: %w", err)
	}
	if !r.OK() {
		return errViolations
	}
	return nil
}

// runWatch re-checks the watched roots whenever a file changes. Arguments,
// if any, replace the configured source roots.
func runWatch(ctx context.Context, p *project.Project, cfg *config.Config, args []string, enc format.Encoder) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(args) > 0 {
		p.Sources = args
	}

	log := commonlog.GetLogger("swapcheck.watch")
	cb := codebase.New(p, swap.New(cfg.ValidatorOptions()...))
	w := codebase.NewFileWatcher(cb, func(r *swap.Result) {
		if err := enc.Encode(r); err != nil {
			log.Errorf("encode: %s", err)
		}
	})
	w.Start(ctx)
	log.Infof("watching %v", p.SourceDirs())

	<-ctx.Done()
	w.Stop()

	if !cb.Result().OK() {
		return errViolations
	}
	return nil
}
