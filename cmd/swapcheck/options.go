package main

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/dhamidi/swapcheck/config"
	"github.com/dhamidi/swapcheck/project"
)

// configFlags are shared by the commands that check a project.
type configFlags struct {
	configPath string
	annotation string
	workers    int
}

func (f *configFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", config.DefaultFile, "path to the configuration file")
	cmd.Flags().StringVar(&f.annotation, "annotation", "", "swap annotation, matched by simple name; a qualified name is reduced to its last segment (default from config, BladeSwap)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "number of files checked concurrently (default GOMAXPROCS)")
}

// load resolves the configuration: file, then environment, then flags.
// A missing configuration file is only an error when --config was given.
func (f *configFlags) load(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(f.configPath)
	} else {
		cfg, err = config.LoadOrDefault(f.configPath)
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, errors.Errorf("environment: %w", err)
	}

	if cmd.Flags().Changed("annotation") {
		cfg.Annotation = f.annotation
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = f.workers
	}
	return cfg, nil
}

func loadProject(cfg *config.Config) (*project.Project, error) {
	return project.Load(".", cfg)
}
