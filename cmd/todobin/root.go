package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nhle/todobin/internal/app"
	"github.com/nhle/todobin/internal/logging"
	"github.com/nhle/todobin/internal/model"
	"github.com/nhle/todobin/internal/todolist"
)

type options struct {
	configPath  string
	logFile     string
	writeConfig bool
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "todobin",
		Short:         "A terminal to-do list with a bin for deleted tasks",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			if opts.writeConfig {
				if err := model.SaveConfig(opts.configPath, cfg); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.configPath)
				return nil
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", model.DefaultConfigPath(), "Path to the config file")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Append debug logs to this file")
	cmd.Flags().BoolVar(&opts.writeConfig, "write-config", false, "Write the effective config to --config and exit")

	return cmd
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command, opts *options) (*model.AppConfig, error) {
	cfg, err := model.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	return cfg, nil
}

func run(cfg *model.AppConfig) error {
	closer, session, err := logging.Setup(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closer.Close()

	log.Printf("session %s starting (version %s)", session, Version)

	p := tea.NewProgram(
		app.New(todolist.New(), cfg.Display),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	log.Printf("session %s finished", session)
	return nil
}
