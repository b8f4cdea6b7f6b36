package main

import (
	"errors"
	"fmt"
	"os"

	"charm-wallet-state/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// -------------------- CLI --------------------

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "charm-wallet-state",
		Short: "Inspect and drive the wallet's app state from the terminal",
		Long: `charm-wallet-state runs the wallet's app state reducer behind an
interactive console. Pick any action to dispatch, watch the state panels
change, and pull live smart transaction fee quotes from an Ethereum node.

Example:
  ETH_RPC_URL=https://ethereum-rpc.publicnode.com charm-wallet-state
  charm-wallet-state replay actions.jsonl --format yaml`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, path, err := loadConfig(configPath, true)
			if err != nil {
				return err
			}
			return runConsole(cfg, path)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/"+config.DefaultFileName+")")
	root.AddCommand(newReplayCmd(&configPath))

	return root
}

// loadConfig resolves the config path and applies environment overrides.
// When create is set a missing file is written with defaults.
func loadConfig(flagPath string, create bool) (config.Config, string, error) {
	env, err := config.ParseEnv()
	if err != nil {
		return config.Config{}, "", err
	}

	path := flagPath
	if path == "" {
		path = env.Path()
	}

	var cfg config.Config
	if create {
		cfg = config.LoadOrCreate(path)
	} else {
		cfg, err = config.Load(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			cfg = config.DefaultConfig()
		case err != nil:
			return config.Config{}, "", err
		}
	}

	return env.Apply(cfg), path, nil
}

func runConsole(cfg config.Config, path string) error {
	m := newModel(cfg, path)
	p := tea.NewProgram(&m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run console: %w", err)
	}
	return nil
}
