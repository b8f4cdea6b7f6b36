package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"charm-wallet-state/appstate"
	"charm-wallet-state/store"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// maxActionLine bounds a single encoded action; fee quotes are the largest.
const maxActionLine = 4 << 20

func newReplayCmd(configPath *string) *cobra.Command {
	var (
		format  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "replay FILE",
		Short: "Reduce a JSON-lines action log and print the final state",
		Long: `Reads one action object per line ({"type": ..., "value": ..., "payload": ..., "id": ...}),
reduces them in order starting from the initial app state, and prints the
result. Blank lines and lines starting with # are skipped. Use - for stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}

			cfg, _, err := loadConfig(*configPath, false)
			if err != nil {
				return err
			}

			in, closeFn, err := openInput(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer closeFn()

			logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Level: cfg.Level()})
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}

			initial := appstate.InitialState()
			hdActions, err := cfg.HDPathActions()
			if err != nil {
				logger.Warn("skipping invalid HD path override", "err", err)
			}
			for _, a := range hdActions {
				initial = appstate.Reduce(initial, a)
			}

			state, n, err := replay(in, initial, logger)
			if err != nil {
				return err
			}
			logger.Info("replayed actions", "count", n)

			return writeState(cmd.OutOrStdout(), state, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every dispatched action")

	return cmd
}

func openInput(name string, stdin io.Reader) (io.Reader, func(), error) {
	if name == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("open action log: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// replay dispatches every action in r, in order, against a store seeded with
// initial. It returns the final state and the number of actions applied.
func replay(r io.Reader, initial appstate.AppState, logger *log.Logger) (appstate.AppState, int, error) {
	st := store.New(initial, store.WithLogger(logger))

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxActionLine)

	n, lineNo := 0, 0
	for sc.Scan() {
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || bytes.HasPrefix(line, []byte("#")) {
			continue
		}

		action, err := appstate.DecodeAction(line)
		if err != nil {
			return appstate.AppState{}, n, fmt.Errorf("line %d: %w", lineNo, err)
		}
		st.Dispatch(action)
		n++
	}
	if err := sc.Err(); err != nil {
		return appstate.AppState{}, n, fmt.Errorf("read action log: %w", err)
	}

	return st.State(), n, nil
}

func writeState(w io.Writer, s appstate.AppState, format string) error {
	switch strings.ToLower(format) {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}
