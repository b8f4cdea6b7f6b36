package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"charm-wallet-state/appstate"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
)

// DefaultFileName is the config file created in the user's home directory.
const DefaultFileName = ".charm-wallet-state.json"

// Config represents the application configuration
type Config struct {
	RPCURL   string            `json:"rpc_url,omitempty"`
	Logger   bool              `json:"logger"`
	LogLevel string            `json:"log_level,omitempty"`
	HDPaths  map[string]string `json:"hd_paths,omitempty"`
}

// Env holds the environment overrides.
type Env struct {
	RPCURL     string `env:"ETH_RPC_URL"`
	ConfigPath string `env:"CHARM_WALLET_STATE_CONFIG"`
	LogLevel   string `env:"CHARM_WALLET_STATE_LOG_LEVEL"`
}

// ParseEnv loads the environment overrides.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Path returns the config path to use: the env override if set, otherwise
// DefaultFileName in the home directory.
func (e Env) Path() string {
	if p := strings.TrimSpace(e.ConfigPath); p != "" {
		return p
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, DefaultFileName)
}

// Apply overlays non-empty environment values on cfg.
func (e Env) Apply(cfg Config) Config {
	if v := strings.TrimSpace(e.RPCURL); v != "" {
		cfg.RPCURL = v
	}
	if v := strings.TrimSpace(e.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}

// Load reads the config from the specified path
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config to the specified path
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// DefaultConfig returns a new configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		RPCURL:   "https://ethereum-rpc.publicnode.com",
		Logger:   false,
		LogLevel: "info",
	}
}

// LoadOrCreate loads config from path, or creates a default one if not found
func LoadOrCreate(path string) Config {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		_ = Save(path, cfg)
		return cfg
	}
	if err != nil {
		// Invalid config, return default
		return DefaultConfig()
	}
	return cfg
}

// Level parses LogLevel, defaulting to info.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// HDPathActions returns one SET_HARDWARE_WALLET_DEFAULT_HD_PATH action per
// configured override, sorted by device. Invalid derivation paths are
// reported together and skipped.
func (c Config) HDPathActions() ([]appstate.Action, error) {
	devices := make([]string, 0, len(c.HDPaths))
	for d := range c.HDPaths {
		devices = append(devices, d)
	}
	sort.Strings(devices)

	var (
		actions []appstate.Action
		errs    []error
	)
	for _, d := range devices {
		p := c.HDPaths[d]
		if err := appstate.ValidateHdPath(p); err != nil {
			errs = append(errs, fmt.Errorf("hd_paths.%s: %w", d, err))
			continue
		}
		actions = append(actions, appstate.SetHardwareWalletDefaultHdPath{Device: d, Path: p})
	}
	return actions, errors.Join(errs...)
}
