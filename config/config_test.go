package config

import (
	"os"
	"path/filepath"
	"testing"

	"charm-wallet-state/appstate"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreate_WritesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")

	cfg := LoadOrCreate(path)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err := os.Stat(path)
	require.NoError(t, err)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadOrCreate_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	assert.Equal(t, DefaultConfig(), LoadOrCreate(path))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	cfg := Config{
		RPCURL:   "http://localhost:8545",
		Logger:   true,
		LogLevel: "debug",
		HDPaths:  map[string]string{"ledger": "m/44'/60'/0'"},
	}

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, log.DebugLevel, loaded.Level())
}

func TestLevelDefaultsToInfo(t *testing.T) {
	assert.Equal(t, log.InfoLevel, Config{}.Level())
	assert.Equal(t, log.InfoLevel, Config{LogLevel: "chatty"}.Level())
	assert.Equal(t, log.WarnLevel, Config{LogLevel: "warn"}.Level())
}

func TestEnv(t *testing.T) {
	t.Setenv("ETH_RPC_URL", " http://node:8545 ")
	t.Setenv("CHARM_WALLET_STATE_CONFIG", "/tmp/x.json")
	t.Setenv("CHARM_WALLET_STATE_LOG_LEVEL", "debug")

	e, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.json", e.Path())

	cfg := e.Apply(DefaultConfig())
	assert.Equal(t, "http://node:8545", cfg.RPCURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestEnvPathDefault(t *testing.T) {
	t.Setenv("CHARM_WALLET_STATE_CONFIG", "")

	e, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultFileName, filepath.Base(e.Path()))
}

func TestHDPathActions(t *testing.T) {
	cfg := Config{HDPaths: map[string]string{
		"trezor": "m/44'/60'/0'/0",
		"ledger": "m/44'/60'/0'",
		"broken": "m/x",
	}}

	actions, err := cfg.HDPathActions()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hd_paths.broken")
	assert.Equal(t, []appstate.Action{
		appstate.SetHardwareWalletDefaultHdPath{Device: "ledger", Path: "m/44'/60'/0'"},
		appstate.SetHardwareWalletDefaultHdPath{Device: "trezor", Path: "m/44'/60'/0'/0"},
	}, actions)

	state := appstate.InitialState()
	for _, a := range actions {
		state = appstate.Reduce(state, a)
	}
	assert.Equal(t, "m/44'/60'/0'", state.DefaultHdPaths[appstate.DeviceLedger])
}

func TestHDPathActionsEmpty(t *testing.T) {
	actions, err := Config{}.HDPathActions()
	assert.NoError(t, err)
	assert.Empty(t, actions)
}
