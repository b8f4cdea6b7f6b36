package main

import (
	"strings"
	"time"

	"charm-wallet-state/appstate"
	"charm-wallet-state/config"
	"charm-wallet-state/rpc"
	"charm-wallet-state/store"
	"charm-wallet-state/styles"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// historySize is how many dispatched action types the store remembers.
const historySize = 64

// -------------------- MODEL --------------------

// model is the state console following The Elm Architecture. The wallet app
// state itself lives in the store; state is the snapshot after the last
// dispatch.
type model struct {
	w, h int

	store *store.Store
	state appstate.AppState

	cfg        config.Config
	configPath string

	// action picker
	pickForm    *huh.Form
	valueForm   *huh.Form
	pendingType appstate.ActionType

	// rpc / smart transaction fees
	spin          spinner.Model
	ethClient     *rpc.Client
	rpcConnecting bool
	fetchingFees  bool

	// account detail
	revealKey bool

	// clipboard feedback
	copiedMsg     string
	copiedMsgTime time.Time

	// logger panel
	logEnabled  bool
	logger      *log.Logger
	logBuffer   *strings.Builder
	logViewport viewport.Model
	logReady    bool
	logSpinner  spinner.Model
}

// -------------------- INIT --------------------

// newModel creates the console around a fresh store. Configured HD path
// overrides are dispatched before the first render.
func newModel(cfg config.Config, configPath string) model {
	buf := &strings.Builder{}
	logger := log.NewWithOptions(buf, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           cfg.Level(),
	})

	st := store.New(appstate.InitialState(), store.WithLogger(logger), store.WithHistory(historySize))

	// spinner
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	// Initialize log viewport
	vp := viewport.New(0, 10) // Will be resized in Update on first WindowSizeMsg
	vp.Style = lipgloss.NewStyle().
		Foreground(styles.CText).
		Background(styles.CPanel)

	// Initialize log spinner
	logSpin := spinner.New()
	logSpin.Spinner = spinner.Dot
	logSpin.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	m := model{
		store:       st,
		state:       st.State(),
		cfg:         cfg,
		configPath:  configPath,
		spin:        sp,
		logEnabled:  cfg.Logger,
		logger:      logger,
		logBuffer:   buf,
		logViewport: vp,
		logSpinner:  logSpin,
	}
	m.rpcConnecting = cfg.RPCURL != ""

	actions, err := cfg.HDPathActions()
	if err != nil {
		m.addLog("warning", "Skipping invalid HD path override: "+err.Error())
	}
	m.dispatch(actions...)

	return m
}

// Init implements tea.Model interface and returns initial commands
func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	if m.logEnabled {
		cmds = append(cmds, initLogViewport(), m.logSpinner.Tick)
	}
	// connect if rpc is set
	if m.cfg.RPCURL != "" {
		cmds = append(cmds, connectRPC(m.cfg.RPCURL))
	}
	return tea.Batch(cmds...)
}
