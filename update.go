package main

import (
	"fmt"
	"time"

	"charm-wallet-state/appstate"
	"charm-wallet-state/helpers"
	"charm-wallet-state/rpc"
	"charm-wallet-state/views/home"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// copiedMsgTTL is how long clipboard feedback stays in the header.
const copiedMsgTTL = 3 * time.Second

// -------------------- UPDATE --------------------

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle value form updates first
	if m.valueForm != nil {
		// Intercept ESC key to cancel form
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
			m.valueForm = nil
			m.pendingType = ""
			return m, nil
		}

		form, cmd := m.valueForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.valueForm = f

			if m.valueForm.State == huh.StateCompleted {
				m.dispatchPending(home.CurrentInput())
				return m, nil
			}

			if m.valueForm.State == huh.StateAborted {
				m.valueForm = nil
				m.pendingType = ""
				return m, nil
			}
		}
		return m, cmd
	}

	// Then the action picker
	if m.pickForm != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
			m.pickForm = nil
			return m, nil
		}

		form, cmd := m.pickForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.pickForm = f

			if m.pickForm.State == huh.StateCompleted {
				m.pickForm = nil
				return m, m.selectAction(appstate.ActionType(home.TempSelection))
			}

			if m.pickForm.State == huh.StateAborted {
				m.pickForm = nil
				return m, nil
			}
		}
		return m, cmd
	}

	switch msg := msg.(type) {

	case logInitMsg:
		if !m.logEnabled {
			return m, nil
		}
		m.logger.SetStyles(logStyles())
		m.logReady = true
		m.addLog("info", "Logger enabled")
		return m, nil

	case rpcConnectedMsg:
		m.rpcConnecting = false
		if msg.err != nil {
			m.ethClient = nil
			m.addLog("error", fmt.Sprintf("RPC connection failed: `%s`", msg.err.Error()))
			m.dispatch(
				appstate.SetSmartTransactionsLiveness{Live: false},
				appstate.SetSmartTransactionsError{Error: appstate.Of(msg.err.Error())},
			)
			return m, nil
		}
		m.ethClient = msg.client
		m.addLog("success", fmt.Sprintf("RPC connected to `%s`", msg.client.URL))
		m.fetchingFees = true
		return m, fetchFees(m.ethClient)

	case feesLoadedMsg:
		m.fetchingFees = false
		m.applyFees(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height
		m.logViewport.Width = max(0, msg.Width-6)
		m.updateLogViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		var cmds []tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
		// Update log spinner too if log is enabled but not ready
		if m.logEnabled && !m.logReady {
			m.logSpinner, cmd = m.logSpinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case clipboardCopiedMsg:
		if msg.err != nil {
			m.addLog("error", fmt.Sprintf("Copy %s failed: %s", msg.what, msg.err.Error()))
			return m, nil
		}
		m.copiedMsg = "Copied " + msg.what
		m.copiedMsgTime = time.Now()
		m.addLog("info", "Copied "+msg.what+" to clipboard")
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && !m.state.IsMouseUser {
			m.dispatch(appstate.SetMouseUserState{IsMouseUser: true})
		}
		return m, nil

	case tea.KeyMsg:
		if m.state.IsMouseUser {
			m.dispatch(appstate.SetMouseUserState{IsMouseUser: false})
		}
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit

	case "esc":
		switch {
		case m.state.Modal.Open:
			m.dispatch(appstate.ModalClose{})
		case m.state.AlertOpen:
			m.dispatch(appstate.AlertClose{})
		}

	case "enter":
		m.pickForm = home.CreateForm()

	case "n":
		if m.state.NetworkDropdownOpen {
			m.dispatch(appstate.NetworkDropdownClose{})
		} else {
			m.dispatch(appstate.NetworkDropdownOpen{})
		}

	case "f":
		if m.fetchingFees {
			return nil
		}
		if m.ethClient == nil {
			m.applyFees(feesLoadedMsg{err: rpc.ErrNoClient})
			return nil
		}
		m.fetchingFees = true
		m.addLog("info", "Fetching smart transaction fees")
		return fetchFees(m.ethClient)

	case "c":
		return copyState(m.state)

	case "k":
		if key, ok := m.state.AccountDetail.PrivateKey.Get(); ok && key != "" {
			return copyToClipboard(key, "private key")
		}
		m.addLog("warning", "No exported private key to copy")

	case "p":
		m.revealKey = !m.revealKey

	case "l":
		m.logEnabled = !m.logEnabled
		if m.logEnabled && !m.logReady {
			return tea.Batch(initLogViewport(), m.logSpinner.Tick)
		}
	}
	return nil
}

// selectAction dispatches t directly, or opens its value form first
func (m *model) selectAction(t appstate.ActionType) tea.Cmd {
	if t == "" {
		return nil
	}
	if form := home.CreateValueForm(t); form != nil {
		m.valueForm = form
		m.pendingType = t
		return nil
	}
	m.pendingType = t
	m.dispatchPending(home.Input{})
	return nil
}

// dispatchPending builds the pending action from in and dispatches it
func (m *model) dispatchPending(in home.Input) {
	t := m.pendingType
	m.valueForm = nil
	m.pendingType = ""

	action, err := home.BuildAction(t, in)
	if err != nil {
		m.addLog("error", fmt.Sprintf("Cannot dispatch %s: %s", t, err.Error()))
		return
	}
	m.dispatch(action)
	m.addLog("success", fmt.Sprintf("Dispatched `%s`", t))
	if a, ok := action.(appstate.ShowAccountDetail); ok && a.Address != "" {
		m.addLog("info", "Account detail for "+helpers.ShortenAddr(a.Address))
	}
}

// applyFees turns a fee fetch result into smart transaction actions
func (m *model) applyFees(msg feesLoadedMsg) {
	if msg.err != nil {
		m.addLog("error", "Smart transaction fees unavailable: "+msg.err.Error())
		m.dispatch(
			appstate.SetSmartTransactionsLiveness{Live: false},
			appstate.SetSmartTransactionsError{Error: appstate.Of(msg.err.Error())},
		)
		return
	}
	m.dispatch(
		appstate.SetSmartTransactionFees{Fees: msg.fees},
		appstate.SetSmartTransactionsLiveness{Live: true},
		appstate.SetSmartTransactionsError{Error: appstate.Null[string]()},
	)
	m.addLog("success", fmt.Sprintf("Loaded %d fee levels", len(msg.fees.Fees)))
}
