package main

import (
	"context"
	"encoding/json"
	"fmt"

	"charm-wallet-state/appstate"
	"charm-wallet-state/rpc"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// -------------------- COMMAND FUNCTIONS --------------------
// Functions that return tea.Cmd for async operations

// connectRPC establishes an RPC connection to the Ethereum node
func connectRPC(url string) tea.Cmd {
	return func() tea.Msg {
		result := rpc.Connect(url)
		return rpcConnectedMsg{client: result.Client, err: result.Error}
	}
}

// initLogViewport initializes the log viewport
func initLogViewport() tea.Cmd {
	return func() tea.Msg {
		return logInitMsg{}
	}
}

// fetchFees builds a smart transaction fee quote from the connected node
func fetchFees(client *rpc.Client) tea.Cmd {
	return func() tea.Msg {
		if client == nil || client.Client == nil {
			return feesLoadedMsg{err: rpc.ErrNoClient}
		}
		fees, err := rpc.FetchSmartTransactionFees(context.Background(), client)
		return feesLoadedMsg{fees: fees, err: err}
	}
}

// copyToClipboard writes text to the system clipboard
func copyToClipboard(text, what string) tea.Cmd {
	return func() tea.Msg {
		return clipboardCopiedMsg{what: what, err: clipboard.WriteAll(text)}
	}
}

// copyState copies the state as indented JSON
func copyState(s appstate.AppState) tea.Cmd {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return func() tea.Msg {
			return clipboardCopiedMsg{what: "state", err: fmt.Errorf("encode state: %w", err)}
		}
	}
	return copyToClipboard(string(data), "state")
}

// -------------------- MODEL HELPER METHODS --------------------
// These methods help with state management and command generation

// dispatch applies an action through the store and refreshes the snapshot
func (m *model) dispatch(actions ...appstate.Action) {
	for _, a := range actions {
		m.state = m.store.Dispatch(a)
	}
	m.updateLogViewport()
}

// addLog adds a log entry at the given level
func (m *model) addLog(logType, message string) {
	if m.logger == nil {
		return
	}

	switch logType {
	case "info":
		m.logger.Info(message)
	case "success":
		m.logger.Info("✓", "msg", message)
	case "error":
		m.logger.Error(message)
	case "warning":
		m.logger.Warn(message)
	case "debug":
		m.logger.Debug(message)
	default:
		m.logger.Print(message)
	}

	m.updateLogViewport()
}

// updateLogViewport refreshes the viewport content with log output
func (m *model) updateLogViewport() {
	if !m.logReady || m.logBuffer == nil {
		return
	}

	m.logViewport.SetContent(m.logBuffer.String())
	m.logViewport.GotoBottom()
}

// formActive returns true if the action picker or a value form is open
func (m model) formActive() bool {
	return m.pickForm != nil || m.valueForm != nil
}
