package main

import (
	"strings"
	"time"

	"charm-wallet-state/helpers"
	"charm-wallet-state/rpc"
	"charm-wallet-state/styles"
	"charm-wallet-state/views/account"
	"charm-wallet-state/views/fees"
	"charm-wallet-state/views/flags"
	"charm-wallet-state/views/hdpaths"
	"charm-wallet-state/views/home"
	logview "charm-wallet-state/views/log"
	"charm-wallet-state/views/overlay"

	"github.com/charmbracelet/lipgloss"
)

// -------------------- VIEW --------------------

func (m *model) View() string {
	if m.state.Modal.Open {
		return overlay.Modal(m.state.Modal, m.w, m.h)
	}
	if m.state.AlertOpen {
		return overlay.Alert(m.state.AlertMessage, m.w, m.h)
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	switch {
	case m.valueForm != nil:
		sections = append(sections, home.Render(m.valueForm))
	case m.pickForm != nil:
		sections = append(sections, home.Render(m.pickForm))
	default:
		sections = append(sections, m.renderPanels())
	}

	if line := m.renderStatusLine(); line != "" {
		sections = append(sections, line)
	}

	sections = append(sections, overlay.Nav(helpers.Max(0, m.w-2), m.formActive()))

	if m.logEnabled {
		sections = append(sections, logview.Render(m.w, m.h, logview.Panel{
			Ready:      m.logReady,
			Spinner:    m.logSpinner.View(),
			Viewport:   m.logViewport,
			Dispatches: len(m.store.History()),
		}))
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *model) renderHeader() string {
	title := helpers.FadeString("charm wallet · app state", string(styles.CPink), string(styles.CCream))

	var conn string
	switch {
	case m.rpcConnecting:
		conn = m.spin.View() + " connecting"
	case m.ethClient != nil:
		conn = styles.OKStyle.Render("● " + m.ethClient.URL)
	default:
		conn = styles.NullStyle.Render("○ offline")
	}

	right := conn
	if m.copiedMsg != "" && time.Since(m.copiedMsgTime) < copiedMsgTTL {
		right = styles.OKStyle.Render(m.copiedMsg) + "   " + conn
	}

	gap := helpers.Max(1, m.w-lipgloss.Width(title)-lipgloss.Width(right)-2)
	return title + strings.Repeat(" ", gap) + right
}

func (m *model) renderPanels() string {
	left := panelStyle.Render(flags.Render(m.state))

	middle := lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(account.Render(m.state.AccountDetail, m.revealKey)),
		panelStyle.Render(hdpaths.Render(m.state.DefaultHdPaths)),
	)

	right := panelStyle.Render(fees.Render(m.state, m.fetchingFees, m.spin.View()))

	row := lipgloss.JoinHorizontal(lipgloss.Top, left, middle, right)

	if data, ok := m.state.QRCodeData.Get(); ok && data != "" {
		qr := panelStyle.Render(titleStyle.Render("QR Code") + "\n\n" + rpc.GenerateQRCode(data) + "\n" + styles.NullStyle.Render(data))
		row = lipgloss.JoinVertical(lipgloss.Left, row, qr)
	}

	if m.state.NetworkDropdownOpen {
		dropdown := styles.DialogStyle.Render(titleStyle.Render("Networks") + "\n\n" + m.networkList())
		row = lipgloss.JoinHorizontal(lipgloss.Top, row, dropdown)
	}

	return row
}

func (m *model) networkList() string {
	if m.cfg.RPCURL == "" {
		return styles.NullStyle.Render("No RPC configured")
	}
	marker := "  "
	if m.ethClient != nil {
		marker = styles.OKStyle.Render("★ ")
	}
	return marker + m.cfg.RPCURL
}

// renderStatusLine shows the loading spinner or the current warning
func (m *model) renderStatusLine() string {
	if m.state.IsLoading {
		return m.spin.View() + " " + m.state.LoadingMessage.OrElse("Loading…")
	}
	if w, ok := m.state.Warning.Get(); ok && w != "" {
		return styles.WarnStyle.Render("⚠ " + w)
	}
	return ""
}
