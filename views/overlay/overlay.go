package overlay

import (
	"fmt"
	"sort"
	"strings"

	"charm-wallet-state/appstate"
	"charm-wallet-state/helpers"
	"charm-wallet-state/styles"

	"github.com/charmbracelet/lipgloss"
)

var (
	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF7DB")).
			Background(lipgloss.Color("#888B7E")).
			Padding(0, 3).
			MarginTop(1)

	activeButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("#FFF7DB")).
				Background(styles.CPink).
				Underline(true)
)

// Modal renders the open modal centered in a w×h area.
func Modal(m appstate.Modal, w, h int) string {
	name := m.ModalState.Name.String()
	title := helpers.FadeString("Modal: "+name, string(styles.CPink), string(styles.CCream))

	body := []string{lipgloss.NewStyle().Width(50).Align(lipgloss.Center).Render(title)}

	if len(m.ModalState.Props) > 0 {
		keys := make([]string, 0, len(m.ModalState.Props))
		for k := range m.ModalState.Props {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		body = append(body, "")
		for _, k := range keys {
			body = append(body, styles.Row(k, fmt.Sprint(m.ModalState.Props[k])))
		}
	}

	body = append(body, activeButtonStyle.Render("Close (Esc)"))
	ui := lipgloss.JoinVertical(lipgloss.Center, body...)

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, styles.DialogStyle.Render(ui))
}

// Alert renders the alert message centered in a w×h area.
func Alert(msg appstate.Field[string], w, h int) string {
	text := msg.OrElse("")
	if text == "" {
		text = "(no message)"
	}

	question := lipgloss.NewStyle().Width(50).Align(lipgloss.Center).Render(
		styles.WarnStyle.Render("Alert") + "\n\n" + text,
	)
	ui := lipgloss.JoinVertical(lipgloss.Center, question, buttonStyle.Render("Dismiss (Esc)"))

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, styles.DialogStyle.Render(ui))
}

// Nav renders the hotkey bar.
func Nav(width int, overlayOpen bool) string {
	keys := []string{
		styles.Key("Enter") + " dispatch",
		styles.Key("n") + " network",
		styles.Key("f") + " fees",
		styles.Key("c") + " copy state",
		styles.Key("k") + " copy key",
		styles.Key("p") + " reveal key",
		styles.Key("l") + " logger",
		styles.Key("q") + " quit",
	}
	if overlayOpen {
		keys = append([]string{styles.Key("Esc") + " close"}, keys...)
	}
	return styles.NavStyle.Width(width).Render(strings.Join(keys, "   "))
}
