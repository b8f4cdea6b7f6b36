package log

import (
	"fmt"

	"charm-wallet-state/helpers"
	"charm-wallet-state/styles"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// Panel is the log panel state the model hands to Render.
type Panel struct {
	Ready      bool
	Spinner    string
	Viewport   viewport.Model
	Dispatches int
}

// Height returns the log panel body height for a terminal h rows tall:
// at most a third of the screen or 12 lines.
func Height(h int) int {
	// header, nav, state panels and borders
	const reserved = 14
	available := helpers.Max(3, h-reserved)
	return helpers.Min(available, helpers.Min(h/3, 12))
}

// Render renders the log panel
func Render(width, height int, p Panel) string {
	title := lipgloss.NewStyle().
		Foreground(styles.CAccent2).
		Bold(true).
		Render("Log")

	title += lipgloss.NewStyle().
		Foreground(styles.CMuted).
		Render(fmt.Sprintf("  %d dispatched", p.Dispatches))

	bodyHeight := Height(height)
	vp := p.Viewport
	vp.Height = bodyHeight

	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.CBorder).
		Padding(0, 1).
		Width(helpers.Max(0, width-2)).
		Height(bodyHeight + 2)

	if !p.Ready {
		return border.Render(title + "\n\n" + "initializing...\n" + p.Spinner)
	}

	if vp.TotalLineCount() > vp.Height {
		title += lipgloss.NewStyle().
			Foreground(styles.CMuted).
			Render(fmt.Sprintf(" [%d%%]", int(vp.ScrollPercent()*100)))
	}

	return border.Render(title + "\n\n" + vp.View())
}
