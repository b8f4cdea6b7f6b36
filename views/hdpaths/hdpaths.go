package hdpaths

import (
	"sort"
	"strings"

	"charm-wallet-state/appstate"
	"charm-wallet-state/styles"

	"github.com/charmbracelet/lipgloss"
)

// Render renders the hardware wallet derivation path panel. Paths that differ
// from the built-in defaults are highlighted.
func Render(paths map[string]string) string {
	h := styles.TitleStyle.Render("Hardware Wallet HD Paths")

	lines := []string{h, ""}

	if len(paths) == 0 {
		lines = append(lines, styles.NullStyle.Render("No paths configured."))
		return strings.Join(lines, "\n")
	}

	devices := make([]string, 0, len(paths))
	for d := range paths {
		devices = append(devices, d)
	}
	sort.Strings(devices)

	defaults := appstate.DefaultHdPaths()
	changed := lipgloss.NewStyle().Foreground(styles.CAccent).Bold(true)

	for _, d := range devices {
		p := paths[d]
		value := styles.ValueStyle.Render(p)
		if def, ok := defaults[d]; !ok || def != p {
			value = changed.Render(p + " *")
		}
		lines = append(lines, styles.LabelStyle.Render(d)+value)
	}

	return strings.Join(lines, "\n")
}
