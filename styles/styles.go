package styles

import "github.com/charmbracelet/lipgloss"

// Theme colors
var (
	CBg      = lipgloss.Color("#0B0F14") // near-black
	CPanel   = lipgloss.Color("#0F1720") // slightly lighter
	CBorder  = lipgloss.Color("#874BFD")
	CMuted   = lipgloss.Color("#8AA0B6")
	CText    = lipgloss.Color("#D6E2F0")
	CAccent  = lipgloss.Color("#7EE787") // green-ish
	CAccent2 = lipgloss.Color("#79C0FF") // blue-ish
	CWarn    = lipgloss.Color("#FFA657") // orange
	CError   = lipgloss.Color("#FF6B6B")
	CPink    = lipgloss.Color("#F25D94")
	CCream   = lipgloss.Color("#EDFF82")
)

// Shared styles
var (
	AppStyle = lipgloss.NewStyle().
			Background(CBg).
			Foreground(CText)

	TitleStyle = lipgloss.NewStyle().
			Foreground(CAccent2).
			Bold(true)

	PanelStyle = lipgloss.NewStyle().
			Background(CPanel).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(CBorder).
			Padding(1, 2)

	NavStyle = lipgloss.NewStyle().
			Background(CPanel).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(CBorder).
			Padding(0, 1)

	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(CBorder).
			Padding(1, 2)

	LabelStyle = lipgloss.NewStyle().
			Foreground(CMuted).
			Width(22)

	ValueStyle = lipgloss.NewStyle().
			Foreground(CText)

	NullStyle = lipgloss.NewStyle().
			Foreground(CMuted).
			Italic(true)

	WarnStyle = lipgloss.NewStyle().
			Foreground(CWarn).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(CError)

	OKStyle = lipgloss.NewStyle().
		Foreground(CAccent)

	HotkeyStyle = lipgloss.NewStyle().
			Foreground(CMuted)

	HotkeyKeyStyle = lipgloss.NewStyle().
			Foreground(CAccent).
			Bold(true)
)

// Key renders a key with accent styling
func Key(s string) string {
	return HotkeyKeyStyle.Render(s)
}

// Row renders a label/value line of a state panel.
func Row(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(value)
}

// FieldValue renders a field's display string, dimming null and undefined.
func FieldValue(s string, set bool) string {
	if !set {
		return NullStyle.Render(s)
	}
	if s == "" {
		return NullStyle.Render(`""`)
	}
	return ValueStyle.Render(s)
}
