package home

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"charm-wallet-state/appstate"
	"charm-wallet-state/styles"

	"github.com/charmbracelet/huh"
)

// Prompt is the kind of input an action type needs before dispatch.
type Prompt int

const (
	PromptNone Prompt = iota
	PromptValueText
	PromptOptionalValueText
	PromptPayloadText
	PromptModalName
	PromptID
	PromptUnconfirmedCount
	PromptValueBool
	PromptPayloadBool
	PromptHdPath
)

// PromptFor returns the input t needs.
func PromptFor(t appstate.ActionType) Prompt {
	switch t {
	case appstate.TypeAlertOpen, appstate.TypeQRCodeDetected, appstate.TypeShowAccountDetail,
		appstate.TypeShowLoading, appstate.TypeDisplayWarning, appstate.TypeShowPrivateKey:
		return PromptValueText
	case appstate.TypeUnlockFailed:
		return PromptOptionalValueText
	case appstate.TypeSetSmartTransactionsError:
		return PromptPayloadText
	case appstate.TypeModalOpen:
		return PromptModalName
	case appstate.TypeShowConfTxPage:
		return PromptID
	case appstate.TypeCompletedTx:
		return PromptUnconfirmedCount
	case appstate.TypeSetMouseUserState:
		return PromptValueBool
	case appstate.TypeSetSmartTransactionsLiveness:
		return PromptPayloadBool
	case appstate.TypeSetHardwareWalletDefaultHdPath:
		return PromptHdPath
	default:
		return PromptNone
	}
}

// Form values, package-level so huh can bind to them across model copies.
var (
	TempSelection string
	TempText      string
	TempBool      bool
	TempDevice    string
)

// CreateForm creates the action picker form
func CreateForm() *huh.Form {
	TempSelection = ""

	options := make([]huh.Option[string], 0, len(appstate.KnownTypes))
	for _, t := range appstate.KnownTypes {
		options = append(options, huh.NewOption(string(t), string(t)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(options...).
				Title("Dispatch Action").
				Description("Select an action type to dispatch").
				Height(12).
				Value(&TempSelection),
		),
	).WithTheme(huh.ThemeCatppuccin())

	form.Init()
	return form
}

// CreateValueForm creates the input form for t, or nil when t takes no input.
func CreateValueForm(t appstate.ActionType) *huh.Form {
	TempText = ""
	TempBool = false
	TempDevice = appstate.DeviceLedger

	var fields []huh.Field
	switch PromptFor(t) {
	case PromptNone:
		return nil
	case PromptValueText, PromptPayloadText:
		fields = append(fields, huh.NewInput().
			Title(string(t)).
			Description("Value").
			Value(&TempText))
	case PromptOptionalValueText:
		fields = append(fields, huh.NewInput().
			Title(string(t)).
			Description("Reason (leave empty for the default)").
			Value(&TempText))
	case PromptModalName:
		fields = append(fields, huh.NewInput().
			Title("Modal name").
			Placeholder("ACCOUNT_DETAILS").
			Value(&TempText))
	case PromptID, PromptUnconfirmedCount:
		title := "Transaction id"
		if PromptFor(t) == PromptUnconfirmedCount {
			title = "Unconfirmed actions remaining"
		}
		fields = append(fields, huh.NewInput().
			Title(title).
			Placeholder("0").
			Value(&TempText).
			Validate(validateInt))
	case PromptValueBool, PromptPayloadBool:
		fields = append(fields, huh.NewConfirm().
			Title(string(t)).
			Affirmative("true").
			Negative("false").
			Value(&TempBool))
	case PromptHdPath:
		fields = append(fields,
			huh.NewSelect[string]().
				Title("Device").
				Options(
					huh.NewOption("Ledger", appstate.DeviceLedger),
					huh.NewOption("Trezor", appstate.DeviceTrezor),
					huh.NewOption("Lattice", appstate.DeviceLattice),
				).
				Value(&TempDevice),
			huh.NewInput().
				Title("Derivation path").
				Placeholder("m/44'/60'/0'").
				Value(&TempText).
				Validate(appstate.ValidateHdPath),
		)
	}

	form := huh.NewForm(huh.NewGroup(fields...)).WithTheme(huh.ThemeCatppuccin())
	form.Init()
	return form
}

func validateInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil {
		return fmt.Errorf("must be a whole number")
	}
	return nil
}

// Input is what the user entered for an action.
type Input struct {
	Text   string
	Bool   bool
	Device string
}

// CurrentInput returns the values bound to the forms.
func CurrentInput() Input {
	return Input{Text: TempText, Bool: TempBool, Device: TempDevice}
}

// BuildAction encodes t and in into the wire shape and decodes it, so
// actions dispatched from the console take the same path as external ones.
func BuildAction(t appstate.ActionType, in Input) (appstate.Action, error) {
	w := map[string]any{"type": string(t)}
	text := strings.TrimSpace(in.Text)

	switch PromptFor(t) {
	case PromptValueText:
		w["value"] = in.Text
	case PromptOptionalValueText:
		if text != "" {
			w["value"] = in.Text
		}
	case PromptPayloadText:
		w["payload"] = in.Text
	case PromptModalName:
		w["payload"] = map[string]any{"name": text}
	case PromptID:
		if text != "" {
			id, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parse id: %w", err)
			}
			w["id"] = id
		}
	case PromptUnconfirmedCount:
		n := 0
		if text != "" {
			v, err := strconv.Atoi(text)
			if err != nil {
				return nil, fmt.Errorf("parse count: %w", err)
			}
			n = v
		}
		w["value"] = map[string]any{"unconfirmedActionsCount": n}
	case PromptValueBool:
		w["value"] = in.Bool
	case PromptPayloadBool:
		w["payload"] = in.Bool
	case PromptHdPath:
		w["value"] = map[string]any{"device": in.Device, "path": text}
	}

	raw, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("encode action: %w", err)
	}
	return appstate.DecodeAction(raw)
}

// Render renders the picker or value form
func Render(form *huh.Form) string {
	if form != nil {
		return styles.PanelStyle.Render(form.View())
	}
	return "Loading menu..."
}
