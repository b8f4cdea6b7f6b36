package flags

import (
	"strings"

	"charm-wallet-state/appstate"
	"charm-wallet-state/helpers"
	"charm-wallet-state/styles"
)

// Render renders the top-level app state fields.
func Render(s appstate.AppState) string {
	h := styles.TitleStyle.Render("App State")

	field := func(label, v string, set bool) string {
		return styles.Row(label, styles.FieldValue(v, set))
	}

	warning := field("warning", s.Warning.String(), s.Warning.IsSet())
	if w, ok := s.Warning.Get(); ok && w != "" {
		warning = styles.Row("warning", styles.WarnStyle.Render(w))
	}

	lines := []string{
		h,
		"",
		styles.Row("networkDropdownOpen", helpers.OnOff(s.NetworkDropdownOpen)),
		styles.Row("alertOpen", helpers.OnOff(s.AlertOpen)),
		field("alertMessage", s.AlertMessage.String(), s.AlertMessage.IsSet()),
		field("qrCodeData", s.QRCodeData.String(), s.QRCodeData.IsSet()),
		styles.Row("modal.open", helpers.OnOff(s.Modal.Open)),
		field("modal.name", s.Modal.ModalState.Name.String(), s.Modal.ModalState.Name.IsSet()),
		warning,
		styles.Row("isLoading", helpers.OnOff(s.IsLoading)),
		field("loadingMessage", s.LoadingMessage.String(), s.LoadingMessage.IsSet()),
		styles.Row("scrollToBottom", helpers.OnOff(s.ScrollToBottom)),
		field("forgottenPassword", s.ForgottenPassword.String(), s.ForgottenPassword.IsSet()),
		field("txId", s.TxID.String(), s.TxID.IsSet()),
		styles.Row("isMouseUser", helpers.OnOff(s.IsMouseUser)),
	}

	return strings.Join(lines, "\n")
}
