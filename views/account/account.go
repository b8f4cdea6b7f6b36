package account

import (
	"strings"

	"charm-wallet-state/appstate"
	"charm-wallet-state/helpers"
	"charm-wallet-state/styles"
)

// Render renders the account detail panel. The private key stays masked
// unless reveal is set.
func Render(d appstate.AccountDetail, reveal bool) string {
	h := styles.TitleStyle.Render("Account Detail")

	if d == (appstate.AccountDetail{}) {
		return strings.Join([]string{h, "", styles.NullStyle.Render("{} (cleared)")}, "\n")
	}

	key := d.PrivateKey.String()
	if k, ok := d.PrivateKey.Get(); ok && k != "" && !reveal {
		key = helpers.MaskSecret(k)
	}

	lines := []string{
		h,
		"",
		styles.Row("subview", styles.FieldValue(d.Subview.String(), d.Subview.IsSet())),
		styles.Row("accountExport", styles.FieldValue(d.AccountExport.String(), d.AccountExport.IsSet())),
		styles.Row("privateKey", styles.FieldValue(key, d.PrivateKey.IsSet())),
	}

	if sub, _ := d.Subview.Get(); sub == appstate.SubviewExport {
		lines = append(lines, "", styles.WarnStyle.Render("Private key exported. Never share it."))
	}

	return strings.Join(lines, "\n")
}
