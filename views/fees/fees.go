package fees

import (
	"fmt"
	"strings"

	"charm-wallet-state/appstate"
	"charm-wallet-state/helpers"
	"charm-wallet-state/styles"
)

// shownLevels caps how many ladder rows are drawn.
const shownLevels = 5

// Render renders the smart transactions panel.
func Render(s appstate.AppState, fetching bool, spinnerView string) string {
	h := styles.TitleStyle.Render("Smart Transactions")

	live := styles.ErrorStyle.Render("down")
	if s.SmartTransactionsLiveness {
		live = styles.OKStyle.Render("live")
	}

	lines := []string{
		h,
		"",
		styles.Row("liveness", live),
	}

	if msg, ok := s.SmartTransactionsError.Get(); ok {
		lines = append(lines, styles.Row("error", styles.ErrorStyle.Render(msg)))
	} else {
		lines = append(lines, styles.Row("error", styles.FieldValue(s.SmartTransactionsError.String(), false)))
	}

	if fetching {
		lines = append(lines, "", spinnerView+" fetching quote…")
		return strings.Join(lines, "\n")
	}

	q := s.SmartTransactionFees
	if q == nil {
		lines = append(lines, "", styles.NullStyle.Render("No fee quote. Press f to fetch one."))
		return strings.Join(lines, "\n")
	}

	lines = append(lines,
		styles.Row("feeEstimate", helpers.FormatETH(q.FeeEstimate)),
		styles.Row("gas", fmt.Sprintf("%d used / %d limit", q.GasUsed, q.GasLimit)),
		"",
		styles.HotkeyStyle.Render(fmt.Sprintf("%-5s %-16s %-16s", "lvl", "maxFee", "priority")),
	)

	for i, fee := range q.Fees {
		if i == shownLevels {
			lines = append(lines, styles.NullStyle.Render(fmt.Sprintf("… %d more levels", len(q.Fees)-shownLevels)))
			break
		}
		lines = append(lines, fmt.Sprintf("%-5d %-16s %-16s", i, helpers.FormatGwei(fee.MaxFeePerGas), helpers.FormatGwei(fee.MaxPriorityFeePerGas)))
	}

	if len(q.CancelFees) > 0 {
		lines = append(lines, "", styles.Row("cancel from", helpers.FormatGwei(q.CancelFees[0].MaxFeePerGas)))
	}

	return strings.Join(lines, "\n")
}
