package appstate

import "maps"

// DefaultUnlockFailedWarning is shown when an unlock attempt fails without a
// reason.
const DefaultUnlockFailedWarning = "Incorrect password. Try again."

// Reduce returns the state that results from applying action to state.
// Unknown or nil actions return state unchanged. Reduce has no side effects
// and never writes to maps reachable from state.
//
// Clearing is not uniform: most actions set warning to null,
// UNLOCK_SUCCEEDED sets it to "" and HIDE_WARNING leaves it undefined.
func Reduce(state AppState, action Action) AppState {
	next := state

	switch a := action.(type) {
	case NetworkDropdownOpen:
		next.NetworkDropdownOpen = true

	case NetworkDropdownClose:
		next.NetworkDropdownOpen = false

	case AlertOpen:
		next.AlertOpen = true
		next.AlertMessage = a.Message

	case AlertClose:
		next.AlertOpen = false
		next.AlertMessage = Null[string]()

	case QRCodeDetected:
		next.QRCodeData = a.Data

	case ModalOpen:
		next.Modal = Modal{
			Open: true,
			ModalState: ModalState{
				Name:  a.Name,
				Props: maps.Clone(a.Props),
			},
		}

	case ModalClose:
		next.Modal = Modal{
			Open:       false,
			ModalState: ModalState{Name: Null[string]()},
		}

	case ShowSendTokenPage, LockMetaMask:
		next.Warning = Null[string]()

	case GoHome:
		next.AccountDetail = DefaultAccountDetail()
		next.Warning = Null[string]()

	case ShowAccountDetail:
		next.AccountDetail = DefaultAccountDetail()
		next.ForgottenPassword = Null[bool]()

	case ClearAccountDetails:
		next.AccountDetail = AccountDetail{}

	case ShowAccountsPage:
		next.IsLoading = false
		next.Warning = Null[string]()
		next.ScrollToBottom = false
		next.ForgottenPassword = Of(false)

	case ShowConfTxPage:
		next.TxID = a.ID
		next.Warning = Null[string]()
		next.IsLoading = false

	case CompletedTx:
		next.TxID = Null[int64]()
		next.Warning = Null[string]()
		if a.UnconfirmedActionsCount == 0 {
			next.AccountDetail = AccountDetail{Subview: Of(SubviewTransactions)}
		}

	case UnlockFailed:
		next.Warning = Of(a.Message.OrElse(DefaultUnlockFailedWarning))

	case UnlockSucceeded:
		next.Warning = Of("")

	case SetHardwareWalletDefaultHdPath:
		paths := maps.Clone(state.DefaultHdPaths)
		if paths == nil {
			paths = DefaultHdPaths()
		}
		paths[a.Device] = a.Path
		next.DefaultHdPaths = paths

	case ShowLoading:
		next.IsLoading = true
		next.LoadingMessage = a.Message

	case HideLoading:
		next.IsLoading = false

	case DisplayWarning:
		next.IsLoading = false
		next.Warning = a.Message

	case HideWarning:
		next.Warning = Undefined[string]()

	case ShowPrivateKey:
		next.AccountDetail = AccountDetail{
			Subview:       Of(SubviewExport),
			AccountExport: Of(AccountExportCompleted),
			PrivateKey:    a.Key,
		}

	case SetMouseUserState:
		next.IsMouseUser = a.IsMouseUser

	case SetSmartTransactionFees:
		next.SmartTransactionFees = a.Fees

	case SetSmartTransactionsLiveness:
		next.SmartTransactionsLiveness = a.Live

	case SetSmartTransactionsError:
		next.SmartTransactionsError = a.Error

	default:
		return state
	}

	return next
}
