package appstate

// ActionType is the tag that selects a reducer case. Values match the type
// strings used on the wire.
type ActionType string

const (
	TypeNetworkDropdownOpen            ActionType = "NETWORK_DROPDOWN_OPEN"
	TypeNetworkDropdownClose           ActionType = "NETWORK_DROPDOWN_CLOSE"
	TypeAlertOpen                      ActionType = "ALERT_OPEN"
	TypeAlertClose                     ActionType = "ALERT_CLOSE"
	TypeQRCodeDetected                 ActionType = "QR_CODE_DETECTED"
	TypeModalOpen                      ActionType = "MODAL_OPEN"
	TypeModalClose                     ActionType = "MODAL_CLOSE"
	TypeShowSendTokenPage              ActionType = "SHOW_SEND_TOKEN_PAGE"
	TypeLockMetaMask                   ActionType = "LOCK_METAMASK"
	TypeGoHome                         ActionType = "GO_HOME"
	TypeShowAccountDetail              ActionType = "SHOW_ACCOUNT_DETAIL"
	TypeClearAccountDetails            ActionType = "CLEAR_ACCOUNT_DETAILS"
	TypeShowAccountsPage               ActionType = "SHOW_ACCOUNTS_PAGE"
	TypeShowConfTxPage                 ActionType = "SHOW_CONF_TX_PAGE"
	TypeCompletedTx                    ActionType = "COMPLETED_TX"
	TypeUnlockFailed                   ActionType = "UNLOCK_FAILED"
	TypeUnlockSucceeded                ActionType = "UNLOCK_SUCCEEDED"
	TypeSetHardwareWalletDefaultHdPath ActionType = "SET_HARDWARE_WALLET_DEFAULT_HD_PATH"
	TypeShowLoading                    ActionType = "SHOW_LOADING"
	TypeHideLoading                    ActionType = "HIDE_LOADING"
	TypeDisplayWarning                 ActionType = "DISPLAY_WARNING"
	TypeHideWarning                    ActionType = "HIDE_WARNING"
	TypeShowPrivateKey                 ActionType = "SHOW_PRIVATE_KEY"
	TypeSetMouseUserState              ActionType = "SET_MOUSE_USER_STATE"
	TypeSetSmartTransactionFees        ActionType = "SET_SMART_TRANSACTION_FEES"
	TypeSetSmartTransactionsLiveness   ActionType = "SET_SMART_TRANSACTIONS_LIVENESS"
	TypeSetSmartTransactionsError      ActionType = "SET_SMART_TRANSACTIONS_ERROR"
)

// KnownTypes lists every action type the reducer handles, in dispatch table
// order.
var KnownTypes = []ActionType{
	TypeNetworkDropdownOpen,
	TypeNetworkDropdownClose,
	TypeAlertOpen,
	TypeAlertClose,
	TypeQRCodeDetected,
	TypeModalOpen,
	TypeModalClose,
	TypeShowSendTokenPage,
	TypeLockMetaMask,
	TypeGoHome,
	TypeShowAccountDetail,
	TypeClearAccountDetails,
	TypeShowAccountsPage,
	TypeShowConfTxPage,
	TypeCompletedTx,
	TypeUnlockFailed,
	TypeUnlockSucceeded,
	TypeSetHardwareWalletDefaultHdPath,
	TypeShowLoading,
	TypeHideLoading,
	TypeDisplayWarning,
	TypeHideWarning,
	TypeShowPrivateKey,
	TypeSetMouseUserState,
	TypeSetSmartTransactionFees,
	TypeSetSmartTransactionsLiveness,
	TypeSetSmartTransactionsError,
}

// Action is a state transition request. The set of implementations is closed;
// each carries only the fields its reducer case reads.
type Action interface {
	Type() ActionType
	action()
}

type (
	NetworkDropdownOpen  struct{}
	NetworkDropdownClose struct{}

	AlertOpen struct {
		Message Field[string]
	}
	AlertClose struct{}

	QRCodeDetected struct {
		Data Field[string]
	}

	// ModalOpen shows the named modal. Props are the remaining payload keys.
	ModalOpen struct {
		Name  Field[string]
		Props map[string]any
	}
	ModalClose struct{}

	ShowSendTokenPage struct{}
	LockMetaMask      struct{}
	GoHome            struct{}

	// ShowAccountDetail opens the detail view for an account. The address is
	// carried for subscribers; the reducer does not store it.
	ShowAccountDetail struct {
		Address string
	}
	ClearAccountDetails struct{}
	ShowAccountsPage    struct{}

	ShowConfTxPage struct {
		ID Field[int64]
	}

	// CompletedTx reports a finished transaction and how many confirmations
	// are still pending afterwards.
	CompletedTx struct {
		ID                      int64
		UnconfirmedActionsCount int
	}

	// UnlockFailed carries an optional reason; an unset Message falls back
	// to DefaultUnlockFailedWarning.
	UnlockFailed struct {
		Message Field[string]
	}
	UnlockSucceeded struct{}

	SetHardwareWalletDefaultHdPath struct {
		Device string
		Path   string
	}

	ShowLoading struct {
		Message Field[string]
	}
	HideLoading struct{}

	DisplayWarning struct {
		Message Field[string]
	}
	HideWarning struct{}

	ShowPrivateKey struct {
		Key Field[string]
	}

	SetMouseUserState struct {
		IsMouseUser bool
	}

	SetSmartTransactionFees struct {
		Fees *SmartTransactionFees
	}
	SetSmartTransactionsLiveness struct {
		Live bool
	}
	SetSmartTransactionsError struct {
		Error Field[string]
	}

	// Unknown is any action whose type tag the reducer does not handle.
	Unknown struct {
		Name string
	}
)

func (NetworkDropdownOpen) Type() ActionType            { return TypeNetworkDropdownOpen }
func (NetworkDropdownClose) Type() ActionType           { return TypeNetworkDropdownClose }
func (AlertOpen) Type() ActionType                      { return TypeAlertOpen }
func (AlertClose) Type() ActionType                     { return TypeAlertClose }
func (QRCodeDetected) Type() ActionType                 { return TypeQRCodeDetected }
func (ModalOpen) Type() ActionType                      { return TypeModalOpen }
func (ModalClose) Type() ActionType                     { return TypeModalClose }
func (ShowSendTokenPage) Type() ActionType              { return TypeShowSendTokenPage }
func (LockMetaMask) Type() ActionType                   { return TypeLockMetaMask }
func (GoHome) Type() ActionType                         { return TypeGoHome }
func (ShowAccountDetail) Type() ActionType              { return TypeShowAccountDetail }
func (ClearAccountDetails) Type() ActionType            { return TypeClearAccountDetails }
func (ShowAccountsPage) Type() ActionType               { return TypeShowAccountsPage }
func (ShowConfTxPage) Type() ActionType                 { return TypeShowConfTxPage }
func (CompletedTx) Type() ActionType                    { return TypeCompletedTx }
func (UnlockFailed) Type() ActionType                   { return TypeUnlockFailed }
func (UnlockSucceeded) Type() ActionType                { return TypeUnlockSucceeded }
func (SetHardwareWalletDefaultHdPath) Type() ActionType { return TypeSetHardwareWalletDefaultHdPath }
func (ShowLoading) Type() ActionType                    { return TypeShowLoading }
func (HideLoading) Type() ActionType                    { return TypeHideLoading }
func (DisplayWarning) Type() ActionType                 { return TypeDisplayWarning }
func (HideWarning) Type() ActionType                    { return TypeHideWarning }
func (ShowPrivateKey) Type() ActionType                 { return TypeShowPrivateKey }
func (SetMouseUserState) Type() ActionType              { return TypeSetMouseUserState }
func (SetSmartTransactionFees) Type() ActionType        { return TypeSetSmartTransactionFees }
func (SetSmartTransactionsLiveness) Type() ActionType   { return TypeSetSmartTransactionsLiveness }
func (SetSmartTransactionsError) Type() ActionType      { return TypeSetSmartTransactionsError }
func (a Unknown) Type() ActionType                      { return ActionType(a.Name) }

func (NetworkDropdownOpen) action()            {}
func (NetworkDropdownClose) action()           {}
func (AlertOpen) action()                      {}
func (AlertClose) action()                     {}
func (QRCodeDetected) action()                 {}
func (ModalOpen) action()                      {}
func (ModalClose) action()                     {}
func (ShowSendTokenPage) action()              {}
func (LockMetaMask) action()                   {}
func (GoHome) action()                         {}
func (ShowAccountDetail) action()              {}
func (ClearAccountDetails) action()            {}
func (ShowAccountsPage) action()               {}
func (ShowConfTxPage) action()                 {}
func (CompletedTx) action()                    {}
func (UnlockFailed) action()                   {}
func (UnlockSucceeded) action()                {}
func (SetHardwareWalletDefaultHdPath) action() {}
func (ShowLoading) action()                    {}
func (HideLoading) action()                    {}
func (DisplayWarning) action()                 {}
func (HideWarning) action()                    {}
func (ShowPrivateKey) action()                 {}
func (SetMouseUserState) action()              {}
func (SetSmartTransactionFees) action()        {}
func (SetSmartTransactionsLiveness) action()   {}
func (SetSmartTransactionsError) action()      {}
func (Unknown) action()                        {}
