// Package appstate holds the wallet's ephemeral UI state and the reducer that
// advances it in response to dispatched actions.
package appstate

import "maps"

// Account detail subviews.
const (
	SubviewTransactions = "transactions"
	SubviewExport       = "export"
)

// Account export progress.
const (
	AccountExportNone      = "none"
	AccountExportCompleted = "completed"
)

// ModalState describes the modal being shown. Props carries everything the
// MODAL_OPEN payload had besides its name.
type ModalState struct {
	Name  Field[string]  `json:"name" yaml:"name"`
	Props map[string]any `json:"props,omitempty" yaml:"props,omitempty"`
}

// Modal is the modal overlay slot.
type Modal struct {
	Open       bool       `json:"open" yaml:"open"`
	ModalState ModalState `json:"modalState" yaml:"modalState"`
}

// AccountDetail is the account detail subview. The zero value is the empty
// record left behind by CLEAR_ACCOUNT_DETAILS.
type AccountDetail struct {
	Subview       Field[string] `json:"subview,omitzero" yaml:"subview,omitempty"`
	AccountExport Field[string] `json:"accountExport,omitzero" yaml:"accountExport,omitempty"`
	PrivateKey    Field[string] `json:"privateKey,omitzero" yaml:"privateKey,omitempty"`
}

// DefaultAccountDetail is the account detail shown after navigating home.
func DefaultAccountDetail() AccountDetail {
	return AccountDetail{
		Subview:       Of(SubviewTransactions),
		AccountExport: Of(AccountExportNone),
		PrivateKey:    Of(""),
	}
}

// AppState is the "app" slice of the wallet's state. Values are treated as
// immutable: Reduce returns a new AppState and never writes through maps it
// shares with its input.
type AppState struct {
	NetworkDropdownOpen bool          `json:"networkDropdownOpen" yaml:"networkDropdownOpen"`
	AlertOpen           bool          `json:"alertOpen" yaml:"alertOpen"`
	AlertMessage        Field[string] `json:"alertMessage,omitzero" yaml:"alertMessage,omitempty"`
	QRCodeData          Field[string] `json:"qrCodeData,omitzero" yaml:"qrCodeData,omitempty"`
	Modal               Modal         `json:"modal" yaml:"modal"`
	AccountDetail       AccountDetail `json:"accountDetail" yaml:"accountDetail"`
	Warning             Field[string] `json:"warning,omitzero" yaml:"warning,omitempty"`
	IsLoading           bool          `json:"isLoading" yaml:"isLoading"`
	LoadingMessage      Field[string] `json:"loadingMessage,omitzero" yaml:"loadingMessage,omitempty"`
	ScrollToBottom      bool          `json:"scrollToBottom" yaml:"scrollToBottom"`
	ForgottenPassword   Field[bool]   `json:"forgottenPassword,omitzero" yaml:"forgottenPassword,omitempty"`
	TxID                Field[int64]  `json:"txId,omitzero" yaml:"txId,omitempty"`

	// DefaultHdPaths maps a hardware wallet device name to its derivation path.
	DefaultHdPaths map[string]string `json:"defaultHdPaths" yaml:"defaultHdPaths"`

	IsMouseUser bool `json:"isMouseUser" yaml:"isMouseUser"`

	SmartTransactionFees      *SmartTransactionFees `json:"smartTransactionFees" yaml:"smartTransactionFees"`
	SmartTransactionsLiveness bool                  `json:"smartTransactionsLiveness" yaml:"smartTransactionsLiveness"`
	SmartTransactionsError    Field[string]         `json:"smartTransactionsError,omitzero" yaml:"smartTransactionsError,omitempty"`
}

// InitialState returns the state the application starts with.
func InitialState() AppState {
	return AppState{
		AlertMessage: Null[string](),
		QRCodeData:   Null[string](),
		Modal: Modal{
			ModalState: ModalState{Name: Null[string]()},
		},
		AccountDetail:          DefaultAccountDetail(),
		Warning:                Null[string](),
		LoadingMessage:         Null[string](),
		ForgottenPassword:      Null[bool](),
		TxID:                   Null[int64](),
		DefaultHdPaths:         DefaultHdPaths(),
		SmartTransactionsError: Null[string](),
	}
}

// Clone returns a copy of s that shares no maps with it. The smart
// transaction fee quote is shared; it is never modified after dispatch.
func (s AppState) Clone() AppState {
	c := s
	c.DefaultHdPaths = maps.Clone(s.DefaultHdPaths)
	c.Modal.ModalState.Props = maps.Clone(s.Modal.ModalState.Props)
	return c
}
