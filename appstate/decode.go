package appstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedAction is returned when an encoded action cannot be decoded.
var ErrMalformedAction = errors.New("malformed action")

// wireAction is the loose action shape produced by action creators.
type wireAction struct {
	Type    string          `json:"type"`
	Value   json.RawMessage `json:"value,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
	ID      json.RawMessage `json:"id,omitempty"`
}

type completedTxValue struct {
	ID                      int64 `json:"id"`
	UnconfirmedActionsCount int   `json:"unconfirmedActionsCount"`
}

type hdPathValue struct {
	Device string `json:"device"`
	Path   string `json:"path"`
}

// DecodeAction decodes a {type, value?, payload?, id?} object into its
// Action variant. Absent fields decode to undefined values; unrecognised types
// decode to Unknown.
func DecodeAction(data []byte) (Action, error) {
	var w wireAction
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAction, err)
	}
	if strings.TrimSpace(w.Type) == "" {
		return nil, fmt.Errorf("%w: missing type", ErrMalformedAction)
	}

	a, err := w.action()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedAction, w.Type, err)
	}
	return a, nil
}

func (w wireAction) action() (Action, error) {
	switch ActionType(w.Type) {
	case TypeNetworkDropdownOpen:
		return NetworkDropdownOpen{}, nil
	case TypeNetworkDropdownClose:
		return NetworkDropdownClose{}, nil
	case TypeAlertOpen:
		msg, err := decodeField[string](w.Value)
		return AlertOpen{Message: msg}, err
	case TypeAlertClose:
		return AlertClose{}, nil
	case TypeQRCodeDetected:
		data, err := decodeField[string](w.Value)
		return QRCodeDetected{Data: data}, err
	case TypeModalOpen:
		return decodeModalOpen(w.Payload)
	case TypeModalClose:
		return ModalClose{}, nil
	case TypeShowSendTokenPage:
		return ShowSendTokenPage{}, nil
	case TypeLockMetaMask:
		return LockMetaMask{}, nil
	case TypeGoHome:
		return GoHome{}, nil
	case TypeShowAccountDetail:
		addr, err := decodeField[string](w.Value)
		return ShowAccountDetail{Address: addr.OrElse("")}, err
	case TypeClearAccountDetails:
		return ClearAccountDetails{}, nil
	case TypeShowAccountsPage:
		return ShowAccountsPage{}, nil
	case TypeShowConfTxPage:
		id, err := decodeField[int64](w.ID)
		return ShowConfTxPage{ID: id}, err
	case TypeCompletedTx:
		var v completedTxValue
		if err := decodeValue(w.Value, &v); err != nil {
			return nil, err
		}
		return CompletedTx{ID: v.ID, UnconfirmedActionsCount: v.UnconfirmedActionsCount}, nil
	case TypeUnlockFailed:
		msg, err := decodeField[string](w.Value)
		return UnlockFailed{Message: msg}, err
	case TypeUnlockSucceeded:
		return UnlockSucceeded{}, nil
	case TypeSetHardwareWalletDefaultHdPath:
		var v hdPathValue
		if err := decodeValue(w.Value, &v); err != nil {
			return nil, err
		}
		return SetHardwareWalletDefaultHdPath{Device: v.Device, Path: v.Path}, nil
	case TypeShowLoading:
		msg, err := decodeField[string](w.Value)
		return ShowLoading{Message: msg}, err
	case TypeHideLoading:
		return HideLoading{}, nil
	case TypeDisplayWarning:
		msg, err := decodeField[string](w.Value)
		return DisplayWarning{Message: msg}, err
	case TypeHideWarning:
		return HideWarning{}, nil
	case TypeShowPrivateKey:
		key, err := decodeField[string](w.Value)
		return ShowPrivateKey{Key: key}, err
	case TypeSetMouseUserState:
		v, err := decodeField[bool](w.Value)
		return SetMouseUserState{IsMouseUser: v.OrElse(false)}, err
	case TypeSetSmartTransactionFees:
		var fees *SmartTransactionFees
		if err := decodeValue(w.Payload, &fees); err != nil {
			return nil, err
		}
		return SetSmartTransactionFees{Fees: fees}, nil
	case TypeSetSmartTransactionsLiveness:
		v, err := decodeField[bool](w.Payload)
		return SetSmartTransactionsLiveness{Live: v.OrElse(false)}, err
	case TypeSetSmartTransactionsError:
		msg, err := decodeField[string](w.Payload)
		return SetSmartTransactionsError{Error: msg}, err
	default:
		return Unknown{Name: w.Type}, nil
	}
}

func decodeField[T any](raw json.RawMessage) (Field[T], error) {
	var f Field[T]
	if len(raw) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(raw, &f); err != nil {
		return Field[T]{}, err
	}
	return f, nil
}

// decodeValue unmarshals raw into v, leaving v untouched when raw is absent.
func decodeValue(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}

func decodeModalOpen(raw json.RawMessage) (Action, error) {
	var payload map[string]any
	if err := decodeValue(raw, &payload); err != nil {
		return nil, err
	}

	a := ModalOpen{}
	if payload == nil {
		return a, nil
	}
	if name, ok := payload["name"]; ok {
		switch n := name.(type) {
		case string:
			a.Name = Of(n)
		case nil:
			a.Name = Null[string]()
		default:
			return nil, fmt.Errorf("modal name must be a string, got %T", name)
		}
		delete(payload, "name")
	}
	if len(payload) > 0 {
		a.Props = payload
	}
	return a, nil
}

// EncodeAction encodes a into the wire shape DecodeAction accepts.
func EncodeAction(a Action) ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil action", ErrMalformedAction)
	}

	w := struct {
		Type    ActionType `json:"type"`
		Value   any        `json:"value,omitempty"`
		Payload any        `json:"payload,omitempty"`
		ID      any        `json:"id,omitempty"`
	}{Type: a.Type()}

	switch a := a.(type) {
	case AlertOpen:
		w.Value = wireField(a.Message)
	case QRCodeDetected:
		w.Value = wireField(a.Data)
	case ModalOpen:
		payload := make(map[string]any, len(a.Props)+1)
		for k, v := range a.Props {
			payload[k] = v
		}
		if !a.Name.IsUndefined() {
			payload["name"] = a.Name
		}
		w.Payload = payload
	case ShowAccountDetail:
		if a.Address != "" {
			w.Value = a.Address
		}
	case ShowConfTxPage:
		w.ID = wireField(a.ID)
	case CompletedTx:
		w.Value = completedTxValue{ID: a.ID, UnconfirmedActionsCount: a.UnconfirmedActionsCount}
	case UnlockFailed:
		w.Value = wireField(a.Message)
	case SetHardwareWalletDefaultHdPath:
		w.Value = hdPathValue{Device: a.Device, Path: a.Path}
	case ShowLoading:
		w.Value = wireField(a.Message)
	case DisplayWarning:
		w.Value = wireField(a.Message)
	case ShowPrivateKey:
		w.Value = wireField(a.Key)
	case SetMouseUserState:
		w.Value = a.IsMouseUser
	case SetSmartTransactionFees:
		if a.Fees != nil {
			w.Payload = a.Fees
		}
	case SetSmartTransactionsLiveness:
		w.Payload = a.Live
	case SetSmartTransactionsError:
		w.Payload = wireField(a.Error)
	}

	return json.Marshal(w)
}

// wireField maps an undefined field to an omitted key.
func wireField[T any](f Field[T]) any {
	if f.IsUndefined() {
		return nil
	}
	return f
}
