package appstate

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
)

// Hardware wallet device names.
const (
	DeviceTrezor  = "trezor"
	DeviceLedger  = "ledger"
	DeviceLattice = "lattice"
)

// DefaultHdPaths returns a fresh copy of the base derivation paths for each
// supported hardware wallet.
func DefaultHdPaths() map[string]string {
	return map[string]string{
		DeviceTrezor:  "m/44'/60'/0'/0",
		DeviceLedger:  "m/44'/60'/0'/0/0",
		DeviceLattice: "m/44'/60'/0'/0",
	}
}

// ValidateHdPath reports whether path is a well-formed BIP-32 derivation path.
// The reducer does not call it; callers that accept paths from users do.
func ValidateHdPath(path string) error {
	if _, err := accounts.ParseDerivationPath(path); err != nil {
		return fmt.Errorf("invalid derivation path %q: %w", path, err)
	}
	return nil
}
