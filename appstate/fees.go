package appstate

import "math/big"

// GasFee is one EIP-1559 fee level of a smart transaction quote.
type GasFee struct {
	MaxFeePerGas         *big.Int `json:"maxFeePerGas" yaml:"maxFeePerGas"`
	MaxPriorityFeePerGas *big.Int `json:"maxPriorityFeePerGas" yaml:"maxPriorityFeePerGas"`
}

// SmartTransactionFees is a fee quote for submitting (Fees) or cancelling
// (CancelFees) a smart transaction. Amounts are in wei.
type SmartTransactionFees struct {
	CancelFees  []GasFee `json:"cancelFees" yaml:"cancelFees"`
	FeeEstimate *big.Int `json:"feeEstimate" yaml:"feeEstimate"`
	Fees        []GasFee `json:"fees" yaml:"fees"`
	GasLimit    uint64   `json:"gasLimit" yaml:"gasLimit"`
	GasUsed     uint64   `json:"gasUsed" yaml:"gasUsed"`
}

// Lowest returns the first (cheapest) submission fee level.
func (f *SmartTransactionFees) Lowest() (GasFee, bool) {
	if f == nil || len(f.Fees) == 0 {
		return GasFee{}, false
	}
	return f.Fees[0], true
}
