package rpc

import (
	"context"
	"fmt"
	"math/big"

	"charm-wallet-state/appstate"
)

const (
	// FeeLevels is the number of levels in each fee ladder.
	FeeLevels = 19
	// TransferGas is the gas used by a plain ETH transfer.
	TransferGas = 21000
)

// FetchSmartTransactionFees builds a fee quote from the latest base fee and
// the node's suggested priority fee.
func FetchSmartTransactionFees(ctx context.Context, src FeeSource) (*appstate.SmartTransactionFees, error) {
	if src == nil {
		return nil, ErrNoClient
	}

	ctx, cancel := context.WithTimeout(ctx, quoteTimeout)
	defer cancel()

	head, err := src.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch latest header: %w", err)
	}
	if head.BaseFee == nil {
		return nil, ErrNoBaseFee
	}

	tip, err := src.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas tip cap: %w", err)
	}

	// maxFee = 2*baseFee + tip survives six consecutive full blocks.
	maxFee := new(big.Int).Mul(head.BaseFee, big.NewInt(2))
	maxFee.Add(maxFee, tip)

	return BuildFeeLadder(maxFee, tip, FeeLevels), nil
}

// BuildFeeLadder returns a quote whose levels escalate by 10% each. Fees
// start one step above CancelFees, so a cancellation at level i is always
// cheaper than the matching submission. FeeEstimate is TransferGas at the
// base level.
func BuildFeeLadder(maxFee, tip *big.Int, levels int) *appstate.SmartTransactionFees {
	q := &appstate.SmartTransactionFees{
		FeeEstimate: new(big.Int).Mul(maxFee, big.NewInt(TransferGas)),
		GasLimit:    TransferGas,
		GasUsed:     TransferGas,
	}
	if levels <= 0 {
		return q
	}

	steps := make([]appstate.GasFee, levels+1)
	steps[0] = appstate.GasFee{
		MaxFeePerGas:         new(big.Int).Set(maxFee),
		MaxPriorityFeePerGas: new(big.Int).Set(tip),
	}
	for i := 1; i <= levels; i++ {
		steps[i] = appstate.GasFee{
			MaxFeePerGas:         bump(steps[i-1].MaxFeePerGas),
			MaxPriorityFeePerGas: bump(steps[i-1].MaxPriorityFeePerGas),
		}
	}

	q.CancelFees = steps[:levels]
	q.Fees = steps[1:]
	return q
}

// bump returns v * 11 / 10.
func bump(v *big.Int) *big.Int {
	out := new(big.Int).Mul(v, big.NewInt(11))
	return out.Quo(out, big.NewInt(10))
}
