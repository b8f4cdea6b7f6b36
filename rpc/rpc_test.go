package rpc

import (
	"context"
	"errors"
	"math/big"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
)

type fakeFeeSource struct {
	baseFee   *big.Int
	tip       *big.Int
	headerErr error
	tipErr    error
}

func (f fakeFeeSource) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	if f.headerErr != nil {
		return nil, f.headerErr
	}
	return &types.Header{Number: big.NewInt(1), BaseFee: f.baseFee}, nil
}

func (f fakeFeeSource) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	if f.tipErr != nil {
		return nil, f.tipErr
	}
	return f.tip, nil
}

func TestConnect(t *testing.T) {
	// Get RPC URL from environment
	rpcURL := os.Getenv("ETH_RPC_URL")
	if rpcURL == "" {
		t.Skip("ETH_RPC_URL not set, skipping connection test")
	}

	t.Run("successful connection", func(t *testing.T) {
		result := Connect(rpcURL)

		if result.Error != nil {
			t.Fatalf("Failed to connect to RPC: %v", result.Error)
		}
		if result.Client == nil {
			t.Fatal("Client is nil despite no error")
		}
		if result.Client.URL != rpcURL {
			t.Errorf("Expected URL %s, got %s", rpcURL, result.Client.URL)
		}
	})

	t.Run("live fee quote", func(t *testing.T) {
		result := ConnectWithTimeout(rpcURL, 10*time.Second)
		if result.Error != nil {
			t.Fatalf("Failed to connect with custom timeout: %v", result.Error)
		}

		quote, err := FetchSmartTransactionFees(context.Background(), result.Client)
		if err != nil {
			t.Fatalf("FetchSmartTransactionFees failed: %v", err)
		}
		if len(quote.Fees) != FeeLevels {
			t.Errorf("Expected %d fee levels, got %d", FeeLevels, len(quote.Fees))
		}
		t.Logf("Lowest max fee: %s wei", quote.Fees[0].MaxFeePerGas)
	})
}

func TestFetchSmartTransactionFees(t *testing.T) {
	src := fakeFeeSource{baseFee: big.NewInt(1_000_000_000), tip: big.NewInt(100_000_000)}

	quote, err := FetchSmartTransactionFees(context.Background(), src)
	if err != nil {
		t.Fatalf("FetchSmartTransactionFees failed: %v", err)
	}

	// 2 * 1 gwei + 0.1 gwei
	wantBase := big.NewInt(2_100_000_000)
	if quote.CancelFees[0].MaxFeePerGas.Cmp(wantBase) != 0 {
		t.Errorf("Expected base max fee %s, got %s", wantBase, quote.CancelFees[0].MaxFeePerGas)
	}
	if quote.CancelFees[0].MaxPriorityFeePerGas.Cmp(src.tip) != 0 {
		t.Errorf("Expected base tip %s, got %s", src.tip, quote.CancelFees[0].MaxPriorityFeePerGas)
	}
	if quote.GasLimit != TransferGas || quote.GasUsed != TransferGas {
		t.Errorf("Expected gas %d, got limit=%d used=%d", TransferGas, quote.GasLimit, quote.GasUsed)
	}
}

func TestFetchSmartTransactionFees_Errors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name string
		src  FeeSource
		want error
	}{
		{"no client", nil, ErrNoClient},
		{"header fails", fakeFeeSource{headerErr: boom}, boom},
		{"pre-london", fakeFeeSource{tip: big.NewInt(1)}, ErrNoBaseFee},
		{"tip fails", fakeFeeSource{baseFee: big.NewInt(1), tipErr: boom}, boom},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FetchSmartTransactionFees(context.Background(), tc.src)
			if !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestBuildFeeLadder(t *testing.T) {
	quote := BuildFeeLadder(big.NewInt(2100001000), big.NewInt(466503987), FeeLevels)

	if len(quote.CancelFees) != FeeLevels || len(quote.Fees) != FeeLevels {
		t.Fatalf("Expected %d levels, got cancel=%d fees=%d", FeeLevels, len(quote.CancelFees), len(quote.Fees))
	}

	// 2100001000 * 1.1 = 2310001100
	if got := quote.CancelFees[1].MaxFeePerGas; got.Cmp(big.NewInt(2310001100)) != 0 {
		t.Errorf("Expected second cancel level 2310001100, got %s", got)
	}

	for i := 0; i < FeeLevels; i++ {
		if quote.Fees[i].MaxFeePerGas.Cmp(quote.CancelFees[i].MaxFeePerGas) <= 0 {
			t.Errorf("level %d: fee %s not above cancel fee %s", i, quote.Fees[i].MaxFeePerGas, quote.CancelFees[i].MaxFeePerGas)
		}
		if i > 0 && quote.Fees[i].MaxFeePerGas.Cmp(quote.Fees[i-1].MaxFeePerGas) <= 0 {
			t.Errorf("level %d: fees not increasing", i)
		}
	}

	wantEstimate := new(big.Int).Mul(big.NewInt(2100001000), big.NewInt(TransferGas))
	if quote.FeeEstimate.Cmp(wantEstimate) != 0 {
		t.Errorf("Expected fee estimate %s, got %s", wantEstimate, quote.FeeEstimate)
	}
}

func TestBuildFeeLadder_DoesNotAliasInputs(t *testing.T) {
	maxFee := big.NewInt(100)
	tip := big.NewInt(10)

	quote := BuildFeeLadder(maxFee, tip, 3)
	maxFee.SetInt64(1)
	tip.SetInt64(1)

	if quote.CancelFees[0].MaxFeePerGas.Int64() != 100 || quote.CancelFees[0].MaxPriorityFeePerGas.Int64() != 10 {
		t.Errorf("ladder shares memory with inputs: %+v", quote.CancelFees[0])
	}
}

func TestBuildFeeLadder_NoLevels(t *testing.T) {
	quote := BuildFeeLadder(big.NewInt(1), big.NewInt(1), 0)
	if len(quote.Fees) != 0 || len(quote.CancelFees) != 0 {
		t.Errorf("Expected empty ladders, got %+v", quote)
	}
	if _, ok := quote.Lowest(); ok {
		t.Error("Expected no lowest fee on an empty ladder")
	}
}

func TestGenerateQRCode(t *testing.T) {
	if got := GenerateQRCode(""); got != "" {
		t.Errorf("Expected empty QR for empty data, got %q", got)
	}

	qr := GenerateQRCode("ethereum:0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	if lines := strings.Count(qr, "\n"); lines < 10 {
		t.Errorf("Expected a multi-line QR code, got %d lines", lines)
	}
}
