package detect

import (
	"testing"

	"solana-buy-alerts/internal/domain"
)

func paymentEvent(transfers []domain.TransferRecord, natives []domain.NativeTransferRecord) *domain.NormalizedEvent {
	return &domain.NormalizedEvent{
		Source:          domain.SourceRaydium,
		Signature:       "TxSig",
		TokenTransfers:  transfers,
		NativeTransfers: natives,
	}
}

func TestResolve_USDCBySymbol(t *testing.T) {
	ev := paymentEvent([]domain.TransferRecord{
		{Symbol: "USDC", FromAddress: "B", ToAddress: "P", Amount: 15},
	}, nil)
	pay := NewResolver().Resolve(ev, &domain.BuyCandidate{BuyerAddress: "B"})
	if pay == nil {
		t.Fatal("expected payment")
	}
	if pay.Kind != domain.PaymentStablecoin {
		t.Errorf("expected stablecoin, got %s", pay.Kind)
	}
	if pay.DisplayText() != "15.00 USDC" {
		t.Errorf("expected display 15.00 USDC, got %s", pay.DisplayText())
	}
}

func TestResolve_USDCByMint(t *testing.T) {
	ev := paymentEvent([]domain.TransferRecord{
		{Mint: domain.USDC, FromAddress: "B", ToAddress: "P", RawAmount: "25000000", Decimals: 6},
	}, nil)
	pay := NewResolver().Resolve(ev, &domain.BuyCandidate{BuyerAddress: "B"})
	if pay == nil {
		t.Fatal("expected payment")
	}
	if pay.Amount != 25 {
		t.Errorf("expected 25 USDC, got %f", pay.Amount)
	}
}

func TestResolve_StablecoinPreferredOverNative(t *testing.T) {
	ev := paymentEvent([]domain.TransferRecord{
		{Mint: domain.WSOL, FromAddress: "B", ToAddress: "P", Amount: 2},
		{Symbol: "USDC", FromAddress: "B", ToAddress: "P", Amount: 50},
	}, nil)
	pay := NewResolver().Resolve(ev, &domain.BuyCandidate{BuyerAddress: "B"})
	if pay == nil {
		t.Fatal("expected payment")
	}
	if pay.Kind != domain.PaymentStablecoin {
		t.Errorf("stablecoin must win over native, got %s", pay.Kind)
	}
}

func TestResolve_NativeViaWSOLTransfer(t *testing.T) {
	ev := paymentEvent([]domain.TransferRecord{
		{Mint: domain.WSOL, FromAddress: "B", ToAddress: "P", Amount: 1.25},
	}, nil)
	pay := NewResolver().Resolve(ev, &domain.BuyCandidate{BuyerAddress: "B"})
	if pay == nil {
		t.Fatal("expected payment")
	}
	if pay.Kind != domain.PaymentNative {
		t.Errorf("expected native, got %s", pay.Kind)
	}
	if pay.DisplayText() != "1.2500 SOL" {
		t.Errorf("expected display 1.2500 SOL, got %s", pay.DisplayText())
	}
}

func TestResolve_NativeViaLamportsList(t *testing.T) {
	ev := paymentEvent(nil, []domain.NativeTransferRecord{
		{FromAddress: "Other", ToAddress: "P", Lamports: 999},
		{FromAddress: "B", ToAddress: "P", Lamports: 2_000_000_000},
	})
	pay := NewResolver().Resolve(ev, &domain.BuyCandidate{BuyerAddress: "B"})
	if pay == nil {
		t.Fatal("expected payment")
	}
	if pay.Amount != 2 {
		t.Errorf("expected 2 SOL, got %f", pay.Amount)
	}
}

func TestResolve_IgnoresPaymentsFromOthers(t *testing.T) {
	ev := paymentEvent([]domain.TransferRecord{
		{Symbol: "USDC", FromAddress: "NotBuyer", ToAddress: "P", Amount: 100},
	}, nil)
	if pay := NewResolver().Resolve(ev, &domain.BuyCandidate{BuyerAddress: "B"}); pay != nil {
		t.Errorf("expected nil for payment from another account, got %+v", pay)
	}
}

func TestResolve_NonePresent(t *testing.T) {
	ev := paymentEvent([]domain.TransferRecord{
		{Mint: "SomeMint", FromAddress: "B", ToAddress: "P", Amount: 5},
	}, nil)
	if pay := NewResolver().Resolve(ev, &domain.BuyCandidate{BuyerAddress: "B"}); pay != nil {
		t.Errorf("expected nil when no USDC or SOL payment exists, got %+v", pay)
	}
}

func TestResolve_SwapInputsUSDC(t *testing.T) {
	ev := &domain.NormalizedEvent{
		Source: domain.SourceJupiter,
		Swap: &domain.SwapRecord{
			TokenInputs: []domain.SwapLeg{
				{UserAccount: "B", Mint: domain.USDC, RawAmount: "42000000", Decimals: 6},
			},
		},
	}
	pay := NewResolver().Resolve(ev, &domain.BuyCandidate{BuyerAddress: "B"})
	if pay == nil {
		t.Fatal("expected payment from swap inputs")
	}
	if pay.Kind != domain.PaymentStablecoin || pay.Amount != 42 {
		t.Errorf("expected 42 USDC, got %+v", pay)
	}
}

func TestResolve_SwapInputsWSOL(t *testing.T) {
	ev := &domain.NormalizedEvent{
		Source: domain.SourceJupiter,
		Swap: &domain.SwapRecord{
			TokenInputs: []domain.SwapLeg{
				{UserAccount: "B", Mint: domain.WSOL, RawAmount: "30000000000", Decimals: 9},
			},
		},
	}
	pay := NewResolver().Resolve(ev, &domain.BuyCandidate{BuyerAddress: "B"})
	if pay == nil {
		t.Fatal("expected payment")
	}
	if pay.Kind != domain.PaymentNative || pay.Amount != 30 {
		t.Errorf("expected 30 SOL, got %+v", pay)
	}
}

func TestResolve_SwapNativeInput(t *testing.T) {
	ev := &domain.NormalizedEvent{
		Source: domain.SourceJupiter,
		Swap: &domain.SwapRecord{
			NativeInput: &domain.NativeTransferRecord{FromAddress: "B", Lamports: 500_000_000},
		},
	}
	pay := NewResolver().Resolve(ev, &domain.BuyCandidate{BuyerAddress: "B"})
	if pay == nil {
		t.Fatal("expected payment from native input")
	}
	if pay.Kind != domain.PaymentNative || pay.Amount != 0.5 {
		t.Errorf("expected 0.5 SOL, got %+v", pay)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	ev := paymentEvent([]domain.TransferRecord{
		{Symbol: "USDC", FromAddress: "B", ToAddress: "P", Amount: 15},
	}, nil)
	r := NewResolver()
	buy := &domain.BuyCandidate{BuyerAddress: "B"}
	first := r.Resolve(ev, buy)
	second := r.Resolve(ev, buy)
	if first == nil || second == nil {
		t.Fatal("expected payments on both runs")
	}
	if *first != *second {
		t.Errorf("resolution not idempotent: %+v vs %+v", first, second)
	}
}
