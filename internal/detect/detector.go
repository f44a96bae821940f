// Package detect holds the buy classification core: deciding which transfer
// in a heterogeneous transaction record represents a genuine purchase of
// the tracked token, and which counter-payment funded it.
package detect

import "solana-buy-alerts/internal/domain"

// Detector extracts at most one buy candidate per normalized event.
type Detector struct {
	targetMint  string
	tokenSymbol string
	poolAddress string // optional; "" means unknown
}

// NewDetector creates a detector for one tracked token. poolAddress may be
// empty when the liquidity pool is not known.
func NewDetector(targetMint, tokenSymbol, poolAddress string) *Detector {
	return &Detector{
		targetMint:  targetMint,
		tokenSymbol: tokenSymbol,
		poolAddress: poolAddress,
	}
}

// Detect returns the first qualifying purchase of the tracked token, or nil
// when the event contains none. Absence of a buy is an expected outcome,
// not an error.
func (d *Detector) Detect(ev *domain.NormalizedEvent) *domain.BuyCandidate {
	if !ev.Source.Allowed() {
		return nil
	}

	if ev.Swap != nil && ev.Source.ReportsSwapRecord() {
		return d.detectFromSwap(ev.Swap)
	}
	return d.detectFromTransfers(ev.TokenTransfers)
}

// detectFromSwap searches the structured swap sub-record's output legs.
// The leg's user account is the buyer; legs landing on the known pool are
// pool movements, not purchases.
func (d *Detector) detectFromSwap(swap *domain.SwapRecord) *domain.BuyCandidate {
	for i := range swap.TokenOutputs {
		leg := &swap.TokenOutputs[i]
		if leg.Mint != d.targetMint {
			continue
		}
		if leg.UserAccount == "" {
			continue
		}
		if d.poolAddress != "" && leg.UserAccount == d.poolAddress {
			continue
		}
		amount := leg.ScaledAmount(domain.TokenDecimals)
		if amount <= 0 {
			continue
		}
		return &domain.BuyCandidate{
			BuyerAddress: leg.UserAccount,
			TokenAmount:  amount,
			TokenSymbol:  d.tokenSymbol,
		}
	}
	return nil
}

// detectFromTransfers searches the flat transfer sequence. Self-transfers
// and deposits into the known pool never qualify; first match wins.
func (d *Detector) detectFromTransfers(transfers []domain.TransferRecord) *domain.BuyCandidate {
	for i := range transfers {
		t := &transfers[i]
		if t.Mint != d.targetMint {
			continue
		}
		if t.ToAddress == "" || t.ToAddress == t.FromAddress {
			continue
		}
		if d.poolAddress != "" && t.ToAddress == d.poolAddress {
			continue
		}
		amount := t.ScaledAmount(domain.TokenDecimals)
		if amount <= 0 {
			continue
		}
		return &domain.BuyCandidate{
			BuyerAddress: t.ToAddress,
			TokenAmount:  amount,
			TokenSymbol:  d.tokenSymbol,
		}
	}
	return nil
}
