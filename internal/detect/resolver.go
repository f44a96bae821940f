package detect

import "solana-buy-alerts/internal/domain"

// Resolver locates the counter-payment that funded a detected buy. A
// stablecoin payment takes precedence over a native-asset payment because
// it is an unambiguous priced reference.
type Resolver struct{}

// NewResolver creates a payment resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the buyer's outbound payment for the buy, or nil when
// neither a stablecoin nor a native payment is found. A nil result is a
// legitimate outcome causing no alert.
func (r *Resolver) Resolve(ev *domain.NormalizedEvent, buy *domain.BuyCandidate) *domain.PaymentInfo {
	if ev.Swap != nil && ev.Source.ReportsSwapRecord() {
		return r.resolveFromSwap(ev.Swap, buy.BuyerAddress)
	}
	return r.resolveFromTransfers(ev, buy.BuyerAddress)
}

// resolveFromSwap searches the swap sub-record's input legs, then its
// native-input record.
func (r *Resolver) resolveFromSwap(swap *domain.SwapRecord, buyer string) *domain.PaymentInfo {
	var native *domain.PaymentInfo

	for i := range swap.TokenInputs {
		leg := &swap.TokenInputs[i]
		if leg.UserAccount != buyer {
			continue
		}
		switch leg.Mint {
		case domain.USDC:
			return &domain.PaymentInfo{
				Kind:   domain.PaymentStablecoin,
				Amount: leg.ScaledAmount(domain.USDCDecimals),
			}
		case domain.WSOL:
			if native == nil {
				native = &domain.PaymentInfo{
					Kind:   domain.PaymentNative,
					Amount: leg.ScaledAmount(domain.NativeDecimals),
				}
			}
		}
	}
	if native != nil {
		return native
	}

	if in := swap.NativeInput; in != nil && (in.FromAddress == buyer || in.FromAddress == "") {
		if in.Lamports > 0 {
			return &domain.PaymentInfo{
				Kind:   domain.PaymentNative,
				Amount: in.Amount(),
			}
		}
	}
	return nil
}

// resolveFromTransfers searches the flat transfer list for a USDC payment
// first, then a wrapped-SOL transfer, then the lamports transfer list.
func (r *Resolver) resolveFromTransfers(ev *domain.NormalizedEvent, buyer string) *domain.PaymentInfo {
	var native *domain.PaymentInfo

	for i := range ev.TokenTransfers {
		t := &ev.TokenTransfers[i]
		if t.FromAddress != buyer {
			continue
		}
		if t.Symbol == domain.USDCSymbol || t.Mint == domain.USDC {
			return &domain.PaymentInfo{
				Kind:   domain.PaymentStablecoin,
				Amount: t.ScaledAmount(domain.USDCDecimals),
			}
		}
		if t.Mint == domain.WSOL && native == nil {
			native = &domain.PaymentInfo{
				Kind:   domain.PaymentNative,
				Amount: t.ScaledAmount(domain.NativeDecimals),
			}
		}
	}
	if native != nil {
		return native
	}

	for i := range ev.NativeTransfers {
		n := &ev.NativeTransfers[i]
		if n.FromAddress == buyer && n.Lamports > 0 {
			return &domain.PaymentInfo{
				Kind:   domain.PaymentNative,
				Amount: n.Amount(),
			}
		}
	}
	return nil
}
