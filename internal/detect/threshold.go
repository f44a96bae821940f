package detect

import "solana-buy-alerts/internal/domain"

// Policy is the minimum-payment filter, one threshold per payment kind.
// Thresholds are in the payment's own unit.
type Policy struct {
	MinUSDC float64
	MinSOL  float64
}

// Passes reports whether the payment clears the minimum for its kind.
// A missing payment never passes.
func (p Policy) Passes(payment *domain.PaymentInfo) bool {
	if payment == nil {
		return false
	}
	switch payment.Kind {
	case domain.PaymentStablecoin:
		return payment.Amount >= p.MinUSDC
	case domain.PaymentNative:
		return payment.Amount >= p.MinSOL
	}
	return false
}
