package domain

import "fmt"

// Well-known mint addresses.
const (
	// WSOL is the wrapped SOL mint address.
	WSOL = "So11111111111111111111111111111111111111112"
	// USDC is the USDC mint address.
	USDC = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	// USDCSymbol is the symbol tag some provider shapes carry instead of the mint.
	USDCSymbol = "USDC"
)

// BuyCandidate is a qualifying purchase of the tracked token extracted from
// one normalized event. At most one candidate is derived per event.
type BuyCandidate struct {
	BuyerAddress string
	TokenAmount  float64 // fully scaled
	TokenSymbol  string
}

// PaymentKind distinguishes how a buy was paid for.
type PaymentKind string

const (
	PaymentStablecoin PaymentKind = "stablecoin"
	PaymentNative     PaymentKind = "native"
)

// PaymentInfo is the counter-payment matched to a buy candidate.
type PaymentInfo struct {
	Kind   PaymentKind
	Amount float64 // scaled, in the payment's own unit
}

// DisplayText renders the payment the way it appears in alerts.
func (p *PaymentInfo) DisplayText() string {
	if p.Kind == PaymentStablecoin {
		return fmt.Sprintf("%.2f USDC", p.Amount)
	}
	return fmt.Sprintf("%.4f SOL", p.Amount)
}
