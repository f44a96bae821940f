// Package price supplies best-effort USD quotes for the tracked token.
package price

import (
	"context"
	"errors"
)

// ErrUnavailable indicates no usable quote exists for the mint. Callers
// degrade gracefully: alerts go out without valuation lines.
var ErrUnavailable = errors.New("price unavailable")

// Provider looks up the current USD price of a token mint.
type Provider interface {
	TokenPrice(ctx context.Context, mint string) (float64, error)
}

// Disabled is a Provider used when no market-data credential is
// configured. Every lookup reports the price as unavailable.
type Disabled struct{}

func (Disabled) TokenPrice(ctx context.Context, mint string) (float64, error) {
	return 0, ErrUnavailable
}
