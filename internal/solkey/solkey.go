// Package solkey provides Solana public-key helpers used to validate
// operator-supplied addresses before they enter the detection pipeline.
package solkey

import (
	"fmt"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"
)

// Validate checks that addr is a base58-encoded 32-byte Solana public key.
func Validate(addr string) error {
	decoded, err := base58.Decode(addr)
	if err != nil {
		return fmt.Errorf("invalid base58 address %q: %w", addr, err)
	}
	if len(decoded) != 32 {
		return fmt.Errorf("address %q decodes to %d bytes, want 32", addr, len(decoded))
	}
	return nil
}

// IsOnCurve reports whether addr is a valid ed25519 curve point. Wallet
// addresses are on-curve; program-derived accounts (pools, vaults) are not.
func IsOnCurve(addr string) bool {
	decoded, err := base58.Decode(addr)
	if err != nil || len(decoded) != 32 {
		return false
	}
	_, err = new(edwards25519.Point).SetBytes(decoded)
	return err == nil
}
