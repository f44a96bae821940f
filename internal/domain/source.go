package domain

import "strings"

// Source identifies the venue that produced a swap event. It is stored
// lowercased; comparisons are case-insensitive at the boundary.
type Source string

const (
	SourceRaydium Source = "raydium"
	SourceJupiter Source = "jupiter"
)

// NewSource normalizes a raw provider tag into a Source.
func NewSource(raw string) Source {
	return Source(strings.ToLower(strings.TrimSpace(raw)))
}

// String returns the string representation of Source.
func (s Source) String() string {
	return string(s)
}

// Allowed reports whether events from this venue may produce alerts.
// Anything outside the allow-list is noise (aggregators, unknown programs).
func (s Source) Allowed() bool {
	return s == SourceRaydium || s == SourceJupiter
}

// ReportsSwapRecord reports whether this venue delivers the structured swap
// sub-record shape instead of meaningful flat transfer lists.
func (s Source) ReportsSwapRecord() bool {
	return s == SourceJupiter
}
