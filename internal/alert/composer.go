// Package alert builds the user-facing notification for a qualifying buy.
package alert

import (
	"fmt"
	"strings"
	"time"

	"solana-buy-alerts/internal/domain"
)

// MediaKey selects which static asset accompanies an alert.
type MediaKey string

const (
	// MediaStandard is the everyday buy asset.
	MediaStandard MediaKey = "standard"
	// MediaLarge is the major-event asset for native payments above the
	// large-trade cutoff.
	MediaLarge MediaKey = "large"
)

// Titles shown in the alert header.
const (
	titleStandard = "BUY Detected!"
	titleLarge    = "🐋🐋🐋 MEGA WHALE BUY 🐋🐋🐋"
)

const explorerTxURL = "https://solscan.io/tx/"

// Alert is a composed notification ready for dispatch.
type Alert struct {
	Text  string
	Media MediaKey
}

// Composer formats alerts. It has no error states; inputs are validated
// upstream and optional fields are omitted gracefully.
type Composer struct {
	tokenSymbol   string
	largeTradeSOL float64
	location      *time.Location
}

// NewComposer creates a composer rendering timestamps in the named
// timezone.
func NewComposer(tokenSymbol string, largeTradeSOL float64, timezone string) (*Composer, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return &Composer{
		tokenSymbol:   tokenSymbol,
		largeTradeSOL: largeTradeSOL,
		location:      loc,
	}, nil
}

// Compose builds the alert message. priceUSD is nil when the price lookup
// failed or was unavailable; the valuation lines are then omitted.
func (c *Composer) Compose(ev *domain.NormalizedEvent, buy *domain.BuyCandidate, payment *domain.PaymentInfo, priceUSD *float64) Alert {
	media := MediaStandard
	title := titleStandard
	if payment.Kind == domain.PaymentNative && payment.Amount > c.largeTradeSOL {
		media = MediaLarge
		title = titleLarge
	}

	var b strings.Builder
	fmt.Fprintf(&b, "💰 *%s %s*\n", strings.ToUpper(ev.Source.String()), title)
	fmt.Fprintf(&b, "👤 Buyer: `%s`\n", truncateAddress(buy.BuyerAddress))
	fmt.Fprintf(&b, "🪙 Amount: %s %.2f %s\n", sizeEmoji(buy.TokenAmount), buy.TokenAmount, buy.TokenSymbol)
	fmt.Fprintf(&b, "💵 Payment: %s\n", payment.DisplayText())
	if priceUSD != nil {
		fmt.Fprintf(&b, "💲 Price: $%.6f / %s\n", *priceUSD, buy.TokenSymbol)
		fmt.Fprintf(&b, "💰 Value: $%.2f USD\n", buy.TokenAmount*(*priceUSD))
	}
	fmt.Fprintf(&b, "🕒 Time: %s\n", c.formatTime(ev.TimestampSeconds))
	fmt.Fprintf(&b, "🔗 [View on Solscan](%s%s)", explorerTxURL, ev.Signature)

	return Alert{Text: b.String(), Media: media}
}

// sizeEmoji classifies the purchase by token amount.
func sizeEmoji(amount float64) string {
	switch {
	case amount > 10000:
		return "🐳"
	case amount > 1000:
		return "🦈"
	default:
		return "🟢"
	}
}

// truncateAddress renders the first 6 and last 4 characters joined by an
// ellipsis. Short addresses are returned unchanged.
func truncateAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

func (c *Composer) formatTime(epochSeconds int64) string {
	return time.Unix(epochSeconds, 0).In(c.location).Format("2006-01-02 15:04:05 MST")
}
