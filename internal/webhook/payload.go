package webhook

import (
	"encoding/json"
	"strconv"

	"solana-buy-alerts/internal/domain"
)

// providerEvent is one enhanced-transaction object as the indexing provider
// posts it. Every field is optional; shapes drift between venues, so the
// normalizer fills in whatever is present and defaults the rest.
type providerEvent struct {
	Source          string           `json:"source"`
	Type            string           `json:"type"`
	Signature       string           `json:"signature"`
	Timestamp       int64            `json:"timestamp"`
	TokenTransfers  []tokenTransfer  `json:"tokenTransfers"`
	NativeTransfers []nativeTransfer `json:"nativeTransfers"`
	Events          *providerEvents  `json:"events"`
}

type tokenTransfer struct {
	Mint            string          `json:"mint"`
	TokenSymbol     string          `json:"tokenSymbol"`
	FromUserAccount string          `json:"fromUserAccount"`
	ToUserAccount   string          `json:"toUserAccount"`
	TokenAmount     float64         `json:"tokenAmount"`
	RawTokenAmount  *rawTokenAmount `json:"rawTokenAmount"`
}

type nativeTransfer struct {
	FromUserAccount string `json:"fromUserAccount"`
	ToUserAccount   string `json:"toUserAccount"`
	Amount          int64  `json:"amount"` // lamports
}

type providerEvents struct {
	Swap *swapEvent `json:"swap"`
}

type swapEvent struct {
	TokenInputs  []swapLeg `json:"tokenInputs"`
	TokenOutputs []swapLeg `json:"tokenOutputs"`
	NativeInput  *nativeIO `json:"nativeInput"`
}

type swapLeg struct {
	UserAccount    string         `json:"userAccount"`
	Mint           string         `json:"mint"`
	RawTokenAmount rawTokenAmount `json:"rawTokenAmount"`
}

type nativeIO struct {
	Account string      `json:"account"`
	Amount  json.Number `json:"amount"` // lamports; number or string depending on shape
}

type rawTokenAmount struct {
	TokenAmount string `json:"tokenAmount"`
	Decimals    int    `json:"decimals"`
}

// toDomain converts a provider event into the uniform internal shape.
func (e *providerEvent) toDomain() domain.NormalizedEvent {
	ev := domain.NormalizedEvent{
		Source:           domain.NewSource(e.Source),
		EventKind:        e.Type,
		Signature:        e.Signature,
		TimestampSeconds: e.Timestamp,
		TokenTransfers:   make([]domain.TransferRecord, 0, len(e.TokenTransfers)),
		NativeTransfers:  make([]domain.NativeTransferRecord, 0, len(e.NativeTransfers)),
	}

	for _, t := range e.TokenTransfers {
		rec := domain.TransferRecord{
			Mint:        t.Mint,
			Symbol:      t.TokenSymbol,
			FromAddress: t.FromUserAccount,
			ToAddress:   t.ToUserAccount,
			Amount:      t.TokenAmount,
		}
		if t.RawTokenAmount != nil {
			rec.RawAmount = t.RawTokenAmount.TokenAmount
			rec.Decimals = t.RawTokenAmount.Decimals
		}
		ev.TokenTransfers = append(ev.TokenTransfers, rec)
	}

	for _, n := range e.NativeTransfers {
		ev.NativeTransfers = append(ev.NativeTransfers, domain.NativeTransferRecord{
			FromAddress: n.FromUserAccount,
			ToAddress:   n.ToUserAccount,
			Lamports:    n.Amount,
		})
	}

	if e.Events != nil && e.Events.Swap != nil {
		ev.Swap = convertSwap(e.Events.Swap)
	}

	return ev
}

func convertSwap(s *swapEvent) *domain.SwapRecord {
	swap := &domain.SwapRecord{
		TokenInputs:  convertLegs(s.TokenInputs),
		TokenOutputs: convertLegs(s.TokenOutputs),
	}
	if s.NativeInput != nil {
		lamports, _ := strconv.ParseInt(s.NativeInput.Amount.String(), 10, 64)
		swap.NativeInput = &domain.NativeTransferRecord{
			FromAddress: s.NativeInput.Account,
			Lamports:    lamports,
		}
		swap.NativeLamports = lamports
	}
	return swap
}

func convertLegs(legs []swapLeg) []domain.SwapLeg {
	out := make([]domain.SwapLeg, 0, len(legs))
	for _, l := range legs {
		out = append(out, domain.SwapLeg{
			UserAccount: l.UserAccount,
			Mint:        l.Mint,
			RawAmount:   l.RawTokenAmount.TokenAmount,
			Decimals:    l.RawTokenAmount.Decimals,
		})
	}
	return out
}
