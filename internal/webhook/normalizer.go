package webhook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"solana-buy-alerts/internal/domain"
)

// ErrMalformedPayload indicates the request body was not a JSON object or
// an array of objects. The handler still acknowledges such requests; the
// error exists for operator-visible logging only.
var ErrMalformedPayload = errors.New("malformed payload")

// Normalize coerces a raw inbound body into a sequence of normalized
// events. A single object is wrapped into a one-element sequence. Missing
// optional fields default to empty values; only a fundamentally non-object
// body fails.
func Normalize(body []byte) ([]domain.NormalizedEvent, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrMalformedPayload)
	}

	var raw []providerEvent
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
	case '{':
		var single providerEvent
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		raw = []providerEvent{single}
	default:
		return nil, fmt.Errorf("%w: body is neither object nor array", ErrMalformedPayload)
	}

	events := make([]domain.NormalizedEvent, 0, len(raw))
	for i := range raw {
		events = append(events, raw[i].toDomain())
	}
	return events, nil
}
