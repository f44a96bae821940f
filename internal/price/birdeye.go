package price

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds a single price lookup. There are no retries; a
// timed-out call is treated as price unavailable.
const DefaultTimeout = 5 * time.Second

// Birdeye queries the Birdeye public price endpoint.
type Birdeye struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// Option configures a Birdeye client.
type Option func(*Birdeye)

// WithHTTPClient overrides the HTTP client, mainly for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(b *Birdeye) { b.client = c }
}

// WithTimeout sets the lookup timeout.
func WithTimeout(d time.Duration) Option {
	return func(b *Birdeye) { b.client.Timeout = d }
}

// NewBirdeye creates a Birdeye price provider. baseURL defaults to the
// public API host when empty.
func NewBirdeye(baseURL, apiKey string, opts ...Option) *Birdeye {
	if baseURL == "" {
		baseURL = "https://public-api.birdeye.so"
	}
	b := &Birdeye{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

type birdeyeResponse struct {
	Data struct {
		Value float64 `json:"value"`
	} `json:"data"`
	Success bool `json:"success"`
}

// TokenPrice returns the current USD price for mint. A zero quote is
// reported as unavailable rather than a price.
func (b *Birdeye) TokenPrice(ctx context.Context, mint string) (float64, error) {
	q := url.Values{}
	q.Set("address", mint)
	u := fmt.Sprintf("%s/public/price?%s", b.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}
	if b.apiKey != "" {
		req.Header.Set("X-API-KEY", b.apiKey)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return 0, fmt.Errorf("birdeye: http %d", resp.StatusCode)
	}

	var parsed birdeyeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("birdeye: decode: %w", err)
	}
	if parsed.Data.Value <= 0 {
		return 0, ErrUnavailable
	}
	return parsed.Data.Value, nil
}
