// Package pipeline wires the processing stages for one inbound batch:
// detection, payment resolution, threshold filtering, pricing, composition
// and delivery.
package pipeline

import (
	"context"
	"log"
	"time"

	"solana-buy-alerts/internal/alert"
	"solana-buy-alerts/internal/detect"
	"solana-buy-alerts/internal/domain"
	"solana-buy-alerts/internal/notify"
	"solana-buy-alerts/internal/observability"
	"solana-buy-alerts/internal/price"
)

// Processor runs the alert pipeline over normalized events. Processing is
// strictly sequential within a batch so price lookups and deliveries never
// interleave; there is no shared mutable state across requests.
type Processor struct {
	detector  *detect.Detector
	resolver  *detect.Resolver
	policy    detect.Policy
	composer  *alert.Composer
	prices    price.Provider
	notifier  notify.Notifier
	tokenMint string
	media     map[alert.MediaKey]string // key -> asset path; may be empty
	metrics   *observability.Metrics    // nil disables instrumentation
	logger    *log.Logger
}

// New creates a processor. media maps alert media keys to local asset
// paths; missing keys send text-only alerts.
func New(
	detector *detect.Detector,
	resolver *detect.Resolver,
	policy detect.Policy,
	composer *alert.Composer,
	prices price.Provider,
	notifier notify.Notifier,
	tokenMint string,
	media map[alert.MediaKey]string,
	metrics *observability.Metrics,
	logger *log.Logger,
) *Processor {
	if logger == nil {
		logger = log.Default()
	}
	return &Processor{
		detector:  detector,
		resolver:  resolver,
		policy:    policy,
		composer:  composer,
		prices:    prices,
		notifier:  notifier,
		tokenMint: tokenMint,
		media:     media,
		metrics:   metrics,
		logger:    logger,
	}
}

// Process handles each event in order and returns the number of events
// handled. No per-event outcome is fatal; the caller always acknowledges.
func (p *Processor) Process(ctx context.Context, events []domain.NormalizedEvent) int {
	for i := range events {
		p.processOne(ctx, &events[i])
	}
	return len(events)
}

func (p *Processor) processOne(ctx context.Context, ev *domain.NormalizedEvent) {
	if p.metrics != nil {
		p.metrics.EventsReceived.Inc()
	}

	if !ev.Source.Allowed() {
		p.skip(observability.SkipSourceIgnored)
		p.logger.Printf("ignoring event from source %q (tx %s)", ev.Source, ev.Signature)
		return
	}

	buy := p.detector.Detect(ev)
	if buy == nil {
		p.skip(observability.SkipNoBuy)
		p.logger.Printf("no qualifying buy in tx %s", ev.Signature)
		return
	}

	payment := p.resolver.Resolve(ev, buy)
	if payment == nil {
		p.skip(observability.SkipNoPayment)
		p.logger.Printf("no matching payment for buyer %s in tx %s", buy.BuyerAddress, ev.Signature)
		return
	}

	if !p.policy.Passes(payment) {
		p.skip(observability.SkipBelowThreshold)
		p.logger.Printf("below threshold: %s in tx %s", payment.DisplayText(), ev.Signature)
		return
	}

	if p.metrics != nil {
		p.metrics.BuysDetected.Inc()
	}

	priceUSD := p.lookupPrice(ctx)
	composed := p.composer.Compose(ev, buy, payment, priceUSD)

	var media *notify.Media
	if path, ok := p.media[composed.Media]; ok && path != "" {
		media = &notify.Media{Path: path}
	}

	start := time.Now()
	err := p.notifier.Send(ctx, composed.Text, media)
	if p.metrics != nil {
		p.metrics.DeliveryDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		if p.metrics != nil {
			p.metrics.DeliveryErrors.Inc()
		}
		p.logger.Printf("alert delivery failed for tx %s: %v", ev.Signature, err)
		return
	}
	if p.metrics != nil {
		p.metrics.AlertsSent.Inc()
	}
}

// lookupPrice fetches the current USD price, returning nil on any failure.
// Pricing is best-effort and never blocks an alert.
func (p *Processor) lookupPrice(ctx context.Context) *float64 {
	start := time.Now()
	value, err := p.prices.TokenPrice(ctx, p.tokenMint)
	if p.metrics != nil {
		p.metrics.PriceLookupTime.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		if p.metrics != nil {
			p.metrics.PriceLookupErrors.Inc()
		}
		p.logger.Printf("price lookup failed: %v", err)
		return nil
	}
	return &value
}

func (p *Processor) skip(reason string) {
	if p.metrics != nil {
		p.metrics.EventsSkipped.WithLabelValues(reason).Inc()
	}
}
