package webhook

import (
	"context"
	"crypto/subtle"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"solana-buy-alerts/internal/domain"
	"solana-buy-alerts/internal/observability"
)

// Processor consumes normalized events and returns how many were handled.
type Processor interface {
	Process(ctx context.Context, events []domain.NormalizedEvent) int
}

// Handler receives provider webhook posts and feeds them to the processor.
type Handler struct {
	processor Processor
	authToken string
	metrics   *observability.Metrics
	logger    *log.Logger
}

// NewHandler creates a webhook handler. authToken empty disables the
// shared-secret check; metrics may be nil in tests.
func NewHandler(processor Processor, authToken string, metrics *observability.Metrics, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{
		processor: processor,
		authToken: authToken,
		metrics:   metrics,
		logger:    logger,
	}
}

// Routes builds the HTTP router: webhook ingress, health and metrics.
func (h *Handler) Routes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/webhook", h.handleWebhook)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "solana-buy-alerts"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// handleWebhook always acknowledges with 200 once the batch was handled:
// the provider retries on non-2xx and duplicate retries are wasteful
// without idempotency tracking. The one exception is a failed auth check,
// which rejects before the pipeline runs.
func (h *Handler) handleWebhook(c *gin.Context) {
	if h.metrics != nil {
		h.metrics.WebhookRequests.Inc()
	}

	if !h.authorized(c.Request) {
		if h.metrics != nil {
			h.metrics.UnauthorizedRequests.Inc()
		}
		h.logger.Printf("rejected webhook: bad or missing auth header")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.logger.Printf("failed to read webhook body: %v", err)
		c.JSON(http.StatusOK, gin.H{"processed": 0})
		return
	}

	events, err := Normalize(body)
	if err != nil {
		if errors.Is(err, ErrMalformedPayload) {
			if h.metrics != nil {
				h.metrics.MalformedPayloads.Inc()
			}
			h.logger.Printf("malformed webhook payload: %v", err)
			c.JSON(http.StatusOK, gin.H{"processed": 0})
			return
		}
		h.logger.Printf("normalize error: %v", err)
		c.JSON(http.StatusOK, gin.H{"processed": 0})
		return
	}

	processed := h.processor.Process(c.Request.Context(), events)
	c.JSON(http.StatusOK, gin.H{"processed": processed})
}

func (h *Handler) authorized(r *http.Request) bool {
	if h.authToken == "" {
		return true
	}
	got := r.Header.Get("Authorization")
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.authToken)) == 1
}
