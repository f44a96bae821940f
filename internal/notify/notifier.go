// Package notify delivers composed alerts to their destination channel.
package notify

import (
	"context"
	"log"
)

// Media is an optional attachment sent alongside an alert.
type Media struct {
	Path string // local file path; kind inferred from extension
}

// Notifier delivers one alert. Implementations make a single attempt;
// failures are logged by the caller and never retried.
type Notifier interface {
	Send(ctx context.Context, text string, media *Media) error
}

// Console writes alerts to the process log. It is the fallback channel
// when no bot credential is configured.
type Console struct {
	logger *log.Logger
}

// NewConsole creates a console notifier.
func NewConsole(logger *log.Logger) *Console {
	if logger == nil {
		logger = log.Default()
	}
	return &Console{logger: logger}
}

func (c *Console) Send(ctx context.Context, text string, media *Media) error {
	if media != nil {
		c.logger.Printf("alert (media %s):\n%s", media.Path, text)
		return nil
	}
	c.logger.Printf("alert:\n%s", text)
	return nil
}
