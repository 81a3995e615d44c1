package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/floctet/studio-api/internal/core/ports"
)

// NoopSender is used when SMTP credentials are not configured: the workflow
// still enqueues, the dispatcher still drains, nothing is delivered.
type NoopSender struct {
	logger zerolog.Logger
}

func NewNoopSender(logger zerolog.Logger) *NoopSender {
	return &NoopSender{logger: logger}
}

func (s *NoopSender) Send(_ context.Context, n ports.Notification) error {
	s.logger.Debug().Str("kind", string(n.Kind)).Msg("mail sender not configured, notification dropped")
	return nil
}
