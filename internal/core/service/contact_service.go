package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/floctet/studio-api/internal/core/domain"
	"github.com/floctet/studio-api/internal/core/ports"
)

// ContactService implements the contact-message workflow.
type ContactService struct {
	repo   ports.ContactRepository
	queue  ports.NotificationQueue
	logger zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, queue ports.NotificationQueue, logger zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, queue: queue, logger: logger}
}

// Submit persists a new contact message (read=false) and enqueues a
// best-effort notification after the write.
func (s *ContactService) Submit(ctx context.Context, input ports.SubmitMessageInput) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, msg)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create contact message")
		return nil, err
	}

	s.logger.Info().Int("message_id", created.ID).Str("subject", created.Subject).Msg("contact message submitted")

	s.queue.Enqueue(ports.Notification{Kind: ports.NotifyContactMessage, Message: created})

	return created, nil
}

// List returns every contact message in insertion order.
func (s *ContactService) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	return s.repo.List(ctx)
}

// MarkRead flips the read flag to true. Idempotent: marking an already-read
// message succeeds and leaves it read.
func (s *ContactService) MarkRead(ctx context.Context, id int) (*domain.ContactMessage, error) {
	updated, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("message_id", id).Msg("contact message marked read")
	return updated, nil
}
