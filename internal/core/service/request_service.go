package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/floctet/studio-api/internal/core/domain"
	"github.com/floctet/studio-api/internal/core/ports"
)

// RequestService implements the service-request workflow: validate, persist,
// enqueue a best-effort notification.
type RequestService struct {
	repo   ports.RequestRepository
	queue  ports.NotificationQueue
	logger zerolog.Logger
}

func NewRequestService(repo ports.RequestRepository, queue ports.NotificationQueue, logger zerolog.Logger) *RequestService {
	return &RequestService{repo: repo, queue: queue, logger: logger}
}

// Submit persists a new service request. The initial status is always
// pending regardless of anything the caller sent; the transport layer never
// even binds a status field. The notification is enqueued after the write
// and cannot fail the submission.
func (s *RequestService) Submit(ctx context.Context, input ports.SubmitRequestInput) (*domain.ServiceRequest, error) {
	now := time.Now().UTC()
	req := &domain.ServiceRequest{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		ServiceType: input.ServiceType,
		Description: input.Description,
		MinBudget:   input.MinBudget,
		MaxBudget:   input.MaxBudget,
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create service request")
		return nil, err
	}

	s.logger.Info().Int("request_id", created.ID).Str("service_type", created.ServiceType).Msg("service request submitted")

	s.queue.Enqueue(ports.Notification{Kind: ports.NotifyServiceRequest, Request: created})

	return created, nil
}

// List returns every service request in insertion order.
func (s *RequestService) List(ctx context.Context) ([]*domain.ServiceRequest, error) {
	return s.repo.List(ctx)
}

// SetStatus overwrites the request's status and bumps UpdatedAt. Any of the
// four statuses may be set from any other; see domain.RequestStatus.Valid.
func (s *RequestService) SetStatus(ctx context.Context, id int, status domain.RequestStatus) (*domain.ServiceRequest, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("invalid update data", map[string]string{
			"status": fmt.Sprintf("status must be one of: %s %s %s %s",
				domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled),
		})
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("request_id", id).Str("status", string(status)).Msg("service request status updated")
	return updated, nil
}
