package ports

import (
	"context"

	"github.com/floctet/studio-api/internal/core/domain"
)

// SubmitMessageInput carries a public contact-form submission.
type SubmitMessageInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactService implements the contact-message workflow.
type ContactService interface {
	Submit(ctx context.Context, input SubmitMessageInput) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]*domain.ContactMessage, error)
	MarkRead(ctx context.Context, id int) (*domain.ContactMessage, error)
}
