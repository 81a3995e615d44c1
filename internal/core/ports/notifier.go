package ports

import (
	"context"

	"github.com/floctet/studio-api/internal/core/domain"
)

// NotificationKind identifies what a notification is about.
type NotificationKind string

const (
	NotifyServiceRequest NotificationKind = "service_request"
	NotifyContactMessage NotificationKind = "contact_message"
)

// Notification is an outbound message for the studio inbox. Exactly one of
// Request / Message is set, matching Kind.
type Notification struct {
	Kind    NotificationKind
	Request *domain.ServiceRequest
	Message *domain.ContactMessage
}

// Notifier delivers a single notification. Implementations are best-effort
// sinks: errors are reported to the caller for logging, nothing more.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// NotificationQueue is the enqueue-only view the workflow services hold.
// Enqueue never blocks the request path and never returns an error: delivery
// is decoupled and its failures are contained in the dispatcher.
type NotificationQueue interface {
	Enqueue(n Notification)
}
