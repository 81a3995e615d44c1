package domain

import "time"

// RequestStatus is the lifecycle state of a service request.
type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusConfirmed RequestStatus = "confirmed"
	StatusCompleted RequestStatus = "completed"
	StatusCancelled RequestStatus = "cancelled"
)

// Valid reports whether s is one of the four known statuses.
//
// Transitions are intentionally unconstrained: an administrator may move a
// request from any status to any other, including out of completed and
// cancelled. This single predicate is the choke point if a stricter
// transition table is ever adopted.
func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ServiceRequest is a quote request submitted through the public form.
// Created anonymously with status pending; mutated only by an administrator
// setting the status; never deleted.
type ServiceRequest struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone,omitempty"`
	ServiceType string        `json:"serviceType"`
	Description string        `json:"description"`
	MinBudget   string        `json:"minBudget,omitempty"`
	MaxBudget   string        `json:"maxBudget,omitempty"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
