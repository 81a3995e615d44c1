package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/floctet/studio-api/internal/core/domain"
	"github.com/floctet/studio-api/internal/core/ports"
)

type stubRequestRepo struct {
	requests map[int]*domain.ServiceRequest
	order    []int
	nextID   int
}

func newStubRequestRepo() *stubRequestRepo {
	return &stubRequestRepo{requests: make(map[int]*domain.ServiceRequest), nextID: 1}
}

func cloneRequest(r *domain.ServiceRequest) *domain.ServiceRequest {
	clone := *r
	return &clone
}

func (r *stubRequestRepo) Create(_ context.Context, req *domain.ServiceRequest) (*domain.ServiceRequest, error) {
	stored := cloneRequest(req)
	stored.ID = r.nextID
	r.nextID++
	r.requests[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return cloneRequest(stored), nil
}

func (r *stubRequestRepo) FindByID(_ context.Context, id int) (*domain.ServiceRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	return cloneRequest(req), nil
}

func (r *stubRequestRepo) List(_ context.Context) ([]*domain.ServiceRequest, error) {
	out := make([]*domain.ServiceRequest, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneRequest(r.requests[id]))
	}
	return out, nil
}

func (r *stubRequestRepo) UpdateStatus(_ context.Context, id int, status domain.RequestStatus) (*domain.ServiceRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	req.Status = status
	req.UpdatedAt = time.Now().UTC()
	return cloneRequest(req), nil
}

// recordingQueue captures enqueued notifications for assertions.
type recordingQueue struct {
	notifications []ports.Notification
}

func (q *recordingQueue) Enqueue(n ports.Notification) {
	q.notifications = append(q.notifications, n)
}

func TestRequestService_Submit(t *testing.T) {
	repo := newStubRequestRepo()
	queue := &recordingQueue{}
	svc := NewRequestService(repo, queue, zerolog.Nop())

	created, err := svc.Submit(context.Background(), ports.SubmitRequestInput{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "+1-555-0199",
		ServiceType: "Website Design",
		Description: "Need a landing page for our bakery.",
		MinBudget:   "500",
		MaxBudget:   "1500",
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected id 1, got %d", created.ID)
	}
	if created.Status != domain.StatusPending {
		t.Fatalf("expected status pending, got %q", created.Status)
	}
	if created.CreatedAt.IsZero() || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("expected CreatedAt == UpdatedAt, got %v / %v", created.CreatedAt, created.UpdatedAt)
	}

	if len(queue.notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(queue.notifications))
	}
	n := queue.notifications[0]
	if n.Kind != ports.NotifyServiceRequest {
		t.Fatalf("unexpected notification kind: %q", n.Kind)
	}
	if n.Request == nil || n.Request.ID != created.ID {
		t.Fatalf("notification missing request payload: %+v", n)
	}
}

func TestRequestService_List_InsertionOrder(t *testing.T) {
	repo := newStubRequestRepo()
	svc := NewRequestService(repo, &recordingQueue{}, zerolog.Nop())

	for _, name := range []string{"first", "second", "third"} {
		if _, err := svc.Submit(context.Background(), ports.SubmitRequestInput{
			Name:        name,
			Email:       name + "@example.com",
			ServiceType: "API Integration",
			Description: "some reasonably long description",
		}); err != nil {
			t.Fatalf("submit %q failed: %v", name, err)
		}
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 requests, got %d", len(list))
	}
	for i, want := range []string{"first", "second", "third"} {
		if list[i].Name != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, list[i].Name)
		}
	}
}

func TestRequestService_SetStatus(t *testing.T) {
	repo := newStubRequestRepo()
	svc := NewRequestService(repo, &recordingQueue{}, zerolog.Nop())

	created, err := svc.Submit(context.Background(), ports.SubmitRequestInput{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		ServiceType: "AI Development",
		Description: "chatbot for customer support",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	updated, err := svc.SetStatus(context.Background(), created.ID, domain.StatusConfirmed)
	if err != nil {
		t.Fatalf("SetStatus returned error: %v", err)
	}
	if updated.Status != domain.StatusConfirmed {
		t.Fatalf("expected confirmed, got %q", updated.Status)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("CreatedAt changed: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Fatalf("UpdatedAt went backwards: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
	}

	// Any status may follow any other, including leaving a terminal one.
	for _, status := range []domain.RequestStatus{domain.StatusCompleted, domain.StatusCancelled, domain.StatusPending} {
		if _, err := svc.SetStatus(context.Background(), created.ID, status); err != nil {
			t.Fatalf("transition to %q failed: %v", status, err)
		}
	}
}

func TestRequestService_SetStatus_Invalid(t *testing.T) {
	repo := newStubRequestRepo()
	svc := NewRequestService(repo, &recordingQueue{}, zerolog.Nop())

	created, err := svc.Submit(context.Background(), ports.SubmitRequestInput{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		ServiceType: "AI Development",
		Description: "chatbot for customer support",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	_, err = svc.SetStatus(context.Background(), created.ID, domain.RequestStatus("archived"))
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["status"]; !ok {
		t.Fatalf("expected status field error, got %v", ve.Fields)
	}

	// Record untouched.
	stored, err := repo.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if stored.Status != domain.StatusPending {
		t.Fatalf("status changed after invalid update: %q", stored.Status)
	}
}

func TestRequestService_SetStatus_NotFound(t *testing.T) {
	svc := NewRequestService(newStubRequestRepo(), &recordingQueue{}, zerolog.Nop())

	if _, err := svc.SetStatus(context.Background(), 99, domain.StatusConfirmed); err != domain.ErrRequestNotFound {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}
