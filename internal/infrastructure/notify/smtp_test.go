package notify

import (
	"context"
	"strings"
	"testing"

	"github.com/floctet/studio-api/internal/core/domain"
	"github.com/floctet/studio-api/internal/core/ports"
)

func TestRequestBody(t *testing.T) {
	body := requestBody(&domain.ServiceRequest{
		Name:        "Jane <script>",
		Email:       "jane@example.com",
		ServiceType: "Website Design",
		Description: "A & B",
		MinBudget:   "500",
	})

	if strings.Contains(body, "<script>") {
		t.Fatalf("body not escaped: %s", body)
	}
	if !strings.Contains(body, "Jane &lt;script&gt;") {
		t.Fatalf("expected escaped name in body")
	}
	if !strings.Contains(body, "A &amp; B") {
		t.Fatalf("expected escaped description in body")
	}
	if !strings.Contains(body, "Not provided") {
		t.Fatalf("expected phone placeholder")
	}
	if !strings.Contains(body, "500 - Not specified") {
		t.Fatalf("expected budget range with placeholder, got: %s", body)
	}
}

func TestMessageBody(t *testing.T) {
	body := messageBody(&domain.ContactMessage{
		Name:    "John",
		Email:   "john@example.com",
		Subject: "Quote & timeline",
		Message: "Hello there",
	})

	if !strings.Contains(body, "Quote &amp; timeline") {
		t.Fatalf("expected escaped subject in body")
	}
	if !strings.Contains(body, "Hello there") {
		t.Fatalf("expected message text in body")
	}
}

func TestSMTPSender_RejectsMalformedNotifications(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Host: "localhost", Port: 587})

	if err := s.Send(context.Background(), ports.Notification{Kind: ports.NotifyServiceRequest}); err == nil {
		t.Fatalf("expected error for missing request payload")
	}
	if err := s.Send(context.Background(), ports.Notification{Kind: ports.NotifyContactMessage}); err == nil {
		t.Fatalf("expected error for missing message payload")
	}
	if err := s.Send(context.Background(), ports.Notification{Kind: "unknown"}); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestSMTPSender_HonoursCancelledContext(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Host: "localhost", Port: 587})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Send(ctx, ports.Notification{
		Kind:    ports.NotifyContactMessage,
		Message: &domain.ContactMessage{Subject: "x"},
	})
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
