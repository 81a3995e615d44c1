package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/floctet/studio-api/internal/core/domain"
)

func TestValidator_FieldNamesComeFromJSONTags(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&registerRequest{
		Username: "ab",
		Email:    "not-an-email",
		Password: "short",
		Name:     "",
	})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, field := range []string{"username", "email", "password", "name"} {
		if _, ok := ve.Fields[field]; !ok {
			t.Fatalf("missing error for json field %q: %v", field, ve.Fields)
		}
	}
	// Struct field names must not leak.
	if _, ok := ve.Fields["Username"]; ok {
		t.Fatalf("struct field name leaked into error map: %v", ve.Fields)
	}
}

func TestValidator_Messages(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&registerRequest{
		Username: "validname",
		Email:    "valid@example.com",
		Password: "short",
		Name:     "Valid Name",
	})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	msg := ve.Fields["password"]
	if !strings.Contains(msg, "at least 8") {
		t.Fatalf("unexpected min message: %q", msg)
	}
}

func TestValidator_OptionalFieldsSkipWhenEmpty(t *testing.T) {
	v := NewValidator()

	// minBudget/maxBudget are omitempty,numeric: empty passes, junk fails.
	if err := v.Validate(&submitRequestRequest{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		ServiceType: "Website Design",
		Description: "description long enough to pass",
	}); err != nil {
		t.Fatalf("empty optional fields must validate: %v", err)
	}

	err := v.Validate(&submitRequestRequest{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		ServiceType: "Website Design",
		Description: "description long enough to pass",
		MinBudget:   "five hundred",
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["minBudget"]; !ok {
		t.Fatalf("expected minBudget error: %v", ve.Fields)
	}
}

func TestValidator_ValidPayloadPasses(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&submitMessageRequest{
		Name:    "John Smith",
		Email:   "john@example.com",
		Subject: "Hello",
		Message: "A message body with enough length.",
	}); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
}
