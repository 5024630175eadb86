package validation

import (
	"errors"
	"strings"
	"testing"
)

type businessPayload struct {
	Name    string `json:"name" validate:"required,min=5,max=100"`
	Address string `json:"address" validate:"required,min=5,max=100"`
	Phone   string `json:"phone" validate:"required,min=5,max=20"`
}

func validPayload() businessPayload {
	return businessPayload{
		Name:    "Corner Bakery",
		Address: "12 Main Street",
		Phone:   "555-0101",
	}
}

func TestValidator_Struct_Valid(t *testing.T) {
	v := New()

	if err := v.Struct(validPayload()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidator_Struct_FieldBounds(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		mutate  func(*businessPayload)
		message string
	}{
		{
			name:    "missing name",
			mutate:  func(p *businessPayload) { p.Name = "" },
			message: "name is required",
		},
		{
			name:    "name too short",
			mutate:  func(p *businessPayload) { p.Name = "abcd" },
			message: "name must be at least 5 characters long",
		},
		{
			name:    "name too long",
			mutate:  func(p *businessPayload) { p.Name = strings.Repeat("a", 101) },
			message: "name must be at most 100 characters long",
		},
		{
			name:    "address too short",
			mutate:  func(p *businessPayload) { p.Address = "x" },
			message: "address must be at least 5 characters long",
		},
		{
			name:    "phone too short",
			mutate:  func(p *businessPayload) { p.Phone = "123" },
			message: "phone must be at least 5 characters long",
		},
		{
			name:    "phone too long",
			mutate:  func(p *businessPayload) { p.Phone = "123456789012345678901" },
			message: "phone must be at most 20 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload()
			tt.mutate(&payload)

			err := v.Struct(payload)
			if err == nil {
				t.Fatal("expected validation error")
			}

			vErr, ok := AsValidationError(err)
			if !ok {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if vErr.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, vErr.Message)
			}
		})
	}
}

func TestValidator_Struct_ReportsFirstFailingField(t *testing.T) {
	v := New()

	err := v.Struct(businessPayload{})
	if err == nil {
		t.Fatal("expected validation error")
	}

	vErr, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if vErr.Field != "name" {
		t.Errorf("expected first failing field name, got %s", vErr.Field)
	}
}

func TestValidator_Email(t *testing.T) {
	v := New()

	if err := v.Email("alice@example.com"); err != nil {
		t.Errorf("expected valid email, got %v", err)
	}

	for _, email := range []string{"", "not-an-email", "missing@tld@twice", "@example.com"} {
		if err := v.Email(email); !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("email %q: expected ErrInvalidEmail, got %v", email, err)
		}
	}
}

func TestValidateRecordID(t *testing.T) {
	valid := []string{
		"507f1f77bcf86cd799439011",
		"aaaaaaaaaaaaaaaaaaaaaaaa",
		"ABCDEF0123456789abcdef01",
	}
	for _, id := range valid {
		if err := ValidateRecordID(id); err != nil {
			t.Errorf("id %q: expected valid, got %v", id, err)
		}
	}

	invalid := []string{
		"",
		"short",
		"507f1f77bcf86cd79943901",    // 23 chars
		"507f1f77bcf86cd7994390111",  // 25 chars
		"507f1f77bcf86cd79943901g",   // non-hex
		"507f1f77 bcf86cd799439011",  // whitespace
		"507f1f77-bcf8-6cd7-994390",  // separators
	}
	for _, id := range invalid {
		if err := ValidateRecordID(id); !errors.Is(err, ErrInvalidID) {
			t.Errorf("id %q: expected ErrInvalidID, got %v", id, err)
		}
	}
}
