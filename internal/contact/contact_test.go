package contact

import (
	"context"
	"testing"
	"time"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"ada@example.com", true},
		{"a@b.co", true},
		{"first.last@sub.domain.org", true},
		{"", false},
		{"no-at-sign", false},
		{"spaces in@example.com", false},
		{"ada@nodot", false},
		{"@example.com", false},
		{"ada@.com", true}, // shape check only, same as the form's regexp
	}
	for _, tt := range tests {
		if got := ValidEmail(tt.email); got != tt.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestValidateAllInvalid(t *testing.T) {
	errs := Validate(Form{Name: "", Email: "not-an-email", Message: "  "})
	if len(errs) != 3 {
		t.Fatalf("got %d errors %v, want 3", len(errs), errs)
	}
	if errs[FieldName] != "Name is required." {
		t.Errorf("name error = %q", errs[FieldName])
	}
	if errs[FieldEmail] != "Enter a valid email." {
		t.Errorf("email error = %q", errs[FieldEmail])
	}
	if errs[FieldMessage] != "Message is required." {
		t.Errorf("message error = %q", errs[FieldMessage])
	}
	if errs.Valid() {
		t.Error("Valid() should be false")
	}
}

func TestValidateEmptyEmailMessage(t *testing.T) {
	errs := Validate(Form{Name: "Ada", Email: "", Message: "hi"})
	if errs[FieldEmail] != "Email is required." {
		t.Errorf("email error = %q, want required message", errs[FieldEmail])
	}
	if len(errs) != 1 {
		t.Errorf("got %d errors, want 1", len(errs))
	}
}

func TestValidateOK(t *testing.T) {
	errs := Validate(Form{Name: "Ada", Email: "ada@example.com", Message: "Hello there"})
	if !errs.Valid() {
		t.Errorf("unexpected errors: %v", errs)
	}
}

func TestSubmitSuccess(t *testing.T) {
	s := Submitter{Delay: time.Millisecond}
	err := s.Submit(context.Background(), Form{Name: "Ada", Email: "ada@example.com", Message: "hi"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
}

func TestSubmitBlockedByValidation(t *testing.T) {
	s := Submitter{Delay: time.Millisecond}
	err := s.Submit(context.Background(), Form{})
	if err == nil {
		t.Fatal("expected error for invalid form")
	}
}

func TestSubmitRespectsContext(t *testing.T) {
	s := Submitter{Delay: time.Second}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Submit(ctx, Form{Name: "Ada", Email: "ada@example.com", Message: "hi"})
	if err == nil {
		t.Fatal("expected context error")
	}
}
