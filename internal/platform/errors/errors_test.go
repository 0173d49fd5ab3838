package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("submit: %w", Wrap(CodeVenueSubmissionFailed, "create venue", stderrors.New("boom")))
	if !stderrors.Is(err, New(CodeVenueSubmissionFailed, "")) {
		t.Fatal("expected code match through wrapping")
	}
	if stderrors.Is(err, New(CodeNotFound, "")) {
		t.Fatal("expected different code not to match")
	}
}

func TestErrorMessageIncludesCause(t *testing.T) {
	err := Wrap(CodeVenueSubmissionFailed, "create venue", stderrors.New("boom"))
	if got := err.Error(); got != "create venue: boom" {
		t.Fatalf("Error() = %q, want %q", got, "create venue: boom")
	}
	if got := New(CodeNotFound, "missing").Error(); got != "missing" {
		t.Fatalf("Error() = %q, want %q", got, "missing")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain", err: stderrors.New("plain"), want: CodeUnknown},
		{name: "domain", err: New(CodeWizardInvalidTransition, "bad"), want: CodeWizardInvalidTransition},
		{name: "wrapped", err: fmt.Errorf("ctx: %w", New(CodeNotFound, "gone")), want: CodeNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CodeOf(tc.err); got != tc.want {
				t.Fatalf("CodeOf() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	tests := map[Code]int{
		CodeVenueNameEmpty:             http.StatusUnprocessableEntity,
		CodeWizardInvalidTransition:    http.StatusConflict,
		CodeWizardSubmissionInProgress: http.StatusConflict,
		CodeNotFound:                   http.StatusNotFound,
		CodeVenueSubmissionFailed:      http.StatusBadGateway,
		CodeUnknown:                    http.StatusInternalServerError,
	}
	for code, want := range tests {
		if got := code.HTTPStatus(); got != want {
			t.Fatalf("%s.HTTPStatus() = %d, want %d", code, got, want)
		}
	}
}

func TestMessageKey(t *testing.T) {
	if got := CodeVenueNameEmpty.MessageKey(); got != "error.VENUE_NAME_EMPTY" {
		t.Fatalf("MessageKey() = %q", got)
	}
	if got := Code("").MessageKey(); got != "error.UNKNOWN" {
		t.Fatalf("empty MessageKey() = %q", got)
	}
}
