package errors

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestAppErrorMessage(t *testing.T) {
	err := NotFoundWithID("Booking", "abc123")

	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", err.HTTPStatus)
	}
	if !strings.Contains(err.Error(), "Booking not found") {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if err.Details["id"] != "abc123" {
		t.Errorf("expected id detail, got %v", err.Details)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("Failed to load bookings", cause)

	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to be reachable via errors.Is")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("expected cause in message, got: %s", err.Error())
	}
}

func TestAsAppError(t *testing.T) {
	plain := errors.New("boom")
	appErr := AsAppError(plain)
	if appErr.Code != CodeInternal {
		t.Errorf("expected plain error to map to %s, got %s", CodeInternal, appErr.Code)
	}

	conflict := Conflict("already exists")
	if got := AsAppError(conflict); got != conflict {
		t.Error("expected AppError to pass through unchanged")
	}
}
