package providers

import (
	"fmt"
	"strings"
	"testing"
)

func TestStatusErrorString(t *testing.T) {
	err := &StatusError{
		Provider:   "statsapi",
		Endpoint:   "/api/v1/teams/999",
		StatusCode: 404,
		Body:       "Not Found",
	}
	got := err.Error()
	if !strings.Contains(got, "404") || !strings.Contains(got, "/api/v1/teams/999") || !strings.Contains(got, "Not Found") {
		t.Fatalf("expected status, endpoint and body in error string, got %q", got)
	}

	bare := &StatusError{Provider: "statsapi", Endpoint: "/x", StatusCode: 500}
	if strings.HasSuffix(bare.Error(), ": ") {
		t.Fatalf("expected no trailing separator without body, got %q", bare.Error())
	}
}

func TestAsStatusErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("fetch roster: %w", &StatusError{StatusCode: 503})

	statusErr, ok := AsStatusError(wrapped)
	if !ok || statusErr.StatusCode != 503 {
		t.Fatalf("expected to unwrap status error, got %+v, %v", statusErr, ok)
	}
	if _, ok := AsStatusError(fmt.Errorf("plain")); ok {
		t.Fatal("expected plain error not to unwrap")
	}
}
