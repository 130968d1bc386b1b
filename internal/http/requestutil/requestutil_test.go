package requestutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSanitizeRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"valid", "abc-123_XYZ", true},
		{"empty", "", false},
		{"spaces", "a b", false},
		{"newline", "a\nb", false},
		{"too long", strings.Repeat("a", 65), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SanitizeRequestID(tc.incoming)
			if tc.keep && got != tc.incoming {
				t.Fatalf("got %q, want incoming kept", got)
			}
			if !tc.keep && (got == tc.incoming || got == "") {
				t.Fatalf("got %q, want a replacement", got)
			}
		})
	}
}

func TestNewRequestIDIsUnique(t *testing.T) {
	a, b := NewRequestID(), NewRequestID()
	if a == "" || a == b {
		t.Fatalf("ids %q, %q", a, b)
	}
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	if got := ClientIP(r); got != "10.0.0.1:1234" {
		t.Fatalf("remote addr ip = %q", got)
	}

	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if got := ClientIP(r); got != "203.0.113.9" {
		t.Fatalf("forwarded ip = %q", got)
	}

	if got := ClientIP(nil); got != "" {
		t.Fatalf("nil request ip = %q", got)
	}
}
