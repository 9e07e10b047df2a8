package token

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestCodec(t *testing.T, secret string) *Codec {
	t.Helper()
	codec, err := NewCodec(secret, 24*time.Hour)
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	return codec
}

func TestIssueVerifyRoundtrip(t *testing.T) {
	codec := newTestCodec(t, "test-secret")
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tokenString, err := codec.Issue("user-123", issuedAt)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	subject, err := codec.Verify(tokenString, issuedAt.Add(time.Hour))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if subject != "user-123" {
		t.Fatalf("expected subject user-123, got %q", subject)
	}
}

func TestVerifyExpiryBoundary(t *testing.T) {
	codec := newTestCodec(t, "test-secret")
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tokenString, err := codec.Issue("user-123", issuedAt)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	cases := []struct {
		name    string
		at      time.Time
		expired bool
	}{
		{"just before expiry", issuedAt.Add(24*time.Hour - time.Second), false},
		{"exactly at expiry", issuedAt.Add(24 * time.Hour), true},
		{"one hour past expiry", issuedAt.Add(25 * time.Hour), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := codec.Verify(tokenString, tc.at)
			if tc.expired {
				if !errors.Is(err, ErrExpired) {
					t.Fatalf("expected ErrExpired, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected valid token, got %v", err)
			}
		})
	}
}

func TestVerifyForeignKey(t *testing.T) {
	issuer := newTestCodec(t, "key-one")
	verifier := newTestCodec(t, "key-two")
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tokenString, err := issuer.Issue("user-123", now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Verify(tokenString, now); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestVerifyMalformed(t *testing.T) {
	codec := newTestCodec(t, "test-secret")
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	valid, err := codec.Issue("user-123", now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"missing segments", "aaaa.bbbb"},
		{"truncated", valid[:len(valid)/2]},
		{"non-base64 payload", "eyJhbGciOiJIUzI1NiJ9.!!!!.signature"},
		{"whitespace", "   "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := codec.Verify(tc.input, now); !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestVerifyTamperedPayload(t *testing.T) {
	codec := newTestCodec(t, "test-secret")
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tokenString, err := codec.Issue("user-123", now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", tokenString)
	}
	other, err := codec.Issue("user-456", now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	otherParts := strings.Split(other, ".")
	tampered := parts[0] + "." + otherParts[1] + "." + parts[2]

	if _, err := codec.Verify(tampered, now); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestNewCodecRequiresSecret(t *testing.T) {
	if _, err := NewCodec("", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}
