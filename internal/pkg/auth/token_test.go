package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify_Roundtrip(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", time.Hour)

	tests := []struct {
		subject string
		role    Role
	}{
		{"42", RoleCustomer},
		{"42", RoleEmployee},
		{"1", RoleCustomer},
	}

	for _, tt := range tests {
		tok, err := svc.Issue(tt.subject, tt.role)
		if err != nil {
			t.Fatalf("Issue(%q, %q) error: %v", tt.subject, tt.role, err)
		}

		claims, err := svc.Verify(tok)
		if err != nil {
			t.Fatalf("Verify error: %v", err)
		}
		if claims.Subject != tt.subject {
			t.Errorf("subject = %q, want %q", claims.Subject, tt.subject)
		}
		if claims.Role != tt.role {
			t.Errorf("role = %q, want %q", claims.Role, tt.role)
		}
	}
}

func TestIssue_ExpiryFollowsTTL(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("secret", 30*time.Minute)

	tok, err := svc.Issue("7", RoleCustomer, 2*time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	claims, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if lifetime != 2*time.Hour {
		t.Errorf("token lifetime = %v, want %v", lifetime, 2*time.Hour)
	}
}

func TestIssue_NegativeOverrideYieldsExpiredToken(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("secret", time.Hour)
	tok, err := svc.Issue("42", RoleCustomer, -time.Second)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// The override must not fall back to the service default.
	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	if err != nil {
		t.Fatalf("ParseUnverified error: %v", err)
	}
	if !claims.ExpiresAt.Before(time.Now()) {
		t.Errorf("expiry = %v, want a past timestamp", claims.ExpiresAt.Time)
	}
}

func TestIssue_RejectsUnknownRole(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("secret", time.Hour)
	if _, err := svc.Issue("1", Role("superuser")); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("secret", time.Hour)
	tok, err := svc.Issue("42", RoleCustomer, -time.Second)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = svc.Verify(tok)
	if !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService("right-secret", time.Hour)
	verifier := NewTokenService("wrong-secret", time.Hour)

	tok, err := issuer.Issue("42", RoleEmployee)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = verifier.Verify(tok)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("secret", time.Hour)
	for _, tok := range []string{"", "garbage", "not.a.jwt"} {
		if _, err := svc.Verify(tok); !errors.Is(err, ErrMalformed) {
			t.Errorf("Verify(%q): expected ErrMalformed, got %v", tok, err)
		}
	}
}

func TestVerify_MissingExpiry(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("secret", time.Hour)

	// Correctly signed but carrying no exp claim.
	claims := Claims{Role: RoleCustomer}
	claims.Subject = "42"
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	if _, err := svc.Verify(tok); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	if _, err := ParseRole("customer"); err != nil {
		t.Errorf("ParseRole(customer) error: %v", err)
	}
	if _, err := ParseRole("employee"); err != nil {
		t.Errorf("ParseRole(employee) error: %v", err)
	}
	if _, err := ParseRole("admin"); !errors.Is(err, ErrUnknownRole) {
		t.Errorf("ParseRole(admin): expected ErrUnknownRole, got %v", err)
	}
}
