package jwt_test

import (
	"testing"
	"time"

	jwtutil "github.com/Mohit-0987/Bike-Rental-System/util/jwt"
)

func TestIssueAndParseRoundTrip(t *testing.T) {
	tok, err := jwtutil.Issue("secret", 42, "customer", 24)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	for _, header := range []string{tok, "Bearer " + tok, "bearer " + tok} {
		claims, err := jwtutil.Parse(header, "secret")
		if err != nil {
			t.Fatalf("Parse(%q): %v", header, err)
		}
		if claims.CustomerID != 42 {
			t.Fatalf("CustomerID = %d, want 42", claims.CustomerID)
		}
		if claims.Role != "customer" {
			t.Fatalf("Role = %q, want customer", claims.Role)
		}
		if !claims.ExpiresAt.After(time.Now()) {
			t.Fatalf("ExpiresAt = %v, want in the future", claims.ExpiresAt)
		}
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, err := jwtutil.Issue("secret", 1, "customer", 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := jwtutil.Parse(tok, "other-secret"); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	tok, err := jwtutil.Issue("secret", 1, "customer", -1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := jwtutil.Parse(tok, "secret"); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseRejectsEmptyHeader(t *testing.T) {
	if _, err := jwtutil.Parse("", "secret"); err == nil {
		t.Fatal("expected error for empty header")
	}
	if _, err := jwtutil.Parse("Bearer ", "secret"); err == nil {
		t.Fatal("expected error for empty bearer token")
	}
}
