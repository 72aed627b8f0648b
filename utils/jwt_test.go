package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("owner-42", "owner", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	sub, role, err := ExtractIDFromToken(token)
	if err != nil {
		t.Fatalf("ExtractIDFromToken returned error: %v", err)
	}
	if sub != "owner-42" {
		t.Errorf("subject = %q; want owner-42", sub)
	}
	if role != "owner" {
		t.Errorf("role = %q; want owner", role)
	}
}

func TestExpiredTokenIsRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if _, _, err := ExtractIDFromToken(token); err == nil {
		t.Errorf("expected error for expired token")
	}
}

func TestGarbageTokenIsRejected(t *testing.T) {
	if _, _, err := ExtractIDFromToken("not-a-token"); err == nil {
		t.Errorf("expected error for malformed token")
	}
}
