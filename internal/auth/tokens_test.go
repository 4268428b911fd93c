package auth

import "testing"

func TestLookup_KnownTokens(t *testing.T) {
	identity, err := Lookup("admin-token")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if identity.Username != "admin" || !identity.IsAdmin {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	identity, err = Lookup("valid-token")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if identity.Username != "johndoe" || identity.IsAdmin {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestLookup_UnknownToken(t *testing.T) {
	if _, err := Lookup("expired-token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestFromAuthorizationHeader(t *testing.T) {
	identity, err := FromAuthorizationHeader("Bearer user-token")
	if err != nil {
		t.Fatalf("FromAuthorizationHeader: %v", err)
	}
	if identity.Username != "alice" {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	// Scheme matching is case-insensitive.
	if _, err := FromAuthorizationHeader("bearer user-token"); err != nil {
		t.Fatalf("expected lowercase scheme to be accepted, got %v", err)
	}

	for _, header := range []string{"", "Bearer", "Basic dXNlcg==", "Bearer nope"} {
		if _, err := FromAuthorizationHeader(header); err == nil {
			t.Fatalf("expected error for header %q", header)
		}
	}
}
