package auth

import (
	"errors"
	"strings"
)

// Identity is the resolved caller behind one of the demo bearer tokens.
type Identity struct {
	ID          int
	Username    string
	Email       string
	IsAdmin     bool
	Permissions []string
}

var ErrInvalidToken = errors.New("invalid authentication token")

// The demo ships a fixed credential set; there is no issuance, rotation,
// or expiry.
var tokenIdentities = map[string]Identity{
	"valid-token": {ID: 1, Username: "johndoe", Email: "john@example.com", Permissions: []string{"read", "write"}},
	"admin-token": {ID: 2, Username: "admin", Email: "admin@example.com", IsAdmin: true, Permissions: []string{"read", "write", "admin", "delete"}},
	"user-token":  {ID: 3, Username: "alice", Email: "alice@example.com", Permissions: []string{"read", "write"}},
}

func Lookup(token string) (Identity, error) {
	identity, ok := tokenIdentities[token]
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	return identity, nil
}

// FromAuthorizationHeader resolves a "Bearer <token>" header value.
func FromAuthorizationHeader(header string) (Identity, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return Identity{}, ErrInvalidToken
	}
	return Lookup(parts[1])
}
