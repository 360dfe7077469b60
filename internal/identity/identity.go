// Package identity resolves the principal a checkout runs on behalf of:
// either an authenticated subject taken from verified claims, or a guest id
// derived from a client-supplied token.
package identity

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// GuestPrefix marks guest ids. Authenticated subjects come only from verified
// JWT claims and never carry it, so the two namespaces cannot collide.
const GuestPrefix = "guest_"

var guestTokenPattern = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// Principal is the resolved checkout identity.
type Principal struct {
	ID      string
	IsGuest bool
}

// Resolve derives the principal. subject is the authenticated user id from
// verified credentials (empty when unauthenticated); guestToken is the
// optional client-supplied guest id. Resolution always succeeds.
func Resolve(subject, guestToken string) Principal {
	if s := strings.TrimSpace(subject); s != "" {
		return Principal{ID: s, IsGuest: false}
	}

	token := guestTokenPattern.ReplaceAllString(guestToken, "")
	if token == "" {
		token = GuestPrefix + uuid.NewString()
	} else if !strings.HasPrefix(token, GuestPrefix) {
		token = GuestPrefix + token
	}
	return Principal{ID: token, IsGuest: true}
}
