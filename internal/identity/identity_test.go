package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_AuthenticatedSubject(t *testing.T) {
	p := Resolve("  user-42  ", "guest_ignored")

	assert.Equal(t, "user-42", p.ID)
	assert.False(t, p.IsGuest)
}

func TestResolve_GuestTokenSanitized(t *testing.T) {
	p := Resolve("", "guest_abc!@#123 xyz")

	assert.True(t, p.IsGuest)
	assert.Equal(t, "guest_abc123xyz", p.ID)
}

func TestResolve_GuestTokenWithoutPrefix(t *testing.T) {
	p := Resolve("", "abc-123")

	assert.True(t, p.IsGuest)
	assert.Equal(t, "guest_abc-123", p.ID)
}

func TestResolve_NoTokenSynthesizesFreshGuest(t *testing.T) {
	a := Resolve("", "")
	b := Resolve("", "")

	assert.True(t, a.IsGuest)
	assert.True(t, strings.HasPrefix(a.ID, GuestPrefix))
	assert.Greater(t, len(a.ID), len(GuestPrefix))
	assert.NotEqual(t, a.ID, b.ID)
}

func TestResolve_TokenOfOnlyIllegalCharsSynthesizes(t *testing.T) {
	p := Resolve("", "!!! ###")

	assert.True(t, p.IsGuest)
	assert.True(t, strings.HasPrefix(p.ID, GuestPrefix))
	assert.Greater(t, len(p.ID), len(GuestPrefix))
}
