// Package utils provides general-purpose helper utilities used across the
// application: the authenticated identity carried in a context, JSON
// response writing, password hashing, identifier generation and an HTTP
// client wrapper.
package utils

import (
	"context"

	"github.com/MKhiriev/go-courses-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the authenticated user is stored.
var UserCtxKey = contextKey("authenticatedUser")

// WithUser returns a copy of ctx carrying user as the authenticated identity.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
//
// ok is false when no identity was attached, i.e. the request did not pass
// through the credential verifier.
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}
