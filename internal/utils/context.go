// Package utils provides general-purpose helpers shared by the client and
// its test fixtures: the HTTP client constructor, identifier generation,
// JSON response writing, and request-ID context plumbing.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// SessionIDCtxKey is the key used to store the client session identifier.
var SessionIDCtxKey = contextKey("sessionID")

// WithSessionID returns a copy of ctx carrying id.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, SessionIDCtxKey, id)
}

// GetSessionIDFromContext retrieves the session identifier from ctx.
//
// ok is false when the value is missing or has an unexpected type.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionIDCtxKey).(string)
	return id, ok && id != ""
}
