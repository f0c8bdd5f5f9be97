// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// and session JWT token generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-blogr/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key used to store the resolved identity (the logged
// in [models.User]) in the request context. The key is absent for anonymous
// requests.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.IdentityCtxKey, user)
var IdentityCtxKey = contextKey("identity")

// GetIdentityFromContext retrieves the resolved identity from the context.
//
// Returns the user and an ok flag:
//   - ok == true: a logged in user was resolved for this request
//   - ok == false: the request is anonymous
func GetIdentityFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(IdentityCtxKey).(models.User)
	return user, ok
}
