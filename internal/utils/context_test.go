package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-blogr/models"
	"github.com/stretchr/testify/assert"
)

func TestGetIdentityFromContext(t *testing.T) {
	user := models.User{UserID: 7, Username: "john"}
	ctx := context.WithValue(context.Background(), IdentityCtxKey, user)

	got, ok := GetIdentityFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, user, got)
}

func TestGetIdentityFromContext_Anonymous(t *testing.T) {
	_, ok := GetIdentityFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "not-a-user")

	_, ok := GetIdentityFromContext(ctx)
	assert.False(t, ok)
}
