package service

import (
	"context"

	"github.com/MKhiriev/go-blogr/models"
)

// AuthService covers user registration, credential verification, and the
// session token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, username, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	CreateSession(ctx context.Context, user models.User) (models.Token, error)
	ResolveSession(ctx context.Context, tokenString string) (models.User, error)
}

// PostService covers blog post reads and ownership-checked mutations.
type PostService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	CreatePost(ctx context.Context, title, body string, author models.User) (models.Post, error)
	UpdatePost(ctx context.Context, id int64, title, body string, author models.User) error
	DeletePost(ctx context.Context, id int64, author models.User) error
}
