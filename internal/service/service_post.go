package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blogr/internal/logger"
	"github.com/MKhiriev/go-blogr/internal/store"
	"github.com/MKhiriev/go-blogr/models"
)

// postService is the concrete implementation of PostService.
// Reads are public; every mutation first loads the target post and checks
// that the caller is its author.
type postService struct {
	postRepository store.PostRepository
	logger         *logger.Logger
}

// NewPostService constructs a PostService wired to the given PostRepository.
func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		logger:         logger,
	}
}

// ListPosts returns all posts newest-first, each joined with its author's
// username. Listing is public.
func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepository.ListPosts(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing posts failed")
		return nil, fmt.Errorf("listing posts failed: %w", err)
	}

	return posts, nil
}

// GetPost returns the post with the given id without any ownership check.
// Returns store.ErrPostNotFound when no such post exists.
func (p *postService) GetPost(ctx context.Context, id int64) (models.Post, error) {
	return p.postRepository.GetPost(ctx, id)
}

// CreatePost persists a new post owned by author.
//
// Returns ErrInvalidData if the title is empty; the body is optional.
func (p *postService) CreatePost(ctx context.Context, title, body string, author models.User) (models.Post, error) {
	log := logger.FromContext(ctx)

	if title == "" {
		log.Error().Int64("author_id", author.UserID).Msg("post creation without title")
		return models.Post{}, ErrInvalidData
	}

	post, err := p.postRepository.CreatePost(ctx, models.Post{
		AuthorID: author.UserID,
		Title:    title,
		Body:     body,
	})
	if err != nil {
		log.Err(err).Int64("author_id", author.UserID).Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return post, nil
}

// UpdatePost overwrites title and body of an existing post.
//
// The target is loaded first: a missing post yields store.ErrPostNotFound and
// a post owned by another user yields ErrNotOwner, before any validation of
// the new title. The created timestamp and author are never touched.
func (p *postService) UpdatePost(ctx context.Context, id int64, title, body string, author models.User) error {
	if _, err := p.getOwned(ctx, id, author); err != nil {
		return err
	}

	if title == "" {
		logger.FromContext(ctx).Error().Int64("post_id", id).Msg("post update without title")
		return ErrInvalidData
	}

	if err := p.postRepository.UpdatePost(ctx, models.Post{PostID: id, Title: title, Body: body}); err != nil {
		logger.FromContext(ctx).Err(err).Int64("post_id", id).Msg("post update ended with error")
		return fmt.Errorf("post update ended with error: %w", err)
	}

	return nil
}

// DeletePost permanently removes an existing post after the same
// load-and-ownership check as UpdatePost.
func (p *postService) DeletePost(ctx context.Context, id int64, author models.User) error {
	if _, err := p.getOwned(ctx, id, author); err != nil {
		return err
	}

	if err := p.postRepository.DeletePost(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("post_id", id).Msg("post deletion ended with error")
		return fmt.Errorf("post deletion ended with error: %w", err)
	}

	return nil
}

// getOwned loads the post with the given id and verifies that author owns it.
func (p *postService) getOwned(ctx context.Context, id int64, author models.User) (models.Post, error) {
	post, err := p.postRepository.GetPost(ctx, id)
	if err != nil {
		return models.Post{}, err
	}

	if post.AuthorID != author.UserID {
		logger.FromContext(ctx).Warn().
			Int64("post_id", id).
			Int64("owner_id", post.AuthorID).
			Int64("caller_id", author.UserID).
			Msg("mutation attempt by non-owner")
		return models.Post{}, ErrNotOwner
	}

	return post, nil
}
