package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blogr/internal/logger"
	"github.com/MKhiriev/go-blogr/models"
)

// postRepository is the SQL-backed implementation of [PostRepository].
// Every read joins the author's username; every statement runs on the
// querier resolved from the request context.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database pool and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// ListPosts returns all posts joined with their author's username, newest
// first (ordered by created descending).
func (r *postRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	q, err := QuerierFromContext(ctx, r.db)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error: no usable connection")
		return nil, err
	}

	query, args, err := listPostsQuery()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error: building query")
		return nil, err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error: executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", normalizeConnErr(err))
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.PostID, &post.AuthorID, &post.AuthorName, &post.Title, &post.Body, &post.Created); err != nil {
			log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error: scanning row")
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error: iterating rows")
		return nil, err
	}

	return posts, nil
}

// GetPost retrieves a single post (joined with author username) by id.
// Returns [ErrPostNotFound] on an empty result.
func (r *postRepository) GetPost(ctx context.Context, id int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	q, err := QuerierFromContext(ctx, r.db)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPost").Msg("error: no usable connection")
		return models.Post{}, err
	}

	query, args, err := getPostQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPost").Msg("error: building query")
		return models.Post{}, err
	}

	var post models.Post
	row := q.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&post.PostID, &post.AuthorID, &post.AuthorName, &post.Title, &post.Body, &post.Created); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Post{}, ErrPostNotFound
		case errors.Is(err, sql.ErrConnDone):
			log.Err(err).Str("func", "*postRepository.GetPost").Msg("error: stale request connection")
			return models.Post{}, ErrConnClosed
		default:
			log.Err(err).Str("func", "*postRepository.GetPost").Msg("error: scanning error")
			return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return post, nil
}

// CreatePost persists a new post owned by post.AuthorID and returns the
// stored record with the server-assigned id and creation timestamp. The
// created column is set by the database default at insert time.
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	q, err := QuerierFromContext(ctx, r.db)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error: no usable connection")
		return models.Post{}, err
	}

	query, args, err := insertPostQuery(post.AuthorID, post.Title, post.Body)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error: building query")
		return models.Post{}, err
	}

	row := q.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&post.PostID, &post.Created); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error: inserting post")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", normalizeConnErr(err))
	}

	return post, nil
}

// UpdatePost overwrites title and body of the post identified by
// post.PostID. The created timestamp and author are left untouched.
// Returns [ErrPostNotFound] when no row matches.
func (r *postRepository) UpdatePost(ctx context.Context, post models.Post) error {
	query, args, err := updatePostQuery(post.PostID, post.Title, post.Body)
	if err != nil {
		return err
	}

	return r.exec(ctx, "*postRepository.UpdatePost", query, args)
}

// DeletePost permanently removes the post with the given id.
// Returns [ErrPostNotFound] when no row matches.
func (r *postRepository) DeletePost(ctx context.Context, id int64) error {
	query, args, err := deletePostQuery(id)
	if err != nil {
		return err
	}

	return r.exec(ctx, "*postRepository.DeletePost", query, args)
}

func (r *postRepository) exec(ctx context.Context, caller, query string, args []any) error {
	log := logger.FromContext(ctx)

	q, err := QuerierFromContext(ctx, r.db)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error: no usable connection")
		return err
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error: executing statement")
		return fmt.Errorf("unexpected DB error: %w", normalizeConnErr(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error: reading affected rows")
		return err
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}
