package models

import "time"

// Post represents a single blog entry owned by exactly one user.
type Post struct {
	// PostID is the internal unique identifier of the post, assigned by the
	// database at creation time.
	PostID int64 `json:"id"`

	// AuthorID references the owning user. Only that user may update or
	// delete the post. Immutable after creation.
	AuthorID int64 `json:"author_id"`

	// AuthorName is the owning user's username joined in by listing queries.
	// Not a column of the post table.
	AuthorName string `json:"author_name,omitempty"`

	// Title is the required, non-empty headline of the post.
	Title string `json:"title"`

	// Body is the optional free-form text of the post.
	Body string `json:"body"`

	// Created is the server-side creation timestamp. Set once at insert,
	// never updated.
	Created time.Time `json:"created"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
