package store

import (
	sq "github.com/Masterminds/squirrel"
)

// builder produces dollar-numbered placeholders. PostgreSQL requires them
// and SQLite binds $N parameters by ordinal, so one placeholder format
// serves both backends.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// postListColumns are the columns selected whenever posts are read joined
// with their author's username.
var postListColumns = []string{"p.id", "p.author_id", "u.username", "p.title", "p.body", "p.created"}

func insertUserQuery(username, passwordHash string) (string, []any, error) {
	return builder.
		Insert("users").
		Columns("username", "password").
		Values(username, passwordHash).
		Suffix("RETURNING id").
		ToSql()
}

func findUserByUsernameQuery(username string) (string, []any, error) {
	return builder.
		Select("id", "username", "password").
		From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
}

func findUserByIDQuery(id int64) (string, []any, error) {
	return builder.
		Select("id", "username", "password").
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func insertPostQuery(authorID int64, title, body string) (string, []any, error) {
	return builder.
		Insert("posts").
		Columns("author_id", "title", "body").
		Values(authorID, title, body).
		Suffix("RETURNING id, created").
		ToSql()
}

func listPostsQuery() (string, []any, error) {
	return builder.
		Select(postListColumns...).
		From("posts p").
		Join("users u ON p.author_id = u.id").
		OrderBy("p.created DESC").
		ToSql()
}

func getPostQuery(id int64) (string, []any, error) {
	return builder.
		Select(postListColumns...).
		From("posts p").
		Join("users u ON p.author_id = u.id").
		Where(sq.Eq{"p.id": id}).
		ToSql()
}

// updatePostQuery touches only title and body: created and author_id are
// immutable after creation.
func updatePostQuery(id int64, title, body string) (string, []any, error) {
	return builder.
		Update("posts").
		Set("title", title).
		Set("body", body).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func deletePostQuery(id int64) (string, []any, error) {
	return builder.
		Delete("posts").
		Where(sq.Eq{"id": id}).
		ToSql()
}
