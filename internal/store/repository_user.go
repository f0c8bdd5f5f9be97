package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blogr/internal/logger"
	"github.com/MKhiriev/go-blogr/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All statements run on the querier resolved from the request context, so
// within one request every call shares the single request-scoped connection.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database pool and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the [models.User] with
// the server-assigned id filled in.
//
// Error handling:
//   - Unique-constraint violation on username → [ErrUsernameTaken].
//   - Released request connection → [ErrConnClosed].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	q, err := QuerierFromContext(ctx, r.db)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: no usable connection")
		return models.User{}, err
	}

	query, args, err := insertUserQuery(user.Username, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: building query")
		return models.User{}, err
	}

	// create user in db
	row := q.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&user.UserID); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting user")

		switch {
		case isUniqueViolation(err):
			return models.User{}, ErrUsernameTaken
		case errors.Is(err, sql.ErrConnDone):
			return models.User{}, ErrConnClosed
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return user, nil
}

// FindUserByUsername retrieves the user record whose username matches
// exactly (case-sensitive). Returns [ErrUserNotFound] on an empty result.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	query, args, err := findUserByUsernameQuery(username)
	if err != nil {
		return models.User{}, err
	}

	return r.findOne(ctx, "*userRepository.FindUserByUsername", query, args)
}

// FindUserByID retrieves the user record with the given id.
// Returns [ErrUserNotFound] on an empty result.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	query, args, err := findUserByIDQuery(id)
	if err != nil {
		return models.User{}, err
	}

	return r.findOne(ctx, "*userRepository.FindUserByID", query, args)
}

func (r *userRepository) findOne(ctx context.Context, caller, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	q, err := QuerierFromContext(ctx, r.db)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error: no usable connection")
		return models.User{}, err
	}

	var foundUser models.User
	row := q.QueryRowContext(ctx, query, args...)

	// scan found user from db
	if err := row.Scan(&foundUser.UserID, &foundUser.Username, &foundUser.PasswordHash); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.User{}, ErrUserNotFound
		case errors.Is(err, sql.ErrConnDone):
			log.Err(err).Str("func", caller).Msg("error: stale request connection")
			return models.User{}, ErrConnClosed
		default:
			log.Err(err).Str("func", caller).Msg("error: scanning error")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return foundUser, nil
}
