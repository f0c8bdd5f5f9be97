package store

import (
	"github.com/MKhiriev/go-blogr/internal/logger"
)

// Repositories aggregates all data-access repositories sharing one database
// pool.
type Repositories struct {
	Users UserRepository
	Posts PostRepository
}

// NewRepositories constructs the full repository set over db.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		Users: NewUserRepository(db, logger),
		Posts: NewPostRepository(db, logger),
	}
}
