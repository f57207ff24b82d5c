package store

import "github.com/finbank/finbank-api/internal/logger"

// Repositories groups every repository backed by the shared [DB].
type Repositories struct {
	UserRepository      UserRepository
	ProfileRepository   ProfileRepository
	NextOfKinRepository NextOfKinRepository
}

// NewRepositories wires all repositories to db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:      NewUserRepository(db, log),
		ProfileRepository:   NewProfileRepository(db, log),
		NextOfKinRepository: NewNextOfKinRepository(db, log),
	}
}
