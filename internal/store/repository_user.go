package store

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/models"
)

// MemoryUserRepository is the in-memory implementation of [UserRepository].
//
// All access goes through mu, so a single instance can be shared by every
// request goroutine. Records are kept in insertion order.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	users  []models.User
	logger *logger.Logger
}

// MemoryOption configures a [MemoryUserRepository] at construction time.
type MemoryOption func(*MemoryUserRepository)

// WithUsers preloads the repository with the given records. Records are
// stored as given, ids included.
func WithUsers(users ...models.User) MemoryOption {
	return func(r *MemoryUserRepository) {
		r.users = append(r.users, users...)
	}
}

// NewMemoryUserRepository constructs an empty in-memory repository and applies opts.
func NewMemoryUserRepository(logger *logger.Logger, opts ...MemoryOption) *MemoryUserRepository {
	repo := &MemoryUserRepository{logger: logger}
	for _, opt := range opts {
		opt(repo)
	}

	logger.Debug().Int("users", len(repo.users)).Msg("creating in-memory user repository")
	return repo
}

// CreateUser stores a new user and returns it with the assigned id.
//
// The id is the current record count plus one. After deletions this may
// repeat an id that is still in use; lookups by id then return the earliest
// matching record.
func (r *MemoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexByName(user.Name) >= 0 {
		log.Debug().Str("func", "*MemoryUserRepository.CreateUser").Str("name", user.Name).Msg("name is taken")
		return models.User{}, ErrLoginAlreadyExists
	}

	user.UserID = int64(len(r.users) + 1)
	r.users = append(r.users, user)

	return user, nil
}

// FindUserByName returns the user whose name matches exactly.
func (r *MemoryUserRepository) FindUserByName(ctx context.Context, name string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexByName(name)
	if i < 0 {
		return models.User{}, ErrNoUserWasFound
	}

	return r.users[i], nil
}

// FindUserByID returns the first user with the given id.
func (r *MemoryUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexByID(userID)
	if i < 0 {
		return models.User{}, ErrNoUserWasFound
	}

	return r.users[i], nil
}

// FindUsersByCity returns every user living in city, compared case-insensitively.
// An empty match yields [ErrNoUserWasFound].
func (r *MemoryUserRepository) FindUsersByCity(ctx context.Context, city string) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found []models.User
	for _, user := range r.users {
		if strings.EqualFold(user.City, city) {
			found = append(found, user)
		}
	}

	if len(found) == 0 {
		return nil, ErrNoUserWasFound
	}

	return found, nil
}

// ListUsers returns a snapshot of all users. The result is never nil.
func (r *MemoryUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, len(r.users))
	copy(users, r.users)

	return users, nil
}

// UpdateUser replaces the profile fields of the user with user.UserID.
// The stored password hash is kept unless user carries a new one.
func (r *MemoryUserRepository) UpdateUser(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByID(user.UserID)
	if i < 0 {
		return ErrNoUserWasFound
	}

	if other := r.indexByName(user.Name); other >= 0 && other != i {
		return ErrLoginAlreadyExists
	}

	if user.PasswordHash == "" {
		user.PasswordHash = r.users[i].PasswordHash
	}
	r.users[i] = user

	return nil
}

// DeleteUser removes the first user with the given id.
func (r *MemoryUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByID(userID)
	if i < 0 {
		return ErrNoUserWasFound
	}

	r.users = slices.Delete(r.users, i, i+1)
	return nil
}

// Reset removes every record.
func (r *MemoryUserRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = nil
}

// Len reports the number of stored users.
func (r *MemoryUserRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users)
}

// caller must hold mu
func (r *MemoryUserRepository) indexByName(name string) int {
	return slices.IndexFunc(r.users, func(u models.User) bool { return u.Name == name })
}

// caller must hold mu
func (r *MemoryUserRepository) indexByID(userID int64) int {
	return slices.IndexFunc(r.users, func(u models.User) bool { return u.UserID == userID })
}
