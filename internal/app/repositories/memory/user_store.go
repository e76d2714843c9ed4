package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"placementhub/internal/app/models"
	"placementhub/internal/pkg/apperrors"
)

// UserStore is an in-memory UserRepository
type UserStore struct {
	mu     sync.RWMutex
	users  map[int64]models.User
	nextID int64
}

// NewUserStore creates an empty user store
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[int64]models.User), nextID: 1}
}

// Create stores a new user and assigns its id. Emails are unique,
// case-insensitively.
func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return apperrors.ErrEmailAlreadyExists
		}
	}

	user.ID = s.nextID
	s.nextID++
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	s.users[user.ID] = *user
	return nil
}

// GetByID retrieves a user by id, nil when absent
func (s *UserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// GetByEmail retrieves a user by email, nil when absent
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if strings.EqualFold(user.Email, email) {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

// GetByIDs resolves the given user ids
func (s *UserStore) GetByIDs(ctx context.Context, ids []int64) (map[int64]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[int64]*models.User, len(ids))
	for _, id := range ids {
		if user, ok := s.users[id]; ok {
			u := user
			result[id] = &u
		}
	}
	return result, nil
}
