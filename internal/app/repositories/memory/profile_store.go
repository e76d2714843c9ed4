package memory

import (
	"context"
	"sync"

	"placementhub/internal/app/models"
)

// ProfileStore is an in-memory ProfileRepository
type ProfileStore struct {
	mu       sync.RWMutex
	profiles map[int64]models.StudentProfile
	order    []int64 // insertion order, keeps listings deterministic
}

// NewProfileStore creates an empty profile store
func NewProfileStore() *ProfileStore {
	return &ProfileStore{profiles: make(map[int64]models.StudentProfile)}
}

// Upsert creates or replaces the profile for its user id
func (s *ProfileStore) Upsert(ctx context.Context, profile *models.StudentProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.profiles[profile.UserID]; !exists {
		s.order = append(s.order, profile.UserID)
	}
	s.profiles[profile.UserID] = *profile
	return nil
}

// GetByUserID retrieves the profile for a user, nil when absent
func (s *ProfileStore) GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

// GetAll retrieves every stored profile in insertion order
func (s *ProfileStore) GetAll(ctx context.Context) ([]*models.StudentProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profiles := make([]*models.StudentProfile, 0, len(s.order))
	for _, userID := range s.order {
		profile := s.profiles[userID]
		profiles = append(profiles, &profile)
	}
	return profiles, nil
}
