package memory

import (
	"context"
	"sync"
	"time"

	"placementhub/internal/app/models"
)

// TokenStore is an in-memory TokenRepository
type TokenStore struct {
	mu     sync.RWMutex
	tokens map[string]models.RefreshToken
	nextID int64
}

// NewTokenStore creates an empty refresh token store
func NewTokenStore() *TokenStore {
	return &TokenStore{tokens: make(map[string]models.RefreshToken), nextID: 1}
}

// Save stores a refresh token
func (s *TokenStore) Save(ctx context.Context, token *models.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	token.ID = s.nextID
	s.nextID++
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}
	s.tokens[token.Token] = *token
	return nil
}

// GetByToken retrieves a refresh token by its opaque value, nil when absent
func (s *TokenStore) GetByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.tokens[token]
	if !ok {
		return nil, nil
	}
	return &stored, nil
}

// Delete removes a refresh token
func (s *TokenStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, token)
	return nil
}
