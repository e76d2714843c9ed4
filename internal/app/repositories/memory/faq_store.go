package memory

import (
	"context"
	"sync"

	"placementhub/internal/app/models"
)

// FAQStore is an in-memory FAQRepository
type FAQStore struct {
	mu   sync.RWMutex
	faqs []models.FAQ
}

// NewFAQStore creates an empty FAQ store
func NewFAQStore() *FAQStore {
	return &FAQStore{}
}

// GetAll retrieves the corpus in seed order
func (s *FAQStore) GetAll(ctx context.Context) ([]*models.FAQ, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	faqs := make([]*models.FAQ, 0, len(s.faqs))
	for i := range s.faqs {
		faq := s.faqs[i]
		faqs = append(faqs, &faq)
	}
	return faqs, nil
}

// Seed loads the corpus; it is a no-op when entries already exist
func (s *FAQStore) Seed(ctx context.Context, faqs []*models.FAQ) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.faqs) > 0 {
		return nil
	}
	for i, faq := range faqs {
		stored := *faq
		stored.ID = int64(i + 1)
		s.faqs = append(s.faqs, stored)
	}
	return nil
}
