package memory

import (
	"context"
	"sync"
	"time"

	"placementhub/internal/app/models"
	"placementhub/internal/pkg/apperrors"
)

type pairKey struct {
	driveID   int64
	studentID int64
}

// ApplicationStore is an in-memory ApplicationRepository
type ApplicationStore struct {
	mu           sync.RWMutex
	applications map[int64]models.Application
	byPair       map[pairKey]int64
	order        []int64
	nextID       int64
}

// NewApplicationStore creates an empty application store
func NewApplicationStore() *ApplicationStore {
	return &ApplicationStore{
		applications: make(map[int64]models.Application),
		byPair:       make(map[pairKey]int64),
		nextID:       1,
	}
}

// Create stores a new application. The (drive, student) pair is unique;
// duplicates fail with ErrAlreadyApplied and leave the store untouched.
func (s *ApplicationStore) Create(ctx context.Context, application *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey{driveID: application.DriveID, studentID: application.StudentID}
	if _, exists := s.byPair[key]; exists {
		return apperrors.ErrAlreadyApplied
	}

	application.ID = s.nextID
	s.nextID++
	now := time.Now()
	if application.AppliedAt.IsZero() {
		application.AppliedAt = now
	}
	if application.UpdatedAt.IsZero() {
		application.UpdatedAt = now
	}
	s.applications[application.ID] = *application
	s.byPair[key] = application.ID
	s.order = append(s.order, application.ID)
	return nil
}

// GetByStudent retrieves a student's applications in creation order
func (s *ApplicationStore) GetByStudent(ctx context.Context, studentID int64) ([]*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var applications []*models.Application
	for _, id := range s.order {
		application := s.applications[id]
		if application.StudentID == studentID {
			applications = append(applications, &application)
		}
	}
	return applications, nil
}

// GetByDriveAndStudent retrieves the application for a pair, nil when absent
func (s *ApplicationStore) GetByDriveAndStudent(ctx context.Context, driveID, studentID int64) (*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byPair[pairKey{driveID: driveID, studentID: studentID}]
	if !ok {
		return nil, nil
	}
	application := s.applications[id]
	return &application, nil
}

// GetAll retrieves every application in creation order
func (s *ApplicationStore) GetAll(ctx context.Context) ([]*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	applications := make([]*models.Application, 0, len(s.order))
	for _, id := range s.order {
		application := s.applications[id]
		applications = append(applications, &application)
	}
	return applications, nil
}

// UpdateStatus advances an application's status
func (s *ApplicationStore) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	application, ok := s.applications[id]
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	application.Status = status
	application.UpdatedAt = time.Now()
	s.applications[id] = application
	return nil
}
