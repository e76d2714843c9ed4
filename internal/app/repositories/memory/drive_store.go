package memory

import (
	"context"
	"sync"
	"time"

	"placementhub/internal/app/models"
	"placementhub/internal/pkg/apperrors"
)

// DriveStore is an in-memory DriveRepository
type DriveStore struct {
	mu     sync.RWMutex
	drives map[int64]models.Drive
	order  []int64
	nextID int64
}

// NewDriveStore creates an empty drive store
func NewDriveStore() *DriveStore {
	return &DriveStore{drives: make(map[int64]models.Drive), nextID: 1}
}

// Create stores a new drive and assigns its id
func (s *DriveStore) Create(ctx context.Context, drive *models.Drive) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	drive.ID = s.nextID
	s.nextID++
	if drive.CreatedAt.IsZero() {
		drive.CreatedAt = time.Now()
	}
	s.drives[drive.ID] = *drive
	s.order = append(s.order, drive.ID)
	return nil
}

// GetByID retrieves a drive by id, nil when absent
func (s *DriveStore) GetByID(ctx context.Context, id int64) (*models.Drive, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	drive, ok := s.drives[id]
	if !ok {
		return nil, nil
	}
	return &drive, nil
}

// GetAll retrieves every drive in creation order
func (s *DriveStore) GetAll(ctx context.Context) ([]*models.Drive, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	drives := make([]*models.Drive, 0, len(s.order))
	for _, id := range s.order {
		drive := s.drives[id]
		drives = append(drives, &drive)
	}
	return drives, nil
}

// GetActive retrieves drives with ACTIVE status in creation order
func (s *DriveStore) GetActive(ctx context.Context) ([]*models.Drive, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var drives []*models.Drive
	for _, id := range s.order {
		drive := s.drives[id]
		if drive.Status == models.DriveStatusActive {
			drives = append(drives, &drive)
		}
	}
	return drives, nil
}

// UpdateStatus sets a drive's status
func (s *DriveStore) UpdateStatus(ctx context.Context, id int64, status models.DriveStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	drive, ok := s.drives[id]
	if !ok {
		return apperrors.ErrDriveNotFound
	}
	drive.Status = status
	s.drives[id] = drive
	return nil
}
