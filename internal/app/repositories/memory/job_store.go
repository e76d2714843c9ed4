package memory

import (
	"context"
	"sync"
	"time"

	"placementhub/internal/app/models"
	"placementhub/internal/pkg/apperrors"
)

// JobStore is an in-memory JobRepository
type JobStore struct {
	mu     sync.RWMutex
	jobs   map[int64]models.AlumniJob
	order  []int64
	nextID int64
}

// NewJobStore creates an empty job store
func NewJobStore() *JobStore {
	return &JobStore{jobs: make(map[int64]models.AlumniJob), nextID: 1}
}

// Create stores a new job referral and assigns its id
func (s *JobStore) Create(ctx context.Context, job *models.AlumniJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job.ID = s.nextID
	s.nextID++
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	s.jobs[job.ID] = *job
	s.order = append(s.order, job.ID)
	return nil
}

// GetByID retrieves a job by id, nil when absent
func (s *JobStore) GetByID(ctx context.Context, id int64) (*models.AlumniJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, nil
	}
	return &job, nil
}

// GetActive retrieves jobs with ACTIVE status in creation order
func (s *JobStore) GetActive(ctx context.Context) ([]*models.AlumniJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var jobs []*models.AlumniJob
	for _, id := range s.order {
		job := s.jobs[id]
		if job.Status == models.JobStatusActive {
			jobs = append(jobs, &job)
		}
	}
	return jobs, nil
}

// GetByAlumni retrieves an alumnus's jobs regardless of status
func (s *JobStore) GetByAlumni(ctx context.Context, alumniUserID int64) ([]*models.AlumniJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var jobs []*models.AlumniJob
	for _, id := range s.order {
		job := s.jobs[id]
		if job.AlumniUserID == alumniUserID {
			jobs = append(jobs, &job)
		}
	}
	return jobs, nil
}

// UpdateStatus sets a job's status
func (s *JobStore) UpdateStatus(ctx context.Context, id int64, status models.JobStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return apperrors.ErrJobNotFound
	}
	job.Status = status
	s.jobs[id] = job
	return nil
}
