package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"placementhub/internal/app/models"
	"placementhub/internal/pkg/apperrors"
)

// JobRepository handles database operations for alumni job referrals
type JobRepository struct {
	db *pgxpool.Pool
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{
		db: db,
	}
}

const jobColumns = `id, alumni_user_id, company_name, job_title, description, location, ctc,
	apply_link, created_at, expiry_date, status`

// Create creates a new job referral
func (r *JobRepository) Create(ctx context.Context, job *models.AlumniJob) error {
	query := `
		INSERT INTO alumni_jobs
			(alumni_user_id, company_name, job_title, description, location, ctc, apply_link, expiry_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		job.AlumniUserID,
		job.CompanyName,
		job.JobTitle,
		job.Description,
		job.Location,
		job.CTC,
		job.ApplyLink,
		job.ExpiryDate,
		job.Status,
	).Scan(&job.ID, &job.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating job: %w", err)
	}

	return nil
}

// GetByID retrieves a job by ID
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.AlumniJob, error) {
	query := `SELECT ` + jobColumns + ` FROM alumni_jobs WHERE id = $1`

	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving job: %w", err)
	}

	return job, nil
}

// GetActive retrieves jobs with ACTIVE status in creation order
func (r *JobRepository) GetActive(ctx context.Context) ([]*models.AlumniJob, error) {
	query := `SELECT ` + jobColumns + ` FROM alumni_jobs WHERE status = 'ACTIVE' ORDER BY id`
	return r.queryJobs(ctx, query)
}

// GetByAlumni retrieves an alumnus's jobs regardless of status
func (r *JobRepository) GetByAlumni(ctx context.Context, alumniUserID int64) ([]*models.AlumniJob, error) {
	query := `SELECT ` + jobColumns + ` FROM alumni_jobs WHERE alumni_user_id = $1 ORDER BY id`
	return r.queryJobs(ctx, query, alumniUserID)
}

// UpdateStatus sets a job's status
func (r *JobRepository) UpdateStatus(ctx context.Context, id int64, status models.JobStatus) error {
	query := `UPDATE alumni_jobs SET status = $1 WHERE id = $2`

	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("error updating job status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}

	return nil
}

func (r *JobRepository) queryJobs(ctx context.Context, query string, args ...interface{}) ([]*models.AlumniJob, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*models.AlumniJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

func scanJob(row pgx.Row) (*models.AlumniJob, error) {
	var job models.AlumniJob
	err := row.Scan(
		&job.ID,
		&job.AlumniUserID,
		&job.CompanyName,
		&job.JobTitle,
		&job.Description,
		&job.Location,
		&job.CTC,
		&job.ApplyLink,
		&job.CreatedAt,
		&job.ExpiryDate,
		&job.Status,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}
