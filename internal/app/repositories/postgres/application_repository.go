package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"placementhub/internal/app/models"
	"placementhub/internal/pkg/apperrors"
	"placementhub/internal/pkg/dberrors"
)

// ApplicationRepository handles database operations for drive applications
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
	}
}

// Create creates a new application. The unique (drive_id, student_id)
// constraint enforces at most one application per pair.
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	query := `
		INSERT INTO applications (drive_id, student_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, applied_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		application.DriveID, application.StudentID, application.Status,
	).Scan(&application.ID, &application.AppliedAt, &application.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "applications_drive_id_student_id_key") {
			return apperrors.ErrAlreadyApplied
		}
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// GetByStudent retrieves a student's applications in creation order
func (r *ApplicationRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Application, error) {
	query := `
		SELECT id, drive_id, student_id, status, applied_at, updated_at
		FROM applications
		WHERE student_id = $1
		ORDER BY id
	`
	return r.queryApplications(ctx, query, studentID)
}

// GetByDriveAndStudent retrieves the application for a pair
func (r *ApplicationRepository) GetByDriveAndStudent(ctx context.Context, driveID, studentID int64) (*models.Application, error) {
	query := `
		SELECT id, drive_id, student_id, status, applied_at, updated_at
		FROM applications
		WHERE drive_id = $1 AND student_id = $2
	`

	var application models.Application
	err := r.db.QueryRow(ctx, query, driveID, studentID).Scan(
		&application.ID,
		&application.DriveID,
		&application.StudentID,
		&application.Status,
		&application.AppliedAt,
		&application.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return &application, nil
}

// GetAll retrieves every application in creation order
func (r *ApplicationRepository) GetAll(ctx context.Context) ([]*models.Application, error) {
	query := `
		SELECT id, drive_id, student_id, status, applied_at, updated_at
		FROM applications
		ORDER BY id
	`
	return r.queryApplications(ctx, query)
}

// UpdateStatus advances an application's status
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	query := `UPDATE applications SET status = $1, updated_at = NOW() WHERE id = $2`

	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

func (r *ApplicationRepository) queryApplications(ctx context.Context, query string, args ...interface{}) ([]*models.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving applications: %w", err)
	}
	defer rows.Close()

	var applications []*models.Application
	for rows.Next() {
		var application models.Application
		if err := rows.Scan(
			&application.ID,
			&application.DriveID,
			&application.StudentID,
			&application.Status,
			&application.AppliedAt,
			&application.UpdatedAt,
		); err != nil {
			return nil, err
		}
		applications = append(applications, &application)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}
