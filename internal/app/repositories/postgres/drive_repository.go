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

// DriveRepository handles database operations for placement drives
type DriveRepository struct {
	db *pgxpool.Pool
}

// NewDriveRepository creates a new drive repository
func NewDriveRepository(db *pgxpool.Pool) *DriveRepository {
	return &DriveRepository{
		db: db,
	}
}

const driveColumns = `id, company_name, role_title, description, min_cgpa, max_backlogs,
	allowed_branches, location, ctc, application_deadline, created_by, created_at, status`

// Create creates a new drive
func (r *DriveRepository) Create(ctx context.Context, drive *models.Drive) error {
	query := `
		INSERT INTO drives
			(company_name, role_title, description, min_cgpa, max_backlogs, allowed_branches,
			 location, ctc, application_deadline, created_by, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		drive.CompanyName,
		drive.RoleTitle,
		drive.Description,
		drive.MinCGPA,
		drive.MaxBacklogs,
		drive.AllowedBranches,
		drive.Location,
		drive.CTC,
		drive.ApplicationDeadline,
		drive.CreatedBy,
		drive.Status,
	).Scan(&drive.ID, &drive.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating drive: %w", err)
	}

	return nil
}

// GetByID retrieves a drive by ID
func (r *DriveRepository) GetByID(ctx context.Context, id int64) (*models.Drive, error) {
	query := `SELECT ` + driveColumns + ` FROM drives WHERE id = $1`

	drive, err := scanDrive(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving drive: %w", err)
	}

	return drive, nil
}

// GetAll retrieves all drives in creation order
func (r *DriveRepository) GetAll(ctx context.Context) ([]*models.Drive, error) {
	query := `SELECT ` + driveColumns + ` FROM drives ORDER BY id`
	return r.queryDrives(ctx, query)
}

// GetActive retrieves drives with ACTIVE status in creation order
func (r *DriveRepository) GetActive(ctx context.Context) ([]*models.Drive, error) {
	query := `SELECT ` + driveColumns + ` FROM drives WHERE status = 'ACTIVE' ORDER BY id`
	return r.queryDrives(ctx, query)
}

// UpdateStatus sets a drive's status
func (r *DriveRepository) UpdateStatus(ctx context.Context, id int64, status models.DriveStatus) error {
	query := `UPDATE drives SET status = $1 WHERE id = $2`

	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("error updating drive status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDriveNotFound
	}

	return nil
}

func (r *DriveRepository) queryDrives(ctx context.Context, query string, args ...interface{}) ([]*models.Drive, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving drives: %w", err)
	}
	defer rows.Close()

	var drives []*models.Drive
	for rows.Next() {
		drive, err := scanDrive(rows)
		if err != nil {
			return nil, err
		}
		drives = append(drives, drive)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return drives, nil
}

func scanDrive(row pgx.Row) (*models.Drive, error) {
	var drive models.Drive
	err := row.Scan(
		&drive.ID,
		&drive.CompanyName,
		&drive.RoleTitle,
		&drive.Description,
		&drive.MinCGPA,
		&drive.MaxBacklogs,
		&drive.AllowedBranches,
		&drive.Location,
		&drive.CTC,
		&drive.ApplicationDeadline,
		&drive.CreatedBy,
		&drive.CreatedAt,
		&drive.Status,
	)
	if err != nil {
		return nil, err
	}
	return &drive, nil
}
