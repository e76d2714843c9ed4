package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"placementhub/internal/app/models"
)

// ProfileRepository handles database operations for student profiles
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

// Upsert creates or replaces the profile for its user id
func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.StudentProfile) error {
	query := `
		INSERT INTO student_profiles
			(user_id, branch, cgpa, current_backlogs, skills, experience, projects, education, personal_info)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			branch = EXCLUDED.branch,
			cgpa = EXCLUDED.cgpa,
			current_backlogs = EXCLUDED.current_backlogs,
			skills = EXCLUDED.skills,
			experience = EXCLUDED.experience,
			projects = EXCLUDED.projects,
			education = EXCLUDED.education,
			personal_info = EXCLUDED.personal_info
	`

	_, err := r.db.Exec(ctx, query,
		profile.UserID,
		profile.Branch,
		profile.CGPA,
		profile.CurrentBacklogs,
		profile.Skills,
		profile.Experience,
		profile.Projects,
		profile.Education,
		profile.PersonalInfo,
	)
	if err != nil {
		return fmt.Errorf("error upserting student profile: %w", err)
	}

	return nil
}

// GetByUserID retrieves the profile for a user
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	query := `
		SELECT user_id, branch, cgpa, current_backlogs, skills, experience, projects, education, personal_info
		FROM student_profiles
		WHERE user_id = $1
	`

	profile, err := scanProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}

	return profile, nil
}

// GetAll retrieves every stored profile
func (r *ProfileRepository) GetAll(ctx context.Context) ([]*models.StudentProfile, error) {
	query := `
		SELECT user_id, branch, cgpa, current_backlogs, skills, experience, projects, education, personal_info
		FROM student_profiles
		ORDER BY user_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.StudentProfile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

func scanProfile(row pgx.Row) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	err := row.Scan(
		&profile.UserID,
		&profile.Branch,
		&profile.CGPA,
		&profile.CurrentBacklogs,
		&profile.Skills,
		&profile.Experience,
		&profile.Projects,
		&profile.Education,
		&profile.PersonalInfo,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
