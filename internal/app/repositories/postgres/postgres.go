// Package postgres implements the repository interfaces on top of a pgx
// connection pool. Not-found reads surface as (nil, nil); uniqueness and
// capacity violations are translated to apperrors sentinels so that
// services never see driver-level errors.
package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"placementhub/internal/app/repositories"
)

// NewRepositories initializes the full postgres repository set
func NewRepositories(db *pgxpool.Pool) *repositories.Repositories {
	return &repositories.Repositories{
		UserRepository:        NewUserRepository(db),
		TokenRepository:       NewTokenRepository(db),
		ProfileRepository:     NewProfileRepository(db),
		DriveRepository:       NewDriveRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
		MentorshipRepository:  NewMentorshipRepository(db),
		JobRepository:         NewJobRepository(db),
		FAQRepository:         NewFAQRepository(db),
	}
}
