package repositories

import (
	"context"

	"placementhub/internal/app/models"
)

// The engine logic never talks to a database directly; every entity type is
// accessed through one of the interfaces below so that the in-memory and
// postgres implementations stay interchangeable.
//
// Read methods return (nil, nil) when the entity does not exist; services
// translate that into the application error taxonomy. Write methods return
// apperrors sentinels for constraint violations (duplicate application,
// duplicate booking, slot capacity).

// UserRepository handles storage of user accounts
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByIDs resolves a set of user ids in one round trip. Unknown ids
	// are simply absent from the result.
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*models.User, error)
}

// TokenRepository handles storage of refresh tokens
type TokenRepository interface {
	Save(ctx context.Context, token *models.RefreshToken) error
	GetByToken(ctx context.Context, token string) (*models.RefreshToken, error)
	Delete(ctx context.Context, token string) error
}

// ProfileRepository handles storage of student eligibility profiles.
// There is at most one profile per user id; Upsert creates or replaces.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *models.StudentProfile) error
	GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error)
	GetAll(ctx context.Context) ([]*models.StudentProfile, error)
}

// DriveRepository handles storage of placement drives
type DriveRepository interface {
	Create(ctx context.Context, drive *models.Drive) error
	GetByID(ctx context.Context, id int64) (*models.Drive, error)
	GetAll(ctx context.Context) ([]*models.Drive, error)
	GetActive(ctx context.Context) ([]*models.Drive, error)
	// UpdateStatus is a reserved transition; no endpoint exposes it yet.
	UpdateStatus(ctx context.Context, id int64, status models.DriveStatus) error
}

// ApplicationRepository handles storage of drive applications
type ApplicationRepository interface {
	// Create fails with apperrors.ErrAlreadyApplied when an application for
	// the same (drive, student) pair exists.
	Create(ctx context.Context, application *models.Application) error
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Application, error)
	GetByDriveAndStudent(ctx context.Context, driveID, studentID int64) (*models.Application, error)
	GetAll(ctx context.Context) ([]*models.Application, error)
	// UpdateStatus advances the administrative state machine; it is not
	// reachable from any student-facing endpoint.
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error
}

// MentorshipRepository handles storage of mentorship slots and bookings
type MentorshipRepository interface {
	CreateSlot(ctx context.Context, slot *models.MentorshipSlot) error
	GetSlotByID(ctx context.Context, id int64) (*models.MentorshipSlot, error)
	GetAvailableSlots(ctx context.Context) ([]*models.MentorshipSlot, error)
	GetSlotsByAlumni(ctx context.Context, alumniUserID int64) ([]*models.MentorshipSlot, error)
	GetBookingsBySlot(ctx context.Context, slotID int64) ([]*models.MentorshipBooking, error)
	// Book atomically checks capacity, creates a CONFIRMED booking,
	// increments the slot's booking count and flips the slot to FULL when
	// capacity is reached. The check and the write are serialized per slot;
	// a failure leaves the slot untouched. Returns apperrors.ErrSlotNotFound,
	// apperrors.ErrSlotNotAvailable or apperrors.ErrAlreadyBooked on failure.
	Book(ctx context.Context, slotID, studentID int64) (*models.MentorshipBooking, error)
}

// JobRepository handles storage of alumni job referrals
type JobRepository interface {
	Create(ctx context.Context, job *models.AlumniJob) error
	GetByID(ctx context.Context, id int64) (*models.AlumniJob, error)
	GetActive(ctx context.Context) ([]*models.AlumniJob, error)
	GetByAlumni(ctx context.Context, alumniUserID int64) ([]*models.AlumniJob, error)
	UpdateStatus(ctx context.Context, id int64, status models.JobStatus) error
}

// FAQRepository handles the static FAQ corpus
type FAQRepository interface {
	GetAll(ctx context.Context) ([]*models.FAQ, error)
	// Seed loads the corpus once at startup; existing entries are kept.
	Seed(ctx context.Context, faqs []*models.FAQ) error
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        UserRepository
	TokenRepository       TokenRepository
	ProfileRepository     ProfileRepository
	DriveRepository       DriveRepository
	ApplicationRepository ApplicationRepository
	MentorshipRepository  MentorshipRepository
	JobRepository         JobRepository
	FAQRepository         FAQRepository
}
