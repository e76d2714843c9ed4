// Package memory provides in-process implementations of the repository
// interfaces. They back the "memory" database driver and the test suite.
// Every store guards its maps with its own mutex; the mentorship store
// additionally serializes bookings per slot so that unrelated slots never
// contend.
package memory

import (
	"placementhub/internal/app/repositories"
)

// NewRepositories initializes the full in-memory repository set
func NewRepositories() *repositories.Repositories {
	return &repositories.Repositories{
		UserRepository:        NewUserStore(),
		TokenRepository:       NewTokenStore(),
		ProfileRepository:     NewProfileStore(),
		DriveRepository:       NewDriveStore(),
		ApplicationRepository: NewApplicationStore(),
		MentorshipRepository:  NewMentorshipStore(),
		JobRepository:         NewJobStore(),
		FAQRepository:         NewFAQStore(),
	}
}
