package services

import (
	"github.com/rs/zerolog"

	"placementhub/internal/app/repositories"
	"placementhub/internal/notify"
	"placementhub/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService        AuthService
	ProfileService     ProfileService
	DriveService       DriveService
	ApplicationService ApplicationService
	MentorshipService  MentorshipService
	ReferralService    ReferralService
	BotService         BotService
	AnalyticsService   AnalyticsService
}

// NewServices wires every service onto the repository container
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, notifier notify.Notifier, logger zerolog.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(
			repos.UserRepository, repos.TokenRepository, jwtService, logger),
		ProfileService: NewProfileService(repos.ProfileRepository, logger),
		DriveService: NewDriveService(
			repos.DriveRepository, repos.ProfileRepository,
			repos.ApplicationRepository, repos.UserRepository, logger),
		ApplicationService: NewApplicationService(
			repos.ApplicationRepository, repos.DriveRepository,
			repos.UserRepository, notifier, logger),
		MentorshipService: NewMentorshipService(
			repos.MentorshipRepository, repos.UserRepository, notifier, logger),
		ReferralService: NewReferralService(
			repos.JobRepository, repos.UserRepository, logger),
		BotService:       NewBotService(repos.FAQRepository, logger),
		AnalyticsService: NewAnalyticsService(
			repos.ProfileRepository, repos.DriveRepository,
			repos.ApplicationRepository, logger),
	}
}
