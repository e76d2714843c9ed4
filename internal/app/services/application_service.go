package services

import (
	"context"

	"github.com/rs/zerolog"

	"placementhub/internal/app/models"
	"placementhub/internal/app/models/dto"
	"placementhub/internal/app/repositories"
	"placementhub/internal/notify"
	"placementhub/internal/pkg/apperrors"
)

// ApplicationService manages drive applications
type ApplicationService interface {
	Apply(ctx context.Context, studentID int64, req *dto.ApplyRequest) (*models.Application, error)
	GetMyApplications(ctx context.Context, studentID int64) ([]dto.ApplicationResponse, error)
}

type applicationService struct {
	applicationRepo repositories.ApplicationRepository
	driveRepo       repositories.DriveRepository
	userRepo        repositories.UserRepository
	notifier        notify.Notifier
	logger          zerolog.Logger
}

// NewApplicationService creates a new application service
func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	driveRepo repositories.DriveRepository,
	userRepo repositories.UserRepository,
	notifier notify.Notifier,
	logger zerolog.Logger,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		driveRepo:       driveRepo,
		userRepo:        userRepo,
		notifier:        notifier,
		logger:          logger.With().Str("service", "application").Logger(),
	}
}

func (s *applicationService) Apply(ctx context.Context, studentID int64, req *dto.ApplyRequest) (*models.Application, error) {
	drive, err := s.driveRepo.GetByID(ctx, req.DriveID)
	if err != nil {
		return nil, err
	}
	if drive == nil {
		return nil, apperrors.ErrDriveNotFound
	}

	// The unique constraint still backs this check under concurrency.
	existing, err := s.applicationRepo.GetByDriveAndStudent(ctx, req.DriveID, studentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyApplied
	}

	application := &models.Application{
		DriveID:   req.DriveID,
		StudentID: studentID,
		Status:    models.ApplicationStatusApplied,
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("driveId", req.DriveID).
		Int64("studentId", studentID).
		Msg("Application submitted")

	if student, err := s.userRepo.GetByID(ctx, studentID); err == nil && student != nil {
		if err := s.notifier.NotifyApplicationReceived(student.Email, student.Name, drive.CompanyName); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to notify applicant")
		}
	}
	return application, nil
}

func (s *applicationService) GetMyApplications(ctx context.Context, studentID int64) ([]dto.ApplicationResponse, error) {
	applications, err := s.applicationRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ApplicationResponse, 0, len(applications))
	for _, app := range applications {
		resp := dto.ApplicationResponse{
			ID:        app.ID,
			DriveID:   app.DriveID,
			Status:    string(app.Status),
			AppliedAt: app.AppliedAt,
		}
		// A removed drive leaves the summary null rather than failing the listing.
		drive, err := s.driveRepo.GetByID(ctx, app.DriveID)
		if err != nil {
			return nil, err
		}
		if drive != nil {
			resp.Drive = &dto.ApplicationDrive{
				CompanyName: drive.CompanyName,
				RoleTitle:   drive.RoleTitle,
				Location:    drive.Location,
				CTC:         drive.CTC,
			}
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
