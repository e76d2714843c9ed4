package services

import (
	"context"

	"github.com/rs/zerolog"

	"placementhub/internal/app/algorithms"
	"placementhub/internal/app/models"
	"placementhub/internal/app/models/dto"
	"placementhub/internal/app/repositories"
	"placementhub/internal/pkg/apperrors"
)

// Guidance shown to students whose profile cannot be matched against drives.
const incompleteProfileMessage = "No eligible drives found. Complete your profile (branch, CGPA, backlogs) to see matching drives."

// DriveService manages placement drives and eligibility views
type DriveService interface {
	CreateDrive(ctx context.Context, tpoUserID int64, req *dto.CreateDriveRequest) (*models.Drive, error)
	GetAllDrives(ctx context.Context) ([]*models.Drive, error)
	GetEligibleDrives(ctx context.Context, studentID int64) (*dto.EligibleDrivesResponse, error)
	GetEligibleStudents(ctx context.Context, driveID int64) (*dto.EligibleStudentsResponse, error)
}

type driveService struct {
	driveRepo       repositories.DriveRepository
	profileRepo     repositories.ProfileRepository
	applicationRepo repositories.ApplicationRepository
	userRepo        repositories.UserRepository
	logger          zerolog.Logger
}

// NewDriveService creates a new drive service
func NewDriveService(
	driveRepo repositories.DriveRepository,
	profileRepo repositories.ProfileRepository,
	applicationRepo repositories.ApplicationRepository,
	userRepo repositories.UserRepository,
	logger zerolog.Logger,
) DriveService {
	return &driveService{
		driveRepo:       driveRepo,
		profileRepo:     profileRepo,
		applicationRepo: applicationRepo,
		userRepo:        userRepo,
		logger:          logger.With().Str("service", "drive").Logger(),
	}
}

func (s *driveService) CreateDrive(ctx context.Context, tpoUserID int64, req *dto.CreateDriveRequest) (*models.Drive, error) {
	if req.CompanyName == "" {
		return nil, apperrors.NewValidationError("companyName is required")
	}
	if req.MinCGPA == nil {
		return nil, apperrors.NewValidationError("minCgpa is required")
	}
	if *req.MinCGPA < 0 || *req.MinCGPA > 10 {
		return nil, apperrors.NewValidationError("minCgpa must be between 0 and 10")
	}
	if req.MaxBacklogs < 0 {
		return nil, apperrors.NewValidationError("maxBacklogs must not be negative")
	}

	drive := &models.Drive{
		CompanyName:         req.CompanyName,
		RoleTitle:           req.RoleTitle,
		Description:         req.Description,
		MinCGPA:             *req.MinCGPA,
		MaxBacklogs:         req.MaxBacklogs,
		AllowedBranches:     req.AllowedBranches,
		Location:            req.Location,
		CTC:                 req.CTC,
		ApplicationDeadline: req.ApplicationDeadline,
		CreatedBy:           tpoUserID,
		Status:              models.DriveStatusActive,
	}

	if err := s.driveRepo.Create(ctx, drive); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("driveId", drive.ID).Str("company", drive.CompanyName).Msg("Drive created")
	return drive, nil
}

func (s *driveService) GetAllDrives(ctx context.Context) ([]*models.Drive, error) {
	return s.driveRepo.GetAll(ctx)
}

func (s *driveService) GetEligibleDrives(ctx context.Context, studentID int64) (*dto.EligibleDrivesResponse, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.Branch == "" {
		return &dto.EligibleDrivesResponse{
			Drives:  []dto.EligibleDrive{},
			Message: incompleteProfileMessage,
		}, nil
	}

	drives, err := s.driveRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	applications, err := s.applicationRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	appByDrive := make(map[int64]*models.Application, len(applications))
	for _, app := range applications {
		appByDrive[app.DriveID] = app
	}

	eligible := []dto.EligibleDrive{}
	for _, drive := range drives {
		if !algorithms.IsEligible(profile, drive) {
			continue
		}
		entry := dto.EligibleDrive{DriveResponse: dto.ToDriveResponse(drive)}
		if app, ok := appByDrive[drive.ID]; ok {
			entry.HasApplied = true
			entry.ApplicationStatus = string(app.Status)
		}
		eligible = append(eligible, entry)
	}

	resp := &dto.EligibleDrivesResponse{Drives: eligible}
	if len(eligible) == 0 {
		resp.Message = "No eligible drives found."
	}
	return resp, nil
}

func (s *driveService) GetEligibleStudents(ctx context.Context, driveID int64) (*dto.EligibleStudentsResponse, error) {
	drive, err := s.driveRepo.GetByID(ctx, driveID)
	if err != nil {
		return nil, err
	}
	if drive == nil {
		return nil, apperrors.ErrDriveNotFound
	}

	profiles, err := s.profileRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*models.StudentProfile, 0, len(profiles))
	ids := make([]int64, 0, len(profiles))
	for _, profile := range profiles {
		if algorithms.IsEligible(profile, drive) {
			matched = append(matched, profile)
			ids = append(ids, profile.UserID)
		}
	}

	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	students := make([]dto.EligibleStudent, 0, len(matched))
	for _, profile := range matched {
		entry := dto.EligibleStudent{
			Branch:          profile.Branch,
			CGPA:            profile.CGPA,
			CurrentBacklogs: profile.CurrentBacklogs,
		}
		if user, ok := users[profile.UserID]; ok {
			entry.Name = user.Name
			entry.Email = user.Email
		}
		students = append(students, entry)
	}

	return &dto.EligibleStudentsResponse{
		DriveID:          drive.ID,
		CompanyName:      drive.CompanyName,
		EligibleCount:    len(students),
		EligibleStudents: students,
	}, nil
}
