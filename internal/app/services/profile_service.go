package services

import (
	"context"

	"github.com/rs/zerolog"

	"placementhub/internal/app/models"
	"placementhub/internal/app/models/dto"
	"placementhub/internal/app/repositories"
)

// ProfileService manages student profiles
type ProfileService interface {
	GetProfile(ctx context.Context, userID int64) (*models.StudentProfile, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.StudentProfile, error)
}

type profileService struct {
	profileRepo repositories.ProfileRepository
	logger      zerolog.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repositories.ProfileRepository, logger zerolog.Logger) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger.With().Str("service", "profile").Logger(),
	}
}

// GetProfile returns the student's profile, creating an empty one on first read.
func (s *profileService) GetProfile(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	profile = &models.StudentProfile{UserID: userID, Skills: []string{}}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	s.logger.Debug().Int64("userId", userID).Msg("Created empty profile on first read")
	return profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.StudentProfile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Branch != "" {
		profile.Branch = req.Branch
	}
	if req.CGPA != nil {
		profile.CGPA = *req.CGPA
	}
	if req.CurrentBacklogs != nil {
		profile.CurrentBacklogs = *req.CurrentBacklogs
	}
	if req.Skills != nil {
		profile.Skills = req.Skills
	}
	if req.Experience != "" {
		profile.Experience = req.Experience
	}
	if req.Projects != "" {
		profile.Projects = req.Projects
	}
	if req.Education != nil {
		profile.Education = req.Education
	}
	if req.PersonalInfo != nil {
		profile.PersonalInfo = *req.PersonalInfo
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
