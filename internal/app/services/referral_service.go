package services

import (
	"context"

	"github.com/rs/zerolog"

	"placementhub/internal/app/models"
	"placementhub/internal/app/models/dto"
	"placementhub/internal/app/repositories"
	"placementhub/internal/pkg/apperrors"
)

// ReferralService manages the alumni referral job board
type ReferralService interface {
	PostJob(ctx context.Context, alumniUserID int64, req *dto.CreateJobRequest) (*models.AlumniJob, error)
	GetActiveJobs(ctx context.Context) ([]dto.JobResponse, error)
	GetMyJobs(ctx context.Context, alumniUserID int64) ([]dto.JobResponse, error)
	SetJobStatus(ctx context.Context, alumniUserID, jobID int64, status models.JobStatus) (*models.AlumniJob, error)
}

type referralService struct {
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
	logger   zerolog.Logger
}

// NewReferralService creates a new referral service
func NewReferralService(
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	logger zerolog.Logger,
) ReferralService {
	return &referralService{
		jobRepo:  jobRepo,
		userRepo: userRepo,
		logger:   logger.With().Str("service", "referral").Logger(),
	}
}

func (s *referralService) PostJob(ctx context.Context, alumniUserID int64, req *dto.CreateJobRequest) (*models.AlumniJob, error) {
	if req.CompanyName == "" {
		return nil, apperrors.NewValidationError("companyName is required")
	}
	if req.JobTitle == "" {
		return nil, apperrors.NewValidationError("jobTitle is required")
	}

	job := &models.AlumniJob{
		AlumniUserID: alumniUserID,
		CompanyName:  req.CompanyName,
		JobTitle:     req.JobTitle,
		Description:  req.Description,
		Location:     req.Location,
		CTC:          req.CTC,
		ApplyLink:    req.ApplyLink,
		ExpiryDate:   req.ExpiryDate,
		Status:       models.JobStatusActive,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("jobId", job.ID).Str("company", job.CompanyName).Msg("Referral job posted")
	return job, nil
}

func (s *referralService) GetActiveJobs(ctx context.Context) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(jobs))
	for _, job := range jobs {
		ids = append(ids, job.AlumniUserID)
	}
	posters, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		resp := dto.ToJobResponse(job)
		if user, ok := posters[job.AlumniUserID]; ok {
			resp.PostedBy = user.Name
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *referralService) GetMyJobs(ctx context.Context, alumniUserID int64) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.GetByAlumni(ctx, alumniUserID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, dto.ToJobResponse(job))
	}
	return responses, nil
}

func (s *referralService) SetJobStatus(ctx context.Context, alumniUserID, jobID int64, status models.JobStatus) (*models.AlumniJob, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperrors.ErrJobNotFound
	}
	if job.AlumniUserID != alumniUserID {
		return nil, apperrors.ErrNotJobOwner
	}

	if err := s.jobRepo.UpdateStatus(ctx, jobID, status); err != nil {
		return nil, err
	}
	job.Status = status
	return job, nil
}
