package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"placementhub/internal/app/models"
	"placementhub/internal/app/models/dto"
	"placementhub/internal/app/repositories"
	"placementhub/internal/pkg/helpers"
)

// AnalyticsService aggregates placement statistics
type AnalyticsService interface {
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
	GetSkillGap(ctx context.Context, studentID int64) (*dto.SkillGapResponse, error)
}

type analyticsService struct {
	profileRepo     repositories.ProfileRepository
	driveRepo       repositories.DriveRepository
	applicationRepo repositories.ApplicationRepository
	logger          zerolog.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	profileRepo repositories.ProfileRepository,
	driveRepo repositories.DriveRepository,
	applicationRepo repositories.ApplicationRepository,
	logger zerolog.Logger,
) AnalyticsService {
	return &analyticsService{
		profileRepo:     profileRepo,
		driveRepo:       driveRepo,
		applicationRepo: applicationRepo,
		logger:          logger.With().Str("service", "analytics").Logger(),
	}
}

func (s *analyticsService) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	profiles, err := s.profileRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	drives, err := s.driveRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	applications, err := s.applicationRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	selectedCount := 0
	placedStudents := make(map[int64]bool)
	for _, app := range applications {
		if app.Status == models.ApplicationStatusSelected {
			selectedCount++
			placedStudents[app.StudentID] = true
		}
	}

	placementRate := 0.0
	if len(profiles) > 0 {
		placementRate = helpers.RoundTo(float64(selectedCount)/float64(len(profiles))*100, 2)
	}

	branchStats := make(map[string]dto.BranchStat)
	for _, profile := range profiles {
		branch := profile.Branch
		if branch == "" {
			branch = "Unknown"
		}
		stat := branchStats[branch]
		stat.Total++
		if placedStudents[profile.UserID] {
			stat.Placed++
		}
		branchStats[branch] = stat
	}

	return &dto.StatsResponse{
		TotalStudents:     len(profiles),
		TotalDrives:       len(drives),
		TotalApplications: len(applications),
		SelectedCount:     selectedCount,
		PlacementRate:     placementRate,
		BranchStats:       branchStats,
	}, nil
}

func (s *analyticsService) GetSkillGap(ctx context.Context, studentID int64) (*dto.SkillGapResponse, error) {
	ownProfile, err := s.profileRepo.GetByUserID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if ownProfile == nil {
		return &dto.SkillGapResponse{Recommendations: []dto.SkillRecommendation{}}, nil
	}

	ownSkills := make(map[string]bool, len(ownProfile.Skills))
	for _, skill := range ownProfile.Skills {
		ownSkills[strings.ToLower(skill)] = true
	}

	applications, err := s.applicationRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	placedStudents := make(map[int64]bool)
	for _, app := range applications {
		if app.Status == models.ApplicationStatusSelected {
			placedStudents[app.StudentID] = true
		}
	}

	profiles, err := s.profileRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	placedCount := 0
	frequency := make(map[string]int)
	order := []string{}
	for _, profile := range profiles {
		if !placedStudents[profile.UserID] {
			continue
		}
		placedCount++
		seen := make(map[string]bool, len(profile.Skills))
		for _, skill := range profile.Skills {
			lowered := strings.ToLower(skill)
			if seen[lowered] {
				continue
			}
			seen[lowered] = true
			if _, ok := frequency[lowered]; !ok {
				order = append(order, lowered)
			}
			frequency[lowered]++
		}
	}

	candidates := make([]string, 0, len(order))
	for _, skill := range order {
		if !ownSkills[skill] {
			candidates = append(candidates, skill)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return frequency[candidates[i]] > frequency[candidates[j]]
	})
	if len(candidates) > 5 {
		candidates = candidates[:5]
	}

	recommendations := make([]dto.SkillRecommendation, 0, len(candidates))
	for _, skill := range candidates {
		percentage := 0.0
		if placedCount > 0 {
			percentage = helpers.RoundTo(float64(frequency[skill])/float64(placedCount)*100, 1)
		}
		recommendations = append(recommendations, dto.SkillRecommendation{
			Skill:      skill,
			Frequency:  frequency[skill],
			Percentage: percentage,
			Recommendation: fmt.Sprintf(
				"%s appears in %.1f%% of placed student profiles. Consider adding it to stay competitive.",
				skill, percentage,
			),
		})
	}

	return &dto.SkillGapResponse{Recommendations: recommendations}, nil
}
