package dto

import "placementhub/internal/app/models"

// UpdateProfileRequest represents the payload for creating or updating a student profile
type UpdateProfileRequest struct {
	Branch          string               `json:"branch" binding:"omitempty" example:"CS"`
	CGPA            *float64             `json:"cgpa" binding:"omitempty,gte=0,lte=10" example:"8.2"`
	CurrentBacklogs *int                 `json:"currentBacklogs" binding:"omitempty,gte=0" example:"0"`
	Skills          []string             `json:"skills" binding:"omitempty" example:"go,sql"`
	Experience      string               `json:"experience" binding:"omitempty"`
	Projects        string               `json:"projects" binding:"omitempty"`
	Education       []models.Education   `json:"education" binding:"omitempty"`
	PersonalInfo    *models.PersonalInfo `json:"personalInfo" binding:"omitempty"`
}

// ProfileResponse represents a student profile in API responses
type ProfileResponse struct {
	UserID          int64               `json:"userId" example:"42"`
	Branch          string              `json:"branch" example:"CS"`
	CGPA            float64             `json:"cgpa" example:"8.2"`
	CurrentBacklogs int                 `json:"currentBacklogs" example:"0"`
	Skills          []string            `json:"skills"`
	Experience      string              `json:"experience,omitempty"`
	Projects        string              `json:"projects,omitempty"`
	Education       []models.Education  `json:"education,omitempty"`
	PersonalInfo    models.PersonalInfo `json:"personalInfo"`
}

// ToProfileResponse maps a profile model to its response representation
func ToProfileResponse(p *models.StudentProfile) *ProfileResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return &ProfileResponse{
		UserID:          p.UserID,
		Branch:          p.Branch,
		CGPA:            p.CGPA,
		CurrentBacklogs: p.CurrentBacklogs,
		Skills:          skills,
		Experience:      p.Experience,
		Projects:        p.Projects,
		Education:       p.Education,
		PersonalInfo:    p.PersonalInfo,
	}
}
