package dto

import (
	"time"

	"placementhub/internal/app/models"
)

// CreateDriveRequest represents the payload for posting a placement drive
type CreateDriveRequest struct {
	CompanyName         string     `json:"companyName" binding:"required" example:"Acme Corp"`
	RoleTitle           string     `json:"roleTitle" binding:"required" example:"Backend Engineer"`
	Description         string     `json:"description" binding:"omitempty"`
	MinCGPA             *float64   `json:"minCgpa" binding:"required,gte=0,lte=10" example:"7.0"`
	MaxBacklogs         int        `json:"maxBacklogs" binding:"omitempty,gte=0" example:"0"`
	AllowedBranches     []string   `json:"allowedBranches" binding:"omitempty" example:"CS,IT"`
	Location            string     `json:"location" binding:"omitempty" example:"Bengaluru"`
	CTC                 string     `json:"ctc" binding:"omitempty" example:"12 LPA"`
	ApplicationDeadline *time.Time `json:"applicationDeadline" binding:"omitempty"`
}

// DriveResponse represents a placement drive in API responses
type DriveResponse struct {
	ID                  int64      `json:"id" example:"3"`
	CompanyName         string     `json:"companyName" example:"Acme Corp"`
	RoleTitle           string     `json:"roleTitle" example:"Backend Engineer"`
	Description         string     `json:"description,omitempty"`
	MinCGPA             float64    `json:"minCgpa" example:"7.0"`
	MaxBacklogs         int        `json:"maxBacklogs" example:"0"`
	AllowedBranches     []string   `json:"allowedBranches"`
	Location            string     `json:"location,omitempty" example:"Bengaluru"`
	CTC                 string     `json:"ctc,omitempty" example:"12 LPA"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	Status              string     `json:"status" example:"ACTIVE"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// EligibleDrive is a drive annotated with the caller's application state
type EligibleDrive struct {
	DriveResponse
	HasApplied        bool   `json:"hasApplied" example:"false"`
	ApplicationStatus string `json:"applicationStatus,omitempty" example:"APPLIED"`
}

// EligibleDrivesResponse lists the drives the calling student qualifies for
type EligibleDrivesResponse struct {
	Drives  []EligibleDrive `json:"drives"`
	Message string          `json:"message,omitempty" example:"No eligible drives found. Update your profile to improve matches."`
}

// EligibleStudent summarizes a student qualifying for a drive
type EligibleStudent struct {
	Name            string  `json:"name" example:"Priya Sharma"`
	Email           string  `json:"email" example:"priya@university.edu"`
	Branch          string  `json:"branch" example:"CS"`
	CGPA            float64 `json:"cgpa" example:"8.2"`
	CurrentBacklogs int     `json:"currentBacklogs" example:"0"`
}

// EligibleStudentsResponse lists the students qualifying for a drive
type EligibleStudentsResponse struct {
	DriveID          int64             `json:"driveId" example:"3"`
	CompanyName      string            `json:"companyName" example:"Acme Corp"`
	EligibleCount    int               `json:"eligibleCount" example:"12"`
	EligibleStudents []EligibleStudent `json:"eligibleStudents"`
}

// ToDriveResponse maps a drive model to its response representation
func ToDriveResponse(d *models.Drive) DriveResponse {
	branches := d.AllowedBranches
	if branches == nil {
		branches = []string{}
	}
	return DriveResponse{
		ID:                  d.ID,
		CompanyName:         d.CompanyName,
		RoleTitle:           d.RoleTitle,
		Description:         d.Description,
		MinCGPA:             d.MinCGPA,
		MaxBacklogs:         d.MaxBacklogs,
		AllowedBranches:     branches,
		Location:            d.Location,
		CTC:                 d.CTC,
		ApplicationDeadline: d.ApplicationDeadline,
		Status:              string(d.Status),
		CreatedAt:           d.CreatedAt,
	}
}
