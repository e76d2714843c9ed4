package dto

import (
	"time"

	"placementhub/internal/app/models"
)

// CreateJobRequest represents the payload for posting a referral job
type CreateJobRequest struct {
	CompanyName string     `json:"companyName" binding:"required" example:"Globex"`
	JobTitle    string     `json:"jobTitle" binding:"required" example:"SRE"`
	Description string     `json:"description" binding:"omitempty"`
	Location    string     `json:"location" binding:"omitempty" example:"Remote"`
	CTC         string     `json:"ctc" binding:"omitempty" example:"18 LPA"`
	ApplyLink   string     `json:"applyLink" binding:"omitempty,url" example:"https://globex.example/careers/42"`
	ExpiryDate  *time.Time `json:"expiryDate" binding:"omitempty"`
}

// UpdateJobStatusRequest represents the payload for closing or reopening a job
type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE CLOSED" example:"CLOSED"`
}

// JobResponse represents a referral job in API responses
type JobResponse struct {
	ID          int64      `json:"id" example:"7"`
	CompanyName string     `json:"companyName" example:"Globex"`
	JobTitle    string     `json:"jobTitle" example:"SRE"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty" example:"Remote"`
	CTC         string     `json:"ctc,omitempty" example:"18 LPA"`
	ApplyLink   string     `json:"applyLink,omitempty"`
	PostedBy    string     `json:"postedBy,omitempty" example:"Rahul Verma"`
	ExpiryDate  *time.Time `json:"expiryDate,omitempty"`
	Status      string     `json:"status" example:"ACTIVE"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ToJobResponse maps a job model to its response representation
func ToJobResponse(j *models.AlumniJob) JobResponse {
	return JobResponse{
		ID:          j.ID,
		CompanyName: j.CompanyName,
		JobTitle:    j.JobTitle,
		Description: j.Description,
		Location:    j.Location,
		CTC:         j.CTC,
		ApplyLink:   j.ApplyLink,
		ExpiryDate:  j.ExpiryDate,
		Status:      string(j.Status),
		CreatedAt:   j.CreatedAt,
	}
}
