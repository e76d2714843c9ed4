package models

import "time"

// AlumniJob defines a job referral posted by an alumnus, based on the
// 'alumni_jobs' table. Only the posting alumnus may change its status.
type AlumniJob struct {
	ID           int64      `json:"id" db:"id"`
	AlumniUserID int64      `json:"alumniUserId" db:"alumni_user_id"`
	CompanyName  string     `json:"companyName" db:"company_name"`
	JobTitle     string     `json:"jobTitle" db:"job_title"`
	Description  string     `json:"description" db:"description"`
	Location     string     `json:"location" db:"location"`
	CTC          string     `json:"ctc" db:"ctc"`
	ApplyLink    string     `json:"applyLink" db:"apply_link"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty" db:"expiry_date"`
	Status       JobStatus  `json:"status" db:"status" example:"ACTIVE"`
}
