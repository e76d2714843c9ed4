package models

import "time"

// Drive defines a company placement drive based on the 'drives' table.
// A drive is immutable after creation except for its status.
type Drive struct {
	ID                  int64       `json:"id" db:"id"`
	CompanyName         string      `json:"companyName" db:"company_name" example:"Initech"`
	RoleTitle           string      `json:"roleTitle" db:"role_title" example:"Software Engineer"`
	Description         string      `json:"description" db:"description"`
	MinCGPA             float64     `json:"minCgpa" db:"min_cgpa" example:"7.0"`         // In [0,10]
	MaxBacklogs         int         `json:"maxBacklogs" db:"max_backlogs" example:"0"`   // >= 0
	AllowedBranches     []string    `json:"allowedBranches" db:"allowed_branches"`       // Empty means all branches
	Location            string      `json:"location" db:"location"`
	CTC                 string      `json:"ctc" db:"ctc" example:"12 LPA"`
	ApplicationDeadline *time.Time  `json:"applicationDeadline,omitempty" db:"application_deadline"`
	CreatedBy           int64       `json:"createdBy" db:"created_by"` // TPO user id
	CreatedAt           time.Time   `json:"createdAt" db:"created_at"`
	Status              DriveStatus `json:"status" db:"status" example:"ACTIVE"`
}

// AllowsBranch reports whether the drive accepts the given branch.
// An empty allowed-branch list accepts every branch.
func (d *Drive) AllowsBranch(branch string) bool {
	if len(d.AllowedBranches) == 0 {
		return true
	}
	for _, b := range d.AllowedBranches {
		if b == branch {
			return true
		}
	}
	return false
}
