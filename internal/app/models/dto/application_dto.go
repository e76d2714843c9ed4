package dto

import "time"

// ApplyRequest represents the payload for applying to a drive
type ApplyRequest struct {
	DriveID int64 `json:"driveId" binding:"required" example:"3"`
}

// ApplicationDrive carries the drive summary attached to an application.
// It is null when the drive record has been removed.
type ApplicationDrive struct {
	CompanyName string `json:"companyName" example:"Acme Corp"`
	RoleTitle   string `json:"roleTitle" example:"Backend Engineer"`
	Location    string `json:"location,omitempty" example:"Bengaluru"`
	CTC         string `json:"ctc,omitempty" example:"12 LPA"`
}

// ApplicationResponse represents an application in API responses
type ApplicationResponse struct {
	ID        int64             `json:"id" example:"17"`
	DriveID   int64             `json:"driveId" example:"3"`
	Status    string            `json:"status" example:"APPLIED"`
	AppliedAt time.Time         `json:"appliedAt"`
	Drive     *ApplicationDrive `json:"drive"`
}
