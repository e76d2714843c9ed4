package models

import "time"

// Application defines a student's application to a drive, based on the
// 'applications' table. At most one application exists per (drive, student)
// pair; duplicates must fail at creation.
type Application struct {
	ID        int64             `json:"id" db:"id"`
	DriveID   int64             `json:"driveId" db:"drive_id"`
	StudentID int64             `json:"studentId" db:"student_id"`
	Status    ApplicationStatus `json:"status" db:"status" example:"APPLIED"`
	AppliedAt time.Time         `json:"appliedAt" db:"applied_at"`
	UpdatedAt time.Time         `json:"updatedAt" db:"updated_at"`
}
