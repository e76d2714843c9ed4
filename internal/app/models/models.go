package models

// RoleType defines the user role type
type RoleType string

const (
	RoleTPO     RoleType = "TPO"
	RoleStudent RoleType = "STUDENT"
	RoleAlumni  RoleType = "ALUMNI"
)

// DriveStatus represents the lifecycle state of a placement drive
type DriveStatus string

const (
	DriveStatusActive DriveStatus = "ACTIVE"
	DriveStatusClosed DriveStatus = "CLOSED"
)

// ApplicationStatus represents the lifecycle state of a drive application
type ApplicationStatus string

const (
	ApplicationStatusApplied            ApplicationStatus = "APPLIED"
	ApplicationStatusInterviewScheduled ApplicationStatus = "INTERVIEW_SCHEDULED"
	ApplicationStatusSelected           ApplicationStatus = "SELECTED"
	ApplicationStatusRejected           ApplicationStatus = "REJECTED"
)

// JobStatus represents the state of an alumni job referral
type JobStatus string

const (
	JobStatusActive JobStatus = "ACTIVE"
	JobStatusClosed JobStatus = "CLOSED"
)

// SlotStatus represents the state of a mentorship slot
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "AVAILABLE"
	SlotStatusFull      SlotStatus = "FULL"
)

// BookingStatus represents the state of a mentorship booking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
)
