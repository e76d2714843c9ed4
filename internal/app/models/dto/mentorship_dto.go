package dto

import "time"

// CreateSlotRequest represents the payload for opening a mentorship slot
type CreateSlotRequest struct {
	SlotStart   *time.Time `json:"slotStart" binding:"required"`
	SlotEnd     *time.Time `json:"slotEnd" binding:"required"`
	MaxStudents int        `json:"maxStudents" binding:"omitempty,gte=1" example:"5"`
	Description string     `json:"description" binding:"omitempty" example:"Resume review and mock interview"`
}

// BookSlotRequest represents the payload for booking a mentorship slot
type BookSlotRequest struct {
	SlotID int64 `json:"slotId" binding:"required" example:"4"`
}

// SlotResponse represents a mentorship slot in API responses
type SlotResponse struct {
	ID              int64     `json:"id" example:"4"`
	AlumniName      string    `json:"alumniName,omitempty" example:"Rahul Verma"`
	SlotStart       time.Time `json:"slotStart"`
	SlotEnd         time.Time `json:"slotEnd"`
	MaxStudents     int       `json:"maxStudents" example:"5"`
	CurrentBookings int       `json:"currentBookings" example:"2"`
	Description     string    `json:"description,omitempty"`
	Status          string    `json:"status" example:"AVAILABLE"`
}

// BookingResponse represents a confirmed booking
type BookingResponse struct {
	ID       int64     `json:"id" example:"9"`
	SlotID   int64     `json:"slotId" example:"4"`
	BookedAt time.Time `json:"bookedAt"`
	Status   string    `json:"status" example:"CONFIRMED"`
}

// SlotAttendee summarizes a student booked into a slot
type SlotAttendee struct {
	StudentName  string `json:"studentName" example:"Priya Sharma"`
	StudentEmail string `json:"studentEmail" example:"priya@university.edu"`
}

// MySlotResponse represents an alumni-owned slot with its attendees
type MySlotResponse struct {
	SlotResponse
	Bookings []SlotAttendee `json:"bookings"`
}
