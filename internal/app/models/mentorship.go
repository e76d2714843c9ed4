package models

import "time"

// MentorshipSlot defines a bounded-capacity time window offered by an
// alumnus, based on the 'mentorship_slots' table.
// Invariant: CurrentBookings <= MaxStudents, and Status is FULL exactly
// when CurrentBookings == MaxStudents.
type MentorshipSlot struct {
	ID              int64      `json:"id" db:"id"`
	AlumniUserID    int64      `json:"alumniUserId" db:"alumni_user_id"`
	SlotStart       time.Time  `json:"slotStart" db:"slot_start"`
	SlotEnd         time.Time  `json:"slotEnd" db:"slot_end"` // Must be after SlotStart
	MaxStudents     int        `json:"maxStudents" db:"max_students"` // >= 1
	CurrentBookings int        `json:"currentBookings" db:"current_bookings"`
	Description     string     `json:"description" db:"description"`
	Status          SlotStatus `json:"status" db:"status" example:"AVAILABLE"`
}

// MentorshipBooking defines a student's confirmed booking on a slot, based
// on the 'mentorship_bookings' table. At most one booking exists per
// (slot, student) pair.
type MentorshipBooking struct {
	ID        int64         `json:"id" db:"id"`
	SlotID    int64         `json:"slotId" db:"slot_id"`
	StudentID int64         `json:"studentId" db:"student_id"`
	BookedAt  time.Time     `json:"bookedAt" db:"booked_at"`
	Status    BookingStatus `json:"status" db:"status" example:"CONFIRMED"`
}
