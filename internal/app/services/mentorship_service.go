package services

import (
	"context"

	"github.com/rs/zerolog"

	"placementhub/internal/app/models"
	"placementhub/internal/app/models/dto"
	"placementhub/internal/app/repositories"
	"placementhub/internal/notify"
	"placementhub/internal/pkg/apperrors"
)

// MentorshipService manages mentorship slots and bookings
type MentorshipService interface {
	CreateSlot(ctx context.Context, alumniUserID int64, req *dto.CreateSlotRequest) (*models.MentorshipSlot, error)
	GetAvailableSlots(ctx context.Context) ([]dto.SlotResponse, error)
	BookSlot(ctx context.Context, studentID, slotID int64) (*models.MentorshipBooking, error)
	GetMySlots(ctx context.Context, alumniUserID int64) ([]dto.MySlotResponse, error)
}

type mentorshipService struct {
	mentorshipRepo repositories.MentorshipRepository
	userRepo       repositories.UserRepository
	notifier       notify.Notifier
	logger         zerolog.Logger
}

// NewMentorshipService creates a new mentorship service
func NewMentorshipService(
	mentorshipRepo repositories.MentorshipRepository,
	userRepo repositories.UserRepository,
	notifier notify.Notifier,
	logger zerolog.Logger,
) MentorshipService {
	return &mentorshipService{
		mentorshipRepo: mentorshipRepo,
		userRepo:       userRepo,
		notifier:       notifier,
		logger:         logger.With().Str("service", "mentorship").Logger(),
	}
}

func (s *mentorshipService) CreateSlot(ctx context.Context, alumniUserID int64, req *dto.CreateSlotRequest) (*models.MentorshipSlot, error) {
	if req.SlotStart == nil || req.SlotEnd == nil {
		return nil, apperrors.NewValidationError("slotStart and slotEnd are required")
	}
	if !req.SlotEnd.After(*req.SlotStart) {
		return nil, apperrors.ErrInvalidSlotWindow
	}

	maxStudents := req.MaxStudents
	if maxStudents < 1 {
		maxStudents = 1
	}

	slot := &models.MentorshipSlot{
		AlumniUserID:    alumniUserID,
		SlotStart:       *req.SlotStart,
		SlotEnd:         *req.SlotEnd,
		MaxStudents:     maxStudents,
		CurrentBookings: 0,
		Description:     req.Description,
		Status:          models.SlotStatusAvailable,
	}
	if err := s.mentorshipRepo.CreateSlot(ctx, slot); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("slotId", slot.ID).Int64("alumniId", alumniUserID).Msg("Mentorship slot created")
	return slot, nil
}

func (s *mentorshipService) GetAvailableSlots(ctx context.Context) ([]dto.SlotResponse, error) {
	slots, err := s.mentorshipRepo.GetAvailableSlots(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(slots))
	for _, slot := range slots {
		ids = append(ids, slot.AlumniUserID)
	}
	alumni, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SlotResponse, 0, len(slots))
	for _, slot := range slots {
		resp := toSlotResponse(slot)
		if user, ok := alumni[slot.AlumniUserID]; ok {
			resp.AlumniName = user.Name
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *mentorshipService) BookSlot(ctx context.Context, studentID, slotID int64) (*models.MentorshipBooking, error) {
	booking, err := s.mentorshipRepo.Book(ctx, slotID, studentID)
	if err != nil {
		return nil, err
	}
	s.logger.Info().
		Int64("slotId", slotID).
		Int64("studentId", studentID).
		Msg("Slot booked")

	if student, err := s.userRepo.GetByID(ctx, studentID); err == nil && student != nil {
		if err := s.notifier.NotifyBookingConfirmed(student.Email, student.Name); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to notify student")
		}
	}
	return booking, nil
}

func (s *mentorshipService) GetMySlots(ctx context.Context, alumniUserID int64) ([]dto.MySlotResponse, error) {
	slots, err := s.mentorshipRepo.GetSlotsByAlumni(ctx, alumniUserID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MySlotResponse, 0, len(slots))
	for _, slot := range slots {
		bookings, err := s.mentorshipRepo.GetBookingsBySlot(ctx, slot.ID)
		if err != nil {
			return nil, err
		}

		studentIDs := make([]int64, 0, len(bookings))
		for _, booking := range bookings {
			studentIDs = append(studentIDs, booking.StudentID)
		}
		students, err := s.userRepo.GetByIDs(ctx, studentIDs)
		if err != nil {
			return nil, err
		}

		attendees := make([]dto.SlotAttendee, 0, len(bookings))
		for _, booking := range bookings {
			attendee := dto.SlotAttendee{}
			if user, ok := students[booking.StudentID]; ok {
				attendee.StudentName = user.Name
				attendee.StudentEmail = user.Email
			}
			attendees = append(attendees, attendee)
		}

		responses = append(responses, dto.MySlotResponse{
			SlotResponse: toSlotResponse(slot),
			Bookings:     attendees,
		})
	}
	return responses, nil
}

func toSlotResponse(slot *models.MentorshipSlot) dto.SlotResponse {
	return dto.SlotResponse{
		ID:              slot.ID,
		SlotStart:       slot.SlotStart,
		SlotEnd:         slot.SlotEnd,
		MaxStudents:     slot.MaxStudents,
		CurrentBookings: slot.CurrentBookings,
		Description:     slot.Description,
		Status:          string(slot.Status),
	}
}
