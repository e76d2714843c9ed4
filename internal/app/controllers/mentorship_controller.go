package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"placementhub/internal/app/models/dto"
	"placementhub/internal/app/services"
	"placementhub/internal/middleware"
)

// MentorshipController handles mentorship slot operations
type MentorshipController struct {
	mentorshipService services.MentorshipService
}

// NewMentorshipController creates a new MentorshipController
func NewMentorshipController(mentorshipService services.MentorshipService) *MentorshipController {
	return &MentorshipController{
		mentorshipService: mentorshipService,
	}
}

// CreateSlot opens a mentorship slot
// @Summary Create a mentorship slot
// @Description Opens a bookable time window; maxStudents defaults to 1
// @Tags mentorship
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSlotRequest true "Slot information"
// @Success 201 {object} dto.APIResponse{data=dto.SlotResponse} "Slot created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentorship/slots [post]
func (c *MentorshipController) CreateSlot(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	slot, err := c.mentorshipService.CreateSlot(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.SlotResponse{
			ID:              slot.ID,
			SlotStart:       slot.SlotStart,
			SlotEnd:         slot.SlotEnd,
			MaxStudents:     slot.MaxStudents,
			CurrentBookings: slot.CurrentBookings,
			Description:     slot.Description,
			Status:          string(slot.Status),
		},
		Timestamp: time.Now(),
	})
}

// GetAvailableSlots lists bookable slots
// @Summary List available slots
// @Description Returns slots that still have capacity, with the mentor's name
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.SlotResponse} "Available slots"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentorship/slots [get]
func (c *MentorshipController) GetAvailableSlots(ctx *gin.Context) {
	slots, err := c.mentorshipService.GetAvailableSlots(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      slots,
		Timestamp: time.Now(),
	})
}

// BookSlot books a seat in a slot
// @Summary Book a mentorship slot
// @Description Atomically reserves a seat; full or closed slots reject the booking
// @Tags mentorship
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BookSlotRequest true "Slot reference"
// @Success 201 {object} dto.APIResponse{data=dto.BookingResponse} "Booking confirmed"
// @Failure 400 {object} dto.ErrorResponse "Slot no longer available"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Slot not found"
// @Failure 409 {object} dto.ErrorResponse "Already booked"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentorship/bookings [post]
func (c *MentorshipController) BookSlot(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.BookSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	booking, err := c.mentorshipService.BookSlot(ctx, userID, req.SlotID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.BookingResponse{
			ID:       booking.ID,
			SlotID:   booking.SlotID,
			BookedAt: booking.BookedAt,
			Status:   string(booking.Status),
		},
		Timestamp: time.Now(),
	})
}

// GetMySlots lists the caller's slots with attendees
// @Summary List own slots
// @Description Returns the mentor's slots with the booked students
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MySlotResponse} "Own slots"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentorship/my-slots [get]
func (c *MentorshipController) GetMySlots(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	slots, err := c.mentorshipService.GetMySlots(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      slots,
		Timestamp: time.Now(),
	})
}
