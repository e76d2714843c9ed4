package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placementhub/internal/app/models"
	"placementhub/internal/app/models/dto"
	"placementhub/internal/pkg/apperrors"
)

func slotWindow() (start, end time.Time) {
	start = time.Now().Add(24 * time.Hour).Truncate(time.Second)
	return start, start.Add(time.Hour)
}

func TestCreateSlotValidation(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	alumni := createUser(t, repos, "Rahul", "rahul@test.edu", models.RoleAlumni)
	start, end := slotWindow()

	_, err := svcs.MentorshipService.CreateSlot(ctx, alumni.ID, &dto.CreateSlotRequest{SlotEnd: &end})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svcs.MentorshipService.CreateSlot(ctx, alumni.ID, &dto.CreateSlotRequest{SlotStart: &end, SlotEnd: &start})
	assert.ErrorIs(t, err, apperrors.ErrInvalidSlotWindow)
}

func TestCreateSlotDefaultsCapacityToOne(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	alumni := createUser(t, repos, "Rahul", "rahul@test.edu", models.RoleAlumni)
	start, end := slotWindow()

	slot, err := svcs.MentorshipService.CreateSlot(ctx, alumni.ID, &dto.CreateSlotRequest{
		SlotStart: &start,
		SlotEnd:   &end,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, slot.MaxStudents)
	assert.Equal(t, 0, slot.CurrentBookings)
	assert.Equal(t, models.SlotStatusAvailable, slot.Status)
}

func TestBookSlotFillsAtCapacity(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	alumni := createUser(t, repos, "Rahul", "rahul@test.edu", models.RoleAlumni)
	first := createUser(t, repos, "Priya", "priya@test.edu", models.RoleStudent)
	second := createUser(t, repos, "Arjun", "arjun@test.edu", models.RoleStudent)
	start, end := slotWindow()

	slot, err := svcs.MentorshipService.CreateSlot(ctx, alumni.ID, &dto.CreateSlotRequest{
		SlotStart:   &start,
		SlotEnd:     &end,
		MaxStudents: 1,
	})
	require.NoError(t, err)

	booking, err := svcs.MentorshipService.BookSlot(ctx, first.ID, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)

	stored, err := repos.MentorshipRepository.GetSlotByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.CurrentBookings)
	assert.Equal(t, models.SlotStatusFull, stored.Status)

	_, err = svcs.MentorshipService.BookSlot(ctx, second.ID, slot.ID)
	assert.ErrorIs(t, err, apperrors.ErrSlotNotAvailable)
}

func TestBookSlotTwiceConflicts(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	alumni := createUser(t, repos, "Rahul", "rahul@test.edu", models.RoleAlumni)
	student := createUser(t, repos, "Priya", "priya@test.edu", models.RoleStudent)
	start, end := slotWindow()

	slot, err := svcs.MentorshipService.CreateSlot(ctx, alumni.ID, &dto.CreateSlotRequest{
		SlotStart:   &start,
		SlotEnd:     &end,
		MaxStudents: 3,
	})
	require.NoError(t, err)

	_, err = svcs.MentorshipService.BookSlot(ctx, student.ID, slot.ID)
	require.NoError(t, err)

	_, err = svcs.MentorshipService.BookSlot(ctx, student.ID, slot.ID)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyBooked)
}

func TestBookSlotUnknownSlot(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	student := createUser(t, repos, "Priya", "priya@test.edu", models.RoleStudent)

	_, err := svcs.MentorshipService.BookSlot(ctx, student.ID, 404)
	assert.ErrorIs(t, err, apperrors.ErrSlotNotFound)
}

func TestConcurrentBookingNeverExceedsCapacity(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	alumni := createUser(t, repos, "Rahul", "rahul@test.edu", models.RoleAlumni)
	start, end := slotWindow()

	const capacity = 3
	const contenders = 20

	slot, err := svcs.MentorshipService.CreateSlot(ctx, alumni.ID, &dto.CreateSlotRequest{
		SlotStart:   &start,
		SlotEnd:     &end,
		MaxStudents: capacity,
	})
	require.NoError(t, err)

	students := make([]int64, contenders)
	for i := range students {
		user := createUser(t, repos, fmt.Sprintf("Student %d", i),
			fmt.Sprintf("student%d@test.edu", i), models.RoleStudent)
		students[i] = user.ID
	}

	var wg sync.WaitGroup
	results := make(chan error, contenders)
	for _, studentID := range students {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, err := svcs.MentorshipService.BookSlot(ctx, id, slot.ID)
			results <- err
		}(studentID)
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, apperrors.ErrSlotNotAvailable)
		}
	}
	assert.Equal(t, capacity, succeeded)

	stored, err := repos.MentorshipRepository.GetSlotByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, capacity, stored.CurrentBookings)
	assert.Equal(t, models.SlotStatusFull, stored.Status)

	bookings, err := repos.MentorshipRepository.GetBookingsBySlot(ctx, slot.ID)
	require.NoError(t, err)
	assert.Len(t, bookings, capacity)
}

func TestGetMySlotsListsAttendees(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	alumni := createUser(t, repos, "Rahul", "rahul@test.edu", models.RoleAlumni)
	student := createUser(t, repos, "Priya", "priya@test.edu", models.RoleStudent)
	start, end := slotWindow()

	slot, err := svcs.MentorshipService.CreateSlot(ctx, alumni.ID, &dto.CreateSlotRequest{
		SlotStart:   &start,
		SlotEnd:     &end,
		MaxStudents: 2,
	})
	require.NoError(t, err)

	_, err = svcs.MentorshipService.BookSlot(ctx, student.ID, slot.ID)
	require.NoError(t, err)

	mySlots, err := svcs.MentorshipService.GetMySlots(ctx, alumni.ID)
	require.NoError(t, err)
	require.Len(t, mySlots, 1)
	require.Len(t, mySlots[0].Bookings, 1)
	assert.Equal(t, "Priya", mySlots[0].Bookings[0].StudentName)
	assert.Equal(t, "priya@test.edu", mySlots[0].Bookings[0].StudentEmail)
}

func TestGetAvailableSlotsExcludesFullOnes(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	alumni := createUser(t, repos, "Rahul", "rahul@test.edu", models.RoleAlumni)
	student := createUser(t, repos, "Priya", "priya@test.edu", models.RoleStudent)
	start, end := slotWindow()

	full, err := svcs.MentorshipService.CreateSlot(ctx, alumni.ID, &dto.CreateSlotRequest{
		SlotStart:   &start,
		SlotEnd:     &end,
		MaxStudents: 1,
	})
	require.NoError(t, err)
	open, err := svcs.MentorshipService.CreateSlot(ctx, alumni.ID, &dto.CreateSlotRequest{
		SlotStart:   &start,
		SlotEnd:     &end,
		MaxStudents: 2,
	})
	require.NoError(t, err)

	_, err = svcs.MentorshipService.BookSlot(ctx, student.ID, full.ID)
	require.NoError(t, err)

	available, err := svcs.MentorshipService.GetAvailableSlots(ctx)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, open.ID, available[0].ID)
	assert.Equal(t, "Rahul", available[0].AlumniName)
}
