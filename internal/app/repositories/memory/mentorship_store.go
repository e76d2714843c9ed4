package memory

import (
	"context"
	"sync"
	"time"

	"placementhub/internal/app/models"
	"placementhub/internal/pkg/apperrors"
)

// MentorshipStore is an in-memory MentorshipRepository.
//
// Bookings are serialized per slot through a dedicated mutex per slot id, so
// two students racing for the last seat on one slot cannot both succeed
// while bookings on unrelated slots proceed independently.
type MentorshipStore struct {
	mu        sync.RWMutex
	slots     map[int64]models.MentorshipSlot
	slotOrder []int64
	bookings  map[int64]models.MentorshipBooking
	bookOrder []int64
	slotLocks map[int64]*sync.Mutex
	nextID    int64
}

// NewMentorshipStore creates an empty mentorship store
func NewMentorshipStore() *MentorshipStore {
	return &MentorshipStore{
		slots:     make(map[int64]models.MentorshipSlot),
		bookings:  make(map[int64]models.MentorshipBooking),
		slotLocks: make(map[int64]*sync.Mutex),
		nextID:    1,
	}
}

// CreateSlot stores a new slot and assigns its id
func (s *MentorshipStore) CreateSlot(ctx context.Context, slot *models.MentorshipSlot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot.ID = s.nextID
	s.nextID++
	s.slots[slot.ID] = *slot
	s.slotOrder = append(s.slotOrder, slot.ID)
	s.slotLocks[slot.ID] = &sync.Mutex{}
	return nil
}

// GetSlotByID retrieves a slot by id, nil when absent
func (s *MentorshipStore) GetSlotByID(ctx context.Context, id int64) (*models.MentorshipSlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slot, ok := s.slots[id]
	if !ok {
		return nil, nil
	}
	return &slot, nil
}

// GetAvailableSlots retrieves slots that still accept bookings
func (s *MentorshipStore) GetAvailableSlots(ctx context.Context) ([]*models.MentorshipSlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var slots []*models.MentorshipSlot
	for _, id := range s.slotOrder {
		slot := s.slots[id]
		if slot.Status == models.SlotStatusAvailable && slot.CurrentBookings < slot.MaxStudents {
			slots = append(slots, &slot)
		}
	}
	return slots, nil
}

// GetSlotsByAlumni retrieves an alumnus's slots in creation order
func (s *MentorshipStore) GetSlotsByAlumni(ctx context.Context, alumniUserID int64) ([]*models.MentorshipSlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var slots []*models.MentorshipSlot
	for _, id := range s.slotOrder {
		slot := s.slots[id]
		if slot.AlumniUserID == alumniUserID {
			slots = append(slots, &slot)
		}
	}
	return slots, nil
}

// GetBookingsBySlot retrieves every booking on a slot in creation order
func (s *MentorshipStore) GetBookingsBySlot(ctx context.Context, slotID int64) ([]*models.MentorshipBooking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var bookings []*models.MentorshipBooking
	for _, id := range s.bookOrder {
		booking := s.bookings[id]
		if booking.SlotID == slotID {
			bookings = append(bookings, &booking)
		}
	}
	return bookings, nil
}

// Book performs the capacity check and booking creation as one atomic unit
// under the slot's own lock.
func (s *MentorshipStore) Book(ctx context.Context, slotID, studentID int64) (*models.MentorshipBooking, error) {
	s.mu.RLock()
	slotLock, ok := s.slotLocks[slotID]
	s.mu.RUnlock()
	if !ok {
		return nil, apperrors.ErrSlotNotFound
	}

	// The slot lock serializes the capacity check and the write for this
	// slot only; the store mutex is held just long enough to touch the maps.
	slotLock.Lock()
	defer slotLock.Unlock()

	s.mu.RLock()
	slot, exists := s.slots[slotID]
	var duplicate bool
	if exists {
		for _, id := range s.bookOrder {
			booking := s.bookings[id]
			if booking.SlotID == slotID && booking.StudentID == studentID {
				duplicate = true
				break
			}
		}
	}
	s.mu.RUnlock()

	if !exists {
		return nil, apperrors.ErrSlotNotFound
	}
	if slot.Status != models.SlotStatusAvailable || slot.CurrentBookings >= slot.MaxStudents {
		return nil, apperrors.ErrSlotNotAvailable
	}
	if duplicate {
		return nil, apperrors.ErrAlreadyBooked
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	booking := models.MentorshipBooking{
		ID:        s.nextID,
		SlotID:    slotID,
		StudentID: studentID,
		BookedAt:  time.Now(),
		Status:    models.BookingStatusConfirmed,
	}
	s.nextID++
	s.bookings[booking.ID] = booking
	s.bookOrder = append(s.bookOrder, booking.ID)

	slot.CurrentBookings++
	if slot.CurrentBookings == slot.MaxStudents {
		slot.Status = models.SlotStatusFull
	}
	s.slots[slotID] = slot

	return &booking, nil
}
