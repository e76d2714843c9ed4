package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"placementhub/internal/app/models"
	"placementhub/internal/db"
	"placementhub/internal/pkg/apperrors"
	"placementhub/internal/pkg/dberrors"
)

// MentorshipRepository handles database operations for slots and bookings
type MentorshipRepository struct {
	db *pgxpool.Pool
}

// NewMentorshipRepository creates a new mentorship repository
func NewMentorshipRepository(db *pgxpool.Pool) *MentorshipRepository {
	return &MentorshipRepository{
		db: db,
	}
}

const slotColumns = `id, alumni_user_id, slot_start, slot_end, max_students, current_bookings, description, status`

// CreateSlot creates a new mentorship slot
func (r *MentorshipRepository) CreateSlot(ctx context.Context, slot *models.MentorshipSlot) error {
	query := `
		INSERT INTO mentorship_slots
			(alumni_user_id, slot_start, slot_end, max_students, current_bookings, description, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		slot.AlumniUserID,
		slot.SlotStart,
		slot.SlotEnd,
		slot.MaxStudents,
		slot.CurrentBookings,
		slot.Description,
		slot.Status,
	).Scan(&slot.ID)
	if err != nil {
		return fmt.Errorf("error creating mentorship slot: %w", err)
	}

	return nil
}

// GetSlotByID retrieves a slot by ID
func (r *MentorshipRepository) GetSlotByID(ctx context.Context, id int64) (*models.MentorshipSlot, error) {
	query := `SELECT ` + slotColumns + ` FROM mentorship_slots WHERE id = $1`

	slot, err := scanSlot(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving mentorship slot: %w", err)
	}

	return slot, nil
}

// GetAvailableSlots retrieves slots that still accept bookings
func (r *MentorshipRepository) GetAvailableSlots(ctx context.Context) ([]*models.MentorshipSlot, error) {
	query := `SELECT ` + slotColumns + `
		FROM mentorship_slots
		WHERE status = 'AVAILABLE' AND current_bookings < max_students
		ORDER BY id`
	return r.querySlots(ctx, query)
}

// GetSlotsByAlumni retrieves an alumnus's slots in creation order
func (r *MentorshipRepository) GetSlotsByAlumni(ctx context.Context, alumniUserID int64) ([]*models.MentorshipSlot, error) {
	query := `SELECT ` + slotColumns + ` FROM mentorship_slots WHERE alumni_user_id = $1 ORDER BY id`
	return r.querySlots(ctx, query, alumniUserID)
}

// GetBookingsBySlot retrieves every booking on a slot
func (r *MentorshipRepository) GetBookingsBySlot(ctx context.Context, slotID int64) ([]*models.MentorshipBooking, error) {
	query := `
		SELECT id, slot_id, student_id, booked_at, status
		FROM mentorship_bookings
		WHERE slot_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, slotID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*models.MentorshipBooking
	for rows.Next() {
		var booking models.MentorshipBooking
		if err := rows.Scan(
			&booking.ID,
			&booking.SlotID,
			&booking.StudentID,
			&booking.BookedAt,
			&booking.Status,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

// Book runs the capacity check and the booking insert in one transaction.
// The slot row is locked with FOR UPDATE, so concurrent bookings on the
// same slot serialize while other slots stay untouched.
func (r *MentorshipRepository) Book(ctx context.Context, slotID, studentID int64) (*models.MentorshipBooking, error) {
	var booking models.MentorshipBooking

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var slot models.MentorshipSlot
		err := tx.QueryRow(ctx, `
			SELECT id, max_students, current_bookings, status
			FROM mentorship_slots
			WHERE id = $1
			FOR UPDATE`, slotID,
		).Scan(&slot.ID, &slot.MaxStudents, &slot.CurrentBookings, &slot.Status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrSlotNotFound
			}
			return fmt.Errorf("error locking slot: %w", err)
		}

		if slot.Status != models.SlotStatusAvailable || slot.CurrentBookings >= slot.MaxStudents {
			return apperrors.ErrSlotNotAvailable
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO mentorship_bookings (slot_id, student_id, status)
			VALUES ($1, $2, $3)
			RETURNING id, booked_at`,
			slotID, studentID, models.BookingStatusConfirmed,
		).Scan(&booking.ID, &booking.BookedAt)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "mentorship_bookings_slot_id_student_id_key") {
				return apperrors.ErrAlreadyBooked
			}
			return fmt.Errorf("error creating booking: %w", err)
		}
		booking.SlotID = slotID
		booking.StudentID = studentID
		booking.Status = models.BookingStatusConfirmed

		newCount := slot.CurrentBookings + 1
		newStatus := models.SlotStatusAvailable
		if newCount == slot.MaxStudents {
			newStatus = models.SlotStatusFull
		}

		_, err = tx.Exec(ctx, `
			UPDATE mentorship_slots
			SET current_bookings = $1, status = $2
			WHERE id = $3`,
			newCount, newStatus, slotID,
		)
		if err != nil {
			return fmt.Errorf("error updating slot capacity: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *MentorshipRepository) querySlots(ctx context.Context, query string, args ...interface{}) ([]*models.MentorshipSlot, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving mentorship slots: %w", err)
	}
	defer rows.Close()

	var slots []*models.MentorshipSlot
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}

func scanSlot(row pgx.Row) (*models.MentorshipSlot, error) {
	var slot models.MentorshipSlot
	err := row.Scan(
		&slot.ID,
		&slot.AlumniUserID,
		&slot.SlotStart,
		&slot.SlotEnd,
		&slot.MaxStudents,
		&slot.CurrentBookings,
		&slot.Description,
		&slot.Status,
	)
	if err != nil {
		return nil, err
	}
	return &slot, nil
}
