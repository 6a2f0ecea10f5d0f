package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Benjakusa/salonpro-manager/internal/model"
	apperrors "github.com/Benjakusa/salonpro-manager/pkg/errors"
)

const appointmentColumns = `id, client_id, stylist_id, service_id, start_time, duration_minutes, total_price, status, notes, created_at`

// Create inserts a new booking. The stylist conflict check and the insert
// run in one transaction so no second booking can slip between them.
func (r *appointmentRepository) Create(ctx context.Context, apt *model.Appointment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	conflict, err := scanForConflict(ctx, tx, apt.StylistID, apt.StartTime, apt.DurationMinutes, nil)
	if err != nil {
		return err
	}
	if conflict {
		return apperrors.Conflict("stylist is already booked for this time", nil)
	}

	apt.ID = uuid.New()
	apt.Status = model.AppointmentStatusScheduled
	// Timestamps are stored as text and compared lexicographically by the
	// window queries, so every persisted instant is normalized to UTC.
	apt.StartTime = apt.StartTime.UTC()
	apt.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO appointments (` + appointmentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, query,
		apt.ID,
		apt.ClientID,
		apt.StylistID,
		apt.ServiceID,
		apt.StartTime,
		apt.DurationMinutes,
		apt.TotalPrice,
		apt.Status,
		apt.Notes,
		apt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", translateErr(err, "appointment"))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	var apt model.Appointment
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = ?`
	if err := r.db.GetContext(ctx, &apt, query, id); err != nil {
		return nil, translateErr(err, "appointment")
	}
	return &apt, nil
}

// Update applies the given field changes. When the start time or duration
// changes, or a non-scheduled booking moves back to scheduled, the conflict
// check runs again against all other scheduled appointments for the stylist,
// inside the same transaction as the write.
func (r *appointmentRepository) Update(ctx context.Context, id uuid.UUID, upd *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var current model.Appointment
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = ?`
	if err := tx.GetContext(ctx, &current, query, id); err != nil {
		return nil, translateErr(err, "appointment")
	}

	// A moved or lengthened booking must be re-checked, and so must one
	// re-activated into scheduled: its slot may have been taken since.
	reactivating := upd.Status != nil &&
		*upd.Status == model.AppointmentStatusScheduled &&
		current.Status != model.AppointmentStatusScheduled
	if upd.StartTime != nil || upd.DurationMinutes != nil || reactivating {
		start := current.StartTime
		duration := current.DurationMinutes
		if upd.StartTime != nil {
			start = *upd.StartTime
		}
		if upd.DurationMinutes != nil {
			duration = *upd.DurationMinutes
		}
		conflict, err := scanForConflict(ctx, tx, current.StylistID, start, duration, &id)
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, apperrors.Conflict("stylist is already booked for this time", nil)
		}
	}

	sets := make([]string, 0, 5)
	args := make([]interface{}, 0, 6)

	if upd.StartTime != nil {
		sets = append(sets, "start_time = ?")
		args = append(args, upd.StartTime.UTC())
	}
	if upd.DurationMinutes != nil {
		sets = append(sets, "duration_minutes = ?")
		args = append(args, *upd.DurationMinutes)
	}
	if upd.TotalPrice != nil {
		sets = append(sets, "total_price = ?")
		args = append(args, *upd.TotalPrice)
	}
	if upd.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *upd.Status)
	}
	if upd.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *upd.Notes)
	}

	if len(sets) > 0 {
		query := "UPDATE appointments SET " + strings.Join(sets, ", ") + " WHERE id = ?"
		args = append(args, id)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("failed to update appointment: %w", translateErr(err, "appointment"))
		}
	}

	var updated model.Appointment
	if err := tx.GetContext(ctx, &updated, `SELECT `+appointmentColumns+` FROM appointments WHERE id = ?`, id); err != nil {
		return nil, translateErr(err, "appointment")
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return &updated, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("appointment", nil)
	}
	return nil
}

func (r *appointmentRepository) List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE 1 = 1`
	args := make([]interface{}, 0, 5)

	if filters != nil {
		if filters.ClientID != nil {
			query += " AND client_id = ?"
			args = append(args, *filters.ClientID)
		}
		if filters.StylistID != nil {
			query += " AND stylist_id = ?"
			args = append(args, *filters.StylistID)
		}
		if filters.Status != nil {
			query += " AND status = ?"
			args = append(args, *filters.Status)
		}
		if filters.From != nil {
			query += " AND start_time >= ?"
			args = append(args, filters.From.UTC())
		}
		if filters.To != nil {
			query += " AND start_time < ?"
			args = append(args, filters.To.UTC())
		}
	}

	query += " ORDER BY start_time ASC"

	var appointments []*model.Appointment
	if err := r.db.SelectContext(ctx, &appointments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

// HasConflict reports whether the candidate interval overlaps any scheduled
// appointment for the stylist. Used stand-alone for availability probes; the
// create and update paths run the same scan inside their transactions.
func (r *appointmentRepository) HasConflict(ctx context.Context, stylistID uuid.UUID, start time.Time, durationMinutes int, excludeID *uuid.UUID) (bool, error) {
	return scanForConflict(ctx, r.db, stylistID, start, durationMinutes, excludeID)
}

func (r *appointmentRepository) CountForClient(ctx context.Context, clientID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM appointments WHERE client_id = ?`, clientID)
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return count, nil
}

type bookedInterval struct {
	ID              uuid.UUID `db:"id"`
	StartTime       time.Time `db:"start_time"`
	DurationMinutes int       `db:"duration_minutes"`
}

// scanForConflict is the one overlap test shared by every path that books or
// moves an appointment. Intervals are half-open: [s1,e1) and [s2,e2) overlap
// iff s1 < e2 && s2 < e1, so bookings that touch at an endpoint do not clash.
func scanForConflict(ctx context.Context, q sqlx.QueryerContext, stylistID uuid.UUID, start time.Time, durationMinutes int, excludeID *uuid.UUID) (bool, error) {
	var booked []bookedInterval
	err := sqlx.SelectContext(ctx, q, &booked, `
		SELECT id, start_time, duration_minutes
		FROM appointments
		WHERE stylist_id = ? AND status = ?
	`, stylistID, model.AppointmentStatusScheduled)
	if err != nil {
		return false, fmt.Errorf("failed to load stylist schedule: %w", err)
	}

	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	for _, b := range booked {
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		bookedEnd := b.StartTime.Add(time.Duration(b.DurationMinutes) * time.Minute)
		if start.Before(bookedEnd) && b.StartTime.Before(end) {
			return true, nil
		}
	}
	return false, nil
}
