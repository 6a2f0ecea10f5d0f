package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Benjakusa/salonpro-manager/internal/model"
	apperrors "github.com/Benjakusa/salonpro-manager/pkg/errors"
)

const stylistColumns = `id, first_name, last_name, phone, email, specialty, hourly_rate, active, hire_date, created_at`

func (r *stylistRepository) Create(ctx context.Context, stylist *model.Stylist) error {
	query := `
		INSERT INTO stylists (` + stylistColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	stylist.ID = uuid.New()
	stylist.Active = true
	stylist.CreatedAt = time.Now()
	if stylist.HireDate.IsZero() {
		stylist.HireDate = stylist.CreatedAt
	}

	_, err := r.db.ExecContext(ctx, query,
		stylist.ID,
		stylist.FirstName,
		stylist.LastName,
		stylist.Phone,
		stylist.Email,
		stylist.Specialty,
		stylist.HourlyRate,
		stylist.Active,
		stylist.HireDate,
		stylist.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create stylist: %w", translateErr(err, "stylist"))
	}
	return nil
}

func (r *stylistRepository) Get(ctx context.Context, id uuid.UUID) (*model.Stylist, error) {
	var stylist model.Stylist
	query := `SELECT ` + stylistColumns + ` FROM stylists WHERE id = ?`
	if err := r.db.GetContext(ctx, &stylist, query, id); err != nil {
		return nil, translateErr(err, "stylist")
	}
	return &stylist, nil
}

func (r *stylistRepository) List(ctx context.Context, activeOnly bool) ([]*model.Stylist, error) {
	query := `SELECT ` + stylistColumns + ` FROM stylists`
	if activeOnly {
		query += ` WHERE active = 1`
	}
	query += ` ORDER BY last_name, first_name`

	var stylists []*model.Stylist
	if err := r.db.SelectContext(ctx, &stylists, query); err != nil {
		return nil, fmt.Errorf("failed to list stylists: %w", err)
	}
	return stylists, nil
}

func (r *stylistRepository) ListBySpecialty(ctx context.Context, specialty string) ([]*model.Stylist, error) {
	query := `
		SELECT ` + stylistColumns + `
		FROM stylists
		WHERE specialty = ? COLLATE NOCASE
		ORDER BY last_name, first_name
	`
	var stylists []*model.Stylist
	if err := r.db.SelectContext(ctx, &stylists, query, specialty); err != nil {
		return nil, fmt.Errorf("failed to list stylists by specialty: %w", err)
	}
	return stylists, nil
}

func (r *stylistRepository) Update(ctx context.Context, id uuid.UUID, upd *model.UpdateStylistRequest) (*model.Stylist, error) {
	sets := make([]string, 0, 7)
	args := make([]interface{}, 0, 8)

	if upd.FirstName != nil {
		sets = append(sets, "first_name = ?")
		args = append(args, *upd.FirstName)
	}
	if upd.LastName != nil {
		sets = append(sets, "last_name = ?")
		args = append(args, *upd.LastName)
	}
	if upd.Phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *upd.Phone)
	}
	if upd.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *upd.Email)
	}
	if upd.Specialty != nil {
		sets = append(sets, "specialty = ?")
		args = append(args, *upd.Specialty)
	}
	if upd.HourlyRate != nil {
		sets = append(sets, "hourly_rate = ?")
		args = append(args, *upd.HourlyRate)
	}
	if upd.HireDate != nil {
		sets = append(sets, "hire_date = ?")
		args = append(args, *upd.HireDate)
	}

	if len(sets) == 0 {
		return r.Get(ctx, id)
	}

	query := "UPDATE stylists SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update stylist: %w", translateErr(err, "stylist"))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, apperrors.NotFound("stylist", nil)
	}

	return r.Get(ctx, id)
}

func (r *stylistRepository) SetActive(ctx context.Context, id uuid.UUID, active bool, now time.Time) (*model.Stylist, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if !active {
		var pending int
		// start_time is stored as UTC text; bind the cutoff in UTC so the
		// lexicographic comparison is chronological.
		err := tx.GetContext(ctx, &pending, `
			SELECT COUNT(*) FROM appointments
			WHERE stylist_id = ? AND status = ? AND start_time > ?
		`, id, model.AppointmentStatusScheduled, now.UTC())
		if err != nil {
			return nil, fmt.Errorf("failed to count pending appointments: %w", err)
		}
		if pending > 0 {
			return nil, apperrors.ReferentialIntegrity(
				"stylist has upcoming scheduled appointments", nil)
		}
	}

	result, err := tx.ExecContext(ctx, `UPDATE stylists SET active = ? WHERE id = ?`, active, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update stylist: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, apperrors.NotFound("stylist", nil)
	}

	var stylist model.Stylist
	query := `SELECT ` + stylistColumns + ` FROM stylists WHERE id = ?`
	if err := tx.GetContext(ctx, &stylist, query, id); err != nil {
		return nil, translateErr(err, "stylist")
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return &stylist, nil
}
