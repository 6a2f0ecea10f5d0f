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

const serviceColumns = `id, name, description, duration_minutes, price, category, active, created_at`

func (r *serviceRepository) Create(ctx context.Context, svc *model.Service) error {
	query := `
		INSERT INTO services (` + serviceColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	svc.ID = uuid.New()
	svc.Active = true
	svc.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		svc.ID,
		svc.Name,
		svc.Description,
		svc.DurationMinutes,
		svc.Price,
		svc.Category,
		svc.Active,
		svc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", translateErr(err, "service"))
	}
	return nil
}

func (r *serviceRepository) Get(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	var svc model.Service
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = ?`
	if err := r.db.GetContext(ctx, &svc, query, id); err != nil {
		return nil, translateErr(err, "service")
	}
	return &svc, nil
}

func (r *serviceRepository) List(ctx context.Context, activeOnly bool) ([]*model.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services`
	if activeOnly {
		query += ` WHERE active = 1`
	}
	query += ` ORDER BY name`

	var services []*model.Service
	if err := r.db.SelectContext(ctx, &services, query); err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (r *serviceRepository) ListByCategory(ctx context.Context, category string) ([]*model.Service, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE category = ? COLLATE NOCASE
		ORDER BY name
	`
	var services []*model.Service
	if err := r.db.SelectContext(ctx, &services, query, category); err != nil {
		return nil, fmt.Errorf("failed to list services by category: %w", err)
	}
	return services, nil
}

func (r *serviceRepository) SearchByName(ctx context.Context, name string) ([]*model.Service, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE name LIKE ? COLLATE NOCASE
		ORDER BY name
	`
	var services []*model.Service
	if err := r.db.SelectContext(ctx, &services, query, "%"+name+"%"); err != nil {
		return nil, fmt.Errorf("failed to search services: %w", err)
	}
	return services, nil
}

func (r *serviceRepository) Update(ctx context.Context, id uuid.UUID, upd *model.UpdateServiceRequest) (*model.Service, error) {
	sets := make([]string, 0, 5)
	args := make([]interface{}, 0, 6)

	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *upd.Description)
	}
	if upd.DurationMinutes != nil {
		sets = append(sets, "duration_minutes = ?")
		args = append(args, *upd.DurationMinutes)
	}
	if upd.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, *upd.Price)
	}
	if upd.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *upd.Category)
	}

	if len(sets) == 0 {
		return r.Get(ctx, id)
	}

	query := "UPDATE services SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update service: %w", translateErr(err, "service"))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, apperrors.NotFound("service", nil)
	}

	return r.Get(ctx, id)
}

func (r *serviceRepository) SetActive(ctx context.Context, id uuid.UUID, active bool, now time.Time) (*model.Service, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if !active {
		var pending int
		err := tx.GetContext(ctx, &pending, `
			SELECT COUNT(*) FROM appointments
			WHERE service_id = ? AND status = ? AND start_time > ?
		`, id, model.AppointmentStatusScheduled, now.UTC())
		if err != nil {
			return nil, fmt.Errorf("failed to count pending appointments: %w", err)
		}
		if pending > 0 {
			return nil, apperrors.ReferentialIntegrity(
				"service has upcoming scheduled appointments", nil)
		}
	}

	result, err := tx.ExecContext(ctx, `UPDATE services SET active = ? WHERE id = ?`, active, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, apperrors.NotFound("service", nil)
	}

	var svc model.Service
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = ?`
	if err := tx.GetContext(ctx, &svc, query, id); err != nil {
		return nil, translateErr(err, "service")
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return &svc, nil
}
