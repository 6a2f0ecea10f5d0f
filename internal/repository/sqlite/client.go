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

func (r *clientRepository) Create(ctx context.Context, client *model.Client) error {
	query := `
		INSERT INTO clients (id, first_name, last_name, phone, email, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	client.ID = uuid.New()
	client.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		client.ID,
		client.FirstName,
		client.LastName,
		client.Phone,
		client.Email,
		client.Notes,
		client.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", translateErr(err, "client"))
	}
	return nil
}

func (r *clientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	query := `
		SELECT id, first_name, last_name, phone, email, notes, created_at
		FROM clients
		WHERE id = ?
	`
	var client model.Client
	if err := r.db.GetContext(ctx, &client, query, id); err != nil {
		return nil, translateErr(err, "client")
	}
	return &client, nil
}

func (r *clientRepository) GetByPhone(ctx context.Context, phone string) (*model.Client, error) {
	query := `
		SELECT id, first_name, last_name, phone, email, notes, created_at
		FROM clients
		WHERE phone = ?
	`
	var client model.Client
	if err := r.db.GetContext(ctx, &client, query, phone); err != nil {
		return nil, translateErr(err, "client")
	}
	return &client, nil
}

func (r *clientRepository) SearchByName(ctx context.Context, name string) ([]*model.Client, error) {
	query := `
		SELECT id, first_name, last_name, phone, email, notes, created_at
		FROM clients
		WHERE first_name LIKE ? COLLATE NOCASE OR last_name LIKE ? COLLATE NOCASE
		ORDER BY last_name, first_name
	`
	pattern := "%" + name + "%"
	var clients []*model.Client
	if err := r.db.SelectContext(ctx, &clients, query, pattern, pattern); err != nil {
		return nil, fmt.Errorf("failed to search clients: %w", err)
	}
	return clients, nil
}

func (r *clientRepository) List(ctx context.Context) ([]*model.Client, error) {
	query := `
		SELECT id, first_name, last_name, phone, email, notes, created_at
		FROM clients
		ORDER BY last_name, first_name
	`
	var clients []*model.Client
	if err := r.db.SelectContext(ctx, &clients, query); err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (r *clientRepository) Update(ctx context.Context, id uuid.UUID, upd *model.UpdateClientRequest) (*model.Client, error) {
	sets := make([]string, 0, 5)
	args := make([]interface{}, 0, 6)

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
	if upd.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *upd.Notes)
	}

	if len(sets) == 0 {
		return r.Get(ctx, id)
	}

	query := "UPDATE clients SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update client: %w", translateErr(err, "client"))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, apperrors.NotFound("client", nil)
	}

	return r.Get(ctx, id)
}

func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return translateErr(err, "client")
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("client", nil)
	}
	return nil
}
