package model

import (
	"time"

	"github.com/google/uuid"
)

// Client is a salon customer.
type Client struct {
	ID        uuid.UUID `db:"id" json:"id"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	Phone     string    `db:"phone" json:"phone"`
	Email     *string   `db:"email" json:"email,omitempty"`
	Notes     string    `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}

func (c *Client) FormattedPhone() string {
	return formatPhone(c.Phone)
}

type CreateClientRequest struct {
	FirstName string  `json:"first_name" binding:"required,max=50"`
	LastName  string  `json:"last_name" binding:"required,max=50"`
	Phone     string  `json:"phone" binding:"required,max=20"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Notes     string  `json:"notes" binding:"max=2000"`
}

// UpdateClientRequest carries optional field changes; nil means leave unchanged.
type UpdateClientRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=50"`
	LastName  *string `json:"last_name" binding:"omitempty,max=50"`
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Notes     *string `json:"notes" binding:"omitempty,max=2000"`
}
