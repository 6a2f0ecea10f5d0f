package sqlite

import (
	"github.com/jmoiron/sqlx"

	"github.com/Benjakusa/salonpro-manager/internal/repository"
)

type clientRepository struct {
	db *sqlx.DB
}

type stylistRepository struct {
	db *sqlx.DB
}

type serviceRepository struct {
	db *sqlx.DB
}

type appointmentRepository struct {
	db *sqlx.DB
}

func NewClientRepository(db *sqlx.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func NewStylistRepository(db *sqlx.DB) repository.StylistRepository {
	return &stylistRepository{db: db}
}

func NewServiceRepository(db *sqlx.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}
