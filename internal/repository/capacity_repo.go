package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"balneario/internal/db"
)

type CapacityRepository struct {
	DB *sql.DB
}

func NewCapacityRepository(database *sql.DB) *CapacityRepository {
	return &CapacityRepository{DB: database}
}

func (r *CapacityRepository) GetCapacities(establishmentID int) ([]db.EstablishmentService, error) {
	rows, err := r.DB.Query(`
		SELECT establishment_id, service_type, offered, capacity
		FROM establishment_services
		WHERE establishment_id = $1
		ORDER BY service_type`, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("error querying establishment services: %w", err)
	}
	defer rows.Close()

	var services []db.EstablishmentService
	for rows.Next() {
		var s db.EstablishmentService
		if err := rows.Scan(&s.EstablishmentID, &s.ServiceType, &s.Offered, &s.Capacity); err != nil {
			return nil, fmt.Errorf("error scanning establishment service: %w", err)
		}
		services = append(services, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating establishment services: %w", err)
	}
	return services, nil
}

func (r *CapacityRepository) UpdateCapacity(establishmentID int, serviceType string, offered bool, capacity int) error {
	_, err := r.DB.Exec(`
		INSERT INTO establishment_services (establishment_id, service_type, offered, capacity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (establishment_id, service_type)
		DO UPDATE SET offered = $3, capacity = $4`,
		establishmentID, serviceType, offered, capacity)
	if err != nil {
		return fmt.Errorf("error updating service %s for establishment %d: %w", serviceType, establishmentID, err)
	}
	return nil
}

func (r *CapacityRepository) GetEstablishment(id int) (*db.Establishment, error) {
	var e db.Establishment
	err := r.DB.QueryRow(`SELECT id, name FROM establishments WHERE id = $1`, id).Scan(&e.ID, &e.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying establishment %d: %w", id, err)
	}
	return &e, nil
}
