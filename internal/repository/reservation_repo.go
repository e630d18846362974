package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"balneario/internal/db"
)

type ReservationRepository struct {
	DB *sql.DB
}

func NewReservationRepository(database *sql.DB) *ReservationRepository {
	return &ReservationRepository{DB: database}
}

const groupColumns = `
	id, code, establishment_id, service_type, resource_number,
	start_date, end_date, status,
	client_id, client_name, client_email, client_phone,
	pool_adults_count, pool_children_count, pool_adult_price_per_day, pool_child_price_per_day,
	daily_price, total_price,
	payment_method, payment_status, stripe_session_id,
	created_at, updated_at`

func scanGroup(row interface{ Scan(...interface{}) error }) (*db.ReservationGroup, error) {
	var g db.ReservationGroup
	err := row.Scan(
		&g.ID, &g.Code, &g.EstablishmentID, &g.ServiceType, &g.ResourceNumber,
		&g.StartDate, &g.EndDate, &g.Status,
		&g.ClientID, &g.ClientName, &g.ClientEmail, &g.ClientPhone,
		&g.PoolAdultsCount, &g.PoolChildrenCount, &g.PoolAdultPricePerDay, &g.PoolChildPricePerDay,
		&g.DailyPrice, &g.TotalPrice,
		&g.PaymentMethod, &g.PaymentStatus, &g.StripeSessionID,
		&g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *ReservationRepository) CreateGroup(g *db.ReservationGroup) error {
	query := `
		INSERT INTO reservation_groups
		(code, establishment_id, service_type, resource_number, start_date, end_date, status,
		 client_id, client_name, client_email, client_phone,
		 pool_adults_count, pool_children_count, pool_adult_price_per_day, pool_child_price_per_day,
		 daily_price, total_price, payment_method, payment_status, stripe_session_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query,
		g.Code,
		g.EstablishmentID,
		g.ServiceType,
		g.ResourceNumber,
		g.StartDate,
		g.EndDate,
		g.Status,
		g.ClientID,
		g.ClientName,
		g.ClientEmail,
		g.ClientPhone,
		g.PoolAdultsCount,
		g.PoolChildrenCount,
		g.PoolAdultPricePerDay,
		g.PoolChildPricePerDay,
		g.DailyPrice,
		g.TotalPrice,
		g.PaymentMethod,
		g.PaymentStatus,
		g.StripeSessionID,
		g.CreatedAt,
		g.UpdatedAt,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
}

func (r *ReservationRepository) UpdateGroup(g *db.ReservationGroup) error {
	query := `
		UPDATE reservation_groups
		SET service_type = $2, resource_number = $3, start_date = $4, end_date = $5,
		    client_id = $6, client_name = $7, client_email = $8, client_phone = $9,
		    pool_adults_count = $10, pool_children_count = $11,
		    pool_adult_price_per_day = $12, pool_child_price_per_day = $13,
		    daily_price = $14, total_price = $15, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`
	return r.DB.QueryRow(query,
		g.ID,
		g.ServiceType,
		g.ResourceNumber,
		g.StartDate,
		g.EndDate,
		g.ClientID,
		g.ClientName,
		g.ClientEmail,
		g.ClientPhone,
		g.PoolAdultsCount,
		g.PoolChildrenCount,
		g.PoolAdultPricePerDay,
		g.PoolChildPricePerDay,
		g.DailyPrice,
		g.TotalPrice,
	).Scan(&g.UpdatedAt)
}

func (r *ReservationRepository) UpdateGroupStatus(id int, status string) error {
	_, err := r.DB.Exec(`UPDATE reservation_groups SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("error updating status for group %d: %w", id, err)
	}
	return nil
}

func (r *ReservationRepository) UpdatePaymentStatusBySessionID(sessionID, paymentStatus string) error {
	res, err := r.DB.Exec(
		`UPDATE reservation_groups SET payment_status = $2, updated_at = NOW() WHERE stripe_session_id = $1`,
		sessionID, paymentStatus,
	)
	if err != nil {
		return fmt.Errorf("error updating payment status for session %s: %w", sessionID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("no reservation group found for session %s", sessionID)
	}
	return nil
}

func (r *ReservationRepository) GetGroupByCode(establishmentID int, code string) (*db.ReservationGroup, error) {
	query := `SELECT ` + groupColumns + ` FROM reservation_groups WHERE establishment_id = $1 AND code = $2`
	g, err := scanGroup(r.DB.QueryRow(query, establishmentID, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying reservation group %s: %w", code, err)
	}
	return g, nil
}

func (r *ReservationRepository) GetGroupByStripeSessionID(sessionID string) (*db.ReservationGroup, error) {
	query := `SELECT ` + groupColumns + ` FROM reservation_groups WHERE stripe_session_id = $1`
	g, err := scanGroup(r.DB.QueryRow(query, sessionID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying reservation group for session %s: %w", sessionID, err)
	}
	return g, nil
}

// ListActiveGroupsForResource returns the active groups holding one
// resource unit whose date range overlaps [from, to]. Both ranges are
// closed, so the comparison is inclusive on both ends.
func (r *ReservationRepository) ListActiveGroupsForResource(establishmentID int, serviceType string, resourceNumber int, from, to time.Time) ([]db.ReservationGroup, error) {
	query := `
		SELECT ` + groupColumns + `
		FROM reservation_groups
		WHERE establishment_id = $1
		  AND service_type = $2
		  AND resource_number = $3
		  AND status = 'active'
		  AND start_date <= $5
		  AND end_date >= $4
		ORDER BY start_date`
	return r.listGroups(query, establishmentID, serviceType, resourceNumber, from, to)
}

// ListActiveGroupsOverlapping returns every active group of the
// establishment overlapping [from, to], optionally narrowed to one service.
func (r *ReservationRepository) ListActiveGroupsOverlapping(establishmentID int, serviceType string, from, to time.Time) ([]db.ReservationGroup, error) {
	query := `
		SELECT ` + groupColumns + `
		FROM reservation_groups
		WHERE establishment_id = $1
		  AND status = 'active'
		  AND start_date <= $3
		  AND end_date >= $2`
	args := []interface{}{establishmentID, from, to}
	if serviceType != "" {
		query += ` AND service_type = $4`
		args = append(args, serviceType)
	}
	query += ` ORDER BY start_date`
	return r.listGroups(query, args...)
}

// ListGroups filters by service type, a single date the range must cover,
// and status. Empty filters are ignored.
func (r *ReservationRepository) ListGroups(establishmentID int, serviceType, status string, date *time.Time) ([]db.ReservationGroup, error) {
	query := `SELECT ` + groupColumns + ` FROM reservation_groups WHERE establishment_id = $1`
	args := []interface{}{establishmentID}
	idx := 2

	if serviceType != "" {
		query += fmt.Sprintf(" AND service_type = $%d", idx)
		args = append(args, serviceType)
		idx++
	}
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, status)
		idx++
	}
	if date != nil {
		query += fmt.Sprintf(" AND start_date <= $%d AND end_date >= $%d", idx, idx)
		args = append(args, *date)
		idx++
	}
	query += " ORDER BY start_date DESC"
	return r.listGroups(query, args...)
}

func (r *ReservationRepository) listGroups(query string, args ...interface{}) ([]db.ReservationGroup, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying reservation groups: %w", err)
	}
	defer rows.Close()

	var groups []db.ReservationGroup
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning reservation group: %w", err)
		}
		groups = append(groups, *g)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating reservation groups: %w", err)
	}
	return groups, nil
}
