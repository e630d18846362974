package repository

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(database *sql.DB) *JobRepository {
	return &JobRepository{DB: database}
}

// GetStaleUnpaidGroupIDs finds active online bookings still unpaid and
// created before the cutoff. Onsite bookings stay pending until arrival
// and are never returned here.
func (r *JobRepository) GetStaleUnpaidGroupIDs(before time.Time) ([]int, error) {
	query := `
		SELECT id FROM reservation_groups
		WHERE status = 'active'
		  AND payment_method = 'online'
		  AND payment_status = 'pending'
		  AND created_at < $1`
	rows, err := r.DB.Query(query, before)
	if err != nil {
		return nil, fmt.Errorf("error querying stale unpaid groups: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning group ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return ids, nil
}

// CancelGroups marks a batch of reservation groups as cancelled, freeing
// their resources for new bookings. Rows are kept for reporting.
func (r *JobRepository) CancelGroups(ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE reservation_groups SET status = 'cancelled', updated_at = NOW() WHERE id = ANY($1)`
	result, err := r.DB.Exec(query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("error cancelling reservation groups: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Could not get rows affected: %v", err)
	} else {
		log.Printf("Cancelled %d reservation groups", rowsAffected)
	}
	return nil
}
