package database

import (
	"fmt"
	"log"
	"time"
)

// RetentionHours is how long discoveries are kept before deletion, regardless
// of whether they were notified. Fixed by data-handling policy.
const RetentionHours = 48

// PurgeOldDiscoveries deletes all discoveries first seen more than the given
// number of hours ago.
func (d *DB) PurgeOldDiscoveries(hours int) error {
	cutoff := time.Now().Add(-time.Duration(hours) * time.Hour).Unix()

	res, err := d.conn.Exec(`DELETE FROM discoveries WHERE discovered_at < ?`, cutoff)
	if err != nil {
		return fmt.Errorf("failed to purge old discoveries: %w", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected by purge: %w", err)
	}
	if rowsAffected > 0 {
		log.Printf("Purged %d discoveries older than %d hours", rowsAffected, hours)
	}
	return nil
}
