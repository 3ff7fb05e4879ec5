// file: internals/features/school/results/service/reference.go
package service

import (
	"fmt"

	"gorm.io/gorm"
)

// nextResultRef draws the next value of the per-year counter and formats the
// human reference. Runs inside the create transaction so a failed insert
// still burns the sequence number (documented: draft creation is not
// idempotent-retry safe).
func nextResultRef(tx *gorm.DB, year int) (string, error) {
	key := fmt.Sprintf("result_%d", year)
	var n int64
	err := tx.Raw(`
		INSERT INTO result_counters (result_counter_key, result_counter_value)
		VALUES (?, 1)
		ON CONFLICT (result_counter_key) DO UPDATE
		SET result_counter_value = result_counters.result_counter_value + 1
		RETURNING result_counter_value
	`, key).Scan(&n).Error
	if err != nil {
		return "", Transient("reference generation", err)
	}
	return FormatResultRef(year, n), nil
}

// FormatResultRef renders RES-YYYY-NNNNN (five digits, zero-padded; wider
// sequences keep all their digits).
func FormatResultRef(year int, seq int64) string {
	return fmt.Sprintf("RES-%d-%05d", year, seq)
}
