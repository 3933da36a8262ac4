package models

import "time"

// AuditFields holds the creation columns shared by ledger tables.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at"`
	CreatedBy string    `db:"created_by"`
}
