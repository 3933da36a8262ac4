package domain

import "time"

// AuditFields holds creation audit information for immutable ledger records.
// CreatedBy is an opaque caller reference (user or flow), never a pointer into another subsystem.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}
