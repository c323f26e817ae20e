// Package models holds the database-facing representations of the domain
// entities. Repositories scan into these and convert to domain types via
// internal/utils/mapping.
package models

import "time"

// AuditFields holds standard audit columns shared by all tables.
type AuditFields struct {
	CreatedAt     time.Time
	CreatedBy     string
	LastUpdatedAt time.Time
	LastUpdatedBy string
}
