package entity

import "time"

// Plant is the physical energy installation: its site address, an optional
// on-site contact person and optional commissioning dates. The contact
// person, when present, shares the plant's address row.
type Plant struct {
	ID                       int64      // Database-generated identifier.
	AddressID                int64      // Required reference to the site Address.
	ContactPersonID          *int64     // Optional reference to the on-site contact Person.
	PlannedCommissioningDate *time.Time // Optional planned commissioning date.
	ActualCommissioningDate  *time.Time // Optional actual commissioning date.
	CreatedAt                time.Time  // Timestamp of when this plant was created.
	UpdatedAt                time.Time  // Timestamp of the last modification.
}
