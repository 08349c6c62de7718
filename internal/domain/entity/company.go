package entity

import "time"

// Company represents the installer performing the physical installation.
// The registration number is unique across all companies when present.
type Company struct {
	ID                 int64     // Database-generated identifier.
	Name               string    // Company name.
	RegistrationNumber string    // Optional commercial register number, unique when set.
	Phone              string    // Optional phone number.
	Email              string    // Optional email address.
	AddressID          *int64    // Optional reference to an Address.
	CreatedAt          time.Time // Timestamp of when this company was created.
	UpdatedAt          time.Time // Timestamp of the last modification.
}
