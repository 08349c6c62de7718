// Package entity contains the core business objects of the project.
package entity

import "time"

// DefaultCountry is assumed whenever a submission omits the country field.
const DefaultCountry = "Germany"

// Address is a plain postal address. Addresses are created fresh per
// submission and never deduplicated; Person, Company and Plant rows
// reference them by id.
type Address struct {
	ID          int64     // Database-generated identifier.
	Street      string    // Street name.
	HouseNumber string    // House number, kept as text ("12a").
	Postcode    string    // Postal code.
	City        string    // City name, also the location fallback for listings.
	Country     string    // Country, defaults to "Germany".
	CreatedAt   time.Time // Timestamp of when this address was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
