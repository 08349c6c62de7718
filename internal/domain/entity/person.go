package entity

import (
	"strings"
	"time"
)

// Person is a natural person attached to an application. The same entity
// serves three roles: subscriber, operator and plant contact person. Each
// role is stored as its own row; an operator may instead alias the
// subscriber's id when both parties are identical.
type Person struct {
	ID        int64     // Database-generated identifier.
	FirstName string    // Given name.
	LastName  string    // Family name.
	Phone     string    // Optional phone number.
	Email     string    // Optional email address.
	AddressID int64     // Required reference to an already-persisted Address.
	CreatedAt time.Time // Timestamp of when this person was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// FullName returns "first last" with surrounding whitespace trimmed.
// Both parts empty yields the empty string.
func (p *Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
