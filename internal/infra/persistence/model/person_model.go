package model

import "time"

// PersonModel is the GORM-specific struct for the 'persons' table.
// One row per role: subscriber, operator and plant contact are separate rows
// even when their data overlaps.
type PersonModel struct {
	ID        int64         `gorm:"primaryKey;autoIncrement"`
	FirstName string        `gorm:"column:first_name;type:varchar(100);not null"`
	LastName  string        `gorm:"column:last_name;type:varchar(100);not null"`
	Phone     string        `gorm:"type:varchar(50)"`
	Email     string        `gorm:"type:varchar(255)"`
	AddressID int64         `gorm:"column:address_id;not null"`
	Address   *AddressModel `gorm:"foreignKey:AddressID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PersonModel) TableName() string {
	return "persons"
}
