package model

import "time"

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Street      string `gorm:"type:varchar(255);not null;index:idx_addresses_location"`
	HouseNumber string `gorm:"column:house_number;type:varchar(20);not null;index:idx_addresses_location"`
	Postcode    string `gorm:"type:varchar(20);not null;index:idx_addresses_location"`
	City        string `gorm:"type:varchar(100);not null;index:idx_addresses_location"`
	Country     string `gorm:"type:varchar(100);not null;default:Germany"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
