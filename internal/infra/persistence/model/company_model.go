package model

import "time"

// CompanyModel is the GORM-specific struct for the 'companies' table.
// The registration number carries a unique index; NULL rows are exempt, so
// companies without one can coexist.
type CompanyModel struct {
	ID                 int64         `gorm:"primaryKey;autoIncrement"`
	Name               string        `gorm:"type:varchar(255);not null;index:idx_companies_name"`
	RegistrationNumber *string       `gorm:"column:registration_number;type:varchar(100);uniqueIndex:idx_companies_registration_number"`
	Phone              string        `gorm:"type:varchar(50)"`
	Email              string        `gorm:"type:varchar(255)"`
	AddressID          *int64        `gorm:"column:address_id"`
	Address            *AddressModel `gorm:"foreignKey:AddressID"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (CompanyModel) TableName() string {
	return "companies"
}
