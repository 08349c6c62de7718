package model

import "time"

// PlantModel is the GORM-specific struct for the 'plants' table.
type PlantModel struct {
	ID                       int64         `gorm:"primaryKey;autoIncrement"`
	AddressID                int64         `gorm:"column:address_id;not null"`
	Address                  *AddressModel `gorm:"foreignKey:AddressID"`
	ContactPersonID          *int64        `gorm:"column:contact_person_id"`
	ContactPerson            *PersonModel  `gorm:"foreignKey:ContactPersonID"`
	PlannedCommissioningDate *time.Time    `gorm:"column:planned_commissioning_date"`
	ActualCommissioningDate  *time.Time    `gorm:"column:actual_commissioning_date"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlantModel) TableName() string {
	return "plants"
}
