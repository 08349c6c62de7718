package model

import "time"

// ApplicationModel is the GORM-specific struct for the 'applications' table.
// system_type and status are stored as text; the valid value sets live in
// the domain layer, and status intentionally has no transition guard.
type ApplicationModel struct {
	ID             int64         `gorm:"primaryKey;autoIncrement"`
	SystemType     string        `gorm:"column:system_type;type:varchar(50);not null"`
	PlantID        int64         `gorm:"column:plant_id;not null"`
	Plant          *PlantModel   `gorm:"foreignKey:PlantID"`
	SubscriberID   int64         `gorm:"column:subscriber_id;not null"`
	Subscriber     *PersonModel  `gorm:"foreignKey:SubscriberID"`
	OperatorID     *int64        `gorm:"column:operator_id"`
	Operator       *PersonModel  `gorm:"foreignKey:OperatorID"`
	InstallerID    *int64        `gorm:"column:installer_id"`
	Installer      *CompanyModel `gorm:"foreignKey:InstallerID"`
	Status         string        `gorm:"type:varchar(50);not null;default:pending;index:idx_applications_status"`
	SubmissionDate time.Time     `gorm:"column:submission_date;not null;autoCreateTime;index:idx_applications_submission_date"`
	Place          string        `gorm:"type:varchar(255)"`
	SignatureDate  *time.Time    `gorm:"column:signature_date"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ApplicationModel) TableName() string {
	return "applications"
}
