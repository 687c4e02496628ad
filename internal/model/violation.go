package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ViolationStatus string

const (
	ViolationStatusPending   ViolationStatus = "PENDING"
	ViolationStatusPaid      ViolationStatus = "PAID"
	ViolationStatusContested ViolationStatus = "CONTESTED"
	ViolationStatusDismissed ViolationStatus = "DISMISSED"
)

// AirQualityViolation is an apprehension record for the air-quality division
// (smoke belching and related ordinance violations).
type AirQualityViolation struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	PlateNumber     string          `gorm:"type:varchar(32);not null;index" json:"plate_number"`
	DriverName      *string         `gorm:"type:varchar(255)" json:"driver_name,omitempty"`
	OrdinanceLevel  int             `gorm:"not null;default:1" json:"ordinance_level"`
	SmokeBelching   bool            `gorm:"not null;default:true" json:"smoke_belching"`
	ApprehendedAt   time.Time       `gorm:"not null;index" json:"apprehended_at"`
	Location        *string         `gorm:"type:varchar(255)" json:"location,omitempty"`
	Status          ViolationStatus `gorm:"type:varchar(20);not null;default:PENDING" json:"status"`
	FineAmount      *float64        `json:"fine_amount,omitempty"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	RecordedBy      uuid.UUID       `gorm:"type:uuid;not null" json:"recorded_by"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AirQualityViolation) TableName() string {
	return "air_quality_violations"
}

func (v *AirQualityViolation) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
