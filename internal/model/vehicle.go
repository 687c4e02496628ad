package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestStatus is the tri-state derived from a vehicle's latest (or per-quarter)
// emission test. There are no other values.
type TestStatus string

const (
	TestStatusPending TestStatus = "pending"
	TestStatusPass    TestStatus = "pass"
	TestStatusFail    TestStatus = "fail"
)

type EngineType string

const (
	EngineTypeGasoline EngineType = "gasoline"
	EngineTypeDiesel   EngineType = "diesel"
)

type Vehicle struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	PlateNumber        string         `gorm:"type:varchar(32);uniqueIndex;not null" json:"plate_number"`
	ChassisNumber      *string        `gorm:"type:varchar(64)" json:"chassis_number,omitempty"`
	RegistrationNumber *string        `gorm:"type:varchar(64)" json:"registration_number,omitempty"`
	DriverName         string         `gorm:"type:varchar(255);not null" json:"driver_name"`
	OfficeName         string         `gorm:"type:varchar(255);not null;index" json:"office_name"`
	VehicleType        string         `gorm:"type:varchar(100);not null" json:"vehicle_type"`
	EngineType         EngineType     `gorm:"type:varchar(32);not null" json:"engine_type"`
	Wheels             int            `gorm:"not null" json:"wheels"`
	ContactNumber      *string        `gorm:"type:varchar(32)" json:"contact_number,omitempty"`
	Remarks            *string        `gorm:"type:text" json:"remarks,omitempty"`
	LatestTestDate     *time.Time     `json:"latest_test_date,omitempty"`
	LatestTestQuarter  *int           `json:"latest_test_quarter,omitempty"`
	LatestTestYear     *int           `json:"latest_test_year,omitempty"`
	LatestTestResult   *bool          `json:"latest_test_result,omitempty"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// LatestStatus derives the tri-state status from the denormalized latest-test
// fields carried on the vehicle row.
func (v *Vehicle) LatestStatus() TestStatus {
	if v.LatestTestResult == nil {
		return TestStatusPending
	}
	if *v.LatestTestResult {
		return TestStatusPass
	}
	return TestStatusFail
}

// VehicleUpdate carries a partial update; nil fields keep their stored values.
// Offline clients queue these against either a server id or a pending-* id.
type VehicleUpdate struct {
	PlateNumber        *string     `json:"plate_number,omitempty"`
	ChassisNumber      *string     `json:"chassis_number,omitempty"`
	RegistrationNumber *string     `json:"registration_number,omitempty"`
	DriverName         *string     `json:"driver_name,omitempty"`
	OfficeName         *string     `json:"office_name,omitempty"`
	VehicleType        *string     `json:"vehicle_type,omitempty"`
	EngineType         *EngineType `json:"engine_type,omitempty"`
	Wheels             *int        `json:"wheels,omitempty"`
	ContactNumber      *string     `json:"contact_number,omitempty"`
	Remarks            *string     `json:"remarks,omitempty"`
}

// Apply overlays the non-nil fields onto a vehicle, leaving everything else
// untouched.
func (u VehicleUpdate) Apply(v *Vehicle) {
	if u.PlateNumber != nil {
		v.PlateNumber = *u.PlateNumber
	}
	if u.ChassisNumber != nil {
		v.ChassisNumber = u.ChassisNumber
	}
	if u.RegistrationNumber != nil {
		v.RegistrationNumber = u.RegistrationNumber
	}
	if u.DriverName != nil {
		v.DriverName = *u.DriverName
	}
	if u.OfficeName != nil {
		v.OfficeName = *u.OfficeName
	}
	if u.VehicleType != nil {
		v.VehicleType = *u.VehicleType
	}
	if u.EngineType != nil {
		v.EngineType = *u.EngineType
	}
	if u.Wheels != nil {
		v.Wheels = *u.Wheels
	}
	if u.ContactNumber != nil {
		v.ContactNumber = u.ContactNumber
	}
	if u.Remarks != nil {
		v.Remarks = u.Remarks
	}
}
