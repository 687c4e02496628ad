package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmissionTest struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	VehicleID        uuid.UUID `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	TestDate         time.Time `gorm:"not null" json:"test_date"`
	Quarter          int       `gorm:"not null;index" json:"quarter"`
	Year             int       `gorm:"not null;index" json:"year"`
	Result           bool      `gorm:"not null" json:"result"`
	COLevel          *float64  `gorm:"column:co_level" json:"co_level,omitempty"`
	HCLevel          *float64  `gorm:"column:hc_level" json:"hc_level,omitempty"`
	OpacimeterResult *float64  `json:"opacimeter_result,omitempty"`
	Technician       *string   `gorm:"type:varchar(255)" json:"technician,omitempty"`
	TestingCenter    *string   `gorm:"type:varchar(255)" json:"testing_center,omitempty"`
	CreatedBy        uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EmissionTest) TableName() string {
	return "emission_tests"
}

func (t *EmissionTest) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// StatusForTest maps a quarter slot to its display status. Exhaustive: a nil
// slot is pending, otherwise the boolean result decides pass or fail.
func StatusForTest(t *EmissionTest) TestStatus {
	if t == nil {
		return TestStatusPending
	}
	if t.Result {
		return TestStatusPass
	}
	return TestStatusFail
}
