package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestSchedule is conceptually one per (year, quarter); the store does not
// enforce uniqueness, matching the upstream behaviour.
type TestSchedule struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Year              int        `gorm:"not null;index:idx_test_schedules_year_quarter" json:"year"`
	Quarter           int        `gorm:"not null;index:idx_test_schedules_year_quarter" json:"quarter"`
	AssignedPersonnel string     `gorm:"type:varchar(255);not null" json:"assigned_personnel"`
	Location          string     `gorm:"type:varchar(255);not null" json:"location"`
	ConductedOn       *time.Time `json:"conducted_on,omitempty"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TestSchedule) TableName() string {
	return "emission_test_schedules"
}

func (s *TestSchedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
