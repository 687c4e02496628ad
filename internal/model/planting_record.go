package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlantingType string

const (
	PlantingTypeTree       PlantingType = "tree"
	PlantingTypeOrnamental PlantingType = "ornamental"
	PlantingTypeSeedling   PlantingType = "seedling"
)

// PlantingRecord belongs to the urban-greening division.
type PlantingRecord struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	RecordType   PlantingType `gorm:"type:varchar(20);not null" json:"record_type"`
	Species      string       `gorm:"type:varchar(255);not null" json:"species"`
	Quantity     int          `gorm:"not null;default:1" json:"quantity"`
	Location     string       `gorm:"type:varchar(255);not null" json:"location"`
	PlantedAt    time.Time    `gorm:"not null" json:"planted_at"`
	MaintainedBy *string      `gorm:"type:varchar(255)" json:"maintained_by,omitempty"`
	RecordedBy   uuid.UUID    `gorm:"type:uuid;not null" json:"recorded_by"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PlantingRecord) TableName() string {
	return "planting_records"
}

func (p *PlantingRecord) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
