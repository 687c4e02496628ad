package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Office owns vehicles by name match, not by foreign key. The denormalization
// is carried through from the upstream system: read paths group on
// vehicles.office_name.
type Office struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Address       *string   `gorm:"type:text" json:"address,omitempty"`
	ContactNumber *string   `gorm:"type:varchar(32)" json:"contact_number,omitempty"`
	Email         *string   `gorm:"type:varchar(255)" json:"email,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Office) TableName() string {
	return "offices"
}

func (o *Office) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
