package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

type Role string

const (
	RoleAdmin              Role = "admin"
	RoleAirQuality         Role = "air_quality"
	RoleTreeManagement     Role = "tree_management"
	RoleUrbanGreening      Role = "urban_greening"
	RoleGovernmentEmission Role = "government_emission"
)

type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FullName      string    `gorm:"type:varchar(255)" json:"full_name"`
	PasswordHash  string    `gorm:"type:text;not null" json:"-"`
	Roles         RoleList  `gorm:"type:text[]" json:"roles"`
	IsSuperAdmin  bool      `gorm:"not null;default:false" json:"is_super_admin"`
	EmailVerified bool      `gorm:"not null;default:false" json:"email_verified"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// RoleList is stored as a Postgres text[] literal.
type RoleList []Role

func (RoleList) GormDataType() string {
	return "text[]"
}

func (RoleList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return "text[]"
}

func (l RoleList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "{}", nil
	}
	parts := make([]string, len(l))
	for i, r := range l {
		parts[i] = string(r)
	}
	return "{" + strings.Join(parts, ",") + "}", nil
}

func (l *RoleList) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("unsupported role list type %T", value)
	}
	raw = strings.Trim(raw, "{}")
	if raw == "" {
		*l = RoleList{}
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make(RoleList, 0, len(parts))
	for _, p := range parts {
		out = append(out, Role(strings.Trim(strings.TrimSpace(p), `"`)))
	}
	*l = out
	return nil
}

// EmailVerification holds a one-time code issued at sign-up or on resend.
type EmailVerification struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Code       string     `gorm:"type:varchar(12);not null" json:"-"`
	ExpiresAt  time.Time  `gorm:"not null" json:"expires_at"`
	ConsumedAt *time.Time `json:"consumed_at,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (EmailVerification) TableName() string {
	return "email_verifications"
}

func (e *EmailVerification) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
