// Package model contains the GORM-specific persistence structs.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). The unique indexes on email and phone are the actual
// enforcement mechanism for duplicate prevention; application-level
// existence checks are a fast path only.
type AccountModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name               string     `gorm:"type:varchar(100);not null"`
	Email              string     `gorm:"type:varchar(255);unique;not null"`
	Phone              string     `gorm:"type:varchar(20);unique;not null"`
	Title              string     `gorm:"type:varchar(150)"`
	Bio                string     `gorm:"type:text"`
	AvatarURL          string     `gorm:"type:text"`
	PasswordHash       string     `gorm:"type:varchar(255);not null"`
	ResetCode          *string    `gorm:"type:varchar(6)"`
	ResetCodeExpiresAt *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Notifications []NotificationModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
