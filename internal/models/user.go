package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an API account allowed through HTTP Basic authentication.
type User struct {
	ID        uuid.UUID `gorm:"column:id;type:varchar(36);primaryKey"`
	Username  string    `gorm:"column:username;type:varchar(100);uniqueIndex;not null"`
	Password  string    `gorm:"column:password;type:varchar(255);not null"` // bcrypt hash
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string { return "users" }
