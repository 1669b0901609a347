package entity

import (
	"time"

	"gorm.io/gorm"
)

type Chat struct {
	Base
	Name string
}

// ChatMember is the authorization source for routing chat events. The
// realtime layer only reads it; membership changes happen elsewhere.
type ChatMember struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	ChatID string `gorm:"primaryKey"`
	Chat   Chat   `gorm:"foreignKey:ChatID"`

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`
}
