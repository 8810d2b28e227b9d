package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
}

// UserProfile carries the coin balance and the saved payment/delivery details.
// Coins are only ever changed through signed deltas applied in SQL; the column
// carries a CHECK so a debit can never drive the balance below zero.
type UserProfile struct {
	ID             uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Coins          int            `gorm:"not null;default:0;check:coins >= 0" json:"coins"`
	CardholderName string         `gorm:"size:100" json:"cardholder_name"`
	CardLast4      string         `gorm:"size:4" json:"card_last4"`
	Address        string         `gorm:"size:255" json:"address"`
	Zip            string         `gorm:"size:10" json:"zip"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
