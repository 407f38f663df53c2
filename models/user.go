package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	FullName      string         `gorm:"not null" json:"full_name"`
	Email         string         `gorm:"unique;not null" json:"email"`
	Phone         string         `gorm:"unique;not null" json:"phone"`
	Password      string         `gorm:"not null" json:"-"` // Don't expose password in JSON
	Faculty       string         `json:"faculty"`
	LastLogin     *time.Time     `json:"last_login"`
	Items         []Item         `json:"-" gorm:"foreignKey:ReporterID"`
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
}
