package models

import "time"

type Admin struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Username  string     `json:"username" gorm:"uniqueIndex;size:60;not null"`
	Password  string     `json:"-" gorm:"not null"` // bcrypt hash
	Email     string     `json:"email" gorm:"size:100"`
	Role      string     `json:"role" gorm:"size:20;not null;default:admin"`
	IsActive  bool       `json:"is_active" gorm:"not null"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
