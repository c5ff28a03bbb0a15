package models

import "time"

// MemberUser บัญชีเข้าสู่ระบบของสมาชิก (หนึ่งบัญชีต่อหนึ่งสมาชิก)
type MemberUser struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	MemberID  uint       `json:"member_id" gorm:"uniqueIndex;not null"`
	Username  string     `json:"username" gorm:"uniqueIndex;size:60;not null"`
	Password  string     `json:"-" gorm:"not null"` // bcrypt hash
	Email     string     `json:"email" gorm:"size:100"`
	IsActive  bool       `json:"is_active" gorm:"not null"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
