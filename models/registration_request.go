package models

import "time"

// RegistrationRequest คำขอสมัครสมาชิก รออนุมัติจากแอดมิน
// สถานะเปลี่ยนได้ทางเดียว: pending → approved | rejected
type RegistrationRequest struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	Username   string     `json:"username" gorm:"size:60;not null;index"`
	Password   string     `json:"-" gorm:"not null"` // bcrypt hash ตั้งแต่ตอนยื่นคำขอ
	Email      string     `json:"email" gorm:"size:100"`
	RealName   string     `json:"real_name" gorm:"size:50"`
	Phone      string     `json:"phone" gorm:"size:20"`
	Reason     string     `json:"reason" gorm:"type:text"`
	Status     string     `json:"status" gorm:"size:10;not null;default:pending;index"` // pending|approved|rejected
	ReviewNote string     `json:"review_note" gorm:"size:255"`
	ReviewedBy *uint      `json:"reviewed_by"`
	ReviewedAt *time.Time `json:"reviewed_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

const (
	RegistrationPending  = "pending"
	RegistrationApproved = "approved"
	RegistrationRejected = "rejected"
)
