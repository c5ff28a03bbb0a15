package models

import "time"

// GuestbookMessage ข้อความสมุดเยี่ยม ต้องผ่านการอนุมัติก่อนจึงจะแสดงหน้าเว็บ
type GuestbookMessage struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	AuthorName   string     `json:"author_name" gorm:"size:50"`
	Content      string     `json:"content" gorm:"type:text;not null"`
	MemberID     *uint      `json:"member_id" gorm:"index"` // มีค่าเมื่อสมาชิกล็อกอินโพสต์
	IPAddress    string     `json:"ip_address" gorm:"size:45"`
	IsApproved   bool       `json:"is_approved" gorm:"not null;default:false"`
	ReplyContent string     `json:"reply_content" gorm:"type:text"`
	ReplyAt      *time.Time `json:"reply_at"`
	CreatedAt    time.Time  `json:"created_at"`
}
