package models

import "time"

// Relationship เก็บเส้นความสัมพันธ์แบบมีทิศทาง
//   - relation_type = "child"  → MemberID คือลูก, RelatedMemberID คือพ่อ/แม่
//   - relation_type = "spouse" → เก็บแถวเดียวแต่อ่านได้สองทิศทาง
type Relationship struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	MemberID        uint      `json:"member_id" gorm:"not null;index"`
	RelatedMemberID uint      `json:"related_member_id" gorm:"not null;index"`
	RelationType    string    `json:"relation_type" gorm:"size:10;not null"` // "child" | "spouse"
	CreatedAt       time.Time `json:"created_at"`
}

const (
	RelationChild  = "child"
	RelationSpouse = "spouse"
)
