package models

import "time"

type Member struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	Name       string     `json:"name" gorm:"size:50;not null"`
	Avatar     string     `json:"avatar" gorm:"size:255"`
	BirthDate  *time.Time `json:"birth_date"`
	DeathDate  *time.Time `json:"death_date"`
	Bio        string     `json:"bio" gorm:"type:text"`
	Generation int        `json:"generation" gorm:"not null;default:1"` // รุ่น (1 = ต้นตระกูล)
	Gender     string     `json:"gender" gorm:"size:10"`
	Phone      string     `json:"phone" gorm:"size:20"`
	Email      string     `json:"email" gorm:"size:100"`
	Address    string     `json:"address" gorm:"size:255"`
	IsPublic   bool       `json:"is_public" gorm:"not null"` // แสดงบนหน้าเว็บหรือไม่
	SortOrder  int        `json:"sort_order" gorm:"not null;default:0"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
