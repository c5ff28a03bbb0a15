package models

import "time"

type Announcement struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"size:200;not null"`
	Content     string     `json:"content" gorm:"type:text"`
	IsPinned    bool       `json:"is_pinned" gorm:"not null;default:false"`
	IsPublished bool       `json:"is_published" gorm:"not null"`
	PublishAt   *time.Time `json:"publish_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
