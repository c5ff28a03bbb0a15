package models

import "time"

type Article struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"size:200;not null"`
	Content     string     `json:"content" gorm:"type:text"`
	CoverImage  string     `json:"cover_image" gorm:"size:255"`
	Summary     string     `json:"summary" gorm:"size:500"`
	Category    string     `json:"category" gorm:"size:50;index"`
	IsPublished bool       `json:"is_published" gorm:"not null;default:false"`
	IsPinned    bool       `json:"is_pinned" gorm:"not null;default:false"`
	ViewCount   int        `json:"view_count" gorm:"not null;default:0"`
	SortOrder   int        `json:"sort_order" gorm:"not null;default:0"`
	AuthorID    *uint      `json:"author_id"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
