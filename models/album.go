package models

import "time"

type Album struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"size:500"`
	CoverImage  string    `json:"cover_image" gorm:"size:255"`
	IsPublic    bool      `json:"is_public" gorm:"not null"`
	SortOrder   int       `json:"sort_order" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AlbumImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AlbumID   uint      `json:"album_id" gorm:"not null;index"`
	ImagePath string    `json:"image_path" gorm:"size:255;not null"`
	Caption   string    `json:"caption" gorm:"size:255"`
	SortOrder int       `json:"sort_order" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
}
