package models

import "time"

type Backup struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"size:100;not null"`
	Type        string     `json:"type" gorm:"size:10;not null;default:full"` // full | data
	FilePath    string     `json:"file_path" gorm:"size:255"`
	FileSize    int64      `json:"file_size" gorm:"not null;default:0"`
	Status      string     `json:"status" gorm:"size:10;not null;default:pending"` // pending|completed|failed
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}
