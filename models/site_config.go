package models

import "time"

type SiteConfig struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ConfigKey   string    `json:"config_key" gorm:"uniqueIndex;size:60;not null"`
	ConfigValue string    `json:"config_value" gorm:"type:text"`
	ConfigType  string    `json:"config_type" gorm:"size:20;not null;default:text"`
	Description string    `json:"description" gorm:"size:255"`
	UpdatedAt   time.Time `json:"updated_at"`
}
