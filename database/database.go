package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/patiponrmutl/BEFamily/config"
	"github.com/patiponrmutl/BEFamily/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		// แปลง error ของ driver เป็น error กลางของ gorm (เช่น unique violation → ErrDuplicatedKey)
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := Migrate(db); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}

// Migrate สร้าง/ปรับโครงสร้างตารางทั้งหมด (ใช้ร่วมกันทั้ง production และชุดทดสอบ)
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Member{},
		&models.Relationship{},
		&models.MemberUser{},
		&models.Admin{},
		&models.RegistrationRequest{},
		&models.Article{},
		&models.Announcement{},
		&models.Album{},
		&models.AlbumImage{},
		&models.GuestbookMessage{},
		&models.SiteConfig{},
		&models.Backup{},
	)
}
