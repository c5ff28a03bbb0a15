package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/patiponrmutl/BEFamily/config"
	"github.com/patiponrmutl/BEFamily/database"
	"github.com/patiponrmutl/BEFamily/handlers"
	"github.com/patiponrmutl/BEFamily/routes"
)

// @title           Family Site API
// @version         1.0
// @description     Echo + PostgreSQL (เว็บไซต์ตระกูล: สมาชิก/ผังเครือญาติ/บทความ/สมุดเยี่ยม)
// @BasePath        /api
func main() {
	cfg := config.Load()

	// เชื่อมต่อฐานข้อมูล (ถ้า DB ยังไม่ขึ้น โปรแกรมจะ error ทันที)
	database.Connect(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = handlers.ErrorHandler

	// เสิร์ฟไฟล์ที่อัปโหลดไว้
	e.Static("/uploads", cfg.UploadDir)

	routes.Register(e, cfg)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
