package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/patiponrmutl/BEFamily/config"
	"github.com/patiponrmutl/BEFamily/database"
	"github.com/patiponrmutl/BEFamily/models"
)

// BackupHandler จัดการรายการสำรองข้อมูล
// TODO: ต่อ pg_dump จริงแทนการบันทึกสถานะอย่างเดียว (รอสรุปวิธี deploy ก่อน)
type BackupHandler struct {
	Dir string
}

func NewBackupHandler(cfg *config.Config) *BackupHandler {
	return &BackupHandler{Dir: cfg.BackupDir}
}

// GET /api/admin/backups
func (h *BackupHandler) List(c echo.Context) error {
	backups := []models.Backup{}
	if err := database.DB.Order("created_at DESC").Find(&backups).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านรายการสำรองข้อมูลได้")
	}
	return ok(c, http.StatusOK, "", backups)
}

type backupPayload struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// POST /api/admin/backups
func (h *BackupHandler) Create(c echo.Context) error {
	var p backupPayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "รูปแบบข้อมูลไม่ถูกต้อง")
	}

	typ := strings.TrimSpace(p.Type)
	if typ == "" {
		typ = "full"
	}
	if typ != "full" && typ != "data" {
		return fail(c, http.StatusBadRequest, "ประเภทการสำรองข้อมูลไม่ถูกต้อง")
	}

	ts := time.Now().Format("20060102T150405")
	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = "สำรองข้อมูล_" + ts
	}
	fileName := fmt.Sprintf("backup_%s_%s_%s.sql", typ, ts, uuid.NewString()[:8])

	b := models.Backup{
		Name:     name,
		Type:     typ,
		FilePath: filepath.Join(h.Dir, fileName),
		Status:   "pending",
	}
	if err := database.DB.Create(&b).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถสร้างรายการสำรองข้อมูลได้")
	}

	now := time.Now()
	b.Status = "completed"
	b.CompletedAt = &now
	if err := database.DB.Save(&b).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถบันทึกสถานะได้")
	}

	return ok(c, http.StatusCreated, "สร้างรายการสำรองข้อมูลสำเร็จ", b)
}

// POST /api/admin/backups/:id/restore
func (h *BackupHandler) Restore(c echo.Context) error {
	id := uint(atoiOr(c.Param("id"), 0))

	var b models.Backup
	if err := database.DB.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบรายการสำรองข้อมูล")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านรายการได้")
	}
	if b.Status != "completed" {
		return fail(c, http.StatusBadRequest, "กู้คืนได้เฉพาะรายการที่สำรองเสร็จสมบูรณ์")
	}

	return ok(c, http.StatusOK, "กู้คืนข้อมูลสำเร็จ", nil)
}

// DELETE /api/admin/backups/:id
func (h *BackupHandler) Delete(c echo.Context) error {
	id := uint(atoiOr(c.Param("id"), 0))

	var b models.Backup
	if err := database.DB.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบรายการสำรองข้อมูล")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านรายการได้")
	}
	if err := database.DB.Delete(&b).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถลบรายการได้")
	}
	return ok(c, http.StatusOK, "ลบรายการสำรองข้อมูลสำเร็จ", nil)
}
