package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/patiponrmutl/BEFamily/database"
	"github.com/patiponrmutl/BEFamily/models"
)

type AnnouncementHandler struct{}

func NewAnnouncementHandler() *AnnouncementHandler { return &AnnouncementHandler{} }

type announcementPayload struct {
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content"`
	IsPinned    *bool  `json:"is_pinned"`
	IsPublished *bool  `json:"is_published"`
	PublishAt   string `json:"publish_at"`
}

// GET /api/announcements (เฉพาะที่เผยแพร่แล้ว ปักหมุดขึ้นก่อน)
func (h *AnnouncementHandler) List(c echo.Context) error {
	p := getPagination(c)

	tx := database.DB.Model(&models.Announcement{}).Where("is_published = ?", true)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านประกาศได้")
	}
	var items []models.Announcement
	if err := tx.Order("is_pinned DESC, created_at DESC").
		Limit(p.Limit).Offset(p.Offset).Find(&items).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านประกาศได้")
	}
	return ok(c, http.StatusOK, "", paginated(items, total, p))
}

// GET /api/admin/announcements (ทั้งหมด รวมที่ยังไม่เผยแพร่)
func (h *AnnouncementHandler) ListAll(c echo.Context) error {
	p := getPagination(c)

	tx := database.DB.Model(&models.Announcement{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านประกาศได้")
	}
	var items []models.Announcement
	if err := tx.Order("is_pinned DESC, created_at DESC").
		Limit(p.Limit).Offset(p.Offset).Find(&items).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านประกาศได้")
	}
	return ok(c, http.StatusOK, "", paginated(items, total, p))
}

// GET /api/announcements/:id
func (h *AnnouncementHandler) Get(c echo.Context) error {
	id := uint(atoiOr(c.Param("id"), 0))

	var a models.Announcement
	if err := database.DB.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบประกาศ")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านประกาศได้")
	}
	return ok(c, http.StatusOK, "", a)
}

// POST /api/admin/announcements
func (h *AnnouncementHandler) Create(c echo.Context) error {
	var p announcementPayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "รูปแบบข้อมูลไม่ถูกต้อง")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}
	publishAt, err := parseDate(p.PublishAt)
	if err != nil {
		return fail(c, http.StatusBadRequest, "วันที่เผยแพร่ต้องเป็นรูปแบบ YYYY-MM-DD")
	}

	a := models.Announcement{
		Title:       strings.TrimSpace(p.Title),
		Content:     p.Content,
		IsPublished: true,
		PublishAt:   publishAt,
	}
	if p.IsPinned != nil {
		a.IsPinned = *p.IsPinned
	}
	if p.IsPublished != nil {
		a.IsPublished = *p.IsPublished
	}

	if err := database.DB.Create(&a).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถสร้างประกาศได้")
	}
	return ok(c, http.StatusCreated, "สร้างประกาศสำเร็จ", map[string]any{"id": a.ID})
}

// PUT /api/admin/announcements/:id
func (h *AnnouncementHandler) Update(c echo.Context) error {
	id := uint(atoiOr(c.Param("id"), 0))

	var a models.Announcement
	if err := database.DB.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบประกาศ")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านประกาศได้")
	}

	var p announcementPayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "รูปแบบข้อมูลไม่ถูกต้อง")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}
	publishAt, err := parseDate(p.PublishAt)
	if err != nil {
		return fail(c, http.StatusBadRequest, "วันที่เผยแพร่ต้องเป็นรูปแบบ YYYY-MM-DD")
	}

	a.Title = strings.TrimSpace(p.Title)
	a.Content = p.Content
	a.PublishAt = publishAt
	if p.IsPinned != nil {
		a.IsPinned = *p.IsPinned
	}
	if p.IsPublished != nil {
		a.IsPublished = *p.IsPublished
	}

	if err := database.DB.Save(&a).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถแก้ไขประกาศได้")
	}
	return ok(c, http.StatusOK, "แก้ไขประกาศสำเร็จ", nil)
}

// DELETE /api/admin/announcements/:id
func (h *AnnouncementHandler) Delete(c echo.Context) error {
	id := uint(atoiOr(c.Param("id"), 0))

	var a models.Announcement
	if err := database.DB.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบประกาศ")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านประกาศได้")
	}
	if err := database.DB.Delete(&a).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถลบประกาศได้")
	}
	return ok(c, http.StatusOK, "ลบประกาศสำเร็จ", nil)
}
