package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/patiponrmutl/BEFamily/database"
	"github.com/patiponrmutl/BEFamily/models"
)

type ConfigHandler struct{}

func NewConfigHandler() *ConfigHandler { return &ConfigHandler{} }

// ค่าที่อนุญาตให้หน้าเว็บดึงไปแสดง
var publicConfigKeys = []string{
	"site_name",
	"site_slogan",
	"site_description",
	"site_logo",
	"contact_email",
	"contact_phone",
	"footer_text",
	"family_creed",
	"theme_color",
	"accent_color",
}

// GET /api/configs (เฉพาะชุด public)
func (h *ConfigHandler) Public(c echo.Context) error {
	var rows []models.SiteConfig
	if err := database.DB.Where("config_key IN ?", publicConfigKeys).
		Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านการตั้งค่าได้")
	}

	configMap := map[string]string{}
	for _, r := range rows {
		configMap[r.ConfigKey] = r.ConfigValue
	}
	return ok(c, http.StatusOK, "", configMap)
}

// GET /api/admin/configs (ทั้งหมด ในรูป key → value)
func (h *ConfigHandler) All(c echo.Context) error {
	var rows []models.SiteConfig
	if err := database.DB.Order("config_key ASC").Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านการตั้งค่าได้")
	}

	configMap := map[string]string{}
	for _, r := range rows {
		configMap[r.ConfigKey] = r.ConfigValue
	}
	return ok(c, http.StatusOK, "", configMap)
}

// GET /api/admin/configs/:key
func (h *ConfigHandler) Get(c echo.Context) error {
	key := c.Param("key")

	var row models.SiteConfig
	if err := database.DB.First(&row, "config_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบการตั้งค่านี้")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านการตั้งค่าได้")
	}
	return ok(c, http.StatusOK, "", row)
}

// PUT /api/admin/configs อัปเดตหลายค่าพร้อมกัน (body: {key: value, ...})
// key ที่ไม่มีอยู่ในตารางจะถูกข้าม
func (h *ConfigHandler) BulkUpdate(c echo.Context) error {
	var body map[string]*string
	if err := c.Bind(&body); err != nil || body == nil {
		return fail(c, http.StatusBadRequest, "กรุณาส่งข้อมูลการตั้งค่าที่ถูกต้อง")
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for key, val := range body {
			if val == nil {
				continue
			}
			if err := tx.Model(&models.SiteConfig{}).
				Where("config_key = ?", key).
				Update("config_value", *val).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถบันทึกการตั้งค่าได้")
	}
	return ok(c, http.StatusOK, "บันทึกการตั้งค่าสำเร็จ", nil)
}

type configValuePayload struct {
	Value string `json:"value"`
}

// PUT /api/admin/configs/:key
func (h *ConfigHandler) Update(c echo.Context) error {
	key := c.Param("key")

	var row models.SiteConfig
	if err := database.DB.First(&row, "config_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบการตั้งค่านี้")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านการตั้งค่าได้")
	}

	var p configValuePayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "รูปแบบข้อมูลไม่ถูกต้อง")
	}

	if err := database.DB.Model(&row).
		Update("config_value", p.Value).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถบันทึกการตั้งค่าได้")
	}
	return ok(c, http.StatusOK, "บันทึกการตั้งค่าสำเร็จ", nil)
}
