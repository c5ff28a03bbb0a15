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

type AlbumHandler struct{}

func NewAlbumHandler() *AlbumHandler { return &AlbumHandler{} }

type albumPayload struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	CoverImage  string `json:"cover_image"`
	IsPublic    *bool  `json:"is_public"`
	SortOrder   int    `json:"sort_order"`
}

// GET /api/albums (เฉพาะอัลบั้มสาธารณะ)
func (h *AlbumHandler) List(c echo.Context) error {
	p := getPagination(c)

	tx := database.DB.Model(&models.Album{}).Where("is_public = ?", true)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านอัลบั้มได้")
	}
	var albums []models.Album
	if err := tx.Order("sort_order ASC, created_at DESC").
		Limit(p.Limit).Offset(p.Offset).Find(&albums).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านอัลบั้มได้")
	}
	return ok(c, http.StatusOK, "", paginated(albums, total, p))
}

// GET /api/albums/:id พร้อมรูปทั้งหมดในอัลบั้ม
func (h *AlbumHandler) Get(c echo.Context) error {
	id := uint(atoiOr(c.Param("id"), 0))

	var a models.Album
	if err := database.DB.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบอัลบั้ม")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านอัลบั้มได้")
	}

	images := []models.AlbumImage{}
	if err := database.DB.Where("album_id = ?", id).
		Order("sort_order ASC, created_at ASC").Find(&images).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านรูปภาพได้")
	}

	return ok(c, http.StatusOK, "", map[string]any{
		"id": a.ID, "name": a.Name, "description": a.Description,
		"cover_image": a.CoverImage, "is_public": a.IsPublic,
		"sort_order": a.SortOrder, "created_at": a.CreatedAt,
		"images": images,
	})
}

// POST /api/admin/albums
func (h *AlbumHandler) Create(c echo.Context) error {
	var p albumPayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "รูปแบบข้อมูลไม่ถูกต้อง")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}

	a := models.Album{
		Name:        strings.TrimSpace(p.Name),
		Description: p.Description,
		CoverImage:  p.CoverImage,
		IsPublic:    true,
		SortOrder:   p.SortOrder,
	}
	if p.IsPublic != nil {
		a.IsPublic = *p.IsPublic
	}

	if err := database.DB.Create(&a).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถสร้างอัลบั้มได้")
	}
	return ok(c, http.StatusCreated, "สร้างอัลบั้มสำเร็จ", map[string]any{"id": a.ID})
}

// PUT /api/admin/albums/:id
func (h *AlbumHandler) Update(c echo.Context) error {
	id := uint(atoiOr(c.Param("id"), 0))

	var a models.Album
	if err := database.DB.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบอัลบั้ม")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านอัลบั้มได้")
	}

	var p albumPayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "รูปแบบข้อมูลไม่ถูกต้อง")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}

	a.Name = strings.TrimSpace(p.Name)
	a.Description = p.Description
	a.CoverImage = p.CoverImage
	a.SortOrder = p.SortOrder
	if p.IsPublic != nil {
		a.IsPublic = *p.IsPublic
	}

	if err := database.DB.Save(&a).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถแก้ไขอัลบั้มได้")
	}
	return ok(c, http.StatusOK, "แก้ไขอัลบั้มสำเร็จ", nil)
}

// DELETE /api/admin/albums/:id ลบอัลบั้มพร้อมรูปข้างในทั้งหมด
func (h *AlbumHandler) Delete(c echo.Context) error {
	id := uint(atoiOr(c.Param("id"), 0))

	var a models.Album
	if err := database.DB.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบอัลบั้ม")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านอัลบั้มได้")
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("album_id = ?", id).
			Delete(&models.AlbumImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&a).Error
	})
	if err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถลบอัลบั้มได้")
	}
	return ok(c, http.StatusOK, "ลบอัลบั้มสำเร็จ", nil)
}

type albumImagePayload struct {
	ImagePath string `json:"image_path" validate:"required"`
	Caption   string `json:"caption"`
	SortOrder int    `json:"sort_order"`
}

// POST /api/admin/albums/:id/images
func (h *AlbumHandler) AddImage(c echo.Context) error {
	id := uint(atoiOr(c.Param("id"), 0))

	var a models.Album
	if err := database.DB.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบอัลบั้ม")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านอัลบั้มได้")
	}

	var p albumImagePayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "รูปแบบข้อมูลไม่ถูกต้อง")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}

	img := models.AlbumImage{
		AlbumID:   id,
		ImagePath: p.ImagePath,
		Caption:   p.Caption,
		SortOrder: p.SortOrder,
	}
	if err := database.DB.Create(&img).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถเพิ่มรูปได้")
	}
	return ok(c, http.StatusCreated, "เพิ่มรูปสำเร็จ", map[string]any{"id": img.ID})
}

type imageUpdatePayload struct {
	Caption   string `json:"caption"`
	SortOrder int    `json:"sort_order"`
}

// PUT /api/admin/albums/images/:imageId
func (h *AlbumHandler) UpdateImage(c echo.Context) error {
	id := uint(atoiOr(c.Param("imageId"), 0))

	var img models.AlbumImage
	if err := database.DB.First(&img, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบรูปภาพ")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านรูปภาพได้")
	}

	var p imageUpdatePayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "รูปแบบข้อมูลไม่ถูกต้อง")
	}

	img.Caption = p.Caption
	img.SortOrder = p.SortOrder
	if err := database.DB.Save(&img).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถแก้ไขรูปได้")
	}
	return ok(c, http.StatusOK, "แก้ไขรูปสำเร็จ", nil)
}

// DELETE /api/admin/albums/images/:imageId
func (h *AlbumHandler) DeleteImage(c echo.Context) error {
	id := uint(atoiOr(c.Param("imageId"), 0))

	var img models.AlbumImage
	if err := database.DB.First(&img, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบรูปภาพ")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านรูปภาพได้")
	}
	if err := database.DB.Delete(&img).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถลบรูปได้")
	}
	return ok(c, http.StatusOK, "ลบรูปสำเร็จ", nil)
}
