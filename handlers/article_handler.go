package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/patiponrmutl/BEFamily/database"
	"github.com/patiponrmutl/BEFamily/middlewares"
	"github.com/patiponrmutl/BEFamily/models"
)

type ArticleHandler struct{}

func NewArticleHandler() *ArticleHandler { return &ArticleHandler{} }

func isAdmin(c echo.Context) bool {
	claims, okc := middlewares.AuthFrom(c)
	return okc && claims.Type == "admin"
}

type articlePayload struct {
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content"`
	CoverImage  string `json:"cover_image"`
	Summary     string `json:"summary"`
	Category    string `json:"category"`
	IsPublished *bool  `json:"is_published"`
	IsPinned    *bool  `json:"is_pinned"`
	PublishedAt string `json:"published_at"` // YYYY-MM-DD หรือว่าง
	SortOrder   int    `json:"sort_order"`
}

// GET /api/articles?category=&keyword=&is_published=&page=&limit=
// ผู้เยี่ยมชมเห็นเฉพาะบทความที่เผยแพร่แล้ว แอดมิน (แนบโทเคน) เห็นทั้งหมด
func (h *ArticleHandler) List(c echo.Context) error {
	p := getPagination(c)

	tx := database.DB.Model(&models.Article{})
	if !isAdmin(c) {
		tx = tx.Where("is_published = ?", true)
	} else if v := c.QueryParam("is_published"); v != "" {
		tx = tx.Where("is_published = ?", v == "1" || v == "true")
	}
	if cat := strings.TrimSpace(c.QueryParam("category")); cat != "" {
		tx = tx.Where("category = ?", cat)
	}
	if kw := strings.TrimSpace(c.QueryParam("keyword")); kw != "" {
		like := "%" + kw + "%"
		tx = tx.Where("title LIKE ? OR content LIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านบทความได้")
	}
	var articles []models.Article
	if err := tx.Order("is_pinned DESC, sort_order ASC, published_at DESC, id DESC").
		Limit(p.Limit).Offset(p.Offset).Find(&articles).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านบทความได้")
	}
	return ok(c, http.StatusOK, "", paginated(articles, total, p))
}

// GET /api/articles/:id
func (h *ArticleHandler) Get(c echo.Context) error {
	id := uint(atoiOr(c.Param("id"), 0))

	var a models.Article
	if err := database.DB.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบบทความ")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านบทความได้")
	}
	if !a.IsPublished && !isAdmin(c) {
		return fail(c, http.StatusForbidden, "ไม่มีสิทธิ์เข้าถึงบทความนี้")
	}

	// นับยอดอ่าน
	if err := database.DB.Model(&a).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err == nil {
		a.ViewCount++
	}

	return ok(c, http.StatusOK, "", a)
}

// POST /api/admin/articles
func (h *ArticleHandler) Create(c echo.Context) error {
	var p articlePayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "รูปแบบข้อมูลไม่ถูกต้อง")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}
	publishedAt, err := parseDate(p.PublishedAt)
	if err != nil {
		return fail(c, http.StatusBadRequest, "วันที่เผยแพร่ต้องเป็นรูปแบบ YYYY-MM-DD")
	}

	a := models.Article{
		Title: strings.TrimSpace(p.Title), Content: p.Content,
		CoverImage: p.CoverImage, Summary: p.Summary, Category: p.Category,
		PublishedAt: publishedAt, SortOrder: p.SortOrder,
	}
	if p.IsPublished != nil {
		a.IsPublished = *p.IsPublished
	}
	if p.IsPinned != nil {
		a.IsPinned = *p.IsPinned
	}
	if claims, okc := middlewares.AuthFrom(c); okc {
		a.AuthorID = &claims.ID
	}

	if err := database.DB.Create(&a).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถสร้างบทความได้")
	}
	return ok(c, http.StatusCreated, "สร้างบทความสำเร็จ", map[string]any{"id": a.ID})
}

// PUT /api/admin/articles/:id
func (h *ArticleHandler) Update(c echo.Context) error {
	id := uint(atoiOr(c.Param("id"), 0))

	var a models.Article
	if err := database.DB.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบบทความ")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านบทความได้")
	}

	var p articlePayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "รูปแบบข้อมูลไม่ถูกต้อง")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}
	publishedAt, err := parseDate(p.PublishedAt)
	if err != nil {
		return fail(c, http.StatusBadRequest, "วันที่เผยแพร่ต้องเป็นรูปแบบ YYYY-MM-DD")
	}

	a.Title = strings.TrimSpace(p.Title)
	a.Content = p.Content
	a.CoverImage = p.CoverImage
	a.Summary = p.Summary
	a.Category = p.Category
	a.PublishedAt = publishedAt
	a.SortOrder = p.SortOrder
	if p.IsPublished != nil {
		a.IsPublished = *p.IsPublished
	}
	if p.IsPinned != nil {
		a.IsPinned = *p.IsPinned
	}

	if err := database.DB.Save(&a).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถแก้ไขบทความได้")
	}
	return ok(c, http.StatusOK, "แก้ไขบทความสำเร็จ", nil)
}

// DELETE /api/admin/articles/:id
func (h *ArticleHandler) Delete(c echo.Context) error {
	id := uint(atoiOr(c.Param("id"), 0))

	var a models.Article
	if err := database.DB.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบบทความ")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านบทความได้")
	}
	if err := database.DB.Delete(&a).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถลบบทความได้")
	}
	return ok(c, http.StatusOK, "ลบบทความสำเร็จ", nil)
}
