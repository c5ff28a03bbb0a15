package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/patiponrmutl/BEFamily/database"
	"github.com/patiponrmutl/BEFamily/middlewares"
	"github.com/patiponrmutl/BEFamily/models"
)

type GuestbookHandler struct{}

func NewGuestbookHandler() *GuestbookHandler { return &GuestbookHandler{} }

const maxMessageLength = 1000

// GET /api/guestbook (หน้าเว็บ: เฉพาะข้อความที่อนุมัติแล้ว)
func (h *GuestbookHandler) List(c echo.Context) error {
	p := getPagination(c)

	tx := database.DB.Model(&models.GuestbookMessage{}).Where("is_approved = ?", true)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านข้อความได้")
	}

	type publicRow struct {
		ID           uint       `json:"id"`
		AuthorName   string     `json:"author_name"`
		Content      string     `json:"content"`
		ReplyContent string     `json:"reply_content"`
		ReplyAt      *time.Time `json:"reply_at"`
		CreatedAt    time.Time  `json:"created_at"`
	}
	rows := []publicRow{}
	if err := tx.Select("id, author_name, content, reply_content, reply_at, created_at").
		Order("created_at DESC").
		Limit(p.Limit).Offset(p.Offset).Scan(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านข้อความได้")
	}
	return ok(c, http.StatusOK, "", paginated(rows, total, p))
}

// GET /api/admin/guestbook?is_approved= (หลังบ้าน: ทั้งหมด + ชื่อสมาชิกถ้ามี)
func (h *GuestbookHandler) ListAll(c echo.Context) error {
	p := getPagination(c)

	tx := database.DB.Model(&models.GuestbookMessage{})
	if v := c.QueryParam("is_approved"); v != "" {
		tx = tx.Where("is_approved = ?", v == "1" || v == "true")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านข้อความได้")
	}

	type adminRow struct {
		ID           uint       `json:"id"`
		AuthorName   string     `json:"author_name"`
		Content      string     `json:"content"`
		IsApproved   bool       `json:"is_approved"`
		ReplyContent string     `json:"reply_content"`
		ReplyAt      *time.Time `json:"reply_at"`
		IPAddress    string     `json:"ip_address"`
		MemberName   *string    `json:"member_name"`
		CreatedAt    time.Time  `json:"created_at"`
	}
	rows := []adminRow{}
	if err := tx.Select(`guestbook_messages.id, guestbook_messages.author_name,
			guestbook_messages.content, guestbook_messages.is_approved,
			guestbook_messages.reply_content, guestbook_messages.reply_at,
			guestbook_messages.ip_address, guestbook_messages.created_at,
			members.name AS member_name`).
		Joins("LEFT JOIN members ON members.id = guestbook_messages.member_id").
		Order("guestbook_messages.created_at DESC").
		Limit(p.Limit).Offset(p.Offset).Scan(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านข้อความได้")
	}
	return ok(c, http.StatusOK, "", paginated(rows, total, p))
}

type messagePayload struct {
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
}

// POST /api/guestbook (ใครก็โพสต์ได้ ถ้าแนบโทเคนสมาชิกจะบันทึก member_id ด้วย)
// ข้อความเข้าคิวรออนุมัติเสมอ
func (h *GuestbookHandler) Create(c echo.Context) error {
	var p messagePayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "รูปแบบข้อมูลไม่ถูกต้อง")
	}

	content := strings.TrimSpace(p.Content)
	if content == "" {
		return fail(c, http.StatusBadRequest, "กรุณากรอกข้อความ")
	}
	if len([]rune(content)) > maxMessageLength {
		return fail(c, http.StatusBadRequest, "ข้อความต้องไม่เกิน 1000 ตัวอักษร")
	}

	author := strings.TrimSpace(p.AuthorName)
	if author == "" {
		author = "ผู้ไม่ประสงค์ออกนาม"
	}

	msg := models.GuestbookMessage{
		AuthorName: author,
		Content:    content,
		IPAddress:  c.RealIP(),
	}
	if claims, okc := middlewares.AuthFrom(c); okc && claims.Type == "member" {
		mid := claims.MemberID
		msg.MemberID = &mid
	}

	if err := database.DB.Create(&msg).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถบันทึกข้อความได้")
	}
	return ok(c, http.StatusCreated, "ส่งข้อความแล้ว รอการอนุมัติ", map[string]any{"id": msg.ID})
}

type approvePayload struct {
	IsApproved bool `json:"is_approved"`
}

// PUT /api/admin/guestbook/:id/approve
func (h *GuestbookHandler) Approve(c echo.Context) error {
	id := uint(atoiOr(c.Param("id"), 0))

	var msg models.GuestbookMessage
	if err := database.DB.First(&msg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบข้อความ")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านข้อความได้")
	}

	var p approvePayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "รูปแบบข้อมูลไม่ถูกต้อง")
	}

	if err := database.DB.Model(&msg).
		Update("is_approved", p.IsApproved).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถบันทึกสถานะได้")
	}
	if p.IsApproved {
		return ok(c, http.StatusOK, "อนุมัติข้อความแล้ว", nil)
	}
	return ok(c, http.StatusOK, "ยกเลิกการอนุมัติแล้ว", nil)
}

type replyPayload struct {
	ReplyContent string `json:"reply_content" validate:"required"`
}

// PUT /api/admin/guestbook/:id/reply
func (h *GuestbookHandler) Reply(c echo.Context) error {
	id := uint(atoiOr(c.Param("id"), 0))

	var msg models.GuestbookMessage
	if err := database.DB.First(&msg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบข้อความ")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านข้อความได้")
	}

	var p replyPayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "รูปแบบข้อมูลไม่ถูกต้อง")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}

	now := time.Now()
	if err := database.DB.Model(&msg).Updates(map[string]any{
		"reply_content": p.ReplyContent,
		"reply_at":      &now,
	}).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถบันทึกคำตอบได้")
	}
	return ok(c, http.StatusOK, "ตอบกลับสำเร็จ", nil)
}

// DELETE /api/admin/guestbook/:id
func (h *GuestbookHandler) Delete(c echo.Context) error {
	id := uint(atoiOr(c.Param("id"), 0))

	var msg models.GuestbookMessage
	if err := database.DB.First(&msg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบข้อความ")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านข้อความได้")
	}
	if err := database.DB.Delete(&msg).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถลบข้อความได้")
	}
	return ok(c, http.StatusOK, "ลบข้อความสำเร็จ", nil)
}
