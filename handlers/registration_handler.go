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

// RegistrationHandler จัดการคำขอสมัครฝั่งแอดมิน (ดูรายการ + อนุมัติ/ปฏิเสธ)
type RegistrationHandler struct{}

func NewRegistrationHandler() *RegistrationHandler { return &RegistrationHandler{} }

type registrationRow struct {
	ID           uint       `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	RealName     string     `json:"real_name"`
	Phone        string     `json:"phone"`
	Reason       string     `json:"reason"`
	Status       string     `json:"status"`
	ReviewNote   string     `json:"review_note"`
	ReviewerName *string    `json:"reviewer_name"`
	CreatedAt    time.Time  `json:"created_at"`
	ReviewedAt   *time.Time `json:"reviewed_at"`
}

// GET /api/admin/registration-requests?status=
func (h *RegistrationHandler) List(c echo.Context) error {
	status := strings.TrimSpace(c.QueryParam("status"))
	if status == "" {
		status = models.RegistrationPending
	}

	rows := []registrationRow{}
	if err := database.DB.Table("registration_requests").
		Select(`registration_requests.id, registration_requests.username,
			registration_requests.email, registration_requests.real_name,
			registration_requests.phone, registration_requests.reason,
			registration_requests.status, registration_requests.review_note,
			registration_requests.created_at, registration_requests.reviewed_at,
			admins.username AS reviewer_name`).
		Joins("LEFT JOIN admins ON admins.id = registration_requests.reviewed_by").
		Where("registration_requests.status = ?", status).
		Order("registration_requests.created_at DESC").
		Scan(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านรายการคำขอได้")
	}

	return ok(c, http.StatusOK, "", rows)
}

type reviewPayload struct {
	Status     string `json:"status" validate:"required,oneof=approved rejected"`
	ReviewNote string `json:"review_note"`
}

// PUT /api/admin/registration-requests/:id
// pending → approved: สร้างสมาชิกใหม่ 1 คน + บัญชี 1 บัญชี ใน transaction เดียว
// pending → rejected: บันทึกสถานะและหมายเหตุเท่านั้น
// คำขอที่ถูกพิจารณาไปแล้ว → 409
func (h *RegistrationHandler) Review(c echo.Context) error {
	id := uint(atoiOr(c.Param("id"), 0))

	claims, okc := middlewares.AuthFrom(c)
	if !okc {
		return fail(c, http.StatusUnauthorized, "ไม่พบข้อมูลผู้ใช้")
	}

	var p reviewPayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "รูปแบบข้อมูลไม่ถูกต้อง")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}

	var alreadyProcessed bool
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var req models.RegistrationRequest
		if err := tx.First(&req, "id = ?", id).Error; err != nil {
			return err
		}
		if req.Status != models.RegistrationPending {
			alreadyProcessed = true
			return errors.New("already processed")
		}

		now := time.Now()
		req.Status = p.Status
		req.ReviewNote = p.ReviewNote
		req.ReviewedBy = &claims.ID
		req.ReviewedAt = &now
		if err := tx.Save(&req).Error; err != nil {
			return err
		}

		if p.Status == models.RegistrationApproved {
			name := req.RealName
			if name == "" {
				name = req.Username
			}
			m := models.Member{
				Name:     name,
				Email:    req.Email,
				Phone:    req.Phone,
				IsPublic: true,
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
			// ใช้ hash เดิมที่เก็บไว้ตอนยื่นคำขอ ไม่ hash ซ้ำ
			u := models.MemberUser{
				MemberID: m.ID,
				Username: req.Username,
				Password: req.Password,
				Email:    req.Email,
				IsActive: true,
			}
			if err := tx.Create(&u).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if alreadyProcessed {
			return fail(c, http.StatusConflict, "คำขอนี้ถูกพิจารณาไปแล้ว")
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบคำขอสมัคร")
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fail(c, http.StatusConflict, "ชื่อผู้ใช้นี้ถูกใช้แล้ว")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถบันทึกผลการพิจารณาได้")
	}

	if p.Status == models.RegistrationApproved {
		return ok(c, http.StatusOK, "อนุมัติคำขอและสร้างบัญชีแล้ว", nil)
	}
	return ok(c, http.StatusOK, "ปฏิเสธคำขอแล้ว", nil)
}
