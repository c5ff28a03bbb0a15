package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/patiponrmutl/BEFamily/database"
	"github.com/patiponrmutl/BEFamily/middlewares"
	"github.com/patiponrmutl/BEFamily/models"
)

type AuthHandler struct {
	JWTSecret string
}

func NewAuthHandler(secret string) *AuthHandler {
	return &AuthHandler{JWTSecret: secret}
}

const tokenTTL = 7 * 24 * time.Hour

func (h *AuthHandler) signToken(claims middlewares.AuthClaims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.JWTSecret))
}

/* ====================== DTOs ====================== */

type loginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerPayload struct {
	Username string `json:"username" validate:"required,min=3,max=60"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email" validate:"omitempty,email"`
	RealName string `json:"real_name"`
	Phone    string `json:"phone"`
	Reason   string `json:"reason"`
}

type changePasswordPayload struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

/* ====================== Admin ====================== */

// POST /api/auth/admin/login
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var p loginPayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "รูปแบบข้อมูลไม่ถูกต้อง")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}

	var a models.Admin
	if err := database.DB.Where("username = ?", strings.TrimSpace(p.Username)).
		First(&a).Error; err != nil {
		return fail(c, http.StatusUnauthorized, "ชื่อผู้ใช้หรือรหัสผ่านไม่ถูกต้อง")
	}
	if !a.IsActive {
		return fail(c, http.StatusForbidden, "บัญชีนี้ถูกระงับการใช้งาน")
	}
	if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(p.Password)) != nil {
		return fail(c, http.StatusUnauthorized, "ชื่อผู้ใช้หรือรหัสผ่านไม่ถูกต้อง")
	}

	now := time.Now()
	database.DB.Model(&a).Update("last_login", &now)

	token, err := h.signToken(middlewares.AuthClaims{
		ID: a.ID, Username: a.Username, Role: a.Role, Type: "admin",
	})
	if err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถออกโทเคนได้")
	}

	return ok(c, http.StatusOK, "เข้าสู่ระบบสำเร็จ", map[string]any{
		"token": token,
		"user": map[string]any{
			"id": a.ID, "username": a.Username, "email": a.Email, "role": a.Role,
		},
	})
}

// GET /api/auth/admin/profile
func (h *AuthHandler) AdminProfile(c echo.Context) error {
	claims, okc := middlewares.AuthFrom(c)
	if !okc {
		return fail(c, http.StatusUnauthorized, "ไม่พบข้อมูลผู้ใช้")
	}

	var a models.Admin
	if err := database.DB.First(&a, "id = ?", claims.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบผู้ดูแลระบบ")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านข้อมูลได้")
	}
	return ok(c, http.StatusOK, "", a)
}

// PUT /api/auth/admin/password
func (h *AuthHandler) ChangeAdminPassword(c echo.Context) error {
	claims, okc := middlewares.AuthFrom(c)
	if !okc {
		return fail(c, http.StatusUnauthorized, "ไม่พบข้อมูลผู้ใช้")
	}

	var p changePasswordPayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "รูปแบบข้อมูลไม่ถูกต้อง")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}

	var a models.Admin
	if err := database.DB.First(&a, "id = ?", claims.ID).Error; err != nil {
		return fail(c, http.StatusNotFound, "ไม่พบผู้ดูแลระบบ")
	}
	if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(p.OldPassword)) != nil {
		return fail(c, http.StatusBadRequest, "รหัสผ่านเดิมไม่ถูกต้อง")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถเปลี่ยนรหัสผ่านได้")
	}
	if err := database.DB.Model(&a).Update("password", string(hash)).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถเปลี่ยนรหัสผ่านได้")
	}

	return ok(c, http.StatusOK, "เปลี่ยนรหัสผ่านสำเร็จ", nil)
}

/* ====================== Member ====================== */

// POST /api/auth/member/login
func (h *AuthHandler) MemberLogin(c echo.Context) error {
	var p loginPayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "รูปแบบข้อมูลไม่ถูกต้อง")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}

	var u models.MemberUser
	if err := database.DB.Where("username = ?", strings.TrimSpace(p.Username)).
		First(&u).Error; err != nil {
		return fail(c, http.StatusUnauthorized, "ชื่อผู้ใช้หรือรหัสผ่านไม่ถูกต้อง")
	}
	if !u.IsActive {
		return fail(c, http.StatusForbidden, "บัญชีนี้ถูกระงับการใช้งาน")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(p.Password)) != nil {
		return fail(c, http.StatusUnauthorized, "ชื่อผู้ใช้หรือรหัสผ่านไม่ถูกต้อง")
	}

	var m models.Member
	if err := database.DB.First(&m, "id = ?", u.MemberID).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านข้อมูลสมาชิกได้")
	}

	now := time.Now()
	database.DB.Model(&u).Update("last_login", &now)

	token, err := h.signToken(middlewares.AuthClaims{
		ID: u.ID, MemberID: u.MemberID, Username: u.Username, Type: "member",
	})
	if err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถออกโทเคนได้")
	}

	return ok(c, http.StatusOK, "เข้าสู่ระบบสำเร็จ", map[string]any{
		"token": token,
		"user": map[string]any{
			"id": u.ID, "member_id": u.MemberID, "username": u.Username,
			"email": u.Email, "member_name": m.Name, "avatar": m.Avatar,
		},
	})
}

// GET /api/auth/member/profile
func (h *AuthHandler) MemberProfile(c echo.Context) error {
	claims, okc := middlewares.AuthFrom(c)
	if !okc {
		return fail(c, http.StatusUnauthorized, "ไม่พบข้อมูลผู้ใช้")
	}

	var m models.Member
	if err := database.DB.First(&m, "id = ?", claims.MemberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบสมาชิก")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านข้อมูลได้")
	}
	var u models.MemberUser
	if err := database.DB.First(&u, "member_id = ?", m.ID).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านข้อมูลบัญชีได้")
	}

	return ok(c, http.StatusOK, "", map[string]any{
		"id": m.ID, "name": m.Name, "avatar": m.Avatar,
		"birth_date": m.BirthDate, "death_date": m.DeathDate,
		"bio": m.Bio, "generation": m.Generation, "gender": m.Gender,
		"phone": m.Phone, "email": m.Email, "address": m.Address,
		"username": u.Username, "user_email": u.Email, "last_login": u.LastLogin,
	})
}

/* ====================== Registration ====================== */

// POST /api/auth/register
// ยื่นคำขอสมัครสมาชิก รอแอดมินอนุมัติ
func (h *AuthHandler) Register(c echo.Context) error {
	var p registerPayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "รูปแบบข้อมูลไม่ถูกต้อง")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}
	p.Username = strings.TrimSpace(p.Username)

	// username ซ้ำกับบัญชีที่มีอยู่
	var cnt int64
	if err := database.DB.Model(&models.MemberUser{}).
		Where("username = ?", p.Username).Count(&cnt).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถตรวจสอบชื่อผู้ใช้ได้")
	}
	if cnt > 0 {
		return fail(c, http.StatusConflict, "ชื่อผู้ใช้นี้ถูกใช้แล้ว")
	}

	// มีคำขอค้างพิจารณาด้วยชื่อเดียวกัน
	if err := database.DB.Model(&models.RegistrationRequest{}).
		Where("username = ? AND status = ?", p.Username, models.RegistrationPending).
		Count(&cnt).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถตรวจสอบคำขอได้")
	}
	if cnt > 0 {
		return fail(c, http.StatusConflict, "ชื่อผู้ใช้นี้มีคำขอรอพิจารณาอยู่แล้ว")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถบันทึกคำขอได้")
	}
	req := models.RegistrationRequest{
		Username: p.Username,
		Password: string(hash),
		Email:    p.Email,
		RealName: p.RealName,
		Phone:    p.Phone,
		Reason:   p.Reason,
		Status:   models.RegistrationPending,
	}
	if err := database.DB.Create(&req).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถบันทึกคำขอได้")
	}

	return ok(c, http.StatusCreated, "ส่งคำขอสมัครแล้ว กรุณารอการอนุมัติ", map[string]any{"id": req.ID})
}
