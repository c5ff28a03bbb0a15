package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator ผูก go-playground/validator เข้ากับ echo (ใช้ผ่าน c.Validate)
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{v: validator.New()}
}

func (cv *Validator) Validate(i any) error {
	if err := cv.v.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "ข้อมูลไม่ครบถ้วนหรือรูปแบบไม่ถูกต้อง")
	}
	return nil
}
