package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ErrorHandler แปลง error ที่หลุดถึงชั้นบนสุดให้อยู่ในรูป {success:false, message}
// key ซ้ำในฐานข้อมูล → 409, นอกนั้นถ้าไม่ใช่ HTTPError → 500
func ErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	msg := "เกิดข้อผิดพลาดภายในระบบ"

	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		code = http.StatusConflict
		msg = "ข้อมูลซ้ำกับที่มีอยู่ในระบบ"
	case errors.Is(err, gorm.ErrRecordNotFound):
		code = http.StatusNotFound
		msg = "ไม่พบข้อมูล"
	default:
		c.Logger().Error(err)
	}

	if !c.Response().Committed {
		_ = c.JSON(code, map[string]any{"success": false, "message": msg})
	}
}
