package middlewares

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// AuthClaims ตามที่เซ็นใน handlers/auth_handler.go
type AuthClaims struct {
	ID       uint   `json:"id"`
	MemberID uint   `json:"member_id,omitempty"`
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
	Type     string `json:"type"` // "admin" | "member"
	jwt.RegisteredClaims
}

const authContextKey = "auth"

// AuthFrom อ่าน claims ที่ middleware แนบไว้ใน context ของ request นั้น ๆ
func AuthFrom(c echo.Context) (*AuthClaims, bool) {
	claims, ok := c.Get(authContextKey).(*AuthClaims)
	return claims, ok
}

// ดึง token จาก Authorization header
func extractBearer(c echo.Context) (string, error) {
	h := c.Request().Header.Get("Authorization")
	if h == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "ไม่พบโทเคนยืนยันตัวตน")
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "รูปแบบโทเคนไม่ถูกต้อง")
	}
	return parts[1], nil
}

func parseToken(secret, tok string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tok, &AuthClaims{}, func(t *jwt.Token) (any, error) {
		// ป้องกัน alg โดนสลับ
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "วิธีเซ็นโทเคนไม่ถูกต้อง")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "โทเคนไม่ถูกต้องหรือหมดอายุ")
	}
	claims, ok := token.Claims.(*AuthClaims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "โทเคนไม่ถูกต้องหรือหมดอายุ")
	}
	return claims, nil
}

// verifyType ตรวจ JWT แล้วบังคับชนิดโทเคน (admin/member) ก่อนปล่อยผ่าน
func verifyType(secret, typ string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, err := extractBearer(c)
			if err != nil {
				return err
			}
			claims, err := parseToken(secret, tok)
			if err != nil {
				return err
			}
			if claims.Type != typ {
				return echo.NewHTTPError(http.StatusForbidden, "ไม่มีสิทธิ์เข้าถึงส่วนนี้")
			}
			c.Set(authContextKey, claims)
			return next(c)
		}
	}
}

// VerifyAdminToken ใช้คุ้มครองเส้นทางหลังบ้าน
func VerifyAdminToken(secret string) echo.MiddlewareFunc {
	return verifyType(secret, "admin")
}

// VerifyMemberToken ใช้คุ้มครองเส้นทางเฉพาะสมาชิก
func VerifyMemberToken(secret string) echo.MiddlewareFunc {
	return verifyType(secret, "member")
}

// OptionalAuth แนบ claims ถ้ามีโทเคนที่ใช้ได้ ไม่มีหรือใช้ไม่ได้ก็ปล่อยผ่าน
func OptionalAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if tok, err := extractBearer(c); err == nil {
				if claims, err := parseToken(secret, tok); err == nil {
					c.Set(authContextKey, claims)
				}
			}
			return next(c)
		}
	}
}
