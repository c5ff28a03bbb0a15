package handlers

import (
	"math"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// รูปแบบ response กลางของระบบ: {success, message?, data?}

func ok(c echo.Context, code int, msg string, data any) error {
	body := map[string]any{"success": true}
	if msg != "" {
		body["message"] = msg
	}
	if data != nil {
		body["data"] = data
	}
	return c.JSON(code, body)
}

func fail(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]any{"success": false, "message": msg})
}

// แปลง string -> int; ถ้าแปลงไม่ได้ให้คืนค่าเริ่มต้น
func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

type pageParams struct {
	Page   int
	Limit  int
	Offset int
}

// อ่าน ?page=&limit= (ค่าเริ่มต้น 1/10, limit สูงสุด 100)
func getPagination(c echo.Context) pageParams {
	page := atoiOr(c.QueryParam("page"), 1)
	if page < 1 {
		page = 1
	}
	limit := atoiOr(c.QueryParam("limit"), 10)
	if limit < 1 {
		limit = 10
	} else if limit > 100 {
		limit = 100
	}
	return pageParams{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

func paginated(items any, total int64, p pageParams) map[string]any {
	totalPages := int(math.Ceil(float64(total) / float64(p.Limit)))
	return map[string]any{
		"data": items,
		"pagination": map[string]any{
			"page":       p.Page,
			"limit":      p.Limit,
			"total":      total,
			"totalPages": totalPages,
			"hasNext":    p.Page < totalPages,
			"hasPrev":    p.Page > 1,
		},
	}
}

// แปลงวันที่รูปแบบ YYYY-MM-DD (ค่าว่าง → nil)
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
