package handlers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestbookModerationFlow(t *testing.T) {
	s := newTestServer(t)
	token := seedAdmin(t, s)

	rec := s.request(http.MethodPost, "/api/guestbook", "", map[string]any{
		"author_name": "ลุงข้างบ้าน",
		"content":     "ยินดีที่ได้รู้จักครอบครัวนี้ครับ",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	msgID := uint(dataOf(t, rec)["id"].(float64))

	// ยังไม่อนุมัติ หน้าเว็บต้องไม่เห็น
	rec = s.request(http.MethodGet, "/api/guestbook", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, dataOf(t, rec)["data"])

	// หลังบ้านเห็นครบ
	rec = s.request(http.MethodGet, "/api/admin/guestbook", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rows := dataOf(t, rec)["data"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, false, rows[0].(map[string]any)["is_approved"])

	rec = s.request(http.MethodPut, fmt.Sprintf("/api/admin/guestbook/%d/approve", msgID),
		token, map[string]any{"is_approved": true})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.request(http.MethodGet, "/api/guestbook", "", nil)
	rows = dataOf(t, rec)["data"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "ลุงข้างบ้าน", rows[0].(map[string]any)["author_name"])

	// ตอบกลับแล้วต้องเห็นคำตอบในหน้าเว็บ
	rec = s.request(http.MethodPut, fmt.Sprintf("/api/admin/guestbook/%d/reply", msgID),
		token, map[string]any{"reply_content": "ขอบคุณครับ"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.request(http.MethodGet, "/api/guestbook", "", nil)
	rows = dataOf(t, rec)["data"].([]any)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, "ขอบคุณครับ", row["reply_content"])
	assert.NotNil(t, row["reply_at"])

	rec = s.request(http.MethodDelete, fmt.Sprintf("/api/admin/guestbook/%d", msgID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = s.request(http.MethodGet, "/api/guestbook", "", nil)
	assert.Empty(t, dataOf(t, rec)["data"])
}

func TestGuestbookCreateValidation(t *testing.T) {
	s := newTestServer(t)

	rec := s.request(http.MethodPost, "/api/guestbook", "", map[string]any{
		"author_name": "ใครสักคน", "content": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.request(http.MethodPost, "/api/guestbook", "", map[string]any{
		"content": strings.Repeat("ก", 1001),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// ไม่ใส่ชื่อ ระบบตั้งชื่อให้
	rec = s.request(http.MethodPost, "/api/guestbook", "", map[string]any{
		"content": "ฝากข้อความไว้หน่อย",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	token := seedAdmin(t, s)
	rec = s.request(http.MethodGet, "/api/admin/guestbook", token, nil)
	rows := dataOf(t, rec)["data"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "ผู้ไม่ประสงค์ออกนาม", rows[0].(map[string]any)["author_name"])
}

func TestGuestbookRecordsMemberIdentity(t *testing.T) {
	s := newTestServer(t)
	token := seedAdmin(t, s)

	id := createMember(t, s, token, map[string]any{"name": "สมชาย ใจดี", "generation": 1})
	rec := s.request(http.MethodPost, fmt.Sprintf("/api/admin/members/%d/account", id), token,
		map[string]any{"username": "somchai", "password": "secret1"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.request(http.MethodPost, "/api/auth/member/login", "", map[string]any{
		"username": "somchai", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	memberToken := dataOf(t, rec)["token"].(string)

	rec = s.request(http.MethodPost, "/api/guestbook", memberToken, map[string]any{
		"content": "คิดถึงบ้านเกิด",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.request(http.MethodGet, "/api/admin/guestbook", token, nil)
	rows := dataOf(t, rec)["data"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "สมชาย ใจดี", rows[0].(map[string]any)["member_name"])
}
