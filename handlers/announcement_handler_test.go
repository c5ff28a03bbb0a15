package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnouncementPublicList(t *testing.T) {
	s := newTestServer(t)
	token := seedAdmin(t, s)

	rec := s.request(http.MethodPost, "/api/admin/announcements", token, map[string]any{
		"title": "นัดรวมญาติปีใหม่",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.request(http.MethodPost, "/api/admin/announcements", token, map[string]any{
		"title": "ร่างประกาศ", "is_published": false,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.request(http.MethodPost, "/api/admin/announcements", token, map[string]any{
		"title": "ปิดปรับปรุงศาลาประจำตระกูล", "is_pinned": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// หน้าเว็บเห็นเฉพาะที่เผยแพร่ ปักหมุดขึ้นก่อน
	rec = s.request(http.MethodGet, "/api/announcements", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rows := dataOf(t, rec)["data"].([]any)
	require.Len(t, rows, 2)
	assert.Equal(t, "ปิดปรับปรุงศาลาประจำตระกูล", rows[0].(map[string]any)["title"])

	// หลังบ้านเห็นครบรวมร่าง
	rec = s.request(http.MethodGet, "/api/admin/announcements", token, nil)
	assert.Len(t, dataOf(t, rec)["data"], 3)
}

func TestAnnouncementUpdateAndDelete(t *testing.T) {
	s := newTestServer(t)
	token := seedAdmin(t, s)

	rec := s.request(http.MethodPost, "/api/admin/announcements", token, map[string]any{
		"title": "กำหนดการทำบุญ", "publish_at": "2026-04-13",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := uint(dataOf(t, rec)["id"].(float64))

	rec = s.request(http.MethodPut, fmt.Sprintf("/api/admin/announcements/%d", id), token,
		map[string]any{"title": "เลื่อนกำหนดการทำบุญ", "is_published": false})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.request(http.MethodGet, fmt.Sprintf("/api/announcements/%d", id), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := dataOf(t, rec)
	assert.Equal(t, "เลื่อนกำหนดการทำบุญ", data["title"])
	assert.Equal(t, false, data["is_published"])

	// วันที่ผิดรูปแบบ
	rec = s.request(http.MethodPut, fmt.Sprintf("/api/admin/announcements/%d", id), token,
		map[string]any{"title": "x", "publish_at": "13/04/2026"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.request(http.MethodDelete, fmt.Sprintf("/api/admin/announcements/%d", id), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = s.request(http.MethodGet, fmt.Sprintf("/api/announcements/%d", id), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
