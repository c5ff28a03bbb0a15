package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createArticle(t *testing.T, s *testServer, token string, body map[string]any) uint {
	t.Helper()
	rec := s.request(http.MethodPost, "/api/admin/articles", token, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return uint(dataOf(t, rec)["id"].(float64))
}

func TestArticleVisibility(t *testing.T) {
	s := newTestServer(t)
	token := seedAdmin(t, s)

	draft := createArticle(t, s, token, map[string]any{
		"title": "ร่างประวัติต้นตระกูล", "is_published": false,
	})
	createArticle(t, s, token, map[string]any{
		"title": "ประวัติต้นตระกูล", "content": "เรื่องเล่าจากรุ่นปู่",
		"is_published": true, "published_at": "2024-01-15",
	})

	// ผู้เยี่ยมชมเห็นเฉพาะที่เผยแพร่แล้ว
	rec := s.request(http.MethodGet, "/api/articles", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rows := dataOf(t, rec)["data"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "ประวัติต้นตระกูล", rows[0].(map[string]any)["title"])

	// แนบโทเคนแอดมินเห็นทั้งหมด
	rec = s.request(http.MethodGet, "/api/articles", token, nil)
	assert.Len(t, dataOf(t, rec)["data"], 2)

	// ร่างเปิดดูตรง ๆ โดยไม่มีโทเคนต้องถูกปฏิเสธ แต่แอดมินเปิดได้
	rec = s.request(http.MethodGet, fmt.Sprintf("/api/articles/%d", draft), "", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = s.request(http.MethodGet, fmt.Sprintf("/api/articles/%d", draft), token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestArticleViewCount(t *testing.T) {
	s := newTestServer(t)
	token := seedAdmin(t, s)

	id := createArticle(t, s, token, map[string]any{
		"title": "สูตรอาหารประจำบ้าน", "is_published": true,
	})

	for i := 1; i <= 3; i++ {
		rec := s.request(http.MethodGet, fmt.Sprintf("/api/articles/%d", id), "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.EqualValues(t, i, dataOf(t, rec)["view_count"])
	}
}

func TestArticleFiltersAndPinOrder(t *testing.T) {
	s := newTestServer(t)
	token := seedAdmin(t, s)

	createArticle(t, s, token, map[string]any{
		"title": "งานบุญประจำปี", "category": "กิจกรรม", "is_published": true,
	})
	createArticle(t, s, token, map[string]any{
		"title": "ประกาศสำคัญ", "category": "ข่าว", "is_published": true, "is_pinned": true,
	})

	rec := s.request(http.MethodGet, "/api/articles?category=ข่าว", "", nil)
	rows := dataOf(t, rec)["data"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "ประกาศสำคัญ", rows[0].(map[string]any)["title"])

	// บทความปักหมุดต้องขึ้นก่อน
	rec = s.request(http.MethodGet, "/api/articles", "", nil)
	rows = dataOf(t, rec)["data"].([]any)
	require.Len(t, rows, 2)
	assert.Equal(t, "ประกาศสำคัญ", rows[0].(map[string]any)["title"])

	rec = s.request(http.MethodGet, "/api/articles?keyword=งานบุญ", "", nil)
	rows = dataOf(t, rec)["data"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "งานบุญประจำปี", rows[0].(map[string]any)["title"])
}

func TestArticleUpdateAndDelete(t *testing.T) {
	s := newTestServer(t)
	token := seedAdmin(t, s)

	id := createArticle(t, s, token, map[string]any{
		"title": "ฉบับแรก", "is_published": false,
	})

	rec := s.request(http.MethodPut, fmt.Sprintf("/api/admin/articles/%d", id), token,
		map[string]any{"title": "ฉบับแก้ไข", "is_published": true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.request(http.MethodGet, fmt.Sprintf("/api/articles/%d", id), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ฉบับแก้ไข", dataOf(t, rec)["title"])

	rec = s.request(http.MethodDelete, fmt.Sprintf("/api/admin/articles/%d", id), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = s.request(http.MethodGet, fmt.Sprintf("/api/articles/%d", id), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// งานเขียนของแอดมินต้องผ่านโทเคนเสมอ
	rec = s.request(http.MethodPost, "/api/admin/articles", "", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
