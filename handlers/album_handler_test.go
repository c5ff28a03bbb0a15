package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patiponrmutl/BEFamily/database"
	"github.com/patiponrmutl/BEFamily/models"
)

func createAlbum(t *testing.T, s *testServer, token string, body map[string]any) uint {
	t.Helper()
	rec := s.request(http.MethodPost, "/api/admin/albums", token, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return uint(dataOf(t, rec)["id"].(float64))
}

func TestAlbumListShowsOnlyPublic(t *testing.T) {
	s := newTestServer(t)
	token := seedAdmin(t, s)

	createAlbum(t, s, token, map[string]any{"name": "งานบวช"})
	createAlbum(t, s, token, map[string]any{"name": "รูปในบ้าน", "is_public": false})

	rec := s.request(http.MethodGet, "/api/albums", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rows := dataOf(t, rec)["data"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "งานบวช", rows[0].(map[string]any)["name"])
}

func TestAlbumImageLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := seedAdmin(t, s)

	albumID := createAlbum(t, s, token, map[string]any{"name": "งานแต่งปี 2540"})

	rec := s.request(http.MethodPost, fmt.Sprintf("/api/admin/albums/%d/images", albumID),
		token, map[string]any{"image_path": "/uploads/254005/wedding1.jpg", "caption": "พิธีเช้า", "sort_order": 2})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	imgID := uint(dataOf(t, rec)["id"].(float64))

	rec = s.request(http.MethodPost, fmt.Sprintf("/api/admin/albums/%d/images", albumID),
		token, map[string]any{"image_path": "/uploads/254005/wedding2.jpg", "sort_order": 1})
	require.Equal(t, http.StatusCreated, rec.Code)

	// รูปในอัลบั้มเรียงตาม sort_order
	rec = s.request(http.MethodGet, fmt.Sprintf("/api/albums/%d", albumID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	images := dataOf(t, rec)["images"].([]any)
	require.Len(t, images, 2)
	assert.Equal(t, "/uploads/254005/wedding2.jpg", images[0].(map[string]any)["image_path"])

	rec = s.request(http.MethodPut, fmt.Sprintf("/api/admin/albums/images/%d", imgID),
		token, map[string]any{"caption": "พิธีสงฆ์", "sort_order": 0})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.request(http.MethodGet, fmt.Sprintf("/api/albums/%d", albumID), "", nil)
	images = dataOf(t, rec)["images"].([]any)
	assert.Equal(t, "พิธีสงฆ์", images[0].(map[string]any)["caption"])

	rec = s.request(http.MethodDelete, fmt.Sprintf("/api/admin/albums/images/%d", imgID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// เพิ่มรูปเข้าอัลบั้มที่ไม่มีอยู่
	rec = s.request(http.MethodPost, "/api/admin/albums/9999/images", token,
		map[string]any{"image_path": "/uploads/x.jpg"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAlbumDeleteRemovesImages(t *testing.T) {
	s := newTestServer(t)
	token := seedAdmin(t, s)

	albumID := createAlbum(t, s, token, map[string]any{"name": "สงกรานต์"})
	rec := s.request(http.MethodPost, fmt.Sprintf("/api/admin/albums/%d/images", albumID),
		token, map[string]any{"image_path": "/uploads/256704/songkran.jpg"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.request(http.MethodDelete, fmt.Sprintf("/api/admin/albums/%d", albumID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var n int64
	require.NoError(t, database.DB.Model(&models.AlbumImage{}).
		Where("album_id = ?", albumID).Count(&n).Error)
	assert.EqualValues(t, 0, n)

	rec = s.request(http.MethodGet, fmt.Sprintf("/api/albums/%d", albumID), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
