package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patiponrmutl/BEFamily/database"
	"github.com/patiponrmutl/BEFamily/models"
)

func seedConfigs(t *testing.T, kv map[string]string) {
	t.Helper()
	for k, v := range kv {
		require.NoError(t, database.DB.Create(&models.SiteConfig{
			ConfigKey: k, ConfigValue: v,
		}).Error)
	}
}

func TestConfigPublicExposesOnlyWhitelistedKeys(t *testing.T) {
	s := newTestServer(t)
	seedConfigs(t, map[string]string{
		"site_name":     "บ้านสกุลดี",
		"contact_email": "family@example.com",
		"smtp_password": "super-secret",
	})

	rec := s.request(http.MethodGet, "/api/configs", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := dataOf(t, rec)
	assert.Equal(t, "บ้านสกุลดี", data["site_name"])
	assert.Equal(t, "family@example.com", data["contact_email"])
	assert.NotContains(t, data, "smtp_password")

	// หลังบ้านเห็นครบทุก key
	token := seedAdmin(t, s)
	rec = s.request(http.MethodGet, "/api/admin/configs", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, dataOf(t, rec), "smtp_password")
}

func TestConfigUpdateSingleKey(t *testing.T) {
	s := newTestServer(t)
	token := seedAdmin(t, s)
	seedConfigs(t, map[string]string{"site_name": "ชื่อเดิม"})

	rec := s.request(http.MethodPut, "/api/admin/configs/site_name", token,
		map[string]any{"value": "ชื่อใหม่"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.request(http.MethodGet, "/api/admin/configs/site_name", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ชื่อใหม่", dataOf(t, rec)["config_value"])

	rec = s.request(http.MethodPut, "/api/admin/configs/unknown_key", token,
		map[string]any{"value": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConfigBulkUpdate(t *testing.T) {
	s := newTestServer(t)
	token := seedAdmin(t, s)
	seedConfigs(t, map[string]string{
		"site_name":   "ชื่อเดิม",
		"footer_text": "ข้อความเดิม",
	})

	rec := s.request(http.MethodPut, "/api/admin/configs", token, map[string]any{
		"site_name":   "ชื่อใหม่",
		"footer_text": "ข้อความใหม่",
		"unknown_key": "ถูกข้าม",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.request(http.MethodGet, "/api/admin/configs", token, nil)
	data := dataOf(t, rec)
	assert.Equal(t, "ชื่อใหม่", data["site_name"])
	assert.Equal(t, "ข้อความใหม่", data["footer_text"])
	assert.NotContains(t, data, "unknown_key")
}
