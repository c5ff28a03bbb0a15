package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/patiponrmutl/BEFamily/config"
	"github.com/patiponrmutl/BEFamily/database"
	"github.com/patiponrmutl/BEFamily/handlers"
	"github.com/patiponrmutl/BEFamily/models"
	"github.com/patiponrmutl/BEFamily/routes"
)

const testSecret = "test-secret"

type testServer struct {
	e   *echo.Echo
	cfg *config.Config
	t   *testing.T
}

// newTestServer เปิด SQLite in-memory แทน Postgres แล้วประกอบ echo ให้ครบ
// เหมือนตอนรันจริง (validator, error handler, เส้นทางทั้งหมด)
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	cfg := &config.Config{
		AppPort:   "0",
		JWTSecret: testSecret,
		UploadDir: t.TempDir(),
		BackupDir: t.TempDir(),
	}

	e := echo.New()
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = handlers.ErrorHandler
	routes.Register(e, cfg)

	return &testServer{e: e, cfg: cfg, t: t}
}

// request ยิง request เข้า echo โดยตรง (ไม่เปิดพอร์ตจริง)
func (s *testServer) request(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func dataOf(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	return decodeBody(t, rec)["data"].(map[string]any)
}

// seedAdmin สร้างบัญชีแอดมินแล้วล็อกอินผ่าน API เพื่อเอาโทเคนจริงมาใช้
func seedAdmin(t *testing.T, s *testServer) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, database.DB.Create(&models.Admin{
		Username: "admin",
		Password: string(hash),
		Role:     "admin",
		IsActive: true,
	}).Error)

	rec := s.request(http.MethodPost, "/api/auth/admin/login", "", map[string]any{
		"username": "admin",
		"password": "admin1234",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	return dataOf(t, rec)["token"].(string)
}
