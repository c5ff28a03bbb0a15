package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/patiponrmutl/BEFamily/config"
)

type UploadHandler struct {
	Dir string
}

func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{Dir: cfg.UploadDir}
}

const maxUploadSize = 5 << 20 // 5MB

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type uploadedFile struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// saveImage ตรวจนามสกุล/ขนาด แล้วเก็บไฟล์ไว้ใต้ uploads/YYYYMM/ ด้วยชื่อสุ่ม
func (h *UploadHandler) saveImage(file *multipart.FileHeader) (*uploadedFile, string) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExt[ext] {
		return nil, "รองรับเฉพาะไฟล์รูปภาพ (jpg, jpeg, png, gif, webp)"
	}
	if file.Size > maxUploadSize {
		return nil, "ไฟล์ต้องมีขนาดไม่เกิน 5MB"
	}

	subdir := time.Now().Format("200601")
	name := uuid.NewString() + ext
	dir := filepath.Join(h.Dir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "ไม่สามารถบันทึกไฟล์ได้"
	}

	src, err := file.Open()
	if err != nil {
		return nil, "ไม่สามารถอ่านไฟล์ได้"
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, "ไม่สามารถบันทึกไฟล์ได้"
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, "ไม่สามารถบันทึกไฟล์ได้"
	}

	return &uploadedFile{
		URL:      "/uploads/" + subdir + "/" + name,
		Filename: name,
		Size:     file.Size,
	}, ""
}

// POST /api/admin/upload/image (field: image)
func (h *UploadHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return fail(c, http.StatusBadRequest, "ไม่มีไฟล์อัปโหลด")
	}

	out, msg := h.saveImage(file)
	if out == nil {
		return fail(c, http.StatusBadRequest, msg)
	}
	return ok(c, http.StatusCreated, "อัปโหลดสำเร็จ", out)
}

// POST /api/admin/upload/images (field: images สูงสุด 10 ไฟล์)
func (h *UploadHandler) UploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return fail(c, http.StatusBadRequest, "ไม่มีไฟล์อัปโหลด")
	}
	files := form.File["images"]
	if len(files) == 0 {
		return fail(c, http.StatusBadRequest, "ไม่มีไฟล์อัปโหลด")
	}
	if len(files) > 10 {
		return fail(c, http.StatusBadRequest, "อัปโหลดได้ครั้งละไม่เกิน 10 ไฟล์")
	}

	results := make([]uploadedFile, 0, len(files))
	for _, f := range files {
		out, msg := h.saveImage(f)
		if out == nil {
			return fail(c, http.StatusBadRequest, msg)
		}
		results = append(results, *out)
	}
	return ok(c, http.StatusCreated, "อัปโหลดสำเร็จ", results)
}
