package adaptor

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"rental-booking/internal/dto/response"
	"rental-booking/pkg/utils"

	"go.uber.org/zap"
)

var allowedUploadTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"image/gif":       ".gif",
	"video/mp4":       ".mp4",
	"video/webm":      ".webm",
	"video/quicktime": ".mov",
}

type UploadHandler struct {
	cfg utils.UploadConfig
	log *zap.Logger
}

func NewUploadHandler(cfg utils.UploadConfig, log *zap.Logger) *UploadHandler {
	return &UploadHandler{
		cfg: cfg,
		log: log.With(zap.String("handler", "upload")),
	}
}

// Upload handles POST /api/admin/upload (admin). Accepts a multipart form
// with a single "file" field; images and videos have separate size limits.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	maxBytes := int64(h.cfg.MaxVideoMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+1<<20)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.ResponseBadRequest(w, "Missing file field", nil)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedUploadTypes[contentType]
	if !ok {
		utils.ResponseBadRequest(w, fmt.Sprintf("Unsupported file type %q", contentType), nil)
		return
	}

	limit := int64(h.cfg.MaxImageMB) << 20
	kind := "image"
	if strings.HasPrefix(contentType, "video/") {
		limit = int64(h.cfg.MaxVideoMB) << 20
		kind = "video"
	}
	if header.Size > limit {
		utils.ResponseBadRequest(w,
			fmt.Sprintf("File too large: %s uploads are limited to %d MB", kind, limit>>20), nil)
		return
	}

	dir := filepath.Join(h.cfg.Dir, "uploads")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		h.log.Error("Failed to create upload directory", zap.Error(err), zap.String("dir", dir))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	filename := utils.GenerateFilename(ext)
	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		h.log.Error("Failed to create upload file", zap.Error(err), zap.String("filename", filename))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		h.log.Error("Failed to write upload", zap.Error(err), zap.String("filename", filename))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	admin, _ := utils.GetAdminFromContext(r.Context())
	h.log.Info("File uploaded",
		zap.String("filename", filename),
		zap.String("content_type", contentType),
		zap.Int64("size", header.Size),
		zap.String("uploaded_by", admin),
	)

	utils.ResponseCreated(w, "File uploaded", response.UploadResponse{
		URL:      "/uploads/" + filename,
		Filename: filename,
	})
}
