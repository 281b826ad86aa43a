package adaptor

import (
	"net/http"

	"event-booking/internal/storage"
	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

type UploadHandler struct {
	files storage.FileStore
	log   *zap.Logger
}

func NewUploadHandler(files storage.FileStore, log *zap.Logger) *UploadHandler {
	return &UploadHandler{
		files: files,
		log:   log.With(zap.String("handler", "upload")),
	}
}

// Upload handles POST /api/v2/upload
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.ResponseBadRequest(w, "File is required", nil)
		return
	}
	defer file.Close()

	path, err := h.files.Save(file, header.Filename)
	if err != nil {
		h.log.Warn("Upload rejected",
			zap.Error(err),
			zap.String("filename", header.Filename),
		)
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	utils.ResponseSuccess(w, "File uploaded successfully", map[string]string{
		"filename":      path,
		"original_name": header.Filename,
	})
}
