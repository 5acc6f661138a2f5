// internal/handlers/upload.go
package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sportsfed/fedsite/internal/i18n"
	"github.com/sportsfed/fedsite/internal/services"
	"github.com/sportsfed/fedsite/internal/utils"
)

// multipartOverhead is the room left for form boundaries and headers on
// top of the file size limit.
const multipartOverhead = 1 << 20

type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler(storageService *services.StorageService) *UploadHandler {
	return &UploadHandler{storageService: storageService}
}

// POST /api/upload
func (h *UploadHandler) Upload(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	maxBytes := h.storageService.MaxBytes()
	tooLarge := i18n.T(lang, i18n.KeyUploadTooLarge, maxBytes/(1024*1024))

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+multipartOverhead)

	file, header, err := formFile(c, "file", "image")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			utils.BadRequestResponse(c, tooLarge)
			return
		}
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyUploadMissingFile))
		return
	}
	defer file.Close()

	if header.Size > maxBytes {
		utils.BadRequestResponse(c, tooLarge)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		logrus.WithError(err).Error("Failed to read uploaded file")
		utils.InternalErrorResponse(c)
		return
	}

	result, err := h.storageService.UploadImage(c.Request.Context(), header.Header.Get("Content-Type"), data)
	switch {
	case err == nil:
		utils.SuccessResponse(c, result)
	case errors.Is(err, services.ErrFileTooLarge):
		utils.BadRequestResponse(c, tooLarge)
	case errors.Is(err, services.ErrUnsupportedImage):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyUploadNotImage))
	case errors.Is(err, services.ErrStorageNotAvailable):
		logrus.WithError(err).Error("Upload storage unavailable")
		utils.ErrorResponse(c, http.StatusInternalServerError, i18n.T(lang, i18n.KeyUploadNotAvailable))
	default:
		logrus.WithError(err).Error("Upload failed")
		utils.InternalErrorResponse(c)
	}
}

// formFile returns the first multipart file found under any of fields.
func formFile(c *gin.Context, fields ...string) (multipart.File, *multipart.FileHeader, error) {
	var lastErr error
	for _, field := range fields {
		file, header, err := c.Request.FormFile(field)
		if err == nil {
			return file, header, nil
		}
		lastErr = err
		var maxErr *http.MaxBytesError
		if errors.As(lastErr, &maxErr) {
			break
		}
	}
	return nil, nil, lastErr
}
