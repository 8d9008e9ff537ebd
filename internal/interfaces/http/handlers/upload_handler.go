package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "campus-market.backend/internal/domain/errors"
	"campus-market.backend/internal/interfaces/http/response"
	"campus-market.backend/internal/usecases"
)

// multipartOverhead leaves room for form boundaries and headers on top of
// the image itself.
const multipartOverhead = 1 << 20

// UploadService stores and serves listing images
type UploadService interface {
	Save(ctx context.Context, r io.Reader, size int64, declaredType string) (string, error)
	Open(ctx context.Context, name string) (io.ReadCloser, string, error)
	MaxBytes() int64
}

// UploadHandler handles image uploads
type UploadHandler struct {
	uploadService UploadService
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadService UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadImage accepts a multipart "image" field
// POST /api/upload
func (h *UploadHandler) UploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.uploadService.MaxBytes()+multipartOverhead)

	header, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, domainerrors.BadRequest(usecases.MsgImageTooLarge))
			return
		}
		response.Error(c, domainerrors.BadRequest(usecases.MsgNoImage))
		return
	}

	file, err := header.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	name, err := h.uploadService.Save(c.Request.Context(), file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"imageUrl": usecases.ImageURL(name)})
}

// ServeImage streams a stored image
// GET /uploads/:name
func (h *UploadHandler) ServeImage(c *gin.Context) {
	rc, contentType, err := h.uploadService.Open(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, -1, contentType, rc, map[string]string{
		"Cache-Control":          "public, max-age=86400",
		"X-Content-Type-Options": "nosniff",
	})
}
