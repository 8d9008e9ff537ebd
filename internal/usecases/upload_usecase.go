package usecases

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	domainerrors "campus-market.backend/internal/domain/errors"
	"campus-market.backend/internal/infrastructure/storage"
	"campus-market.backend/pkg/crypto"
	"campus-market.backend/pkg/logger"
)

// ImageStorage is the object store uploaded images are written to.
type ImageStorage interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

const sniffLen = 512

var randomSuffix = func() (string, error) { return crypto.GenerateRandomToken(8) }

// UploadUsecase validates and stores listing images
type UploadUsecase struct {
	store    ImageStorage
	maxBytes int64
}

// NewUploadUsecase creates a new upload usecase
func NewUploadUsecase(store ImageStorage, maxBytes int64) *UploadUsecase {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	return &UploadUsecase{store: store, maxBytes: maxBytes}
}

// MaxBytes is the largest accepted image.
func (u *UploadUsecase) MaxBytes() int64 {
	return u.maxBytes
}

// Save stores an image and returns its generated object name. The content
// type is sniffed from the bytes and must agree with the declared one.
func (u *UploadUsecase) Save(ctx context.Context, r io.Reader, size int64, declaredType string) (string, error) {
	if r == nil || size == 0 {
		return "", domainerrors.BadRequest(MsgNoImage)
	}
	if size > u.maxBytes {
		return "", domainerrors.BadRequest(MsgImageTooLarge)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	head = head[:n]
	if n == 0 {
		return "", domainerrors.BadRequest(MsgNoImage)
	}

	sniffed := http.DetectContentType(head)
	ext, ok := allowedImageTypes[sniffed]
	if !ok || !sameMediaType(declaredType, sniffed) {
		return "", domainerrors.BadRequest(MsgInvalidImageType)
	}

	suffix, err := randomSuffix()
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%d-%s%s", nowUTC().UnixMilli(), suffix, ext)

	body := io.LimitReader(io.MultiReader(bytes.NewReader(head), r), u.maxBytes)
	if err := u.store.Put(ctx, name, body, size, sniffed); err != nil {
		return "", err
	}
	logger.Info(ctx, "image stored", zap.String("name", name), zap.Int64("size", size))
	return name, nil
}

// Open returns a stored image and its content type.
func (u *UploadUsecase) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	contentType, ok := imageTypeForExt(filepath.Ext(name))
	if !ok || storage.ValidateKey(name) != nil {
		return nil, "", domainerrors.NotFound("Image not found")
	}
	rc, err := u.store.Get(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) || errors.Is(err, storage.ErrInvalidKey) {
			return nil, "", domainerrors.NotFound("Image not found")
		}
		return nil, "", err
	}
	return rc, contentType, nil
}

// ImageURL is the public path an uploaded image is served from.
func ImageURL(name string) string {
	return "/uploads/" + name
}

func sameMediaType(declared, sniffed string) bool {
	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil {
		return false
	}
	if mediaType == "image/jpg" || mediaType == "image/pjpeg" {
		mediaType = "image/jpeg"
	}
	return mediaType == sniffed
}

func imageTypeForExt(ext string) (string, bool) {
	ext = strings.ToLower(ext)
	for contentType, e := range allowedImageTypes {
		if e == ext {
			return contentType, true
		}
	}
	return "", false
}
