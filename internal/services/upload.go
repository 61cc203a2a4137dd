package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"campushire_backend/internal/imageprocessor"
	"campushire_backend/internal/logger"
	"campushire_backend/internal/storage"
	"campushire_backend/pkg/apperrors"
)

// UploadConfig - ограничения на картинку компании.
// Images == nil - файл сохраняется как есть.
type UploadConfig struct {
	MaxSize      int64
	AllowedTypes []string
	Images       *imageprocessor.Processor
}

func GetDefaultUploadConfig() UploadConfig {
	return UploadConfig{
		MaxSize:      5 * 1024 * 1024,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
		Images:       imageprocessor.NewProcessor(85, imageprocessor.SizeLogo),
	}
}

func (c UploadConfig) validate(file *multipart.FileHeader) (string, error) {
	if c.MaxSize > 0 && file.Size > c.MaxSize {
		return "", apperrors.ErrFileTooLarge
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = mime.TypeByExtension(strings.ToLower(filepath.Ext(file.Filename)))
	}
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}

	for _, allowed := range c.AllowedTypes {
		if mimeType == allowed {
			return mimeType, nil
		}
	}
	return "", apperrors.ErrInvalidFileType
}

// saveImage проверяет и сохраняет файл, возвращает ключ в хранилище
func saveImage(ctx context.Context, store storage.Storage, cfg UploadConfig, file *multipart.FileHeader) (string, error) {
	contentType, err := cfg.validate(file)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer src.Close()

	var body io.Reader = src
	name := file.Filename
	if cfg.Images != nil {
		// заголовок и расширение можно подделать, декодирование - нет
		res, err := cfg.Images.Normalize(src)
		if err != nil {
			if errors.Is(err, imageprocessor.ErrNotAnImage) {
				return "", apperrors.ErrInvalidFileType
			}
			return "", apperrors.InternalError(err)
		}
		body, contentType, name = bytes.NewReader(res.Data), res.ContentType, res.Ext
	}

	key := storage.NewObjectKey("jobs", name)
	if err := store.Save(ctx, key, body, contentType); err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeExternalServiceError, "storage", "Failed to store image", http.StatusInternalServerError)
	}
	return key, nil
}

// removeImage - удаление без ошибки для вызывающего, сбой только логируется
func removeImage(ctx context.Context, store storage.Storage, key *string) {
	if key == nil || *key == "" || store == nil {
		return
	}
	if err := store.Delete(ctx, *key); err != nil {
		logger.CtxWithError(ctx, "failed to remove company image", err, "key", *key)
	}
}

func imageURL(ctx context.Context, store storage.Storage, key *string) *string {
	if key == nil || *key == "" || store == nil {
		return nil
	}
	url, err := store.GetURL(ctx, *key)
	if err != nil {
		logger.CtxWithError(ctx, "failed to build image url", err, "key", *key)
		return nil
	}
	return &url
}
