package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("file not found")
	ErrInvalidPath = errors.New("invalid file path")
)

// Storage - хранилище загруженных файлов (логотипы компаний)
type Storage interface {
	// Save сохраняет файл по ключу
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Get открывает файл; ErrNotFound если его нет
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete удаляет файл; отсутствие файла не ошибка
	Delete(ctx context.Context, key string) error

	Exists(ctx context.Context, key string) (bool, error)

	// GetURL возвращает публичный URL файла
	GetURL(ctx context.Context, key string) (string, error)

	// List перечисляет файлы под префиксом; пустой префикс - все
	List(ctx context.Context, prefix string) ([]Object, error)
}

type Object struct {
	Key     string
	ModTime time.Time
}

// Config holds storage configuration
type Config struct {
	Type     string // local
	BasePath string
	BaseURL  string
}

func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local", "":
		return NewLocalStorage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

// NewObjectKey строит ключ вида "<prefix>/<uuid><ext>"; имя клиента не используется
func NewObjectKey(prefix, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return path.Join(prefix, uuid.NewString()+ext)
}

// cleanKey отсекает абсолютные пути и выход за пределы хранилища
func cleanKey(key string) (string, error) {
	if key == "" || strings.Contains(key, "\\") {
		return "", ErrInvalidPath
	}
	cleaned := path.Clean("/" + key)[1:]
	if cleaned == "" || cleaned != strings.TrimPrefix(key, "/") {
		return "", ErrInvalidPath
	}
	return cleaned, nil
}
