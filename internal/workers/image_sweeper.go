package workers

import (
	"context"
	"time"

	"campushire_backend/internal/logger"
	"campushire_backend/internal/observability"
	"campushire_backend/internal/repositories"
	"campushire_backend/internal/storage"

	"gorm.io/gorm"
)

const imagePrefix = "jobs"

// ImageSweeper удаляет логотипы, на которые не ссылается ни одна вакансия.
// Такие файлы остаются, когда удаление из хранилища после DELETE не удалось.
type ImageSweeper struct {
	db      *gorm.DB
	storage storage.Storage
	jobRepo repositories.JobRepository

	// файл моложе grace не трогаем: вакансия под него может еще не быть закоммичена
	grace time.Duration
	now   func() time.Time
}

func NewImageSweeper(db *gorm.DB, store storage.Storage, jobRepo repositories.JobRepository, grace time.Duration) *ImageSweeper {
	return &ImageSweeper{
		db:      db,
		storage: store,
		jobRepo: jobRepo,
		grace:   grace,
		now:     time.Now,
	}
}

// Start запускает периодическую чистку до отмены ctx
func (w *ImageSweeper) Start(ctx context.Context, interval time.Duration) {
	go w.loop(ctx, interval)
}

func (w *ImageSweeper) loop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Image sweeper stopped")
			return
		case <-ticker.C:
			removed, err := w.SweepOnce(ctx)
			if err != nil {
				logger.Error("Error sweeping orphaned images", "error", err)
			} else if removed > 0 {
				logger.Info("Removed orphaned images", "count", removed)
			}
		}
	}
}

// SweepOnce - один проход; возвращает число удаленных файлов
func (w *ImageSweeper) SweepOnce(ctx context.Context) (int, error) {
	objects, err := w.storage.List(ctx, imagePrefix)
	if err != nil {
		return 0, err
	}
	if len(objects) == 0 {
		return 0, nil
	}

	keys, err := w.jobRepo.ImageKeys(w.db.WithContext(ctx))
	if err != nil {
		return 0, err
	}
	referenced := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		referenced[k] = struct{}{}
	}

	cutoff := w.now().Add(-w.grace)
	removed := 0
	for _, obj := range objects {
		if _, ok := referenced[obj.Key]; ok {
			continue
		}
		if obj.ModTime.After(cutoff) {
			continue
		}
		if err := w.storage.Delete(ctx, obj.Key); err != nil {
			logger.Warn("Failed to remove orphaned image", "key", obj.Key, "error", err)
			continue
		}
		removed++
	}

	observability.OrphanImagesRemoved.Add(float64(removed))
	return removed, nil
}
