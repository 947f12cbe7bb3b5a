package imageio

import (
	"fmt"
	"image"
	"path/filepath"
	"sort"

	"github.com/disintegration/imaging"

	"sheet-detect/internal/domain/port"
)

// DefaultPattern шаблон файлов, обрабатываемых без флага --path.
const DefaultPattern = "*.jpg"

// Loader загружает изображения с учётом EXIF-ориентации.
type Loader struct {
	// MaxSide ограничивает большую сторону изображения; 0 — без ограничения.
	MaxSide int
}

// NewLoader создаёт загрузчик
func NewLoader(maxSide int) *Loader {
	return &Loader{MaxSide: maxSide}
}

// Load читает изображение; снимки с телефона поворачиваются по EXIF.
func (l *Loader) Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}

	// Приводим изображение к стандартному размеру для стабильных порогов.
	b := img.Bounds()
	if l.MaxSide > 0 && (b.Dx() > l.MaxSide || b.Dy() > l.MaxSide) {
		img = imaging.Fit(img, l.MaxSide, l.MaxSide, imaging.Lanczos)
	}

	return img, nil
}

// Glob возвращает отсортированный список файлов dir, подходящих под pattern.
func Glob(dir, pattern string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// Проверка реализации интерфейса
var _ port.ImageLoader = (*Loader)(nil)
