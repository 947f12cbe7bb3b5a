package port

import (
	"image"

	"sheet-detect/internal/domain/entity"
)

// Renderer интерфейс показа результата
type Renderer interface {
	// Render рисует контур листа поверх изображения и показывает его
	Render(img image.Image, quad entity.Quadrilateral, title string) error

	// Wait блокирует до нажатия клавиши в окне
	Wait()

	// Close освобождает окна
	Close() error
}
