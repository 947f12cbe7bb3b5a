package port

import (
	"context"
	"image"

	"sheet-detect/internal/domain/entity"
)

// ContourExtractor интерфейс поиска контуров на изображении
type ContourExtractor interface {
	// Extract выполняет предобработку (серый, размытие, дилатация, границы)
	// и возвращает контуры в порядке их обнаружения
	Extract(ctx context.Context, img image.Image) ([]entity.Contour, error)
}

// PolygonApproximator интерфейс упрощения контура
type PolygonApproximator interface {
	// ArcLength возвращает периметр контура
	ArcLength(c entity.Contour, closed bool) float64

	// Approximate упрощает контур с допуском epsilon
	Approximate(c entity.Contour, epsilon float64, closed bool) entity.Contour
}
