package port

import (
	"context"
	"image"

	"sheet-detect/internal/domain/entity"
)

// PoseEstimator интерфейс оценки позы камеры по найденному листу
type PoseEstimator interface {
	// EstimatePose возвращает позу камеры; quad может быть пустым
	EstimatePose(ctx context.Context, img image.Image, quad entity.Quadrilateral) (entity.CameraPose, error)
}
