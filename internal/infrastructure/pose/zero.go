package pose

import (
	"context"
	"image"

	"sheet-detect/internal/domain/entity"
	"sheet-detect/internal/domain/port"
)

// ZeroEstimator заглушка оценки позы: всегда возвращает нулевую позу.
// TODO: восстановить позу по гомографии листа и калибровке камеры.
type ZeroEstimator struct{}

// NewZeroEstimator создаёт заглушку оценщика позы
func NewZeroEstimator() *ZeroEstimator {
	return &ZeroEstimator{}
}

// EstimatePose возвращает нулевую позу независимо от входа.
func (e *ZeroEstimator) EstimatePose(ctx context.Context, img image.Image, quad entity.Quadrilateral) (entity.CameraPose, error) {
	_ = ctx
	_ = img
	_ = quad
	return entity.CameraPose{}, nil
}

// Проверка реализации интерфейса
var _ port.PoseEstimator = (*ZeroEstimator)(nil)
