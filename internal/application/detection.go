package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"sheet-detect/internal/domain/entity"
	"sheet-detect/internal/domain/port"
)

// ErrImageUnreadable файл не удалось открыть или декодировать.
var ErrImageUnreadable = errors.New("could not open or find the image")

type DetectionService struct {
	loader    port.ImageLoader
	extractor port.ContourExtractor
	selector  *QuadSelector
	pose      port.PoseEstimator
	renderer  port.Renderer
}

// NewDetectionService создаёт сервис поиска листа. renderer может быть nil,
// тогда результат не показывается.
func NewDetectionService(
	loader port.ImageLoader,
	extractor port.ContourExtractor,
	selector *QuadSelector,
	pose port.PoseEstimator,
	renderer port.Renderer,
) *DetectionService {
	return &DetectionService{
		loader:    loader,
		extractor: extractor,
		selector:  selector,
		pose:      pose,
		renderer:  renderer,
	}
}

// Process ищет лист на одном изображении и оценивает позу камеры.
func (s *DetectionService) Process(ctx context.Context, path string) (*entity.Detection, error) {
	if s.loader == nil || s.extractor == nil || s.selector == nil || s.pose == nil {
		return nil, errors.New("detection service is not configured")
	}

	img, err := s.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrImageUnreadable, path, err)
	}

	contours, err := s.extractor.Extract(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("extract contours from %s: %w", path, err)
	}

	quad := s.selector.Select(contours)

	pose, err := s.pose.EstimatePose(ctx, img, quad)
	if err != nil {
		return nil, fmt.Errorf("estimate pose for %s: %w", path, err)
	}

	if s.renderer != nil {
		if err := s.renderer.Render(img, quad, path); err != nil {
			return nil, fmt.Errorf("render %s: %w", path, err)
		}
	}

	bounds := img.Bounds()
	return &entity.Detection{
		Path:        path,
		ImageWidth:  bounds.Dx(),
		ImageHeight: bounds.Dy(),
		Contours:    len(contours),
		Quad:        quad,
		Pose:        pose,
	}, nil
}

// ProcessAll обрабатывает файлы по очереди. Нечитаемые файлы пропускаются,
// остальные ошибки прерывают обработку.
func (s *DetectionService) ProcessAll(ctx context.Context, paths []string) ([]*entity.Detection, error) {
	results := make([]*entity.Detection, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		det, err := s.Process(ctx, path)
		if errors.Is(err, ErrImageUnreadable) {
			log.Printf("Could not open or find the image: %s (%v)", path, err)
			continue
		}
		if err != nil {
			return results, err
		}

		if !det.HasSheet() {
			log.Printf("No sheet found in %s (%d contours)", path, det.Contours)
		}
		results = append(results, det)
	}

	// Окна остаются открытыми до нажатия клавиши.
	if s.renderer != nil && len(results) > 0 {
		s.renderer.Wait()
	}

	return results, nil
}
