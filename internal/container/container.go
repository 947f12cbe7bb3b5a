package container

import (
	app "sheet-detect/internal/application"
	"sheet-detect/internal/domain/port"
)

type Container struct {
	Selector         *app.QuadSelector
	DetectionService *app.DetectionService
}

func New(
	selectorCfg app.SelectorConfig,
	loader port.ImageLoader,
	extractor port.ContourExtractor,
	approx port.PolygonApproximator,
	pose port.PoseEstimator,
	renderer port.Renderer,
) *Container {
	selector := app.NewQuadSelector(selectorCfg, approx)
	detectionService := app.NewDetectionService(loader, extractor, selector, pose, renderer)

	return &Container{
		Selector:         selector,
		DetectionService: detectionService,
	}
}
