//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"image"

	"sheet-detect/internal/domain/entity"
	"sheet-detect/internal/domain/geometry"
)

type GoCVExtractor struct {
	cfg ExtractorConfig
}

// NewGoCVExtractor создаёт экстрактор-заглушку (без OpenCV).
func NewGoCVExtractor(cfg ExtractorConfig) *GoCVExtractor {
	return &GoCVExtractor{cfg: cfg}
}

// Extract возвращает ошибку, если сборка без тега gocv.
func (e *GoCVExtractor) Extract(ctx context.Context, img image.Image) ([]entity.Contour, error) {
	_ = ctx
	_ = img
	return nil, ErrGoCVDisabled
}

// Approximator без OpenCV упрощает контуры пакетом geometry.
type Approximator struct{}

func NewApproximator() *Approximator {
	return &Approximator{}
}

func (a *Approximator) ArcLength(c entity.Contour, closed bool) float64 {
	return geometry.ArcLength(c, closed)
}

func (a *Approximator) Approximate(c entity.Contour, epsilon float64, closed bool) entity.Contour {
	return geometry.ApproxPolyDP(c, epsilon, closed)
}

type WindowRenderer struct {
	cfg RendererConfig
}

// NewWindowRenderer создаёт окно-заглушку (без OpenCV).
func NewWindowRenderer(cfg RendererConfig) *WindowRenderer {
	return &WindowRenderer{cfg: cfg}
}

// Render возвращает ошибку, если сборка без тега gocv.
func (r *WindowRenderer) Render(img image.Image, quad entity.Quadrilateral, title string) error {
	_ = img
	_ = quad
	_ = title
	return ErrGoCVDisabled
}

func (r *WindowRenderer) Wait() {}

func (r *WindowRenderer) Close() error { return nil }
