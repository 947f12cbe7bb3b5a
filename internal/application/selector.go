package app

import (
	"math"

	"sheet-detect/internal/domain/entity"
	"sheet-detect/internal/domain/geometry"
	"sheet-detect/internal/domain/port"
)

// SelectorConfig пороги отбора четырёхугольника.
type SelectorConfig struct {
	AreaThreshold        float64 // минимальная площадь, пикс²
	SimplificationFactor float64 // доля периметра, допустимое отклонение при упрощении
	MaxCornerCosine      float64 // максимальный |cos| угла в вершине
}

// DefaultSelectorConfig возвращает пороги, подобранные для листа бумаги.
func DefaultSelectorConfig() SelectorConfig {
	return SelectorConfig{
		AreaThreshold:        1000.0,
		SimplificationFactor: 0.02,
		MaxCornerCosine:      0.3,
	}
}

// QuadSelector выбирает первый контур, похожий на лист бумаги.
type QuadSelector struct {
	cfg    SelectorConfig
	approx port.PolygonApproximator
}

// NewQuadSelector создаёт селектор; при approx == nil используется реализация на Go.
func NewQuadSelector(cfg SelectorConfig, approx port.PolygonApproximator) *QuadSelector {
	if approx == nil {
		approx = geometryApproximator{}
	}
	return &QuadSelector{cfg: cfg, approx: approx}
}

// Select возвращает первый подходящий четырёхугольник или пустой результат.
// Поиск останавливается на первом совпадении, лучшие кандидаты дальше не рассматриваются.
func (s *QuadSelector) Select(contours []entity.Contour) entity.Quadrilateral {
	for _, c := range contours {
		if len(c) < 3 {
			continue
		}

		// Точность упрощения пропорциональна периметру контура.
		eps := s.approx.ArcLength(c, true) * s.cfg.SimplificationFactor
		approx := s.approx.Approximate(c, eps, true)

		if s.accept(approx) {
			quad := make(entity.Quadrilateral, len(approx))
			copy(quad, approx)
			return quad
		}
	}
	return nil
}

func (s *QuadSelector) accept(approx entity.Contour) bool {
	if len(approx) != 4 {
		return false
	}
	if math.Abs(geometry.SignedArea(approx)) <= s.cfg.AreaThreshold {
		return false
	}
	if !geometry.IsConvex(approx) {
		return false
	}
	// Все углы должны быть близки к 90 градусам.
	return geometry.MaxCornerCosine(approx) < s.cfg.MaxCornerCosine
}

type geometryApproximator struct{}

func (geometryApproximator) ArcLength(c entity.Contour, closed bool) float64 {
	return geometry.ArcLength(c, closed)
}

func (geometryApproximator) Approximate(c entity.Contour, epsilon float64, closed bool) entity.Contour {
	return geometry.ApproxPolyDP(c, epsilon, closed)
}

var _ port.PolygonApproximator = geometryApproximator{}
