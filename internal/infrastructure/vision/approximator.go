//go:build gocv
// +build gocv

package vision

import (
	"gocv.io/x/gocv"

	"sheet-detect/internal/domain/entity"
	"sheet-detect/internal/domain/port"
)

// Approximator упрощает контуры через cv::approxPolyDP.
type Approximator struct{}

func NewApproximator() *Approximator {
	return &Approximator{}
}

func (a *Approximator) ArcLength(c entity.Contour, closed bool) float64 {
	pv := gocv.NewPointVectorFromPoints(c)
	defer pv.Close()
	return gocv.ArcLength(pv, closed)
}

func (a *Approximator) Approximate(c entity.Contour, epsilon float64, closed bool) entity.Contour {
	pv := gocv.NewPointVectorFromPoints(c)
	defer pv.Close()

	approx := gocv.ApproxPolyDP(pv, epsilon, closed)
	defer approx.Close()

	return approx.ToPoints()
}

var _ port.PolygonApproximator = (*Approximator)(nil)
