//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"sheet-detect/internal/domain/entity"
)

func TestStubExtractor(t *testing.T) {
	ex := NewGoCVExtractor(DefaultExtractorConfig())

	_, err := ex.Extract(context.Background(), image.NewGray(image.Rect(0, 0, 10, 10)))
	require.ErrorIs(t, err, ErrGoCVDisabled)
}

func TestStubRenderer(t *testing.T) {
	r := NewWindowRenderer(DefaultRendererConfig())

	err := r.Render(image.NewGray(image.Rect(0, 0, 10, 10)), nil, "x")
	require.ErrorIs(t, err, ErrGoCVDisabled)
	r.Wait()
	require.NoError(t, r.Close())
}

func TestStubApproximator(t *testing.T) {
	approx := NewApproximator()
	square := entity.Contour{{0, 0}, {100, 0}, {100, 100}, {0, 100}}

	require.InDelta(t, 400, approx.ArcLength(square, true), 1e-9)
	require.Equal(t, square, approx.Approximate(square, 8, true))
}
