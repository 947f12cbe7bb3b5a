package geometry

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApproxPolyDP_KeepsSquare(t *testing.T) {
	got := ApproxPolyDP(square, 0.02*ArcLength(square, true), true)
	require.Equal(t, square, got)
}

func TestApproxPolyDP_DropsEdgePoints(t *testing.T) {
	// контур трассировщика: точки по сторонам прямоугольника
	var c []image.Point
	for x := 0; x < 200; x += 10 {
		c = append(c, image.Pt(x, 0))
	}
	for y := 0; y < 100; y += 10 {
		c = append(c, image.Pt(200, y))
	}
	for x := 200; x > 0; x -= 10 {
		c = append(c, image.Pt(x, 100))
	}
	for y := 100; y > 0; y -= 10 {
		c = append(c, image.Pt(0, y))
	}

	got := ApproxPolyDP(c, 0.02*ArcLength(c, true), true)
	require.Equal(t, []image.Point{{0, 0}, {200, 0}, {200, 100}, {0, 100}}, got)
}

func TestApproxPolyDP_StartMidEdge(t *testing.T) {
	c := []image.Point{{50, 0}, {100, 0}, {100, 100}, {0, 100}, {0, 0}}

	got := ApproxPolyDP(c, 0.02*ArcLength(c, true), true)
	require.Equal(t, []image.Point{{100, 0}, {100, 100}, {0, 100}, {0, 0}}, got)
}

func TestApproxPolyDP_KeepsPentagon(t *testing.T) {
	pentagon := make([]image.Point, 5)
	for i := range pentagon {
		a := 2 * math.Pi * float64(i) / 5
		pentagon[i] = image.Pt(int(200+100*math.Cos(a)), int(200+100*math.Sin(a)))
	}

	got := ApproxPolyDP(pentagon, 0.02*ArcLength(pentagon, true), true)
	require.Len(t, got, 5)
}

func TestApproxPolyDP_Open(t *testing.T) {
	line := []image.Point{{0, 0}, {5, 1}, {10, 0}, {20, 0}}
	require.Equal(t, []image.Point{{0, 0}, {20, 0}}, ApproxPolyDP(line, 2, false))
	require.Equal(t, line, ApproxPolyDP(line, 0.5, false))
}

func TestApproxPolyDP_Degenerate(t *testing.T) {
	same := []image.Point{{3, 3}, {3, 3}, {3, 3}}
	require.Equal(t, []image.Point{{3, 3}}, ApproxPolyDP(same, 1, true))

	require.Nil(t, ApproxPolyDP(nil, 1, true))
	require.Equal(t, square[:2], ApproxPolyDP(square[:2], 1, true))
}
