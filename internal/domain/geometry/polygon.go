// Package geometry содержит операции над многоугольниками в пиксельных координатах.
//
// Семантика совпадает с функциями OpenCV (arcLength, contourArea,
// isContourConvex, approxPolyDP), чтобы отбор кандидатов работал
// одинаково со сборкой gocv и без неё.
package geometry

import (
	"image"
	"math"

	"github.com/golang/geo/r2"
)

// cosineEpsilon защищает от деления на ноль при вырожденных рёбрах.
const cosineEpsilon = 1e-10

func vec(p image.Point) r2.Point {
	return r2.Point{X: float64(p.X), Y: float64(p.Y)}
}

// ArcLength возвращает длину ломаной; для замкнутой учитывается ребро последняя-первая.
func ArcLength(pts []image.Point, closed bool) float64 {
	if len(pts) < 2 {
		return 0
	}
	var length float64
	for i := 1; i < len(pts); i++ {
		length += vec(pts[i]).Sub(vec(pts[i-1])).Norm()
	}
	if closed {
		length += vec(pts[0]).Sub(vec(pts[len(pts)-1])).Norm()
	}
	return length
}

// SignedArea площадь по формуле шнурков; знак зависит от направления обхода.
func SignedArea(pts []image.Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	prev := vec(pts[len(pts)-1])
	for _, p := range pts {
		cur := vec(p)
		sum += prev.Cross(cur)
		prev = cur
	}
	return sum / 2
}

// Area абсолютная площадь многоугольника.
func Area(pts []image.Point) float64 {
	return math.Abs(SignedArea(pts))
}

// IsConvex проверяет, что все повороты при обходе имеют один знак.
// Нулевой поворот (три точки на одной прямой) считается нарушением, как в OpenCV.
func IsConvex(pts []image.Point) bool {
	n := len(pts)
	if n < 3 {
		return false
	}
	var sign int
	for i := 0; i < n; i++ {
		a := vec(pts[i])
		b := vec(pts[(i+1)%n])
		c := vec(pts[(i+2)%n])
		cross := b.Sub(a).Cross(c.Sub(b))
		switch {
		case cross > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		case cross < 0:
			if sign > 0 {
				return false
			}
			sign = -1
		default:
			return false
		}
	}
	return true
}

// CornerCosine косинус угла в вершине pt0 между рёбрами pt0->pt1 и pt0->pt2.
func CornerCosine(pt1, pt2, pt0 image.Point) float64 {
	d1 := vec(pt1).Sub(vec(pt0))
	d2 := vec(pt2).Sub(vec(pt0))
	return d1.Dot(d2) / math.Sqrt(d1.Dot(d1)*d2.Dot(d2)+cosineEpsilon)
}

// MaxCornerCosine максимум |cos| по всем вершинам замкнутого многоугольника.
func MaxCornerCosine(pts []image.Point) float64 {
	n := len(pts)
	var maxCosine float64
	for i := 0; i < n; i++ {
		prev := pts[(i+n-1)%n]
		next := pts[(i+1)%n]
		maxCosine = math.Max(maxCosine, math.Abs(CornerCosine(next, prev, pts[i])))
	}
	return maxCosine
}
