package geometry

import (
	"image"

	"github.com/golang/geo/r2"
)

// ApproxPolyDP упрощает ломаную алгоритмом Дугласа-Пекера с допуском epsilon.
//
// Замкнутый контур делится на две цепочки: от первой точки до самой
// удалённой от неё и обратно. После этого удаляются вершины, лежащие
// ближе epsilon к хорде соседей (в том числе исходная первая точка,
// если она оказалась посреди стороны). Порядок вершин сохраняется.
func ApproxPolyDP(pts []image.Point, epsilon float64, closed bool) []image.Point {
	n := len(pts)
	if n < 3 || epsilon < 0 {
		return clone(pts)
	}

	if !closed {
		keep := make([]bool, n)
		keep[0], keep[n-1] = true, true
		simplifyChain(pts, indices(0, n-1, n), epsilon, keep)
		return collect(pts, keep)
	}

	far := farthestFrom(pts, 0)
	if far == 0 {
		// все точки совпадают
		return []image.Point{pts[0]}
	}

	keep := make([]bool, n)
	keep[0], keep[far] = true, true
	simplifyChain(pts, indices(0, far, n), epsilon, keep)
	simplifyChain(pts, indices(far, n, n), epsilon, keep)

	return dropFlat(collect(pts, keep), epsilon)
}

// indices возвращает индексы from..to включительно по модулю n.
func indices(from, to, n int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i%n)
	}
	return out
}

func simplifyChain(pts []image.Point, chain []int, epsilon float64, keep []bool) {
	if len(chain) < 3 {
		return
	}
	a := vec(pts[chain[0]])
	b := vec(pts[chain[len(chain)-1]])

	maxDist, split := -1.0, -1
	for i := 1; i < len(chain)-1; i++ {
		d := lineDistance(vec(pts[chain[i]]), a, b)
		if d > maxDist {
			maxDist, split = d, i
		}
	}
	if maxDist <= epsilon {
		return
	}

	keep[chain[split]] = true
	simplifyChain(pts, chain[:split+1], epsilon, keep)
	simplifyChain(pts, chain[split:], epsilon, keep)
}

// dropFlat убирает вершины замкнутого многоугольника, почти лежащие на хорде соседей.
func dropFlat(poly []image.Point, epsilon float64) []image.Point {
	for len(poly) > 3 {
		removed := false
		for i := 0; i < len(poly); i++ {
			prev := vec(poly[(i+len(poly)-1)%len(poly)])
			next := vec(poly[(i+1)%len(poly)])
			if lineDistance(vec(poly[i]), prev, next) <= epsilon {
				poly = append(poly[:i], poly[i+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			break
		}
	}
	return poly
}

// lineDistance расстояние от p до прямой ab (или до точки a, если a == b).
func lineDistance(p, a, b r2.Point) float64 {
	ab := b.Sub(a)
	norm := ab.Norm()
	if norm == 0 {
		return p.Sub(a).Norm()
	}
	d := ab.Cross(p.Sub(a)) / norm
	if d < 0 {
		return -d
	}
	return d
}

func farthestFrom(pts []image.Point, idx int) int {
	origin := vec(pts[idx])
	best, bestDist := idx, 0.0
	for i, p := range pts {
		if d := vec(p).Sub(origin).Norm(); d > bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func collect(pts []image.Point, keep []bool) []image.Point {
	out := make([]image.Point, 0, 8)
	for i, k := range keep {
		if k {
			out = append(out, pts[i])
		}
	}
	return out
}

func clone(pts []image.Point) []image.Point {
	if pts == nil {
		return nil
	}
	out := make([]image.Point, len(pts))
	copy(out, pts)
	return out
}
