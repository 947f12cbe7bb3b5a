package entity

import "image"

// Contour замкнутый многоугольник в пикселях изображения.
// Последняя точка неявно соединяется с первой.
type Contour []image.Point

// Quadrilateral результат поиска листа: ровно 4 вершины или пусто.
type Quadrilateral []image.Point

// Found сообщает, найден ли четырёхугольник
func (q Quadrilateral) Found() bool {
	return len(q) == 4
}

// Contour возвращает вершины как замкнутый контур (для отрисовки)
func (q Quadrilateral) Contour() Contour {
	if !q.Found() {
		return nil
	}
	c := make(Contour, len(q))
	copy(c, q)
	return c
}
