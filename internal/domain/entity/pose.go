package entity

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// CameraPose положение камеры относительно листа.
type CameraPose struct {
	Position    r3.Vector // координаты камеры
	Orientation r3.Vector // углы поворота камеры
}

// String форматирует позу построчно
func (p CameraPose) String() string {
	return fmt.Sprintf("position: [%g, %g, %g]\norientation: [%g, %g, %g]\n",
		p.Position.X, p.Position.Y, p.Position.Z,
		p.Orientation.X, p.Orientation.Y, p.Orientation.Z)
}
