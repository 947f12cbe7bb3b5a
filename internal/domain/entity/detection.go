package entity

// Detection хранит итог обработки одного изображения.
type Detection struct {
	Path        string        // путь к файлу
	ImageWidth  int           // ширина изображения
	ImageHeight int           // высота изображения
	Contours    int           // сколько контуров пришло от экстрактора
	Quad        Quadrilateral // найденный лист (может быть пустым)
	Pose        CameraPose    // оценка позы камеры
}

// HasSheet флаг наличия листа на изображении
func (d *Detection) HasSheet() bool {
	return d.Quad.Found()
}
