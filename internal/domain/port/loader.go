package port

import "image"

// ImageLoader интерфейс загрузки изображений с диска
type ImageLoader interface {
	// Load читает и декодирует изображение
	Load(path string) (image.Image, error)
}
