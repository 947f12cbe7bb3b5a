// Package vision связывает поиск листа с OpenCV через gocv.
//
// Реализации на gocv собираются только с тегом gocv; без него экстрактор
// и окно вывода возвращают ErrGoCVDisabled, а упрощение контуров
// выполняется пакетом geometry.
package vision

import (
	"errors"
	"image/color"
)

// ErrGoCVDisabled сборка без тега gocv.
var ErrGoCVDisabled = errors.New("gocv build tag is not enabled")

// ExtractorConfig параметры предобработки перед поиском контуров.
type ExtractorConfig struct {
	BlurKernel     int     // размер ядра гауссова размытия (нечётный)
	DilateKernel   int     // размер прямоугольного ядра дилатации
	CannyThreshold float32 // верхний порог Canny, нижний всегда 0
}

// DefaultExtractorConfig параметры, подобранные для фото листа на столе.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		BlurKernel:     11,
		DilateKernel:   9,
		CannyThreshold: 50,
	}
}

// RendererConfig параметры отрисовки контура листа.
type RendererConfig struct {
	Color     color.RGBA
	Thickness int
}

// DefaultRendererConfig синий контур толщиной 3.
func DefaultRendererConfig() RendererConfig {
	return RendererConfig{
		Color:     color.RGBA{B: 255, A: 255},
		Thickness: 3,
	}
}
