//go:build gocv
// +build gocv

package vision

import (
	"errors"
	"image"

	"gocv.io/x/gocv"

	"sheet-detect/internal/domain/entity"
	"sheet-detect/internal/domain/port"
)

// WindowRenderer показывает каждое изображение в отдельном окне.
type WindowRenderer struct {
	cfg     RendererConfig
	windows []*gocv.Window
}

func NewWindowRenderer(cfg RendererConfig) *WindowRenderer {
	return &WindowRenderer{cfg: cfg}
}

// Render рисует замкнутый контур листа и показывает картинку.
// Пустой результат показывается без контура.
func (r *WindowRenderer) Render(img image.Image, quad entity.Quadrilateral, title string) error {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return err
	}
	defer mat.Close()

	if mat.Empty() {
		return errors.New("empty image")
	}

	if quad.Found() {
		pts := gocv.NewPointsVectorFromPoints([][]image.Point{quad.Contour()})
		defer pts.Close()
		gocv.Polylines(&mat, pts, true, r.cfg.Color, r.cfg.Thickness)
	}

	w := gocv.NewWindow(title)
	w.IMShow(mat)
	r.windows = append(r.windows, w)

	return nil
}

// Wait ждёт нажатия клавиши в любом из окон.
func (r *WindowRenderer) Wait() {
	if len(r.windows) == 0 {
		return
	}
	r.windows[len(r.windows)-1].WaitKey(0)
}

// Close закрывает все окна.
func (r *WindowRenderer) Close() error {
	var errs []error
	for _, w := range r.windows {
		errs = append(errs, w.Close())
	}
	r.windows = nil
	return errors.Join(errs...)
}

var _ port.Renderer = (*WindowRenderer)(nil)
