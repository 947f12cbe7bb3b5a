//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"image"

	"gocv.io/x/gocv"

	"sheet-detect/internal/domain/entity"
	"sheet-detect/internal/domain/port"
)

type GoCVExtractor struct {
	cfg ExtractorConfig
}

// NewGoCVExtractor создаёт экстрактор контуров на OpenCV.
func NewGoCVExtractor(cfg ExtractorConfig) *GoCVExtractor {
	return &GoCVExtractor{cfg: cfg}
}

// Extract готовит бинарную карту границ и возвращает все найденные контуры.
func (e *GoCVExtractor) Extract(ctx context.Context, img image.Image) ([]entity.Contour, error) {
	_ = ctx
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, errors.New("empty image")
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	blur := gocv.NewMat()
	defer blur.Close()
	gocv.GaussianBlur(gray, &blur, image.Pt(e.cfg.BlurKernel, e.cfg.BlurKernel), 0, 0, gocv.BorderDefault)

	// Дилатация склеивает разрывы на краях листа.
	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(e.cfg.DilateKernel, e.cfg.DilateKernel))
	defer kernel.Close()

	dilated := gocv.NewMat()
	defer dilated.Close()
	gocv.Dilate(blur, &dilated, kernel)

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(dilated, &edges, 0, e.cfg.CannyThreshold)

	contours := gocv.FindContours(edges, gocv.RetrievalList, gocv.ChainApproxSimple)
	defer contours.Close()

	out := make([]entity.Contour, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		pts := contours.At(i).ToPoints()
		if len(pts) < 3 {
			continue
		}
		out = append(out, entity.Contour(pts))
	}

	return out, nil
}

var _ port.ContourExtractor = (*GoCVExtractor)(nil)
