package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"

	app "sheet-detect/internal/application"
	"sheet-detect/internal/infrastructure/vision"
)

type Config struct {
	Extractor vision.ExtractorConfig // предобработка
	Selector  app.SelectorConfig     // отбор четырёхугольника
	Renderer  vision.RendererConfig  // отрисовка
	MaxSide   int                    // 0 — изображение не уменьшается
}

// Default возвращает конфигурацию без переопределений из окружения.
func Default() *Config {
	return &Config{
		Extractor: vision.DefaultExtractorConfig(),
		Selector:  app.DefaultSelectorConfig(),
		Renderer:  vision.DefaultRendererConfig(),
	}
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := Default()

	if err := intEnv("BLUR_KERNEL", &cfg.Extractor.BlurKernel); err != nil {
		return nil, err
	}
	if cfg.Extractor.BlurKernel <= 0 || cfg.Extractor.BlurKernel%2 == 0 {
		return nil, fmt.Errorf("BLUR_KERNEL must be a positive odd number, got %d", cfg.Extractor.BlurKernel)
	}
	if err := intEnv("DILATE_KERNEL", &cfg.Extractor.DilateKernel); err != nil {
		return nil, err
	}
	if err := intEnv("MAX_SIDE", &cfg.MaxSide); err != nil {
		return nil, err
	}
	if err := intEnv("OUTLINE_THICKNESS", &cfg.Renderer.Thickness); err != nil {
		return nil, err
	}

	canny := float64(cfg.Extractor.CannyThreshold)
	if err := floatEnv("CANNY_THRESHOLD", &canny); err != nil {
		return nil, err
	}
	cfg.Extractor.CannyThreshold = float32(canny)

	if err := floatEnv("AREA_THRESHOLD", &cfg.Selector.AreaThreshold); err != nil {
		return nil, err
	}
	if err := floatEnv("SIMPLIFICATION_FACTOR", &cfg.Selector.SimplificationFactor); err != nil {
		return nil, err
	}
	if err := floatEnv("MAX_CORNER_COSINE", &cfg.Selector.MaxCornerCosine); err != nil {
		return nil, err
	}

	if hex := os.Getenv("OUTLINE_COLOR"); hex != "" {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("OUTLINE_COLOR: %w", err)
		}
		r, g, b := c.RGB255()
		cfg.Renderer.Color = color.RGBA{R: r, G: g, B: b, A: 255}
	}

	return cfg, nil
}

func intEnv(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if n < 0 {
		return fmt.Errorf("%s must not be negative, got %d", key, n)
	}
	*dst = n
	return nil
}

func floatEnv(key string, dst *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}
