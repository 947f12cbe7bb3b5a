package config

import (
	"image/color"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("AREA_THRESHOLD", "2500")
	t.Setenv("SIMPLIFICATION_FACTOR", "0.03")
	t.Setenv("MAX_CORNER_COSINE", "0.2")
	t.Setenv("CANNY_THRESHOLD", "80")
	t.Setenv("BLUR_KERNEL", "5")
	t.Setenv("OUTLINE_COLOR", "#ff0000")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 2500.0, cfg.Selector.AreaThreshold)
	require.Equal(t, 0.03, cfg.Selector.SimplificationFactor)
	require.Equal(t, 0.2, cfg.Selector.MaxCornerCosine)
	require.Equal(t, float32(80), cfg.Extractor.CannyThreshold)
	require.Equal(t, 5, cfg.Extractor.BlurKernel)
	require.Equal(t, color.RGBA{R: 255, A: 255}, cfg.Renderer.Color)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(".env", []byte("DILATE_KERNEL=7\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("DILATE_KERNEL") })

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Extractor.DilateKernel)
}

func TestLoad_Invalid(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("AREA_THRESHOLD", "lots")
	_, err := Load()
	require.Error(t, err)
	t.Setenv("AREA_THRESHOLD", "")

	t.Setenv("BLUR_KERNEL", "4")
	_, err = Load()
	require.Error(t, err)
	t.Setenv("BLUR_KERNEL", "")

	t.Setenv("OUTLINE_COLOR", "blue")
	_, err = Load()
	require.Error(t, err)
	t.Setenv("OUTLINE_COLOR", "")

	t.Setenv("OUTLINE_THICKNESS", "-1")
	_, err = Load()
	require.Error(t, err)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
