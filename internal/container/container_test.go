package container

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	app "sheet-detect/internal/application"
	"sheet-detect/internal/domain/entity"
	"sheet-detect/internal/infrastructure/imageio"
	"sheet-detect/internal/infrastructure/pose"
)

func TestNew_WiresSelector(t *testing.T) {
	c := New(app.DefaultSelectorConfig(), imageio.NewLoader(0), nil, nil, pose.NewZeroEstimator(), nil)
	require.NotNil(t, c.Selector)
	require.NotNil(t, c.DetectionService)

	square := entity.Contour{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	require.True(t, c.Selector.Select([]entity.Contour{square}).Found())

	_, err := c.DetectionService.Process(context.Background(), "a.jpg")
	require.Error(t, err)
}
