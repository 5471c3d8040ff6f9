package glcore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewContextDefaults(t *testing.T) {
	c := NewContext(10, 10)
	require.Equal(t, ModelView, c.matrixMode)
	require.Equal(t, c.TopMatrix(), c.matrixStacks[Projection].top())
}

func TestSetMatrixModeValid(t *testing.T) {
	c := NewContext(10, 10)
	require.NoError(t, c.SetMatrixMode(Projection))
	require.Equal(t, Projection, c.matrixMode)
}

// An invalid matrix mode is reported as an error but leaves state
// untouched rather than aborting.
func TestSetMatrixModeInvalidLeavesStateUnchanged(t *testing.T) {
	c := NewContext(10, 10)
	err := c.SetMatrixMode(MatrixMode(99))
	require.Error(t, err)
	require.Equal(t, ModelView, c.matrixMode)
}

func TestSetViewportStoresExactly(t *testing.T) {
	c := NewContext(10, 10)
	c.SetViewport(1, 2, 320, 240)
	require.Equal(t, Viewport{X: 1, Y: 2, Width: 320, Height: 240}, c.ViewportState())
}

func TestBindTextureGrowsTable(t *testing.T) {
	c := NewContext(10, 10)
	c.BindTexture(5)
	require.Equal(t, uint32(5), c.boundTexture)
	require.NotPanics(t, func() { c.textures.At(5) })
}

func TestClearResetsFramebuffer(t *testing.T) {
	c := NewContext(4, 4)
	c.Framebuffer.Color[0] = 0xFF
	c.Clear()
	require.Equal(t, byte(0), c.Framebuffer.Color[0])
}
