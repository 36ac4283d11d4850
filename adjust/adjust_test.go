package adjust_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/geokernel/adjust"
)

func saved(x, y, w float64, horizontal bool) adjust.Slider {
	return adjust.Slider{
		X: x, Y: y, Width: w, Horizontal: horizontal,
		Orig: &adjust.Origin{X: x, Y: y, Width: w},
	}
}

func TestApply_NoSavedGeometry(t *testing.T) {
	s := adjust.Slider{X: 5000, Y: 5000, Width: 100, Horizontal: true}
	got, changed := adjust.Apply(s, adjust.Viewport{Width: 1000, Height: 800}, adjust.Viewport{Width: 500, Height: 400})
	assert.False(t, changed)
	assert.Equal(t, s, got)
}

func TestApply_OnScreenUntouched(t *testing.T) {
	s := saved(100, 50, 200, true)
	got, changed := adjust.Apply(s, adjust.Viewport{Width: 1000, Height: 800}, adjust.Viewport{Width: 800, Height: 600})
	assert.False(t, changed)
	assert.Equal(t, s, got)
}

// TestApply_ShrinkHorizontal scales the position and pulls the slider in
// from the right edge with the margin.
func TestApply_ShrinkHorizontal(t *testing.T) {
	s := saved(600, 700, 300, true)
	got, changed := adjust.Apply(s, adjust.Viewport{Width: 1000, Height: 800}, adjust.Viewport{Width: 500, Height: 400})
	assert.True(t, changed)
	assert.Equal(t, 185.0, got.X) // 500 - 300 - 15
	assert.Equal(t, 350.0, got.Y)
	assert.Equal(t, 300.0, got.Width)
}

func TestApply_NeverEnlarges(t *testing.T) {
	s := saved(950, 100, 100, true)
	got, changed := adjust.Apply(s, adjust.Viewport{Width: 500, Height: 400}, adjust.Viewport{Width: 1000, Height: 800})
	assert.False(t, changed)
	assert.Equal(t, s, got)
}

// TestApply_VerticalTopEdge keeps a vertical slider below the top margin.
func TestApply_VerticalTopEdge(t *testing.T) {
	s := saved(100, 50, 100, false)
	vp := adjust.Viewport{Width: 800, Height: 600}
	got, changed := adjust.Apply(s, vp, vp)
	assert.True(t, changed)
	assert.Equal(t, 100.0, got.X)
	assert.Equal(t, 115.0, got.Y) // width + 15
	assert.Equal(t, 100.0, got.Width)
}

func TestApply_RescalesChangedWidth(t *testing.T) {
	s := saved(100, 100, 100, true)
	s.Width = 120
	got, changed := adjust.Apply(s, adjust.Viewport{Width: 1000, Height: 800}, adjust.Viewport{Width: 800, Height: 600})
	assert.True(t, changed)
	assert.Equal(t, 80.0, got.X)
	assert.Equal(t, 75.0, got.Y)
	assert.Equal(t, 80.0, got.Width)
}

func TestEnsureOnScreen(t *testing.T) {
	s := saved(700, 100, 200, true)
	got, changed := adjust.EnsureOnScreen(s, adjust.Viewport{Width: 800, Height: 600})
	assert.True(t, changed)
	assert.Equal(t, 585.0, got.X)
	assert.Equal(t, 100.0, got.Y)
	assert.True(t, adjust.OnScreen(saved(100, 100, 200, true), adjust.Viewport{Width: 800, Height: 600}))
}
