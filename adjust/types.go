package adjust

// Margins kept between a repositioned slider and the viewport edge, in pixels.
const (
	MarginX = 15
	MarginY = 15
)

// Viewport is the drawable extent of a view in pixels.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Origin is the slider geometry persisted with the document.
type Origin struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Width float64 `yaml:"width"`
}

// Slider is the on-screen geometry of a number slider. Width is the slider
// length along its axis. A nil Orig means no saved geometry: the slider is
// treated as on screen.
type Slider struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Width      float64 `yaml:"width"`
	Horizontal bool    `yaml:"horizontal"`
	Orig       *Origin `yaml:"orig,omitempty"`
}
