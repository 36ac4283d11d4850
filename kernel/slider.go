package kernel

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/geokernel/adjust"
)

// SetSliderLayout attaches persisted slider geometry to a number node.
func (c *Construction) SetSliderLayout(id NodeID, s adjust.Slider) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, err := c.get(id)
	if err != nil {
		return err
	}
	if el.kind != KindNumber {
		return fmt.Errorf("%w: slider on %s", ErrKindMismatch, el.kind)
	}
	el.slider = &s

	return nil
}

// SliderLayout returns the slider geometry of id, if any.
func (c *Construction) SliderLayout(id NodeID) (adjust.Slider, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	el, err := c.get(id)
	if err != nil || el.slider == nil {
		return adjust.Slider{}, false
	}

	return *el.slider, true
}

// AdjustSliders runs the reload-time correction on every slider, from the
// viewport the document was saved in to the current one, and returns how
// many moved. It is a no-op unless FeatureAdjustWidgets is enabled.
func (c *Construction) AdjustSliders(prev, cur adjust.Viewport) int {
	if !c.cfg.Enabled(FeatureAdjustWidgets) {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, id := range c.order {
		el := c.nodes[id]
		if el.slider == nil {
			continue
		}
		if s, moved := adjust.Apply(*el.slider, prev, cur); moved {
			el.slider = &s
			n++
			c.log.Debug("slider adjusted",
				zap.Int("node", int(id)), zap.String("label", el.label),
				zap.Float64("x", s.X), zap.Float64("y", s.Y), zap.Float64("width", s.Width))
		}
	}

	return n
}
