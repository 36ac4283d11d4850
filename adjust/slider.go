package adjust

import "math"

// OnScreen reports whether s still sits at its saved geometry and fits the
// viewport v.
func OnScreen(s Slider, v Viewport) bool {
	o := s.Orig
	if o == nil {
		return true
	}
	if s.X != o.X || s.Y != o.Y || s.Width != o.Width {
		return false
	}
	if s.Horizontal {
		return o.X+o.Width < v.Width
	}

	return o.X < v.Width && o.Y-o.Width > 0
}

// Apply returns s adjusted from the viewport it was saved in (prev) to the
// current one (cur), and whether anything changed.
//
// Steps:
//  1. Keep s when it is on screen or the axis ratio exceeds 1.
//  2. Scale the saved position by the per-axis ratios.
//  3. Pull the slider in from the right (horizontal) or top (vertical) edge.
//  4. Scale the length when it overflows or differs from the saved one.
func Apply(s Slider, prev, cur Viewport) (Slider, bool) {
	return apply(s, cur, ratio(cur.Width, prev.Width), ratio(cur.Height, prev.Height))
}

// EnsureOnScreen moves s inside v without scaling.
func EnsureOnScreen(s Slider, v Viewport) (Slider, bool) {
	return apply(s, v, 1, 1)
}

func apply(s Slider, v Viewport, rx, ry float64) (Slider, bool) {
	// 1. Nothing to do.
	if OnScreen(s, v) {
		return s, false
	}
	r := ry
	if s.Horizontal {
		r = rx
	}
	if r > 1 {
		return s, false
	}

	// 2. Scale.
	out := s
	out.X = math.Round(s.Orig.X * rx)
	out.Y = math.Round(s.Orig.Y * ry)

	// 3. Pull in.
	if s.Horizontal {
		if out.X+out.Width > v.Width {
			out.X = v.Width - out.Width - MarginX
		}
		if maxY := v.Height - MarginY; out.Y > maxY {
			out.Y = maxY
		}
	} else {
		if out.Y-out.Width < 0 {
			out.Y = out.Width + MarginY
		}
		if out.X+out.Width > v.Width {
			out.X = v.Width - out.Width - MarginX
		}
	}

	// 4. Length.
	if out.Width > v.Width || out.Width != s.Orig.Width {
		out.Width = math.Round(s.Orig.Width * r)
	}

	return out, out.X != s.X || out.Y != s.Y || out.Width != s.Width
}

// ratio returns cur/prev, or 1 when prev is unknown.
func ratio(cur, prev float64) float64 {
	if prev <= 0 || cur <= 0 {
		return 1
	}

	return cur / prev
}
