// Package adjust repositions persisted slider widgets when a document is
// reloaded into a viewport smaller than the one it was saved from.
//
// The correction is one-shot: Apply runs once per reload, never during
// propagation. It computes the ratio between the current and the previous
// viewport extent along the slider's axis and:
//
//	– does nothing when the slider is still on screen;
//	– does nothing when the ratio exceeds 1 (sliders are never enlarged);
//	– otherwise scales the saved position by the per-axis ratios, pulls the
//	  slider inside the right or top edge with a fixed margin, and re-derives
//	  its length from the same ratio when it no longer fits.
//
// EnsureOnScreen applies the same policy with a ratio of 1, only moving
// sliders that overflow the viewport.
package adjust
