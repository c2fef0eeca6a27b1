// Package autoscroll converts a target note into a one-dimensional scroll
// offset over the natural-key grid.
package autoscroll

import "github.com/rapidmidiex/pianotui/note"

// AutoMargin is subtracted from the viewport width when deriving an
// automatic key width, so the full range exactly fills the viewport inside
// the document padding.
const AutoMargin = 4

// Offset returns the signed scroll offset that centers the target key's
// midpoint in the viewport. Accidental targets are normalized to their
// underlying natural first, since offsets run on the natural grid only.
// A target outside the sequence, or unknown metrics, yield 0, a defined
// fallback rather than an error. Clamping to the scrollable surface is the
// renderer's job; the result may be negative or exceed max scroll.
func Offset(target note.Position, naturals []note.Position, keyWidth, viewportWidth float64) float64 {
	if keyWidth <= 0 || viewportWidth <= 0 {
		return 0
	}
	nat := target.Natural()
	for i, p := range naturals {
		if p == nat {
			return float64(i)*keyWidth + keyWidth/2 - viewportWidth/2
		}
	}
	return 0
}

// KeyWidth resolves the per-key width: the explicit value when given, else
// derived so naturalCount keys fill the viewport.
func KeyWidth(explicit, viewportWidth float64, naturalCount int) float64 {
	if explicit > 0 {
		return explicit
	}
	if viewportWidth <= AutoMargin || naturalCount == 0 {
		return 0
	}
	return (viewportWidth - AutoMargin) / float64(naturalCount)
}
