// Package stack computes the visual layout of a toast stack.
//
// The engine is pure: it maps a snapshot of the collection (insertion
// order plus per-record exit state) and the current interaction mode
// to per-item placements, and interprets gesture telemetry into live
// offsets or removal decisions. It stores nothing and never touches
// the store; callers feed its outputs back as state changes.
package stack

const (
	// stepOffset is the vertical lift per position behind the front.
	stepOffset = 15.0

	// maxOffset caps the total lift so deep stacks stay tight.
	maxOffset = 30.0

	// stepScale is the shrink per position behind the front.
	stepScale = 0.1

	// RaisedZ is the z-index given to exiting records so they stay on
	// top of their neighbors while animating out.
	RaisedZ = 999

	// ExpandedSpacing is the vertical gap between items in expanded
	// (list) mode, in pixels.
	ExpandedSpacing = 10.0
)

// Placement holds the computed visual parameters for one record.
type Placement struct {
	// Offset is the vertical offset in pixels. Zero or negative:
	// cards behind the front lift up.
	Offset float64

	// Scale is the scale factor in [0, 1].
	Scale float64

	// Z is the explicit z-index. Zero means no explicit z; only
	// exiting records are raised.
	Z int
}

// Item is the layout input for one record.
type Item struct {
	// Exiting is true while the record is animating out after a
	// dismissal decision.
	Exiting bool
}

// VerticalOffset returns the vertical offset for the card k positions
// behind the front of the stack. The lift grows per step and caps at
// two steps.
func VerticalOffset(k int) float64 {
	if k <= 0 {
		return 0
	}
	offset := float64(k) * stepOffset
	if offset > maxOffset {
		offset = maxOffset
	}
	return -offset
}

// Scale returns the scale factor for the card k positions behind the
// front. Each step shrinks the card; far positions clamp to zero
// rather than going negative.
func Scale(k int) float64 {
	if k <= 0 {
		return 1
	}
	shrink := float64(k) * stepScale
	if shrink > 1 {
		shrink = 1
	}
	return 1 - shrink
}

// Compute returns the placement for every item of a snapshot, indexed
// like the input. Items arrive in insertion order; the most recently
// appended record is the front of the stack with visual index 0. The
// whole snapshot is placed in a single pass.
//
// In expanded mode every item gets neutral placement (offset 0, scale
// 1) and the list layout spaces them with ExpandedSpacing instead.
func Compute(items []Item, expanded bool) []Placement {
	n := len(items)
	placements := make([]Placement, n)

	for p, item := range items {
		if expanded {
			placements[p] = Placement{Offset: 0, Scale: 1}
		} else {
			k := n - 1 - p
			placements[p] = Placement{
				Offset: VerticalOffset(k),
				Scale:  Scale(k),
			}
		}
		if item.Exiting {
			placements[p].Z = RaisedZ
		}
	}

	return placements
}
