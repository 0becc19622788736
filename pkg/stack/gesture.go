package stack

// DismissDistance is the projected leftward travel in pixels beyond
// which a released drag dismisses the record.
const DismissDistance = 200.0

// Outcome is the decision for a released drag.
type Outcome uint8

const (
	// OutcomeReset snaps the record back to rest.
	OutcomeReset Outcome = iota

	// OutcomeDismiss removes the record.
	OutcomeDismiss
)

// String returns the string representation of the Outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeReset:
		return "Reset"
	case OutcomeDismiss:
		return "Dismiss"
	default:
		return "Unknown"
	}
}

// DragChange converts a live gesture translation into the offset to
// apply to the record. Only leftward (negative) travel moves the card;
// rightward translation clamps to zero.
func DragChange(translationX float64) float64 {
	if translationX > 0 {
		return 0
	}
	return translationX
}

// EndDrag decides what happens when a drag is released. The release
// velocity projects the gesture forward: projected travel is the
// translation plus half the velocity, and a leftward projection past
// DismissDistance dismisses the record. Everything else resets.
func EndDrag(translationX, velocityX float64) Outcome {
	projected := translationX + velocityX/2
	if -projected > DismissDistance {
		return OutcomeDismiss
	}
	return OutcomeReset
}
