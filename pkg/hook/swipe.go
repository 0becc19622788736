package hook

import "github.com/melba-ui/melba/pkg/vdom"

// Swipe event names. The client emits move events while the pointer
// drags, one end event on release with the release velocity, and a tap
// event when the pointer never left the slop radius.
const (
	SwipeMove = "swipe:move"
	SwipeEnd  = "swipe:end"
	SwipeTap  = "swipe:tap"
)

// Swipe telemetry fields carried in Event.Data.
const (
	FieldTranslationX = "translationX"
	FieldTranslationY = "translationY"
	FieldVelocityX    = "velocityX"
	FieldVelocityY    = "velocityY"
)

// SwipeConfig configures the Swipe hook.
type SwipeConfig struct {
	// Axis restricts tracking: "x", "y", or "both". Defaults to "x".
	Axis string `json:"axis,omitempty"`

	// Slop is the movement radius in pixels under which a release
	// counts as a tap instead of a swipe. Defaults to 4.
	Slop int `json:"slop,omitempty"`

	// Handle is an optional CSS selector restricting where the
	// gesture may start.
	Handle string `json:"handle,omitempty"`
}

// Swipe creates a Swipe hook attribute. The client tracks pointer
// drags on the element and reports translation during the gesture and
// translation plus velocity at release.
func Swipe(config SwipeConfig) vdom.Attr {
	return Attach("Swipe", config)
}
