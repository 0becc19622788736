package vdom

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// Mouse events

// OnClick handles click events.
func OnClick(handler any) EventHandler { return event("click", handler) }

// OnDblClick handles double-click events.
func OnDblClick(handler any) EventHandler { return event("dblclick", handler) }

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(handler any) EventHandler { return event("mouseenter", handler) }

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(handler any) EventHandler { return event("mouseleave", handler) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) EventHandler { return event("keydown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler any) EventHandler { return event("keyup", handler) }

// Focus events

// OnFocus handles focus events.
func OnFocus(handler any) EventHandler { return event("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) EventHandler { return event("blur", handler) }

// Pointer events

// OnPointerDown handles pointerdown events.
func OnPointerDown(handler any) EventHandler { return event("pointerdown", handler) }

// OnPointerUp handles pointerup events.
func OnPointerUp(handler any) EventHandler { return event("pointerup", handler) }

// OnPointerMove handles pointermove events.
func OnPointerMove(handler any) EventHandler { return event("pointermove", handler) }

// OnPointerCancel handles pointercancel events.
func OnPointerCancel(handler any) EventHandler { return event("pointercancel", handler) }

// Touch events

// OnTouchStart handles touchstart events.
func OnTouchStart(handler any) EventHandler { return event("touchstart", handler) }

// OnTouchMove handles touchmove events.
func OnTouchMove(handler any) EventHandler { return event("touchmove", handler) }

// OnTouchEnd handles touchend events.
func OnTouchEnd(handler any) EventHandler { return event("touchend", handler) }

// Animation and transition events

// OnAnimationEnd handles animationend events.
func OnAnimationEnd(handler any) EventHandler { return event("animationend", handler) }

// OnTransitionEnd handles transitionend events.
func OnTransitionEnd(handler any) EventHandler { return event("transitionend", handler) }

// Form events

// OnInput handles input events (fired when value changes).
func OnInput(handler any) EventHandler { return event("input", handler) }

// OnChange handles change events (fired when value is committed).
func OnChange(handler any) EventHandler { return event("change", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler any) EventHandler { return event("submit", handler) }
