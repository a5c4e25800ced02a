package imgui

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// InputState holds the pointer state fed to a Context by a platform
// adapter. Edge flags (clicked, released) and wheel deltas last one frame;
// the adapter calls EndFrame once the frame that observed them is done.
type InputState struct {
	mousePos Vec2
	hasMouse bool

	mouseDown     [MouseButtonCount]bool
	mouseClicked  [MouseButtonCount]bool
	mouseReleased [MouseButtonCount]bool

	wheel Vec2
}

// SetMousePos sets the pointer position in display coordinates.
func (s *InputState) SetMousePos(pos Vec2) {
	s.mousePos = pos
	s.hasMouse = true
}

// ClearMousePos marks the pointer as outside the display.
func (s *InputState) ClearMousePos() {
	s.hasMouse = false
}

// MousePos returns the pointer position and whether it is over the display.
func (s *InputState) MousePos() (Vec2, bool) {
	return s.mousePos, s.hasMouse
}

// SetMouseButton records a button transition.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down
	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseReleased[button] = true
	}
}

// AddMouseWheel accumulates wheel deltas until the end of the frame.
func (s *InputState) AddMouseWheel(dx, dy float32) {
	s.wheel.X += dx
	s.wheel.Y += dy
}

// MouseWheel returns the wheel delta of the current frame.
func (s *InputState) MouseWheel() Vec2 {
	return s.wheel
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was pressed this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button was released this frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseReleased[button]
}

// EndFrame clears the per-frame edges and wheel deltas.
func (s *InputState) EndFrame() {
	clear(s.mouseClicked[:])
	clear(s.mouseReleased[:])
	s.wheel = Vec2{}
}
