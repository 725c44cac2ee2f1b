package glimmer

// SpinButton is a pair of stacked arrow buttons that step a numeric value
// between a minimum and a maximum. All clamping lives here; SpinControl
// composes it with an EditBox for direct entry.
type SpinButton struct {
	Base

	minimum float32
	maximum float32
	value   float32
	step    float32

	// OnValueChange fires with the new value whenever it changes.
	OnValueChange Signal[float32]

	bgColor     uint32
	arrowColor  uint32
	borderColor uint32
	borderWidth float32
}

// NewSpinButton creates a spin button covering [minimum, maximum] with a
// step of 1. The initial value is the minimum.
func NewSpinButton(minimum, maximum float32) *SpinButton {
	if maximum < minimum {
		maximum = minimum
	}
	s := &SpinButton{
		minimum: minimum,
		maximum: maximum,
		value:   minimum,
		step:    1,
	}
	s.initBase("SpinButton", s, map[string]any{
		"BackgroundColor": RGBA(245, 245, 245, 255),
		"ArrowColor":      RGBA(60, 60, 60, 255),
		"BorderColor":     ColorBlack,
		"Borders":         float32(1),
	})
	s.styleChanged("")
	s.size = Vec2{X: 16, Y: 22}
	return s
}

func (s *SpinButton) styleChanged(property string) {
	s.bgColor = s.style.Color("BackgroundColor", RGBA(245, 245, 245, 255))
	s.arrowColor = s.style.Color("ArrowColor", RGBA(60, 60, 60, 255))
	s.borderColor = s.style.Color("BorderColor", ColorBlack)
	s.borderWidth = s.style.Float("Borders", 1)
}

// SetMinimum raises or lowers the lower bound, dragging the maximum and
// the value along when they would fall below it.
func (s *SpinButton) SetMinimum(minimum float32) {
	s.minimum = minimum
	if s.maximum < minimum {
		s.maximum = minimum
	}
	s.SetValue(s.value)
}

// Minimum returns the lower bound.
func (s *SpinButton) Minimum() float32 { return s.minimum }

// SetMaximum raises or lowers the upper bound, dragging the minimum and
// the value along when they would exceed it.
func (s *SpinButton) SetMaximum(maximum float32) {
	s.maximum = maximum
	if s.minimum > maximum {
		s.minimum = maximum
	}
	s.SetValue(s.value)
}

// Maximum returns the upper bound.
func (s *SpinButton) Maximum() float32 { return s.maximum }

// SetValue stores the value clamped to [minimum, maximum] and fires the
// value signal when the stored value changed. It reports whether the
// requested value was already within range.
func (s *SpinButton) SetValue(value float32) bool {
	inRange := value >= s.minimum && value <= s.maximum
	clamped := clampf(value, s.minimum, s.maximum)
	if clamped != s.value {
		s.value = clamped
		s.OnValueChange.emit(clamped)
	}
	return inRange
}

// Value returns the current value.
func (s *SpinButton) Value() float32 { return s.value }

// SetStep changes the increment applied per arrow press.
func (s *SpinButton) SetStep(step float32) { s.step = step }

// Step returns the increment applied per arrow press.
func (s *SpinButton) Step() float32 { return s.step }

// AcceptsFocus reports that spin buttons take keyboard focus.
func (s *SpinButton) AcceptsFocus() bool { return true }

// MousePressed steps the value up when the upper arrow was pressed and
// down when the lower arrow was pressed.
func (s *SpinButton) MousePressed(btn MouseButton, pos Vec2) {
	if btn != MouseButtonLeft {
		return
	}
	abs := s.AbsolutePosition()
	if pos.Y < abs.Y+s.size.Y/2 {
		s.SetValue(s.value + s.step)
	} else {
		s.SetValue(s.value - s.step)
	}
}

// KeyPressed steps the value with the arrow keys.
func (s *SpinButton) KeyPressed(ev KeyPressEvent) {
	switch ev.Key {
	case KeyUp:
		s.SetValue(s.value + s.step)
	case KeyDown:
		s.SetValue(s.value - s.step)
	}
}

// Draw emits the two arrow buttons.
func (s *SpinButton) Draw(dl *DrawList) {
	abs := s.AbsolutePosition()
	half := s.size.Y / 2
	dl.AddRect(abs.X, abs.Y, s.size.X, s.size.Y, s.bgColor)
	if s.borderWidth > 0 {
		dl.AddRectOutline(abs.X, abs.Y, s.size.X, half, s.borderColor, s.borderWidth)
		dl.AddRectOutline(abs.X, abs.Y+half, s.size.X, half, s.borderColor, s.borderWidth)
	}

	inset := s.size.X / 4
	// Upper arrow points up, lower arrow points down.
	dl.AddTriangle(
		abs.X+s.size.X/2, abs.Y+inset,
		abs.X+s.size.X-inset, abs.Y+half-inset,
		abs.X+inset, abs.Y+half-inset,
		s.arrowColor)
	dl.AddTriangle(
		abs.X+inset, abs.Y+half+inset,
		abs.X+s.size.X-inset, abs.Y+half+inset,
		abs.X+s.size.X/2, abs.Y+s.size.Y-inset,
		s.arrowColor)
}

// Save serializes the spin button.
func (s *SpinButton) Save() *Node {
	n := NewNode(s.typeName)
	s.saveBase(n)
	n.SetFloat("minimum", s.minimum)
	n.SetFloat("maximum", s.maximum)
	n.SetFloat("value", s.value)
	n.SetFloat("step", s.step)
	return n
}

// Load restores the spin button without firing the value signal.
func (s *SpinButton) Load(n *Node) error {
	s.loadBase(n)
	s.minimum = n.Float("minimum", s.minimum)
	s.maximum = n.Float("maximum", s.maximum)
	if s.maximum < s.minimum {
		s.maximum = s.minimum
	}
	s.step = n.Float("step", s.step)
	s.value = clampf(n.Float("value", s.value), s.minimum, s.maximum)
	return nil
}

// Clone deep-copies the spin button without signal connections.
func (s *SpinButton) Clone() Widget {
	clone := NewSpinButton(s.minimum, s.maximum)
	s.cloneBase(&clone.Base, clone)
	clone.value = s.value
	clone.step = s.step
	clone.styleChanged("")
	return clone
}
