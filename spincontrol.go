package glimmer

import "strconv"

// SpinControl pairs a SpinButton with an EditBox for direct entry. It is a
// container owning exactly those two children; the SpinButton holds the
// authoritative value and performs all clamping, the EditBox only displays
// and parses text.
type SpinControl struct {
	Container

	spinButton    *SpinButton
	spinText      *EditBox
	decimalPlaces int

	// OnValueChange fires with the new value whenever it changes. A single
	// user action produces at most one emission.
	OnValueChange Signal[float32]
}

// NewSpinControl creates a spin control covering [minimum, maximum],
// starting at value, displaying decimalPlaces fractional digits and
// stepping by step per arrow press.
func NewSpinControl(minimum, maximum, value float32, decimalPlaces int, step float32) *SpinControl {
	s := &SpinControl{
		spinButton:    NewSpinButton(minimum, maximum),
		spinText:      NewEditBox(),
		decimalPlaces: decimalPlaces,
	}
	s.initBase("SpinControl", nil, nil)
	s.spinButton.SetStep(step)

	s.Add(s.spinText)
	s.Add(s.spinButton)

	s.spinButton.OnValueChange.Connect(func(v float32) {
		s.refreshText()
		s.OnValueChange.emit(v)
	})
	s.spinText.OnReturnOrUnfocus.Connect(func(text string) {
		parsed, err := strconv.ParseFloat(text, 32)
		if err != nil {
			// Unparsable entry reverts the display to the stored value.
			s.refreshText()
			return
		}
		if !s.SetValue(float32(parsed)) {
			// Clamped: make the display show what was actually stored.
			s.refreshText()
		}
	})

	s.spinButton.SetValue(value)
	s.refreshText()
	s.SetSize(Vec2{X: 120, Y: 22})
	return s
}

// refreshText re-renders the stored value into the edit box.
func (s *SpinControl) refreshText() {
	s.spinText.SetText(strconv.FormatFloat(float64(s.spinButton.Value()), 'f', s.decimalPlaces, 32))
}

// SetSize lays out the children: the button takes a fixed-width column on
// the right, the edit box fills the remainder. The layout is recomputed
// from scratch so repeated calls are idempotent.
func (s *SpinControl) SetSize(size Vec2) {
	s.Base.SetSize(size)
	btnWidth := size.Y / 2
	if btnWidth > size.X {
		btnWidth = size.X
	}
	s.spinText.SetPosition(Vec2{})
	s.spinText.SetSize(Vec2{X: size.X - btnWidth, Y: size.Y})
	s.spinButton.SetPosition(Vec2{X: size.X - btnWidth})
	s.spinButton.SetSize(Vec2{X: btnWidth, Y: size.Y})
}

// SetMinimum changes the lower bound; see SpinButton.SetMinimum for how
// out-of-range state is reconciled.
func (s *SpinControl) SetMinimum(minimum float32) { s.spinButton.SetMinimum(minimum) }

// Minimum returns the lower bound.
func (s *SpinControl) Minimum() float32 { return s.spinButton.Minimum() }

// SetMaximum changes the upper bound.
func (s *SpinControl) SetMaximum(maximum float32) { s.spinButton.SetMaximum(maximum) }

// Maximum returns the upper bound.
func (s *SpinControl) Maximum() float32 { return s.spinButton.Maximum() }

// SetValue stores the value clamped to [minimum, maximum], fires the value
// signal when the stored value changed, and reports whether the requested
// value was already within range.
func (s *SpinControl) SetValue(value float32) bool {
	return s.spinButton.SetValue(value)
}

// Value returns the current value.
func (s *SpinControl) Value() float32 { return s.spinButton.Value() }

// SetStep changes the increment applied per arrow press.
func (s *SpinControl) SetStep(step float32) { s.spinButton.SetStep(step) }

// Step returns the increment applied per arrow press.
func (s *SpinControl) Step() float32 { return s.spinButton.Step() }

// SetDecimalPlaces changes how many fractional digits the display shows.
// The stored value keeps full precision.
func (s *SpinControl) SetDecimalPlaces(decimalPlaces int) {
	s.decimalPlaces = decimalPlaces
	s.refreshText()
}

// DecimalPlaces returns the number of fractional digits displayed.
func (s *SpinControl) DecimalPlaces() int { return s.decimalPlaces }

// SpinText exposes the owned edit box, mainly for styling.
func (s *SpinControl) SpinText() *EditBox { return s.spinText }

// SpinButtonWidget exposes the owned spin button, mainly for styling.
func (s *SpinControl) SpinButtonWidget() *SpinButton { return s.spinButton }

// Save serializes the spin control. The children are implied and not
// written out individually.
func (s *SpinControl) Save() *Node {
	n := NewNode(s.typeName)
	s.saveBase(n)
	n.SetFloat("minimum", s.spinButton.Minimum())
	n.SetFloat("maximum", s.spinButton.Maximum())
	n.SetFloat("value", s.spinButton.Value())
	n.SetFloat("step", s.spinButton.Step())
	n.SetInt("decimalPlaces", s.decimalPlaces)
	return n
}

// Load restores the spin control without firing the value signal.
func (s *SpinControl) Load(n *Node) error {
	s.loadBase(n)
	s.spinButton.minimum = n.Float("minimum", s.spinButton.minimum)
	s.spinButton.maximum = n.Float("maximum", s.spinButton.maximum)
	if s.spinButton.maximum < s.spinButton.minimum {
		s.spinButton.maximum = s.spinButton.minimum
	}
	s.spinButton.step = n.Float("step", s.spinButton.step)
	s.spinButton.value = clampf(n.Float("value", s.spinButton.value), s.spinButton.minimum, s.spinButton.maximum)
	s.decimalPlaces = n.Int("decimalPlaces", s.decimalPlaces)
	s.refreshText()
	s.SetSize(s.size)
	return nil
}

// Clone deep-copies the spin control without signal connections.
func (s *SpinControl) Clone() Widget {
	clone := NewSpinControl(s.Minimum(), s.Maximum(), s.Value(), s.decimalPlaces, s.Step())
	clone.SetPosition(s.pos)
	clone.SetSize(s.size)
	clone.SetEnabled(s.enabled)
	clone.SetVisible(s.visible)
	return clone
}
