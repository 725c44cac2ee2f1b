package glimmer

// EditBox is a single-line text input with a caret. It implements
// TextEditable so containers and composite widgets can drive it generically.
type EditBox struct {
	Base

	text     []rune
	caret    int
	readOnly bool

	// OnTextChange fires whenever the text changes, with the new text.
	OnTextChange Signal[string]
	// OnReturnKeyPress fires when the enter key is pressed while focused.
	OnReturnKeyPress Signal[string]
	// OnReturnOrUnfocus fires on enter and when the box loses focus.
	OnReturnOrUnfocus Signal[string]

	bgColor     uint32
	borderColor uint32
	textColor   uint32
	caretColor  uint32
	borderWidth float32
	textSize    float32
}

var _ TextEditable = (*EditBox)(nil)

// NewEditBox creates an empty edit box.
func NewEditBox() *EditBox {
	e := &EditBox{}
	e.initBase("EditBox", e, map[string]any{
		"BackgroundColor": ColorWhite,
		"BorderColor":     ColorBlack,
		"TextColor":       RGBA(60, 60, 60, 255),
		"CaretColor":      ColorBlack,
		"Borders":         float32(1),
		"TextSize":        float32(13),
	})
	e.styleChanged("")
	e.size = Vec2{X: 120, Y: 22}
	return e
}

func (e *EditBox) styleChanged(property string) {
	e.bgColor = e.style.Color("BackgroundColor", ColorWhite)
	e.borderColor = e.style.Color("BorderColor", ColorBlack)
	e.textColor = e.style.Color("TextColor", RGBA(60, 60, 60, 255))
	e.caretColor = e.style.Color("CaretColor", ColorBlack)
	e.borderWidth = e.style.Float("Borders", 1)
	e.textSize = e.style.Float("TextSize", 13)
}

// SetText replaces the content and moves the caret to the end.
func (e *EditBox) SetText(text string) {
	if string(e.text) == text {
		return
	}
	e.text = []rune(text)
	e.caret = len(e.text)
	e.OnTextChange.emit(text)
}

// Text returns the current content.
func (e *EditBox) Text() string { return string(e.text) }

// SetReadOnly blocks text entry and editing keys while still allowing
// focus and caret movement.
func (e *EditBox) SetReadOnly(readOnly bool) { e.readOnly = readOnly }

// ReadOnly reports whether the box rejects edits.
func (e *EditBox) ReadOnly() bool { return e.readOnly }

// AcceptsFocus reports that edit boxes take keyboard focus.
func (e *EditBox) AcceptsFocus() bool { return true }

func (e *EditBox) setFocused(focused bool) {
	wasFocused := e.focused
	e.Base.setFocused(focused)
	if wasFocused && !focused {
		e.OnReturnOrUnfocus.emit(string(e.text))
	}
}

// charWidth is the advance of one glyph of the bitmap font.
func (e *EditBox) charWidth() float32 { return e.textSize * 0.6 }

// MousePressed places the caret at the clicked character boundary.
func (e *EditBox) MousePressed(btn MouseButton, pos Vec2) {
	if btn != MouseButtonLeft {
		return
	}
	abs := e.AbsolutePosition()
	col := int((pos.X - abs.X - e.borderWidth - 2 + e.charWidth()/2) / e.charWidth())
	if col < 0 {
		col = 0
	}
	if col > len(e.text) {
		col = len(e.text)
	}
	e.caret = col
}

// TextEntered inserts a rune at the caret.
func (e *EditBox) TextEntered(r rune) {
	if e.readOnly || r < ' ' {
		return
	}
	e.text = append(e.text[:e.caret], append([]rune{r}, e.text[e.caret:]...)...)
	e.caret++
	e.OnTextChange.emit(string(e.text))
}

// KeyPressed handles caret movement and editing keys.
func (e *EditBox) KeyPressed(ev KeyPressEvent) {
	switch ev.Key {
	case KeyLeft:
		if e.caret > 0 {
			e.caret--
		}
	case KeyRight:
		if e.caret < len(e.text) {
			e.caret++
		}
	case KeyHome:
		e.caret = 0
	case KeyEnd:
		e.caret = len(e.text)
	case KeyBackspace:
		if !e.readOnly && e.caret > 0 {
			e.text = append(e.text[:e.caret-1], e.text[e.caret:]...)
			e.caret--
			e.OnTextChange.emit(string(e.text))
		}
	case KeyDelete:
		if !e.readOnly && e.caret < len(e.text) {
			e.text = append(e.text[:e.caret], e.text[e.caret+1:]...)
			e.OnTextChange.emit(string(e.text))
		}
	case KeyEnter:
		text := string(e.text)
		e.OnReturnKeyPress.emit(text)
		e.OnReturnOrUnfocus.emit(text)
	}
}

// Draw emits the box background, border, text and caret.
func (e *EditBox) Draw(dl *DrawList) {
	abs := e.AbsolutePosition()
	dl.AddRect(abs.X, abs.Y, e.size.X, e.size.Y, e.bgColor)
	if e.borderWidth > 0 {
		dl.AddRectOutline(abs.X, abs.Y, e.size.X, e.size.Y, e.borderColor, e.borderWidth)
	}

	dl.PushClipRect(abs.X, abs.Y, abs.X+e.size.X, abs.Y+e.size.Y)
	textX := abs.X + e.borderWidth + 2
	textY := abs.Y + (e.size.Y-e.textSize)/2
	dl.AddText(textX, textY, string(e.text), e.textColor, e.charWidth(), e.textSize)
	if e.focused {
		caretX := textX + float32(e.caret)*e.charWidth()
		dl.AddLine(caretX, textY, caretX, textY+e.textSize, e.caretColor, 1)
	}
	dl.PopClipRect()
}

// Save serializes the edit box.
func (e *EditBox) Save() *Node {
	n := NewNode(e.typeName)
	e.saveBase(n)
	n.SetString("text", string(e.text))
	n.SetBool("readOnly", e.readOnly)
	return n
}

// Load restores the edit box without firing text signals.
func (e *EditBox) Load(n *Node) error {
	e.loadBase(n)
	e.text = []rune(n.String("text", string(e.text)))
	e.caret = len(e.text)
	e.readOnly = n.Bool("readOnly", false)
	return nil
}

// Clone deep-copies the edit box without signal connections.
func (e *EditBox) Clone() Widget {
	clone := NewEditBox()
	e.cloneBase(&clone.Base, clone)
	clone.text = append([]rune(nil), e.text...)
	clone.caret = len(clone.text)
	clone.readOnly = e.readOnly
	clone.styleChanged("")
	return clone
}
