package glimmer

// ExpandDirection controls which side a ComboBox opens its list on.
type ExpandDirection int

const (
	// ExpandAutomatic picks the side with enough room, preferring down.
	ExpandAutomatic ExpandDirection = iota
	// ExpandDown always opens the list below the combo box.
	ExpandDown
	// ExpandUp always opens the list above the combo box.
	ExpandUp
)

// ComboBox is a closed selection header that expands into a list of items.
// The item storage lives entirely in an owned ListBox; the combo box keeps
// only display state. While open, the list is attached to the root
// container as a topmost overlay.
type ComboBox struct {
	Base

	listBox            *ListBox
	itemsToDisplay     int
	defaultText        string
	previousIndex      int
	expandDirection    ExpandDirection
	changeItemOnScroll bool

	// OnItemSelect fires when the selected item changes, including when the
	// selection is cleared.
	OnItemSelect Signal[ItemEvent]

	bgColor          uint32
	borderColor      uint32
	textColor        uint32
	defaultTextColor uint32
	arrowColor       uint32
	borderWidth      float32
	textSize         float32
}

// NewComboBox creates an empty combo box with no selection.
func NewComboBox() *ComboBox {
	c := &ComboBox{
		listBox:       NewListBox(),
		previousIndex: -1,
	}
	c.initBase("ComboBox", c, map[string]any{
		"BackgroundColor":  ColorWhite,
		"BorderColor":      ColorBlack,
		"TextColor":        RGBA(60, 60, 60, 255),
		"DefaultTextColor": RGBA(160, 160, 160, 255),
		"ArrowColor":       RGBA(60, 60, 60, 255),
		"Borders":          float32(1),
		"TextSize":         float32(13),
	})
	c.styleChanged("")
	c.size = Vec2{X: 150, Y: 22}

	// The list must not steal logical focus from the combo box when it is
	// shown as an overlay.
	c.listBox.SetFocusable(false)
	c.listBox.OnItemSelect.Connect(func(ItemEvent) {
		c.emitSelectionIfChanged()
	})
	c.listBox.OnMousePress.Connect(func(ItemEvent) {
		// A click in the open list always closes it, even when the clicked
		// item was already selected.
		c.hideListBox()
	})
	return c
}

func (c *ComboBox) styleChanged(property string) {
	c.bgColor = c.style.Color("BackgroundColor", ColorWhite)
	c.borderColor = c.style.Color("BorderColor", ColorBlack)
	c.textColor = c.style.Color("TextColor", RGBA(60, 60, 60, 255))
	c.defaultTextColor = c.style.Color("DefaultTextColor", RGBA(160, 160, 160, 255))
	c.arrowColor = c.style.Color("ArrowColor", RGBA(60, 60, 60, 255))
	c.borderWidth = c.style.Float("Borders", 1)
	c.textSize = c.style.Float("TextSize", 13)
}

// emitSelectionIfChanged compares the list selection against the last
// index this combo box reported and fires its own signal on a difference.
// Delegated mutators and list clicks both funnel through here, so a single
// user action produces at most one emission.
func (c *ComboBox) emitSelectionIfChanged() {
	index := c.listBox.SelectedItemIndex()
	if index == c.previousIndex {
		return
	}
	c.previousIndex = index
	if index == -1 {
		c.OnItemSelect.emit(ItemEvent{Index: -1})
		return
	}
	c.OnItemSelect.emit(ItemEvent{
		Name:  c.listBox.SelectedItem(),
		ID:    c.listBox.SelectedItemID(),
		Index: index,
	})
}

// AddItem appends an item. Returns the index of the inserted item, or the
// configured maximum item count when the list is full.
func (c *ComboBox) AddItem(name, id string) int {
	return c.listBox.AddItem(name, id)
}

// SetSelectedItem selects the first item with the given name.
// Returns false, without side effects, when no item matches.
func (c *ComboBox) SetSelectedItem(name string) bool {
	return c.listBox.SetSelectedItem(name)
}

// SetSelectedItemByID selects the first item with the given id.
func (c *ComboBox) SetSelectedItemByID(id string) bool {
	return c.listBox.SetSelectedItemByID(id)
}

// SetSelectedItemByIndex selects the item at the given index.
func (c *ComboBox) SetSelectedItemByIndex(index int) bool {
	return c.listBox.SetSelectedItemByIndex(index)
}

// DeselectItem clears the selection.
func (c *ComboBox) DeselectItem() { c.listBox.DeselectItem() }

// RemoveItem removes the first item with the given name.
func (c *ComboBox) RemoveItem(name string) bool { return c.listBox.RemoveItem(name) }

// RemoveItemByID removes the first item with the given id.
func (c *ComboBox) RemoveItemByID(id string) bool { return c.listBox.RemoveItemByID(id) }

// RemoveItemByIndex removes the item at the given index.
func (c *ComboBox) RemoveItemByIndex(index int) bool { return c.listBox.RemoveItemByIndex(index) }

// RemoveAllItems clears the item list.
func (c *ComboBox) RemoveAllItems() { c.listBox.RemoveAllItems() }

// ChangeItem renames the first item with the given name.
func (c *ComboBox) ChangeItem(originalName, newName string) bool {
	return c.listBox.ChangeItem(originalName, newName)
}

// ChangeItemByID renames the first item with the given id.
func (c *ComboBox) ChangeItemByID(id, newName string) bool {
	return c.listBox.ChangeItemByID(id, newName)
}

// ChangeItemByIndex renames the item at the given index.
func (c *ComboBox) ChangeItemByIndex(index int, newName string) bool {
	return c.listBox.ChangeItemByIndex(index, newName)
}

// ItemCount returns the number of items.
func (c *ComboBox) ItemCount() int { return c.listBox.ItemCount() }

// Items returns a copy of the item names in insertion order.
func (c *ComboBox) Items() []string { return c.listBox.Items() }

// ItemIDs returns a copy of the item ids in insertion order.
func (c *ComboBox) ItemIDs() []string { return c.listBox.ItemIDs() }

// ItemByID returns the name of the first item with the given id.
func (c *ComboBox) ItemByID(id string) string { return c.listBox.ItemByID(id) }

// Contains reports whether any item has the given name.
func (c *ComboBox) Contains(name string) bool { return c.listBox.Contains(name) }

// ContainsID reports whether any item has the given id.
func (c *ComboBox) ContainsID(id string) bool { return c.listBox.ContainsID(id) }

// SelectedItem returns the selected item's name, or "" when none.
func (c *ComboBox) SelectedItem() string { return c.listBox.SelectedItem() }

// SelectedItemID returns the selected item's id, or "" when none.
func (c *ComboBox) SelectedItemID() string { return c.listBox.SelectedItemID() }

// SelectedItemIndex returns the selected index, or -1 when none.
func (c *ComboBox) SelectedItemIndex() int { return c.listBox.SelectedItemIndex() }

// SetMaximumItems limits how many items the list can hold; 0 disables the
// limit. Items beyond a new, smaller limit are dropped.
func (c *ComboBox) SetMaximumItems(maximum int) { c.listBox.SetMaximumItems(maximum) }

// MaximumItems returns the configured item limit; 0 means unlimited.
func (c *ComboBox) MaximumItems() int { return c.listBox.MaximumItems() }

// SetItemsToDisplay caps how many rows the open list shows at once;
// 0 shows all items.
func (c *ComboBox) SetItemsToDisplay(count int) { c.itemsToDisplay = count }

// ItemsToDisplay returns the open-list row cap; 0 means all items.
func (c *ComboBox) ItemsToDisplay() int { return c.itemsToDisplay }

// SetDefaultText changes the placeholder shown while nothing is selected.
func (c *ComboBox) SetDefaultText(text string) { c.defaultText = text }

// DefaultText returns the placeholder shown while nothing is selected.
func (c *ComboBox) DefaultText() string { return c.defaultText }

// SetExpandDirection controls which side the list opens on.
func (c *ComboBox) SetExpandDirection(direction ExpandDirection) {
	c.expandDirection = direction
}

// GetExpandDirection returns the configured expand direction.
func (c *ComboBox) GetExpandDirection() ExpandDirection { return c.expandDirection }

// SetChangeItemOnScroll controls whether scrolling over the closed combo
// box walks through the items.
func (c *ComboBox) SetChangeItemOnScroll(change bool) { c.changeItemOnScroll = change }

// ChangeItemOnScroll reports whether scrolling over the closed combo box
// walks through the items.
func (c *ComboBox) ChangeItemOnScroll() bool { return c.changeItemOnScroll }

// ListVisible reports whether the list is currently open.
func (c *ComboBox) ListVisible() bool { return c.listBox.Parent() != nil }

// AcceptsFocus reports that combo boxes take keyboard focus.
func (c *ComboBox) AcceptsFocus() bool { return true }

// SetEnabled shadows the base to close the list when the combo box is
// disabled while open.
func (c *ComboBox) SetEnabled(enabled bool) {
	c.Base.SetEnabled(enabled)
	if !enabled {
		c.hideListBox()
	}
}

// setParent closes the list before the combo box moves to another
// container; the overlay is attached to the old root.
func (c *ComboBox) setParent(p *Container) {
	c.hideListBox()
	c.Base.setParent(p)
}

func (c *ComboBox) setFocused(focused bool) {
	c.Base.setFocused(focused)
	if !focused {
		c.hideListBox()
	}
}

// mousePressedElsewhere closes the open list when a press lands outside both
// the header and the list overlay. Focus loss covers presses on focusable
// widgets; this covers presses on non-focusable ones and empty space.
func (c *ComboBox) mousePressedElsewhere(pos Vec2) {
	if c.ListVisible() && !c.listBox.IsMouseOn(pos) {
		c.hideListBox()
	}
}

// MousePressed toggles the list.
func (c *ComboBox) MousePressed(btn MouseButton, pos Vec2) {
	if btn != MouseButtonLeft {
		return
	}
	if c.ListVisible() {
		c.hideListBox()
	} else {
		c.showListBox()
	}
}

// MouseWheelScrolled walks the selection when the combo box is closed and
// item changes on scroll are enabled. While the list is open a scroll over
// the header closes it. Unhandled scrolls are not consumed.
func (c *ComboBox) MouseWheelScrolled(delta float32, pos Vec2) bool {
	if c.ListVisible() {
		if !c.changeItemOnScroll {
			c.hideListBox()
		}
		return false
	}
	if !c.changeItemOnScroll || c.listBox.ItemCount() == 0 {
		return false
	}
	index := c.listBox.SelectedItemIndex()
	if delta < 0 {
		index++
	} else {
		index--
	}
	if index < 0 {
		index = 0
	}
	if index >= c.listBox.ItemCount() {
		index = c.listBox.ItemCount() - 1
	}
	c.SetSelectedItemByIndex(index)
	c.emitSelectionIfChanged()
	return true
}

// KeyPressed walks the selection with the arrow keys while closed and
// closes the list on escape.
func (c *ComboBox) KeyPressed(ev KeyPressEvent) {
	if ev.Key == KeyEscape {
		c.hideListBox()
		return
	}
	if !c.ListVisible() {
		c.listBox.KeyPressed(ev)
		c.emitSelectionIfChanged()
	}
}

// showListBox attaches the owned list to the root container as the topmost
// overlay, sized and positioned next to the combo box.
func (c *ComboBox) showListBox() {
	if c.ListVisible() || c.parent == nil {
		return
	}
	root := c.parent.rootContainer()

	rows := c.listBox.ItemCount()
	if c.itemsToDisplay > 0 && rows > c.itemsToDisplay {
		rows = c.itemsToDisplay
	}
	if rows < 1 {
		rows = 1
	}
	height := float32(rows)*c.listBox.ItemHeight() + 2*c.borderWidth

	rel := c.AbsolutePosition().Sub(root.AbsolutePosition())
	spaceBelow := root.Size().Y - (rel.Y + c.size.Y)
	spaceAbove := rel.Y

	down := true
	switch c.expandDirection {
	case ExpandUp:
		down = false
	case ExpandAutomatic:
		// Prefer down; only flip when down lacks room and up has more.
		if height > spaceBelow && spaceAbove > spaceBelow {
			down = false
		}
	}

	c.listBox.SetSize(Vec2{X: c.size.X, Y: height})
	if down {
		c.listBox.SetPosition(Vec2{X: rel.X, Y: rel.Y + c.size.Y})
	} else {
		c.listBox.SetPosition(Vec2{X: rel.X, Y: rel.Y - height})
	}
	root.Add(c.listBox)
}

// hideListBox detaches the list from the root container. The items and the
// selection are untouched.
func (c *ComboBox) hideListBox() {
	if parent := c.listBox.Parent(); parent != nil {
		parent.Remove(c.listBox)
	}
}

// Draw emits the closed header: background, border, current text and the
// drop-down arrow. The open list draws itself as a root child.
func (c *ComboBox) Draw(dl *DrawList) {
	abs := c.AbsolutePosition()
	dl.AddRect(abs.X, abs.Y, c.size.X, c.size.Y, c.bgColor)
	if c.borderWidth > 0 {
		dl.AddRectOutline(abs.X, abs.Y, c.size.X, c.size.Y, c.borderColor, c.borderWidth)
	}

	arrowW := c.size.Y
	dl.PushClipRect(abs.X, abs.Y, abs.X+c.size.X-arrowW, abs.Y+c.size.Y)
	text := c.listBox.SelectedItem()
	color := c.textColor
	if c.listBox.SelectedItemIndex() == -1 {
		text = c.defaultText
		color = c.defaultTextColor
	}
	dl.AddText(abs.X+c.borderWidth+4, abs.Y+(c.size.Y-c.textSize)/2, text, color, c.textSize*0.6, c.textSize)
	dl.PopClipRect()

	inset := arrowW / 3
	dl.AddTriangle(
		abs.X+c.size.X-arrowW+inset, abs.Y+inset,
		abs.X+c.size.X-inset, abs.Y+inset,
		abs.X+c.size.X-arrowW/2, abs.Y+c.size.Y-inset,
		c.arrowColor)
}

// Save serializes the combo box including all items and the selection.
func (c *ComboBox) Save() *Node {
	n := NewNode(c.typeName)
	c.saveBase(n)
	n.SetInt("itemsToDisplay", c.itemsToDisplay)
	n.SetString("defaultText", c.defaultText)
	n.SetInt("expandDirection", int(c.expandDirection))
	n.SetBool("changeItemOnScroll", c.changeItemOnScroll)
	n.SetInt("maximumItems", c.listBox.MaximumItems())
	n.SetInt("selectedIndex", c.listBox.SelectedItemIndex())
	for _, item := range c.listBox.items {
		child := NewNode("Item")
		child.SetString("name", item.Name)
		child.SetString("id", item.ID)
		n.Children = append(n.Children, child)
	}
	return n
}

// Load restores the combo box. The selection is restored without firing
// the selection signal.
func (c *ComboBox) Load(n *Node) error {
	c.loadBase(n)
	c.itemsToDisplay = n.Int("itemsToDisplay", 0)
	c.defaultText = n.String("defaultText", "")
	c.expandDirection = ExpandDirection(n.Int("expandDirection", 0))
	c.changeItemOnScroll = n.Bool("changeItemOnScroll", false)

	c.listBox.RemoveAllItems()
	c.listBox.SetMaximumItems(n.Int("maximumItems", 0))
	for _, child := range n.Children {
		if child.Type != "Item" {
			continue
		}
		c.listBox.AddItem(child.String("name", ""), child.String("id", ""))
	}
	index := n.Int("selectedIndex", -1)
	if index >= 0 && index < c.listBox.ItemCount() {
		c.listBox.selectedIndex = index
	}
	c.previousIndex = c.listBox.SelectedItemIndex()
	return nil
}

// Clone deep-copies the combo box without signal connections.
func (c *ComboBox) Clone() Widget {
	clone := NewComboBox()
	c.cloneBase(&clone.Base, clone)
	clone.itemsToDisplay = c.itemsToDisplay
	clone.defaultText = c.defaultText
	clone.expandDirection = c.expandDirection
	clone.changeItemOnScroll = c.changeItemOnScroll
	clone.listBox.items = append([]ListItem(nil), c.listBox.items...)
	clone.listBox.selectedIndex = c.listBox.selectedIndex
	clone.listBox.maximumItems = c.listBox.maximumItems
	clone.previousIndex = c.previousIndex
	clone.styleChanged("")
	return clone
}
