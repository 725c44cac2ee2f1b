package glimmer

// ListItem is one entry of a ListBox: a display name plus an optional id
// for later lookup. Neither has to be unique.
type ListItem struct {
	Name string
	ID   string
}

// ItemEvent is the payload of item-selection signals. Index is -1 and both
// strings are empty when the selection was cleared.
type ItemEvent struct {
	Name  string
	ID    string
	Index int
}

// ListBox is a widget showing a selectable list of items in insertion
// order. It is used standalone or owned by a ComboBox, which delegates all
// item storage to it.
type ListBox struct {
	Base

	items         []ListItem
	selectedIndex int
	hoveredIndex  int
	itemHeight    float32
	maximumItems  int
	focusable     bool
	mouseOver     bool

	// OnItemSelect fires when the selected item changes, including when the
	// selection is cleared.
	OnItemSelect Signal[ItemEvent]
	// OnMousePress fires on every press on an item row, whether or not the
	// selection changed.
	OnMousePress Signal[ItemEvent]

	// Cached resolved style properties.
	bgColor         uint32
	borderColor     uint32
	textColor       uint32
	selectedBgColor uint32
	selectedTextCol uint32
	hoverBgColor    uint32
	borderWidth     float32
	textSize        float32
}

// NewListBox creates an empty list box.
func NewListBox() *ListBox {
	l := &ListBox{
		selectedIndex: -1,
		hoveredIndex:  -1,
		itemHeight:    20,
		focusable:     true,
	}
	l.initBase("ListBox", l, map[string]any{
		"BackgroundColor":         RGBA(245, 245, 245, 255),
		"BackgroundColorHover":    RGBA(255, 255, 255, 255),
		"BorderColor":             ColorBlack,
		"TextColor":               RGBA(60, 60, 60, 255),
		"SelectedBackgroundColor": RGBA(0, 110, 200, 255),
		"SelectedTextColor":       ColorWhite,
		"Borders":                 float32(1),
		"TextSize":                float32(13),
	})
	l.styleChanged("")
	l.size = Vec2{X: 150, Y: 154}
	return l
}

// styleChanged refreshes the cached resolved style properties.
func (l *ListBox) styleChanged(property string) {
	l.bgColor = l.style.Color("BackgroundColor", RGBA(245, 245, 245, 255))
	l.hoverBgColor = l.style.Color("BackgroundColorHover", RGBA(255, 255, 255, 255))
	l.borderColor = l.style.Color("BorderColor", ColorBlack)
	l.textColor = l.style.Color("TextColor", RGBA(60, 60, 60, 255))
	l.selectedBgColor = l.style.Color("SelectedBackgroundColor", RGBA(0, 110, 200, 255))
	l.selectedTextCol = l.style.Color("SelectedTextColor", ColorWhite)
	l.borderWidth = l.style.Float("Borders", 1)
	l.textSize = l.style.Float("TextSize", 13)
}

// AddItem appends an item. Returns the index of the inserted item, or the
// configured maximum item count when the list is full — a sentinel no
// successful insertion can produce.
func (l *ListBox) AddItem(name, id string) int {
	if l.maximumItems > 0 && len(l.items) >= l.maximumItems {
		return l.maximumItems
	}
	l.items = append(l.items, ListItem{Name: name, ID: id})
	return len(l.items) - 1
}

// SetSelectedItem selects the first item with the given name.
// Returns false, without side effects, when no item matches.
func (l *ListBox) SetSelectedItem(name string) bool {
	for i, item := range l.items {
		if item.Name == name {
			l.selectIndex(i)
			return true
		}
	}
	return false
}

// SetSelectedItemByID selects the first item with the given id.
func (l *ListBox) SetSelectedItemByID(id string) bool {
	for i, item := range l.items {
		if item.ID == id {
			l.selectIndex(i)
			return true
		}
	}
	return false
}

// SetSelectedItemByIndex selects the item at the given index.
// Returns false when the index is out of range.
func (l *ListBox) SetSelectedItemByIndex(index int) bool {
	if index < 0 || index >= len(l.items) {
		return false
	}
	l.selectIndex(index)
	return true
}

// DeselectItem clears the selection.
func (l *ListBox) DeselectItem() {
	l.selectIndex(-1)
}

// selectIndex records a new selection and fires the signal when it differs
// from the previous one.
func (l *ListBox) selectIndex(index int) {
	if index == l.selectedIndex {
		return
	}
	l.selectedIndex = index
	if index == -1 {
		l.OnItemSelect.emit(ItemEvent{Index: -1})
		return
	}
	item := l.items[index]
	l.OnItemSelect.emit(ItemEvent{Name: item.Name, ID: item.ID, Index: index})
}

// RemoveItem removes the first item with the given name.
// Returns false when no item matches.
func (l *ListBox) RemoveItem(name string) bool {
	for i, item := range l.items {
		if item.Name == name {
			l.removeIndex(i)
			return true
		}
	}
	return false
}

// RemoveItemByID removes the first item with the given id.
func (l *ListBox) RemoveItemByID(id string) bool {
	for i, item := range l.items {
		if item.ID == id {
			l.removeIndex(i)
			return true
		}
	}
	return false
}

// RemoveItemByIndex removes the item at the given index.
// Returns false when the index is out of range.
func (l *ListBox) RemoveItemByIndex(index int) bool {
	if index < 0 || index >= len(l.items) {
		return false
	}
	l.removeIndex(index)
	return true
}

// removeIndex removes one item and fixes up the selection: removing the
// selected item clears the selection (with a signal); removing an earlier
// item shifts the recorded index without a signal.
func (l *ListBox) removeIndex(index int) {
	l.items = append(l.items[:index], l.items[index+1:]...)
	switch {
	case l.selectedIndex == index:
		l.selectedIndex = -1
		l.OnItemSelect.emit(ItemEvent{Index: -1})
	case l.selectedIndex > index:
		l.selectedIndex--
	}
	if l.hoveredIndex >= len(l.items) {
		l.hoveredIndex = -1
	}
}

// RemoveAllItems clears the list. The selection resets without a signal
// only if nothing was selected.
func (l *ListBox) RemoveAllItems() {
	l.items = nil
	l.hoveredIndex = -1
	l.selectIndex(-1)
}

// ChangeItem renames the first item with the given name.
func (l *ListBox) ChangeItem(originalName, newName string) bool {
	for i, item := range l.items {
		if item.Name == originalName {
			l.items[i].Name = newName
			return true
		}
	}
	return false
}

// ChangeItemByID renames the first item with the given id.
func (l *ListBox) ChangeItemByID(id, newName string) bool {
	for i, item := range l.items {
		if item.ID == id {
			l.items[i].Name = newName
			return true
		}
	}
	return false
}

// ChangeItemByIndex renames the item at the given index.
func (l *ListBox) ChangeItemByIndex(index int, newName string) bool {
	if index < 0 || index >= len(l.items) {
		return false
	}
	l.items[index].Name = newName
	return true
}

// ItemCount returns the number of items.
func (l *ListBox) ItemCount() int { return len(l.items) }

// Items returns a copy of the item names in insertion order.
func (l *ListBox) Items() []string {
	names := make([]string, len(l.items))
	for i, item := range l.items {
		names[i] = item.Name
	}
	return names
}

// ItemIDs returns a copy of the item ids in insertion order. Items added
// without an id have an empty string.
func (l *ListBox) ItemIDs() []string {
	ids := make([]string, len(l.items))
	for i, item := range l.items {
		ids[i] = item.ID
	}
	return ids
}

// ItemByID returns the name of the first item with the given id, or an
// empty string when no item matches.
func (l *ListBox) ItemByID(id string) string {
	for _, item := range l.items {
		if item.ID == id {
			return item.Name
		}
	}
	return ""
}

// Contains reports whether any item has the given name.
func (l *ListBox) Contains(name string) bool {
	for _, item := range l.items {
		if item.Name == name {
			return true
		}
	}
	return false
}

// ContainsID reports whether any item has the given id.
func (l *ListBox) ContainsID(id string) bool {
	for _, item := range l.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// SelectedItem returns the selected item's name, or "" when none.
func (l *ListBox) SelectedItem() string {
	if l.selectedIndex < 0 {
		return ""
	}
	return l.items[l.selectedIndex].Name
}

// SelectedItemID returns the selected item's id, or "" when none.
func (l *ListBox) SelectedItemID() string {
	if l.selectedIndex < 0 {
		return ""
	}
	return l.items[l.selectedIndex].ID
}

// SelectedItemIndex returns the selected index, or -1 when none.
func (l *ListBox) SelectedItemIndex() int { return l.selectedIndex }

// SetItemHeight changes the height of each row.
func (l *ListBox) SetItemHeight(h float32) { l.itemHeight = h }

// ItemHeight returns the height of each row.
func (l *ListBox) ItemHeight() float32 { return l.itemHeight }

// SetMaximumItems limits how many items the list can hold; 0 disables the
// limit. Items beyond a new, smaller limit are dropped.
func (l *ListBox) SetMaximumItems(maximum int) {
	l.maximumItems = maximum
	if maximum > 0 && len(l.items) > maximum {
		if l.selectedIndex >= maximum {
			l.selectedIndex = -1
			l.OnItemSelect.emit(ItemEvent{Index: -1})
		}
		l.items = l.items[:maximum]
	}
}

// MaximumItems returns the configured item limit; 0 means unlimited.
func (l *ListBox) MaximumItems() int { return l.maximumItems }

// SetFocusable controls whether the list box can take logical focus.
// A ComboBox marks its owned list non-focusable so opening the list does
// not steal focus from the combo box.
func (l *ListBox) SetFocusable(focusable bool) { l.focusable = focusable }

// AcceptsFocus reports whether the list can take logical focus.
func (l *ListBox) AcceptsFocus() bool { return l.focusable }

// itemIndexAt maps a view-coordinate position to a row index, or -1.
func (l *ListBox) itemIndexAt(pos Vec2) int {
	abs := l.AbsolutePosition()
	row := int((pos.Y - abs.Y - l.borderWidth) / l.itemHeight)
	if row < 0 || row >= len(l.items) {
		return -1
	}
	return row
}

// MousePressed selects the row under the pointer.
func (l *ListBox) MousePressed(btn MouseButton, pos Vec2) {
	if btn != MouseButtonLeft {
		return
	}
	if row := l.itemIndexAt(pos); row >= 0 {
		l.selectIndex(row)
		item := l.items[row]
		l.OnMousePress.emit(ItemEvent{Name: item.Name, ID: item.ID, Index: row})
	}
}

// MouseMoved tracks the hovered row.
func (l *ListBox) MouseMoved(pos Vec2) {
	l.mouseOver = true
	l.hoveredIndex = l.itemIndexAt(pos)
}

// MouseLeft clears hover state.
func (l *ListBox) MouseLeft() {
	l.mouseOver = false
	l.hoveredIndex = -1
}

// KeyPressed moves the selection with the arrow keys.
func (l *ListBox) KeyPressed(ev KeyPressEvent) {
	if len(l.items) == 0 {
		return
	}
	switch ev.Key {
	case KeyUp:
		if l.selectedIndex > 0 {
			l.selectIndex(l.selectedIndex - 1)
		} else if l.selectedIndex == -1 {
			l.selectIndex(0)
		}
	case KeyDown:
		if l.selectedIndex == -1 {
			l.selectIndex(0)
		} else if l.selectedIndex < len(l.items)-1 {
			l.selectIndex(l.selectedIndex + 1)
		}
	case KeyHome:
		l.selectIndex(0)
	case KeyEnd:
		l.selectIndex(len(l.items) - 1)
	}
}

// Draw emits the list background, borders and rows.
func (l *ListBox) Draw(dl *DrawList) {
	abs := l.AbsolutePosition()
	dl.AddRect(abs.X, abs.Y, l.size.X, l.size.Y, l.bgColor)
	if l.borderWidth > 0 {
		dl.AddRectOutline(abs.X, abs.Y, l.size.X, l.size.Y, l.borderColor, l.borderWidth)
	}

	dl.PushClipRect(abs.X, abs.Y, abs.X+l.size.X, abs.Y+l.size.Y)
	rowY := abs.Y + l.borderWidth
	charW := l.textSize * 0.6
	for i, item := range l.items {
		switch {
		case i == l.selectedIndex:
			dl.AddRect(abs.X+l.borderWidth, rowY, l.size.X-2*l.borderWidth, l.itemHeight, l.selectedBgColor)
		case i == l.hoveredIndex:
			dl.AddRect(abs.X+l.borderWidth, rowY, l.size.X-2*l.borderWidth, l.itemHeight, l.hoverBgColor)
		}
		textColor := l.textColor
		if i == l.selectedIndex {
			textColor = l.selectedTextCol
		}
		dl.AddText(abs.X+l.borderWidth+4, rowY+(l.itemHeight-l.textSize)/2, item.Name, textColor, charW, l.textSize)
		rowY += l.itemHeight
	}
	dl.PopClipRect()
}

// Save serializes the list box including all items and the selection.
func (l *ListBox) Save() *Node {
	n := NewNode(l.typeName)
	l.saveBase(n)
	n.SetFloat("itemHeight", l.itemHeight)
	n.SetInt("maximumItems", l.maximumItems)
	n.SetInt("selectedIndex", l.selectedIndex)
	for _, item := range l.items {
		child := NewNode("Item")
		child.SetString("name", item.Name)
		child.SetString("id", item.ID)
		n.Children = append(n.Children, child)
	}
	return n
}

// Load restores the list box. The selection is restored without firing the
// selection signal.
func (l *ListBox) Load(n *Node) error {
	l.loadBase(n)
	l.itemHeight = n.Float("itemHeight", l.itemHeight)
	l.maximumItems = n.Int("maximumItems", 0)
	l.items = nil
	for _, child := range n.Children {
		if child.Type != "Item" {
			continue
		}
		l.items = append(l.items, ListItem{
			Name: child.String("name", ""),
			ID:   child.String("id", ""),
		})
	}
	idx := n.Int("selectedIndex", -1)
	if idx < 0 || idx >= len(l.items) {
		idx = -1
	}
	l.selectedIndex = idx
	return nil
}

// Clone deep-copies the list box without signal connections.
func (l *ListBox) Clone() Widget {
	clone := NewListBox()
	l.cloneBase(&clone.Base, clone)
	clone.items = append([]ListItem(nil), l.items...)
	clone.selectedIndex = l.selectedIndex
	clone.itemHeight = l.itemHeight
	clone.maximumItems = l.maximumItems
	clone.focusable = l.focusable
	clone.styleChanged("")
	return clone
}
