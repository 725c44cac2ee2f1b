package glimmer_test

import (
	"testing"

	"github.com/glimmerui/glimmer"
)

func TestListBoxSelectionByNameIDIndex(t *testing.T) {
	list := glimmer.NewListBox()
	list.AddItem("Apple", "a")
	list.AddItem("Banana", "b")
	list.AddItem("Banana", "b2")

	if !list.SetSelectedItem("Banana") {
		t.Fatal("selecting an existing name should succeed")
	}
	if list.SelectedItemIndex() != 1 {
		t.Errorf("name selection should pick the first match, index = %d", list.SelectedItemIndex())
	}

	if !list.SetSelectedItemByID("b2") {
		t.Fatal("selecting an existing id should succeed")
	}
	if list.SelectedItemIndex() != 2 {
		t.Errorf("id selection index = %d, want 2", list.SelectedItemIndex())
	}

	if list.SetSelectedItemByIndex(99) {
		t.Error("out-of-range index selection should fail")
	}
	if list.SelectedItemIndex() != 2 {
		t.Error("failed selection must not change state")
	}
}

func TestListBoxRemoveShiftsSelection(t *testing.T) {
	list := glimmer.NewListBox()
	list.AddItem("a", "")
	list.AddItem("b", "")
	list.AddItem("c", "")
	list.SetSelectedItemByIndex(2)

	fired := 0
	list.OnItemSelect.Connect(func(glimmer.ItemEvent) { fired++ })

	list.RemoveItemByIndex(0)
	if fired != 0 {
		t.Error("removing an item before the selection must not fire")
	}
	if list.SelectedItem() != "c" || list.SelectedItemIndex() != 1 {
		t.Errorf("selection should shift with the removal, got %q at %d",
			list.SelectedItem(), list.SelectedItemIndex())
	}

	list.RemoveItem("c")
	if fired != 1 {
		t.Errorf("removing the selected item should fire once, fired = %d", fired)
	}
	if list.SelectedItemIndex() != -1 {
		t.Error("removing the selected item should clear the selection")
	}
}

func TestListBoxMaximumItemsTruncates(t *testing.T) {
	list := glimmer.NewListBox()
	for i := 0; i < 5; i++ {
		list.AddItem("item", "")
	}
	list.SetSelectedItemByIndex(4)

	fired := 0
	list.OnItemSelect.Connect(func(glimmer.ItemEvent) { fired++ })

	list.SetMaximumItems(3)
	if list.ItemCount() != 3 {
		t.Errorf("ItemCount = %d after truncation, want 3", list.ItemCount())
	}
	if list.SelectedItemIndex() != -1 || fired != 1 {
		t.Error("truncating away the selection should clear it with one signal")
	}

	if got := list.AddItem("overflow", ""); got != 3 {
		t.Errorf("insert into a full list should return the maximum, got %d", got)
	}
}

func TestListBoxChangeFamilies(t *testing.T) {
	list := glimmer.NewListBox()
	list.AddItem("old", "x")
	list.AddItem("old", "y")

	if !list.ChangeItemByID("y", "new") {
		t.Fatal("renaming by id should succeed")
	}
	if list.Items()[0] != "old" || list.Items()[1] != "new" {
		t.Errorf("only the id match should be renamed, got %v", list.Items())
	}
	if list.ChangeItemByIndex(9, "z") {
		t.Error("out-of-range rename should fail")
	}
	if !list.ChangeItemByIndex(0, "first") {
		t.Error("in-range rename should succeed")
	}
}

func TestListBoxClickSelectsRow(t *testing.T) {
	list := glimmer.NewListBox()
	list.SetPosition(glimmer.Vec2{X: 0, Y: 0})
	list.SetSize(glimmer.Vec2{X: 100, Y: 100})
	list.AddItem("a", "")
	list.AddItem("b", "")

	var presses []glimmer.ItemEvent
	list.OnMousePress.Connect(func(ev glimmer.ItemEvent) { presses = append(presses, ev) })

	list.MousePressed(glimmer.MouseButtonLeft, glimmer.Vec2{X: 50, Y: 25})
	if list.SelectedItem() != "b" {
		t.Errorf("click in the second row should select it, got %q", list.SelectedItem())
	}
	if len(presses) != 1 || presses[0].Index != 1 {
		t.Fatalf("press signal expected, got %+v", presses)
	}

	// Clicking the same row again presses but does not reselect.
	fired := 0
	list.OnItemSelect.Connect(func(glimmer.ItemEvent) { fired++ })
	list.MousePressed(glimmer.MouseButtonLeft, glimmer.Vec2{X: 50, Y: 25})
	if fired != 0 {
		t.Error("clicking the selected row must not fire a selection change")
	}
	if len(presses) != 2 {
		t.Error("every row click should fire the press signal")
	}

	// Clicking below the rows does nothing.
	list.MousePressed(glimmer.MouseButtonLeft, glimmer.Vec2{X: 50, Y: 90})
	if len(presses) != 2 {
		t.Error("clicks outside the rows must not fire")
	}
}

func TestListBoxKeyboardSelection(t *testing.T) {
	list := glimmer.NewListBox()
	list.AddItem("a", "")
	list.AddItem("b", "")
	list.AddItem("c", "")

	list.KeyPressed(glimmer.KeyPressEvent{Key: glimmer.KeyDown})
	if list.SelectedItemIndex() != 0 {
		t.Errorf("down from no selection should pick the first item, got %d", list.SelectedItemIndex())
	}
	list.KeyPressed(glimmer.KeyPressEvent{Key: glimmer.KeyEnd})
	if list.SelectedItemIndex() != 2 {
		t.Errorf("end should pick the last item, got %d", list.SelectedItemIndex())
	}
	list.KeyPressed(glimmer.KeyPressEvent{Key: glimmer.KeyUp})
	if list.SelectedItemIndex() != 1 {
		t.Errorf("up should step back, got %d", list.SelectedItemIndex())
	}
}
