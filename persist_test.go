package glimmer_test

import (
	"testing"

	"github.com/glimmerui/glimmer"
)

func TestSaveLoadComboBoxRoundTrip(t *testing.T) {
	combo := glimmer.NewComboBox()
	combo.SetPosition(glimmer.Vec2{X: 10, Y: 20})
	combo.SetSize(glimmer.Vec2{X: 150, Y: 24})
	combo.SetDefaultText("pick one")
	combo.SetItemsToDisplay(4)
	combo.SetChangeItemOnScroll(true)
	combo.SetMaximumItems(5)
	combo.AddItem("Apple", "a")
	combo.AddItem("Banana", "b")
	combo.SetSelectedItemByIndex(1)

	data, err := glimmer.SaveWidget(combo)
	if err != nil {
		t.Fatalf("SaveWidget: %v", err)
	}

	loaded, err := glimmer.LoadWidget(data)
	if err != nil {
		t.Fatalf("LoadWidget: %v", err)
	}
	restored, ok := loaded.(*glimmer.ComboBox)
	if !ok {
		t.Fatalf("loaded widget type = %T, want *ComboBox", loaded)
	}

	fired := 0
	restored.OnItemSelect.Connect(func(glimmer.ItemEvent) { fired++ })

	if restored.Position() != combo.Position() || restored.Size() != combo.Size() {
		t.Error("geometry should round-trip")
	}
	if restored.DefaultText() != "pick one" || restored.ItemsToDisplay() != 4 {
		t.Error("display settings should round-trip")
	}
	if !restored.ChangeItemOnScroll() || restored.MaximumItems() != 5 {
		t.Error("behavior settings should round-trip")
	}
	if restored.ItemCount() != 2 || restored.ItemByID("b") != "Banana" {
		t.Error("items should round-trip with ids")
	}
	if restored.SelectedItemIndex() != 1 {
		t.Errorf("selection should round-trip, index = %d", restored.SelectedItemIndex())
	}
	if fired != 0 {
		t.Error("loading must not fire selection signals")
	}
}

func TestSaveLoadContainerTree(t *testing.T) {
	root := glimmer.NewContainer()
	root.SetSize(glimmer.Vec2{X: 400, Y: 300})

	edit := glimmer.NewEditBox()
	edit.SetText("hello")
	edit.SetPosition(glimmer.Vec2{X: 5, Y: 6})
	root.Add(edit)

	spin := glimmer.NewSpinControl(0, 20, 7, 1, 0.5)
	spin.SetPosition(glimmer.Vec2{X: 5, Y: 40})
	root.Add(spin)

	list := glimmer.NewListBox()
	list.AddItem("x", "1")
	list.AddItem("y", "2")
	list.SetSelectedItemByIndex(0)
	root.Add(list)

	data, err := glimmer.SaveWidget(root)
	if err != nil {
		t.Fatalf("SaveWidget: %v", err)
	}

	loaded, err := glimmer.LoadWidget(data)
	if err != nil {
		t.Fatalf("LoadWidget: %v", err)
	}
	tree, ok := loaded.(*glimmer.Container)
	if !ok {
		t.Fatalf("loaded widget type = %T, want *Container", loaded)
	}

	children := tree.Children()
	if len(children) != 3 {
		t.Fatalf("children = %d, want 3", len(children))
	}

	box, ok := children[0].(*glimmer.EditBox)
	if !ok || box.Text() != "hello" {
		t.Errorf("edit box should round-trip, got %T", children[0])
	}
	restoredSpin, ok := children[1].(*glimmer.SpinControl)
	if !ok {
		t.Fatalf("spin control should round-trip, got %T", children[1])
	}
	if restoredSpin.Value() != 7 || restoredSpin.Maximum() != 20 || restoredSpin.Step() != 0.5 {
		t.Errorf("spin state: value=%v max=%v step=%v", restoredSpin.Value(), restoredSpin.Maximum(), restoredSpin.Step())
	}
	if restoredSpin.SpinText().Text() != "7.0" {
		t.Errorf("spin display = %q, want 7.0", restoredSpin.SpinText().Text())
	}
	restoredList, ok := children[2].(*glimmer.ListBox)
	if !ok || restoredList.SelectedItem() != "x" || restoredList.ItemByID("2") != "y" {
		t.Errorf("list should round-trip, got %T", children[2])
	}
}

func TestLoadUnknownTypeFails(t *testing.T) {
	n := glimmer.NewNode("Teleporter")
	if _, err := glimmer.NewWidgetFromNode(n); err == nil {
		t.Error("unknown widget types must fail to load")
	}
}

func TestCloneContainerDeepCopy(t *testing.T) {
	root := glimmer.NewContainer()
	combo := glimmer.NewComboBox()
	combo.AddItem("Apple", "a")
	combo.SetSelectedItemByIndex(0)
	root.Add(combo)

	clone := root.Clone().(*glimmer.Container)
	if len(clone.Children()) != 1 {
		t.Fatalf("clone children = %d, want 1", len(clone.Children()))
	}
	clonedCombo := clone.Children()[0].(*glimmer.ComboBox)

	// Mutating the clone leaves the original untouched.
	clonedCombo.AddItem("Banana", "b")
	if combo.ItemCount() != 1 {
		t.Error("clone items must be independent")
	}
	if clonedCombo.SelectedItem() != "Apple" {
		t.Errorf("clone selection = %q, want Apple", clonedCombo.SelectedItem())
	}

	// Signal connections do not carry over.
	fired := 0
	combo.OnItemSelect.Connect(func(glimmer.ItemEvent) { fired++ })
	clonedCombo.DeselectItem()
	if fired != 0 {
		t.Error("clone signals must not reach the original's handlers")
	}
}
