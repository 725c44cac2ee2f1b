package glimmer_test

import (
	"reflect"
	"testing"

	"github.com/glimmerui/glimmer"
)

func TestSignalSelfDisconnectDuringEmit(t *testing.T) {
	_, combo := newComboInRoot(t)
	combo.AddItem("Apple", "a")
	combo.AddItem("Banana", "b")

	var order []string
	var onceID int
	onceID = combo.OnItemSelect.Connect(func(glimmer.ItemEvent) {
		order = append(order, "once")
		combo.OnItemSelect.Disconnect(onceID)
	})
	combo.OnItemSelect.Connect(func(glimmer.ItemEvent) { order = append(order, "second") })
	combo.OnItemSelect.Connect(func(glimmer.ItemEvent) { order = append(order, "third") })

	// A handler removing itself mid-emission must not skip or repeat the
	// handlers connected after it.
	combo.SetSelectedItemByIndex(0)
	if want := []string{"once", "second", "third"}; !reflect.DeepEqual(order, want) {
		t.Fatalf("first emission order = %v, want %v", order, want)
	}
	if got := combo.OnItemSelect.HandlerCount(); got != 2 {
		t.Fatalf("HandlerCount = %d after self-disconnect, want 2", got)
	}

	combo.SetSelectedItemByIndex(1)
	want := []string{"once", "second", "third", "second", "third"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("second emission order = %v, want %v", order, want)
	}
}
