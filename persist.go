package glimmer

import (
	"fmt"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Node is the serialized form of a widget: a type tag, a flat attribute
// map, and child nodes. Widgets guarantee that every essential attribute
// round-trips losslessly through Save/Load; the text encoding below is one
// possible wire format, not part of the widget contract.
type Node struct {
	Type     string            `toml:"type"`
	Attrs    map[string]string `toml:"attrs,omitempty"`
	Children []*Node           `toml:"children,omitempty"`
}

// NewNode creates an empty node with the given widget type tag.
func NewNode(typeName string) *Node {
	return &Node{Type: typeName, Attrs: make(map[string]string)}
}

// SetString stores a string attribute.
func (n *Node) SetString(key, v string) { n.Attrs[key] = v }

// SetFloat stores a float attribute.
func (n *Node) SetFloat(key string, v float32) {
	n.Attrs[key] = strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// SetInt stores an integer attribute.
func (n *Node) SetInt(key string, v int) { n.Attrs[key] = strconv.Itoa(v) }

// SetBool stores a boolean attribute.
func (n *Node) SetBool(key string, v bool) { n.Attrs[key] = strconv.FormatBool(v) }

// String reads a string attribute, returning def when absent.
func (n *Node) String(key, def string) string {
	if v, ok := n.Attrs[key]; ok {
		return v
	}
	return def
}

// Float reads a float attribute, returning def when absent or malformed.
func (n *Node) Float(key string, def float32) float32 {
	if v, ok := n.Attrs[key]; ok {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			return float32(f)
		}
	}
	return def
}

// Int reads an integer attribute, returning def when absent or malformed.
func (n *Node) Int(key string, def int) int {
	if v, ok := n.Attrs[key]; ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// Bool reads a boolean attribute, returning def when absent or malformed.
func (n *Node) Bool(key string, def bool) bool {
	if v, ok := n.Attrs[key]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// WidgetFactory creates an empty widget of one type, ready for Load.
type WidgetFactory func() Widget

// widgetRegistry maps widget type tags to factories, used when loading
// serialized trees.
var widgetRegistry = map[string]WidgetFactory{}

// RegisterWidget registers a factory for a widget type tag. Built-in
// widgets are registered at init; applications register custom widgets the
// same way to make them loadable.
func RegisterWidget(typeName string, factory WidgetFactory) {
	widgetRegistry[typeName] = factory
}

// NewWidgetFromNode builds a widget from a serialized node, looking up the
// factory by the node's type tag.
func NewWidgetFromNode(n *Node) (Widget, error) {
	factory, ok := widgetRegistry[n.Type]
	if !ok {
		return nil, fmt.Errorf("glimmer: no widget registered for type %q", n.Type)
	}
	w := factory()
	if err := w.Load(n); err != nil {
		return nil, fmt.Errorf("glimmer: loading %s: %w", n.Type, err)
	}
	return w, nil
}

func init() {
	RegisterWidget("Container", func() Widget { return NewContainer() })
	RegisterWidget("ListBox", func() Widget { return NewListBox() })
	RegisterWidget("ComboBox", func() Widget { return NewComboBox() })
	RegisterWidget("EditBox", func() Widget { return NewEditBox() })
	RegisterWidget("SpinButton", func() Widget { return NewSpinButton(0, 10) })
	RegisterWidget("SpinControl", func() Widget { return NewSpinControl(0, 10, 0, 0, 1) })
}

// SaveWidget serializes a widget tree to TOML.
func SaveWidget(w Widget) ([]byte, error) {
	data, err := toml.Marshal(w.Save())
	if err != nil {
		return nil, fmt.Errorf("glimmer: saving %s: %w", w.Type(), err)
	}
	return data, nil
}

// LoadWidget rebuilds a widget tree from TOML produced by SaveWidget.
func LoadWidget(data []byte) (Widget, error) {
	var n Node
	if err := toml.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("glimmer: parsing widget tree: %w", err)
	}
	return NewWidgetFromNode(&n)
}
