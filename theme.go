package glimmer

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Theme holds named appearance properties per widget type. Applying a theme
// writes the properties into each widget's style record; copy-on-write and
// change notification happen through the normal Style path, so shared
// records split and cached colors refresh as usual.
//
// Colors are written as "#RRGGBBAA" hex strings so theme files stay
// readable and editable.
type Theme struct {
	Name    string                `toml:"name"`
	Widgets map[string]ThemeProps `toml:"widgets"`
}

// ThemeProps is the property set for one widget type.
type ThemeProps struct {
	Colors map[string]string  `toml:"colors,omitempty"`
	Floats map[string]float32 `toml:"floats,omitempty"`
}

// Apply writes the theme's properties into the widget's style and recurses
// into child widgets. Widget types the theme doesn't mention keep their
// current style.
func (t *Theme) Apply(w Widget) error {
	props, ok := t.Widgets[w.Type()]
	if ok {
		style := w.SharedStyle()
		for name, hex := range props.Colors {
			c, err := ParseHexColor(hex)
			if err != nil {
				return fmt.Errorf("glimmer: theme %s, %s.%s: %w", t.Name, w.Type(), name, err)
			}
			style.Set(name, c)
		}
		for name, v := range props.Floats {
			style.Set(name, v)
		}
	}
	if cw, ok := w.(ContainerWidget); ok {
		for _, child := range cw.Children() {
			if err := t.Apply(child); err != nil {
				return err
			}
		}
	}
	return nil
}

// SaveTheme serializes a theme to TOML.
func SaveTheme(t *Theme) ([]byte, error) {
	data, err := toml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("glimmer: saving theme %s: %w", t.Name, err)
	}
	return data, nil
}

// LoadTheme parses a theme from TOML produced by SaveTheme or written by
// hand.
func LoadTheme(data []byte) (*Theme, error) {
	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("glimmer: parsing theme: %w", err)
	}
	return &t, nil
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" into a packed color.
func ParseHexColor(s string) (uint32, error) {
	if len(s) == 0 || s[0] != '#' || (len(s) != 7 && len(s) != 9) {
		return 0, fmt.Errorf("bad color %q, want #RRGGBB or #RRGGBBAA", s)
	}
	var v uint64
	for _, c := range s[1:] {
		var d uint64
		switch {
		case c >= '0' && c <= '9':
			d = uint64(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint64(c-'A') + 10
		default:
			return 0, fmt.Errorf("bad color %q, want #RRGGBB or #RRGGBBAA", s)
		}
		v = v<<4 | d
	}
	if len(s) == 7 {
		v = v<<8 | 0xFF
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// FormatHexColor renders a packed color as "#RRGGBBAA".
func FormatHexColor(c uint32) string {
	r, g, b, a := UnpackRGBA(c)
	return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a)
}

// DefaultTheme is the light look the widget constructors ship with.
func DefaultTheme() *Theme {
	return &Theme{
		Name: "default",
		Widgets: map[string]ThemeProps{
			"ListBox": {
				Colors: map[string]string{
					"BackgroundColor":         "#F5F5F5",
					"BackgroundColorHover":    "#FFFFFF",
					"BorderColor":             "#000000",
					"TextColor":               "#3C3C3C",
					"SelectedBackgroundColor": "#006EC8",
					"SelectedTextColor":       "#FFFFFF",
				},
				Floats: map[string]float32{"Borders": 1, "TextSize": 13},
			},
			"ComboBox": {
				Colors: map[string]string{
					"BackgroundColor":  "#FFFFFF",
					"BorderColor":      "#000000",
					"TextColor":        "#3C3C3C",
					"DefaultTextColor": "#A0A0A0",
					"ArrowColor":       "#3C3C3C",
				},
				Floats: map[string]float32{"Borders": 1, "TextSize": 13},
			},
			"EditBox": {
				Colors: map[string]string{
					"BackgroundColor": "#FFFFFF",
					"BorderColor":     "#000000",
					"TextColor":       "#3C3C3C",
					"CaretColor":      "#000000",
				},
				Floats: map[string]float32{"Borders": 1, "TextSize": 13},
			},
			"SpinButton": {
				Colors: map[string]string{
					"BackgroundColor": "#F5F5F5",
					"ArrowColor":      "#3C3C3C",
					"BorderColor":     "#000000",
				},
				Floats: map[string]float32{"Borders": 1},
			},
		},
	}
}

// DarkTheme is a dark variant of the default look.
func DarkTheme() *Theme {
	return &Theme{
		Name: "dark",
		Widgets: map[string]ThemeProps{
			"ListBox": {
				Colors: map[string]string{
					"BackgroundColor":         "#282828",
					"BackgroundColorHover":    "#353535",
					"BorderColor":             "#505050",
					"TextColor":               "#DCDCDC",
					"SelectedBackgroundColor": "#1E6EB4",
					"SelectedTextColor":       "#FFFFFF",
				},
				Floats: map[string]float32{"Borders": 1, "TextSize": 13},
			},
			"ComboBox": {
				Colors: map[string]string{
					"BackgroundColor":  "#323232",
					"BorderColor":      "#505050",
					"TextColor":        "#DCDCDC",
					"DefaultTextColor": "#787878",
					"ArrowColor":       "#DCDCDC",
				},
				Floats: map[string]float32{"Borders": 1, "TextSize": 13},
			},
			"EditBox": {
				Colors: map[string]string{
					"BackgroundColor": "#323232",
					"BorderColor":     "#505050",
					"TextColor":       "#DCDCDC",
					"CaretColor":      "#DCDCDC",
				},
				Floats: map[string]float32{"Borders": 1, "TextSize": 13},
			},
			"SpinButton": {
				Colors: map[string]string{
					"BackgroundColor": "#282828",
					"ArrowColor":      "#DCDCDC",
					"BorderColor":     "#505050",
				},
				Floats: map[string]float32{"Borders": 1},
			},
		},
	}
}

// LightTheme is an alias kept for symmetry with DarkTheme.
func LightTheme() *Theme {
	t := DefaultTheme()
	t.Name = "light"
	return t
}
