package glimmer_test

import (
	"strings"
	"testing"

	"github.com/glimmerui/glimmer"
)

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
		ok   bool
	}{
		{"#FFFFFF", glimmer.ColorWhite, true},
		{"#000000FF", glimmer.ColorBlack, true},
		{"#FF0000", glimmer.ColorRed, true},
		{"#00FF00ff", glimmer.ColorGreen, true},
		{"FFFFFF", 0, false},
		{"#FFF", 0, false},
		{"#GGGGGG", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := glimmer.ParseHexColor(tc.in)
		if tc.ok != (err == nil) {
			t.Errorf("ParseHexColor(%q) err = %v", tc.in, err)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("ParseHexColor(%q) = %08x, want %08x", tc.in, got, tc.want)
		}
	}
}

func TestHexColorRoundTrip(t *testing.T) {
	c := glimmer.RGBA(12, 34, 56, 78)
	got, err := glimmer.ParseHexColor(glimmer.FormatHexColor(c))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != c {
		t.Errorf("round trip = %08x, want %08x", got, c)
	}
}

func TestThemeApplyRefreshesWidgets(t *testing.T) {
	root := glimmer.NewContainer()
	list := glimmer.NewListBox()
	list.SetSize(glimmer.Vec2{X: 100, Y: 60})
	list.AddItem("one", "")
	root.Add(list)

	if err := glimmer.DarkTheme().Apply(root); err != nil {
		t.Fatalf("apply: %v", err)
	}
	want, _ := glimmer.ParseHexColor("#282828")
	if got := list.SharedStyle().Color("BackgroundColor", 0); got != want {
		t.Errorf("BackgroundColor = %08x, want %08x", got, want)
	}

	// The cached color must flow into drawing.
	dl := glimmer.AcquireDrawList()
	defer glimmer.ReleaseDrawList(dl)
	list.Draw(dl)
	dl.Finalize()
	found := false
	for _, v := range dl.VtxBuffer {
		if v.Color == want {
			found = true
			break
		}
	}
	if !found {
		t.Error("themed background color not present in draw output")
	}
}

func TestThemeApplySplitsSharedStyles(t *testing.T) {
	a := glimmer.NewListBox()
	b := glimmer.NewListBox()
	b.SetStyle(a.SharedStyle())
	if a.SharedStyle().SharedBy() != 2 {
		t.Fatal("styles should be shared before theming")
	}

	root := glimmer.NewContainer()
	root.Add(a)
	if err := glimmer.DarkTheme().Apply(root); err != nil {
		t.Fatalf("apply: %v", err)
	}
	dark, _ := glimmer.ParseHexColor("#282828")
	if a.SharedStyle().Color("BackgroundColor", 0) != dark {
		t.Error("themed widget should carry the dark background")
	}
	if b.SharedStyle().Color("BackgroundColor", 0) == dark {
		t.Error("widget outside the themed tree must keep its style")
	}
}

func TestThemeUnknownWidgetTypeIgnored(t *testing.T) {
	theme := &glimmer.Theme{Name: "partial", Widgets: map[string]glimmer.ThemeProps{
		"NoSuchWidget": {Colors: map[string]string{"BackgroundColor": "#112233"}},
	}}
	edit := glimmer.NewEditBox()
	if err := theme.Apply(edit); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if edit.SharedStyle().Color("BackgroundColor", glimmer.ColorWhite) != glimmer.ColorWhite {
		t.Error("widget types the theme omits keep their defaults")
	}
}

func TestThemeBadColorFails(t *testing.T) {
	theme := &glimmer.Theme{Name: "broken", Widgets: map[string]glimmer.ThemeProps{
		"EditBox": {Colors: map[string]string{"TextColor": "purple"}},
	}}
	if err := theme.Apply(glimmer.NewEditBox()); err == nil {
		t.Fatal("malformed color should fail")
	}
}

func TestThemeSaveLoadRoundTrip(t *testing.T) {
	data, err := glimmer.SaveTheme(glimmer.DarkTheme())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.Contains(string(data), "dark") {
		t.Error("serialized theme should carry its name")
	}
	loaded, err := glimmer.LoadTheme(data)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Name != "dark" {
		t.Errorf("name = %q", loaded.Name)
	}
	if loaded.Widgets["ListBox"].Colors["SelectedBackgroundColor"] != "#1E6EB4" {
		t.Error("widget colors should round-trip")
	}
	if loaded.Widgets["EditBox"].Floats["TextSize"] != 13 {
		t.Error("widget floats should round-trip")
	}
}
