package glimmer_test

import (
	"testing"

	"github.com/glimmerui/glimmer"
)

func TestDrawListBatchesByClipRect(t *testing.T) {
	dl := glimmer.AcquireDrawList()
	defer glimmer.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, glimmer.ColorWhite)
	dl.AddRect(20, 0, 10, 10, glimmer.ColorWhite)
	dl.PushClipRect(0, 0, 5, 5)
	dl.AddRect(0, 0, 10, 10, glimmer.ColorRed)
	dl.PopClipRect()
	dl.AddRect(40, 0, 10, 10, glimmer.ColorWhite)
	dl.Finalize()

	// Same-state rects batch together; the clip change splits the command.
	if len(dl.CmdBuffer) != 3 {
		t.Fatalf("commands = %d, want 3", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].ElemCount != 12 {
		t.Errorf("first batch should hold two quads, elems = %d", dl.CmdBuffer[0].ElemCount)
	}
	if dl.CmdBuffer[1].ClipRect != [4]float32{0, 0, 5, 5} {
		t.Errorf("clipped command should carry its rect, got %v", dl.CmdBuffer[1].ClipRect)
	}
}

func TestDrawListTextBindsFontTexture(t *testing.T) {
	dl := glimmer.AcquireDrawList()
	defer glimmer.ReleaseDrawList(dl)
	dl.SetFontTexture(7)

	dl.AddRect(0, 0, 10, 10, glimmer.ColorWhite)
	dl.AddText(0, 20, "ab", glimmer.ColorWhite, 8, 16)
	dl.AddRect(0, 40, 10, 10, glimmer.ColorWhite)
	dl.Finalize()

	if len(dl.CmdBuffer) != 3 {
		t.Fatalf("commands = %d, want 3 (rect, text, rect)", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].TextureID != 0 {
		t.Error("plain rects are untextured")
	}
	if dl.CmdBuffer[1].TextureID != 7 {
		t.Errorf("text should bind the font texture, got %d", dl.CmdBuffer[1].TextureID)
	}
	if dl.CmdBuffer[2].TextureID != 0 {
		t.Error("the texture should be restored after text")
	}
	// Two glyphs, one quad each.
	if dl.CmdBuffer[1].ElemCount != 12 {
		t.Errorf("text elems = %d, want 12", dl.CmdBuffer[1].ElemCount)
	}
}

func TestDrawListInvisibleColorSkipped(t *testing.T) {
	dl := glimmer.AcquireDrawList()
	defer glimmer.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, glimmer.RGBA(255, 255, 255, 0))
	dl.AddText(0, 0, "hi", glimmer.RGBA(0, 0, 0, 0), 8, 16)
	dl.Finalize()

	if len(dl.VtxBuffer) != 0 {
		t.Errorf("fully transparent primitives should be skipped, vtx = %d", len(dl.VtxBuffer))
	}
}

func TestDrawListFinalizeDropsEmptyCommands(t *testing.T) {
	dl := glimmer.AcquireDrawList()
	defer glimmer.ReleaseDrawList(dl)

	dl.PushClipRect(0, 0, 5, 5)
	dl.PopClipRect()
	dl.PushClipRect(0, 0, 8, 8)
	dl.AddRect(0, 0, 4, 4, glimmer.ColorWhite)
	dl.PopClipRect()
	dl.Finalize()

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			t.Error("finalize should drop empty commands")
		}
	}
}

func TestDrawListPoolReuse(t *testing.T) {
	dl := glimmer.AcquireDrawList()
	dl.AddRect(0, 0, 10, 10, glimmer.ColorWhite)
	glimmer.ReleaseDrawList(dl)

	dl2 := glimmer.AcquireDrawList()
	defer glimmer.ReleaseDrawList(dl2)
	if len(dl2.VtxBuffer) != 0 || len(dl2.CmdBuffer) != 0 {
		t.Error("acquired draw lists start empty")
	}
}

func BenchmarkDrawListWidgetTree(b *testing.B) {
	root := glimmer.NewContainer()
	root.SetSize(glimmer.Vec2{X: 800, Y: 600})
	for i := 0; i < 20; i++ {
		list := glimmer.NewListBox()
		list.SetPosition(glimmer.Vec2{X: float32(i % 5 * 160), Y: float32(i / 5 * 150)})
		list.AddItem("alpha", "")
		list.AddItem("beta", "")
		root.Add(list)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dl := glimmer.AcquireDrawList()
		root.Draw(dl)
		dl.Finalize()
		glimmer.ReleaseDrawList(dl)
	}
}
