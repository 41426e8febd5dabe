// ABOUTME: Tests for the half-block favicon preview

package report

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mauromedda/echostatus/internal/i18n"
)

func redIcon(t *testing.T, size int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for x := range size {
		for y := range size {
			img.Set(x, y, color.RGBA{R: 0xff, A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func colorReporter(profile termenv.Profile) *Reporter {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	return New(Options{Renderer: r, Lang: i18n.English, IconSize: 16})
}

func TestIconLines(t *testing.T) {
	t.Parallel()

	lines := colorReporter(termenv.TrueColor).iconLines(redIcon(t, 64), 16)
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8 for a 16px icon", len(lines))
	}
	for i, line := range lines {
		if got := strings.Count(line, halfBlock); got != 16 {
			t.Errorf("line %d has %d cells, want 16", i, got)
		}
		if !strings.Contains(line, "48;2;255;0;0") {
			t.Errorf("line %d missing red background: %q", i, line)
		}
	}
}

func TestIconLinesSkipped(t *testing.T) {
	t.Parallel()

	if lines := colorReporter(termenv.Ascii).iconLines(redIcon(t, 64), 16); lines != nil {
		t.Errorf("Ascii profile rendered %d icon lines", len(lines))
	}
	rep := colorReporter(termenv.TrueColor)
	if lines := rep.iconLines("", 16); lines != nil {
		t.Error("missing icon rendered lines")
	}
	if lines := rep.iconLines("data:image/png;base64,***", 16); lines != nil {
		t.Error("corrupt icon rendered lines")
	}
	if lines := rep.iconLines(redIcon(t, 64), 0); lines != nil {
		t.Error("size 0 rendered lines")
	}
}

func TestTextIncludesIcon(t *testing.T) {
	t.Parallel()

	s := sample()
	s.Icon = redIcon(t, 64)
	out := colorReporter(termenv.TrueColor).Text(s)
	if !strings.HasPrefix(out, "\x1b[") || strings.Count(out, halfBlock) != 16*8 {
		t.Errorf("icon not drawn ahead of the report:\n%q", out)
	}
}
