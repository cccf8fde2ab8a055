package layout

import (
	"strings"
	"testing"

	"github.com/quillweb/quill/internal/platform"
)

func TestWrapTextReconstructsOriginal(t *testing.T) {
	fc := platform.NewFixedFontContext(1, 10)
	font := platform.Font{SizePx: 12}
	text := "aaaa bbbb cccc dddd eeee"
	lines := wrapText(fc, font, text, nil, 9, 9)

	if got := strings.Join(lines, ""); got != text {
		t.Fatalf("concatenated lines = %q, want %q", got, text)
	}
}

// S8 from spec.md §8: a box exactly fitting "aaaa bbbb" wraps after it.
func TestWrapTextMatchesS8(t *testing.T) {
	fc := platform.NewFixedFontContext(1, 10)
	font := platform.Font{SizePx: 12}
	text := "aaaa bbbb cccc"
	lines := wrapText(fc, font, text, nil, 9, 9)

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if strings.TrimSpace(lines[0]) != "aaaa bbbb" {
		t.Fatalf("line 1 = %q, want trimmed %q", lines[0], "aaaa bbbb")
	}
	if strings.TrimSpace(lines[1]) != "cccc" {
		t.Fatalf("line 2 = %q, want %q", lines[1], "cccc")
	}
}

// Property 7: no line exceeds the box width unless it is a single
// unbreakable word.
func TestWrapTextNoLineExceedsWidthUnlessUnbreakable(t *testing.T) {
	fc := platform.NewFixedFontContext(1, 10)
	font := platform.Font{SizePx: 12}
	text := "the quick brown fox jumps over the lazy dog"
	const maxWidth = 12
	lines := wrapText(fc, font, text, nil, maxWidth, maxWidth)

	for _, line := range lines {
		w, _ := fc.TextDimension(line, font)
		if w > maxWidth && len(strings.Fields(line)) > 1 {
			t.Fatalf("line %q (width %v) exceeds max width %v and is not a single word", line, w, maxWidth)
		}
	}
}

// Property 8: a non-breaking space is never chosen as a break point.
func TestWrapTextNeverBreaksAtNonBreakingSpace(t *testing.T) {
	fc := platform.NewFixedFontContext(1, 10)
	font := platform.Font{SizePx: 12}
	text := "aaaa bbbb"
	nbsp := map[int]bool{4: true} // the space at index 4 is non-breaking
	lines := wrapText(fc, font, text, nbsp, 4, 4)

	if len(lines) != 1 {
		t.Fatalf("expected the unbreakable run to stay on one line, got %v", lines)
	}
	if lines[0] != text {
		t.Fatalf("line = %q, want %q", lines[0], text)
	}
}

func TestWrapTextSingleUnbreakableWordOverflows(t *testing.T) {
	fc := platform.NewFixedFontContext(1, 10)
	font := platform.Font{SizePx: 12}
	text := "supercalifragilisticexpialidocious"
	lines := wrapText(fc, font, text, nil, 5, 5)

	if len(lines) != 1 || lines[0] != text {
		t.Fatalf("expected the overflowing single word kept whole, got %v", lines)
	}
}

func TestWrapTextEmpty(t *testing.T) {
	fc := platform.NewFixedFontContext(1, 10)
	font := platform.Font{SizePx: 12}
	if lines := wrapText(fc, font, "", nil, 10, 10); lines != nil {
		t.Fatalf("expected no lines for empty text, got %v", lines)
	}
}
