package platform

// FixedFontContext is a deterministic FontContext used by this
// module's own tests (spec.md explicitly pushes the real font/glyph
// backend out of scope, so there is no real metrics implementation to
// exercise here). Every rune advances by CharWidth pixels regardless
// of glyph; height is always LineHeight. This keeps line-wrap and
// selection tests exact and readable without a real font file.
type FixedFontContext struct {
	CharWidth  float64
	LineHeight float64
}

// NewFixedFontContext returns a FixedFontContext with the given
// per-character advance and line height.
func NewFixedFontContext(charWidth, lineHeight float64) *FixedFontContext {
	return &FixedFontContext{CharWidth: charWidth, LineHeight: lineHeight}
}

func (f *FixedFontContext) TextDimension(text string, _ Font) (float64, float64) {
	n := 0
	for range text {
		n++
	}
	return float64(n) * f.CharWidth, f.LineHeight
}

func (f *FixedFontContext) CharPositionMapping(text string, _ Font) []float64 {
	var out []float64
	acc := 0.0
	for range text {
		acc += f.CharWidth
		out = append(out, acc)
	}
	return out
}
