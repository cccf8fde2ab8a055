package style

import (
	"strconv"
	"strings"

	"github.com/quillweb/quill/internal/cssparse"
	"github.com/quillweb/quill/internal/diag"
	"github.com/quillweb/quill/internal/loc"
)

// defaults mirrors spec.md §4.5's get_property fallback table: every
// property the resolver knows about has a hardcoded value used when
// no rule (and no inherited value) set it.
var defaults = map[cssparse.Property]string{
	cssparse.PropertyColor:           "black",
	cssparse.PropertyBackgroundColor: "transparent",
	cssparse.PropertyFontSize:        "18",
	cssparse.PropertyFontWeight:      "normal",
	cssparse.PropertyFontFamily:      "sans-serif",
	cssparse.PropertyDisplay:         "inline",
	cssparse.PropertyTextDecoration:  "none",
}

// GetProperty returns the resolved value for name, or its hardcoded
// default if styles doesn't set it.
func GetProperty(styles map[cssparse.Property]string, name cssparse.Property) string {
	if v, ok := styles[name]; ok {
		return v
	}
	return defaults[name]
}

// HasStyleValue reports whether name was explicitly set by the
// cascade (as opposed to falling back to its default).
func HasStyleValue(styles map[cssparse.Property]string, name cssparse.Property) bool {
	_, ok := styles[name]
	return ok
}

// GetColorStyleValue parses name's value as a named color, falling
// back to black when the value is present but unparseable (spec.md
// §4.5/§7).
func GetColorStyleValue(styles map[cssparse.Property]string, name cssparse.Property, h *diag.Handler) Color {
	raw := GetProperty(styles, name)
	c, ok := ParseColor(raw)
	if ok {
		return c
	}
	if HasStyleValue(styles, name) && h != nil {
		h.Warn(loc.WarnUnparseableColor, loc.Pos{}, "unparseable color value "+raw)
	}
	return namedColors["black"]
}

// ResolveNumericValue parses a bare number (e.g. "18" for a font-size
// in pixels). Percentages and "rem" units are reserved/not implemented
// (spec.md §4.5, §7): a suffixed value logs a warning and returns ok=false.
func ResolveNumericValue(raw string, h *diag.Handler) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v, true
	}
	if h != nil {
		h.Warn(loc.WarnUnimplementedCSSFeature, loc.Pos{}, "numeric value with a unit suffix is not implemented: "+raw)
	}
	return 0, false
}
