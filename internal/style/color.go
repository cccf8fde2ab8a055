package style

import "strings"

// Color is a resolved RGB color (spec.md §4.5's "named color" subset:
// full hex/rgb()/hsl() parsing is out of scope for this pipeline).
type Color struct {
	R, G, B byte
}

var namedColors = map[string]Color{
	"black": {0, 0, 0},
	"blue":  {0, 0, 255},
	"red":   {255, 0, 0},
	"green": {0, 128, 0},
	"white": {255, 255, 255},
}

// ParseColor resolves a named color keyword; everything else
// (hex triples, rgb()/hsl() functions) is unimplemented and reported
// by the caller as a parse failure.
func ParseColor(raw string) (Color, bool) {
	c, ok := namedColors[strings.ToLower(strings.TrimSpace(raw))]
	return c, ok
}
