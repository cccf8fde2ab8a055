package cssparse

import "github.com/iancoleman/strcase"

// Property is the typed enum a declaration's property name maps to;
// unknown names produce a warning and are skipped (spec.md §4.4).
type Property int

const (
	PropertyUnknown Property = iota
	PropertyColor
	PropertyBackgroundColor
	PropertyFontSize
	PropertyFontWeight
	PropertyFontFamily
	PropertyDisplay
	PropertyTextDecoration
)

func (p Property) String() string {
	switch p {
	case PropertyColor:
		return "color"
	case PropertyBackgroundColor:
		return "background-color"
	case PropertyFontSize:
		return "font-size"
	case PropertyFontWeight:
		return "font-weight"
	case PropertyFontFamily:
		return "font-family"
	case PropertyDisplay:
		return "display"
	case PropertyTextDecoration:
		return "text-decoration"
	default:
		return "unknown"
	}
}

// Inheritable reports whether this property's value should flow from
// parent to child when a child element doesn't set it itself
// (spec.md §4.5 / §9: a per-property table, not blanket inheritance).
func (p Property) Inheritable() bool {
	switch p {
	case PropertyColor, PropertyFontSize, PropertyFontWeight, PropertyFontFamily:
		return true
	default:
		return false
	}
}

var propertyNames = map[string]Property{
	"color":            PropertyColor,
	"background-color": PropertyBackgroundColor,
	"font-size":        PropertyFontSize,
	"font-weight":      PropertyFontWeight,
	"font-family":      PropertyFontFamily,
	"display":          PropertyDisplay,
	"text-decoration":  PropertyTextDecoration,
}

// LookupProperty maps a lowercased CSS property name to its enum
// value.
func LookupProperty(name string) (Property, bool) {
	p, ok := propertyNames[name]
	return p, ok
}

// GoName returns the PascalCase identifier LookupProperty's constant
// for name would use (e.g. "font-size" -> "FontSize"), by running the
// kebab-case CSS property name through strcase the same way the
// teacher's printer package converts file basenames to Go identifiers.
// Used only to make an "unknown CSS property" diagnostic point at the
// constant a reader would expect to find (or confirm is genuinely
// absent) in property.go.
func GoName(name string) string {
	return strcase.ToCamel(name)
}
