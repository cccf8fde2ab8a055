package style

import (
	"testing"

	"github.com/quillweb/quill/internal/cssparse"
	"github.com/quillweb/quill/internal/dom"
)

func buildLink(t *testing.T, authorCSS string) (*dom.Document, dom.NodeID, *StyleContext) {
	t.Helper()
	doc := dom.NewDocument()
	a := doc.NewElement(doc.RootID, "a")
	ctx := NewStyleContext()
	ctx.AppendAuthorRules(cssparse.Parse(authorCSS, nil))
	return doc, a, ctx
}

// S7 from spec.md §8: UA says `a { color: blue }`, author says
// `a { color: red }` -- the author rule wins regardless of specificity
// or source order, because author always outranks user-agent.
func TestCascadeAuthorBeatsUserAgent(t *testing.T) {
	doc, a, ctx := buildLink(t, "a { color: red }")
	styles := Resolve(doc, ctx, a)
	if got := GetProperty(styles, cssparse.PropertyColor); got != "red" {
		t.Fatalf("color = %q, want %q", got, "red")
	}
}

// Two author rules of equal specificity: the one declared later wins.
func TestCascadeLaterAuthorRuleWinsAtEqualSpecificity(t *testing.T) {
	doc, a, ctx := buildLink(t, "a { color: red } a { color: green }")
	styles := Resolve(doc, ctx, a)
	// Last author declaration for the same specificity wins (source
	// order is still the final tiebreak within one origin).
	if got := GetProperty(styles, cssparse.PropertyColor); got != "green" {
		t.Fatalf("color = %q, want %q", got, "green")
	}
}

func TestSpecificityBreaksTieWithinOrigin(t *testing.T) {
	doc := dom.NewDocument()
	el := doc.NewElement(doc.RootID, "p")
	el2 := doc.Node(el)
	el2.Attributes = append(el2.Attributes, dom.Attribute{Name: "id", Value: "x"})
	ctx := NewStyleContext()
	ctx.AppendAuthorRules(cssparse.Parse("p { color: red } #x { color: green }", nil))
	styles := Resolve(doc, ctx, el)
	if got := GetProperty(styles, cssparse.PropertyColor); got != "green" {
		t.Fatalf("color = %q, want %q (id beats type)", got, "green")
	}
}

func TestInheritanceIsPerProperty(t *testing.T) {
	doc := dom.NewDocument()
	parent := doc.NewElement(doc.RootID, "div")
	child := doc.NewElement(parent, "span")
	ctx := NewStyleContext()
	ctx.AppendAuthorRules(cssparse.Parse("div { color: green; background-color: red }", nil))

	childStyles := Resolve(doc, ctx, child)
	if got := GetProperty(childStyles, cssparse.PropertyColor); got != "green" {
		t.Fatalf("color should inherit, got %q", got)
	}
	if got := GetProperty(childStyles, cssparse.PropertyBackgroundColor); got != "transparent" {
		t.Fatalf("background-color should not inherit, got %q", got)
	}
}

func TestUnparseableColorFallsBackToBlack(t *testing.T) {
	doc, a, ctx := buildLink(t, "a { color: chartreuse }")
	styles := Resolve(doc, ctx, a)
	c := GetColorStyleValue(styles, cssparse.PropertyColor, nil)
	if c != namedColors["black"] {
		t.Fatalf("expected fallback to black, got %+v", c)
	}
}

func TestDescendantAndChildCombinators(t *testing.T) {
	doc := dom.NewDocument()
	div := doc.NewElement(doc.RootID, "div")
	span := doc.NewElement(div, "span")
	ctx := NewStyleContext()
	ctx.AppendAuthorRules(cssparse.Parse("div span { color: red } div > p { color: green }", nil))
	styles := Resolve(doc, ctx, span)
	if got := GetProperty(styles, cssparse.PropertyColor); got != "red" {
		t.Fatalf("descendant selector should match span, got %q", got)
	}
}
