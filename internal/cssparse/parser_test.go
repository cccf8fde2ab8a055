package cssparse

import (
	"testing"

	"github.com/quillweb/quill/internal/diag"
)

func TestSimpleRuleset(t *testing.T) {
	rules := Parse("a { color: red; }", diag.New())
	if len(rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(rules))
	}
	r := rules[0]
	if len(r.Selectors) != 1 || len(r.Selectors[0]) != 1 {
		t.Fatalf("unexpected selectors: %+v", r.Selectors)
	}
	if r.Selectors[0][0].Kind != KindName || r.Selectors[0][0].Ident != "a" {
		t.Fatalf("unexpected selector: %+v", r.Selectors[0][0])
	}
	if len(r.Declarations) != 1 || r.Declarations[0].Property != PropertyColor || r.Declarations[0].RawValue != "red" {
		t.Fatalf("unexpected declarations: %+v", r.Declarations)
	}
}

func TestCombinatorsAndSpecificity(t *testing.T) {
	rules := Parse("div > p.intro + span#x { display: none }", diag.New())
	if len(rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(rules))
	}
	sel := rules[0].Selectors[0]
	// div, p (>), .intro (compound, no combinator), span (+), #x (compound).
	if len(sel) != 5 {
		t.Fatalf("expected 5 simple selectors, got %d: %+v", len(sel), sel)
	}
	if sel[0].Combinator != NoCombinator || sel[0].Kind != KindName || sel[0].Ident != "div" {
		t.Fatalf("unexpected 1st selector: %+v", sel[0])
	}
	if sel[1].Combinator != Child || sel[1].Kind != KindName || sel[1].Ident != "p" {
		t.Fatalf("unexpected 2nd selector: %+v", sel[1])
	}
	if sel[2].Combinator != NoCombinator || sel[2].Kind != KindClass || sel[2].Ident != "intro" {
		t.Fatalf("unexpected 3rd selector: %+v", sel[2])
	}
	if sel[3].Combinator != NextSibling || sel[3].Kind != KindName || sel[3].Ident != "span" {
		t.Fatalf("unexpected 4th selector: %+v", sel[3])
	}
	if sel[4].Combinator != NoCombinator || sel[4].Kind != KindID || sel[4].Ident != "x" {
		t.Fatalf("unexpected 5th selector: %+v", sel[4])
	}

	spec := sel.Specificity()
	if spec.Type != 3 || spec.ID != 1 || spec.Class != 1 {
		t.Fatalf("unexpected specificity: %+v", spec)
	}
}

func TestMultipleSelectorsCommaSeparated(t *testing.T) {
	rules := Parse("h1, h2 { font-weight: bold }", diag.New())
	if len(rules) != 1 || len(rules[0].Selectors) != 2 {
		t.Fatalf("unexpected parse: %+v", rules)
	}
}

func TestUnknownPropertyWarnsAndSkips(t *testing.T) {
	h := diag.New()
	rules := Parse("p { bogus-prop: 1; color: black }", h)
	if len(rules[0].Declarations) != 1 || rules[0].Declarations[0].Property != PropertyColor {
		t.Fatalf("unexpected declarations: %+v", rules[0].Declarations)
	}
	if !h.HasWarnings() {
		t.Fatalf("expected a warning for the unknown property")
	}
}

// spec.md §9: trailing ';' before '}' is accepted, and so is a missing
// terminal ';' before '}'.
func TestTrailingAndMissingSemicolon(t *testing.T) {
	h := diag.New()
	rules := Parse("p { color: red; } a { color: blue }", h)
	if len(rules) != 2 {
		t.Fatalf("got %d rules, want 2: %+v", len(rules), rules)
	}
	if rules[1].Declarations[0].RawValue != "blue" {
		t.Fatalf("unexpected trailing declaration: %+v", rules[1].Declarations)
	}
	if h.HasWarnings() {
		t.Fatalf("unexpected warnings: %+v", h.Diagnostics())
	}
}

// spec.md §9: "{ p: v" with no closing '}' at all is an error.
func TestMissingClosingBraceWarns(t *testing.T) {
	h := diag.New()
	Parse("p { color: red", h)
	if !h.HasWarnings() {
		t.Fatalf("expected a warning for an unterminated declaration block")
	}
}

func TestAtRuleIsSkipped(t *testing.T) {
	rules := Parse("@media print { p { color: red } } a { color: blue }", diag.New())
	if len(rules) != 1 || rules[0].Selectors[0][0].Ident != "a" {
		t.Fatalf("expected the at-rule's contents to be skipped entirely: %+v", rules)
	}
}
