// Package style implements the cascade/specificity resolver of
// spec.md §4.5: it gathers every matching rule from the user-agent and
// author stylesheets for a DOM element, orders them by origin then
// specificity then source order, and folds the winners into a
// per-element property map, then applies per-property inheritance
// up the parent chain.
package style

import (
	"github.com/quillweb/quill/internal/cssparse"
	"github.com/quillweb/quill/internal/diag"
)

// Origin distinguishes the StyleContext's two stylesheets; the UA
// sheet always loses to the author sheet regardless of specificity
// (spec.md §4.5's ordering key).
type Origin int

const (
	UserAgentOrigin Origin = iota
	AuthorOrigin
)

// Rule is one (selector, property, value) triplet -- spec.md §3's
// "StyleRule" -- expanded out of a cssparse.Rule's declaration block
// so the cascade can sort and apply individual property winners
// independently of which ruleset they came from.
type Rule struct {
	Selector cssparse.Selector
	Property cssparse.Property
	Value    string
	Origin   Origin
	Order    int
}

// StyleContext holds the two ordered stylesheets spec.md §3 describes.
// The UA sheet is a built-in constant; AuthorSheet accumulates as the
// HTML parser encounters embedded <style> elements.
type StyleContext struct {
	UserAgentSheet []Rule
	AuthorSheet    []Rule

	nextOrder int
}

// NewStyleContext returns a StyleContext seeded with the built-in
// user-agent stylesheet (spec.md §3: "h1..h6 font sizes, a -> blue +
// underline").
func NewStyleContext() *StyleContext {
	ctx := &StyleContext{}
	ctx.UserAgentSheet = flatten(cssparse.Parse(uaStylesheetSource, diag.New()), UserAgentOrigin, &ctx.nextOrder)
	return ctx
}

// AppendAuthorRules flattens parsed rulesets into the author sheet,
// preserving source (definition) order across every <style> element
// encountered so far -- spec.md §4.5's cascade tiebreak needs a single
// monotonic order counter across the whole document, not a per-sheet
// one.
func (ctx *StyleContext) AppendAuthorRules(rules []cssparse.Rule) {
	ctx.AuthorSheet = append(ctx.AuthorSheet, flatten(rules, AuthorOrigin, &ctx.nextOrder)...)
}

func flatten(rules []cssparse.Rule, origin Origin, order *int) []Rule {
	var out []Rule
	for _, r := range rules {
		for _, sel := range r.Selectors {
			for _, d := range r.Declarations {
				out = append(out, Rule{
					Selector: sel,
					Property: d.Property,
					Value:    d.RawValue,
					Origin:   origin,
					Order:    *order,
				})
				*order++
			}
		}
	}
	return out
}

// uaStylesheetSource is parsed through the same cssparse/csstoken
// pipeline as author stylesheets, rather than being constructed as Go
// literals, so the built-in sheet exercises (and stays consistent
// with) the rest of the CSS pipeline.
const uaStylesheetSource = `
h1 { font-size: 32; font-weight: bold; display: block }
h2 { font-size: 28; font-weight: bold; display: block }
h3 { font-size: 22; font-weight: bold; display: block }
h4 { font-size: 18; font-weight: bold; display: block }
h5 { font-size: 16; font-weight: bold; display: block }
h6 { font-size: 14; font-weight: bold; display: block }
p { display: block }
div { display: block }
ul { display: block }
li { display: block }
table { display: block }
tr { display: block }
td { display: block }
th { display: block }
a { color: blue; text-decoration: underline }
`
