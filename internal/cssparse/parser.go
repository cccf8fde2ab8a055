package cssparse

import (
	"strings"

	"github.com/quillweb/quill/internal/csstoken"
	"github.com/quillweb/quill/internal/diag"
	"github.com/quillweb/quill/internal/loc"
)

type parser struct {
	toks []csstoken.Token
	pos  int
	h    *diag.Handler
}

// Parse lexes and parses src into a sequence of rulesets, per spec.md
// §4.4. At-rules are recognized and skipped (scanned to ';' or a
// balanced '{...}' block); spec.md's Non-goals exclude the box model
// and animation features at-rules like @media/@keyframes would
// configure, so there is nothing yet to do with their contents.
func Parse(src string, h *diag.Handler) []Rule {
	lex := csstoken.New(src, h)
	var toks []csstoken.Token
	for {
		tok, ok := lex.Next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	p := &parser{toks: toks, h: h}
	var rules []Rule
	for !p.eof() {
		p.skipWhitespace()
		if p.eof() {
			break
		}
		if p.cur().Type == csstoken.AtKeyword {
			p.skipAtRule()
			continue
		}
		if rule, ok := p.parseRuleset(); ok {
			rules = append(rules, rule)
		}
	}
	return rules
}

func (p *parser) eof() bool { return p.pos >= len(p.toks) }

func (p *parser) cur() csstoken.Token { return p.toks[p.pos] }

func (p *parser) peekType(offset int) csstoken.TokenType {
	i := p.pos + offset
	if i < 0 || i >= len(p.toks) {
		return csstoken.ErrorToken
	}
	return p.toks[i].Type
}

func (p *parser) advance() csstoken.Token {
	t := p.toks[p.pos]
	p.pos++
	return t
}

func (p *parser) skipWhitespace() bool {
	skipped := false
	for !p.eof() && p.cur().Type == csstoken.Whitespace {
		p.advance()
		skipped = true
	}
	return skipped
}

func (p *parser) warn(code loc.Code, at loc.Pos, msg string) {
	if p.h != nil {
		p.h.Warn(code, at, msg)
	}
}

func (p *parser) skipAtRule() {
	p.advance() // AtKeyword
	depth := 0
	for !p.eof() {
		t := p.advance()
		switch t.Type {
		case csstoken.Semicolon:
			if depth == 0 {
				return
			}
		case csstoken.OpenBrace:
			depth++
		case csstoken.CloseBrace:
			depth--
			if depth <= 0 {
				return
			}
		}
	}
	p.warn(loc.WarnUnterminatedCSSBlock, loc.Pos{}, "unterminated at-rule")
}

func (p *parser) parseRuleset() (Rule, bool) {
	selectors := p.parseSelectorList()
	if p.eof() || p.cur().Type != csstoken.OpenBrace {
		p.warn(loc.WarnUnparseableCSSValue, p.posOrZero(), "expected '{' after selector list")
		p.skipToRecover()
		return Rule{}, false
	}
	p.advance() // '{'
	decls := p.parseDeclarationBlock()
	return Rule{Selectors: selectors, Declarations: decls}, true
}

func (p *parser) posOrZero() loc.Pos {
	if p.eof() {
		return loc.Pos{}
	}
	return p.cur().Loc
}

// skipToRecover discards tokens up to and including the next '}' (or
// EOF), used when a ruleset's selector list never finds its block.
func (p *parser) skipToRecover() {
	for !p.eof() {
		t := p.advance()
		if t.Type == csstoken.CloseBrace {
			return
		}
	}
}

func (p *parser) parseSelectorList() []Selector {
	var out []Selector
	for {
		sel := p.parseSelector()
		if len(sel) > 0 {
			out = append(out, sel)
		}
		p.skipWhitespace()
		if p.eof() || p.cur().Type != csstoken.Comma {
			break
		}
		p.advance() // ','
		p.skipWhitespace()
	}
	return out
}

func (p *parser) parseSelector() Selector {
	var sel Selector
	first := true
	for {
		sawSpace := p.skipWhitespace()
		if p.eof() {
			break
		}
		switch p.cur().Type {
		case csstoken.Comma, csstoken.OpenBrace:
			return sel
		}

		combinator := NoCombinator
		if !first {
			switch p.cur().Type {
			case csstoken.Greater:
				combinator = Child
				p.advance()
				p.skipWhitespace()
			case csstoken.Plus:
				combinator = NextSibling
				p.advance()
				p.skipWhitespace()
			case csstoken.Tilde:
				combinator = GeneralSibling
				p.advance()
				p.skipWhitespace()
			default:
				if sawSpace {
					combinator = Descendant
				}
			}
		}
		if p.eof() || p.cur().Type == csstoken.Comma || p.cur().Type == csstoken.OpenBrace {
			break
		}

		kind, ident, ok := p.parseSimpleSelectorCore()
		if !ok {
			break
		}
		pseudo := p.parsePseudoclasses()
		sel = append(sel, SimpleSelector{Combinator: combinator, Kind: kind, Ident: ident, Pseudoclasses: pseudo})
		first = false
	}
	return sel
}

func (p *parser) parseSimpleSelectorCore() (SimpleSelectorKind, string, bool) {
	t := p.cur()
	switch t.Type {
	case csstoken.Hash:
		p.advance()
		return KindID, t.Value, true
	case csstoken.Dot:
		p.advance()
		if !p.eof() && p.cur().Type == csstoken.Identifier {
			name := p.advance().Value
			return KindClass, name, true
		}
		return KindClass, "", true
	case csstoken.Identifier:
		if t.Value == "*" {
			p.advance()
			return KindUniversal, "*", true
		}
		if t.Value == "[" {
			return p.parseAttributeSelector()
		}
		p.advance()
		return KindName, strings.ToLower(t.Value), true
	}
	return 0, "", false
}

// parseAttributeSelector handles the bracketed form `[name]`; the
// lexer does not special-case '[' or ']' (outside spec.md §4.4's
// taxonomy), so both arrive as single-rune Identifier tokens and are
// scanned here like any other raw text.
func (p *parser) parseAttributeSelector() (SimpleSelectorKind, string, bool) {
	p.advance() // '['
	var name strings.Builder
	for !p.eof() {
		t := p.cur()
		if t.Type == csstoken.Identifier && t.Value == "]" {
			p.advance()
			return KindAttribute, name.String(), true
		}
		name.WriteString(t.Value)
		p.advance()
	}
	return KindAttribute, name.String(), true
}

func (p *parser) parsePseudoclasses() []string {
	var out []string
	for !p.eof() && p.cur().Type == csstoken.Colon {
		p.advance()
		if !p.eof() && p.cur().Type == csstoken.Colon {
			// Pseudo-elements ("::") are reserved/not implemented
			// (spec.md §4.4); consume and drop the name.
			p.advance()
			if !p.eof() && p.cur().Type == csstoken.Identifier {
				at := p.cur().Loc
				p.advance()
				p.warn(loc.WarnUnimplementedCSSFeature, at, "pseudo-elements are not implemented")
			}
			continue
		}
		if !p.eof() && p.cur().Type == csstoken.Identifier {
			out = append(out, p.advance().Value)
		}
	}
	return out
}

func (p *parser) parseDeclarationBlock() []Declaration {
	var decls []Declaration
	for {
		p.skipWhitespace()
		for !p.eof() && p.cur().Type == csstoken.Semicolon {
			p.advance()
			p.skipWhitespace()
		}
		if p.eof() {
			p.warn(loc.WarnUnterminatedCSSBlock, loc.Pos{}, "unterminated declaration block")
			return decls
		}
		if p.cur().Type == csstoken.CloseBrace {
			p.advance()
			return decls
		}
		if p.cur().Type != csstoken.Identifier {
			// Unrecoverable token where a property name was expected;
			// skip it and keep trying the rest of the block.
			p.advance()
			continue
		}
		nameTok := p.advance()
		p.skipWhitespace()
		if p.eof() || p.cur().Type != csstoken.Colon {
			p.warn(loc.WarnUnparseableCSSValue, nameTok.Loc, "expected ':' after property name")
			p.skipDeclarationRemainder()
			continue
		}
		p.advance() // ':'
		p.skipWhitespace()
		value := p.captureValue()

		if !p.eof() && p.cur().Type == csstoken.Semicolon {
			p.advance()
		}

		prop, ok := LookupProperty(strings.ToLower(nameTok.Value))
		if !ok {
			p.warn(loc.WarnUnknownCSSProperty, nameTok.Loc, "unknown CSS property "+nameTok.Value+" (no Property"+GoName(nameTok.Value)+" constant)")
			continue
		}
		decls = append(decls, Declaration{Property: prop, RawValue: strings.TrimSpace(value)})
	}
}

// captureValue concatenates raw token text up to (not including) the
// next ';' or '}', matching spec.md §4.4's "value is captured as a raw
// string" and the trailing/missing-semicolon edge cases in §9.
func (p *parser) captureValue() string {
	var b strings.Builder
	for !p.eof() {
		t := p.cur()
		if t.Type == csstoken.Semicolon || t.Type == csstoken.CloseBrace {
			break
		}
		b.WriteString(tokenText(t))
		p.advance()
	}
	return b.String()
}

func (p *parser) skipDeclarationRemainder() {
	for !p.eof() {
		t := p.cur()
		if t.Type == csstoken.Semicolon {
			p.advance()
			return
		}
		if t.Type == csstoken.CloseBrace {
			return
		}
		p.advance()
	}
}

func tokenText(t csstoken.Token) string {
	switch t.Type {
	case csstoken.Whitespace:
		return t.Value
	case csstoken.String:
		return `"` + t.Value + `"`
	case csstoken.Hash:
		return "#" + t.Value
	case csstoken.AtKeyword:
		return "@" + t.Value
	case csstoken.Colon:
		return ":"
	case csstoken.Comma:
		return ","
	case csstoken.Dot:
		return "."
	case csstoken.Greater:
		return ">"
	case csstoken.Plus:
		return "+"
	case csstoken.Tilde:
		return "~"
	default:
		return t.Value
	}
}
