// Package htmlparse consumes internal/htmltoken's token stream and
// builds the arena-based DOM tree of internal/dom, per spec.md §4.3.
// There is no teacher source for a from-scratch DOM-building parser
// (withastro-compiler's internal/token.go only tokenizes; Astro's own
// parse tree is built by goquery/x/net/html downstream of it), so this
// package follows the teacher's general recursive-descent-over-a-
// token-stream shape, informed by the well-known structure of
// golang.org/x/net/html's parse.go (the library the teacher itself
// forked its tokenizer from): an explicit open-element stack with
// implicit-close recovery on mismatch.
package htmlparse

import (
	"strings"
	"unicode/utf8"

	"github.com/quillweb/quill/internal/cssparse"
	"github.com/quillweb/quill/internal/diag"
	"github.com/quillweb/quill/internal/dom"
	"github.com/quillweb/quill/internal/htmltoken"
	"github.com/quillweb/quill/internal/loc"
	"github.com/quillweb/quill/internal/style"
)

// entities is the translation table spec.md §4.3 names explicitly.
// Unknown entities are written back as literal "&name;" text.
var entities = map[string]string{
	"amp":  "&",
	"apos": "'",
	"gt":   ">",
	"lt":   "<",
	"quot": "\"",
	"nbsp": " ",
}

// Result bundles the two outputs spec.md §4.3 names: "a Document
// containing the synthetic document node, a flat map of every node by
// id, and the StyleContext".
type Result struct {
	Doc   *dom.Document
	Style *style.StyleContext
}

type parser struct {
	doc *dom.Document
	ctx *style.StyleContext
	h   *diag.Handler

	stack []dom.NodeID

	textBuf strings.Builder
	nbsp    map[int]bool

	openID   dom.NodeID
	openName string
}

// Parse lexes and parses an HTML byte stream into a DOM tree and its
// accumulated stylesheet (spec.md §4.3).
func Parse(src string, h *diag.Handler) Result {
	p := &parser{
		doc:  dom.NewDocument(),
		ctx:  style.NewStyleContext(),
		h:    h,
		nbsp: map[int]bool{},
	}
	p.stack = []dom.NodeID{p.doc.RootID}

	tz := htmltoken.New(src, h)
	for {
		tok, ok := tz.Next()
		if !ok {
			break
		}
		p.step(tok)
	}
	p.flushText()
	return Result{Doc: p.doc, Style: p.ctx}
}

func (p *parser) top() dom.NodeID {
	return p.stack[len(p.stack)-1]
}

func (p *parser) warn(code loc.Code, at loc.Pos, msg string) {
	if p.h != nil {
		p.h.Warn(code, at, msg)
	}
}

func (p *parser) step(tok htmltoken.Token) {
	switch tok.Type {
	case htmltoken.TextToken, htmltoken.WhitespaceToken:
		p.textBuf.WriteString(tok.Value)

	case htmltoken.EntityToken:
		decoded, isNbsp := decodeEntity(tok.Name)
		idx := utf8.RuneCountInString(p.textBuf.String())
		p.textBuf.WriteString(decoded)
		if isNbsp {
			p.nbsp[idx] = true
		}

	case htmltoken.CommentToken, htmltoken.DoctypeToken:
		// Not a DOM Node variant in spec.md §3; flush pending text so
		// the comment/doctype doesn't get absorbed into it, then drop
		// its content.
		p.flushText()

	case htmltoken.OpenTagToken:
		p.flushText()
		parent := p.top()
		p.openID = p.doc.NewElement(parent, tok.Name)
		p.openName = tok.Name

	case htmltoken.AttributeToken:
		n := p.doc.Node(p.openID)
		if n != nil {
			n.Attributes = append(n.Attributes, dom.Attribute{Name: tok.Name, Value: tok.Value})
		}

	case htmltoken.OpenTagEndToken:
		if !dom.VoidElements[p.openName] {
			p.stack = append(p.stack, p.openID)
		}

	case htmltoken.CloseTagToken:
		p.flushText()
		p.closeTag(tok)

	case htmltoken.StyleToken:
		p.flushText()
		rules := cssparse.Parse(tok.Value, p.h)
		p.ctx.AppendAuthorRules(rules)
		p.doc.NewText(p.top(), tok.Value, nil)

	case htmltoken.ScriptToken:
		p.flushText()
		p.doc.NewText(p.top(), tok.Value, nil)
	}
}

func (p *parser) closeTag(tok htmltoken.Token) {
	if dom.VoidElements[tok.Name] {
		// Ignore stray close tags for void elements, including the
		// synthetic ones the lexer emits for "<br/>" (spec.md §4.3
		// rule 1).
		return
	}
	matchIdx := -1
	for i := len(p.stack) - 1; i >= 1; i-- {
		if n := p.doc.Node(p.stack[i]); n != nil && n.Name == tok.Name {
			matchIdx = i
			break
		}
	}
	if matchIdx == -1 {
		p.warn(loc.WarnStrayCloseTag, tok.Loc, "stray close tag </"+tok.Name+">")
		return
	}
	if matchIdx != len(p.stack)-1 {
		p.warn(loc.WarnMismatchedCloseTag, tok.Loc, "mismatched close tag </"+tok.Name+">, implicitly closing open elements")
	}
	p.stack = p.stack[:matchIdx]
}

func (p *parser) flushText() {
	if p.textBuf.Len() == 0 {
		return
	}
	p.doc.NewText(p.top(), p.textBuf.String(), p.nbsp)
	p.textBuf.Reset()
	p.nbsp = map[int]bool{}
}

func decodeEntity(name string) (decoded string, isNbsp bool) {
	if v, ok := entities[name]; ok {
		return v, name == "nbsp"
	}
	return "&" + name + ";", false
}
