package htmltoken

import (
	"strings"

	"github.com/quillweb/quill/internal/diag"
	"github.com/quillweb/quill/internal/loc"
)

// Tokenizer is a streaming HTML lexer over a peekable rune sequence
// that tracks line/column (spec.md §4.2). Next returns one token per
// call; a self-closing tag internally queues two tokens (the open-tag
// end and a synthetic close tag) from one underlying scan, which is
// why a small pending queue exists instead of a 1:1 call/token ratio.
type Tokenizer struct {
	src  []rune
	pos  int
	line int
	col  int

	h *diag.Handler

	pending []Token

	inAttrs        bool
	currentTagName string
	rawTextTag     string // "", "style", or "script": set after an OpenTagEnd for a raw-text element
}

// New returns a Tokenizer over src. h collects recoverable diagnostics;
// malformed input is never fatal (spec.md §7).
func New(src string, h *diag.Handler) *Tokenizer {
	return &Tokenizer{src: []rune(src), line: 1, col: 1, h: h}
}

func isHTMLWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

func (t *Tokenizer) eof() bool {
	return t.pos >= len(t.src)
}

func (t *Tokenizer) at(offset int) (rune, bool) {
	i := t.pos + offset
	if i < 0 || i >= len(t.src) {
		return 0, false
	}
	return t.src[i], true
}

func (t *Tokenizer) curPos() loc.Pos {
	return loc.Pos{Line: t.line, Column: t.col}
}

// advance consumes exactly one rune, updating line/column.
func (t *Tokenizer) advance() rune {
	r := t.src[t.pos]
	t.pos++
	if r == '\n' {
		t.line++
		t.col = 1
	} else {
		t.col++
	}
	return r
}

// hasPrefixFold reports whether the input at the current position
// starts with s, compared ASCII case-insensitively.
func (t *Tokenizer) hasPrefixFold(s string) bool {
	for i, want := range s {
		r, ok := t.at(i)
		if !ok || foldRune(r) != foldRune(want) {
			return false
		}
	}
	return true
}

func (t *Tokenizer) hasPrefix(s string) bool {
	for i, want := range s {
		r, ok := t.at(i)
		if !ok || r != want {
			return false
		}
	}
	return true
}

func foldRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}

func (t *Tokenizer) skipN(n int) {
	for i := 0; i < n && !t.eof(); i++ {
		t.advance()
	}
}

func (t *Tokenizer) skipWhitespace() {
	for !t.eof() {
		r, _ := t.at(0)
		if !isHTMLWhitespace(r) {
			return
		}
		t.advance()
	}
}

// Next returns the next token in the stream, and false once the input
// is exhausted.
func (t *Tokenizer) Next() (Token, bool) {
	if len(t.pending) > 0 {
		tok := t.pending[0]
		t.pending = t.pending[1:]
		return tok, true
	}
	for len(t.pending) == 0 {
		if t.eof() {
			return Token{}, false
		}
		t.scan()
	}
	tok := t.pending[0]
	t.pending = t.pending[1:]
	return tok, true
}

func (t *Tokenizer) emit(tok Token) {
	t.pending = append(t.pending, tok)
}

// scan performs one unit of lexing, appending zero or more tokens to
// t.pending. Appending zero tokens (e.g. a skipped malformed "<!" run)
// is legal; the Next loop keeps calling scan until something is
// queued or EOF is reached.
func (t *Tokenizer) scan() {
	if t.rawTextTag != "" {
		t.scanRawText()
		return
	}
	if t.inAttrs {
		t.scanAttrOrTagEnd()
		return
	}
	r, _ := t.at(0)
	switch {
	case r == '<':
		t.scanTagLike()
	case r == '&':
		t.scanEntity()
	case isHTMLWhitespace(r):
		t.scanWhitespace()
	default:
		t.scanText()
	}
}

func (t *Tokenizer) scanWhitespace() {
	start := t.curPos()
	var b strings.Builder
	for !t.eof() {
		r, _ := t.at(0)
		if !isHTMLWhitespace(r) {
			break
		}
		b.WriteRune(t.advance())
	}
	t.emit(Token{Type: WhitespaceToken, Loc: start, Value: b.String()})
}

func (t *Tokenizer) scanText() {
	start := t.curPos()
	var b strings.Builder
	for !t.eof() {
		r, _ := t.at(0)
		if r == '<' || r == '&' || isHTMLWhitespace(r) {
			break
		}
		b.WriteRune(t.advance())
	}
	t.emit(Token{Type: TextToken, Loc: start, Value: b.String()})
}

// readName reads the longest run of characters that are neither
// whitespace nor any of "=<>", stopping also before a "/>" so that
// "<br/>" names "br" (spec.md §4.2: shared by tag names and attribute
// names).
func (t *Tokenizer) readName() string {
	var b strings.Builder
	for !t.eof() {
		r, _ := t.at(0)
		if isHTMLWhitespace(r) || r == '=' || r == '<' || r == '>' {
			break
		}
		if next, ok := t.at(1); r == '/' && ok && next == '>' {
			break
		}
		b.WriteRune(t.advance())
	}
	return b.String()
}

func (t *Tokenizer) scanEntity() {
	start := t.curPos()
	t.advance() // consume '&'
	var b strings.Builder
	for !t.eof() {
		r, _ := t.at(0)
		if r == ';' {
			t.advance()
			t.emit(Token{Type: EntityToken, Loc: start, Name: b.String()})
			return
		}
		if r == '<' || r == '&' || isHTMLWhitespace(r) {
			break
		}
		b.WriteRune(t.advance())
	}
	t.warn(loc.WarnUnterminatedEntity, start, "unterminated entity reference")
	t.emit(Token{Type: EntityToken, Loc: start, Name: b.String()})
}

func (t *Tokenizer) warn(code loc.Code, at loc.Pos, msg string) {
	if t.h != nil {
		t.h.Warn(code, at, msg)
	}
}

func (t *Tokenizer) scanTagLike() {
	start := t.curPos()
	t.advance() // consume '<'

	if t.hasPrefix("!--") {
		t.scanComment(start)
		return
	}
	if t.hasPrefixFold("!doctype") {
		t.scanDoctype(start)
		return
	}
	if !t.eof() {
		if r, _ := t.at(0); r == '!' {
			t.scanBogusBang(start)
			return
		}
	}
	if !t.eof() {
		if r, _ := t.at(0); r == '/' {
			t.advance()
			t.scanCloseTag(start)
			return
		}
	}
	t.scanOpenTagStart(start)
}

func (t *Tokenizer) scanComment(start loc.Pos) {
	t.skipN(3) // "!--"
	var b strings.Builder
	for !t.eof() {
		if t.hasPrefix("-->") {
			t.skipN(3)
			t.emit(Token{Type: CommentToken, Loc: start, Value: b.String()})
			return
		}
		b.WriteRune(t.advance())
	}
	t.warn(loc.WarnUnterminatedComment, start, "unterminated comment")
	t.emit(Token{Type: CommentToken, Loc: start, Value: b.String()})
}

func (t *Tokenizer) scanDoctype(start loc.Pos) {
	t.skipN(8) // "!doctype"
	var b strings.Builder
	for !t.eof() {
		r, _ := t.at(0)
		if r == '>' {
			t.advance()
			t.emit(Token{Type: DoctypeToken, Loc: start, Value: b.String()})
			return
		}
		b.WriteRune(t.advance())
	}
	t.warn(loc.WarnUnclosedTag, start, "unterminated doctype")
	t.emit(Token{Type: DoctypeToken, Loc: start, Value: b.String()})
}

// scanBogusBang handles "<!" not followed by "--" or "doctype": logged
// and skipped to the next ">" without emitting a token, per spec.md
// §4.2 ("unexpected character sequences after <! log a warning and
// continue").
func (t *Tokenizer) scanBogusBang(start loc.Pos) {
	t.warn(loc.WarnUnexpectedBangSequence, start, "unexpected character sequence after <!")
	for !t.eof() {
		r, _ := t.at(0)
		if r == '>' {
			t.advance()
			return
		}
		t.advance()
	}
}

func (t *Tokenizer) scanCloseTag(start loc.Pos) {
	t.skipWhitespace()
	name := strings.ToLower(t.readName())
	for !t.eof() {
		r, _ := t.at(0)
		if r == '>' {
			t.advance()
			t.emit(Token{Type: CloseTagToken, Loc: start, Name: name})
			return
		}
		t.advance()
	}
	t.warn(loc.WarnUnclosedTag, start, "missing '>' after close tag name")
	t.emit(Token{Type: CloseTagToken, Loc: start, Name: name})
}

func (t *Tokenizer) scanOpenTagStart(start loc.Pos) {
	t.skipWhitespace()
	name := strings.ToLower(t.readName())
	t.currentTagName = name
	t.inAttrs = true
	t.emit(Token{Type: OpenTagToken, Loc: start, Name: name})
}

func (t *Tokenizer) scanAttrOrTagEnd() {
	start := t.curPos()
	t.skipWhitespace()
	if t.eof() {
		t.warn(loc.WarnUnclosedTag, start, "missing '>' in tag")
		t.inAttrs = false
		t.emit(Token{Type: OpenTagEndToken, Loc: start})
		return
	}
	r, _ := t.at(0)
	if r == '>' {
		t.advance()
		t.inAttrs = false
		t.emit(Token{Type: OpenTagEndToken, Loc: start})
		t.enterRawTextIfNeeded()
		return
	}
	if r == '/' {
		if next, ok := t.at(1); ok && next == '>' {
			t.skipN(2)
			t.inAttrs = false
			t.emit(Token{Type: OpenTagEndToken, Loc: start})
			t.emit(Token{Type: CloseTagToken, Loc: start, Name: t.currentTagName})
			return
		}
	}
	t.scanAttribute(start)
}

func (t *Tokenizer) enterRawTextIfNeeded() {
	switch t.currentTagName {
	case "style", "script":
		t.rawTextTag = t.currentTagName
	}
}

func (t *Tokenizer) scanAttribute(start loc.Pos) {
	name := t.readName()
	t.skipWhitespace()
	if !t.eof() {
		if r, _ := t.at(0); r == '=' {
			t.advance()
			t.skipWhitespace()
			value := t.readAttrValue()
			t.emit(Token{Type: AttributeToken, Loc: start, Name: name, Value: value})
			return
		}
	}
	// "=" is optional: value defaults to the name itself (spec.md §4.2).
	t.emit(Token{Type: AttributeToken, Loc: start, Name: name, Value: name})
}

func (t *Tokenizer) readAttrValue() string {
	if t.eof() {
		return ""
	}
	r, _ := t.at(0)
	if r == '"' || r == '\'' {
		quote := r
		t.advance()
		var b strings.Builder
		for !t.eof() {
			c, _ := t.at(0)
			if c == quote {
				t.advance()
				break
			}
			b.WriteRune(t.advance())
		}
		return b.String()
	}
	return t.readName()
}

// scanRawText consumes the verbatim body of a <style>/<script> element
// up to (not including) its matching close tag, per spec.md §4.2: the
// HTML lexer never interprets raw-text element contents as HTML.
func (t *Tokenizer) scanRawText() {
	tag := t.rawTextTag
	closer := "</" + tag
	start := t.curPos()
	var b strings.Builder
	inString := false
	var stringQuote rune

	for !t.eof() {
		if !inString && t.hasPrefixFold(closer) {
			t.rawTextTag = ""
			if tag == "script" {
				t.emit(Token{Type: ScriptToken, Loc: start, Value: b.String()})
			} else {
				t.emit(Token{Type: StyleToken, Loc: start, Value: b.String()})
			}
			return
		}
		c, _ := t.at(0)
		if tag == "script" && (c == '"' || c == '\'') {
			if inString && c == stringQuote {
				inString = false
			} else if !inString {
				inString = true
				stringQuote = c
			}
		}
		b.WriteRune(t.advance())
	}
	t.rawTextTag = ""
	if tag == "script" {
		t.emit(Token{Type: ScriptToken, Loc: start, Value: b.String()})
	} else {
		t.emit(Token{Type: StyleToken, Loc: start, Value: b.String()})
	}
}
