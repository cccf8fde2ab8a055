// Package htmltoken implements the HTML lexer from spec.md §4.2: a
// streaming tokenizer with context-sensitive states for the raw-text
// elements <script> and <style>. It is modeled on the teacher's
// golang.org/x/net/html fork (internal/token.go in the withastro
// compiler) -- a hand-rolled state machine over a peekable rune
// iterator that tracks line/column -- generalized to this module's
// token taxonomy instead of Astro's.
package htmltoken

import "github.com/quillweb/quill/internal/loc"

// TokenType identifies which variant of spec.md's "HTML Token" data
// model a Token represents.
type TokenType int

const (
	ErrorToken TokenType = iota
	OpenTagToken
	OpenTagEndToken
	CloseTagToken
	AttributeToken
	TextToken
	WhitespaceToken
	CommentToken
	DoctypeToken
	EntityToken
	StyleToken
	ScriptToken
)

func (t TokenType) String() string {
	switch t {
	case OpenTagToken:
		return "OpenTag"
	case OpenTagEndToken:
		return "OpenTagEnd"
	case CloseTagToken:
		return "CloseTag"
	case AttributeToken:
		return "Attribute"
	case TextToken:
		return "Text"
	case WhitespaceToken:
		return "Whitespace"
	case CommentToken:
		return "Comment"
	case DoctypeToken:
		return "Doctype"
	case EntityToken:
		return "Entity"
	case StyleToken:
		return "Style"
	case ScriptToken:
		return "Script"
	default:
		return "Error"
	}
}

// Token is a single lexical item, tagged with the source location of
// its first character (spec.md's "Data Model: HTML Token").
type Token struct {
	Type TokenType
	Loc  loc.Pos

	// Name holds the tag name for OpenTag/CloseTag, the attribute name
	// for Attribute, and the entity name for Entity (no surrounding
	// "&"/";").
	Name string

	// Value holds the attribute value for Attribute, and the literal
	// text payload for Text, Whitespace, Comment, Doctype, Style, and
	// Script.
	Value string
}
