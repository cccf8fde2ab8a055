// Package csstoken implements the CSS lexer of spec.md §4.4: an exact,
// fixed token taxonomy (Identifier, Number, String, AtKeyword, Hash,
// Colon, Semicolon, Comma, Dot, OpenBrace, CloseBrace, Greater, Plus,
// Tilde, Whitespace) tracked with line/column, consumed directly by
// internal/cssparse. This taxonomy is narrower than a conforming CSS
// Syntax Module grammar tokenizer (no url(), no unicode-range, no
// function tokens): see DESIGN.md for why tdewolff/parse/v2 was
// dropped in favor of this hand-rolled lexer.
package csstoken

import "github.com/quillweb/quill/internal/loc"

type TokenType int

const (
	ErrorToken TokenType = iota
	Identifier
	Number
	String
	AtKeyword
	Hash
	Colon
	Semicolon
	Comma
	Dot
	OpenBrace
	CloseBrace
	Greater
	Plus
	Tilde
	Whitespace
)

func (t TokenType) String() string {
	switch t {
	case Identifier:
		return "Identifier"
	case Number:
		return "Number"
	case String:
		return "String"
	case AtKeyword:
		return "AtKeyword"
	case Hash:
		return "Hash"
	case Colon:
		return "Colon"
	case Semicolon:
		return "Semicolon"
	case Comma:
		return "Comma"
	case Dot:
		return "Dot"
	case OpenBrace:
		return "OpenBrace"
	case CloseBrace:
		return "CloseBrace"
	case Greater:
		return "Greater"
	case Plus:
		return "Plus"
	case Tilde:
		return "Tilde"
	case Whitespace:
		return "Whitespace"
	default:
		return "Error"
	}
}

// Token is a single CSS lexical item. Value holds the literal text for
// Identifier/Number/String/AtKeyword/Hash/Whitespace; it is empty for
// the single-character punctuation tokens.
type Token struct {
	Type  TokenType
	Loc   loc.Pos
	Value string
}
