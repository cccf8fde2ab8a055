package csstoken

import (
	"testing"

	"github.com/quillweb/quill/internal/diag"
)

func collect(t *testing.T, src string) []Token {
	t.Helper()
	l := New(src, diag.New())
	var toks []Token
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

func assertTypes(t *testing.T, toks []Token, want ...TokenType) {
	t.Helper()
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token %d: got %s, want %s (%+v)", i, toks[i].Type, w, toks[i])
		}
	}
}

func TestRulesetTokens(t *testing.T) {
	toks := collect(t, "a { color: red; }")
	assertTypes(t, toks,
		Identifier, Whitespace,
		OpenBrace, Whitespace,
		Identifier, Colon, Whitespace, Identifier, Semicolon, Whitespace,
		CloseBrace,
	)
}

func TestSelectorPunctuation(t *testing.T) {
	toks := collect(t, "#id.cls > p + span ~ b")
	assertTypes(t, toks,
		Hash, Dot, Identifier, Whitespace,
		Greater, Whitespace, Identifier, Whitespace,
		Plus, Whitespace, Identifier, Whitespace,
		Tilde, Whitespace, Identifier,
	)
	if toks[0].Value != "id" || toks[2].Value != "cls" {
		t.Fatalf("unexpected values: %+v", toks[:3])
	}
}

func TestNumberAndString(t *testing.T) {
	toks := collect(t, `content: "hi"; width: 18.5;`)
	assertTypes(t, toks,
		Identifier, Colon, Whitespace, String, Semicolon, Whitespace,
		Identifier, Colon, Whitespace, Number, Semicolon,
	)
	if toks[3].Value != "hi" {
		t.Fatalf("string value = %q", toks[3].Value)
	}
	if toks[9].Value != "18.5" {
		t.Fatalf("number value = %q", toks[9].Value)
	}
}

func TestAtRuleAndComment(t *testing.T) {
	toks := collect(t, "@media /* skip me */ print")
	assertTypes(t, toks, AtKeyword, Whitespace, Whitespace, Identifier)
	if toks[0].Value != "media" {
		t.Fatalf("at-keyword = %q", toks[0].Value)
	}
}
