package token

import "testing"

func TestLookupKeywordCaseSensitive(t *testing.T) {
	if k, ok := LookupKeyword("fn"); !ok || k != KwFnLower {
		t.Errorf("expected 'fn' -> KwFnLower, got %v %v", k, ok)
	}
	if k, ok := LookupKeyword("Fn"); !ok || k != KwFnUpper {
		t.Errorf("expected 'Fn' -> KwFnUpper, got %v %v", k, ok)
	}
	if _, ok := LookupKeyword("FN"); ok {
		t.Error("expected 'FN' to not be a keyword")
	}
	if _, ok := LookupKeyword("x"); ok {
		t.Error("expected 'x' to not be a keyword")
	}
}

func TestTokenIsKeyword(t *testing.T) {
	for _, k := range []Kind{KwFnLower, KwFnUpper, KwLet, KwReturn, KwType} {
		tok := Token{Kind: k}
		if !tok.IsKeyword() {
			t.Errorf("expected %v to be a keyword", k)
		}
	}
	if (Token{Kind: Ident}).IsKeyword() {
		t.Error("expected Ident to not be a keyword")
	}
}

func TestTokenIsPunctOrOp(t *testing.T) {
	for _, k := range []Kind{Colon, ColonColon, Semicolon, Comma, LParen, RParen, LBrace, RBrace, Equals, Asterisk, Question, Apostrophe, Arrow, At} {
		if !(Token{Kind: k}).IsPunctOrOp() {
			t.Errorf("expected %v to be punct/op", k)
		}
	}
	if (Token{Kind: Ident}).IsPunctOrOp() {
		t.Error("expected Ident to not be punct/op")
	}
}

func TestTokenIsIdent(t *testing.T) {
	if !(Token{Kind: Ident}).IsIdent() {
		t.Error("expected Ident token to report IsIdent")
	}
	if (Token{Kind: KwLet}).IsIdent() {
		t.Error("expected KwLet token to not report IsIdent")
	}
}

func TestKindStringCoversKnownKinds(t *testing.T) {
	for _, k := range []Kind{Invalid, EOF, Ident, KwFnLower, KwFnUpper, KwLet, KwReturn, KwType,
		Underscore, Colon, ColonColon, Semicolon, Comma, LParen, RParen, LBrace, RBrace,
		Equals, Asterisk, Question, Apostrophe, Arrow, At} {
		if k.String() == "<unknown>" {
			t.Errorf("kind %d has no String() case", k)
		}
	}
}
