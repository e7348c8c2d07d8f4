package diag

import "fmt"

// Code is a compact, stable identifier for a diagnostic kind.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical.
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedBlockComment Code = 1002
	LexTokenTooLong             Code = 1003

	// Syntax.
	SynInfo                Code = 2000
	SynUnexpectedToken     Code = 2001
	SynUnclosedParen       Code = 2002
	SynUnclosedBrace       Code = 2003
	SynExpectIdentifier    Code = 2004
	SynExpectColon         Code = 2005
	SynExpectExpression    Code = 2006
	SynExpectEquals        Code = 2007
	SynExpectSemicolon     Code = 2008
	SynExpectArrow         Code = 2009
	SynExpectDoubleColon   Code = 2010
	SynExpectConstructor   Code = 2011
	SynUnexpectedEndOfFile Code = 2012
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexTokenTooLong:             "Token too long",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynUnclosedBrace:            "Unclosed brace",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectColon:              "Expected ':'",
	SynExpectExpression:         "Expected expression",
	SynExpectEquals:             "Expected '='",
	SynExpectSemicolon:          "Expected ';'",
	SynExpectArrow:              "Expected '->'",
	SynExpectDoubleColon:        "Expected '::'",
	SynExpectConstructor:        "Expected constructor declaration",
	SynUnexpectedEndOfFile:      "Unexpected end of file",
}

// ID returns the stable string form of the code, e.g. "LEX1001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	}
	return "E0000"
}

// Title returns the human-readable description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
