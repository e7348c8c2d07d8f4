package token

import "freya/internal/source"

// TriviaKind classifies types of non-code elements.
type TriviaKind uint8

const (
	// TriviaSpace represents horizontal whitespace.
	TriviaSpace TriviaKind = iota
	// TriviaNewline represents a newline character.
	TriviaNewline
	// TriviaLineComment represents a '//' line comment.
	TriviaLineComment
	// TriviaBlockComment represents a '/* ... */' block comment.
	TriviaBlockComment
)

// Trivia represents a non-code source element such as whitespace or a
// comment, attached to the following significant token's Leading slice.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
