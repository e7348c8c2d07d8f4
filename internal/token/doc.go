// Package token defines the lexical token kinds and trivia produced by
// internal/lexer.
//
// Invariants:
//   - Token.Span matches Text exactly (Start..End).
//   - Keywords are case-sensitive; "fn" and "Fn" are distinct keywords.
//   - Comments and whitespace never appear in the significant token
//     stream: they are collected as leading Trivia on the token that
//     follows them.
package token
