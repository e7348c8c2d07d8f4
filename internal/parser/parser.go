// Package parser implements a recursive-descent parser producing a
// span-annotated internal/ast tree from a token stream. There is no error
// recovery: the first malformed construct reports a diagnostic and parsing
// stops.
package parser

import (
	"freya/internal/ast"
	"freya/internal/diag"
	"freya/internal/lexer"
	"freya/internal/source"
	"freya/internal/token"
)

// Parse drains lx to completion and parses the resulting token stream into
// a File. Diagnostics are reported through reporter; a non-nil error means
// parsing stopped after the first one.
func Parse(file *source.File, lx *lexer.Lexer, reporter diag.Reporter) (ast.File, error) {
	var toks []token.Token
	var eofSpan source.Span
	for {
		t := lx.Next()
		if t.Kind == token.EOF {
			eofSpan = t.Span
			break
		}
		toks = append(toks, t)
	}

	s := newSpool(file, toks, eofSpan, reporter)
	return parseFile(s)
}

// ParseExpr drains lx to completion and parses the resulting token stream
// as a single standalone expression, with no enclosing "let"/"type" item.
// This is the entry point cmd/freya's eval command uses for a bare
// expression file, evaluating an expression directly rather than a file
// of items.
func ParseExpr(file *source.File, lx *lexer.Lexer, reporter diag.Reporter) (ast.Expr, error) {
	var toks []token.Token
	var eofSpan source.Span
	for {
		t := lx.Next()
		if t.Kind == token.EOF {
			eofSpan = t.Span
			break
		}
		toks = append(toks, t)
	}

	s := newSpool(file, toks, eofSpan, reporter)
	expr, err := parseExprGeneral(s)
	if err != nil {
		return nil, err
	}
	if !s.isEnd() {
		return nil, s.errorf(diag.SynUnexpectedToken, "expected end of input after expression")
	}
	return expr, nil
}

func parseFile(s *spool) (ast.File, error) {
	var items []ast.Item
	for !s.isEnd() {
		item, err := parseItem(s)
		if err != nil {
			return ast.File{}, err
		}
		items = append(items, item)
	}
	return ast.File{
		Items: items,
		Span:  source.Span{File: s.eof.Span.File, Start: 0, End: s.eof.Span.End},
	}, nil
}

func parseItem(s *spool) (ast.Item, error) {
	switch s.peek().Kind {
	case token.KwLet:
		initial := s.peek().Span
		s.advance()

		binding, err := parseTypedBinding(s)
		if err != nil {
			return nil, err
		}

		if _, err := s.expect(token.Equals, diag.SynExpectEquals, "expected '=' after let binding"); err != nil {
			return nil, err
		}

		body, err := parseExprGeneral(s)
		if err != nil {
			return nil, err
		}

		final, err := s.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after let item")
		if err != nil {
			return nil, err
		}

		return ast.LetItem{Binding: binding, Body: body, Span: initial.Cover(final.Span)}, nil

	case token.KwType:
		initial := s.peek().Span
		s.advance()

		name, err := parseName(s)
		if err != nil {
			return nil, err
		}

		var paramsAndIndexes []ast.ParameterOrIndex
		if s.peek().Kind == token.LParen {
			s.advance()
		paramLoop:
			for {
				if s.peek().Kind == token.RParen {
					s.advance()
					break
				}
				pi, err := parseParameterOrIndex(s)
				if err != nil {
					return nil, err
				}
				paramsAndIndexes = append(paramsAndIndexes, pi)

				switch s.peek().Kind {
				case token.Comma:
					s.advance()
				case token.RParen:
					s.advance()
					break paramLoop
				default:
					return nil, s.errorf(diag.SynUnexpectedToken, "expected ',' or ')' in type parameter list")
				}
			}
		}

		var universe ast.Expr
		if s.peek().Kind == token.Colon {
			s.advance()
			universe, err = parseExprAtomic(s)
			if err != nil {
				return nil, err
			}
		}

		if _, err := s.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to open type body"); err != nil {
			return nil, err
		}

		var constructors []ast.Constructor
		var final source.Span
	constructorLoop:
		for {
			if s.peek().Kind == token.RBrace {
				final = s.peek().Span
				s.advance()
				break
			}

			ctor, err := parseConstructor(s)
			if err != nil {
				return nil, err
			}
			constructors = append(constructors, ctor)

			switch s.peek().Kind {
			case token.Comma:
				s.advance()
			case token.RBrace:
				final = s.peek().Span
				s.advance()
				break constructorLoop
			default:
				return nil, s.errorf(diag.SynUnexpectedToken, "expected ',' or '}' in type body")
			}
		}

		return ast.TypeItem{
			Name:             name,
			ParamsAndIndexes: paramsAndIndexes,
			Universe:         universe,
			Constructors:     constructors,
			Span:             initial.Cover(final),
		}, nil

	default:
		return nil, s.errorf(diag.SynUnexpectedToken, "expected 'let' or 'type' at top level")
	}
}

func parseExprGeneral(s *spool) (ast.Expr, error) {
	switch s.peek().Kind {
	case token.KwFnLower:
		initial := s.peek().Span
		s.advance()

		if _, err := s.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'fn'"); err != nil {
			return nil, err
		}

		bindings, err := parseTypedBindingList(s)
		if err != nil {
			return nil, err
		}

		var returnType ast.Expr
		if s.peek().Kind == token.Arrow {
			s.advance()
			returnType, err = parseExprGeneral(s)
			if err != nil {
				return nil, err
			}
			if _, err := s.expect(token.Comma, diag.SynUnexpectedToken, "expected ',' after lambda return type"); err != nil {
				return nil, err
			}
		}

		body, err := parseExprGeneral(s)
		if err != nil {
			return nil, err
		}

		return ast.FnLowercase{
			Args:       bindings,
			ReturnType: returnType,
			Body:       body,
			Span:       initial.Cover(body.Pos()),
		}, nil

	case token.KwFnUpper:
		initial := s.peek().Span
		s.advance()

		if _, err := s.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'Fn'"); err != nil {
			return nil, err
		}

		bindings, err := parseTypedBindingList(s)
		if err != nil {
			return nil, err
		}

		if _, err := s.expect(token.Arrow, diag.SynExpectArrow, "expected '->' in Pi type"); err != nil {
			return nil, err
		}

		returnType, err := parseExprGeneral(s)
		if err != nil {
			return nil, err
		}

		return ast.FnUppercase{
			Args:       bindings,
			ReturnType: returnType,
			Span:       initial.Cover(returnType.Pos()),
		}, nil

	default:
		return parseApplicationChain(s)
	}
}

func parseTypedBindingList(s *spool) ([]ast.TypedBinding, error) {
	var bindings []ast.TypedBinding
bindingLoop:
	for {
		if s.peek().Kind == token.RParen {
			s.advance()
			break
		}
		tb, err := parseTypedBinding(s)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, tb)

		switch s.peek().Kind {
		case token.Comma:
			s.advance()
		case token.RParen:
			s.advance()
			break bindingLoop
		default:
			return nil, s.errorf(diag.SynUnexpectedToken, "expected ',' or ')' in binding list")
		}
	}
	return bindings, nil
}

// atomStartsApplication reports whether tok can begin another atom in an
// application chain: the lookahead set deciding when juxtaposition
// continues.
func atomStartsApplication(k token.Kind) bool {
	switch k {
	case token.LBrace, token.LParen, token.Ident, token.Asterisk, token.Question:
		return true
	default:
		return false
	}
}

func parseApplicationChain(s *spool) (ast.Expr, error) {
	first, err := parseExprAtomic(s)
	if err != nil {
		return nil, err
	}

	out := first
	for atomStartsApplication(s.peek().Kind) {
		next, err := parseExprAtomic(s)
		if err != nil {
			return nil, err
		}
		out = ast.Application{Left: out, Right: next, Span: out.Pos().Cover(next.Pos())}
	}
	return out, nil
}

func parseExprAtomic(s *spool) (ast.Expr, error) {
	switch s.peek().Kind {
	case token.LBrace:
		initial := s.peek().Span
		s.advance()

		var statements []ast.Statement
		for s.peek().Kind != token.RBrace {
			stmt, err := parseStatement(s)
			if err != nil {
				return nil, err
			}
			statements = append(statements, stmt)

			if _, err := s.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after statement"); err != nil {
				return nil, err
			}
		}
		final := s.peek().Span
		s.advance()

		return ast.Block{Statements: statements, Span: initial.Cover(final)}, nil

	case token.LParen:
		initial := s.peek().Span
		s.advance()

		inner, err := parseExprGeneral(s)
		if err != nil {
			return nil, err
		}

		final, err := s.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close grouping")
		if err != nil {
			return nil, err
		}

		return ast.Grouping{Inner: inner, Span: initial.Cover(final.Span)}, nil

	case token.Ident:
		initial := s.peek().Span
		final := initial
		path := []string{s.peek().Text}
		s.advance()

		for s.peek().Kind == token.ColonColon {
			s.advance()
			tok, err := s.expect(token.Ident, diag.SynExpectIdentifier, "expected identifier after '::'")
			if err != nil {
				return nil, err
			}
			final = tok.Span
			path = append(path, tok.Text)
		}

		return ast.Value{Path: path, Span: initial.Cover(final)}, nil

	case token.Asterisk:
		initial := s.peek().Span
		final := initial
		s.advance()

		level := 0
		for s.peek().Kind == token.Apostrophe {
			final = s.peek().Span
			s.advance()
			level++
		}

		return ast.Set{Level: level, Span: initial.Cover(final)}, nil

	case token.Question:
		span := s.peek().Span
		s.advance()
		return ast.Prop{Span: span}, nil

	default:
		return nil, s.errorf(diag.SynExpectExpression, "expected an expression")
	}
}

func parseTypedBinding(s *spool) (ast.TypedBinding, error) {
	binding, err := parseBinding(s)
	if err != nil {
		return ast.TypedBinding{}, err
	}

	span := binding.Pos()
	var ascribedType ast.Expr

	if s.peek().Kind == token.Colon {
		s.advance()
		expr, err := parseExprGeneral(s)
		if err != nil {
			return ast.TypedBinding{}, err
		}
		span = span.Cover(expr.Pos())
		ascribedType = expr
	}

	return ast.TypedBinding{Binding: binding, AscribedType: ascribedType, Span: span}, nil
}

func parseBinding(s *spool) (ast.Binding, error) {
	switch s.peek().Kind {
	case token.Underscore:
		span := s.peek().Span
		s.advance()
		return ast.Underscore{Span: span}, nil
	case token.Ident:
		tok := s.peek()
		s.advance()
		return ast.Identifier{Name: tok.Text, Span: tok.Span}, nil
	default:
		return nil, s.errorf(diag.SynExpectIdentifier, "expected a binding (identifier or '_')")
	}
}

func parseName(s *spool) (ast.Name, error) {
	tok, err := s.expect(token.Ident, diag.SynExpectIdentifier, "expected an identifier")
	if err != nil {
		return ast.Name{}, err
	}
	return ast.Name{Value: tok.Text, Span: tok.Span}, nil
}

func parseStatement(s *spool) (ast.Statement, error) {
	switch s.peek().Kind {
	case token.KwLet:
		initial := s.peek().Span
		s.advance()

		binding, err := parseTypedBinding(s)
		if err != nil {
			return nil, err
		}

		if _, err := s.expect(token.Equals, diag.SynExpectEquals, "expected '=' after let binding"); err != nil {
			return nil, err
		}

		body, err := parseExprGeneral(s)
		if err != nil {
			return nil, err
		}

		return ast.Let{Binding: binding, Body: body, Span: initial.Cover(body.Pos())}, nil

	case token.KwReturn:
		initial := s.peek().Span
		s.advance()

		body, err := parseExprGeneral(s)
		if err != nil {
			return nil, err
		}

		return ast.Return{Body: body, Span: initial.Cover(body.Pos())}, nil

	default:
		return nil, s.errorf(diag.SynUnexpectedToken, "expected 'let' or 'return' in block")
	}
}

func parseParameterOrIndex(s *spool) (ast.ParameterOrIndex, error) {
	if s.peek().Kind == token.At {
		initial := s.peek().Span
		s.advance()

		if _, err := s.expect(token.Colon, diag.SynExpectColon, "expected ':' after '@'"); err != nil {
			return nil, err
		}

		ascribedType, err := parseExprGeneral(s)
		if err != nil {
			return nil, err
		}

		return ast.Index{AscribedType: ascribedType, Span: initial.Cover(ascribedType.Pos())}, nil
	}

	binding, err := parseBinding(s)
	if err != nil {
		return nil, err
	}

	if _, err := s.expect(token.Colon, diag.SynExpectColon, "expected ':' after parameter binding"); err != nil {
		return nil, err
	}

	ascribedType, err := parseExprGeneral(s)
	if err != nil {
		return nil, err
	}

	return ast.Parameter{
		Binding:      binding,
		AscribedType: ascribedType,
		Span:         binding.Pos().Cover(ascribedType.Pos()),
	}, nil
}

func parseConstructor(s *spool) (ast.Constructor, error) {
	name, err := parseName(s)
	if err != nil {
		return ast.Constructor{}, err
	}

	if _, err := s.expect(token.Colon, diag.SynExpectColon, "expected ':' after constructor name"); err != nil {
		return ast.Constructor{}, err
	}

	constructorType, err := parseExprGeneral(s)
	if err != nil {
		return ast.Constructor{}, err
	}

	return ast.Constructor{
		Name:            name,
		ConstructorType: constructorType,
		Span:            name.Span.Cover(constructorType.Pos()),
	}, nil
}
