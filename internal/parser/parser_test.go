package parser

import (
	"testing"

	"freya/internal/ast"
	"freya/internal/diag"
	"freya/internal/lexer"
	"freya/internal/source"
)

func parseString(t *testing.T, content string) (ast.File, *diag.Bag, error) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.frey", []byte(content))
	file := fs.Get(id)
	bag := diag.NewBag(20)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	f, err := Parse(file, lx, reporter)
	return f, bag, err
}

func parseExprString(t *testing.T, content string) (ast.Expr, *diag.Bag, error) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.frey", []byte(content))
	file := fs.Get(id)
	bag := diag.NewBag(20)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	e, err := ParseExpr(file, lx, reporter)
	return e, bag, err
}

func TestParseLetItem(t *testing.T) {
	f, bag, err := parseString(t, "let x : ? = ?;")
	if err != nil {
		t.Fatalf("unexpected error: %v (diags: %+v)", err, bag.Items())
	}
	if len(f.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(f.Items))
	}
	item, ok := f.Items[0].(ast.LetItem)
	if !ok {
		t.Fatalf("expected LetItem, got %T", f.Items[0])
	}
	ident, ok := item.Binding.Binding.(ast.Identifier)
	if !ok || ident.Name != "x" {
		t.Fatalf("expected binding 'x', got %+v", item.Binding.Binding)
	}
	if _, ok := item.Body.(ast.Prop); !ok {
		t.Fatalf("expected Prop body, got %T", item.Body)
	}
}

func TestParseTypeItemWithConstructors(t *testing.T) {
	f, bag, err := parseString(t, "type Nat { zero : Nat, succ : Fn(n : Nat) -> Nat }")
	if err != nil {
		t.Fatalf("unexpected error: %v (diags: %+v)", err, bag.Items())
	}
	item, ok := f.Items[0].(ast.TypeItem)
	if !ok {
		t.Fatalf("expected TypeItem, got %T", f.Items[0])
	}
	if item.Name.Value != "Nat" {
		t.Errorf("expected type name 'Nat', got %q", item.Name.Value)
	}
	if len(item.Constructors) != 2 {
		t.Fatalf("expected 2 constructors, got %d", len(item.Constructors))
	}
	if item.Constructors[0].Name.Value != "zero" || item.Constructors[1].Name.Value != "succ" {
		t.Errorf("unexpected constructor names: %+v", item.Constructors)
	}
}

func TestParseLambda(t *testing.T) {
	f, bag, err := parseString(t, "let id : ? = fn(x : ?) x;")
	if err != nil {
		t.Fatalf("unexpected error: %v (diags: %+v)", err, bag.Items())
	}
	lam, ok := f.Items[0].(ast.LetItem).Body.(ast.FnLowercase)
	if !ok {
		t.Fatalf("expected FnLowercase, got %T", f.Items[0].(ast.LetItem).Body)
	}
	if len(lam.Args) != 1 || lam.Args[0].Binding.(ast.Identifier).Name != "x" {
		t.Fatalf("expected single arg 'x', got %+v", lam.Args)
	}
	if _, ok := lam.Body.(ast.Value); !ok {
		t.Fatalf("expected Value body, got %T", lam.Body)
	}
}

func TestParseApplicationIsLeftAssociative(t *testing.T) {
	f, bag, err := parseString(t, "let x : ? = f a b;")
	if err != nil {
		t.Fatalf("unexpected error: %v (diags: %+v)", err, bag.Items())
	}
	// "f a b" parses as Application{Application{f, a}, b}: the outer
	// node's Left is itself an Application, not a flat 3-way chain.
	outer, ok := f.Items[0].(ast.LetItem).Body.(ast.Application)
	if !ok {
		t.Fatalf("expected top-level Application, got %T", f.Items[0].(ast.LetItem).Body)
	}
	if _, ok := outer.Left.(ast.Application); !ok {
		t.Fatalf("expected left-associative nesting, got Left of type %T", outer.Left)
	}
	if _, ok := outer.Right.(ast.Value); !ok {
		t.Fatalf("expected Right to be the trailing atom 'b', got %T", outer.Right)
	}
}

func TestParsePiType(t *testing.T) {
	e, bag, err := parseExprString(t, "Fn(n : ?) -> ?")
	if err != nil {
		t.Fatalf("unexpected error: %v (diags: %+v)", err, bag.Items())
	}
	pi, ok := e.(ast.FnUppercase)
	if !ok {
		t.Fatalf("expected FnUppercase, got %T", e)
	}
	if len(pi.Args) != 1 {
		t.Fatalf("expected 1 arg, got %d", len(pi.Args))
	}
}

func TestParseSetUniverseLevels(t *testing.T) {
	e, _, err := parseExprString(t, "*''")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	set, ok := e.(ast.Set)
	if !ok {
		t.Fatalf("expected Set, got %T", e)
	}
	if set.Level != 2 {
		t.Errorf("expected level 2, got %d", set.Level)
	}
}

func TestParseValuePath(t *testing.T) {
	e, _, err := parseExprString(t, "Nat::succ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	val, ok := e.(ast.Value)
	if !ok {
		t.Fatalf("expected Value, got %T", e)
	}
	if len(val.Path) != 2 || val.Path[0] != "Nat" || val.Path[1] != "succ" {
		t.Errorf("unexpected path: %+v", val.Path)
	}
}

func TestParseBlockWithLetAndReturn(t *testing.T) {
	e, bag, err := parseExprString(t, "{ let y : ? = ?; return y; }")
	if err != nil {
		t.Fatalf("unexpected error: %v (diags: %+v)", err, bag.Items())
	}
	block, ok := e.(ast.Block)
	if !ok {
		t.Fatalf("expected Block, got %T", e)
	}
	if len(block.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(block.Statements))
	}
	if _, ok := block.Statements[0].(ast.Let); !ok {
		t.Errorf("expected first statement to be Let, got %T", block.Statements[0])
	}
	if _, ok := block.Statements[1].(ast.Return); !ok {
		t.Errorf("expected second statement to be Return, got %T", block.Statements[1])
	}
}

func TestParseGrouping(t *testing.T) {
	e, _, err := parseExprString(t, "(?)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := e.(ast.Grouping); !ok {
		t.Fatalf("expected Grouping, got %T", e)
	}
}

func TestParseMissingSemicolonReportsDiagnostic(t *testing.T) {
	_, bag, err := parseString(t, "let x : ? = ?")
	if err == nil {
		t.Fatal("expected a parse error for a missing semicolon")
	}
	if bag.Len() == 0 {
		t.Fatal("expected at least one diagnostic")
	}
	if bag.Items()[0].Code != diag.SynExpectSemicolon {
		t.Errorf("expected SynExpectSemicolon, got %v", bag.Items()[0].Code)
	}
}

func TestParseUnclosedParenReportsDiagnostic(t *testing.T) {
	_, bag, err := parseExprString(t, "(?")
	if err == nil {
		t.Fatal("expected a parse error for an unclosed grouping")
	}
	if bag.Len() == 0 || bag.Items()[0].Code != diag.SynUnclosedParen {
		t.Fatalf("expected SynUnclosedParen, got %+v", bag.Items())
	}
}

func TestParseExprRejectsTrailingTokens(t *testing.T) {
	_, bag, err := parseExprString(t, "? ?")
	if err != nil {
		// Two atoms in sequence actually form a valid application chain,
		// so assert the real boundary case instead: a dangling extra token
		// that cannot start another atom.
		t.Fatalf("unexpected error parsing an application chain: %v (diags: %+v)", err, bag.Items())
	}

	_, bag2, err2 := parseExprString(t, "? ;")
	if err2 == nil {
		t.Fatal("expected ParseExpr to reject a trailing ';' after the expression")
	}
	if bag2.Len() == 0 {
		t.Fatal("expected a diagnostic for the trailing token")
	}
}

func TestParseEmptyFileYieldsNoItems(t *testing.T) {
	f, _, err := parseString(t, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Items) != 0 {
		t.Errorf("expected no items for an empty file, got %d", len(f.Items))
	}
}
