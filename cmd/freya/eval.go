package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"freya/internal/ast"
	"freya/internal/core"
	"freya/internal/diag"
	"freya/internal/lexer"
	"freya/internal/parser"
	"freya/internal/source"
)

var evalCmd = &cobra.Command{
	Use:   "eval <file.frey>",
	Short: "Elaborate a single expression and print its value and type",
	Long: `eval extracts one expression from the given file - a bare
expression, or the body of its one "let" item - and runs it through
internal/core.Evaluate, printing the resulting normal-form value and its
type.`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	path := args[0]
	maxDiags, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	useColor, err := resolveColor(cmd, os.Stderr)
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	file := fs.Get(id)

	expr, bag, err := extractEvalExpr(file, maxDiags)
	printDiagnostics(bag, fs, useColor)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	result, err := core.Evaluate(expr)
	if err != nil {
		return fmt.Errorf("elaboration failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "value: %s\ntype:  %s\n", result.Value, result.Type)
	return nil
}

// extractEvalExpr parses file as a bare expression first (the common case
// for small .frey snippets); if that fails it retries as a file of items
// and hands back the body of its single "let" item.
func extractEvalExpr(file *source.File, maxDiags int) (ast.Expr, *diag.Bag, error) {
	exprBag := diag.NewBag(maxDiags)
	exprReporter := diag.BagReporter{Bag: exprBag}
	lx := lexer.New(file, lexer.Options{Reporter: exprReporter})
	if expr, err := parser.ParseExpr(file, lx, exprReporter); err == nil {
		return expr, diag.NewBag(maxDiags), nil
	}

	itemBag := diag.NewBag(maxDiags)
	itemReporter := diag.BagReporter{Bag: itemBag}
	lx = lexer.New(file, lexer.Options{Reporter: itemReporter})
	f, err := parser.Parse(file, lx, itemReporter)
	if err != nil {
		return nil, itemBag, err
	}

	var letItems []ast.LetItem
	for _, item := range f.Items {
		if let, ok := item.(ast.LetItem); ok {
			letItems = append(letItems, let)
		}
	}
	if len(letItems) != 1 {
		return nil, itemBag, fmt.Errorf("expected a bare expression or exactly one 'let' item, found %d let item(s)", len(letItems))
	}
	return letItems[0].Body, itemBag, nil
}
