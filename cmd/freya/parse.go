package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"freya/internal/ast"
	"freya/internal/diag"
	"freya/internal/lexer"
	"freya/internal/parser"
	"freya/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.frey|directory>",
	Short: "Parse a freya source file or directory and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

type parseFileResult struct {
	path string
	file ast.File
	bag  *diag.Bag
	err  error
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	maxDiags, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	useColor, err := resolveColor(cmd, os.Stderr)
	if err != nil {
		return err
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		fs := source.NewFileSet()
		id, err := fs.Load(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		r := parseFile(fs, id, maxDiags)
		printDiagnostics(r.bag, fs, useColor)
		if r.err != nil {
			return fmt.Errorf("parsing failed: %w", r.err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), r.file.Print())
		return nil
	}

	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return err
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	files, err := listFreyFiles(path)
	if err != nil {
		return err
	}
	fs := source.NewFileSetWithBase(path)
	ids := make([]source.FileID, len(files))
	for i, p := range files {
		id, err := fs.Load(p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}
		ids[i] = id
	}

	results := make([]parseFileResult, len(files))
	group, _ := errgroup.WithContext(context.Background())
	group.SetLimit(jobs)
	for i := range files {
		i := i
		group.Go(func() error {
			results[i] = parseFile(fs, ids[i], maxDiags)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	var firstErr error
	for _, r := range results {
		printDiagnostics(r.bag, fs, useColor)
		if r.err != nil && firstErr == nil {
			firstErr = r.err
		}
	}

	for i, r := range results {
		if r.err != nil {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "== %s ==\n%s\n", r.path, r.file.Print())
		if i < len(results)-1 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "parsed %s\n", countSummary("files", len(results)))
	if firstErr != nil {
		return fmt.Errorf("parsing failed: %w", firstErr)
	}
	return nil
}

func parseFile(fs *source.FileSet, id source.FileID, maxDiags int) parseFileResult {
	file := fs.Get(id)
	bag := diag.NewBag(maxDiags)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	f, err := parser.Parse(file, lx, reporter)
	return parseFileResult{path: file.Path, file: f, bag: bag, err: err}
}
