package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"freya/internal/diag"
	"freya/internal/lexer"
	"freya/internal/source"
	"freya/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file.frey|directory>",
	Short: "Tokenize a freya source file or directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "", "output format (text|json)")
}

type tokenizeFileResult struct {
	path   string
	fileID source.FileID
	tokens []token.Token
	bag    *diag.Bag
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, err := resolveFormat(cmd, "text")
	if err != nil {
		return err
	}
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
		result := tokenizeFile(fs, id, maxDiags)
		printDiagnostics(result.bag, fs, useColor)
		return printTokenResults(cmd, format, []tokenizeFileResult{result})
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

	results := make([]tokenizeFileResult, len(files))
	group, _ := errgroup.WithContext(context.Background())
	group.SetLimit(jobs)
	for i := range files {
		i := i
		group.Go(func() error {
			results[i] = tokenizeFile(fs, ids[i], maxDiags)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	for _, r := range results {
		printDiagnostics(r.bag, fs, useColor)
	}
	if err := printTokenResults(cmd, format, results); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "tokenized %s\n", countSummary("files", len(results)))
	return nil
}

func tokenizeFile(fs *source.FileSet, id source.FileID, maxDiags int) tokenizeFileResult {
	file := fs.Get(id)
	bag := diag.NewBag(maxDiags)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var toks []token.Token
	for {
		t := lx.Next()
		if t.Kind == token.EOF {
			break
		}
		toks = append(toks, t)
	}
	return tokenizeFileResult{path: file.Path, fileID: id, tokens: toks, bag: bag}
}

func printTokenResults(cmd *cobra.Command, format string, results []tokenizeFileResult) error {
	out := cmd.OutOrStdout()
	switch format {
	case "text":
		for i, r := range results {
			if len(results) > 1 {
				fmt.Fprintf(out, "== %s ==\n", r.path)
			}
			for _, t := range r.tokens {
				fmt.Fprintf(out, "%-14s %-6s %q\n", t.Kind, t.Span, t.Text)
			}
			if i < len(results)-1 {
				fmt.Fprintln(out)
			}
		}
		return nil
	case "json":
		type tokenJSON struct {
			Kind string `json:"kind"`
			Span string `json:"span"`
			Text string `json:"text"`
		}
		out := make(map[string][]tokenJSON, len(results))
		for _, r := range results {
			entries := make([]tokenJSON, 0, len(r.tokens))
			for _, t := range r.tokens {
				entries = append(entries, tokenJSON{Kind: t.Kind.String(), Span: t.Span.String(), Text: t.Text})
			}
			out[r.path] = entries
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// listFreyFiles walks dir for *.frey files, sorted for deterministic
// directory-mode output.
func listFreyFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if filepath.Ext(p) == ".frey" {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
