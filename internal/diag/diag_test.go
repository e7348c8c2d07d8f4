package diag

import (
	"strings"
	"testing"

	"freya/internal/source"
)

func newTestFileSet(t *testing.T, content string) (*source.FileSet, source.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.frey", []byte(content))
	return fs, id
}

func TestBagAddRespectsCapacity(t *testing.T) {
	bag := NewBag(2)
	sp := source.Span{}
	if !bag.Add(NewError(SynUnexpectedToken, sp, "a").WithNote(sp, "").ptr()) {
		t.Fatal("expected first add to succeed")
	}
	if !bag.Add(&Diagnostic{Code: SynUnexpectedToken, Severity: SevError, Primary: sp, Message: "b"}) {
		t.Fatal("expected second add to succeed")
	}
	if bag.Add(&Diagnostic{Code: SynUnexpectedToken, Severity: SevError, Primary: sp, Message: "c"}) {
		t.Fatal("expected third add to be dropped at capacity 2")
	}
	if bag.Len() != 2 {
		t.Errorf("expected Len() == 2, got %d", bag.Len())
	}
}

func TestBagHasErrorsAndWarnings(t *testing.T) {
	bag := NewBag(10)
	bag.Add(&Diagnostic{Severity: SevWarning, Code: LexInfo})
	if bag.HasErrors() {
		t.Error("expected no errors yet")
	}
	if !bag.HasWarnings() {
		t.Error("expected HasWarnings to be true")
	}
	bag.Add(&Diagnostic{Severity: SevError, Code: SynUnexpectedToken})
	if !bag.HasErrors() {
		t.Error("expected HasErrors to be true after adding an error")
	}
}

func TestBagSortOrdersByPositionThenSeverityThenCode(t *testing.T) {
	bag := NewBag(10)
	bag.Add(&Diagnostic{Code: SynUnexpectedToken, Severity: SevWarning, Primary: source.Span{Start: 5, End: 6}})
	bag.Add(&Diagnostic{Code: LexUnknownChar, Severity: SevError, Primary: source.Span{Start: 1, End: 2}})
	bag.Add(&Diagnostic{Code: SynExpectColon, Severity: SevError, Primary: source.Span{Start: 1, End: 2}})
	bag.Sort()

	items := bag.Items()
	if items[0].Primary.Start != 1 {
		t.Fatalf("expected lowest-offset diagnostic first, got %+v", items[0])
	}
	// Among the two at offset 1, severity ties are broken by ascending code string.
	if items[0].Code != LexUnknownChar {
		t.Errorf("expected LEX code to sort before SYN code at the same position, got %v", items[0].Code)
	}
	if items[2].Primary.Start != 5 {
		t.Errorf("expected the offset-5 diagnostic last, got %+v", items[2])
	}
}

func TestBagDedupRemovesSameCodeAndSpan(t *testing.T) {
	bag := NewBag(10)
	sp := source.Span{Start: 1, End: 2}
	bag.Add(&Diagnostic{Code: LexUnknownChar, Severity: SevError, Primary: sp, Message: "first"})
	bag.Add(&Diagnostic{Code: LexUnknownChar, Severity: SevError, Primary: sp, Message: "second"})
	bag.Dedup()
	if bag.Len() != 1 {
		t.Fatalf("expected Dedup to collapse to 1 diagnostic, got %d", bag.Len())
	}
}

func TestBagMergeGrowsCapacity(t *testing.T) {
	a := NewBag(1)
	b := NewBag(5)
	a.Add(&Diagnostic{Code: LexInfo})
	b.Add(&Diagnostic{Code: LexInfo})
	b.Add(&Diagnostic{Code: SynInfo})
	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("expected merged bag to have 3 items, got %d", a.Len())
	}
	if a.Cap() < 3 {
		t.Errorf("expected merged capacity to grow to at least 3, got %d", a.Cap())
	}
}

func TestBagFilterAndTransform(t *testing.T) {
	bag := NewBag(10)
	bag.Add(&Diagnostic{Code: LexInfo, Severity: SevInfo})
	bag.Add(&Diagnostic{Code: SynInfo, Severity: SevError})
	bag.Filter(func(d *Diagnostic) bool { return d.Severity == SevError })
	if bag.Len() != 1 {
		t.Fatalf("expected Filter to keep only the error, got %d items", bag.Len())
	}
	bag.Transform(func(d *Diagnostic) *Diagnostic {
		d.Message = "rewritten"
		return d
	})
	if bag.Items()[0].Message != "rewritten" {
		t.Errorf("expected Transform to rewrite the message, got %q", bag.Items()[0].Message)
	}
}

func TestBagReporterAppendsToBag(t *testing.T) {
	bag := NewBag(10)
	r := BagReporter{Bag: bag}
	r.Report(SynUnexpectedToken, SevError, source.Span{}, "boom", nil)
	if bag.Len() != 1 {
		t.Fatalf("expected BagReporter.Report to add one diagnostic, got %d", bag.Len())
	}
}

func TestDedupReporterSuppressesDuplicates(t *testing.T) {
	bag := NewBag(10)
	inner := BagReporter{Bag: bag}
	dedup := NewDedupReporter(inner)
	sp := source.Span{Start: 1, End: 2}
	dedup.Report(LexUnknownChar, SevError, sp, "same", nil)
	dedup.Report(LexUnknownChar, SevError, sp, "same", nil)
	dedup.Report(LexUnknownChar, SevError, sp, "different", nil)
	if bag.Len() != 2 {
		t.Fatalf("expected 2 unique diagnostics to pass through, got %d", bag.Len())
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(10)
	r := BagReporter{Bag: bag}
	b := ReportError(r, SynUnexpectedToken, source.Span{}, "oops").WithNote(source.Span{}, "see here")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("expected Emit to be idempotent, got %d diagnostics", bag.Len())
	}
	if len(b.Diagnostic().Notes) != 1 {
		t.Errorf("expected one note on the builder's diagnostic, got %d", len(b.Diagnostic().Notes))
	}
}

func TestCodeIDAndTitle(t *testing.T) {
	if SynUnexpectedToken.ID() != "SYN2001" {
		t.Errorf("expected SYN2001, got %s", SynUnexpectedToken.ID())
	}
	if LexUnknownChar.ID() != "LEX1001" {
		t.Errorf("expected LEX1001, got %s", LexUnknownChar.ID())
	}
	if SynUnexpectedToken.Title() == "" {
		t.Error("expected a non-empty title")
	}
	if Code(9999).ID() != "E0000" {
		t.Errorf("expected an out-of-range code to format as E0000, got %s", Code(9999).ID())
	}
}

func TestFormatDiagnosticsOrdersAndRenders(t *testing.T) {
	fs, id := newTestFileSet(t, "line one\nline two\n")
	diags := []*Diagnostic{
		NewError(SynUnexpectedToken, source.Span{File: id, Start: 9, End: 10}, "second line problem").
			WithNote(source.Span{File: id, Start: 0, End: 1}, "see first line").ptr(),
		NewError(LexUnknownChar, source.Span{File: id, Start: 0, End: 1}, "first line problem").ptr(),
	}
	rendered := FormatDiagnostics(diags, fs, true)
	lines := strings.Split(rendered, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rendered lines (2 diagnostics + 1 note), got %d: %q", len(lines), rendered)
	}
	// The first-line error and the second-line error's note share position
	// 1:1; "error" sorts before "note" there, and the second-line error
	// comes last since it sorts strictly after both by line number.
	if !strings.Contains(lines[0], "error") || !strings.Contains(lines[0], "test.frey:1:1") {
		t.Errorf("expected the first-line error first, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "note") || !strings.Contains(lines[1], "test.frey:1:1") {
		t.Errorf("expected the note to follow at the same position, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "test.frey:2:1") {
		t.Errorf("expected the second-line error last, got %q", lines[2])
	}
}

func TestFormatDiagnosticsEmptyInputs(t *testing.T) {
	if FormatDiagnostics(nil, nil, true) != "" {
		t.Error("expected empty rendering for nil fileset")
	}
	fs, _ := newTestFileSet(t, "x")
	if FormatDiagnostics(nil, fs, true) != "" {
		t.Error("expected empty rendering for no diagnostics")
	}
}

// ptr lets the tests above build a *Diagnostic from the value-returning
// New/NewError/WithNote helpers without duplicating field lists by hand.
func (d Diagnostic) ptr() *Diagnostic { return &d }
