// Package diag defines the diagnostic model shared by the lexer and parser.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings produced
//     by the lexing and parsing phases.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity — tri-level enum (Info, Warning, Error), severity.go.
//   - Code — compact numeric identifier (codes.go) with a stable string form.
//   - Message — human oriented text; keep it short and actionable.
//   - Primary span — the canonical source.Span pointing at the issue.
//   - Notes — optional secondary spans/messages for additional context.
//
// Notes should be used sparingly: each note must add new context (e.g.
// "binding declared here") rather than repeat the diagnostic message.
//
// # Emitting diagnostics
//
// Phases use a diag.Reporter to decouple emission from storage. Callers
// construct a ReportBuilder via NewReportBuilder (or the helper functions
// ReportError/ReportWarning/ReportInfo), chain WithNote, and call Emit.
// When no extra metadata is needed, call Reporter.Report directly.
//
// diag.BagReporter collects diagnostics into a Bag, which supports sorting,
// deduplication, and filtering. FormatDiagnostics renders a Bag's contents
// for the cmd/freya CLI's stderr output.
package diag
