package main

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// cliPrinter renders the small "N thing(s)" summaries tokenize/parse/net
// print after a batch run, via a catalog of plural-aware message keys
// rather than a hand-rolled "if n == 1" branch per call site.
var cliPrinter = newCLIPrinter()

func newCLIPrinter() *message.Printer {
	b := catalog.NewBuilder()
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(b.Set(language.English, "files", plural.Selectf(1, "%d",
		plural.One, "%d file", plural.Other, "%d files")))
	must(b.Set(language.English, "diagnostics", plural.Selectf(1, "%d",
		plural.One, "%d diagnostic", plural.Other, "%d diagnostics")))
	must(b.Set(language.English, "steps", plural.Selectf(1, "%d",
		plural.One, "%d step", plural.Other, "%d steps")))
	return message.NewPrinter(language.English, message.Catalog(b))
}

// countSummary renders n against one of the keys registered in
// newCLIPrinter, e.g. countSummary("files", 1) -> "1 file".
func countSummary(key string, n int) string {
	return cliPrinter.Sprintf(key, n)
}
