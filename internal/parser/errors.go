package parser

import "errors"

// errParse is returned internally once a diagnostic has been reported; the
// caller only needs to know parsing must stop, not why — the diagnostic
// itself carries the reason.
var errParse = errors.New("parser: aborted after diagnostic")
