package token

var keywords = map[string]Kind{
	"fn":     KwFnLower,
	"Fn":     KwFnUpper,
	"let":    KwLet,
	"return": KwReturn,
	"type":   KwType,
}

// LookupKeyword reports the Kind for ident if it names a keyword. Keywords
// are case-sensitive: "fn" and "Fn" are distinct keywords, not casing
// variants of one another.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
