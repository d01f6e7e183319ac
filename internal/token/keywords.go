package token

var keywords = map[string]struct{}{
	"asm":      {},
	"if":       {},
	"elif":     {},
	"else":     {},
	"loop":     {},
	"fn":       {},
	"ret":      {},
	"true":     {},
	"false":    {},
	"ref":      {},
	"deref":    {},
	"impl":     {},
	"struct":   {},
	"async":    {},
	"enum":     {},
	"intf":     {},
	"void":     {},
	"volatile": {},
	"null":     {},
	"import":   {},
	"llvm":     {},
	"break":    {},
	"continue": {},
	"match":    {},
	"def":      {},
	"pub":      {},
	"const":    {},
	"default":  {},
	"type":     {},
}

// IsKeyword reports whether text is a language keyword. Keywords are
// case sensitive, only the lowercase spellings are recognized.
func IsKeyword(text string) bool {
	_, ok := keywords[text]
	return ok
}
