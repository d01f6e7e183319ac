package token

var dataTypes = map[string]struct{}{
	"u8":   {},
	"u16":  {},
	"u32":  {},
	"u64":  {},
	"u128": {},
	"i8":   {},
	"i16":  {},
	"i32":  {},
	"i64":  {},
	"i128": {},
	"f32":  {},
	"f64":  {},
	"f80":  {},
	"f128": {},
	"char": {},
	"bool": {},
}

// IsDataType reports whether text names a built-in data type.
// The data-type and keyword tables are disjoint by construction, so
// the lexer may probe them in either order.
func IsDataType(text string) bool {
	_, ok := dataTypes[text]
	return ok
}
