package parsers

// Some packages do not follow any description pattern, or never mention the
// real crate name at all. These are mapped by package name.
var builtinExceptions = map[string]string{
	"librust-aho-corasick-dev":          "aho-corasick",
	"librust-capstone-dev":              "capstone",
	"librust-darling-core-0.14-dev":     "darling_core",
	"librust-darling-core-dev":          "darling_core",
	"librust-darling-macro-dev":         "darling_macro",
	"librust-darling-macro-0.14-dev":    "darling_macro",
	"librust-notify-debouncer-mini-dev": "notify-debouncer-mini",
	"librust-zstd-sys-dev":              "zstd-sys",
}

// Exceptions is a read-only package name -> crate name table
type Exceptions struct {
	m map[string]string
}

// DefaultExceptions returns the built-in table
func DefaultExceptions() Exceptions {
	return Exceptions{m: builtinExceptions}
}

// With returns a new table holding e's entries plus extra. Entries in extra
// win over existing ones. e is left unchanged.
func (e Exceptions) With(extra map[string]string) Exceptions {
	if len(extra) == 0 {
		return e
	}
	m := make(map[string]string, len(e.m)+len(extra))
	for k, v := range e.m {
		m[k] = v
	}
	for k, v := range extra {
		m[k] = v
	}
	return Exceptions{m: m}
}

// Lookup returns the crate name mapped to pkg
func (e Exceptions) Lookup(pkg string) (string, bool) {
	crate, ok := e.m[pkg]
	return crate, ok
}

// Len returns the number of entries
func (e Exceptions) Len() int {
	return len(e.m)
}
