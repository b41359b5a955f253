// Package filter selects JSON documents returned by the Sanctum API using
// expr-lang expressions such as
//
//	user_id == 1234 and icontains(reason, "spam")
//
// Top-level keys of an object document are available as variables and the
// whole document as doc.
package filter

var defaultCompiler = NewExprCompiler(WithCache(100))

// Compile compiles expression with a shared, caching compiler
func Compile(expression string) (CompiledFilter, error) {
	return defaultCompiler.Compile(expression)
}

// Apply returns the documents matched by f, preserving order. A decoded
// response that is not an array is treated as a single document.
func Apply(f Filter, docs any) []any {
	items, ok := docs.([]any)
	if !ok {
		if docs == nil {
			return nil
		}
		items = []any{docs}
	}

	matches := make([]any, 0, len(items))
	for _, doc := range items {
		if f.Match(doc) {
			matches = append(matches, doc)
		}
	}
	return matches
}
