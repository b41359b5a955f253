package filter

import (
	"encoding/json"
	"maps"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements CachingCompiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// Document fields are unknown until evaluation
	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Match evaluates the filter against a document. Documents that make the
// expression fail at runtime do not match.
func (f *exprFilter) Match(doc any) bool {
	env := createRuntimeEnvironment(normalize(doc), f.helpers)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false
	}

	return result.(bool)
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// createHelperFunctions creates the static helper functions used during compilation.
// contains, startsWith and endsWith are expr operators, so the case-insensitive
// variants carry an i prefix.
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)

	funcs["icontains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	funcs["istartsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	funcs["iendsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	funcs["lower"] = strings.ToLower
	funcs["upper"] = strings.ToUpper
	funcs["daysSince"] = daysSince
	funcs["now"] = time.Now
	// replaced per document in createRuntimeEnvironment
	funcs["has"] = func(string) bool { return false }

	return funcs
}

// createRuntimeEnvironment exposes the top-level keys of an object document as
// variables, the whole document as doc, and the helper functions. Helpers win
// over document keys of the same name.
func createRuntimeEnvironment(doc any, helpers map[string]any) map[string]any {
	obj, _ := doc.(map[string]any)

	env := make(map[string]any, len(obj)+len(helpers)+2)
	maps.Copy(env, obj)
	maps.Copy(env, helpers)

	env["doc"] = doc
	env["has"] = func(key string) bool {
		_, ok := obj[key]
		return ok
	}

	return env
}

// daysSince returns the whole days elapsed since an RFC 3339 timestamp, or -1
// when the value cannot be parsed.
func daysSince(timestamp string) int {
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return -1
	}
	return int(time.Since(t).Hours() / 24)
}

// normalize converts json.Number values into int64 or float64 so they can
// be compared with numeric literals.
func normalize(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}
