package filter

import (
	"errors"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// DefaultCacheSize is the number of compiled programs NewExprCompiler keeps
// unless WithCache says otherwise
const DefaultCacheSize = 100

// ErrNoDate is returned by daysSince for a missing date
var ErrNoDate = errors.New("no date")

// Date layouts seen in MyShows payloads
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"Jan/02/2006",
}

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache sets the compiled program cache size. Zero disables caching.
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[CompiledFilter](size)
		} else {
			c.cache = nil
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
		cache:       newLRUCache[CompiledFilter](DefaultCacheSize),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements CachingCompiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache[CompiledFilter]
}

// Compile compiles an expression into an executable filter. Item fields are
// resolved at run time, so unknown names compile and evaluate to nil.
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
			Position:   -1,
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Position:   -1,
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

// Match evaluates the filter; items that fail to evaluate do not match
func (f *exprFilter) Match(item Item) bool {
	ok, err := f.Evaluate(item)
	return err == nil && ok
}

// Evaluate runs the program against item
func (f *exprFilter) Evaluate(item Item) (bool, error) {
	result, err := expr.Run(f.program, createRuntimeEnvironment(f.helpers, item))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			ItemID:     item["id"],
			Reason:     "failed to evaluate expression",
			Err:        err,
		}
	}

	// AsBool guarantees the type
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// createRuntimeEnvironment exposes every top-level item field by name, the
// whole item as "item", and the helpers. Helpers shadow item fields.
func createRuntimeEnvironment(helpers map[string]any, item Item) map[string]any {
	env := make(map[string]any, len(item)+len(helpers)+1)
	maps.Copy(env, item)
	maps.Copy(env, helpers)
	env["item"] = item
	env["hasGenre"] = createHasGenreFunc(item["genreIds"])
	return env
}

// createHelperFunctions creates the static helper functions used during
// compilation and evaluation. String matching uses the contains, startsWith
// and endsWith operators and the lower, upper and now builtins.
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 8)

	// Date helpers
	funcs["daysSince"] = daysSince
	funcs["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	funcs["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	funcs["parseDate"] = parseDate
	// Item helpers, rebound per item at run time
	funcs["hasGenre"] = func(int) bool { return false }
	funcs["item"] = map[string]any{}

	return funcs
}

// daysSince counts whole days from t to now. A zero time, which is what
// parseDate yields for a missing or unparseable date, fails evaluation so
// the item does not match.
func daysSince(t time.Time) (int, error) {
	if t.IsZero() {
		return 0, ErrNoDate
	}
	return int(time.Since(t).Hours() / 24), nil
}

// parseDate accepts the date formats MyShows uses; unparseable input is the
// zero time
func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// createHasGenreFunc reads a decoded genreIds array; JSON numbers decode as
// float64
func createHasGenreFunc(raw any) func(int) bool {
	values, _ := raw.([]any)
	ids := make([]int, 0, len(values))
	for _, v := range values {
		if f, ok := v.(float64); ok {
			ids = append(ids, int(f))
		}
	}
	return func(id int) bool {
		return slices.Contains(ids, id)
	}
}
