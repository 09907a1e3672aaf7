package filter

// Item is one decoded JSON object, e.g. a show or a movie from a result
type Item = map[string]any

// Filter checks items against a criterion
type Filter interface {
	// Match reports whether the item satisfies the filter
	Match(item Item) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Expression returns the original filter expression
	Expression() string

	// Evaluate is Match with the evaluation error surfaced
	Evaluate(item Item) (bool, error)
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}
