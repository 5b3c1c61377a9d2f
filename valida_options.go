package valida

// WithMaxDepth sets the maximum schema recursion depth. Validation of a schema
// nested deeper than this (typically a cyclic schema graph) reports
// CodeSchemaTooDeep instead of recursing without bound.
func WithMaxDepth(maxDepth int) func(*Engine) {
	return func(e *Engine) {
		e.maxDepth = maxDepth
	}
}

// WithFormat registers a matcher for a named string format, alongside
// the built-in email, date and uuid formats. A format without a matcher
// stays inapplicable rather than failing.
func WithFormat(name string, matcher FormatMatcher) func(*Engine) {
	return func(e *Engine) {
		e.formats[name] = matcher
	}
}

func New(options ...func(*Engine)) *Engine {
	e := &Engine{
		maxDepth: 512, // default values
		formats:  defaultFormats(),
	}

	for i := range options {
		options[i](e)
	}

	return e
}
