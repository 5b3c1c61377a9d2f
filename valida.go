package valida

import (
	"fmt"
)

type (
	// SchemaValidator is the validation seam: anything that can judge a
	// value against a schema and report the violations.
	SchemaValidator interface {
		Validate(schema *Schema, value any) ValidationErrors
	}

	// Engine validates values against schemas. Validate itself is a pure
	// function of its inputs; the only mutable state is the error list
	// recorded by IsValid for later retrieval through Errors. That field
	// is not synchronized, so an Engine shared across goroutines must
	// either serialize IsValid/Errors pairs or use Validate directly.
	Engine struct {
		maxDepth   int
		formats    map[string]FormatMatcher
		lastErrors ValidationErrors
	}
)

// Validate checks value against schema and returns the ordered list of
// violations. An empty list means the value conforms. A nil schema means
// no constraints. The order is deterministic: the fixed predicate chain
// at each node, sorted key order within objects.
func (p *Engine) Validate(schema *Schema, value any) ValidationErrors {
	return p.validate(schema, value, 0)
}

// IsValid runs Validate, records the resulting list, and reports whether
// it is empty.
func (p *Engine) IsValid(schema *Schema, value any) bool {
	p.lastErrors = p.Validate(schema, value)
	return len(p.lastErrors) == 0
}

// Errors returns the list recorded by the most recent IsValid call.
func (p *Engine) Errors() ValidationErrors {
	return p.lastErrors
}

func (p *Engine) validate(s *Schema, v any, depth int) ValidationErrors {
	if s == nil {
		return nil
	}
	if depth > p.maxDepth {
		return ValidationErrors{{
			Code:    CodeSchemaTooDeep,
			Message: fmt.Sprintf("schema nesting exceeds the maximum depth of %d", p.maxDepth),
		}}
	}

	// Composition replaces the flat chain entirely for this node.
	if len(s.OneOf) > 0 || len(s.AnyOf) > 0 {
		return p.validateComposition(s, v, depth)
	}

	var errs ValidationErrors
	collect := func(res checkResult, err ValidationError) {
		if res == checkFailed {
			errs = append(errs, err)
		}
	}

	collect(checkNullable(s, v))
	collect(checkUnknownType(s, v))
	collect(checkWrongType(s, v))
	collect(checkMinBound(s, v))
	collect(checkMaxBound(s, v))
	collect(checkStringPattern(s, v))
	collect(checkStringFormat(p, s, v))
	collect(checkAvailableValues(s, v))
	collect(checkArrayType(p, s, v, depth))
	collect(checkContains(s, v))
	collect(checkUnique(s, v))
	collect(checkRequired(s, v))
	collect(checkProperties(p, s, v, depth))
	collect(checkExtraProperties(s, v))

	return errs
}

// validateComposition tallies how many alternative schemas the value
// satisfies. anyOf requires at least one, oneOf exactly one. When both
// keywords are present oneOf wins; they are mutually exclusive by
// contract and the engine needs a deterministic rule.
func (p *Engine) validateComposition(s *Schema, v any, depth int) ValidationErrors {
	alternatives := s.OneOf
	exclusive := true
	if len(alternatives) == 0 {
		alternatives = s.AnyOf
		exclusive = false
	}

	valid := 0
	for _, alt := range alternatives {
		errs := p.validate(alt, v, depth+1)
		if tooDeep, ok := errs.find(CodeSchemaTooDeep); ok {
			return ValidationErrors{tooDeep}
		}
		if len(errs) == 0 {
			valid++
		}
	}

	switch {
	case valid == 0:
		return ValidationErrors{{
			Code:    CodeNoValidAlternative,
			Message: "value does not match any of the alternative schemas",
		}}
	case exclusive && valid > 1:
		return ValidationErrors{{
			Code:    CodeMultipleValidAlternatives,
			Message: fmt.Sprintf("value matches %d alternative schemas, exactly one expected", valid),
		}}
	}

	return nil
}
