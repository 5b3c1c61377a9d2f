package valida

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/google/uuid"
)

// checkResult is the three-state outcome of a predicate. A predicate
// whose governing keyword is absent, or whose keyword does not apply to
// the value's kind, is skipped; skipped is never conflated with failed.
type checkResult int

const (
	checkSkipped checkResult = iota
	checkPassed
	checkFailed
)

// FormatMatcher reports whether a string satisfies a named format.
type FormatMatcher func(string) bool

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func defaultFormats() map[string]FormatMatcher {
	return map[string]FormatMatcher{
		"email": emailPattern.MatchString,
		"date":  datePattern.MatchString,
		"uuid": func(s string) bool {
			return uuid.Validate(s) == nil
		},
	}
}

func failure(code ErrorCode, format string, args ...any) (checkResult, ValidationError) {
	return checkFailed, ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// checkNullable applies to null values only: null is acceptable iff the
// schema says so.
func checkNullable(s *Schema, v any) (checkResult, ValidationError) {
	if KindOf(v) != KindNull {
		return checkSkipped, ValidationError{}
	}
	if !s.Nullable {
		return failure(CodeNotNullable, "value is null but the schema is not nullable")
	}
	return checkPassed, ValidationError{}
}

// checkUnknownType rejects a declared type outside the five recognized kinds.
func checkUnknownType(s *Schema, v any) (checkResult, ValidationError) {
	if s.Type == "" {
		return checkSkipped, ValidationError{}
	}
	if _, ok := knownTypes[s.Type]; !ok {
		return failure(CodeUnknownType, "schema declares unknown type %q", s.Type)
	}
	return checkPassed, ValidationError{}
}

// checkWrongType compares the value's structural kind against the
// declared type. Null values are the nullable predicate's concern and
// unrecognized declared types are the unknown-type predicate's concern,
// so both skip here.
func checkWrongType(s *Schema, v any) (checkResult, ValidationError) {
	if s.Type == "" {
		return checkSkipped, ValidationError{}
	}
	declared, ok := knownTypes[s.Type]
	if !ok {
		return checkSkipped, ValidationError{}
	}
	kind := KindOf(v)
	if kind == KindNull {
		return checkSkipped, ValidationError{}
	}
	if kind != declared {
		return failure(CodeWrongType, "value is %s, schema expects %s", kindName(kind), s.Type)
	}
	return checkPassed, ValidationError{}
}

func kindName(k Kind) string {
	if k == KindInvalid {
		return "unsupported"
	}
	return string(k)
}

// checkMinBound picks the bound keyword matching the value's kind:
// minimum for numbers, minLength for strings, minItems for arrays,
// minProperties for objects. Kinds without a bound keyword skip.
func checkMinBound(s *Schema, v any) (checkResult, ValidationError) {
	switch KindOf(v) {
	case KindNumber:
		if s.Minimum == nil {
			return checkSkipped, ValidationError{}
		}
		if n, _ := asNumber(v); n < *s.Minimum {
			return failure(CodeBelowMinimum, "number %v is less than minimum %v", n, *s.Minimum)
		}
	case KindString:
		if s.MinLength == nil {
			return checkSkipped, ValidationError{}
		}
		if utf8.RuneCountInString(v.(string)) < *s.MinLength {
			return failure(CodeBelowMinimum, "string is shorter than minimum length %d", *s.MinLength)
		}
	case KindArray:
		if s.MinItems == nil {
			return checkSkipped, ValidationError{}
		}
		if len(asArray(v)) < *s.MinItems {
			return failure(CodeBelowMinimum, "array has fewer than %d items", *s.MinItems)
		}
	case KindObject:
		if s.MinProperties == nil {
			return checkSkipped, ValidationError{}
		}
		if len(asObject(v)) < *s.MinProperties {
			return failure(CodeBelowMinimum, "object has fewer than %d properties", *s.MinProperties)
		}
	default:
		return checkSkipped, ValidationError{}
	}
	return checkPassed, ValidationError{}
}

func checkMaxBound(s *Schema, v any) (checkResult, ValidationError) {
	switch KindOf(v) {
	case KindNumber:
		if s.Maximum == nil {
			return checkSkipped, ValidationError{}
		}
		if n, _ := asNumber(v); n > *s.Maximum {
			return failure(CodeAboveMaximum, "number %v is greater than maximum %v", n, *s.Maximum)
		}
	case KindString:
		if s.MaxLength == nil {
			return checkSkipped, ValidationError{}
		}
		if utf8.RuneCountInString(v.(string)) > *s.MaxLength {
			return failure(CodeAboveMaximum, "string is longer than maximum length %d", *s.MaxLength)
		}
	case KindArray:
		if s.MaxItems == nil {
			return checkSkipped, ValidationError{}
		}
		if len(asArray(v)) > *s.MaxItems {
			return failure(CodeAboveMaximum, "array has more than %d items", *s.MaxItems)
		}
	case KindObject:
		if s.MaxProperties == nil {
			return checkSkipped, ValidationError{}
		}
		if len(asObject(v)) > *s.MaxProperties {
			return failure(CodeAboveMaximum, "object has more than %d properties", *s.MaxProperties)
		}
	default:
		return checkSkipped, ValidationError{}
	}
	return checkPassed, ValidationError{}
}

// checkStringPattern tests the pattern keyword against a string value.
// A pattern that does not compile is treated as not applicable.
func checkStringPattern(s *Schema, v any) (checkResult, ValidationError) {
	if s.Pattern == nil || KindOf(v) != KindString {
		return checkSkipped, ValidationError{}
	}
	re, err := regexp.Compile(*s.Pattern)
	if err != nil {
		return checkSkipped, ValidationError{}
	}
	if !re.MatchString(v.(string)) {
		return failure(CodePatternMismatch, "string does not match pattern %q", *s.Pattern)
	}
	return checkPassed, ValidationError{}
}

// checkStringFormat resolves the format keyword through the engine's
// format registry. Unknown formats skip, they are not failures.
func checkStringFormat(p *Engine, s *Schema, v any) (checkResult, ValidationError) {
	if s.Format == nil || KindOf(v) != KindString {
		return checkSkipped, ValidationError{}
	}
	match, ok := p.formats[*s.Format]
	if !ok {
		return checkSkipped, ValidationError{}
	}
	if !match(v.(string)) {
		return failure(CodeFormatMismatch, "string is not a valid %s", *s.Format)
	}
	return checkPassed, ValidationError{}
}

// checkAvailableValues requires the value to deep-equal one of the enum
// literals.
func checkAvailableValues(s *Schema, v any) (checkResult, ValidationError) {
	if len(s.Enum) == 0 {
		return checkSkipped, ValidationError{}
	}
	for _, allowed := range s.Enum {
		if DeepEqual(v, allowed) {
			return checkPassed, ValidationError{}
		}
	}
	return failure(CodeNotInEnum, "value is not one of the enumerated values")
}

// checkArrayType requires every element to satisfy at least one of the
// item schemas. Element sub-validations feed only pass/fail upward; a
// failing element reports the shared wrong-type code.
func checkArrayType(p *Engine, s *Schema, v any, depth int) (checkResult, ValidationError) {
	if len(s.Items) == 0 || KindOf(v) != KindArray {
		return checkSkipped, ValidationError{}
	}
	for i, item := range asArray(v) {
		satisfied := false
		for _, sub := range s.Items {
			errs := p.validate(sub, item, depth+1)
			if tooDeep, ok := errs.find(CodeSchemaTooDeep); ok {
				return checkFailed, tooDeep
			}
			if len(errs) == 0 {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return failure(CodeWrongType, "array item %d does not match the item schema", i)
		}
	}
	return checkPassed, ValidationError{}
}

// checkContains requires at least one element to deep-equal the contains
// literal.
func checkContains(s *Schema, v any) (checkResult, ValidationError) {
	if s.Contains == nil || KindOf(v) != KindArray {
		return checkSkipped, ValidationError{}
	}
	for _, item := range asArray(v) {
		if DeepEqual(item, s.Contains) {
			return checkPassed, ValidationError{}
		}
	}
	return failure(CodeMissingContains, "array does not contain the required value")
}

// checkUnique scans elements in order against the ones seen so far; the
// first collision fails the predicate.
func checkUnique(s *Schema, v any) (checkResult, ValidationError) {
	if !s.UniqueItems || KindOf(v) != KindArray {
		return checkSkipped, ValidationError{}
	}
	items := asArray(v)
	var seen []any
	for i, item := range items {
		for _, prev := range seen {
			if DeepEqual(item, prev) {
				return failure(CodeDuplicateItems, "array item %d duplicates an earlier item", i)
			}
		}
		seen = append(seen, item)
	}
	return checkPassed, ValidationError{}
}

// checkRequired requires every named key to be present on the object.
// Presence is what counts; a present null value satisfies it.
func checkRequired(s *Schema, v any) (checkResult, ValidationError) {
	if len(s.Required) == 0 || KindOf(v) != KindObject {
		return checkSkipped, ValidationError{}
	}
	entries := asObject(v)
	for _, name := range s.Required {
		if _, ok := entries[name]; !ok {
			return failure(CodeMissingRequiredProperty, "required property %q is missing", name)
		}
	}
	return checkPassed, ValidationError{}
}

// checkProperties validates every object key that is declared in
// properties against its sub-schema. Undeclared keys are ignored here;
// rejecting them is checkExtraProperties' concern. Keys iterate in
// sorted order so error attribution is deterministic.
func checkProperties(p *Engine, s *Schema, v any, depth int) (checkResult, ValidationError) {
	if len(s.Properties) == 0 || KindOf(v) != KindObject {
		return checkSkipped, ValidationError{}
	}
	entries := asObject(v)
	for _, name := range sortedKeys(entries) {
		sub, ok := s.Properties[name]
		if !ok {
			continue
		}
		errs := p.validate(sub, entries[name], depth+1)
		if tooDeep, ok := errs.find(CodeSchemaTooDeep); ok {
			return checkFailed, tooDeep
		}
		if len(errs) > 0 {
			return failure(CodeWrongType, "property %q does not match its schema", name)
		}
	}
	return checkPassed, ValidationError{}
}

// checkExtraProperties is violated when additionalProperties is false
// and the object carries a key absent from properties.
func checkExtraProperties(s *Schema, v any) (checkResult, ValidationError) {
	if s.AdditionalProperties == nil || *s.AdditionalProperties || KindOf(v) != KindObject {
		return checkSkipped, ValidationError{}
	}
	for _, name := range sortedKeys(asObject(v)) {
		if _, ok := s.Properties[name]; !ok {
			return failure(CodeDisallowedAdditionalProperty, "property %q is not declared and additional properties are not allowed", name)
		}
	}
	return checkPassed, ValidationError{}
}
