package valida

import (
	"fmt"
	"strings"
)

// ErrorCode is a symbolic identifier for a single validation failure.
// Codes are stable across runs and carry no interpolated values, so a
// caller may map them to its own messages.
type ErrorCode string

const (
	CodeNotNullable                  ErrorCode = "not_nullable"
	CodeUnknownType                  ErrorCode = "unknown_type"
	CodeWrongType                    ErrorCode = "wrong_type"
	CodeBelowMinimum                 ErrorCode = "below_minimum"
	CodeAboveMaximum                 ErrorCode = "above_maximum"
	CodePatternMismatch              ErrorCode = "pattern_mismatch"
	CodeFormatMismatch               ErrorCode = "format_mismatch"
	CodeNotInEnum                    ErrorCode = "not_in_enum"
	CodeMissingContains              ErrorCode = "missing_contains"
	CodeDuplicateItems               ErrorCode = "duplicate_items"
	CodeMissingRequiredProperty      ErrorCode = "missing_required_property"
	CodeDisallowedAdditionalProperty ErrorCode = "disallowed_additional_property"
	CodeNoValidAlternative           ErrorCode = "no_valid_alternative"
	CodeMultipleValidAlternatives    ErrorCode = "multiple_valid_alternatives"
	CodeSchemaTooDeep                ErrorCode = "schema_too_deep"
)

// ValidationError is a single collected violation. Code is the symbolic
// identifier; Message is human-readable wording that may vary with the
// kind of the offending value (a too-short string and a too-small array
// share CodeBelowMinimum but not the same message).
type ValidationError struct {
	Code    ErrorCode
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ValidationErrors is the ordered list of violations produced by one
// validation call. Order is deterministic: chain order at each node,
// sorted key order within object traversal.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Codes returns just the symbolic codes, in order.
func (e ValidationErrors) Codes() []ErrorCode {
	if e == nil {
		return nil
	}
	codes := make([]ErrorCode, len(e))
	for i, err := range e {
		codes[i] = err.Code
	}
	return codes
}

// Has reports whether the list contains at least one error with the given code.
func (e ValidationErrors) Has(code ErrorCode) bool {
	_, ok := e.find(code)
	return ok
}

func (e ValidationErrors) find(code ErrorCode) (ValidationError, bool) {
	for _, err := range e {
		if err.Code == code {
			return err, true
		}
	}
	return ValidationError{}, false
}
