package syntax

import (
	"errors"
	"fmt"
)

// InvariantError reports a construction-time invariant violation.
//
// Invariant violations include:
//   - Wrong arity: too few operands for an operator
//   - Mixed logic: operands from different formalisms in one node
//   - Forbidden logic: an operator applied to a formalism it rejects
//   - Bad symbol: an atom name outside the symbol grammar
//   - Non-term operand: a first-order builder given a non-Term argument
//
// These are programming/input-data errors raised immediately at the
// constructor call site, never deferred; callers receive either a fully
// valid formula or an error, never a partially constructed node.
type InvariantError struct {
	// Code identifies the violation category.
	Code InvariantCode

	// Op names the constructor that rejected the input.
	Op string

	// Message is a human-readable description.
	Message string
}

// InvariantCode categorizes invariant violations.
type InvariantCode string

const (
	// CodeWrongArity indicates too few (or zero) operands.
	CodeWrongArity InvariantCode = "WRONG_ARITY"

	// CodeMixedLogic indicates operands from different formalisms.
	CodeMixedLogic InvariantCode = "MIXED_LOGIC"

	// CodeForbiddenLogic indicates an operand formalism the operator rejects.
	CodeForbiddenLogic InvariantCode = "FORBIDDEN_LOGIC"

	// CodeBadSymbol indicates an atom name outside the symbol grammar.
	CodeBadSymbol InvariantCode = "BAD_SYMBOL"

	// CodeNotATerm indicates a non-Term argument to a first-order builder.
	CodeNotATerm InvariantCode = "NOT_A_TERM"

	// CodeNotAFormula indicates a nil or otherwise absent formula operand.
	CodeNotAFormula InvariantCode = "NOT_A_FORMULA"
)

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Op, e.Message)
}

// IsInvariantError reports whether err is (or wraps) an InvariantError.
func IsInvariantError(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}

// IsForbiddenLogic reports whether err is a forbidden-formalism violation.
func IsForbiddenLogic(err error) bool {
	var ie *InvariantError
	if errors.As(err, &ie) {
		return ie.Code == CodeForbiddenLogic
	}
	return false
}

func invariantErrorf(code InvariantCode, op, format string, args ...any) *InvariantError {
	return &InvariantError{Code: code, Op: op, Message: fmt.Sprintf(format, args...)}
}

// UnsupportedError reports a polymorphic operation (serialization,
// evaluation) dispatched on a node kind it has no handler for. It
// indicates an incomplete handler registration and is always fatal to
// the current call, never silently skipped.
type UnsupportedError struct {
	// Op names the operation that could not dispatch.
	Op string

	// Formula is the offending node.
	Formula Formula
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: unsupported formula %T", e.Op, e.Formula)
}

// IsUnsupported reports whether err is (or wraps) an UnsupportedError.
func IsUnsupported(err error) bool {
	var ue *UnsupportedError
	return errors.As(err, &ue)
}
