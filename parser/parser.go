// Package parser turns textual formulas into syntax trees. Each
// formalism gets its own lexer and grammar; all of them funnel into the
// constructors of the syntax package, so parsed formulas come back
// normalized and interned like any other.
package parser

import (
	"errors"
	"fmt"

	"github.com/roach88/sequent/syntax"
)

// errEmptyAtom guards against a grammar alternative matching without
// populating any field. It indicates a grammar bug, not bad input.
var errEmptyAtom = errors.New("atom matched no alternative")

// ParseError wraps any failure while reading a formula, whether the
// grammar rejected the input or a constructor refused the result.
type ParseError struct {
	Logic syntax.Logic
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s formula %q: %v", e.Logic, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse dispatches to the parser for the given formalism. First-order
// formulas have no textual grammar and must be built programmatically.
func Parse(l syntax.Logic, input string) (syntax.Formula, error) {
	switch l {
	case syntax.PL:
		return ParsePL(input)
	case syntax.LTL:
		return ParseLTL(input)
	case syntax.PLTL:
		return ParsePLTL(input)
	case syntax.LDL:
		return ParseLDL(input)
	}
	return nil, &ParseError{Logic: l, Input: input, Err: fmt.Errorf("no parser registered for %q", l)}
}

type builder interface {
	build() (syntax.Formula, error)
}

// buildOperands flattens a first-then-rest parse into one operand list.
func buildOperands[T builder](first T, rest []T) ([]syntax.Formula, error) {
	operands := make([]syntax.Formula, 0, 1+len(rest))
	f, err := first.build()
	if err != nil {
		return nil, err
	}
	operands = append(operands, f)
	for _, r := range rest {
		f, err := r.build()
		if err != nil {
			return nil, err
		}
		operands = append(operands, f)
	}
	return operands, nil
}

// joinBinary applies an n-ary constructor to a chain of operands. A
// chain of one is just its operand; constructors never see it.
func joinBinary(ctor func(...syntax.Formula) (syntax.Formula, error), operands []syntax.Formula) (syntax.Formula, error) {
	if len(operands) == 1 {
		return operands[0], nil
	}
	return ctor(operands...)
}

// foldUnary applies a run of prefix operators right to left, so the
// operator written closest to the operand binds first.
func foldUnary(ops []string, operand syntax.Formula, table map[string]func(syntax.Formula) (syntax.Formula, error)) (syntax.Formula, error) {
	f := operand
	for i := len(ops) - 1; i >= 0; i-- {
		ctor, ok := table[ops[i]]
		if !ok {
			return nil, fmt.Errorf("unknown prefix operator %q", ops[i])
		}
		next, err := ctor(f)
		if err != nil {
			return nil, err
		}
		f = next
	}
	return f, nil
}

// symbolPattern admits snake_case names with interior hyphen runs and
// double-quoted free-form names. A hyphen is only part of a name when
// followed by another name character, which keeps "a->b" lexing as an
// implication.
const symbolPattern = `"[^"]*"|[a-z_][a-zA-Z0-9_]*(?:-+[a-zA-Z0-9_]+)*`
