// Package semantics evaluates propositional formulas against an
// interpretation, a truth assignment over atom names.
package semantics

import (
	"github.com/roach88/sequent/syntax"
)

// Interpretation assigns truth values to atom names. Atoms it does not
// mention are false.
type Interpretation struct {
	atoms map[string]bool
}

// FromSet builds an interpretation in which exactly the named atoms
// hold.
func FromSet(names ...string) Interpretation {
	atoms := make(map[string]bool, len(names))
	for _, n := range names {
		atoms[n] = true
	}
	return Interpretation{atoms: atoms}
}

// FromMap builds an interpretation from explicit truth values. Entries
// mapped to false are equivalent to absent entries.
func FromMap(values map[string]bool) Interpretation {
	atoms := make(map[string]bool, len(values))
	for n, v := range values {
		if v {
			atoms[n] = true
		}
	}
	return Interpretation{atoms: atoms}
}

// Holds reports whether the named atom is true under the
// interpretation.
func (i Interpretation) Holds(name string) bool {
	return i.atoms[name]
}

// Evaluate computes the truth value of a propositional formula under
// the given interpretation. Formulas of other formalisms yield an
// UnsupportedError.
func Evaluate(f syntax.Formula, i Interpretation) (bool, error) {
	switch node := f.(type) {
	case *syntax.BoolConst:
		if node.Logic() == syntax.PL {
			return node.Value(), nil
		}

	case *syntax.Atomic:
		if node.Logic() == syntax.PL {
			return i.Holds(node.Name()), nil
		}

	case *syntax.UnaryOp:
		if node.Kind() == syntax.KindNot && node.Logic() == syntax.PL {
			v, err := Evaluate(node.Argument(), i)
			if err != nil {
				return false, err
			}
			return !v, nil
		}

	case *syntax.BinaryOp:
		if node.Logic() == syntax.PL {
			return evaluateBinary(node, i)
		}
	}
	return false, &syntax.UnsupportedError{Op: "semantics.Evaluate", Formula: f}
}

func evaluateBinary(node *syntax.BinaryOp, i Interpretation) (bool, error) {
	operands := node.Operands()
	switch node.Kind() {
	case syntax.KindAnd:
		for _, op := range operands {
			v, err := Evaluate(op, i)
			if err != nil {
				return false, err
			}
			if !v {
				return false, nil
			}
		}
		return true, nil

	case syntax.KindOr:
		for _, op := range operands {
			v, err := Evaluate(op, i)
			if err != nil {
				return false, err
			}
			if v {
				return true, nil
			}
		}
		return false, nil

	case syntax.KindImplies:
		// A right-nested implication chain is false only when every
		// antecedent holds and the final consequent does not.
		for _, op := range operands[:len(operands)-1] {
			v, err := Evaluate(op, i)
			if err != nil {
				return false, err
			}
			if !v {
				return true, nil
			}
		}
		return Evaluate(operands[len(operands)-1], i)

	case syntax.KindEquivalence:
		result, err := Evaluate(operands[0], i)
		if err != nil {
			return false, err
		}
		for _, op := range operands[1:] {
			v, err := Evaluate(op, i)
			if err != nil {
				return false, err
			}
			result = result == v
		}
		return result, nil
	}
	return false, &syntax.UnsupportedError{Op: "semantics.Evaluate", Formula: node}
}
