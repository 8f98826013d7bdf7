package deduction

import (
	"github.com/roach88/sequent/syntax"
)

// Replace substitutes term a for every occurrence of the variable x in
// the formula, rebuilding through the constructors so the result stays
// normalized and interned. Substitution does not descend under a
// quantifier that rebinds x.
func Replace(f syntax.Formula, x *syntax.Variable, a syntax.Term) (syntax.Formula, error) {
	switch node := f.(type) {
	case *syntax.Predicate:
		operands := node.Operands()
		replaced := make([]syntax.Term, len(operands))
		for i, op := range operands {
			t, err := replaceTerm(op, x, a)
			if err != nil {
				return nil, err
			}
			replaced[i] = t
		}
		return syntax.NewPredicate(node.Name(), replaced...)

	case *syntax.UnaryOp:
		if node.Kind() != syntax.KindNot {
			return f, nil
		}
		inner, err := Replace(node.Argument(), x, a)
		if err != nil {
			return nil, err
		}
		return syntax.Not(inner)

	case *syntax.BinaryOp:
		ctor, ok := booleanCtor(node.Kind())
		if !ok {
			return f, nil
		}
		operands := node.Operands()
		replaced := make([]syntax.Formula, len(operands))
		for i, op := range operands {
			g, err := Replace(op, x, a)
			if err != nil {
				return nil, err
			}
			replaced[i] = g
		}
		return ctor(replaced...)

	case *syntax.Quantifier:
		if syntax.TermEqual(node.Variable(), x) {
			return f, nil
		}
		body, err := Replace(node.Body(), x, a)
		if err != nil {
			return nil, err
		}
		if node.Kind() == syntax.KindForAll {
			return syntax.ForAll(node.Variable(), body)
		}
		return syntax.Exists(node.Variable(), body)
	}
	return f, nil
}

func booleanCtor(kind syntax.BinaryKind) (func(...syntax.Formula) (syntax.Formula, error), bool) {
	switch kind {
	case syntax.KindAnd:
		return syntax.And, true
	case syntax.KindOr:
		return syntax.Or, true
	case syntax.KindImplies:
		return syntax.Implies, true
	case syntax.KindEquivalence:
		return syntax.Equivalence, true
	}
	return nil, false
}

func replaceTerm(t syntax.Term, x *syntax.Variable, a syntax.Term) (syntax.Term, error) {
	if syntax.TermEqual(t, x) {
		return a, nil
	}
	fn, ok := t.(*syntax.Function)
	if !ok {
		return t, nil
	}
	operands := fn.Operands()
	replaced := make([]syntax.Term, len(operands))
	for i, op := range operands {
		r, err := replaceTerm(op, x, a)
		if err != nil {
			return nil, err
		}
		replaced[i] = r
	}
	return syntax.NewFunction(fn.Name(), replaced...)
}

// occursInFormula reports whether the term appears anywhere in the
// formula, bound occurrences included.
func occursInFormula(t syntax.Term, f syntax.Formula) bool {
	switch node := f.(type) {
	case *syntax.Predicate:
		for _, op := range node.Operands() {
			if occursInTerm(t, op) {
				return true
			}
		}
	case *syntax.UnaryOp:
		return occursInFormula(t, node.Argument())
	case *syntax.BinaryOp:
		for _, op := range node.Operands() {
			if occursInFormula(t, op) {
				return true
			}
		}
	case *syntax.Quantifier:
		return occursInTerm(t, node.Variable()) || occursInFormula(t, node.Body())
	case *syntax.Temporal:
		return occursInFormula(t, node.Regex()) || occursInFormula(t, node.Tail())
	}
	return false
}

func occursInTerm(t, in syntax.Term) bool {
	if syntax.TermEqual(t, in) {
		return true
	}
	fn, ok := in.(*syntax.Function)
	if !ok {
		return false
	}
	for _, op := range fn.Operands() {
		if occursInTerm(t, op) {
			return true
		}
	}
	return false
}

// diffPair records one mismatch site between two trees. Each side is a
// syntax.Formula or a syntax.Term.
type diffPair struct {
	left  any
	right any
}

// findDiff structurally compares two nodes and collects the sites where
// they disagree. When the nodes share a shape the walk descends into
// their children; otherwise the whole pair is one mismatch.
func findDiff(x, y any) []diffPair {
	if nodeEqual(x, y) {
		return nil
	}
	switch a := x.(type) {
	case *syntax.UnaryOp:
		if b, ok := y.(*syntax.UnaryOp); ok && a.Kind() == b.Kind() {
			return findDiff(a.Argument(), b.Argument())
		}
	case *syntax.BinaryOp:
		if b, ok := y.(*syntax.BinaryOp); ok && a.Kind() == b.Kind() && a.Arity() == b.Arity() {
			var pairs []diffPair
			for i := 0; i < a.Arity(); i++ {
				pairs = append(pairs, findDiff(a.Operand(i), b.Operand(i))...)
			}
			return pairs
		}
	case *syntax.Predicate:
		if b, ok := y.(*syntax.Predicate); ok && a.Name() == b.Name() && a.Arity() == b.Arity() {
			var pairs []diffPair
			aOps, bOps := a.Operands(), b.Operands()
			for i := range aOps {
				pairs = append(pairs, findDiff(aOps[i], bOps[i])...)
			}
			return pairs
		}
	case *syntax.Quantifier:
		if b, ok := y.(*syntax.Quantifier); ok && a.Kind() == b.Kind() && syntax.TermEqual(a.Variable(), b.Variable()) {
			return findDiff(a.Body(), b.Body())
		}
	case *syntax.Function:
		if b, ok := y.(*syntax.Function); ok && a.Name() == b.Name() && len(a.Operands()) == len(b.Operands()) {
			var pairs []diffPair
			aOps, bOps := a.Operands(), b.Operands()
			for i := range aOps {
				pairs = append(pairs, findDiff(aOps[i], bOps[i])...)
			}
			return pairs
		}
	}
	return []diffPair{{left: x, right: y}}
}

func nodeEqual(x, y any) bool {
	if fx, ok := x.(syntax.Formula); ok {
		fy, ok := y.(syntax.Formula)
		return ok && syntax.Equal(fx, fy)
	}
	if tx, ok := x.(syntax.Term); ok {
		ty, ok := y.(syntax.Term)
		return ok && syntax.TermEqual(tx, ty)
	}
	return false
}
