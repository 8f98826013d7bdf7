package syntax

import (
	"regexp"
	"slices"
)

// Must unwraps a constructor result, panicking on error. Use only for
// formulas whose validity is fixed at compile time.
func Must(f Formula, err error) Formula {
	if err != nil {
		panic(err)
	}
	return f
}

// True returns the canonical tautology of a formalism.
func True(l Logic) Formula {
	return MakeBoolean(true, l)
}

// False returns the canonical contradiction of a formalism.
func False(l Logic) Formula {
	return MakeBoolean(false, l)
}

// MakeBoolean returns the canonical True or False instance of a
// formalism. There are no construction invariants beyond the tag.
func MakeBoolean(value bool, l Logic) Formula {
	return intern(&BoolConst{
		logic: l,
		value: value,
		key:   newBoolConstKey(value, l),
	})
}

// atomNameRE is the symbol grammar: lowercase or underscore start,
// alphanumeric/underscore/hyphen body.
var atomNameRE = regexp.MustCompile(`^[a-z_][a-zA-Z0-9_-]*$`)

func validSymbol(name string) bool {
	if atomNameRE.MatchString(name) {
		return true
	}
	// A double-quoted literal may carry arbitrary characters.
	return len(name) >= 2 && name[0] == '"' && name[len(name)-1] == '"'
}

// Atom builds an atomic proposition of a formalism. The name must match
// the symbol grammar or be a double-quoted literal.
func Atom(name string, l Logic) (Formula, error) {
	switch l {
	case PL, LTL, PLTL:
	default:
		return nil, invariantErrorf(CodeForbiddenLogic, "Atom", "formalism %s has no atomic propositions", l)
	}
	if !validSymbol(name) {
		return nil, invariantErrorf(CodeBadSymbol, "Atom", "name %q does not match the symbol grammar", name)
	}
	return intern(&Atomic{
		logic: l,
		name:  name,
		key:   newAtomicKey(name, l),
	}), nil
}

// PropTrue builds the propositional true of a temporal formalism
// (LTL or PLTL).
func PropTrue(l Logic) (Formula, error) {
	if l != LTL && l != PLTL {
		return nil, invariantErrorf(CodeForbiddenLogic, "PropTrue", "formalism %s has no propositional constants", l)
	}
	return propBool(true, l), nil
}

// PropFalse builds the propositional false of a temporal formalism
// (LTL or PLTL).
func PropFalse(l Logic) (Formula, error) {
	if l != LTL && l != PLTL {
		return nil, invariantErrorf(CodeForbiddenLogic, "PropFalse", "formalism %s has no propositional constants", l)
	}
	return propBool(false, l), nil
}

func propBool(value bool, l Logic) Formula {
	return intern(&PropBool{
		logic: l,
		value: value,
		key:   newPropBoolKey(value, l),
	})
}

// Not builds the negation of a formula. A negation, a boolean constant,
// or a propositional constant short-circuits to its dual instead of
// nesting. Forbidden for the regular-expression formalism.
func Not(f Formula) (Formula, error) {
	if f == nil {
		return nil, invariantErrorf(CodeNotAFormula, "Not", "nil argument")
	}
	switch arg := f.(type) {
	case *UnaryOp:
		if arg.kind == KindNot {
			return arg.arg, nil
		}
	case *BoolConst:
		return MakeBoolean(!arg.value, arg.logic), nil
	case *PropBool:
		return propBool(!arg.value, arg.logic), nil
	}
	if f.Logic() == RE {
		return nil, invariantErrorf(CodeForbiddenLogic, "Not", "regular expressions cannot be negated")
	}
	return intern(&UnaryOp{
		kind:  KindNot,
		logic: f.Logic(),
		arg:   f,
		key:   newUnaryKey(KindNot, f.Logic(), f),
	}), nil
}

// And builds the conjunction of one or more formulas, applying the full
// monotone-operator normalization: associative flattening,
// deduplication, identity stripping (true), absorption (false or a
// complementary pair), and single-operand elision.
func And(operands ...Formula) (Formula, error) {
	return monotoneOp(KindAnd, "And", false, operands)
}

// Or builds the disjunction of one or more formulas; the dual
// normalization of And (identity false, absorbing true).
func Or(operands ...Formula) (Formula, error) {
	return monotoneOp(KindOr, "Or", true, operands)
}

// monotoneOp is the shared construction pipeline of the monotone binary
// operators. absorbing is the truth value of the operator's absorbing
// element (false for And, true for Or); the identity element is its
// dual.
func monotoneOp(kind BinaryKind, op string, absorbing bool, operands []Formula) (Formula, error) {
	if len(operands) == 0 {
		return nil, invariantErrorf(CodeWrongArity, op, "expected at least 1 operand")
	}
	logic, err := sharedBooleanLogic(op, operands)
	if err != nil {
		return nil, err
	}

	// Associativity: splice nested same-kind operands into the parent
	// list, depth-first, preserving first-seen order.
	flat := make([]Formula, 0, len(operands))
	stack := slices.Clone(operands)
	slices.Reverse(stack)
	for len(stack) > 0 {
		el := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b, ok := el.(*BinaryOp); ok && b.kind == kind {
			nested := slices.Clone(b.operands)
			slices.Reverse(nested)
			stack = append(stack, nested...)
			continue
		}
		flat = append(flat, el)
	}

	// Idempotence, identity stripping, absorption.
	seen := make(map[string]struct{}, len(flat))
	kept := make([]Formula, 0, len(flat))
	for _, el := range flat {
		if bc, ok := el.(*BoolConst); ok {
			if bc.value == absorbing {
				return MakeBoolean(absorbing, logic), nil
			}
			continue
		}
		if _, dup := seen[el.Key()]; dup {
			continue
		}
		seen[el.Key()] = struct{}{}
		kept = append(kept, el)
	}

	// An operand alongside its own negation absorbs as well.
	for _, el := range kept {
		if n, ok := el.(*UnaryOp); ok && n.kind == KindNot {
			if _, present := seen[n.arg.Key()]; present {
				return MakeBoolean(absorbing, logic), nil
			}
		}
	}

	switch len(kept) {
	case 0:
		return MakeBoolean(!absorbing, logic), nil
	case 1:
		return kept[0], nil
	}
	return intern(&BinaryOp{
		kind:     kind,
		logic:    logic,
		operands: kept,
		key:      newBinaryKey(kind, logic, kept),
	}), nil
}

// Implies builds a right-associative implication chain. A False operand
// anywhere before the last collapses the chain to True (ex falso);
// duplicate operands are removed preserving order; a single remaining
// operand is returned unwrapped.
func Implies(operands ...Formula) (Formula, error) {
	if len(operands) == 0 {
		return nil, invariantErrorf(CodeWrongArity, "Implies", "cannot accept zero arguments")
	}
	logic, err := sharedBooleanLogic("Implies", operands)
	if err != nil {
		return nil, err
	}
	for _, el := range operands[:len(operands)-1] {
		if bc, ok := el.(*BoolConst); ok && !bc.value {
			return True(logic), nil
		}
	}
	kept := dedupe(operands)
	if len(kept) == 1 {
		return kept[0], nil
	}
	return intern(&BinaryOp{
		kind:     KindImplies,
		logic:    logic,
		operands: kept,
		key:      newBinaryKey(KindImplies, logic, kept),
	}), nil
}

// Equivalence builds a pairwise equivalence over its operand set.
// Duplicates are removed; a single remaining operand is returned
// unwrapped. Identity is order-blind.
func Equivalence(operands ...Formula) (Formula, error) {
	if len(operands) == 0 {
		return nil, invariantErrorf(CodeWrongArity, "Equivalence", "cannot accept zero arguments")
	}
	logic, err := sharedBooleanLogic("Equivalence", operands)
	if err != nil {
		return nil, err
	}
	kept := dedupe(operands)
	if len(kept) == 1 {
		return kept[0], nil
	}
	return intern(&BinaryOp{
		kind:     KindEquivalence,
		logic:    logic,
		operands: kept,
		key:      newBinaryKey(KindEquivalence, logic, kept),
	}), nil
}

// dedupe removes structural duplicates preserving first-seen order.
func dedupe(operands []Formula) []Formula {
	seen := make(map[string]struct{}, len(operands))
	kept := make([]Formula, 0, len(operands))
	for _, el := range operands {
		if _, dup := seen[el.Key()]; dup {
			continue
		}
		seen[el.Key()] = struct{}{}
		kept = append(kept, el)
	}
	return kept
}

// sharedBooleanLogic derives the formalism of a boolean-operator node
// from its operands: boolean constants are disregarded, every other
// operand must share one formalism, and the regular-expression
// formalism is forbidden.
func sharedBooleanLogic(op string, operands []Formula) (Logic, error) {
	derived := Logic("")
	for _, el := range operands {
		if el == nil {
			return "", invariantErrorf(CodeNotAFormula, op, "nil operand")
		}
		if _, ok := el.(*BoolConst); ok {
			continue
		}
		if derived == "" {
			derived = el.Logic()
			continue
		}
		if el.Logic() != derived {
			return "", invariantErrorf(CodeMixedLogic, op, "operands do not belong to the same formalism (%s vs %s)", derived, el.Logic())
		}
	}
	if derived == "" {
		// All operands are boolean constants; keep their tag.
		derived = operands[0].Logic()
	}
	if derived == RE {
		return "", invariantErrorf(CodeForbiddenLogic, op, "regular expressions are not boolean-composable")
	}
	return derived, nil
}

// NewUnary builds a unary node by discriminant, dispatching Not to its
// normalizing constructor and the rest through the formalism table.
func NewUnary(kind UnaryKind, arg Formula) (Formula, error) {
	if kind == KindNot {
		return Not(arg)
	}
	spec, ok := unarySpecs[kind]
	if !ok {
		return nil, &UnsupportedError{Op: "NewUnary(" + string(kind) + ")"}
	}
	if arg == nil {
		return nil, invariantErrorf(CodeNotAFormula, string(kind), "nil argument")
	}
	if arg.Logic() != spec.operand {
		return nil, invariantErrorf(CodeForbiddenLogic, string(kind), "expected a %s argument, got %s", spec.operand, arg.Logic())
	}
	return intern(&UnaryOp{
		kind:  kind,
		logic: spec.result,
		arg:   arg,
		key:   newUnaryKey(kind, spec.result, arg),
	}), nil
}

// NewBinary builds a binary node by discriminant. Boolean kinds go
// through their normalizing constructors; the fixed-formalism kinds
// require at least two operands of the table's formalism and perform no
// simplification.
func NewBinary(kind BinaryKind, operands ...Formula) (Formula, error) {
	switch kind {
	case KindAnd:
		return And(operands...)
	case KindOr:
		return Or(operands...)
	case KindImplies:
		return Implies(operands...)
	case KindEquivalence:
		return Equivalence(operands...)
	}
	spec, ok := binarySpecs[kind]
	if !ok {
		return nil, &UnsupportedError{Op: "NewBinary(" + string(kind) + ")"}
	}
	if len(operands) < 2 {
		return nil, invariantErrorf(CodeWrongArity, string(kind), "expected at least 2 operands, found %d", len(operands))
	}
	for _, el := range operands {
		if el == nil {
			return nil, invariantErrorf(CodeNotAFormula, string(kind), "nil operand")
		}
		if el.Logic() != spec.operand {
			return nil, invariantErrorf(CodeForbiddenLogic, string(kind), "expected %s operands, got %s", spec.operand, el.Logic())
		}
	}
	ops := slices.Clone(operands)
	return intern(&BinaryOp{
		kind:     kind,
		logic:    spec.result,
		operands: ops,
		key:      newBinaryKey(kind, spec.result, ops),
	}), nil
}
