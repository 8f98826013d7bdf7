package syntax

import "slices"

// Formula is any AST node. Implementations are immutable after
// construction and are only built through the package's smart
// constructors, which route through the intern table: two formulas with
// the same Key and Logic are the identical instance.
type Formula interface {
	// Logic returns the formalism the formula belongs to.
	Logic() Logic

	// Key returns the canonical structural key. Two formulas are
	// structurally equal exactly when their keys are equal.
	Key() string

	// Fingerprint returns the memoized, domain-separated SHA-256 hash
	// of the canonical key.
	Fingerprint() string

	isFormula() // sealed
}

// Equal reports structural equality between two formulas. After
// interning this coincides with pointer identity, but Equal stays
// correct across intern-table resets.
func Equal(a, b Formula) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Key() == b.Key()
}

// UnaryKind discriminates the concrete operator of a UnaryOp.
type UnaryKind string

const (
	KindNot          UnaryKind = "not"
	KindNext         UnaryKind = "next"
	KindWeakNext     UnaryKind = "weak_next"
	KindEventually   UnaryKind = "eventually"
	KindAlways       UnaryKind = "always"
	KindOnce         UnaryKind = "once"
	KindHistorically UnaryKind = "historically"
	KindBefore       UnaryKind = "before"
	KindStar         UnaryKind = "star"
	KindTest         UnaryKind = "test"
	KindProp         UnaryKind = "prop"
)

// BinaryKind discriminates the concrete operator of a BinaryOp.
type BinaryKind string

const (
	KindAnd           BinaryKind = "and"
	KindOr            BinaryKind = "or"
	KindImplies       BinaryKind = "implies"
	KindEquivalence   BinaryKind = "equivalence"
	KindUntil         BinaryKind = "until"
	KindRelease       BinaryKind = "release"
	KindWeakUntil     BinaryKind = "weak_until"
	KindStrongRelease BinaryKind = "strong_release"
	KindSince         BinaryKind = "since"
	KindSeq           BinaryKind = "seq"
	KindUnion         BinaryKind = "union"
)

// unarySpec is the construction rule for a non-Not unary kind: the
// required operand formalism and the resulting formalism. Formalism
// checks are table lookups rather than per-kind code.
type unarySpec struct {
	operand Logic
	result  Logic
}

var unarySpecs = map[UnaryKind]unarySpec{
	KindNext:         {operand: LTL, result: LTL},
	KindWeakNext:     {operand: LTL, result: LTL},
	KindEventually:   {operand: LTL, result: LTL},
	KindAlways:       {operand: LTL, result: LTL},
	KindOnce:         {operand: PLTL, result: PLTL},
	KindHistorically: {operand: PLTL, result: PLTL},
	KindBefore:       {operand: PLTL, result: PLTL},
	KindStar:         {operand: RE, result: RE},
	KindTest:         {operand: LDL, result: RE},
	KindProp:         {operand: PL, result: RE},
}

// binarySpec is the construction rule for a fixed-formalism binary kind.
type binarySpec struct {
	operand     Logic
	result      Logic
	commutative bool
}

var binarySpecs = map[BinaryKind]binarySpec{
	KindUntil:         {operand: LTL, result: LTL},
	KindRelease:       {operand: LTL, result: LTL},
	KindWeakUntil:     {operand: LTL, result: LTL},
	KindStrongRelease: {operand: LTL, result: LTL},
	KindSince:         {operand: PLTL, result: PLTL},
	KindSeq:           {operand: RE, result: RE},
	KindUnion:         {operand: RE, result: RE, commutative: true},
}

// BoolConst is the canonical True or False of one formalism. Equality
// ignores everything but the truth value and the formalism tag.
type BoolConst struct {
	memo
	logic Logic
	value bool
	key   string
}

func (f *BoolConst) Logic() Logic        { return f.logic }
func (f *BoolConst) Value() bool         { return f.value }
func (f *BoolConst) Key() string         { return f.key }
func (f *BoolConst) Fingerprint() string { return f.fingerprint(domainFormula, f.key) }
func (*BoolConst) isFormula()            {}

// PropBool represents the propositional true/false of the temporal
// formalisms: "read any symbol at least once" (true) or "read no
// symbol" (false). It is distinct from the plain boolean constants tt
// and ff.
type PropBool struct {
	memo
	logic Logic
	value bool
	key   string
}

func (f *PropBool) Logic() Logic        { return f.logic }
func (f *PropBool) Value() bool         { return f.value }
func (f *PropBool) Key() string         { return f.key }
func (f *PropBool) Fingerprint() string { return f.fingerprint(domainFormula, f.key) }
func (*PropBool) isFormula()            {}

// Atomic is a propositional symbol of one formalism.
type Atomic struct {
	memo
	logic Logic
	name  string
	key   string
}

func (f *Atomic) Logic() Logic        { return f.logic }
func (f *Atomic) Name() string        { return f.name }
func (f *Atomic) Key() string         { return f.key }
func (f *Atomic) Fingerprint() string { return f.fingerprint(domainFormula, f.key) }
func (*Atomic) isFormula()            {}

// UnaryOp holds one sub-formula under a unary operator.
type UnaryOp struct {
	memo
	kind  UnaryKind
	logic Logic
	arg   Formula
	key   string
}

func (f *UnaryOp) Kind() UnaryKind     { return f.kind }
func (f *UnaryOp) Logic() Logic        { return f.logic }
func (f *UnaryOp) Argument() Formula   { return f.arg }
func (f *UnaryOp) Key() string         { return f.key }
func (f *UnaryOp) Fingerprint() string { return f.fingerprint(domainFormula, f.key) }
func (*UnaryOp) isFormula()            {}

// BinaryOp holds an ordered sequence of two or more operands. For
// commutative kinds (And, Or, Equivalence, Union) the stored order is
// the first-seen construction order, but the canonical key is computed
// over the operand set, so order never affects identity.
type BinaryOp struct {
	memo
	kind     BinaryKind
	logic    Logic
	operands []Formula
	key      string
}

func (f *BinaryOp) Kind() BinaryKind { return f.kind }
func (f *BinaryOp) Logic() Logic     { return f.logic }

// Operands returns a copy of the operand sequence.
func (f *BinaryOp) Operands() []Formula { return slices.Clone(f.operands) }

// Arity returns the number of operands.
func (f *BinaryOp) Arity() int { return len(f.operands) }

// Operand returns the i-th operand.
func (f *BinaryOp) Operand(i int) Formula { return f.operands[i] }

func (f *BinaryOp) Key() string         { return f.key }
func (f *BinaryOp) Fingerprint() string { return f.fingerprint(domainFormula, f.key) }
func (*BinaryOp) isFormula()            {}

// Commutative reports whether the operator's identity is order-blind.
func (f *BinaryOp) Commutative() bool { return commutativeKinds[f.kind] }

var commutativeKinds = map[BinaryKind]bool{
	KindAnd:         true,
	KindOr:          true,
	KindEquivalence: true,
	KindUnion:       true,
}

func newBoolConstKey(value bool, logic Logic) string {
	kind := "false"
	if value {
		kind = "true"
	}
	return string(marshalCanonical(keyObject{
		"kind":  keyString(kind),
		"logic": keyString(string(logic)),
	}))
}

func newPropBoolKey(value bool, logic Logic) string {
	kind := "prop_false"
	if value {
		kind = "prop_true"
	}
	return string(marshalCanonical(keyObject{
		"kind":  keyString(kind),
		"logic": keyString(string(logic)),
	}))
}

func newAtomicKey(name string, logic Logic) string {
	return string(marshalCanonical(keyObject{
		"kind":  keyString("atom"),
		"logic": keyString(string(logic)),
		"name":  keyString(name),
	}))
}

func newUnaryKey(kind UnaryKind, logic Logic, arg Formula) string {
	return string(marshalCanonical(keyObject{
		"arg":   keyRaw(arg.Key()),
		"kind":  keyString(string(kind)),
		"logic": keyString(string(logic)),
	}))
}

func newBinaryKey(kind BinaryKind, logic Logic, operands []Formula) string {
	var ops keyArray
	if commutativeKinds[kind] {
		ops = sortedRawKeys(operands)
	} else {
		ops = orderedRawKeys(operands)
	}
	return string(marshalCanonical(keyObject{
		"kind":     keyString(string(kind)),
		"logic":    keyString(string(logic)),
		"operands": ops,
	}))
}
