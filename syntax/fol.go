package syntax

import "slices"

// First-order logic: a separate Term algebra (variables, constants,
// functions) used inside Predicate formulas and quantifiers.
//
// Term equality is by (kind, name): a Variable equals any Variable with
// the same name, likewise Constant and Function (over name and
// operands). Identity-based equality would make canonical keys depend
// on allocation order and break interning of predicates, so it is not
// used anywhere; substitution and occurrence checks follow the same
// rule.

// Term is a first-order term. Terms are not formulas and are not
// interned; they are cheap leaf values compared by canonical term key.
type Term interface {
	// Name returns the term's symbol name.
	Name() string

	// TermKey returns the canonical structural key of the term.
	TermKey() string

	isTerm() // sealed
}

// TermEqual reports structural equality between two terms.
func TermEqual(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.TermKey() == b.TermKey()
}

// Variable is a first-order variable.
type Variable struct {
	name string
}

// NewVariable creates a variable with the given name.
func NewVariable(name string) *Variable {
	return &Variable{name: name}
}

func (v *Variable) Name() string { return v.name }

func (v *Variable) TermKey() string {
	return string(marshalCanonical(keyObject{
		"kind": keyString("variable"),
		"name": keyString(v.name),
	}))
}

func (*Variable) isTerm() {}

// Constant is a first-order constant, optionally carrying a bound
// value. The value is a convenience payload only: identity is the
// (kind, name) pair.
type Constant struct {
	name  string
	value any
}

// NewConstant creates a constant with the given name and optional
// bound value (nil for none).
func NewConstant(name string, value any) *Constant {
	return &Constant{name: name, value: value}
}

func (c *Constant) Name() string { return c.name }

// Value returns the bound value, or nil.
func (c *Constant) Value() any { return c.value }

func (c *Constant) TermKey() string {
	return string(marshalCanonical(keyObject{
		"kind": keyString("constant"),
		"name": keyString(c.name),
	}))
}

func (*Constant) isTerm() {}

// Function is a first-order function application over terms.
type Function struct {
	name     string
	operands []Term
}

// NewFunction creates a function term. The operand list fixes the
// function's arity for later Apply calls.
func NewFunction(name string, operands ...Term) (*Function, error) {
	for _, t := range operands {
		if t == nil {
			return nil, invariantErrorf(CodeNotATerm, "Function", "nil operand")
		}
	}
	return &Function{name: name, operands: slices.Clone(operands)}, nil
}

func (f *Function) Name() string { return f.name }

// Operands returns a copy of the operand list.
func (f *Function) Operands() []Term { return slices.Clone(f.operands) }

// Apply returns a new function term with the same name and the given
// operands substituted. The arity must match.
func (f *Function) Apply(operands ...Term) (*Function, error) {
	if len(operands) != len(f.operands) {
		return nil, invariantErrorf(CodeWrongArity, "Function", "%s: expected %d operands, got %d", f.name, len(f.operands), len(operands))
	}
	return NewFunction(f.name, operands...)
}

func (f *Function) TermKey() string {
	ops := make(keyArray, 0, len(f.operands))
	for _, t := range f.operands {
		ops = append(ops, keyRaw(t.TermKey()))
	}
	return string(marshalCanonical(keyObject{
		"kind":     keyString("function"),
		"name":     keyString(f.name),
		"operands": ops,
	}))
}

func (*Function) isTerm() {}

// Predicate is a first-order atomic formula: a named relation over an
// ordered list of terms.
type Predicate struct {
	memo
	name     string
	operands []Term
	key      string
}

// NewPredicate builds an interned predicate formula over the given
// terms. The operand list fixes the predicate's arity for later Apply
// calls.
func NewPredicate(name string, operands ...Term) (*Predicate, error) {
	for _, t := range operands {
		if t == nil {
			return nil, invariantErrorf(CodeNotATerm, "Predicate", "nil operand")
		}
	}
	ops := slices.Clone(operands)
	termKeys := make(keyArray, 0, len(ops))
	for _, t := range ops {
		termKeys = append(termKeys, keyRaw(t.TermKey()))
	}
	key := string(marshalCanonical(keyObject{
		"kind":     keyString("predicate"),
		"logic":    keyString(string(FOL)),
		"name":     keyString(name),
		"operands": termKeys,
	}))
	return intern(&Predicate{name: name, operands: ops, key: key}).(*Predicate), nil
}

func (p *Predicate) Name() string { return p.name }

// Operands returns a copy of the term list.
func (p *Predicate) Operands() []Term { return slices.Clone(p.operands) }

// Arity returns the number of terms.
func (p *Predicate) Arity() int { return len(p.operands) }

// Apply returns a new predicate sharing the name but with the given
// terms substituted. The arity must match. This is the mechanism that
// materializes substitution results.
func (p *Predicate) Apply(operands ...Term) (*Predicate, error) {
	if len(operands) != len(p.operands) {
		return nil, invariantErrorf(CodeWrongArity, "Predicate", "%s: expected %d operands, got %d", p.name, len(p.operands), len(operands))
	}
	return NewPredicate(p.name, operands...)
}

func (p *Predicate) Logic() Logic        { return FOL }
func (p *Predicate) Key() string         { return p.key }
func (p *Predicate) Fingerprint() string { return p.fingerprint(domainFormula, p.key) }
func (*Predicate) isFormula()            {}

// QuantifierKind discriminates the first-order quantifiers.
type QuantifierKind string

const (
	KindForAll QuantifierKind = "forall"
	KindExists QuantifierKind = "exists"
)

// Quantifier binds a variable over a first-order body. It is stored as
// a 2-operand binary-op-shaped node (variable, body) for structural
// uniformity.
//
// No alpha-renaming is performed: forall x. P(x) and forall y. P(y) are
// distinct formulas. This is a documented simplification, not an
// oversight.
type Quantifier struct {
	memo
	kind     QuantifierKind
	variable *Variable
	body     Formula
	key      string
}

// ForAll builds a universal quantification over a first-order body.
func ForAll(v *Variable, body Formula) (Formula, error) {
	return quantify(KindForAll, v, body)
}

// Exists builds an existential quantification over a first-order body.
func Exists(v *Variable, body Formula) (Formula, error) {
	return quantify(KindExists, v, body)
}

func quantify(kind QuantifierKind, v *Variable, body Formula) (Formula, error) {
	if v == nil {
		return nil, invariantErrorf(CodeNotATerm, string(kind), "nil bound variable")
	}
	if body == nil {
		return nil, invariantErrorf(CodeNotAFormula, string(kind), "nil body")
	}
	if body.Logic() != FOL {
		return nil, invariantErrorf(CodeForbiddenLogic, string(kind), "expected a %s body, got %s", FOL, body.Logic())
	}
	key := string(marshalCanonical(keyObject{
		"body":  keyRaw(body.Key()),
		"kind":  keyString(string(kind)),
		"logic": keyString(string(FOL)),
		"var":   keyString(v.Name()),
	}))
	return intern(&Quantifier{kind: kind, variable: v, body: body, key: key}), nil
}

func (q *Quantifier) Kind() QuantifierKind { return q.kind }
func (q *Quantifier) Variable() *Variable  { return q.variable }
func (q *Quantifier) Body() Formula        { return q.body }
func (q *Quantifier) Logic() Logic         { return FOL }
func (q *Quantifier) Key() string          { return q.key }
func (q *Quantifier) Fingerprint() string  { return q.fingerprint(domainFormula, q.key) }
func (*Quantifier) isFormula()             {}
