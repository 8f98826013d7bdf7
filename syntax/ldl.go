package syntax

// Linear dynamic logic: formulas are built from regular expressions
// over propositional formulas (the RE sublanguage) and LDL tail
// formulas.

// TemporalKind discriminates the LDL modalities.
type TemporalKind string

const (
	KindDiamond TemporalKind = "diamond"
	KindBox     TemporalKind = "box"
)

// Temporal is an LDL modality: a regular expression paired with a tail
// formula.
type Temporal struct {
	memo
	kind  TemporalKind
	regex Formula
	tail  Formula
	key   string
}

func (f *Temporal) Kind() TemporalKind  { return f.kind }
func (f *Temporal) Logic() Logic        { return LDL }
func (f *Temporal) Regex() Formula      { return f.regex }
func (f *Temporal) Tail() Formula       { return f.tail }
func (f *Temporal) Key() string         { return f.key }
func (f *Temporal) Fingerprint() string { return f.fingerprint(domainFormula, f.key) }
func (*Temporal) isFormula()            {}

// Diamond builds <regex>tail: some trace prefix matching regex leads to
// a point where tail holds.
func Diamond(regex, tail Formula) (Formula, error) {
	return newTemporal(KindDiamond, regex, tail)
}

// Box builds [regex]tail: every trace prefix matching regex leads to a
// point where tail holds.
func Box(regex, tail Formula) (Formula, error) {
	return newTemporal(KindBox, regex, tail)
}

func newTemporal(kind TemporalKind, regex, tail Formula) (Formula, error) {
	if regex == nil || tail == nil {
		return nil, invariantErrorf(CodeNotAFormula, string(kind), "nil operand")
	}
	if regex.Logic() != RE {
		return nil, invariantErrorf(CodeForbiddenLogic, string(kind), "expected a regular expression, got %s", regex.Logic())
	}
	if tail.Logic() != LDL {
		return nil, invariantErrorf(CodeForbiddenLogic, string(kind), "expected an %s tail formula, got %s", LDL, tail.Logic())
	}
	key := string(marshalCanonical(keyObject{
		"kind":  keyString(string(kind)),
		"logic": keyString(string(LDL)),
		"regex": keyRaw(regex.Key()),
		"tail":  keyRaw(tail.Key()),
	}))
	return intern(&Temporal{kind: kind, regex: regex, tail: tail, key: key}), nil
}

// Seq builds the ordered sequence of two or more regular expressions.
func Seq(operands ...Formula) (Formula, error) { return NewBinary(KindSeq, operands...) }

// Union builds the union of two or more regular expressions. Identity
// is order-blind.
func Union(operands ...Formula) (Formula, error) { return NewBinary(KindUnion, operands...) }

// Star builds the Kleene star of a regular expression.
func Star(regex Formula) (Formula, error) { return NewUnary(KindStar, regex) }

// Test builds the test ?(f) of an LDL formula as a regular expression.
func Test(f Formula) (Formula, error) { return NewUnary(KindTest, f) }

// Prop lifts a propositional formula into the regular-expression
// sublanguage.
func Prop(f Formula) (Formula, error) { return NewUnary(KindProp, f) }

// End is the derived "trace has ended" constant: [true]ff.
func End() Formula {
	return Must(Box(Must(Prop(True(PL))), False(LDL)))
}

// LDLLast is the derived "last instant" constant: <true>End.
func LDLLast() Formula {
	return Must(Diamond(Must(Prop(True(PL))), End()))
}
