package syntax

// Linear temporal logic operators. All of them require LTL operands;
// anything else is a construction-time invariant violation.

// Next builds the strong next of an LTL formula.
func Next(f Formula) (Formula, error) { return NewUnary(KindNext, f) }

// WeakNext builds the weak next of an LTL formula.
func WeakNext(f Formula) (Formula, error) { return NewUnary(KindWeakNext, f) }

// Eventually builds the eventually of an LTL formula.
func Eventually(f Formula) (Formula, error) { return NewUnary(KindEventually, f) }

// Always builds the always of an LTL formula.
func Always(f Formula) (Formula, error) { return NewUnary(KindAlways, f) }

// Until builds the until of two or more LTL formulas.
func Until(operands ...Formula) (Formula, error) { return NewBinary(KindUntil, operands...) }

// Release builds the release of two or more LTL formulas.
func Release(operands ...Formula) (Formula, error) { return NewBinary(KindRelease, operands...) }

// WeakUntil builds the weak until of two or more LTL formulas.
func WeakUntil(operands ...Formula) (Formula, error) { return NewBinary(KindWeakUntil, operands...) }

// StrongRelease builds the strong release of two or more LTL formulas.
func StrongRelease(operands ...Formula) (Formula, error) {
	return NewBinary(KindStrongRelease, operands...)
}

// LTLLast is the derived "last instant" constant: G(false).
func LTLLast() Formula {
	return Must(Always(False(LTL)))
}
