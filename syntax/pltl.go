package syntax

// Past linear temporal logic operators; the past-facing duals of the
// LTL ones. All require PLTL operands.

// Before builds the before (yesterday) of a PLTL formula.
func Before(f Formula) (Formula, error) { return NewUnary(KindBefore, f) }

// Once builds the once of a PLTL formula.
func Once(f Formula) (Formula, error) { return NewUnary(KindOnce, f) }

// Historically builds the historically of a PLTL formula.
func Historically(f Formula) (Formula, error) { return NewUnary(KindHistorically, f) }

// Since builds the since of two or more PLTL formulas.
func Since(operands ...Formula) (Formula, error) { return NewBinary(KindSince, operands...) }

// Start is the derived "first instant" constant: !Y(true).
func Start() Formula {
	return Must(Not(Must(Before(True(PLTL)))))
}
