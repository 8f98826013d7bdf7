package deduction

import (
	"github.com/roach88/sequent/syntax"
)

// A validator checks one rule's side condition: the stated formula
// against the facts the row references. Formula comparisons are
// structural, via the interning keys, never textual.
type validator func(f syntax.Formula, args []fact) bool

var validators = map[Rule]validator{
	RuleAndE1:        checkAndE1,
	RuleAndE2:        checkAndE2,
	RuleAndI:         checkAndI,
	RuleAssumption:   checkAlways,
	RuleBotE:         checkBotE,
	RuleCopy:         checkCopy,
	RuleDNegE:        checkDNeg,
	RuleDNegI:        checkDNeg,
	RuleExistsE:      checkExistsE,
	RuleExistsI:      checkExistsI,
	RuleForAllE:      checkForAllE,
	RuleForAllI:      checkForAllI,
	RuleImplE:        checkImplE,
	RuleImplI:        checkImplI,
	RuleModusTollens: checkModusTollens,
	RuleNegE:         checkNegE,
	RuleNegI:         checkNegI,
	RuleOrE:          checkOrE,
	RuleOrI1:         checkOrI1,
	RuleOrI2:         checkOrI2,
	RulePremise:      checkAlways,
}

func checkAlways(syntax.Formula, []fact) bool { return true }

func isFalse(f syntax.Formula) bool {
	bc, ok := f.(*syntax.BoolConst)
	return ok && !bc.Value()
}

func asBinary(f syntax.Formula, kind syntax.BinaryKind) (*syntax.BinaryOp, bool) {
	op, ok := f.(*syntax.BinaryOp)
	if !ok || op.Kind() != kind {
		return nil, false
	}
	return op, true
}

func asNegation(f syntax.Formula) (syntax.Formula, bool) {
	op, ok := f.(*syntax.UnaryOp)
	if !ok || op.Kind() != syntax.KindNot {
		return nil, false
	}
	return op.Argument(), true
}

// impliesParts splits an implication into its antecedent and the rest
// of the chain. An n-ary implication is right-nested, so the tail of a
// chain longer than two operands is itself an implication.
func impliesParts(f syntax.Formula) (head, tail syntax.Formula, ok bool) {
	op, isImplies := asBinary(f, syntax.KindImplies)
	if !isImplies {
		return nil, nil, false
	}
	operands := op.Operands()
	head = operands[0]
	if len(operands) == 2 {
		return head, operands[1], true
	}
	rest, err := syntax.Implies(operands[1:]...)
	if err != nil {
		return nil, nil, false
	}
	return head, rest, true
}

func checkAndE1(f syntax.Formula, args []fact) bool {
	if len(args) < 1 || args[0].formula == nil {
		return false
	}
	conj, ok := asBinary(args[0].formula, syntax.KindAnd)
	return ok && syntax.Equal(f, conj.Operand(0))
}

func checkAndE2(f syntax.Formula, args []fact) bool {
	if len(args) < 1 || args[0].formula == nil {
		return false
	}
	conj, ok := asBinary(args[0].formula, syntax.KindAnd)
	return ok && conj.Arity() >= 2 && syntax.Equal(f, conj.Operand(1))
}

func checkAndI(f syntax.Formula, args []fact) bool {
	if len(args) < 2 || args[0].formula == nil || args[1].formula == nil {
		return false
	}
	conj, err := syntax.And(args[0].formula, args[1].formula)
	return err == nil && syntax.Equal(f, conj)
}

func checkBotE(f syntax.Formula, args []fact) bool {
	return len(args) >= 1 && args[0].formula != nil && isFalse(args[0].formula)
}

func checkCopy(f syntax.Formula, args []fact) bool {
	return len(args) >= 1 && syntax.Equal(f, args[0].formula)
}

// Double negation collapses at construction, so both directions of the
// rule reduce to an equality check between the row and its reference.
func checkDNeg(f syntax.Formula, args []fact) bool {
	return len(args) >= 1 && syntax.Equal(f, args[0].formula)
}

func checkImplE(f syntax.Formula, args []fact) bool {
	if len(args) < 2 || args[0].formula == nil || args[1].formula == nil {
		return false
	}
	head, tail, ok := impliesParts(args[1].formula)
	return ok && syntax.Equal(head, args[0].formula) && syntax.Equal(tail, f)
}

func checkImplI(f syntax.Formula, args []fact) bool {
	if len(args) < 1 || args[0].box == nil {
		return false
	}
	phi := firstFormula(args[0].box)
	psi := lastFormula(args[0].box)
	if phi == nil || psi == nil {
		return false
	}
	impl, err := syntax.Implies(phi, psi)
	return err == nil && syntax.Equal(f, impl)
}

func checkModusTollens(f syntax.Formula, args []fact) bool {
	if len(args) < 2 || args[0].formula == nil || args[1].formula == nil {
		return false
	}
	phi, okPhi := asNegation(f)
	psi, okPsi := asNegation(args[1].formula)
	if !okPhi || !okPsi {
		return false
	}
	head, tail, ok := impliesParts(args[0].formula)
	return ok && syntax.Equal(head, phi) && syntax.Equal(tail, psi)
}

func checkNegE(f syntax.Formula, args []fact) bool {
	if len(args) < 2 || args[0].formula == nil || args[1].formula == nil {
		return false
	}
	neg, err := syntax.Not(args[0].formula)
	return err == nil && syntax.Equal(neg, args[1].formula) && isFalse(f)
}

func checkNegI(f syntax.Formula, args []fact) bool {
	if len(args) < 1 || args[0].box == nil {
		return false
	}
	phi := firstFormula(args[0].box)
	psi := lastFormula(args[0].box)
	if phi == nil || psi == nil || !isFalse(psi) {
		return false
	}
	neg, err := syntax.Not(phi)
	return err == nil && syntax.Equal(f, neg)
}

func checkOrE(f syntax.Formula, args []fact) bool {
	if len(args) < 3 || args[0].formula == nil || args[1].box == nil || args[2].box == nil {
		return false
	}
	phi, chi1 := firstFormula(args[1].box), lastFormula(args[1].box)
	psi, chi2 := firstFormula(args[2].box), lastFormula(args[2].box)
	if phi == nil || chi1 == nil || psi == nil || chi2 == nil {
		return false
	}
	disj, err := syntax.Or(phi, psi)
	if err != nil {
		return false
	}
	return syntax.Equal(args[0].formula, disj) && syntax.Equal(f, chi1) && syntax.Equal(f, chi2)
}

func checkOrI1(f syntax.Formula, args []fact) bool {
	if len(args) < 1 || args[0].formula == nil {
		return false
	}
	disj, ok := asBinary(f, syntax.KindOr)
	return ok && syntax.Equal(disj.Operand(0), args[0].formula)
}

func checkOrI2(f syntax.Formula, args []fact) bool {
	if len(args) < 1 || args[0].formula == nil {
		return false
	}
	disj, ok := asBinary(f, syntax.KindOr)
	return ok && disj.Arity() >= 2 && syntax.Equal(disj.Operand(1), args[0].formula)
}

func checkForAllI(f syntax.Formula, args []fact) bool {
	q, ok := f.(*syntax.Quantifier)
	if !ok || q.Kind() != syntax.KindForAll {
		return false
	}
	if len(args) < 1 || args[0].box == nil {
		return false
	}
	a := boxWitness(args[0].box)
	body := lastFormula(args[0].box)
	if a == nil || body == nil {
		return false
	}
	substituted, err := Replace(q.Body(), q.Variable(), a)
	return err == nil && syntax.Equal(substituted, body)
}

func checkForAllE(f syntax.Formula, args []fact) bool {
	if len(args) < 1 || args[0].formula == nil {
		return false
	}
	q, ok := args[0].formula.(*syntax.Quantifier)
	if !ok || q.Kind() != syntax.KindForAll {
		return false
	}
	a, ok := substitutionSite(q, f)
	if !ok || a == nil {
		return false
	}
	substituted, err := Replace(q.Body(), q.Variable(), a)
	return err == nil && syntax.Equal(substituted, f)
}

func checkExistsI(f syntax.Formula, args []fact) bool {
	q, ok := f.(*syntax.Quantifier)
	if !ok || q.Kind() != syntax.KindExists {
		return false
	}
	if len(args) < 1 || args[0].formula == nil {
		return false
	}
	a, ok := substitutionSite(q, args[0].formula)
	if !ok {
		return false
	}
	if a == nil {
		// No differing site: the witness is the bound variable itself.
		a = q.Variable()
	}
	substituted, err := Replace(q.Body(), q.Variable(), a)
	return err == nil && syntax.Equal(substituted, args[0].formula)
}

func checkExistsE(f syntax.Formula, args []fact) bool {
	if len(args) < 2 || args[0].formula == nil || args[1].box == nil {
		return false
	}
	q, ok := args[0].formula.(*syntax.Quantifier)
	if !ok || q.Kind() != syntax.KindExists {
		return false
	}
	a := boxWitness(args[1].box)
	assumption := firstFormula(args[1].box)
	chi := lastFormula(args[1].box)
	if a == nil || assumption == nil || chi == nil {
		return false
	}
	substituted, err := Replace(q.Body(), q.Variable(), a)
	if err != nil || !syntax.Equal(substituted, assumption) {
		return false
	}
	// The witness must not escape the box through its conclusion.
	if occursInFormula(a, chi) {
		return false
	}
	return syntax.Equal(f, chi)
}

// substitutionSite diffs the quantifier body against a target formula
// and extracts the term substituted for the bound variable. It fails
// when the diff finds sites that are not the variable, or more than
// one distinct replacement term. A nil term with ok=true means the
// formulas already coincide.
func substitutionSite(q *syntax.Quantifier, target syntax.Formula) (syntax.Term, bool) {
	pairs := findDiff(q.Body(), target)
	var found syntax.Term
	for _, p := range pairs {
		left, ok := p.left.(syntax.Term)
		if !ok || !syntax.TermEqual(left, q.Variable()) {
			return nil, false
		}
		right, ok := p.right.(syntax.Term)
		if !ok {
			return nil, false
		}
		if found != nil && !syntax.TermEqual(found, right) {
			return nil, false
		}
		found = right
	}
	return found, true
}
