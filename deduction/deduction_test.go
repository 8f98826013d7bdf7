package deduction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sequent/syntax"
)

func plAtom(t *testing.T, name string) syntax.Formula {
	t.Helper()
	f, err := syntax.Atom(name, syntax.PL)
	require.NoError(t, err)
	return f
}

func TestAndElimination(t *testing.T) {
	p := plAtom(t, "p")
	q := plAtom(t, "q")
	pq := syntax.Must(syntax.And(p, q))

	t.Run("first operand", func(t *testing.T) {
		proof := NewProof(
			Line(1, pq, RulePremise),
			Line(2, p, RuleAndE1, 1),
		)
		assert.True(t, Check(proof))
	})

	t.Run("first operand claimed wrongly", func(t *testing.T) {
		proof := NewProof(
			Line(1, pq, RulePremise),
			Line(2, q, RuleAndE1, 1),
		)
		assert.False(t, Check(proof))
	})

	t.Run("second operand", func(t *testing.T) {
		proof := NewProof(
			Line(1, pq, RulePremise),
			Line(2, q, RuleAndE2, 1),
		)
		assert.True(t, Check(proof))
	})
}

func TestAndIntroduction(t *testing.T) {
	p := plAtom(t, "p")
	q := plAtom(t, "q")
	pq := syntax.Must(syntax.And(p, q))

	proof := NewProof(
		Line(1, p, RulePremise),
		Line(2, q, RulePremise),
		Line(3, pq, RuleAndI, 1, 2),
	)
	assert.True(t, Check(proof))
}

func TestImplicationElimination(t *testing.T) {
	p := plAtom(t, "p")
	q := plAtom(t, "q")
	impl := syntax.Must(syntax.Implies(p, q))

	proof := NewProof(
		Line(1, p, RulePremise),
		Line(2, impl, RulePremise),
		Line(3, q, RuleImplE, 1, 2),
	)
	assert.True(t, Check(proof))

	wrong := NewProof(
		Line(1, q, RulePremise),
		Line(2, impl, RulePremise),
		Line(3, p, RuleImplE, 1, 2),
	)
	assert.False(t, Check(wrong))
}

func TestImplicationIntroduction(t *testing.T) {
	p := plAtom(t, "p")
	q := plAtom(t, "q")
	impl := syntax.Must(syntax.Implies(p, q))

	proof := NewProof(
		Line(1, impl, RulePremise),
		Box(2,
			Line(21, p, RuleAssumption),
			Line(22, q, RuleImplE, 21, 1),
		),
		Line(3, impl, RuleImplI, 2),
	)
	assert.True(t, Check(proof))
}

func TestModusTollens(t *testing.T) {
	p := plAtom(t, "p")
	q := plAtom(t, "q")
	impl := syntax.Must(syntax.Implies(p, q))
	notQ := syntax.Must(syntax.Not(q))
	notP := syntax.Must(syntax.Not(p))

	proof := NewProof(
		Line(1, impl, RulePremise),
		Line(2, notQ, RulePremise),
		Line(3, notP, RuleModusTollens, 1, 2),
	)
	assert.True(t, Check(proof))

	backwards := NewProof(
		Line(1, impl, RulePremise),
		Line(2, notP, RulePremise),
		Line(3, notQ, RuleModusTollens, 1, 2),
	)
	assert.False(t, Check(backwards))
}

func TestNegationRules(t *testing.T) {
	p := plAtom(t, "p")
	bot := syntax.False(syntax.PL)
	toBot := syntax.Must(syntax.Implies(p, bot))
	notP := syntax.Must(syntax.Not(p))

	t.Run("neg_i discharges an absurd box", func(t *testing.T) {
		proof := NewProof(
			Line(1, toBot, RulePremise),
			Box(2,
				Line(21, p, RuleAssumption),
				Line(22, bot, RuleImplE, 21, 1),
			),
			Line(3, notP, RuleNegI, 2),
		)
		assert.True(t, Check(proof))
	})

	t.Run("neg_e derives absurdity", func(t *testing.T) {
		proof := NewProof(
			Line(1, p, RulePremise),
			Line(2, notP, RulePremise),
			Line(3, bot, RuleNegE, 1, 2),
		)
		assert.True(t, Check(proof))
	})

	t.Run("bot_e proves anything", func(t *testing.T) {
		proof := NewProof(
			Line(1, bot, RulePremise),
			Line(2, plAtom(t, "q"), RuleBotE, 1),
		)
		assert.True(t, Check(proof))
	})
}

func TestOrRules(t *testing.T) {
	p := plAtom(t, "p")
	q := plAtom(t, "q")
	r := plAtom(t, "r")
	pq := syntax.Must(syntax.Or(p, q))
	pr := syntax.Must(syntax.Implies(p, r))
	qr := syntax.Must(syntax.Implies(q, r))

	t.Run("introduction", func(t *testing.T) {
		proof := NewProof(
			Line(1, p, RulePremise),
			Line(2, pq, RuleOrI1, 1),
		)
		assert.True(t, Check(proof))

		proof = NewProof(
			Line(1, q, RulePremise),
			Line(2, pq, RuleOrI2, 1),
		)
		assert.True(t, Check(proof))
	})

	t.Run("elimination by cases", func(t *testing.T) {
		proof := NewProof(
			Line(1, pq, RulePremise),
			Line(2, pr, RulePremise),
			Line(3, qr, RulePremise),
			Box(4,
				Line(41, p, RuleAssumption),
				Line(42, r, RuleImplE, 41, 2),
			),
			Box(5,
				Line(51, q, RuleAssumption),
				Line(52, r, RuleImplE, 51, 3),
			),
			Line(6, r, RuleOrE, 1, 4, 5),
		)
		assert.True(t, Check(proof))
	})

	t.Run("elimination with mismatched case", func(t *testing.T) {
		proof := NewProof(
			Line(1, pq, RulePremise),
			Line(2, pr, RulePremise),
			Box(4,
				Line(41, p, RuleAssumption),
				Line(42, r, RuleImplE, 41, 2),
			),
			Box(5,
				Line(51, q, RuleAssumption),
			),
			Line(6, r, RuleOrE, 1, 4, 5),
		)
		assert.False(t, Check(proof))
	})
}

func TestCopyAndDoubleNegation(t *testing.T) {
	p := plAtom(t, "p")

	proof := NewProof(
		Line(1, p, RulePremise),
		Line(2, p, RuleCopy, 1),
		Line(3, p, RuleDNegI, 2),
		Line(4, p, RuleDNegE, 3),
	)
	assert.True(t, Check(proof))
}

func TestUnknownRuleFails(t *testing.T) {
	proof := NewProof(
		Line(1, plAtom(t, "p"), Rule("frobnicate")),
	)
	assert.False(t, Check(proof))
}

func TestDroppedReferenceFails(t *testing.T) {
	p := plAtom(t, "p")
	proof := NewProof(
		Line(1, p, RulePremise),
		// Row 99 is not in scope; the reference is dropped and the
		// validator sees no arguments.
		Line(2, p, RuleCopy, 99),
	)
	assert.False(t, Check(proof))
}

func TestBoxScopeDiscarded(t *testing.T) {
	p := plAtom(t, "p")
	q := plAtom(t, "q")

	proof := NewProof(
		Box(1,
			Line(11, p, RuleAssumption),
		),
		// Row 11 lives only inside the box.
		Line(2, p, RuleCopy, 11),
	)
	assert.False(t, Check(proof))

	siblings := NewProof(
		Box(1,
			Line(11, p, RuleAssumption),
		),
		Box(2,
			Line(21, q, RuleAssumption),
			// Sibling box rows are likewise invisible.
			Line(22, p, RuleCopy, 11),
		),
	)
	assert.False(t, Check(siblings))
}

func TestEmptyAndNilProofs(t *testing.T) {
	assert.False(t, Check(nil))
	assert.True(t, Check(NewProof()))
}
