package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermEquality(t *testing.T) {
	x1 := NewVariable("x")
	x2 := NewVariable("x")
	y := NewVariable("y")
	cx := NewConstant("x", nil)

	assert.True(t, TermEqual(x1, x2))
	assert.False(t, TermEqual(x1, y))
	// Same name, different kind.
	assert.False(t, TermEqual(x1, cx))
	assert.True(t, TermEqual(nil, nil))
	assert.False(t, TermEqual(x1, nil))
}

func TestConstantValueExcludedFromIdentity(t *testing.T) {
	a := NewConstant("a", 1)
	b := NewConstant("a", "other")
	assert.True(t, TermEqual(a, b))
	assert.Equal(t, 1, a.Value())
}

func TestFunctionTerms(t *testing.T) {
	x := NewVariable("x")
	f, err := NewFunction("f", x)
	require.NoError(t, err)
	assert.Equal(t, "f", f.Name())

	g, err := NewFunction("f", NewVariable("x"))
	require.NoError(t, err)
	assert.True(t, TermEqual(f, g))

	_, err = NewFunction("f", nil)
	require.Error(t, err)
	var inv *InvariantError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, CodeNotATerm, inv.Code)

	// Apply enforces the arity fixed at construction.
	_, err = f.Apply(x, x)
	require.Error(t, err)
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, CodeWrongArity, inv.Code)

	applied, err := f.Apply(NewConstant("a", nil))
	require.NoError(t, err)
	assert.False(t, TermEqual(f, applied))
}

func TestPredicateInterning(t *testing.T) {
	ResetCache()
	x := NewVariable("x")

	p1, err := NewPredicate("P", x)
	require.NoError(t, err)
	p2, err := NewPredicate("P", NewVariable("x"))
	require.NoError(t, err)

	assert.Same(t, p1, p2)
	assert.Equal(t, FOL, p1.Logic())
	assert.Equal(t, 1, CacheContext().Len(FOL))
}

func TestPredicateApply(t *testing.T) {
	x := NewVariable("x")
	a := NewConstant("a", nil)

	p, err := NewPredicate("P", x)
	require.NoError(t, err)

	pa, err := p.Apply(a)
	require.NoError(t, err)
	assert.False(t, Equal(p, pa))
	assert.True(t, TermEqual(a, pa.Operands()[0]))

	_, err = p.Apply(x, a)
	require.Error(t, err)
	var inv *InvariantError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, CodeWrongArity, inv.Code)
}

func TestQuantifiers(t *testing.T) {
	x := NewVariable("x")
	p, err := NewPredicate("P", x)
	require.NoError(t, err)

	all, err := ForAll(x, p)
	require.NoError(t, err)
	q := all.(*Quantifier)
	assert.Equal(t, KindForAll, q.Kind())
	assert.Same(t, p, q.Body())

	some, err := Exists(x, p)
	require.NoError(t, err)
	assert.False(t, Equal(all, some))

	// Interned like any formula.
	again, err := ForAll(NewVariable("x"), p)
	require.NoError(t, err)
	assert.Same(t, all, again)
}

func TestQuantifierValidation(t *testing.T) {
	x := NewVariable("x")
	p, err := NewPredicate("P", x)
	require.NoError(t, err)

	_, err = ForAll(nil, p)
	require.Error(t, err)

	_, err = ForAll(x, nil)
	require.Error(t, err)

	_, err = ForAll(x, Must(Atom("a", PL)))
	require.Error(t, err)
	assert.True(t, IsForbiddenLogic(err))
}

func TestNoAlphaEquivalence(t *testing.T) {
	x := NewVariable("x")
	y := NewVariable("y")
	px, err := NewPredicate("P", x)
	require.NoError(t, err)
	py, err := NewPredicate("P", y)
	require.NoError(t, err)

	allX, err := ForAll(x, px)
	require.NoError(t, err)
	allY, err := ForAll(y, py)
	require.NoError(t, err)

	// Bound-variable renaming changes identity.
	assert.False(t, Equal(allX, allY))
}

func TestQuantifiedBooleanStructure(t *testing.T) {
	x := NewVariable("x")
	p, err := NewPredicate("P", x)
	require.NoError(t, err)
	q, err := NewPredicate("Q", x)
	require.NoError(t, err)

	conj, err := And(p, q)
	require.NoError(t, err)
	assert.Equal(t, FOL, conj.Logic())

	all, err := ForAll(x, conj)
	require.NoError(t, err)
	assert.Equal(t, FOL, all.Logic())
}
