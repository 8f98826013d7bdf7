package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sequent/syntax"
)

func ltlAtomF(t *testing.T, name string) syntax.Formula {
	t.Helper()
	f, err := syntax.Atom(name, syntax.LTL)
	require.NoError(t, err)
	return f
}

func TestParseLTLStructure(t *testing.T) {
	syntax.ResetCache()

	tests := []struct {
		name  string
		input string
		want  func(t *testing.T) syntax.Formula
	}{
		{
			name:  "next",
			input: "X a",
			want: func(t *testing.T) syntax.Formula {
				return syntax.Must(syntax.Next(ltlAtomF(t, "a")))
			},
		},
		{
			name:  "weak next",
			input: "WX a",
			want: func(t *testing.T) syntax.Formula {
				return syntax.Must(syntax.WeakNext(ltlAtomF(t, "a")))
			},
		},
		{
			name:  "stacked prefixes nest inward",
			input: "G F a",
			want: func(t *testing.T) syntax.Formula {
				return syntax.Must(syntax.Always(syntax.Must(syntax.Eventually(ltlAtomF(t, "a")))))
			},
		},
		{
			name:  "until",
			input: "a U b",
			want: func(t *testing.T) syntax.Formula {
				return syntax.Must(syntax.Until(ltlAtomF(t, "a"), ltlAtomF(t, "b")))
			},
		},
		{
			name:  "release",
			input: "a R b",
			want: func(t *testing.T) syntax.Formula {
				return syntax.Must(syntax.Release(ltlAtomF(t, "a"), ltlAtomF(t, "b")))
			},
		},
		{
			name:  "weak until",
			input: "a W b",
			want: func(t *testing.T) syntax.Formula {
				return syntax.Must(syntax.WeakUntil(ltlAtomF(t, "a"), ltlAtomF(t, "b")))
			},
		},
		{
			name:  "strong release",
			input: "a M b",
			want: func(t *testing.T) syntax.Formula {
				return syntax.Must(syntax.StrongRelease(ltlAtomF(t, "a"), ltlAtomF(t, "b")))
			},
		},
		{
			name:  "until binds tighter than and",
			input: "a U b & c",
			want: func(t *testing.T) syntax.Formula {
				return syntax.Must(syntax.And(
					syntax.Must(syntax.Until(ltlAtomF(t, "a"), ltlAtomF(t, "b"))),
					ltlAtomF(t, "c"),
				))
			},
		},
		{
			name:  "propositional constants",
			input: "true U a",
			want: func(t *testing.T) syntax.Formula {
				pt, err := syntax.PropTrue(syntax.LTL)
				require.NoError(t, err)
				return syntax.Must(syntax.Until(pt, ltlAtomF(t, "a")))
			},
		},
		{
			name:  "logical constants",
			input: "a & tt",
			want:  func(t *testing.T) syntax.Formula { return ltlAtomF(t, "a") },
		},
		{
			name:  "last",
			input: "last",
			want:  func(t *testing.T) syntax.Formula { return syntax.LTLLast() },
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseLTL(tc.input)
			require.NoError(t, err)
			assert.Same(t, tc.want(t), got)
		})
	}
}

func TestParseLTLErrors(t *testing.T) {
	for _, input := range []string{"", "X", "a U", "a &", "(a", "U a"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseLTL(input)
			require.Error(t, err)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, syntax.LTL, pe.Logic)
		})
	}
}
