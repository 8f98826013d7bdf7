package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sequent/syntax"
)

func pltlAtomF(t *testing.T, name string) syntax.Formula {
	t.Helper()
	f, err := syntax.Atom(name, syntax.PLTL)
	require.NoError(t, err)
	return f
}

func TestParsePLTLStructure(t *testing.T) {
	syntax.ResetCache()

	tests := []struct {
		name  string
		input string
		want  func(t *testing.T) syntax.Formula
	}{
		{
			name:  "before",
			input: "Y a",
			want: func(t *testing.T) syntax.Formula {
				return syntax.Must(syntax.Before(pltlAtomF(t, "a")))
			},
		},
		{
			name:  "once",
			input: "O a",
			want: func(t *testing.T) syntax.Formula {
				return syntax.Must(syntax.Once(pltlAtomF(t, "a")))
			},
		},
		{
			name:  "historically",
			input: "H a",
			want: func(t *testing.T) syntax.Formula {
				return syntax.Must(syntax.Historically(pltlAtomF(t, "a")))
			},
		},
		{
			name:  "since",
			input: "a S b",
			want: func(t *testing.T) syntax.Formula {
				return syntax.Must(syntax.Since(pltlAtomF(t, "a"), pltlAtomF(t, "b")))
			},
		},
		{
			name:  "since binds tighter than and",
			input: "a S b & c",
			want: func(t *testing.T) syntax.Formula {
				return syntax.Must(syntax.And(
					syntax.Must(syntax.Since(pltlAtomF(t, "a"), pltlAtomF(t, "b"))),
					pltlAtomF(t, "c"),
				))
			},
		},
		{
			name:  "start",
			input: "start",
			want:  func(t *testing.T) syntax.Formula { return syntax.Start() },
		},
		{
			name:  "mixed prefixes",
			input: "H !a",
			want: func(t *testing.T) syntax.Formula {
				return syntax.Must(syntax.Historically(syntax.Must(syntax.Not(pltlAtomF(t, "a")))))
			},
		},
		{
			name:  "propositional constant",
			input: "O true",
			want: func(t *testing.T) syntax.Formula {
				pt, err := syntax.PropTrue(syntax.PLTL)
				require.NoError(t, err)
				return syntax.Must(syntax.Once(pt))
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePLTL(tc.input)
			require.NoError(t, err)
			assert.Same(t, tc.want(t), got)
			assert.Equal(t, syntax.PLTL, got.Logic())
		})
	}
}

func TestParsePLTLErrors(t *testing.T) {
	for _, input := range []string{"", "Y", "a S", "S a"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParsePLTL(input)
			require.Error(t, err)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, syntax.PLTL, pe.Logic)
		})
	}
}
