package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sequent/syntax"
)

func plAtomF(t *testing.T, name string) syntax.Formula {
	t.Helper()
	f, err := syntax.Atom(name, syntax.PL)
	require.NoError(t, err)
	return f
}

func propRegex(t *testing.T, pl syntax.Formula) syntax.Formula {
	t.Helper()
	f, err := syntax.Prop(pl)
	require.NoError(t, err)
	return f
}

func propLeaf(t *testing.T, pl syntax.Formula) syntax.Formula {
	t.Helper()
	f, err := syntax.Diamond(propRegex(t, pl), syntax.True(syntax.LDL))
	require.NoError(t, err)
	return f
}

func TestParseLDLStructure(t *testing.T) {
	syntax.ResetCache()

	tests := []struct {
		name  string
		input string
		want  func(t *testing.T) syntax.Formula
	}{
		{
			name:  "logical constants",
			input: "tt",
			want:  func(t *testing.T) syntax.Formula { return syntax.True(syntax.LDL) },
		},
		{
			name:  "bare symbol is a diamond step",
			input: "a",
			want:  func(t *testing.T) syntax.Formula { return propLeaf(t, plAtomF(t, "a")) },
		},
		{
			name:  "propositional true is a diamond step",
			input: "true",
			want:  func(t *testing.T) syntax.Formula { return propLeaf(t, syntax.True(syntax.PL)) },
		},
		{
			name:  "diamond over atomic regex",
			input: "<a>(tt)",
			want: func(t *testing.T) syntax.Formula {
				return syntax.Must(syntax.Diamond(propRegex(t, plAtomF(t, "a")), syntax.True(syntax.LDL)))
			},
		},
		{
			name:  "box over atomic regex",
			input: "[a](ff)",
			want: func(t *testing.T) syntax.Formula {
				return syntax.Must(syntax.Box(propRegex(t, plAtomF(t, "a")), syntax.False(syntax.LDL)))
			},
		},
		{
			name:  "regex union",
			input: "<a + b>(tt)",
			want: func(t *testing.T) syntax.Formula {
				re := syntax.Must(syntax.Union(propRegex(t, plAtomF(t, "a")), propRegex(t, plAtomF(t, "b"))))
				return syntax.Must(syntax.Diamond(re, syntax.True(syntax.LDL)))
			},
		},
		{
			name:  "regex sequence",
			input: "<a ; b>(tt)",
			want: func(t *testing.T) syntax.Formula {
				re := syntax.Must(syntax.Seq(propRegex(t, plAtomF(t, "a")), propRegex(t, plAtomF(t, "b"))))
				return syntax.Must(syntax.Diamond(re, syntax.True(syntax.LDL)))
			},
		},
		{
			name:  "regex star",
			input: "<(a)*>(tt)",
			want: func(t *testing.T) syntax.Formula {
				re := syntax.Must(syntax.Star(propRegex(t, plAtomF(t, "a"))))
				return syntax.Must(syntax.Diamond(re, syntax.True(syntax.LDL)))
			},
		},
		{
			name:  "regex test",
			input: "<?(tt)>(tt)",
			want: func(t *testing.T) syntax.Formula {
				re := syntax.Must(syntax.Test(syntax.True(syntax.LDL)))
				return syntax.Must(syntax.Diamond(re, syntax.True(syntax.LDL)))
			},
		},
		{
			name:  "propositional regex with connectives",
			input: "<a & b>(tt)",
			want: func(t *testing.T) syntax.Formula {
				pl := syntax.Must(syntax.And(plAtomF(t, "a"), plAtomF(t, "b")))
				return syntax.Must(syntax.Diamond(propRegex(t, pl), syntax.True(syntax.LDL)))
			},
		},
		{
			name:  "parenthesized propositional regex",
			input: "<(a) & (b)>(tt)",
			want: func(t *testing.T) syntax.Formula {
				pl := syntax.Must(syntax.And(plAtomF(t, "a"), plAtomF(t, "b")))
				return syntax.Must(syntax.Diamond(propRegex(t, pl), syntax.True(syntax.LDL)))
			},
		},
		{
			name:  "parenthesized regex group",
			input: "<(a ; b)*>(tt)",
			want: func(t *testing.T) syntax.Formula {
				seq := syntax.Must(syntax.Seq(propRegex(t, plAtomF(t, "a")), propRegex(t, plAtomF(t, "b"))))
				re := syntax.Must(syntax.Star(seq))
				return syntax.Must(syntax.Diamond(re, syntax.True(syntax.LDL)))
			},
		},
		{
			name:  "sequence binds tighter than union",
			input: "<a ; b + c>(tt)",
			want: func(t *testing.T) syntax.Formula {
				seq := syntax.Must(syntax.Seq(propRegex(t, plAtomF(t, "a")), propRegex(t, plAtomF(t, "b"))))
				re := syntax.Must(syntax.Union(seq, propRegex(t, plAtomF(t, "c"))))
				return syntax.Must(syntax.Diamond(re, syntax.True(syntax.LDL)))
			},
		},
		{
			name:  "nested modalities",
			input: "<a><b>(tt)",
			want: func(t *testing.T) syntax.Formula {
				inner := syntax.Must(syntax.Diamond(propRegex(t, plAtomF(t, "b")), syntax.True(syntax.LDL)))
				return syntax.Must(syntax.Diamond(propRegex(t, plAtomF(t, "a")), inner))
			},
		},
		{
			name:  "end",
			input: "end",
			want:  func(t *testing.T) syntax.Formula { return syntax.End() },
		},
		{
			name:  "last",
			input: "last",
			want:  func(t *testing.T) syntax.Formula { return syntax.LDLLast() },
		},
		{
			name:  "boolean connectives over modalities",
			input: "<a>(tt) & [b](ff)",
			want: func(t *testing.T) syntax.Formula {
				d := syntax.Must(syntax.Diamond(propRegex(t, plAtomF(t, "a")), syntax.True(syntax.LDL)))
				b := syntax.Must(syntax.Box(propRegex(t, plAtomF(t, "b")), syntax.False(syntax.LDL)))
				return syntax.Must(syntax.And(d, b))
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseLDL(tc.input)
			require.NoError(t, err)
			assert.Same(t, tc.want(t), got)
			assert.Equal(t, syntax.LDL, got.Logic())
		})
	}
}

func TestParseLDLErrors(t *testing.T) {
	for _, input := range []string{"", "<a>", "<a(tt)", "[a)(tt)", "?", "<>(tt)"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseLDL(input)
			require.Error(t, err)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, syntax.LDL, pe.Logic)
		})
	}
}
