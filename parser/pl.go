package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/roach88/sequent/syntax"
)

var plLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "True", Pattern: `true\b`},
	{Name: "False", Pattern: `false\b`},
	{Name: "Symbol", Pattern: symbolPattern},
	{Name: "Equiv", Pattern: `<->`},
	{Name: "Implies", Pattern: `->`},
	{Name: "And", Pattern: `&`},
	{Name: "Or", Pattern: `\|`},
	{Name: "Not", Pattern: `!`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
})

var plParser = participle.MustBuild[plEquivalence](
	participle.Lexer(plLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(participle.MaxLookahead),
)

// ParsePL reads a propositional formula.
func ParsePL(input string) (syntax.Formula, error) {
	tree, err := plParser.ParseString("", input)
	if err != nil {
		return nil, &ParseError{Logic: syntax.PL, Input: input, Err: err}
	}
	f, err := tree.build()
	if err != nil {
		return nil, &ParseError{Logic: syntax.PL, Input: input, Err: err}
	}
	return f, nil
}

// Precedence from loosest to tightest binding: equivalence,
// implication, disjunction, conjunction, negation.

type plEquivalence struct {
	First *plImplication   `parser:"@@"`
	Rest  []*plImplication `parser:"( Equiv @@ )*"`
}

type plImplication struct {
	First *plDisjunction   `parser:"@@"`
	Rest  []*plDisjunction `parser:"( Implies @@ )*"`
}

type plDisjunction struct {
	First *plConjunction   `parser:"@@"`
	Rest  []*plConjunction `parser:"( Or @@ )*"`
}

type plConjunction struct {
	First *plUnary   `parser:"@@"`
	Rest  []*plUnary `parser:"( And @@ )*"`
}

type plUnary struct {
	Nots []string `parser:"@Not*"`
	Atom *plAtom  `parser:"@@"`
}

type plAtom struct {
	True    bool            `parser:"  @True"`
	False   bool            `parser:"| @False"`
	Wrapped *plEquivalence  `parser:"| LParen @@ RParen"`
	Symbol  *string         `parser:"| @Symbol"`
}

func (p *plEquivalence) build() (syntax.Formula, error) {
	operands, err := buildOperands(p.First, p.Rest)
	if err != nil {
		return nil, err
	}
	return joinBinary(syntax.Equivalence, operands)
}

func (p *plImplication) build() (syntax.Formula, error) {
	operands, err := buildOperands(p.First, p.Rest)
	if err != nil {
		return nil, err
	}
	return joinBinary(syntax.Implies, operands)
}

func (p *plDisjunction) build() (syntax.Formula, error) {
	operands, err := buildOperands(p.First, p.Rest)
	if err != nil {
		return nil, err
	}
	return joinBinary(syntax.Or, operands)
}

func (p *plConjunction) build() (syntax.Formula, error) {
	operands, err := buildOperands(p.First, p.Rest)
	if err != nil {
		return nil, err
	}
	return joinBinary(syntax.And, operands)
}

func (p *plUnary) build() (syntax.Formula, error) {
	atom, err := p.Atom.build()
	if err != nil {
		return nil, err
	}
	return foldUnary(p.Nots, atom, map[string]func(syntax.Formula) (syntax.Formula, error){
		"!": syntax.Not,
	})
}

func (p *plAtom) build() (syntax.Formula, error) {
	switch {
	case p.True:
		return syntax.True(syntax.PL), nil
	case p.False:
		return syntax.False(syntax.PL), nil
	case p.Wrapped != nil:
		return p.Wrapped.build()
	case p.Symbol != nil:
		return syntax.Atom(*p.Symbol, syntax.PL)
	}
	return nil, errEmptyAtom
}
