package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/roach88/sequent/syntax"
)

var pltlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "True", Pattern: `true\b`},
	{Name: "False", Pattern: `false\b`},
	{Name: "TT", Pattern: `tt\b`},
	{Name: "FF", Pattern: `ff\b`},
	{Name: "Start", Pattern: `start\b`},
	{Name: "Before", Pattern: `Y\b`},
	{Name: "Once", Pattern: `O\b`},
	{Name: "Historically", Pattern: `H\b`},
	{Name: "Since", Pattern: `S\b`},
	{Name: "Symbol", Pattern: symbolPattern},
	{Name: "Equiv", Pattern: `<->`},
	{Name: "Implies", Pattern: `->`},
	{Name: "And", Pattern: `&`},
	{Name: "Or", Pattern: `\|`},
	{Name: "Not", Pattern: `!`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
})

var pltlParser = participle.MustBuild[pltlEquivalence](
	participle.Lexer(pltlLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(participle.MaxLookahead),
)

// ParsePLTL reads a past linear temporal logic formula.
func ParsePLTL(input string) (syntax.Formula, error) {
	tree, err := pltlParser.ParseString("", input)
	if err != nil {
		return nil, &ParseError{Logic: syntax.PLTL, Input: input, Err: err}
	}
	f, err := tree.build()
	if err != nil {
		return nil, &ParseError{Logic: syntax.PLTL, Input: input, Err: err}
	}
	return f, nil
}

type pltlEquivalence struct {
	First *pltlImplication   `parser:"@@"`
	Rest  []*pltlImplication `parser:"( Equiv @@ )*"`
}

type pltlImplication struct {
	First *pltlDisjunction   `parser:"@@"`
	Rest  []*pltlDisjunction `parser:"( Implies @@ )*"`
}

type pltlDisjunction struct {
	First *pltlConjunction   `parser:"@@"`
	Rest  []*pltlConjunction `parser:"( Or @@ )*"`
}

type pltlConjunction struct {
	First *pltlSince   `parser:"@@"`
	Rest  []*pltlSince `parser:"( And @@ )*"`
}

type pltlSince struct {
	First *pltlUnary   `parser:"@@"`
	Rest  []*pltlUnary `parser:"( Since @@ )*"`
}

type pltlUnary struct {
	Ops  []string  `parser:"@( Not | Before | Once | Historically )*"`
	Atom *pltlAtom `parser:"@@"`
}

type pltlAtom struct {
	True    bool             `parser:"  @True"`
	False   bool             `parser:"| @False"`
	TT      bool             `parser:"| @TT"`
	FF      bool             `parser:"| @FF"`
	Start   bool             `parser:"| @Start"`
	Wrapped *pltlEquivalence `parser:"| LParen @@ RParen"`
	Symbol  *string          `parser:"| @Symbol"`
}

func (p *pltlEquivalence) build() (syntax.Formula, error) {
	operands, err := buildOperands(p.First, p.Rest)
	if err != nil {
		return nil, err
	}
	return joinBinary(syntax.Equivalence, operands)
}

func (p *pltlImplication) build() (syntax.Formula, error) {
	operands, err := buildOperands(p.First, p.Rest)
	if err != nil {
		return nil, err
	}
	return joinBinary(syntax.Implies, operands)
}

func (p *pltlDisjunction) build() (syntax.Formula, error) {
	operands, err := buildOperands(p.First, p.Rest)
	if err != nil {
		return nil, err
	}
	return joinBinary(syntax.Or, operands)
}

func (p *pltlConjunction) build() (syntax.Formula, error) {
	operands, err := buildOperands(p.First, p.Rest)
	if err != nil {
		return nil, err
	}
	return joinBinary(syntax.And, operands)
}

func (p *pltlSince) build() (syntax.Formula, error) {
	operands, err := buildOperands(p.First, p.Rest)
	if err != nil {
		return nil, err
	}
	return joinBinary(syntax.Since, operands)
}

var pltlPrefixOps = map[string]func(syntax.Formula) (syntax.Formula, error){
	"!": syntax.Not,
	"Y": syntax.Before,
	"O": syntax.Once,
	"H": syntax.Historically,
}

func (p *pltlUnary) build() (syntax.Formula, error) {
	atom, err := p.Atom.build()
	if err != nil {
		return nil, err
	}
	return foldUnary(p.Ops, atom, pltlPrefixOps)
}

func (p *pltlAtom) build() (syntax.Formula, error) {
	switch {
	case p.True:
		return syntax.PropTrue(syntax.PLTL)
	case p.False:
		return syntax.PropFalse(syntax.PLTL)
	case p.TT:
		return syntax.True(syntax.PLTL), nil
	case p.FF:
		return syntax.False(syntax.PLTL), nil
	case p.Start:
		return syntax.Start(), nil
	case p.Wrapped != nil:
		return p.Wrapped.build()
	case p.Symbol != nil:
		return syntax.Atom(*p.Symbol, syntax.PLTL)
	}
	return nil, errEmptyAtom
}
