package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/roach88/sequent/syntax"
)

var ltlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "True", Pattern: `true\b`},
	{Name: "False", Pattern: `false\b`},
	{Name: "TT", Pattern: `tt\b`},
	{Name: "FF", Pattern: `ff\b`},
	{Name: "Last", Pattern: `last\b`},
	{Name: "WeakNext", Pattern: `WX\b`},
	{Name: "Next", Pattern: `X\b`},
	{Name: "Eventually", Pattern: `F\b`},
	{Name: "Always", Pattern: `G\b`},
	{Name: "Until", Pattern: `U\b`},
	{Name: "Release", Pattern: `R\b`},
	{Name: "WeakUntil", Pattern: `W\b`},
	{Name: "StrongRelease", Pattern: `M\b`},
	{Name: "Symbol", Pattern: symbolPattern},
	{Name: "Equiv", Pattern: `<->`},
	{Name: "Implies", Pattern: `->`},
	{Name: "And", Pattern: `&`},
	{Name: "Or", Pattern: `\|`},
	{Name: "Not", Pattern: `!`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
})

var ltlParser = participle.MustBuild[ltlEquivalence](
	participle.Lexer(ltlLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(participle.MaxLookahead),
)

// ParseLTL reads a linear temporal logic formula. The plain words true
// and false denote the propositional constants; tt and ff denote the
// logical ones.
func ParseLTL(input string) (syntax.Formula, error) {
	tree, err := ltlParser.ParseString("", input)
	if err != nil {
		return nil, &ParseError{Logic: syntax.LTL, Input: input, Err: err}
	}
	f, err := tree.build()
	if err != nil {
		return nil, &ParseError{Logic: syntax.LTL, Input: input, Err: err}
	}
	return f, nil
}

// Binding from loosest to tightest: equivalence, implication, or, and,
// until, weak until, release, strong release, prefix operators.

type ltlEquivalence struct {
	First *ltlImplication   `parser:"@@"`
	Rest  []*ltlImplication `parser:"( Equiv @@ )*"`
}

type ltlImplication struct {
	First *ltlDisjunction   `parser:"@@"`
	Rest  []*ltlDisjunction `parser:"( Implies @@ )*"`
}

type ltlDisjunction struct {
	First *ltlConjunction   `parser:"@@"`
	Rest  []*ltlConjunction `parser:"( Or @@ )*"`
}

type ltlConjunction struct {
	First *ltlUntil   `parser:"@@"`
	Rest  []*ltlUntil `parser:"( And @@ )*"`
}

type ltlUntil struct {
	First *ltlWeakUntil   `parser:"@@"`
	Rest  []*ltlWeakUntil `parser:"( Until @@ )*"`
}

type ltlWeakUntil struct {
	First *ltlRelease   `parser:"@@"`
	Rest  []*ltlRelease `parser:"( WeakUntil @@ )*"`
}

type ltlRelease struct {
	First *ltlStrongRelease   `parser:"@@"`
	Rest  []*ltlStrongRelease `parser:"( Release @@ )*"`
}

type ltlStrongRelease struct {
	First *ltlUnary   `parser:"@@"`
	Rest  []*ltlUnary `parser:"( StrongRelease @@ )*"`
}

type ltlUnary struct {
	Ops  []string `parser:"@( Not | Next | WeakNext | Eventually | Always )*"`
	Atom *ltlAtom `parser:"@@"`
}

type ltlAtom struct {
	True    bool            `parser:"  @True"`
	False   bool            `parser:"| @False"`
	TT      bool            `parser:"| @TT"`
	FF      bool            `parser:"| @FF"`
	Last    bool            `parser:"| @Last"`
	Wrapped *ltlEquivalence `parser:"| LParen @@ RParen"`
	Symbol  *string         `parser:"| @Symbol"`
}

func (p *ltlEquivalence) build() (syntax.Formula, error) {
	operands, err := buildOperands(p.First, p.Rest)
	if err != nil {
		return nil, err
	}
	return joinBinary(syntax.Equivalence, operands)
}

func (p *ltlImplication) build() (syntax.Formula, error) {
	operands, err := buildOperands(p.First, p.Rest)
	if err != nil {
		return nil, err
	}
	return joinBinary(syntax.Implies, operands)
}

func (p *ltlDisjunction) build() (syntax.Formula, error) {
	operands, err := buildOperands(p.First, p.Rest)
	if err != nil {
		return nil, err
	}
	return joinBinary(syntax.Or, operands)
}

func (p *ltlConjunction) build() (syntax.Formula, error) {
	operands, err := buildOperands(p.First, p.Rest)
	if err != nil {
		return nil, err
	}
	return joinBinary(syntax.And, operands)
}

func (p *ltlUntil) build() (syntax.Formula, error) {
	operands, err := buildOperands(p.First, p.Rest)
	if err != nil {
		return nil, err
	}
	return joinBinary(syntax.Until, operands)
}

func (p *ltlWeakUntil) build() (syntax.Formula, error) {
	operands, err := buildOperands(p.First, p.Rest)
	if err != nil {
		return nil, err
	}
	return joinBinary(syntax.WeakUntil, operands)
}

func (p *ltlRelease) build() (syntax.Formula, error) {
	operands, err := buildOperands(p.First, p.Rest)
	if err != nil {
		return nil, err
	}
	return joinBinary(syntax.Release, operands)
}

func (p *ltlStrongRelease) build() (syntax.Formula, error) {
	operands, err := buildOperands(p.First, p.Rest)
	if err != nil {
		return nil, err
	}
	return joinBinary(syntax.StrongRelease, operands)
}

var ltlPrefixOps = map[string]func(syntax.Formula) (syntax.Formula, error){
	"!":  syntax.Not,
	"X":  syntax.Next,
	"WX": syntax.WeakNext,
	"F":  syntax.Eventually,
	"G":  syntax.Always,
}

func (p *ltlUnary) build() (syntax.Formula, error) {
	atom, err := p.Atom.build()
	if err != nil {
		return nil, err
	}
	return foldUnary(p.Ops, atom, ltlPrefixOps)
}

func (p *ltlAtom) build() (syntax.Formula, error) {
	switch {
	case p.True:
		return syntax.PropTrue(syntax.LTL)
	case p.False:
		return syntax.PropFalse(syntax.LTL)
	case p.TT:
		return syntax.True(syntax.LTL), nil
	case p.FF:
		return syntax.False(syntax.LTL), nil
	case p.Last:
		return syntax.LTLLast(), nil
	case p.Wrapped != nil:
		return p.Wrapped.build()
	case p.Symbol != nil:
		return syntax.Atom(*p.Symbol, syntax.LTL)
	}
	return nil, errEmptyAtom
}
