package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/roach88/sequent/syntax"
)

var ldlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "TT", Pattern: `tt\b`},
	{Name: "FF", Pattern: `ff\b`},
	{Name: "Last", Pattern: `last\b`},
	{Name: "End", Pattern: `end\b`},
	{Name: "True", Pattern: `true\b`},
	{Name: "False", Pattern: `false\b`},
	{Name: "Symbol", Pattern: symbolPattern},
	{Name: "Equiv", Pattern: `<->`},
	{Name: "Implies", Pattern: `->`},
	{Name: "And", Pattern: `&`},
	{Name: "Or", Pattern: `\|`},
	{Name: "Not", Pattern: `!`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Quest", Pattern: `\?`},
	{Name: "Union", Pattern: `\+`},
	{Name: "Seq", Pattern: `;`},
	{Name: "Less", Pattern: `<`},
	{Name: "Greater", Pattern: `>`},
	{Name: "LBracket", Pattern: `\[`},
	{Name: "RBracket", Pattern: `\]`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
})

var ldlParser = participle.MustBuild[ldlEquivalence](
	participle.Lexer(ldlLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(participle.MaxLookahead),
)

// ParseLDL reads a linear dynamic logic formula. Propositional leaves
// (true, false, bare symbols) are shorthand for a diamond step over the
// matching one-letter regular expression.
func ParseLDL(input string) (syntax.Formula, error) {
	tree, err := ldlParser.ParseString("", input)
	if err != nil {
		return nil, &ParseError{Logic: syntax.LDL, Input: input, Err: err}
	}
	f, err := tree.build()
	if err != nil {
		return nil, &ParseError{Logic: syntax.LDL, Input: input, Err: err}
	}
	return f, nil
}

type ldlEquivalence struct {
	First *ldlImplication   `parser:"@@"`
	Rest  []*ldlImplication `parser:"( Equiv @@ )*"`
}

type ldlImplication struct {
	First *ldlDisjunction   `parser:"@@"`
	Rest  []*ldlDisjunction `parser:"( Implies @@ )*"`
}

type ldlDisjunction struct {
	First *ldlConjunction   `parser:"@@"`
	Rest  []*ldlConjunction `parser:"( Or @@ )*"`
}

type ldlConjunction struct {
	First *ldlUnary   `parser:"@@"`
	Rest  []*ldlUnary `parser:"( And @@ )*"`
}

type ldlUnary struct {
	Diamond *ldlDiamond `parser:"  @@"`
	Box     *ldlBox     `parser:"| @@"`
	Not     *ldlUnary   `parser:"| Not @@"`
	Atom    *ldlAtom    `parser:"| @@"`
}

type ldlDiamond struct {
	Regex *reUnion  `parser:"Less @@ Greater"`
	Tail  *ldlUnary `parser:"@@"`
}

type ldlBox struct {
	Regex *reUnion  `parser:"LBracket @@ RBracket"`
	Tail  *ldlUnary `parser:"@@"`
}

type ldlAtom struct {
	TT      bool            `parser:"  @TT"`
	FF      bool            `parser:"| @FF"`
	Last    bool            `parser:"| @Last"`
	End     bool            `parser:"| @End"`
	True    bool            `parser:"| @True"`
	False   bool            `parser:"| @False"`
	Wrapped *ldlEquivalence `parser:"| LParen @@ RParen"`
	Symbol  *string         `parser:"| @Symbol"`
}

// The regular expression sublanguage: union binds loosest, then
// sequencing, then the star postfix; leaves are tests, propositional
// formulas, and grouped expressions.

type reUnion struct {
	First *reSequence   `parser:"@@"`
	Rest  []*reSequence `parser:"( Union @@ )*"`
}

type reSequence struct {
	First *reStar   `parser:"@@"`
	Rest  []*reStar `parser:"( Seq @@ )*"`
}

type reStar struct {
	Leaf  *reLeaf  `parser:"@@"`
	Stars []string `parser:"@Star*"`
}

// The propositional alternative comes before the grouped one: a leading
// paren is ambiguous between a propositional group and a regex group,
// and only the propositional reading lets a connective follow the close
// paren. When the group holds a regex operator the propositional parse
// fails and the grouped alternative takes over; when both parse, the
// regex group is pure grouping and the two readings build the same node.
type reLeaf struct {
	Test    *ldlEquivalence `parser:"  Quest LParen @@ RParen"`
	Prop    *plEquivalence  `parser:"| @@"`
	Wrapped *reUnion        `parser:"| LParen @@ RParen"`
}

func (p *ldlEquivalence) build() (syntax.Formula, error) {
	operands, err := buildOperands(p.First, p.Rest)
	if err != nil {
		return nil, err
	}
	return joinBinary(syntax.Equivalence, operands)
}

func (p *ldlImplication) build() (syntax.Formula, error) {
	operands, err := buildOperands(p.First, p.Rest)
	if err != nil {
		return nil, err
	}
	return joinBinary(syntax.Implies, operands)
}

func (p *ldlDisjunction) build() (syntax.Formula, error) {
	operands, err := buildOperands(p.First, p.Rest)
	if err != nil {
		return nil, err
	}
	return joinBinary(syntax.Or, operands)
}

func (p *ldlConjunction) build() (syntax.Formula, error) {
	operands, err := buildOperands(p.First, p.Rest)
	if err != nil {
		return nil, err
	}
	return joinBinary(syntax.And, operands)
}

func (p *ldlUnary) build() (syntax.Formula, error) {
	switch {
	case p.Diamond != nil:
		return p.Diamond.build()
	case p.Box != nil:
		return p.Box.build()
	case p.Not != nil:
		inner, err := p.Not.build()
		if err != nil {
			return nil, err
		}
		return syntax.Not(inner)
	case p.Atom != nil:
		return p.Atom.build()
	}
	return nil, errEmptyAtom
}

func (p *ldlDiamond) build() (syntax.Formula, error) {
	regex, err := p.Regex.build()
	if err != nil {
		return nil, err
	}
	tail, err := p.Tail.build()
	if err != nil {
		return nil, err
	}
	return syntax.Diamond(regex, tail)
}

func (p *ldlBox) build() (syntax.Formula, error) {
	regex, err := p.Regex.build()
	if err != nil {
		return nil, err
	}
	tail, err := p.Tail.build()
	if err != nil {
		return nil, err
	}
	return syntax.Box(regex, tail)
}

// propStep is the reading of a bare propositional leaf in formula
// position: the proposition must hold on the first step.
func propStep(pl syntax.Formula) (syntax.Formula, error) {
	prop, err := syntax.Prop(pl)
	if err != nil {
		return nil, err
	}
	return syntax.Diamond(prop, syntax.True(syntax.LDL))
}

func (p *ldlAtom) build() (syntax.Formula, error) {
	switch {
	case p.TT:
		return syntax.True(syntax.LDL), nil
	case p.FF:
		return syntax.False(syntax.LDL), nil
	case p.Last:
		return syntax.LDLLast(), nil
	case p.End:
		return syntax.End(), nil
	case p.True:
		return propStep(syntax.True(syntax.PL))
	case p.False:
		return propStep(syntax.False(syntax.PL))
	case p.Wrapped != nil:
		return p.Wrapped.build()
	case p.Symbol != nil:
		atom, err := syntax.Atom(*p.Symbol, syntax.PL)
		if err != nil {
			return nil, err
		}
		return propStep(atom)
	}
	return nil, errEmptyAtom
}

func (p *reUnion) build() (syntax.Formula, error) {
	operands, err := buildOperands(p.First, p.Rest)
	if err != nil {
		return nil, err
	}
	return joinBinary(syntax.Union, operands)
}

func (p *reSequence) build() (syntax.Formula, error) {
	operands, err := buildOperands(p.First, p.Rest)
	if err != nil {
		return nil, err
	}
	return joinBinary(syntax.Seq, operands)
}

func (p *reStar) build() (syntax.Formula, error) {
	f, err := p.Leaf.build()
	if err != nil {
		return nil, err
	}
	for range p.Stars {
		f, err = syntax.Star(f)
		if err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (p *reLeaf) build() (syntax.Formula, error) {
	switch {
	case p.Test != nil:
		inner, err := p.Test.build()
		if err != nil {
			return nil, err
		}
		return syntax.Test(inner)
	case p.Wrapped != nil:
		return p.Wrapped.build()
	case p.Prop != nil:
		pl, err := p.Prop.build()
		if err != nil {
			return nil, err
		}
		return syntax.Prop(pl)
	}
	return nil, errEmptyAtom
}
