// Package deduction checks natural deduction proofs over propositional
// and first-order formulas. A proof is a sequence of rows; each row
// either states a formula justified by a rule and references to earlier
// rows, introduces a fresh first-order witness term, or opens a boxed
// sub-derivation whose assumptions are discharged when the box closes.
//
// Checking is a validator, not a prover: Check walks the rows in order
// and reports whether every justification holds. The first invalid row
// fails the whole proof; no error value distinguishes why.
package deduction

import (
	"maps"

	"github.com/roach88/sequent/syntax"
)

// Rule names a natural deduction inference rule.
type Rule string

const (
	RuleAndE1        Rule = "and_e1"
	RuleAndE2        Rule = "and_e2"
	RuleAndI         Rule = "and_i"
	RuleAssumption   Rule = "assumption"
	RuleBotE         Rule = "bot_e"
	RuleCopy         Rule = "copy"
	RuleDNegE        Rule = "dneg_e"
	RuleDNegI        Rule = "dneg_i"
	RuleExistsE      Rule = "exists_e"
	RuleExistsI      Rule = "exists_i"
	RuleForAllE      Rule = "forall_e"
	RuleForAllI      Rule = "forall_i"
	RuleImplE        Rule = "impl_e"
	RuleImplI        Rule = "impl_i"
	RuleModusTollens Rule = "MT"
	RuleNegE         Rule = "neg_e"
	RuleNegI         Rule = "neg_i"
	RuleOrE          Rule = "or_e"
	RuleOrI1         Rule = "or_i1"
	RuleOrI2         Rule = "or_i2"
	RulePremise      Rule = "premise"
)

// Row is one proof step. Exactly one of Formula, Term, or Sub is set:
// a formula row carries a rule and row references, a term row binds a
// witness inside a box, and a sub row is a boxed derivation.
type Row struct {
	ID      int
	Formula syntax.Formula
	Term    syntax.Term
	Sub     *Proof
	Rule    Rule
	Refs    []int
}

// Proof is an ordered sequence of rows.
type Proof struct {
	Rows []*Row
}

// Line states a formula justified by a rule applied to earlier rows.
func Line(id int, f syntax.Formula, rule Rule, refs ...int) *Row {
	return &Row{ID: id, Formula: f, Rule: rule, Refs: refs}
}

// Witness binds a fresh term as the first element of a box.
func Witness(id int, t syntax.Term) *Row {
	return &Row{ID: id, Term: t}
}

// Box opens a sub-derivation. Its first formula row is the assumption
// discharged by the rule that later cites the box.
func Box(id int, rows ...*Row) *Row {
	return &Row{ID: id, Sub: &Proof{Rows: rows}}
}

// NewProof assembles rows into a proof.
func NewProof(rows ...*Row) *Proof {
	return &Proof{Rows: rows}
}

// fact is what a checked row contributes to the sound set. Formula rows
// contribute their formula, term rows their witness, box rows the whole
// sub-derivation so discharge rules can inspect its first and last rows.
type fact struct {
	formula syntax.Formula
	term    syntax.Term
	box     *Proof
}

// Check reports whether every row of the proof is validly justified.
func Check(p *Proof) bool {
	if p == nil {
		return false
	}
	return check(p, map[int]fact{})
}

func check(p *Proof, sound map[int]fact) bool {
	for _, row := range p.Rows {
		switch {
		case row.Formula != nil:
			validate, ok := validators[row.Rule]
			if !ok {
				return false
			}
			args := make([]fact, 0, len(row.Refs))
			for _, ref := range row.Refs {
				// References to rows not in scope are dropped, and the
				// validator fails on the short argument list.
				if f, ok := sound[ref]; ok {
					args = append(args, f)
				}
			}
			if !validate(row.Formula, args) {
				return false
			}
			sound[row.ID] = fact{formula: row.Formula}

		case row.Sub != nil:
			if t := boxWitness(row.Sub); t != nil && occursInScope(t, sound) {
				// The witness must be fresh: it may not appear in any
				// formula proven before the box opened.
				return false
			}
			if !check(row.Sub, maps.Clone(sound)) {
				return false
			}
			sound[row.ID] = fact{box: row.Sub}

		case row.Term != nil:
			sound[row.ID] = fact{term: row.Term}

		default:
			return false
		}
	}
	return true
}

// boxWitness returns the term bound by the box's first row, if any.
func boxWitness(p *Proof) syntax.Term {
	if len(p.Rows) == 0 {
		return nil
	}
	return p.Rows[0].Term
}

func occursInScope(t syntax.Term, sound map[int]fact) bool {
	for _, f := range sound {
		if f.formula != nil && occursInFormula(t, f.formula) {
			return true
		}
		if f.term != nil && occursInTerm(t, f.term) {
			return true
		}
	}
	return false
}

// firstFormula returns the assumption of a box, skipping a leading
// witness row.
func firstFormula(p *Proof) syntax.Formula {
	for _, row := range p.Rows {
		if row.Formula != nil {
			return row.Formula
		}
		if row.Term == nil {
			return nil
		}
	}
	return nil
}

// lastFormula returns the concluding formula of a box.
func lastFormula(p *Proof) syntax.Formula {
	if len(p.Rows) == 0 {
		return nil
	}
	return p.Rows[len(p.Rows)-1].Formula
}
