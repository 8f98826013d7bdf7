// Package render serializes formulas to the textual notation their
// formalism's parser accepts. Rendering performs no normalization: it
// purely prints the already-normalized tree, and re-parsing the result
// yields a structurally equal formula.
package render

import (
	"strings"

	"github.com/roach88/sequent/syntax"
)

var binarySymbols = map[syntax.BinaryKind]string{
	syntax.KindAnd:           "&",
	syntax.KindOr:            "|",
	syntax.KindImplies:       "->",
	syntax.KindEquivalence:   "<->",
	syntax.KindUntil:         "U",
	syntax.KindRelease:       "R",
	syntax.KindWeakUntil:     "W",
	syntax.KindStrongRelease: "M",
	syntax.KindSince:         "S",
	syntax.KindSeq:           ";",
	syntax.KindUnion:         "+",
}

var unaryFunctors = map[syntax.UnaryKind]string{
	syntax.KindNext:         "X",
	syntax.KindWeakNext:     "WX",
	syntax.KindEventually:   "F",
	syntax.KindAlways:       "G",
	syntax.KindOnce:         "O",
	syntax.KindHistorically: "H",
	syntax.KindBefore:       "Y",
}

// ToString renders a formula in its formalism's native notation. A node
// kind with no registered notation (first-order nodes have no textual
// grammar) yields an UnsupportedError.
func ToString(f syntax.Formula) (string, error) {
	switch node := f.(type) {
	case *syntax.BoolConst:
		// In the temporal formalisms true/false denote the
		// propositional constants, so the logical ones read tt/ff.
		switch node.Logic() {
		case syntax.LTL, syntax.PLTL, syntax.LDL:
			if node.Value() {
				return "tt", nil
			}
			return "ff", nil
		}
		if node.Value() {
			return "true", nil
		}
		return "false", nil

	case *syntax.PropBool:
		if node.Value() {
			return "true", nil
		}
		return "false", nil

	case *syntax.Atomic:
		return node.Name(), nil

	case *syntax.UnaryOp:
		arg, err := ToString(node.Argument())
		if err != nil {
			return "", err
		}
		switch node.Kind() {
		case syntax.KindNot:
			return "!(" + arg + ")", nil
		case syntax.KindStar:
			return "(" + arg + ")*", nil
		case syntax.KindTest:
			return "?(" + arg + ")", nil
		case syntax.KindProp:
			return arg, nil
		}
		if functor, ok := unaryFunctors[node.Kind()]; ok {
			return functor + "(" + arg + ")", nil
		}
		return "", &syntax.UnsupportedError{Op: "render.ToString", Formula: f}

	case *syntax.BinaryOp:
		symbol, ok := binarySymbols[node.Kind()]
		if !ok {
			return "", &syntax.UnsupportedError{Op: "render.ToString", Formula: f}
		}
		parts := make([]string, 0, node.Arity())
		for _, op := range node.Operands() {
			s, err := ToString(op)
			if err != nil {
				return "", err
			}
			parts = append(parts, "("+s+")")
		}
		return strings.Join(parts, " "+symbol+" "), nil

	case *syntax.Temporal:
		regex, err := ToString(node.Regex())
		if err != nil {
			return "", err
		}
		tail, err := ToString(node.Tail())
		if err != nil {
			return "", err
		}
		if node.Kind() == syntax.KindDiamond {
			return "<" + regex + ">(" + tail + ")", nil
		}
		return "[" + regex + "](" + tail + ")", nil
	}

	return "", &syntax.UnsupportedError{Op: "render.ToString", Formula: f}
}
