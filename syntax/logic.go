package syntax

// Logic identifies the formalism a formula belongs to. Every node
// carries exactly one tag, derived structurally: composite nodes take
// the tag of their operands, leaf constants carry an explicit tag.
type Logic string

const (
	// PL is classical propositional logic.
	PL Logic = "pl"

	// FOL is first-order logic.
	FOL Logic = "fol"

	// LTL is linear temporal logic over finite traces.
	LTL Logic = "ltl"

	// PLTL is past linear temporal logic.
	PLTL Logic = "pltl"

	// LDL is linear dynamic logic.
	LDL Logic = "ldl"

	// RE is the regular-expression sublanguage of LDL. It is a
	// formalism in its own right: regular expressions are built from
	// formulas but are not themselves boolean-composable.
	RE Logic = "re"
)

// Logics lists all supported formalisms.
var Logics = []Logic{PL, FOL, LTL, PLTL, LDL, RE}

// Valid reports whether l is one of the supported formalisms.
func (l Logic) Valid() bool {
	switch l {
	case PL, FOL, LTL, PLTL, LDL, RE:
		return true
	}
	return false
}

func (l Logic) String() string { return string(l) }
