package deduction

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/sequent/parser"
)

// ProofFile is the YAML notation for a propositional proof. Formulas
// are written in propositional syntax; boxed sub-derivations nest under
// the box key. First-order proofs carry terms and must be built
// programmatically.
type ProofFile struct {
	// Name uniquely identifies this proof.
	Name string `yaml:"name"`

	// Description explains what this proof derives.
	Description string `yaml:"description,omitempty"`

	// Rows lists the proof steps in order.
	Rows []ProofRow `yaml:"rows"`

	// Valid records whether the proof is expected to check. Used by
	// scenario-driven tests; ignored by LoadProof itself.
	Valid *bool `yaml:"valid,omitempty"`
}

// ProofRow is one step of a YAML proof: either a formula row with a
// rule and references, or a box holding nested rows.
type ProofRow struct {
	ID      int        `yaml:"id"`
	Formula string     `yaml:"formula,omitempty"`
	Rule    string     `yaml:"rule,omitempty"`
	Refs    []int      `yaml:"refs,omitempty"`
	Box     []ProofRow `yaml:"box,omitempty"`
}

// LoadProofFile reads a proof notation file and builds the proof.
func LoadProofFile(path string) (*ProofFile, *Proof, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read proof file: %w", err)
	}
	return LoadProof(data)
}

// LoadProof parses YAML proof notation and builds the proof. Unknown
// fields are rejected to catch typos in rule names' siblings early;
// unknown rule names themselves are left for Check to refuse.
func LoadProof(data []byte) (*ProofFile, *Proof, error) {
	var file ProofFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if file.Name == "" {
		return nil, nil, fmt.Errorf("invalid proof: name is required")
	}
	if len(file.Rows) == 0 {
		return nil, nil, fmt.Errorf("invalid proof: rows list is required and must be non-empty")
	}
	proof, err := buildRows(file.Rows)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid proof %q: %w", file.Name, err)
	}
	return &file, proof, nil
}

func buildRows(rows []ProofRow) (*Proof, error) {
	built := make([]*Row, 0, len(rows))
	for i, row := range rows {
		switch {
		case len(row.Box) > 0:
			if row.Formula != "" || row.Rule != "" {
				return nil, fmt.Errorf("rows[%d]: box rows carry no formula or rule", i)
			}
			sub, err := buildRows(row.Box)
			if err != nil {
				return nil, err
			}
			built = append(built, &Row{ID: row.ID, Sub: sub})
		case row.Formula != "":
			if row.Rule == "" {
				return nil, fmt.Errorf("rows[%d]: rule is required for formula rows", i)
			}
			f, err := parser.ParsePL(row.Formula)
			if err != nil {
				return nil, fmt.Errorf("rows[%d]: %w", i, err)
			}
			built = append(built, Line(row.ID, f, Rule(row.Rule), row.Refs...))
		default:
			return nil, fmt.Errorf("rows[%d]: either formula or box is required", i)
		}
	}
	return &Proof{Rows: built}, nil
}
