package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/sequent/parser"
	"github.com/roach88/sequent/render"
	"github.com/roach88/sequent/syntax"
)

// ParseResult holds the outcome of parsing a single formula.
type ParseResult struct {
	Logic       string `json:"logic"`
	Input       string `json:"input"`
	Canonical   string `json:"canonical"`
	Fingerprint string `json:"fingerprint"`
}

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <logic> <formula>",
		Short: "Parse a formula and print its canonical form",
		Long: `Parse a formula of the given formalism (pl, ltl, pltl, ldl) and
print its normalized canonical rendering and structural fingerprint.

The canonical form reflects construction-time normalization: flattened
associative connectives, deduplicated operands, and simplified constants.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runParse(opts *RootOptions, logicName, input string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	l := syntax.Logic(strings.ToLower(logicName))
	if !l.Valid() {
		return outputCommandError(formatter, ErrCodeParse,
			fmt.Sprintf("unknown logic %q: must be one of pl, ltl, pltl, ldl", logicName))
	}

	formatter.VerboseLog("Parsing %s formula: %s", l, input)

	f, err := parser.Parse(l, input)
	if err != nil {
		return outputCommandError(formatter, ErrCodeParse, err.Error())
	}

	canonical, err := render.ToString(f)
	if err != nil {
		return outputCommandError(formatter, ErrCodeGeneric, err.Error())
	}

	result := ParseResult{
		Logic:       l.String(),
		Input:       input,
		Canonical:   canonical,
		Fingerprint: f.Fingerprint(),
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintln(formatter.Writer, canonical)
	formatter.VerboseLog("fingerprint: %s", result.Fingerprint)
	return nil
}

// outputCommandError emits a formatted error and returns a command-level
// ExitError (exit code 2).
func outputCommandError(formatter *OutputFormatter, code, message string) error {
	_ = formatter.Error(code, message, nil)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}
