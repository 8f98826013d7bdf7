package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/sequent/parser"
	"github.com/roach88/sequent/render"
	"github.com/roach88/sequent/semantics"
)

// EvalResult holds the outcome of evaluating a propositional formula.
type EvalResult struct {
	Formula string   `json:"formula"`
	Atoms   []string `json:"atoms"`
	Value   bool     `json:"value"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	var atoms []string

	cmd := &cobra.Command{
		Use:   "eval <formula>",
		Short: "Evaluate a propositional formula against an interpretation",
		Long: `Evaluate a propositional formula against a truth assignment.

Atoms named with --atom are true; every other atom is false. Exits 0
when the formula holds and 1 when it does not.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, args[0], atoms, cmd)
		},
	}

	cmd.Flags().StringArrayVar(&atoms, "atom", nil, "atom to set true (repeatable)")

	return cmd
}

func runEval(opts *RootOptions, input string, atoms []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	f, err := parser.ParsePL(input)
	if err != nil {
		return outputCommandError(formatter, ErrCodeParse, err.Error())
	}

	canonical, err := render.ToString(f)
	if err != nil {
		return outputCommandError(formatter, ErrCodeGeneric, err.Error())
	}

	formatter.VerboseLog("Evaluating %s with %d true atom(s)", canonical, len(atoms))

	value, err := semantics.Evaluate(f, semantics.FromSet(atoms...))
	if err != nil {
		return outputCommandError(formatter, ErrCodeEval, err.Error())
	}

	result := EvalResult{
		Formula: canonical,
		Atoms:   atoms,
		Value:   value,
	}

	if formatter.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(formatter.Writer, value)
	}

	if !value {
		return NewExitError(ExitFailure, fmt.Sprintf("formula %s does not hold", canonical))
	}
	return nil
}
