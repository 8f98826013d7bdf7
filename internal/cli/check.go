package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/sequent/deduction"
)

// CheckResult holds the outcome of checking a proof file.
type CheckResult struct {
	File  string `json:"file"`
	Name  string `json:"name"`
	Rows  int    `json:"rows"`
	Valid bool   `json:"valid"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <proof.yaml>",
		Short: "Check a natural-deduction proof",
		Long: `Check a natural-deduction proof loaded from a YAML file.

Each row names a formula, the inference rule that derives it, and the
earlier rows it depends on. Exits 0 when every row is justified and 1
when the proof is invalid.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	file, proof, err := deduction.LoadProofFile(path)
	if err != nil {
		return outputCommandError(formatter, ErrCodeProof, err.Error())
	}

	formatter.VerboseLog("Checking proof %q (%d row(s))", file.Name, len(proof.Rows))

	valid := deduction.Check(proof)

	result := CheckResult{
		File:  path,
		Name:  file.Name,
		Rows:  len(proof.Rows),
		Valid: valid,
	}

	if formatter.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else if valid {
		fmt.Fprintf(formatter.Writer, "✓ proof %q valid\n", file.Name)
	} else {
		fmt.Fprintf(formatter.Writer, "✗ proof %q invalid\n", file.Name)
	}

	if !valid {
		return NewExitError(ExitFailure, fmt.Sprintf("proof %q is invalid", file.Name))
	}
	return nil
}
