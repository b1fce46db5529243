package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/conneroisu/bizconsult/internal/contact"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check contact form values against the form rules",
	Long: `Run the contact form validator over the given values and print the
inline error each field would show. Exits with an error when the
submission would be rejected.

Examples:
  bizconsult validate --name Иван --email ivan@example.com \
    --phone "+7 (999) 123-45-67" --message "Нужна консультация"
  bizconsult validate --email bad -o json`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

var (
	validateFlags      *StandardFlags
	validateSubmission contact.Submission
)

func init() {
	rootCmd.AddCommand(validateCmd)

	validateFlags = AddStandardFlags(validateCmd, "output")
	AddFlagValidation(validateCmd, "output", func(format string) error {
		return ValidateFormatWithSuggestion(format, outputFormats)
	})

	validateCmd.Flags().StringVar(&validateSubmission.Name, "name", "", "Name field value")
	validateCmd.Flags().StringVar(&validateSubmission.Email, "email", "", "Email field value")
	validateCmd.Flags().StringVar(&validateSubmission.Phone, "phone", "", "Phone field value")
	validateCmd.Flags().StringVar(&validateSubmission.Message, "message", "", "Message field value")
}

// validationReport is the structured form of a validation run.
type validationReport struct {
	Accepted bool              `json:"accepted" yaml:"accepted"`
	Errors   map[string]string `json:"errors" yaml:"errors"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	result := contact.Validate(validateSubmission)
	out := cmd.OutOrStdout()

	var err error
	if validateFlags.OutputFormat == formatTable {
		err = writeValidationTable(out, result)
	} else {
		err = writeStructured(out, validateFlags.OutputFormat, validationReport{
			Accepted: result.OK(),
			Errors:   result.Messages(),
		})
	}
	if err != nil {
		return err
	}

	if !result.OK() {
		return fmt.Errorf("submission rejected: %w", result.Err())
	}
	return nil
}

func writeValidationTable(out io.Writer, result contact.Result) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tSTATUS\tMESSAGE")
	for _, field := range contact.Fields() {
		status := "ok"
		if result.Has(field) {
			status = string(result.Kind(field))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", field, status, result.Message(field))
	}
	return w.Flush()
}
