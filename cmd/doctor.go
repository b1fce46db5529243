package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/conneroisu/bizconsult/internal/config"
	"github.com/conneroisu/bizconsult/internal/contact"
	"github.com/conneroisu/bizconsult/internal/content"
	"github.com/conneroisu/bizconsult/internal/errors"
	"github.com/conneroisu/bizconsult/internal/page"
	"github.com/conneroisu/bizconsult/internal/version"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the configuration and the rendered page",
	Long: `Diagnose the site before it goes out. The doctor command validates the
configuration, renders the landing page and checks that it carries:

- Every section anchor the navigation links to
- The four contact form controls
- A document title and language

Examples:
  bizconsult doctor              # Human readable report
  bizconsult doctor -o json      # Output as JSON for tooling`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

var (
	doctorFlags   *StandardFlags
	doctorVerbose bool
)

// Diagnostic statuses.
const (
	statusOK      = "ok"
	statusWarning = "warning"
	statusError   = "error"
	statusInfo    = "info"
)

// DiagnosticResult represents the result of a diagnostic check
type DiagnosticResult struct {
	Name       string                 `json:"name" yaml:"name"`
	Category   string                 `json:"category" yaml:"category"`
	Status     string                 `json:"status" yaml:"status"`
	Message    string                 `json:"message" yaml:"message"`
	Suggestion string                 `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

// DoctorReport represents the complete diagnostic report
type DoctorReport struct {
	Timestamp   time.Time          `json:"timestamp" yaml:"timestamp"`
	Environment map[string]string  `json:"environment" yaml:"environment"`
	Results     []DiagnosticResult `json:"results" yaml:"results"`
	Summary     ReportSummary      `json:"summary" yaml:"summary"`
}

// ReportSummary provides an overview of diagnostic results
type ReportSummary struct {
	Total    int `json:"total" yaml:"total"`
	OK       int `json:"ok" yaml:"ok"`
	Warnings int `json:"warnings" yaml:"warnings"`
	Errors   int `json:"errors" yaml:"errors"`
	Info     int `json:"info" yaml:"info"`
}

func init() {
	rootCmd.AddCommand(doctorCmd)

	doctorFlags = AddStandardFlags(doctorCmd, "output")
	AddFlagValidation(doctorCmd, "output", func(format string) error {
		return ValidateFormatWithSuggestion(format, outputFormats)
	})
	doctorCmd.Flags().BoolVarP(&doctorVerbose, "verbose", "v", false, "Show informational checks and details")
}

// pageCheck inspects the rendered landing page.
type pageCheck func(*page.Outline) DiagnosticResult

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	report, renderErr := buildDoctorReport(ctx, cfg)
	errors.NewErrorHandler(logger.WithComponent("doctor")).Handle(ctx, renderErr)

	out := cmd.OutOrStdout()
	if doctorFlags.OutputFormat == formatTable {
		writeDoctorTable(out, report, doctorVerbose)
	} else if err := writeStructured(out, doctorFlags.OutputFormat, report); err != nil {
		return fmt.Errorf("failed to output report: %w", err)
	}

	if report.Summary.Errors > 0 {
		return fmt.Errorf("doctor found %d problem(s)", report.Summary.Errors)
	}
	return nil
}

// buildDoctorReport runs every check against cfg. The returned error is
// the render failure, if any, which the report already lists.
func buildDoctorReport(ctx context.Context, cfg *config.Config) (*DoctorReport, error) {
	report := &DoctorReport{
		Timestamp: time.Now(),
		Environment: map[string]string{
			"version":     version.GetShortVersion(),
			"go_version":  runtime.Version(),
			"platform":    runtime.GOOS + "/" + runtime.GOARCH,
			"environment": cfg.Server.Environment,
			"lang":        cfg.Site.Tag().String(),
		},
	}

	report.Results = append(report.Results, checkConfiguration(cfg)...)

	outline, result, err := renderOutline(ctx, cfg)
	report.Results = append(report.Results, result)
	if outline != nil {
		for _, check := range []pageCheck{checkDocument, checkAnchors, checkFormControls} {
			report.Results = append(report.Results, check(outline))
		}
	}

	report.Summary = calculateSummary(report.Results)
	return report, err
}

func checkConfiguration(cfg *config.Config) []DiagnosticResult {
	validation := config.ValidateConfigWithDetails(cfg)

	var results []DiagnosticResult
	for _, ve := range validation.Errors {
		results = append(results, configResult(ve, statusError))
	}
	for _, ve := range validation.Warnings {
		results = append(results, configResult(ve, statusWarning))
	}

	if len(results) == 0 {
		results = append(results, DiagnosticResult{
			Name:     "Configuration",
			Category: "Configuration",
			Status:   statusOK,
			Message:  "Configuration is valid",
			Details: map[string]interface{}{
				"address":    cfg.Server.Addr(),
				"hot_reload": cfg.Development.HotReload,
				"assets_dir": cfg.Site.AssetsDir,
			},
		})
	}
	return results
}

func configResult(ve config.ValidationError, status string) DiagnosticResult {
	return DiagnosticResult{
		Name:       ve.Field,
		Category:   "Configuration",
		Status:     status,
		Message:    ve.Message,
		Suggestion: strings.Join(ve.Suggestions, "; "),
	}
}

func renderOutline(ctx context.Context, cfg *config.Config) (*page.Outline, DiagnosticResult, error) {
	result := DiagnosticResult{
		Name:     "Render",
		Category: "Page",
		Status:   statusOK,
	}

	var buf bytes.Buffer
	if err := page.Landing(page.Props{Lang: cfg.Site.Tag()}).Render(ctx, &buf); err != nil {
		result.Status = statusError
		result.Message = fmt.Sprintf("Landing page failed to render: %v", err)
		return nil, result, errors.ErrRenderFailed("landing", err)
	}

	size := buf.Len()
	outline, err := page.Inspect(&buf)
	if err != nil {
		result.Status = statusError
		result.Message = fmt.Sprintf("Rendered page is not parseable HTML: %v", err)
		return nil, result, errors.ErrRenderFailed("landing", err)
	}

	result.Message = "Landing page renders"
	result.Details = map[string]interface{}{"bytes": size}
	return outline, result, nil
}

func checkDocument(o *page.Outline) DiagnosticResult {
	result := DiagnosticResult{
		Name:     "Document",
		Category: "Page",
		Status:   statusOK,
		Message:  fmt.Sprintf("Title %q, lang %q", o.Title, o.Lang),
	}
	switch {
	case o.Title == "":
		result.Status = statusError
		result.Message = "Page has no <title>"
	case o.Lang == "":
		result.Status = statusWarning
		result.Message = "Page has no lang attribute"
		result.Suggestion = "Set site.lang in the configuration"
	}
	return result
}

func checkAnchors(o *page.Outline) DiagnosticResult {
	required := make([]string, 0, len(content.Anchors()))
	for _, a := range content.Anchors() {
		required = append(required, string(a))
	}
	return requireAll("Section anchors", required, o.Missing(required...))
}

func checkFormControls(o *page.Outline) DiagnosticResult {
	required := make([]string, 0, len(contact.Fields()))
	for _, f := range contact.Fields() {
		required = append(required, f.String())
	}
	return requireAll("Contact form controls", required, o.MissingControls(required...))
}

func requireAll(name string, required, missing []string) DiagnosticResult {
	result := DiagnosticResult{
		Name:     name,
		Category: "Page",
		Status:   statusOK,
		Message:  fmt.Sprintf("All %d present", len(required)),
	}
	if len(missing) > 0 {
		result.Status = statusError
		result.Message = "Missing: " + strings.Join(missing, ", ")
		result.Details = map[string]interface{}{"missing": missing}
	}
	return result
}

func calculateSummary(results []DiagnosticResult) ReportSummary {
	summary := ReportSummary{Total: len(results)}
	for _, result := range results {
		switch result.Status {
		case statusOK:
			summary.OK++
		case statusWarning:
			summary.Warnings++
		case statusError:
			summary.Errors++
		case statusInfo:
			summary.Info++
		}
	}
	return summary
}

func writeDoctorTable(out io.Writer, report *DoctorReport, verbose bool) {
	fmt.Fprintln(out, "BizConsult Doctor")
	fmt.Fprintln(out, "=================")

	for _, result := range report.Results {
		if !verbose && result.Status == statusInfo {
			continue
		}
		fmt.Fprintf(out, "[%-7s] %s: %s\n", strings.ToUpper(result.Status), result.Name, result.Message)
		if result.Suggestion != "" {
			fmt.Fprintf(out, "          suggestion: %s\n", result.Suggestion)
		}
		if verbose {
			for key, value := range result.Details {
				fmt.Fprintf(out, "          %s: %v\n", key, value)
			}
		}
	}

	s := report.Summary
	fmt.Fprintf(out, "\n%d checks: %d ok, %d warnings, %d errors\n", s.Total, s.OK, s.Warnings, s.Errors)
}
