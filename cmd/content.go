package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/conneroisu/bizconsult/internal/content"
)

var contentCmd = &cobra.Command{
	Use:     "content",
	Aliases: []string{"c"},
	Short:   "Print the static page content",
	Long: `Print the fixed tables the landing page is built from.

Examples:
  bizconsult content                       # Every table
  bizconsult content --section services    # Only the services grid
  bizconsult content -s team -o json       # Team roster as JSON`,
	Args: cobra.NoArgs,
	RunE: runContent,
}

const sectionAll = "all"

var contentSections = []string{"services", "team", "stats", "contacts", sectionAll}

var (
	contentFlags   *StandardFlags
	contentSection string
)

func init() {
	rootCmd.AddCommand(contentCmd)

	contentFlags = AddStandardFlags(contentCmd, "output")
	contentCmd.Flags().StringVarP(&contentSection, "section", "s", sectionAll,
		"Section to print ("+strings.Join(contentSections, "|")+")")

	AddFlagValidation(contentCmd, "output", func(format string) error {
		return ValidateFormatWithSuggestion(format, outputFormats)
	})
	AddFlagValidation(contentCmd, "section", func(section string) error {
		return ValidateFormatWithSuggestion(section, contentSections)
	})
}

// contentDump is the structured form of the tables.
type contentDump struct {
	Services []content.Service     `json:"services,omitempty" yaml:"services,omitempty"`
	Team     []content.Member      `json:"team,omitempty" yaml:"team,omitempty"`
	Stats    []content.Stat        `json:"stats,omitempty" yaml:"stats,omitempty"`
	Contacts []content.ContactCard `json:"contacts,omitempty" yaml:"contacts,omitempty"`
}

func selectContent(section string) (contentDump, error) {
	var dump contentDump
	all := section == sectionAll

	if all || section == "services" {
		dump.Services = content.Services()
	}
	if all || section == "team" {
		dump.Team = content.Team()
	}
	if all || section == "stats" {
		dump.Stats = content.Stats()
	}
	if all || section == "contacts" {
		dump.Contacts = content.ContactCards()
	}

	if !all && dump.Services == nil && dump.Team == nil && dump.Stats == nil && dump.Contacts == nil {
		return dump, ValidateFormatWithSuggestion(section, contentSections)
	}
	return dump, nil
}

func runContent(cmd *cobra.Command, args []string) error {
	dump, err := selectContent(contentSection)
	if err != nil {
		return err
	}

	if contentFlags.OutputFormat == formatTable {
		return writeContentTable(cmd.OutOrStdout(), dump)
	}
	return writeStructured(cmd.OutOrStdout(), contentFlags.OutputFormat, dump)
}

func writeContentTable(out io.Writer, dump contentDump) error {
	title := cases.Title(language.English)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	heading := func(name string) {
		fmt.Fprintf(w, "\n== %s ==\n", title.String(name))
	}

	if dump.Services != nil {
		heading("services")
		fmt.Fprintln(w, "ICON\tTITLE\tDESCRIPTION")
		for _, s := range dump.Services {
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.Icon, s.Title, s.Description)
		}
	}

	if dump.Team != nil {
		heading("team")
		fmt.Fprintln(w, "NAME\tROLE\tPHOTO")
		for _, m := range dump.Team {
			fmt.Fprintf(w, "%s\t%s\t%s\n", m.Name, m.Role, m.Photo)
		}
	}

	if dump.Stats != nil {
		heading("stats")
		fmt.Fprintln(w, "VALUE\tLABEL")
		for _, s := range dump.Stats {
			fmt.Fprintf(w, "%s\t%s\n", s.Value, s.Label)
		}
	}

	if dump.Contacts != nil {
		heading("contacts")
		fmt.Fprintln(w, "ICON\tTITLE\tDETAILS")
		for _, c := range dump.Contacts {
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.Icon, c.Title, strings.Join(c.Lines, "; "))
		}
	}

	return w.Flush()
}
