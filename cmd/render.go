package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/conneroisu/bizconsult/internal/errors"
	"github.com/conneroisu/bizconsult/internal/page"
)

var renderCmd = &cobra.Command{
	Use:     "render",
	Aliases: []string{"r"},
	Short:   "Render the landing page to HTML",
	Long: `Render the landing page with an empty contact form and write the HTML
to stdout or to a file.

Examples:
  bizconsult render                 # Print the page
  bizconsult render --out dist/index.html`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

var renderOut string

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&renderOut, "out", "", "Write the page to this file instead of stdout")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if renderOut != "" {
		f, err := os.Create(renderOut)
		if err != nil {
			return errors.WrapIO(err, errors.ErrCodeInvalidPath, "cannot create "+renderOut)
		}
		defer f.Close()
		w = f
	}

	props := page.Props{Lang: cfg.Site.Tag()}
	if err := page.Landing(props).Render(context.Background(), w); err != nil {
		return errors.ErrRenderFailed("landing", err)
	}

	if renderOut != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "Wrote", renderOut)
	}
	return nil
}
