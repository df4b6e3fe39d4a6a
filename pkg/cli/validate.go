package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simpleloco/simpleloco/pkg/cli/internal/output"
	"github.com/simpleloco/simpleloco/pkg/config"
	"github.com/simpleloco/simpleloco/pkg/export"
)

// validateOutput is the JSON form of the validate command.
type validateOutput struct {
	Valid     bool          `json:"valid"`
	Platform  string        `json:"platform"`
	Directory string        `json:"directory"`
	Locales   []string      `json:"locales"`
	Files     []export.File `json:"files"`
}

func newValidateCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the config file and show the files an export would write",
		Long: `Validate loads the configuration file, checks it and lists the files an export
would write. Loco is not contacted and nothing is written.`,
		Example: `  simpleloco validate
  simpleloco validate --conf-file-path fastlane/Loco.android.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFromFile(g.cfg.ConfFilePath)
			if err != nil {
				return err
			}

			files, err := export.Plan(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if g.jsonOutput {
				return output.JSON(cmd.OutOrStdout(), validateOutput{
					Valid:     true,
					Platform:  string(cfg.Platform()),
					Directory: cfg.Directory(),
					Locales:   cfg.Locales(),
					Files:     files,
				})
			}

			g.printer.Success("%s is valid (platform %s, %d locales)",
				g.cfg.ConfFilePath, cfg.Platform(), len(cfg.Locales()))

			w := output.Table(cmd.OutOrStdout())
			fmt.Fprintln(w, "LOCALE\tEXTENSION\tPATH")
			for _, f := range files {
				fmt.Fprintf(w, "%s\t%s\t%s\n", f.Locale, f.Extension, f.Path)
			}
			return w.Flush()
		},
	}
}
