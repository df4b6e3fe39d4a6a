package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/simpleloco/simpleloco/pkg/cli/internal/output"
	"github.com/simpleloco/simpleloco/pkg/config"
	"github.com/simpleloco/simpleloco/pkg/export"
	"github.com/simpleloco/simpleloco/pkg/loco"
)

func newExportCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export all configured locales from Loco",
		Long: `Export downloads one file per locale and file type from the Loco export API
and writes it using the conventions of the configured platform:

  android   {directory}/values[-{locale}]/strings.xml
  ios       {directory}/{locale}.lproj/Localizable.strings and .stringsdict
            ({directory}/{locale}.lproj/InfoPlist.strings with format "plist")
  flutter   {directory}/intl_messages_{locale}.arb
  xamarin   {directory}/AppResources[.{locale}].resx
  custom    {directory}/{custom_file_name}[.{locale}]{custom_extension}
            ({directory}/{locale}{custom_extension} without custom_file_name)

The first locale is the default locale. The export stops at the first file
Loco does not deliver.`,
		Example: `  # Export using fastlane/Loco.platform.json
  simpleloco export

  # Export using another configuration file
  simpleloco export --conf-file-path fastlane/Loco.ios.yml

  # Same, through the environment
  LOCO_CONF_FILE_PATH=fastlane/Loco.ios.yml simpleloco export`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, g)
		},
	}
}

func runExport(cmd *cobra.Command, g *globals) error {
	cfg, err := config.LoadFromFile(g.cfg.ConfFilePath)
	if err != nil {
		return err
	}

	client := loco.NewClient(cfg.Key(),
		loco.WithBaseURL(g.cfg.BaseURL),
		loco.WithLogger(g.logger),
	)
	exporter := export.New(client,
		export.WithFs(afero.NewOsFs()),
		export.WithLogger(g.logger),
	)

	if !g.jsonOutput {
		g.printer.Message("Exporting files")
	}

	result, err := exporter.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if g.jsonOutput {
		return output.JSON(cmd.OutOrStdout(), result)
	}
	g.printer.Success("Finished exporting files")
	return nil
}
