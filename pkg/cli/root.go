package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/simpleloco/simpleloco/pkg/cli/internal/output"
	"github.com/simpleloco/simpleloco/pkg/cliconfig"
	"github.com/simpleloco/simpleloco/pkg/logging"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// flagEnv maps persistent flags to the environment variable they override.
var flagEnv = map[string]string{
	"conf-file-path": cliconfig.EnvConfFilePath,
	"base-url":       cliconfig.EnvBaseURL,
	"log-level":      cliconfig.EnvLogLevel,
	"log-format":     cliconfig.EnvLogFormat,
	"no-color":       cliconfig.EnvNoColor,
}

// globals is the state shared by all commands of one invocation.
type globals struct {
	cfg        *cliconfig.CLIConfig
	jsonOutput bool

	logger  *slog.Logger
	printer *output.Printer
}

// NewRootCmd builds the command tree. Flag defaults come from cfg, which is
// updated in place when flags are given.
func NewRootCmd(cfg *cliconfig.CLIConfig) *cobra.Command {
	g := &globals{cfg: cfg}

	rootCmd := &cobra.Command{
		Use:   "simpleloco",
		Short: "Export translations from Loco into platform resource files",
		Long: `simpleloco downloads translations from Loco (localise.biz) and writes them where
Android, iOS, Flutter and Xamarin projects expect them, or into a custom layout.

The export is described by a JSON or YAML configuration file, by default
fastlane/Loco.platform.json. Running simpleloco without a command runs 'export'.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true, // We handle errors in Execute()
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			g.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, g)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.ConfFilePath, "conf-file-path", cfg.ConfFilePath, "The config file path (env "+cliconfig.EnvConfFilePath+")")
	pf.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "Loco API base URL (env "+cliconfig.EnvBaseURL+")")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env "+cliconfig.EnvLogLevel+")")
	pf.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text, json (env "+cliconfig.EnvLogFormat+")")
	pf.BoolVar((*bool)(&cfg.NoColor), "no-color", bool(cfg.NoColor), "Disable colored output (env "+cliconfig.EnvNoColor+")")
	pf.BoolVar(&g.jsonOutput, "json", false, "Output command results in JSON format")

	rootCmd.AddCommand(
		newExportCmd(g),
		newValidateCmd(g),
		newVersionCmd(g),
	)
	return rootCmd
}

func (g *globals) setup(cmd *cobra.Command) {
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if env, ok := flagEnv[f.Name]; ok {
			g.cfg.MarkFlag(env)
		}
	})

	g.printer = output.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), bool(g.cfg.NoColor))
	level, ok := logging.LookupLevel(g.cfg.LogLevel)
	if !ok {
		g.printer.Warn("unknown log level %q, using info", g.cfg.LogLevel)
	}
	format, ok := logging.LookupFormat(g.cfg.LogFormat)
	if !ok {
		g.printer.Warn("unknown log format %q, using text", g.cfg.LogFormat)
	}

	g.logger = logging.New(logging.Config{
		Level:   level,
		Format:  format,
		Output:  cmd.ErrOrStderr(),
		NoColor: bool(g.cfg.NoColor),
	})

	g.logger.Debug("settings",
		"confFilePath", g.cfg.ConfFilePath,
		"confFilePathSource", g.cfg.Sources[cliconfig.EnvConfFilePath],
		"baseURL", g.cfg.BaseURL,
	)
}

// Execute runs the command line and returns the process exit code.
// This is called by main.main().
func Execute() int {
	cfg, err := cliconfig.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd(cfg).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
