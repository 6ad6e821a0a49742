package terminal

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/de-tools/trackplot/pkg/models/domain"
	"github.com/de-tools/trackplot/pkg/runtime/terminal/commands"
	"github.com/de-tools/trackplot/pkg/runtime/terminal/export"
	"github.com/de-tools/trackplot/pkg/services/config"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Exit codes returned by the trackplot binary.
const (
	ExitOK = iota
	ExitFailure
	ExitMissingFile
	ExitEmptyData
	ExitMissingColumn
	ExitUnparseableDate
	ExitMalformed
)

// CLI represents the command-line interface
type CLI struct {
	runtime *commands.Runtime
	logs    io.Writer
	rootCmd *cobra.Command

	configPath   string
	profilesPath string
	logLevel     string
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	Logs   io.Writer
	Args   []string
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logs == nil {
		opts.Logs = os.Stderr
	}

	cli := &CLI{
		logs: opts.Logs,
		runtime: &commands.Runtime{
			Out: opts.Output,
			Reporters: map[string]commands.ReportHandler{
				"table": export.NewReporter(opts.Output),
				"plain": NewReporter(opts.Output),
			},
		},
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetErr(opts.Logs)
	if opts.Args != nil {
		cli.rootCmd.SetArgs(opts.Args)
	}
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "trackplot",
		Short:             "Charts and history for food and weight tracking CSVs",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.setup,
	}

	cmd.PersistentFlags().StringVar(&cli.configPath, "config", "", "Path to a YAML settings file")
	cmd.PersistentFlags().StringVar(&cli.profilesPath, "profiles", "", "Path to an INI file with chart profiles")
	cmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(commands.NewFoodCmd(cli.runtime))
	cmd.AddCommand(commands.NewWeightCmd(cli.runtime))
	cmd.AddCommand(commands.NewExportCmd(cli.runtime))
	cmd.AddCommand(commands.NewProfilesCmd(cli.runtime))

	return cmd
}

func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	settings, err := config.LoadSettings(cli.configPath)
	if err != nil {
		return err
	}
	if cli.profilesPath != "" {
		settings.Profiles = cli.profilesPath
	}
	if cli.logLevel != "" {
		settings.LogLevel = cli.logLevel
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", settings.LogLevel, err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cli.logs, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))

	registry, err := config.NewRegistry(settings.Profiles)
	if err != nil {
		return fmt.Errorf("failed to create profile registry: %w", err)
	}

	cli.runtime.Settings = settings
	cli.runtime.Profiles = registry
	return nil
}

// ExitCode maps an error returned by Execute to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrMissingFile):
		return ExitMissingFile
	case errors.Is(err, domain.ErrEmptyData):
		return ExitEmptyData
	case errors.Is(err, domain.ErrMissingColumn):
		return ExitMissingColumn
	case errors.Is(err, domain.ErrUnparseableDate):
		return ExitUnparseableDate
	case errors.Is(err, domain.ErrMalformed):
		return ExitMalformed
	default:
		return ExitFailure
	}
}
