package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/repsac/gp-sort-media/internal/config"
	"github.com/repsac/gp-sort-media/internal/logging"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

const programName = "gpsort"

var (
	// Persistent flag values; merged over the config file in loadConfig.
	flagDryRun  bool
	flagVerbose bool
	flagNoColor bool
	flagConfig  string

	cfg    config.Config
	logger *logging.Logger

	rootCmd = &cobra.Command{
		Use:   programName,
		Short: "Organize action-camera media dumps",
		Long: TitleStyle.Render(programName) + SubtitleStyle.Render(" - action-camera media organizer") + `

gpsort takes the flat file dump of a GoPro-style memory card (100GOPRO),
buckets the files by extension, renames the video/proxy/thumbnail buckets
to HIRES, PROXY and THUMBNAILS, and renames each proxy and thumbnail file
so it shares a stem with its high-resolution sibling.`,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagDryRun, "dry-run", "d", false, "preview renames without performing them")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable styled output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default is ~/.config/gpsort/config.toml)")

	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(watchCmd)
}

// loadConfig merges the config file and CLI flags, validates the result, and
// builds the logger. Called from each subcommand's PreRunE so --help never
// touches the filesystem.
func loadConfig(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}

	cfg.DryRun = flagDryRun
	if flagVerbose {
		cfg.Verbose = true
	}
	if flagNoColor {
		cfg.Color = config.ColorNever
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger = logging.New(logging.Options{
		Verbose: cfg.Verbose,
		NoColor: cfg.Color == config.ColorNever,
	})
	return nil
}

// fail logs the failure, flushes the run transcript to a timestamped error
// log in the working directory, and hands the error back to cobra.
func fail(err error) error {
	logger.Error("%v", err)

	cwd, cwdErr := os.Getwd()
	if cwdErr != nil {
		return err
	}
	path, logErr := logger.WriteErrorLog(cwd, programName, err)
	if logErr != nil {
		logger.Warn("Cannot write error log: %v", logErr)
		return err
	}
	fmt.Fprintln(os.Stderr, SubtitleStyle.Render("Log file: "+path))
	return err
}

// Execute runs the CLI. Called by main.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func versionString() string {
	if version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", version, commit)
}
