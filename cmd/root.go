package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hopinc/hop-cli/internal/config"
	"github.com/hopinc/hop-cli/internal/version"
	"github.com/hopinc/hop-cli/tui"
)

const skipUpdateCheckAnnotation = "skipUpdateCheck"

var (
	settings = &config.Settings{}
	logger   = log.Default()
	verbose  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "hop",
	Short:         "Interact with Hop via command line",
	Version:       version.BuildVersion,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setup(); err != nil {
			return err
		}
		versionNotice(cmd)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command. It is called once by main.main().
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		PrintError(err)
		os.Exit(1)
	}
}

func init() {
	tui.InitStyles(os.Stdout)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug logs")
	rootCmd.SetVersionTemplate(fmt.Sprintf("hop {{.Version}} (%s, %s)\n", version.BuildCommit, version.BuildDate))
}

// setup loads settings and installs the process wide logger.
func setup() error {
	s, err := config.Load(config.LoadOptions{})
	if err != nil {
		return err
	}
	settings = s

	logger = newLogger(s.LogLevel, verbose)
	log.SetDefault(logger)
	return nil
}

func newLogger(level string, verbose bool) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	if verbose {
		lvl = log.DebugLevel
	}
	l.SetLevel(lvl)
	return l
}

func shouldSkipUpdateCheck(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}

	for current := cmd; current != nil; current = current.Parent() {
		switch current.Name() {
		case "help", "completions", "update", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
		if current.Annotations[skipUpdateCheckAnnotation] == "true" {
			return true
		}
	}

	if helpFlag := cmd.Flags().Lookup("help"); helpFlag != nil && helpFlag.Changed {
		return true
	}
	return false
}
