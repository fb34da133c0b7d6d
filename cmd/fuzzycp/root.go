package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/mfranzen/fuzzycp/pkg/config"
)

var (
	// Flags
	configFile string
	debug      bool
	threshold  int
	space      bool
	exclude    []string
	copyDest   string
	moveDest   string
	output     string
	assumeYes  bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fuzzycp <names-file>",
		Short: "Resolve a list of names against local files by fuzzy matching",
		Long: `fuzzycp reads a file of names (one per line), fuzzy-matches each name
against the files of the current directory and reports the best match per
name. With --copy or --move it then transfers the matched files to a
destination directory after an explicit confirmation.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			workDir, err := os.Getwd()
			if err != nil {
				return errors.Errorf("getting working directory: %w", err)
			}

			cfg := &config.Config{
				NamesFile: args[0],
				WorkDir:   workDir,
				Threshold: threshold,
				Space:     space,
				Exclude:   exclude,
				CopyDest:  copyDest,
				MoveDest:  moveDest,
				Output:    output,
				AssumeYes: assumeYes,
			}

			defaults, err := config.LoadDefaults(ctx, configFile)
			if err != nil {
				return errors.Errorf("loading defaults: %w", err)
			}
			cfg.Apply(defaults, cmd.Flags().Changed)

			// Usage errors abort here, before any matching or I/O.
			if err := cfg.Validate(); err != nil {
				return err
			}

			return run(ctx, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	addRootFlags(cmd)
	return cmd
}

// addRootFlags adds the command surface to the root command.
func addRootFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "defaults file path (default: probe .fuzzycp.yaml/.fuzzycp.hcl)")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().IntVarP(&threshold, "threshold", "t", config.DefaultThreshold, "minimum match score to keep, 0-100")
	cmd.Flags().BoolVarP(&space, "space", "s", false, "display disk space occupied by matching files")
	cmd.Flags().StringArrayVarP(&exclude, "exclude", "x", nil, "glob pattern to drop from the candidate set (repeatable)")
	cmd.Flags().StringVar(&copyDest, "copy", "", "copy matched files to this directory")
	cmd.Flags().StringVar(&moveDest, "move", "", "move matched files to this directory")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write matched paths to this file instead of the table (\"-\" = stdout)")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip the transfer confirmation prompt")
}

// setupLogging configures zerolog. Structured logs go to stderr so listing
// output on stdout stays clean; default level keeps normal runs quiet.
func setupLogging() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
