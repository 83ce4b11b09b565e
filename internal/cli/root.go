package cli

import (
	"errors"
	"fmt"

	"github.com/mgpai22/srt2vtt/internal/config"
	"github.com/mgpai22/srt2vtt/internal/logging"
	"github.com/mgpai22/srt2vtt/internal/subtitle"
	"github.com/spf13/cobra"
)

var errNoFilename = errors.New("No filename passed as argument.")

var (
	verbose    bool
	configPath string
	cfg        *config.Config
	logger     *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "srt2vtt [srt_file]",
	Short: "Convert SubRip subtitles to WebVTT",
	Long: `srt2vtt converts a SubRip (.srt) subtitle file to WebVTT (.vtt).

The output is written next to the input with the last four characters
of the name replaced by .vtt. Timestamp lines have their millisecond
commas turned into periods and a WEBVTT header is added; every other
line is copied as is.

Examples:
  srt2vtt movie.srt
  srt2vtt movie.srt -o subs/movie.vtt
  srt2vtt movie.srt --strict --timestamps-only
  srt2vtt watch ./incoming`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errNoFilename
		}
		return cobra.MaximumNArgs(1)(cmd, args)
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	RunE: runConvert,
}

// Execute runs the command tree and reports any failure on stdout as
// "Error: <message>".
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(rootCmd.OutOrStdout(), "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", "", "Path to YAML config file")
	rootCmd.Flags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		Bool("strict", false, "Require a .srt extension on input files")
	rootCmd.PersistentFlags().
		Bool("timestamps-only", false, "Only rewrite commas inside timestamps")
}

func setup(cmd *cobra.Command) error {
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		def := config.Default()
		cfg = &def
	}

	l, err := logging.New(loggerOptions(cfg, verbose))
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	logger = l
	return nil
}

// --verbose raises the level but keeps the configured format
func loggerOptions(c *config.Config, verbose bool) logging.Options {
	opts := logging.Options{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
	}
	if verbose {
		opts.Level = "debug"
	}
	return opts
}

// converter options from config, overridden by flags that were set
func converterFromFlags(cmd *cobra.Command) subtitle.Converter {
	strict := cfg.Convert.StrictExtension
	if cmd.Flags().Changed("strict") {
		strict, _ = cmd.Flags().GetBool("strict")
	}
	timestampsOnly := cfg.Convert.TimestampsOnly
	if cmd.Flags().Changed("timestamps-only") {
		timestampsOnly, _ = cmd.Flags().GetBool("timestamps-only")
	}

	c := subtitle.Converter{StrictExtension: strict}
	if timestampsOnly {
		c.Scope = subtitle.ScopeTimestamp
	}
	return c
}

func runConvert(cmd *cobra.Command, args []string) error {
	srtPath := args[0]
	outputPath, _ := cmd.Flags().GetString("output")
	converter := converterFromFlags(cmd)

	logger.Debugw("Converting subtitle file",
		"input", srtPath,
		"output", outputPath,
		"strict", converter.StrictExtension,
		"timestamps_only", converter.Scope == subtitle.ScopeTimestamp,
	)

	written, err := subtitle.ConvertFile(srtPath, outputPath, converter)
	if err != nil {
		return err
	}

	logger.Infow("Converted subtitle file",
		"input", srtPath,
		"output", written,
	)
	return nil
}
