package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mgpai22/srt2vtt/internal/subtitle"
	"github.com/mgpai22/srt2vtt/internal/watch"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Convert SubRip files as they appear in a directory",
	Long: `Watch a directory and convert every .srt file created or rewritten
in it. A file is converted once it has been quiet for the settle delay.

The directory comes from the argument or from watch.dir in the config
file. Converted files are written next to the source, or into
watch.output_dir / --output-dir when set. Stop with Ctrl+C.

Examples:
  srt2vtt watch ./incoming
  srt2vtt watch --output-dir ./converted
  srt2vtt watch -c srt2vtt.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().
		String("output-dir", "", "Directory for converted files (default: next to source)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := cfg.Watch.Dir
	if len(args) == 1 {
		dir = args[0]
	}
	if dir == "" {
		return fmt.Errorf(
			"watch directory is required: pass it as an argument or set watch.dir in the config",
		)
	}
	if info, err := os.Stat(dir); err != nil {
		return fmt.Errorf("watch directory not found: %s", dir)
	} else if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	outputDir := cfg.Watch.OutputDir
	if cmd.Flags().Changed("output-dir") {
		outputDir, _ = cmd.Flags().GetString("output-dir")
	}
	converter := converterFromFlags(cmd)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	w, err := watch.New(
		dir,
		convertHandler(converter, outputDir),
		logger,
		cfg.Watch.Delay(),
	)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer func() {
		_ = w.Close()
	}()

	logger.Infow("Starting watch mode",
		"dir", dir,
		"output_dir", outputDir,
		"settle_delay", cfg.Watch.Delay(),
	)

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}

func convertHandler(converter subtitle.Converter, outputDir string) watch.Handler {
	return func(ctx context.Context, path string) error {
		dst := ""
		if outputDir != "" {
			name, err := converter.Destination(filepath.Base(path))
			if err != nil {
				return err
			}
			dst = filepath.Join(outputDir, name)
		}

		written, err := subtitle.ConvertFile(path, dst, converter)
		if err != nil {
			return err
		}
		logger.Infow("Converted subtitle file",
			"input", path,
			"output", written,
		)
		return nil
	}
}
