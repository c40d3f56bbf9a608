package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sweepskin/pkg/errors"
	"github.com/matzehuels/sweepskin/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string // output file path
	rows        int    // board rows (0 = from manifest)
	cols        int    // board columns (0 = from manifest)
	width       int    // target width in pixels (0 = natural size)
	height      int    // target height in pixels (0 = natural size)
	leftDigits  int    // left counter digit cells (0 = from manifest)
	rightDigits int    // right counter digit cells (0 = from manifest)
	noCache     bool   // disable the artifact cache
	refresh     bool   // bypass the cache and re-render
}

// renderCommand creates the render command for rasterizing a skin to PNG.
//
// Board and counter dimensions default to the skin's manifest; the manifest
// itself defaults to the classic 16x30 expert board with 3-digit counters.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [skin]",
		Short: "Render a skin to a board PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "board.png", "output file")
	cmd.Flags().IntVar(&opts.rows, "rows", 0, "board rows (default from skin manifest)")
	cmd.Flags().IntVar(&opts.cols, "cols", 0, "board columns (default from skin manifest)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "target width in pixels (default natural size)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "target height in pixels (default natural size)")
	cmd.Flags().IntVar(&opts.leftDigits, "left-digits", 0, "left counter digits (default from skin manifest)")
	cmd.Flags().IntVar(&opts.rightDigits, "right-digits", 0, "right counter digits (default from skin manifest)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, skinPath string, opts *renderOpts) error {
	runner, err := c.newRunner(ctx, opts.noCache, "")
	if err != nil {
		return err
	}
	defer runner.Close()

	sp := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", filepath.Base(skinPath)))
	sp.Start()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Skin:        skinPath,
		Rows:        opts.rows,
		Cols:        opts.cols,
		Width:       opts.width,
		Height:      opts.height,
		LeftDigits:  opts.leftDigits,
		RightDigits: opts.rightDigits,
		Refresh:     opts.refresh,
		Logger:      c.Logger,
	})
	if err != nil {
		sp.StopWithError(errors.UserMessage(err))
		return err
	}
	sp.Stop()
	prog.done(fmt.Sprintf("Rendered %dx%d board", result.Cols, result.Rows))

	if err := os.WriteFile(opts.output, result.PNG, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	name := result.Skin.Name
	if name == "" {
		name = filepath.Base(skinPath)
	}
	printSuccess("Rendered %s", name)
	printFile(opts.output)
	printStats(result.Size, len(result.PNG), result.CacheHit)
	return nil
}
