package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sweepskin/pkg/display"
	"github.com/matzehuels/sweepskin/pkg/layout"
	"github.com/matzehuels/sweepskin/pkg/pipeline"
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	rows   int
	cols   int
	width  int
	height int
	plain  bool // print the tree instead of opening the browser
}

// inspectCommand creates the inspect command for browsing a skin's resolved
// layout. It shows the widget tree with minimum sizes, resolved sizes, and
// offsets, which is the fastest way to see why a skin renders at the size
// it does.
func (c *CLI) inspectCommand() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect [skin]",
		Short: "Browse a skin's resolved layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().IntVar(&opts.rows, "rows", 0, "board rows (default from skin manifest)")
	cmd.Flags().IntVar(&opts.cols, "cols", 0, "board columns (default from skin manifest)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "target width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "target height in pixels")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print the layout tree without the interactive browser")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, skinPath string, opts *inspectOpts) error {
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	pipeOpts := pipeline.Options{
		Skin:   skinPath,
		Rows:   opts.rows,
		Cols:   opts.cols,
		Width:  opts.width,
		Height: opts.height,
		Logger: c.Logger,
	}

	s, err := runner.LoadSkin(ctx, pipeOpts)
	if err != nil {
		return err
	}
	d, err := runner.BuildDisplay(ctx, s, pipeOpts)
	if err != nil {
		return err
	}

	title := s.Manifest().Name
	if title == "" {
		title = skinPath
	}
	rows := layoutRows(d)

	if opts.plain {
		fmt.Println(StyleTitle.Render(title))
		for _, r := range rows {
			fmt.Println(r.String())
		}
		return nil
	}

	model := newLayoutModel(title, s.ContentHash(), rows)
	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}

// inspectRow is one line of the layout tree.
type inspectRow struct {
	depth int
	label string
	box   layout.Box
}

func (r inspectRow) String() string {
	indent := ""
	for i := 0; i < r.depth; i++ {
		indent += "  "
	}
	return fmt.Sprintf("%s%-*s  min %-8s size %-8s at %s",
		indent, 24-len(indent), r.label,
		r.box.MinSize(), r.box.Size(), r.box.Offset())
}

// layoutRows flattens the display's widget tree into printable rows.
// Board tiles all share one geometry, so they appear as a single summary
// row instead of hundreds of identical lines.
func layoutRows(d *display.Display) []inspectRow {
	panel := d.Panel()
	board := d.Board()
	rows := []inspectRow{
		{0, "display", d},
		{1, "border", d.Border()},
		{1, "panel", panel},
		{2, "border", panel.Border()},
		{2, fmt.Sprintf("left counter (%d digits)", panel.LeftCounter().Digits()), panel.LeftCounter()},
		{2, "face", panel.Face()},
		{2, fmt.Sprintf("right counter (%d digits)", panel.RightCounter().Digits()), panel.RightCounter()},
		{1, "board", board},
		{2, "border", board.Border()},
		{2, fmt.Sprintf("tiles (%dx%d)", board.Rows(), board.Cols()), board.Tile(0, 0)},
	}
	return rows
}
