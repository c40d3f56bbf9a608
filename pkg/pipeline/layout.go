package pipeline

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/matzehuels/sweepskin/pkg/display"
	"github.com/matzehuels/sweepskin/pkg/errors"
	"github.com/matzehuels/sweepskin/pkg/layout"
	"github.com/matzehuels/sweepskin/pkg/observability"
	"github.com/matzehuels/sweepskin/pkg/skin"
)

// BuildDisplay constructs the display tree for the given skin and resolves
// its geometry, expanding to the requested size when one is set.
func (r *Runner) BuildDisplay(ctx context.Context, s *skin.Skin, opts Options) (*display.Display, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	rows, cols, left, right, err := opts.resolve(s.Manifest())
	if err != nil {
		return nil, err
	}

	observability.Pipeline().OnLayoutStart(ctx, opts.Skin, rows, cols)
	start := time.Now()

	d, err := buildDisplay(s, opts, rows, cols, left, right)
	observability.Pipeline().OnLayoutComplete(ctx, opts.Skin, time.Since(start), err)
	return d, err
}

func buildDisplay(s *skin.Skin, opts Options, rows, cols, left, right int) (*display.Display, error) {
	d, err := display.New(s,
		display.WithBoardSize(rows, cols),
		display.WithCounterDigits(left, right))
	if err != nil {
		return nil, err
	}

	if opts.Width > 0 || opts.Height > 0 {
		width, height := layout.Keep, layout.Keep
		if opts.Width > 0 {
			width = opts.Width
		}
		if opts.Height > 0 {
			height = opts.Height
		}
		if err := d.Expand(width, height); err != nil {
			return nil, wrapLayoutErr(err, opts)
		}
	}
	return d, nil
}

// wrapLayoutErr turns geometry failures into coded errors so callers can
// tell a size the skin cannot satisfy from an internal fault.
func wrapLayoutErr(err error, opts Options) error {
	var tooSmall *layout.TooSmallError
	var notExp *layout.NotExpandableError
	if stderrors.As(err, &tooSmall) || stderrors.As(err, &notExp) {
		return errors.Wrap(errors.ErrCodeLayout, err,
			"skin cannot render at %dx%d", opts.Width, opts.Height)
	}
	return err
}
