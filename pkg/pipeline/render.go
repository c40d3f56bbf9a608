package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/sweepskin/pkg/display"
	"github.com/matzehuels/sweepskin/pkg/observability"
	"github.com/matzehuels/sweepskin/pkg/render"
	"github.com/matzehuels/sweepskin/pkg/skin"
)

// RenderPNG rasterizes a resolved display and encodes it as PNG.
func (r *Runner) RenderPNG(ctx context.Context, s *skin.Skin, d *display.Display) ([]byte, error) {
	size := d.Size()
	observability.Pipeline().OnRenderStart(ctx, s.Manifest().Name, size.W, size.H)
	start := time.Now()

	data, err := renderPNG(d)
	observability.Pipeline().OnRenderComplete(ctx, s.Manifest().Name, len(data), time.Since(start), err)
	return data, err
}

func renderPNG(d *display.Display) ([]byte, error) {
	c, err := render.Render(d)
	if err != nil {
		return nil, err
	}
	return render.EncodePNG(c.Image())
}
