package display

import (
	"github.com/matzehuels/sweepskin/pkg/layout"
	"github.com/matzehuels/sweepskin/pkg/skin"
)

// Panel is the upper half of the display: two counters and the face over a
// tiled background, inside the panel's own frame. The counters and face
// never resize; the spacers between them absorb all horizontal excess, which
// is what keeps the face centered.
type Panel struct {
	*layout.Layer

	bg     *GridTile
	border *Border
	left   *Counter
	face   *Face
	right  *Counter
}

// NewPanel builds the panel from a loader scoped to the panel directory.
func NewPanel(l *skin.Loader, leftDigits, rightDigits int) (*Panel, error) {
	bg, err := NewGridTile(l, "bg.png", PasteTile)
	if err != nil {
		return nil, err
	}
	border, err := NewBorder(l.Sub("border"))
	if err != nil {
		return nil, err
	}
	left, err := NewCounter(l.Sub("lcounter"), leftDigits)
	if err != nil {
		return nil, err
	}
	face, err := NewFace(l.Sub("face"))
	if err != nil {
		return nil, err
	}
	right, err := NewCounter(l.Sub("rcounter"), rightDigits)
	if err != nil {
		return nil, err
	}

	// The single row is deliberately unmatched vertically: the counters
	// and the face keep their own heights, aligned to the row top.
	row, err := layout.NewRow(
		[]layout.Box{left, layout.NewBase(0, 0), face, layout.NewBase(0, 0), right},
		layout.WithColumnWeights(0, 1, 0, 1, 0),
		layout.WithRowWeights(0),
		layout.WithRowMatch(false),
	)
	if err != nil {
		return nil, err
	}

	layer, err := layout.NewLayer([]layout.Box{
		bg,
		layout.NewBorder(row, border.Thickness()),
		border,
	})
	if err != nil {
		return nil, err
	}

	return &Panel{
		Layer:  layer,
		bg:     bg,
		border: border,
		left:   left,
		face:   face,
		right:  right,
	}, nil
}

// LeftCounter returns the left (mine count) counter.
func (p *Panel) LeftCounter() *Counter { return p.left }

// RightCounter returns the right (timer) counter.
func (p *Panel) RightCounter() *Counter { return p.right }

// Face returns the panel face.
func (p *Panel) Face() *Face { return p.face }

// Border returns the panel's frame.
func (p *Panel) Border() *Border { return p.border }
