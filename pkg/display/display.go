package display

import (
	"github.com/matzehuels/sweepskin/pkg/errors"
	"github.com/matzehuels/sweepskin/pkg/layout"
	"github.com/matzehuels/sweepskin/pkg/skin"
)

// Display is the complete Minesweeper window: the panel stacked over the
// board, framed by the outer border. Its minimum size follows entirely from
// the skin's asset dimensions and the configured board and counter sizes.
type Display struct {
	*layout.Layer

	border *Border
	panel  *Panel
	board  *Board
}

// Option overrides a manifest default at construction.
type Option func(*config)

type config struct {
	rows, cols  int
	leftDigits  int
	rightDigits int
}

// WithBoardSize overrides the board's rows and columns.
func WithBoardSize(rows, cols int) Option {
	return func(c *config) { c.rows, c.cols = rows, cols }
}

// WithCounterDigits overrides the digit cell counts of the two counters.
func WithCounterDigits(left, right int) Option {
	return func(c *config) { c.leftDigits, c.rightDigits = left, right }
}

// New builds a display from a skin, defaulting the board and counter sizes
// from the skin's manifest.
func New(s *skin.Skin, opts ...Option) (*Display, error) {
	m := s.Manifest()
	cfg := config{
		rows:        m.Board.Rows,
		cols:        m.Board.Cols,
		leftDigits:  m.Counter.Digits,
		rightDigits: m.Counter.Digits,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rows < 1 || cfg.cols < 1 || cfg.leftDigits < 1 || cfg.rightDigits < 1 {
		return nil, errors.New(errors.ErrCodeInvalidDimensions,
			"invalid display configuration: %dx%d board, %d/%d digits",
			cfg.rows, cfg.cols, cfg.leftDigits, cfg.rightDigits)
	}

	border, err := NewBorder(s.Sub("border"))
	if err != nil {
		return nil, err
	}
	panel, err := NewPanel(s.Sub("panel"), cfg.leftDigits, cfg.rightDigits)
	if err != nil {
		return nil, err
	}
	board, err := NewBoard(s.Sub("board"), cfg.rows, cfg.cols)
	if err != nil {
		return nil, err
	}

	column, err := layout.NewColumn([]layout.Box{panel, board})
	if err != nil {
		return nil, err
	}
	layer, err := layout.NewLayer([]layout.Box{
		layout.NewBorder(column, border.Thickness()),
		border,
	})
	if err != nil {
		return nil, err
	}

	return &Display{
		Layer:  layer,
		border: border,
		panel:  panel,
		board:  board,
	}, nil
}

// Panel returns the upper panel.
func (d *Display) Panel() *Panel { return d.panel }

// Board returns the minefield board.
func (d *Display) Board() *Board { return d.board }

// Border returns the outer frame.
func (d *Display) Border() *Border { return d.border }

// LeftCounter returns the panel's left counter.
func (d *Display) LeftCounter() *Counter { return d.panel.LeftCounter() }

// RightCounter returns the panel's right counter.
func (d *Display) RightCounter() *Counter { return d.panel.RightCounter() }

// Face returns the panel face.
func (d *Display) Face() *Face { return d.panel.Face() }
