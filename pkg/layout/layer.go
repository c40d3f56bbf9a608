package layout

import "fmt"

// Layer stacks children on the identical rectangle and draws them
// back-to-front: later children paint over earlier ones. That ordering is
// how a background tile, content panels, and a foreground border composite
// correctly.
type Layer struct {
	*Base
	children   []Box
	matchSizes bool
}

// LayerOption configures a Layer at construction.
type LayerOption func(*Layer)

// WithSizeMatching controls whether every child is forced to the layer's
// size (default true).
func WithSizeMatching(enabled bool) LayerOption {
	return func(l *Layer) { l.matchSizes = enabled }
}

// NewLayer creates a layer over the given children. Its minimum size is the
// component-wise maximum of the children's minimums; with size matching
// enabled every child is immediately expanded to that size, and a child that
// cannot reach it fails construction.
func NewLayer(children []Box, opts ...LayerOption) (*Layer, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("layout: layer needs at least one child")
	}

	l := &Layer{children: children, matchSizes: true}
	for _, opt := range opts {
		opt(l)
	}

	min := children[0].MinSize()
	for _, child := range children[1:] {
		min = min.Max(child.MinSize())
	}

	if l.matchSizes {
		for _, child := range children {
			if err := child.Expand(min.W, min.H); err != nil {
				return nil, err
			}
		}
	}

	l.Base = NewBase(min.W, min.H)
	l.Base.moved = l.updateChildOffsets
	l.updateChildOffsets()
	return l, nil
}

// Len returns the number of stacked children.
func (l *Layer) Len() int { return len(l.children) }

// Child returns the i-th child, counting from the back of the stack.
func (l *Layer) Child(i int) Box { return l.children[i] }

// Expand resizes the layer. With size matching enabled the same width and
// height are forwarded to every child first; the layer's own minimum is
// validated before anything mutates.
func (l *Layer) Expand(width, height int) error {
	if err := l.checkExpand(width, height); err != nil {
		return err
	}
	if l.matchSizes {
		for _, child := range l.children {
			if err := child.Expand(width, height); err != nil {
				return err
			}
		}
	}
	l.apply(width, height)
	return nil
}

// updateChildOffsets gives every child the layer's own offset; all children
// share one rectangle.
func (l *Layer) updateChildOffsets() {
	off := l.Offset()
	for _, child := range l.children {
		child.SetParentOffset(off.X, off.Y)
	}
}

// Draw recurses in declared order so later children occlude earlier ones.
func (l *Layer) Draw(p Painter) error {
	for _, child := range l.children {
		if err := child.Draw(p); err != nil {
			return err
		}
	}
	return nil
}

var _ Box = (*Layer)(nil)
