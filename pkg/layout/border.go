package layout

import "github.com/matzehuels/sweepskin/pkg/geom"

// Border wraps a single child with fixed four-sided padding. The border's
// minimum size is the child's minimum plus the thickness extents, and the
// child sits inset by (thickness.Left, thickness.Top).
//
// Border only reserves the padded space; the border's visual pixels, if any,
// are drawn by a sibling decoration box in an enclosing [Layer].
type Border struct {
	*Base
	child     Box
	thickness geom.Thickness
}

// NewBorder wraps child with the given thickness.
func NewBorder(child Box, thickness geom.Thickness) *Border {
	min := child.MinSize()
	b := &Border{child: child, thickness: thickness}
	b.Base = NewBase(min.W+thickness.Width(), min.H+thickness.Height())
	b.Base.moved = b.updateChildOffsets
	b.updateChildOffsets()
	return b
}

// Child returns the wrapped child.
func (b *Border) Child() Box { return b.child }

// Thickness returns the padding set at construction.
func (b *Border) Thickness() geom.Thickness { return b.thickness }

// Expand resizes the border, forwarding each supplied axis minus the
// thickness extents to the child. The border's own minimum is validated
// first, so the derived inner size can only be rejected by a locked child.
func (b *Border) Expand(width, height int) error {
	if err := b.checkExpand(width, height); err != nil {
		return err
	}

	innerWidth, innerHeight := Keep, Keep
	if width != Keep {
		innerWidth = width - b.thickness.Width()
	}
	if height != Keep {
		innerHeight = height - b.thickness.Height()
	}
	if err := b.child.Expand(innerWidth, innerHeight); err != nil {
		return err
	}

	b.apply(width, height)
	return nil
}

// updateChildOffsets insets the child by the top-left thickness.
func (b *Border) updateChildOffsets() {
	off := b.Offset()
	b.child.SetParentOffset(off.X+b.thickness.Left, off.Y+b.thickness.Top)
}

// Draw delegates solely to the child.
func (b *Border) Draw(p Painter) error {
	return b.child.Draw(p)
}

var _ Box = (*Border)(nil)
