package layout

import (
	"image"
	"image/color"

	"github.com/matzehuels/sweepskin/pkg/geom"
)

// Keep marks an axis as "leave unchanged" in [Box.Expand],
// [Box.SetLocalOffset], and [Box.SetParentOffset]. Sizes and offsets in this
// model are never negative, so the sentinel cannot collide with a real value.
const Keep = -1

// Painter receives resolved geometry and image handles during a draw pass.
// The layout core never composites pixels itself; leaves hand their image and
// position to the Painter and trust it to clip at the canvas edges.
type Painter interface {
	// Paste composites img with its top-left corner at the given point.
	Paste(img image.Image, at geom.Point)

	// Fill covers the rectangle with a single pixel value.
	Fill(px color.Color, r geom.Rect)
}

// Box is the contract every layout node implements.
//
// Expand and the offset setters accept [Keep] for axes that should not
// change. Offsets are push-propagated eagerly: setting an offset immediately
// re-positions all descendants, so Draw and the accessors always observe
// fully resolved geometry.
type Box interface {
	// MinSize returns the immutable minimum size set at construction.
	MinSize() geom.Size

	// Size returns the current resolved size. Size is never below MinSize.
	Size() geom.Size

	// Offset returns the screen position: local offset plus the offset
	// assigned by the enclosing composite.
	Offset() geom.Point

	// Bounds returns the resolved rectangle (Offset and Size combined).
	Bounds() geom.Rect

	// ExpandFactor returns the weight an ancestor uses when distributing
	// excess space. Zero means the box never receives extra space.
	ExpandFactor() int

	// Expand resizes the box. Either axis may be Keep. It fails with
	// *TooSmallError below the minimum and *NotExpandableError on a locked
	// axis; on failure the box's own size fields are unchanged.
	Expand(width, height int) error

	// SetLocalOffset updates the offset the box applies to itself.
	SetLocalOffset(x, y int)

	// SetParentOffset updates the offset assigned by the enclosing
	// composite. Composites rewrite it whenever their own offset or
	// internal arrangement changes.
	SetParentOffset(x, y int)

	// Draw walks the subtree handing resolved geometry to p. It mutates
	// nothing.
	Draw(p Painter) error
}

// Base is the primitive box: a minimum size, a current size, an expansion
// weight, and a two-part offset. Composites and drawing leaves embed *Base
// and override Expand or Draw as needed.
type Base struct {
	minWidth, minHeight   int
	width, height         int
	factor                int
	lockWidth, lockHeight bool

	localX, localY   int
	parentX, parentY int

	// moved is invoked after every offset change so composites can
	// re-position their children eagerly. Nil on plain leaves.
	moved func()
}

// BaseOption configures a Base at construction.
type BaseOption func(*Base)

// WithExpandFactor sets the expansion weight (default 1).
func WithExpandFactor(n int) BaseOption {
	return func(b *Base) { b.factor = n }
}

// WithLockedWidth makes any Expand that would change the width fail with
// *NotExpandableError.
func WithLockedWidth() BaseOption {
	return func(b *Base) { b.lockWidth = true }
}

// WithLockedHeight makes any Expand that would change the height fail with
// *NotExpandableError.
func WithLockedHeight() BaseOption {
	return func(b *Base) { b.lockHeight = true }
}

// NewBase creates a primitive box. Its current size starts at the minimum.
func NewBase(minWidth, minHeight int, opts ...BaseOption) *Base {
	b := &Base{
		minWidth:  minWidth,
		minHeight: minHeight,
		width:     minWidth,
		height:    minHeight,
		factor:    1,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// MinSize returns the minimum size set at construction.
func (b *Base) MinSize() geom.Size {
	return geom.Size{W: b.minWidth, H: b.minHeight}
}

// Size returns the current resolved size.
func (b *Base) Size() geom.Size {
	return geom.Size{W: b.width, H: b.height}
}

// Offset returns the sum of the local and parent offsets.
func (b *Base) Offset() geom.Point {
	return geom.Point{X: b.localX + b.parentX, Y: b.localY + b.parentY}
}

// Bounds returns the resolved rectangle.
func (b *Base) Bounds() geom.Rect {
	off := b.Offset()
	return geom.Rect{X: off.X, Y: off.Y, Width: b.width, Height: b.height}
}

// ExpandFactor returns the expansion weight.
func (b *Base) ExpandFactor() int { return b.factor }

// SetExpandFactor overrides the expansion weight. Composites use this to pin
// selected children (counters, sprites) so surrounding spacers absorb all
// excess instead.
func (b *Base) SetExpandFactor(n int) { b.factor = n }

// Expand resizes the box. Validation happens before any mutation, so a
// failed call leaves both axes untouched.
func (b *Base) Expand(width, height int) error {
	if err := b.checkExpand(width, height); err != nil {
		return err
	}
	b.apply(width, height)
	return nil
}

// checkExpand validates a prospective resize without mutating.
func (b *Base) checkExpand(width, height int) error {
	if width != Keep {
		if b.lockWidth && width != b.width {
			return &NotExpandableError{Axis: AxisWidth, Current: b.width, Requested: width}
		}
		if width < b.minWidth {
			return &TooSmallError{Axis: AxisWidth, Min: b.minWidth, Requested: width}
		}
	}
	if height != Keep {
		if b.lockHeight && height != b.height {
			return &NotExpandableError{Axis: AxisHeight, Current: b.height, Requested: height}
		}
		if height < b.minHeight {
			return &TooSmallError{Axis: AxisHeight, Min: b.minHeight, Requested: height}
		}
	}
	return nil
}

// apply records a validated size.
func (b *Base) apply(width, height int) {
	if width != Keep {
		b.width = width
	}
	if height != Keep {
		b.height = height
	}
}

// SetLocalOffset updates the box's own offset and re-positions descendants.
func (b *Base) SetLocalOffset(x, y int) {
	if x != Keep {
		b.localX = x
	}
	if y != Keep {
		b.localY = y
	}
	b.notifyMoved()
}

// SetParentOffset updates the inherited offset and re-positions descendants.
func (b *Base) SetParentOffset(x, y int) {
	if x != Keep {
		b.parentX = x
	}
	if y != Keep {
		b.parentY = y
	}
	b.notifyMoved()
}

func (b *Base) notifyMoved() {
	if b.moved != nil {
		b.moved()
	}
}

// Draw is a no-op on the primitive; composites recurse and drawing leaves
// paste their image.
func (b *Base) Draw(Painter) error { return nil }

var _ Box = (*Base)(nil)
