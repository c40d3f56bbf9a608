package layout

import (
	"errors"
	"testing"

	"github.com/matzehuels/sweepskin/pkg/geom"
)

func TestNewLayerMatchesChildren(t *testing.T) {
	bg := NewBase(4, 10)
	fg := NewBase(12, 6)
	l, err := NewLayer([]Box{bg, fg})
	if err != nil {
		t.Fatalf("NewLayer: %v", err)
	}

	// The layer minimum is the component-wise maximum, and both children
	// are stretched to it immediately.
	if got := l.MinSize(); got != (geom.Size{W: 12, H: 10}) {
		t.Fatalf("MinSize() = %v, want 12x10", got)
	}
	for i := 0; i < l.Len(); i++ {
		if got := l.Child(i).Size(); got != (geom.Size{W: 12, H: 10}) {
			t.Errorf("child %d size = %v, want 12x10", i, got)
		}
	}
}

func TestLayerExpandForwards(t *testing.T) {
	bg := NewBase(4, 4)
	fg := NewBase(4, 4)
	l, err := NewLayer([]Box{bg, fg})
	if err != nil {
		t.Fatalf("NewLayer: %v", err)
	}
	if err := l.Expand(30, Keep); err != nil {
		t.Fatalf("Expand(30, Keep): %v", err)
	}

	for i := 0; i < l.Len(); i++ {
		if got := l.Child(i).Size(); got != (geom.Size{W: 30, H: 4}) {
			t.Errorf("child %d size = %v, want 30x4", i, got)
		}
	}
}

func TestLayerWithoutSizeMatching(t *testing.T) {
	bg := NewBase(4, 4)
	fg := NewBase(2, 2)
	l, err := NewLayer([]Box{bg, fg}, WithSizeMatching(false))
	if err != nil {
		t.Fatalf("NewLayer: %v", err)
	}
	if err := l.Expand(10, 10); err != nil {
		t.Fatalf("Expand(10, 10): %v", err)
	}

	// Children keep their own sizes but still share the layer's origin.
	if got := fg.Size(); got != (geom.Size{W: 2, H: 2}) {
		t.Errorf("foreground size = %v, want 2x2", got)
	}
	l.SetLocalOffset(5, 6)
	if got := fg.Offset(); got != (geom.Point{X: 5, Y: 6}) {
		t.Errorf("foreground offset = %v, want (5, 6)", got)
	}
	if got := bg.Offset(); got != (geom.Point{X: 5, Y: 6}) {
		t.Errorf("background offset = %v, want (5, 6)", got)
	}
}

func TestNewLayerIncompatibleChild(t *testing.T) {
	_, err := NewLayer([]Box{
		NewBase(4, 4, WithLockedWidth()),
		NewBase(8, 4),
	})
	var notExp *NotExpandableError
	if !errors.As(err, &notExp) {
		t.Fatalf("NewLayer = %v, want *NotExpandableError", err)
	}
}

func TestNewLayerEmpty(t *testing.T) {
	if _, err := NewLayer(nil); err == nil {
		t.Fatal("NewLayer(nil) succeeded, want error")
	}
}
