package display

import (
	"strconv"
	"strings"

	"github.com/matzehuels/sweepskin/pkg/errors"
	"github.com/matzehuels/sweepskin/pkg/layout"
	"github.com/matzehuels/sweepskin/pkg/skin"
)

// Counter is a bordered row of seven-segment style digits, used for the
// mine count and the timer. Values outside the displayable range are
// clamped, so a counter can always show something.
type Counter struct {
	*layout.Layer

	digits    []*Digit
	numDigits int
	value     int
}

// NewCounter builds a counter from a loader scoped to a counter directory
// (border/ and digit/ subdirectories).
func NewCounter(l *skin.Loader, numDigits int) (*Counter, error) {
	if numDigits < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "counter needs at least one digit, got %d", numDigits)
	}

	border, err := NewBorder(l.Sub("border"))
	if err != nil {
		return nil, err
	}

	digitLoader := l.Sub("digit")
	digits := make([]*Digit, numDigits)
	cells := make([]layout.Box, numDigits)
	for i := range digits {
		d, err := NewDigit(digitLoader)
		if err != nil {
			return nil, err
		}
		digits[i] = d
		cells[i] = d
	}

	row, err := layout.NewRow(cells)
	if err != nil {
		return nil, err
	}

	layer, err := layout.NewLayer([]layout.Box{
		layout.NewBorder(row, border.Thickness()),
		border,
	})
	if err != nil {
		return nil, err
	}
	layer.SetExpandFactor(0)

	c := &Counter{Layer: layer, digits: digits, numDigits: numDigits}
	if err := c.SetValue(0); err != nil {
		return nil, err
	}
	return c, nil
}

// Value returns the currently displayed (possibly clamped) value.
func (c *Counter) Value() int { return c.value }

// Digits returns the number of digit cells.
func (c *Counter) Digits() int { return c.numDigits }

// Digit returns the i-th digit cell, leftmost first.
func (c *Counter) Digit(i int) *Digit { return c.digits[i] }

// SetValue displays v, clamping it into the range the digit cells can
// show. An n-digit counter displays -(10^(n-1))+1 through 10^n-1; negative
// values spend the leading cell on the minus sign.
func (c *Counter) SetValue(v int) error {
	max := pow10(c.numDigits) - 1
	min := -pow10(c.numDigits-1) + 1
	if v > max {
		v = max
	}
	if v < min {
		v = min
	}

	// Right-align, padding unused leading cells with blanks.
	text := strconv.Itoa(v)
	text = strings.Repeat(" ", c.numDigits-len(text)) + text

	for i, ch := range text {
		var state skin.DigitState
		switch {
		case ch == ' ':
			state = skin.DigitOff
		case ch == '-':
			state = skin.DigitMinus
		default:
			var err error
			state, err = skin.Digit(int(ch - '0'))
			if err != nil {
				return err
			}
		}
		if err := c.digits[i].SetState(state); err != nil {
			return err
		}
	}
	c.value = v
	return nil
}

func pow10(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
