package ggline

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// ErrInvalidWidth is returned when a stroke width is not a positive
// finite number.
var ErrInvalidWidth = errors.New("ggline: stroke width must be positive and finite")

// Default stroke attributes of NewDefaultDrawableLine.
var (
	DefaultColor = gg.Black
	DefaultWidth = 1.0
)

// DrawableLine is a Line with a stroke color and width.
//
// Color and Width only affect painting. Equality and Length come from the
// embedded Line unchanged.
type DrawableLine struct {
	Line

	Color gg.RGBA
	Width float64
}

// NewDrawableLine creates a drawable line. Stroke attributes are set
// before the embedded Line, and the allocation record is emitted last so
// that it names DrawableLine.
func NewDrawableLine(begin, end gg.Point, color gg.RGBA, width float64, tag string) (*DrawableLine, error) {
	if err := validateWidth(width); err != nil {
		return nil, err
	}
	d := &DrawableLine{
		Color: color,
		Width: width,
	}
	d.Line.init(begin, end, tag)
	d.allocate(d)
	return d, nil
}

// NewDefaultDrawableLine creates a black, 1-wide copy of the canonical
// default line.
func NewDefaultDrawableLine() *DrawableLine {
	d := &DrawableLine{
		Color: DefaultColor,
		Width: DefaultWidth,
	}
	d.Line.init(DefaultBeginPoint, DefaultEndPoint, DefaultTag)
	d.allocate(d)
	return d
}

// MustDrawableLine is like NewDrawableLine but panics on an invalid width.
// It is intended for fixed scenes whose widths are known constants.
func MustDrawableLine(begin, end gg.Point, color gg.RGBA, width float64, tag string) *DrawableLine {
	d, err := NewDrawableLine(begin, end, color, width, tag)
	if err != nil {
		panic(err)
	}
	return d
}

// Clone returns an independent copy of d with the same tag, color and
// width and a new id.
func (d *DrawableLine) Clone() *DrawableLine {
	c := &DrawableLine{
		Color: d.Color,
		Width: d.Width,
	}
	c.Line.init(d.BeginPoint, d.EndPoint, d.Tag())
	c.allocate(c)
	return c
}

// String returns a short description including stroke attributes.
func (d *DrawableLine) String() string {
	return fmt.Sprintf("DrawableLine %q %s width=%g color=%s",
		d.Tag(), formatSegment(d.BeginPoint, d.EndPoint), d.Width, FormatColor(d.Color))
}

func validateWidth(width float64) error {
	if width <= 0 || math.IsNaN(width) || math.IsInf(width, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidWidth, width)
	}
	return nil
}
