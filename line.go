package ggline

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/google/uuid"
)

// DefaultTag is the tag given to entities built by the default constructors.
const DefaultTag = "Untagged"

// Canonical geometry of the default constructors: a vertical segment in
// the upper center of a 375x667 point canvas.
var (
	DefaultBeginPoint = gg.Pt(187.5, 40.0)
	DefaultEndPoint   = gg.Pt(187.5, 300.0)
)

// Segment is anything with a length. Equality between lines is defined
// over this value alone.
type Segment interface {
	Length() float64
}

// Line is a tagged straight segment between two points.
//
// Two lines are equal when their lengths are equal, regardless of where
// they sit or which way they point. A horizontal and a vertical line of
// length 260 compare equal.
//
// A Line reports its construction to the package logger and must be
// released with Close to report its end of life.
type Line struct {
	BeginPoint gg.Point
	EndPoint   gg.Point

	tag    string
	id     uuid.UUID
	self   Allocatable
	closed bool
}

// NewLine creates a line between begin and end with the given tag.
func NewLine(begin, end gg.Point, tag string) *Line {
	l := &Line{}
	l.init(begin, end, tag)
	l.allocate(l)
	return l
}

// NewDefaultLine creates the canonical vertical line tagged "Untagged".
func NewDefaultLine() *Line {
	return NewLine(DefaultBeginPoint, DefaultEndPoint, DefaultTag)
}

// init sets the geometry and identity without firing the allocation hook,
// so embedding types can finish their own fields first.
func (l *Line) init(begin, end gg.Point, tag string) {
	l.BeginPoint = gg.Pt(begin.X, begin.Y)
	l.EndPoint = gg.Pt(end.X, end.Y)
	l.tag = tag
	l.id = uuid.New()
}

// allocate records the outermost owner of this line and fires OnAllocate
// for it. Must be the last step of every constructor.
func (l *Line) allocate(owner Allocatable) {
	l.self = owner
	OnAllocate(owner)
}

// Tag returns the label assigned at construction.
func (l *Line) Tag() string {
	return l.tag
}

// ID returns the instance id assigned at construction.
func (l *Line) ID() uuid.UUID {
	return l.id
}

// Length returns the Euclidean distance between the endpoints.
func (l *Line) Length() float64 {
	dx := l.EndPoint.X - l.BeginPoint.X
	dy := l.EndPoint.Y - l.BeginPoint.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Equal reports whether l and other have exactly the same length.
func (l *Line) Equal(other Segment) bool {
	return Equal(l, other)
}

// Equal reports whether a and b have exactly the same length.
// Endpoints, tags, colors and widths are not compared.
func Equal(a, b Segment) bool {
	return a.Length() == b.Length()
}

// Close reports the end of life of the line. Only the first call logs;
// subsequent calls do nothing.
func (l *Line) Close() error {
	if l.closed {
		return nil
	}
	owner := l.self
	if owner == nil {
		owner = l
	}
	OnDeallocate(owner)
	l.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (l *Line) Closed() bool {
	return l.closed
}

// Clone returns an independent copy of l with the same tag and a new id.
// The copy reports its own allocation and must be closed separately.
func (l *Line) Clone() *Line {
	return NewLine(l.BeginPoint, l.EndPoint, l.tag)
}

// String returns a short description like `Line "a" (0,0)-(3,4)`.
func (l *Line) String() string {
	return fmt.Sprintf("Line %q %s", l.tag, formatSegment(l.BeginPoint, l.EndPoint))
}

func formatSegment(begin, end gg.Point) string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", begin.X, begin.Y, end.X, end.Y)
}
