// Package view hosts drawable lines: it owns a scene, paints it onto a
// surface and releases every entity it owns when closed.
package view

import (
	"errors"
	"io"
	"slices"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggline"
)

// Option configures a LineView during creation.
type Option func(*options)

type options struct {
	background gg.RGBA
}

func defaultOptions() options {
	return options{background: gg.White}
}

// WithBackground sets the color the view is cleared with before painting.
func WithBackground(c gg.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// LineView owns a list of drawable lines and any other entities whose
// lifetime is bound to the view. It is not safe for concurrent use.
type LineView struct {
	background gg.RGBA
	lines      []*ggline.DrawableLine
	owned      []io.Closer
	closed     bool
}

// New creates an empty view.
func New(opts ...Option) *LineView {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &LineView{background: o.background}
}

// Background returns the clear color.
func (v *LineView) Background() gg.RGBA {
	return v.background
}

// Add appends lines to the paint order and takes ownership of them.
func (v *LineView) Add(lines ...*ggline.DrawableLine) {
	for _, d := range lines {
		if d == nil {
			continue
		}
		v.lines = append(v.lines, d)
		v.owned = append(v.owned, d)
	}
}

// Own binds c's lifetime to the view without painting it.
func (v *LineView) Own(c io.Closer) {
	if c != nil {
		v.owned = append(v.owned, c)
	}
}

// Lines returns the painted lines in paint order.
func (v *LineView) Lines() []*ggline.DrawableLine {
	return slices.Clone(v.lines)
}

// Draw paints the lines onto s. The background is left to the caller,
// since a Surface has no notion of clearing.
func (v *LineView) Draw(s ggline.Surface) error {
	return ggline.Render(s, v.lines...)
}

// Paint clears dc with the background color and paints the lines. A nil
// context is a no-op.
func (v *LineView) Paint(dc *gg.Context) error {
	if dc == nil {
		return nil
	}
	dc.ClearWithColor(v.background)
	return v.Draw(ggline.ContextSurface(dc))
}

// Close releases everything the view owns, most recently added first.
// Subsequent calls do nothing.
func (v *LineView) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true
	var errs []error
	for i := len(v.owned) - 1; i >= 0; i-- {
		if err := v.owned[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	v.owned = nil
	v.lines = nil
	return errors.Join(errs...)
}
