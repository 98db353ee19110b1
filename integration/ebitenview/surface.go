// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenview

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggline"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface adapts an ebiten image to ggline.Surface. Each Stroke paints the
// accumulated polyline with anti-aliased segments and resets the path.
type Surface struct {
	dst   *ebiten.Image
	width float32
	color color.Color
	path  []gg.Point
}

var _ ggline.Surface = (*Surface)(nil)

// NewSurface returns a surface painting into dst. A nil dst yields an
// unavailable surface.
func NewSurface(dst *ebiten.Image) *Surface {
	return &Surface{dst: dst, width: 1, color: color.Black}
}

// Available reports whether a destination image is attached.
func (s *Surface) Available() bool {
	return s != nil && s.dst != nil
}

// SetLineWidth sets the stroke width.
func (s *Surface) SetLineWidth(width float64) {
	s.width = float32(width)
}

// SetStrokeColor sets the stroke color.
func (s *Surface) SetStrokeColor(c gg.RGBA) {
	s.color = c.Color()
}

// MoveTo starts a new polyline at (x, y).
func (s *Surface) MoveTo(x, y float64) {
	s.path = append(s.path[:0], gg.Pt(x, y))
}

// LineTo extends the polyline to (x, y). Without a current point it
// behaves like MoveTo.
func (s *Surface) LineTo(x, y float64) {
	s.path = append(s.path, gg.Pt(x, y))
}

// Stroke paints the polyline and clears it.
func (s *Surface) Stroke() error {
	for i := 1; i < len(s.path); i++ {
		p0, p1 := s.path[i-1], s.path[i]
		vector.StrokeLine(s.dst, float32(p0.X), float32(p0.Y), float32(p1.X), float32(p1.Y), s.width, s.color, true)
	}
	s.path = s.path[:0]
	return nil
}
