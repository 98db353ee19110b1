// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenview

import (
	"image/color"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggline"
	"github.com/gogpu/ggline/view"
)

func TestSurface_Unavailable(t *testing.T) {
	s := NewSurface(nil)
	if s.Available() {
		t.Error("Available() = true for nil destination")
	}

	d := ggline.NewDefaultDrawableLine()
	defer d.Close()

	// Render must not touch the nil image.
	if err := ggline.Render(s, d); err != nil {
		t.Errorf("Render() = %v, want nil", err)
	}
	if len(s.path) != 0 {
		t.Errorf("path = %v, want empty", s.path)
	}
}

func TestSurface_State(t *testing.T) {
	s := NewSurface(nil)

	s.SetLineWidth(8)
	s.SetStrokeColor(gg.Red)
	s.MoveTo(40, 40)
	s.LineTo(40, 300)

	if s.width != 8 {
		t.Errorf("width = %v, want 8", s.width)
	}
	if got, want := color.NRGBAModel.Convert(s.color), (color.NRGBA{R: 255, A: 255}); got != want {
		t.Errorf("color = %v, want %v", got, want)
	}
	if len(s.path) != 2 || s.path[0] != gg.Pt(40, 40) || s.path[1] != gg.Pt(40, 300) {
		t.Errorf("path = %v, want [(40,40) (40,300)]", s.path)
	}

	s.MoveTo(1, 1)
	if len(s.path) != 1 || s.path[0] != gg.Pt(1, 1) {
		t.Errorf("MoveTo did not start a new path: %v", s.path)
	}

	// A single point strokes nothing and resets the path.
	if err := s.Stroke(); err != nil {
		t.Fatalf("Stroke() = %v", err)
	}
	if len(s.path) != 0 {
		t.Errorf("path after Stroke = %v, want empty", s.path)
	}
}

func TestGame_Layout(t *testing.T) {
	v := view.New()
	defer v.Close()

	g := NewGame(v, 375, 667)
	w, h := g.Layout(1000, 1000)
	if w != 375 || h != 667 {
		t.Errorf("Layout() = %d,%d, want 375,667", w, h)
	}
}
