package ggline

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

// Surface is a 2D immediate-mode drawing target.
//
// Render drives it with one width/color/move/line/stroke sequence per
// drawable line. Implementations may additionally provide
//
//	Available() bool
//
// to report that no live drawing context backs them; Render then skips
// drawing entirely.
type Surface interface {
	SetLineWidth(width float64)
	SetStrokeColor(c gg.RGBA)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke() error
}

type availability interface {
	Available() bool
}

// Render paints lines onto s in order. A nil or unavailable surface is a
// silent no-op. Nil entries in lines are skipped. The first stroke error
// stops rendering and is returned.
func Render(s Surface, lines ...*DrawableLine) error {
	if !surfaceAvailable(s) {
		Logger().Debug("ggline: render skipped, no drawing surface", "lines", len(lines))
		return nil
	}
	n := 0
	for _, d := range lines {
		if d == nil {
			continue
		}
		s.SetLineWidth(d.Width)
		s.SetStrokeColor(d.Color)
		s.MoveTo(d.BeginPoint.X, d.BeginPoint.Y)
		s.LineTo(d.EndPoint.X, d.EndPoint.Y)
		if err := s.Stroke(); err != nil {
			return fmt.Errorf("ggline: stroke %q: %w", d.Tag(), err)
		}
		n++
	}
	Logger().Debug("ggline: render pass", "surface", TypeName(s), "lines", n)
	return nil
}

func surfaceAvailable(s Surface) bool {
	if s == nil {
		return false
	}
	if a, ok := s.(availability); ok {
		return a.Available()
	}
	return true
}

// ContextSurface adapts a gg.Context to Surface.
// A nil context yields an unavailable surface.
func ContextSurface(dc *gg.Context) Surface {
	return contextSurface{dc: dc}
}

type contextSurface struct {
	dc *gg.Context
}

func (s contextSurface) Available() bool          { return s.dc != nil }
func (s contextSurface) SetLineWidth(w float64)   { s.dc.SetLineWidth(w) }
func (s contextSurface) SetStrokeColor(c gg.RGBA) { s.dc.SetStrokeBrush(gg.Solid(c)) }
func (s contextSurface) MoveTo(x, y float64)      { s.dc.MoveTo(x, y) }
func (s contextSurface) LineTo(x, y float64)      { s.dc.LineTo(x, y) }
func (s contextSurface) Stroke() error            { return s.dc.Stroke() }

// RecorderSurface adapts a recording.Recorder to Surface. The resulting
// recording can be replayed to any recording.Backend, such as the pdf
// package's backend. A nil recorder yields an unavailable surface.
func RecorderSurface(r *recording.Recorder) Surface {
	return recorderSurface{r: r}
}

type recorderSurface struct {
	r *recording.Recorder
}

func (s recorderSurface) Available() bool        { return s.r != nil }
func (s recorderSurface) SetLineWidth(w float64) { s.r.SetLineWidth(w) }
func (s recorderSurface) SetStrokeColor(c gg.RGBA) {
	s.r.SetStrokeStyle(recording.NewSolidBrush(c))
}
func (s recorderSurface) MoveTo(x, y float64) { s.r.MoveTo(x, y) }
func (s recorderSurface) LineTo(x, y float64) { s.r.LineTo(x, y) }

func (s recorderSurface) Stroke() error {
	s.r.Stroke()
	return nil
}
