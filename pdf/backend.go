// Package pdf provides a PDF backend for the gg recording system.
// It renders recordings to a single-page vector PDF using gofpdf.
//
// Page size equals the recording size, in points, with the origin at the
// top-left corner like gg.
//
// # Supported Features
//
//   - Solid color fills and strokes, including alpha
//   - Paths made of move, line, quadratic and cubic segments
//   - Stroke width, caps, joins and dash patterns
//   - Axis-aligned rectangle fills
//   - Text in the Helvetica core font
//
// # Limitations
//
// Gradient brushes fall back to their first stop color, clipping and
// images are skipped with a warning. Paths arrive already transformed by
// the recorder, so SetTransform only tracks state.
//
// # Example
//
//	import _ "github.com/gogpu/ggline/pdf"
//
//	backend, _ := recording.NewBackend("pdf")
//	rec.Playback(backend)
//	backend.(recording.FileBackend).SaveToFile("out.pdf")
package pdf

import (
	"errors"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/ggline"
	"github.com/jung-kurt/gofpdf"
)

// ErrNoPage is returned by output methods called before Begin.
var ErrNoPage = errors.New("pdf: backend has no page, call Begin first")

const defaultFontSize = 12

func init() {
	recording.Register("pdf", func() recording.Backend {
		return NewBackend()
	})
}

// Backend renders recordings to PDF. It implements recording.Backend,
// recording.WriterBackend and recording.FileBackend.
type Backend struct {
	doc        *gofpdf.Fpdf
	width      int
	height     int
	compress   bool
	transform  recording.Matrix
	stateStack []recording.Matrix
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithCompression toggles stream compression. Enabled by default.
func WithCompression(on bool) Option {
	return func(b *Backend) {
		b.compress = on
	}
}

// NewBackend creates a new PDF backend.
// The backend must be initialized with Begin before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{compress: true, transform: recording.Identity()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin starts a new document with one width x height point page.
func (b *Backend) Begin(width, height int) error {
	b.width = width
	b.height = height
	b.transform = recording.Identity()
	b.stateStack = b.stateStack[:0]

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	doc.SetCompression(b.compress)
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	b.doc = doc
	return doc.Error()
}

// End finalizes the page and reports any error gofpdf accumulated.
func (b *Backend) End() error {
	if b.doc == nil {
		return ErrNoPage
	}
	return b.doc.Error()
}

// Save pushes the current transform.
func (b *Backend) Save() {
	b.stateStack = append(b.stateStack, b.transform)
}

// Restore pops the transform pushed by the matching Save.
func (b *Backend) Restore() {
	if n := len(b.stateStack); n > 0 {
		b.transform = b.stateStack[n-1]
		b.stateStack = b.stateStack[:n-1]
	}
}

// SetTransform records the current transform.
func (b *Backend) SetTransform(m recording.Matrix) {
	b.transform = m
}

// SetClip is not supported; the clip is ignored.
func (b *Backend) SetClip(_ *gg.Path, _ recording.FillRule) {
	ggline.Logger().Warn("pdf: clipping not supported, ignored")
}

// ClearClip is a no-op.
func (b *Backend) ClearClip() {}

// FillPath fills the given path with the brush.
func (b *Backend) FillPath(path *gg.Path, brush recording.Brush, rule recording.FillRule) {
	if b.doc == nil || path == nil {
		return
	}
	c := brushColor(brush)
	r, g, bl := rgb255(c)
	b.doc.SetFillColor(r, g, bl)
	b.doc.SetAlpha(c.A, "Normal")
	if !b.writePath(path) {
		return
	}
	if rule == recording.FillRuleEvenOdd {
		b.doc.DrawPath("F*")
		return
	}
	b.doc.DrawPath("F")
}

// StrokePath strokes the given path with the brush and stroke style.
func (b *Backend) StrokePath(path *gg.Path, brush recording.Brush, stroke recording.Stroke) {
	if b.doc == nil || path == nil {
		return
	}
	c := brushColor(brush)
	r, g, bl := rgb255(c)
	b.doc.SetDrawColor(r, g, bl)
	b.doc.SetAlpha(c.A, "Normal")
	b.applyStroke(stroke)
	if !b.writePath(path) {
		return
	}
	b.doc.DrawPath("D")
}

// FillRect fills an axis-aligned rectangle given in world coordinates.
func (b *Backend) FillRect(rect recording.Rect, brush recording.Brush) {
	if b.doc == nil {
		return
	}
	c := brushColor(brush)
	r, g, bl := rgb255(c)
	b.doc.SetFillColor(r, g, bl)
	b.doc.SetAlpha(c.A, "Normal")
	b.doc.Rect(rect.MinX, rect.MinY, rect.Width(), rect.Height(), "F")
}

// DrawImage is not supported; the image is skipped.
func (b *Backend) DrawImage(_ image.Image, _, _ recording.Rect, _ recording.ImageOptions) {
	ggline.Logger().Warn("pdf: images not supported, skipped")
}

// DrawText draws s with the Helvetica core font. The face is ignored.
func (b *Backend) DrawText(s string, x, y float64, _ text.Face, brush recording.Brush) {
	if b.doc == nil || s == "" {
		return
	}
	c := brushColor(brush)
	r, g, bl := rgb255(c)
	b.doc.SetTextColor(r, g, bl)
	b.doc.SetFont("Helvetica", "", defaultFontSize)
	b.doc.Text(x, y, s)
}

// WriteTo writes the PDF document to w. The document is finalized by the
// first call; further output calls fail.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.doc == nil {
		return 0, ErrNoPage
	}
	cw := &countingWriter{w: w}
	err := b.doc.Output(cw)
	return cw.n, err
}

// SaveToFile writes the PDF document to path.
func (b *Backend) SaveToFile(path string) error {
	if b.doc == nil {
		return ErrNoPage
	}
	return b.doc.OutputFileAndClose(path)
}

// Width returns the page width in points.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the page height in points.
func (b *Backend) Height() int {
	return b.height
}

// writePath emits the path elements and reports whether anything was
// written.
func (b *Backend) writePath(path *gg.Path) bool {
	elems := path.Elements()
	if len(elems) == 0 {
		return false
	}
	for _, elem := range elems {
		switch e := elem.(type) {
		case gg.MoveTo:
			b.doc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			b.doc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			b.doc.CurveTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			b.doc.CurveBezierCubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			b.doc.ClosePath()
		}
	}
	return true
}

func (b *Backend) applyStroke(stroke recording.Stroke) {
	b.doc.SetLineWidth(stroke.Width)
	b.doc.SetLineCapStyle(lineCapStyle(stroke.Cap))
	b.doc.SetLineJoinStyle(lineJoinStyle(stroke.Join))
	if len(stroke.DashPattern) > 0 {
		b.doc.SetDashPattern(stroke.DashPattern, stroke.DashOffset)
	} else {
		b.doc.SetDashPattern([]float64{}, 0)
	}
}

func lineCapStyle(c recording.LineCap) string {
	switch c {
	case recording.LineCapRound:
		return "round"
	case recording.LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

func lineJoinStyle(j recording.LineJoin) string {
	switch j {
	case recording.LineJoinRound:
		return "round"
	case recording.LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

// brushColor reduces a brush to one color. Gradients use their first stop.
func brushColor(brush recording.Brush) gg.RGBA {
	switch br := brush.(type) {
	case recording.SolidBrush:
		return br.Color
	case *recording.LinearGradientBrush:
		return firstStop(br.Stops)
	case *recording.RadialGradientBrush:
		return firstStop(br.Stops)
	case *recording.SweepGradientBrush:
		return firstStop(br.Stops)
	default:
		return gg.Black
	}
}

func firstStop(stops []recording.GradientStop) gg.RGBA {
	if len(stops) == 0 {
		return gg.Black
	}
	return stops[0].Color
}

func rgb255(c gg.RGBA) (r, g, b int) {
	return to255(c.R), to255(c.G), to255(c.B)
}

func to255(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
