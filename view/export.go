package view

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/ggline"
	"github.com/gogpu/ggline/pdf"
)

// Image paints the view into a new width x height raster and returns it.
func (v *LineView) Image(width, height int) (image.Image, error) {
	dc := gg.NewContext(width, height)
	defer dc.Close()
	if err := v.Paint(dc); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// SavePNG paints the view and writes it to path as PNG.
func (v *LineView) SavePNG(path string, width, height int) error {
	dc := gg.NewContext(width, height)
	defer dc.Close()
	if err := v.Paint(dc); err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("view: save png: %w", err)
	}
	return nil
}

// Record captures the view, background included, as vector commands.
func (v *LineView) Record(width, height int) (*recording.Recording, error) {
	rec := recording.NewRecorder(width, height)
	rec.SetFillStyle(recording.NewSolidBrush(v.background))
	rec.FillRectangle(0, 0, float64(width), float64(height))
	if err := v.Draw(ggline.RecorderSurface(rec)); err != nil {
		return nil, err
	}
	return rec.FinishRecording(), nil
}

// WritePDF writes the view as a single-page PDF document to w.
func (v *LineView) WritePDF(w io.Writer, width, height int) error {
	b, err := v.playbackPDF(width, height)
	if err != nil {
		return err
	}
	_, err = b.WriteTo(w)
	return err
}

// SavePDF writes the view as a single-page PDF document to path.
func (v *LineView) SavePDF(path string, width, height int) error {
	b, err := v.playbackPDF(width, height)
	if err != nil {
		return err
	}
	return b.SaveToFile(path)
}

func (v *LineView) playbackPDF(width, height int) (*pdf.Backend, error) {
	r, err := v.Record(width, height)
	if err != nil {
		return nil, err
	}
	b := pdf.NewBackend()
	if err := r.Playback(b); err != nil {
		return nil, fmt.Errorf("view: pdf playback: %w", err)
	}
	return b, nil
}
