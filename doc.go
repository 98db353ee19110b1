// Package ggline provides tagged, drawable line entities on top of the gg
// 2D graphics library.
//
// # Overview
//
// A [Line] is a straight segment between two [gg.Point] values with an
// immutable tag. A [DrawableLine] embeds a Line and adds a stroke color and
// width. Both report their construction and end of life through the
// package logger:
//
//	Instance Line 1 of type DrawableLine allocated.
//	Instance Line 1 of type DrawableLine deallocated.
//
// # Quick Start
//
//	ggline.SetLogger(slog.Default())
//
//	d, err := ggline.NewDrawableLine(gg.Pt(40, 40), gg.Pt(40, 300), gg.Red, 8, "Line 1")
//	if err != nil {
//	    return err
//	}
//	defer d.Close()
//
//	dc := gg.NewContext(375, 667)
//	dc.ClearWithColor(gg.White)
//	_ = ggline.Render(ggline.ContextSurface(dc), d)
//	dc.SavePNG("lines.png")
//
// # Equality
//
// Lines compare equal when their lengths are equal. Position, direction,
// tag, color and width are ignored, so
//
//	Line((40,40),(40,300)) == Line((40,300),(300,300))
//
// holds. Comparison is exact floating-point equality.
//
// # Lifecycle
//
// Go has no deterministic destructors, so end of life is explicit: call
// Close when the owner is done with an entity. Constructors emit the
// allocation record as their last step; Close emits the deallocation
// record as its first step, once.
//
// # Rendering
//
// [Render] issues one width/color/move/line/stroke sequence per line to a
// [Surface]. [ContextSurface] paints into a gg.Context and
// [RecorderSurface] captures vector commands for later playback, for
// example into a PDF.
package ggline
