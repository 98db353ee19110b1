package view

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/ggline"
)

// Comparison is the outcome of one equality check in the demo scene.
type Comparison struct {
	Expr   string
	Result bool
}

// DemoScene builds the classic three-line scene on a 375x667 canvas:
//
//	line          default Line, owned but not painted
//	drawableLine1 (40,40)-(40,300), red, 8
//	drawableLine2 (40,300)-(300,300), red, 8
//	drawableLine3 default DrawableLine
//
// It returns the view and the equality checks between the painted lines.
// All four entities are released by the view's Close in reverse order.
func DemoScene(opts ...Option) (*LineView, []Comparison) {
	v := New(opts...)

	line := ggline.NewDefaultLine()
	v.Own(line)

	drawableLine1 := ggline.MustDrawableLine(gg.Pt(40, 40), gg.Pt(40, 300), gg.Red, 8, "Line 1")
	drawableLine2 := ggline.MustDrawableLine(gg.Pt(40, 300), gg.Pt(300, 300), gg.Red, 8, "Line 2")
	drawableLine3 := ggline.NewDefaultDrawableLine()
	v.Add(drawableLine1, drawableLine2, drawableLine3)

	return v, []Comparison{
		{"drawableLine1 == drawableLine3", drawableLine1.Equal(drawableLine3)},
		{"drawableLine1 != drawableLine3", !drawableLine1.Equal(drawableLine3)},
		{"drawableLine1 == drawableLine2", drawableLine1.Equal(drawableLine2)},
	}
}
