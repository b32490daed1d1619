package renderer

import "image/color"

// DrawOp is one recorded primitive call.
type DrawOp struct {
	Kind   string // "line", "rect", "fill", "clear"
	X1, Y1 int
	X2, Y2 int
	Color  color.RGBA
}

// Recording is an in-memory RenderTarget. It backs headless runs and lets
// tests assert on the draw calls a frame produced.
type Recording struct {
	width  int
	height int
	Ops    []DrawOp
}

func NewRecording(width, height int) *Recording {
	return &Recording{width: width, height: height}
}

func (r *Recording) DrawLine(x1, y1, x2, y2 int, c color.RGBA) {
	r.Ops = append(r.Ops, DrawOp{Kind: "line", X1: x1, Y1: y1, X2: x2, Y2: y2, Color: c})
}

func (r *Recording) DrawRectangle(x, y, width, height int, c color.RGBA) {
	r.Ops = append(r.Ops, DrawOp{Kind: "rect", X1: x, Y1: y, X2: x + width, Y2: y + height, Color: c})
}

func (r *Recording) FillRectangle(x, y, width, height int, c color.RGBA) {
	r.Ops = append(r.Ops, DrawOp{Kind: "fill", X1: x, Y1: y, X2: x + width, Y2: y + height, Color: c})
}

func (r *Recording) Clear(c color.RGBA) {
	r.Ops = r.Ops[:0]
	r.Ops = append(r.Ops, DrawOp{Kind: "clear", Color: c})
}

func (r *Recording) Size() (width, height int) {
	return r.width, r.height
}
