// Package renderer defines the drawing capability consumed by the rendering
// and debug-overlay systems. Systems draw primitives in viewport pixel
// coordinates; how those pixels reach the display is the backend's business.
package renderer

import "image/color"

// Renderer issues primitive draw calls. Coordinates are pixels.
type Renderer interface {
	DrawLine(x1, y1, x2, y2 int, c color.RGBA)
	// DrawRectangle draws a one-pixel outline.
	DrawRectangle(x, y, width, height int, c color.RGBA)
	FillRectangle(x, y, width, height int, c color.RGBA)
}

// RenderTarget is an off-screen surface the simulation renders into. The
// frame is composited onto the real output afterwards, at a fixed offset.
type RenderTarget interface {
	Renderer
	Clear(c color.RGBA)
	Size() (width, height int)
}
