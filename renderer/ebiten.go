package renderer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// EbitenTarget is a RenderTarget backed by an off-screen ebiten image.
type EbitenTarget struct {
	img *ebiten.Image
}

func NewEbitenTarget(width, height int) *EbitenTarget {
	return &EbitenTarget{img: ebiten.NewImage(width, height)}
}

func (t *EbitenTarget) DrawLine(x1, y1, x2, y2 int, c color.RGBA) {
	ebitenutil.DrawLine(t.img, float64(x1), float64(y1), float64(x2), float64(y2), c)
}

func (t *EbitenTarget) DrawRectangle(x, y, width, height int, c color.RGBA) {
	fx, fy := float64(x), float64(y)
	fw, fh := float64(width), float64(height)
	ebitenutil.DrawLine(t.img, fx, fy, fx+fw, fy, c)
	ebitenutil.DrawLine(t.img, fx+fw, fy, fx+fw, fy+fh, c)
	ebitenutil.DrawLine(t.img, fx+fw, fy+fh, fx, fy+fh, c)
	ebitenutil.DrawLine(t.img, fx, fy+fh, fx, fy, c)
}

func (t *EbitenTarget) FillRectangle(x, y, width, height int, c color.RGBA) {
	ebitenutil.DrawRect(t.img, float64(x), float64(y), float64(width), float64(height), c)
}

func (t *EbitenTarget) Clear(c color.RGBA) {
	t.img.Fill(c)
}

func (t *EbitenTarget) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Composite blits the target onto dst at the given pixel offset.
func (t *EbitenTarget) Composite(dst *ebiten.Image, offsetX, offsetY int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), float64(offsetY))
	dst.DrawImage(t.img, op)
}
