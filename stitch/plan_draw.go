package stitch

import (
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

const drawPadding = 20

// DrawPNG renders the plan to a PNG: thread as lines, needle penetrations as
// dots. Scale is pixels per path unit.
func (p Plan) DrawPNG(path string, scale float64) error {
	if len(p) == 0 {
		return errors.New("cannot draw an empty plan")
	}
	min, max := p.Bounds()

	// Set up the context
	width := int(scale*(max.X-min.X)) + drawPadding*2
	height := int(scale*(max.Y-min.Y)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-min.X, -min.Y)

	c.SetLineWidth(1)
	c.MoveTo(p[0].X, p[0].Y)
	for _, point := range p[1:] {
		c.LineTo(point.X, point.Y)
	}
	c.SetRGB(0, 0.5, 0)
	c.Stroke()

	c.SetRGB(0, 1, 1)
	for _, point := range p {
		c.DrawCircle(point.X, point.Y, 2/scale)
		c.Fill()
	}

	return c.SavePNG(path)
}

// Preview renders the plan to a temp file and cats it inline to the
// terminal. Mostly useful for eyeballing a plan while debugging.
func (p Plan) Preview(scale float64) error {
	if err := p.DrawPNG("/tmp/stitch_plan.png", scale); err != nil {
		return err
	}
	imgcat.CatFile("/tmp/stitch_plan.png", os.Stdout)
	return nil
}
