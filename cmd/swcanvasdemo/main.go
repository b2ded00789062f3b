// Command swcanvasdemo renders a sample scene with swcanvas and
// writes it to a PNG file, exercising the library end to end.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/swcanvas/swcanvas"
)

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	surface := swcanvas.NewSurface(*width, *height)
	ctx := swcanvas.NewContext2D(surface)
	defer ctx.Close()

	drawBackground(ctx, *width, *height)
	drawShapes(ctx)
	drawTransforms(ctx)
	drawStrokedPath(ctx)

	if err := ctx.SavePNG(*output); err != nil {
		log.Fatalf("failed to save: %v", err)
	}
	log.Printf("demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func drawBackground(ctx *swcanvas.Context2D, w, h int) {
	steps := 100
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		ctx.SetFillStyle(swcanvas.RGB(0.1+t*0.4, 0.2+t*0.3, 0.4+t*0.2))
		y := float64(h) * t
		ctx.FillRect(0, y, float64(w), float64(h)/float64(steps)+1)
	}
}

func drawShapes(ctx *swcanvas.Context2D) {
	ctx.SetFillStyle(swcanvas.RGBA2(1, 0.3, 0.3, 0.8))
	ctx.Arc(150, 150, 60, 0, 2*math.Pi, false)
	ctx.Fill(swcanvas.FillRuleNonZero)

	ctx.SetFillStyle(swcanvas.RGBA2(0.3, 1, 0.3, 0.8))
	ctx.Arc(200, 150, 60, 0, 2*math.Pi, false)
	ctx.Fill(swcanvas.FillRuleNonZero)

	ctx.SetFillStyle(swcanvas.RGBA2(0.3, 0.3, 1, 0.8))
	ctx.Arc(175, 200, 60, 0, 2*math.Pi, false)
	ctx.Fill(swcanvas.FillRuleNonZero)

	ctx.SetFillStyle(swcanvas.RGB(1, 0.8, 0))
	ctx.RoundedRect(350, 100, 120, 80, 15)
	ctx.Fill(swcanvas.FillRuleNonZero)

	ctx.SetStrokeStyle(swcanvas.RGB(1, 1, 1))
	ctx.SetLineWidth(4)
	ctx.StrokeRect(350, 100, 120, 80)
}

func drawTransforms(ctx *swcanvas.Context2D) {
	centerX, centerY := 600.0, 150.0

	for i := 0; i < 8; i++ {
		angle := float64(i) * math.Pi / 4
		ctx.Save()
		ctx.Translate(centerX, centerY)
		ctx.Rotate(angle)

		hue := float64(i) * 45
		ctx.SetFillStyle(swcanvas.HSL(hue, 0.8, 0.6))
		ctx.Rect(-30, -30, 60, 60)
		ctx.Fill(swcanvas.FillRuleNonZero)
		ctx.Restore()
	}
}

func drawStrokedPath(ctx *swcanvas.Context2D) {
	ctx.Save()
	ctx.Translate(150, 400)

	ctx.SetStrokeStyle(swcanvas.RGB(1, 0.5, 0))
	ctx.SetLineWidth(6)
	ctx.SetLineCap(swcanvas.LineCapRound)
	ctx.MoveTo(0, 0)
	ctx.BezierCurveTo(50, -50, 100, 50, 150, 0)
	ctx.BezierCurveTo(200, -30, 250, 30, 300, 0)
	ctx.Stroke()

	ctx.Translate(400, 0)
	ctx.SetFillStyle(swcanvas.RGB(1, 1, 0))

	points := 5
	outerR, innerR := 60.0, 30.0
	for i := 0; i < points*2; i++ {
		angle := float64(i) * math.Pi / float64(points)
		r := outerR
		if i%2 == 1 {
			r = innerR
		}
		x := r * math.Cos(angle-math.Pi/2)
		y := r * math.Sin(angle-math.Pi/2)
		if i == 0 {
			ctx.MoveTo(x, y)
		} else {
			ctx.LineTo(x, y)
		}
	}
	ctx.ClosePath()
	ctx.Fill(swcanvas.FillRuleNonZero)
	ctx.Restore()
}
