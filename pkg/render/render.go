// Package render draws a sundial template from a computed result. Every
// render gets its own drawing context, so dials can be drawn concurrently.
package render

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"sync"

	"github.com/chrissnell/sundial/pkg/sundial"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/soniakeys/unit"
	"golang.org/x/image/font/gofont/goregular"
)

// Default geometry, in pixels
const (
	DefaultRadius = 250.0
	DefaultMargin = 80.0
)

// labelRows is the number of text rows printed under the dial face
const labelRows = 4

// Options controls the size of the image.
type Options struct {
	Radius float64
	Margin float64
}

func (o Options) withDefaults() Options {
	if o.Radius <= 0 {
		o.Radius = DefaultRadius
	}
	if o.Margin <= 0 {
		o.Margin = DefaultMargin
	}
	return o
}

// Size returns the width and height of the image Render produces.
func (o Options) Size() (width, height int) {
	o = o.withDefaults()
	side := 2 * (o.Radius + o.Margin)
	return int(math.Ceil(side)), int(math.Ceil(side + labelRows*o.rowHeight()))
}

func (o Options) rowHeight() float64 {
	return o.Radius * 0.12
}

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

// labelFont returns the shared, read-only font used for every label.
func labelFont() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	return fontSource, fontErr
}

// Render draws the dial for res and writes it to w as PNG.
func Render(w io.Writer, res *sundial.Result, opts Options) error {
	if res == nil {
		return fmt.Errorf("render: nil result")
	}

	d, err := newDial(opts)
	if err != nil {
		return err
	}
	defer d.close()

	steps := []func() error{
		d.face,
		d.equator,
		d.meridian,
		func() error { return d.hourLines(res.HourLines) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	d.labels(res)

	return d.dc.EncodePNG(w)
}

// RenderFile renders res into a PNG file at path.
func RenderFile(path string, res *sundial.Result, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	bw := bufio.NewWriter(f)
	if err := Render(bw, res, opts); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("render: %w", err)
	}
	return f.Close()
}

// dial is the drawing state of a single render.
type dial struct {
	dc      *gg.Context
	opts    Options
	originX float64
	originY float64
	font    *text.FontSource
}

func newDial(opts Options) (*dial, error) {
	opts = opts.withDefaults()
	font, err := labelFont()
	if err != nil {
		return nil, fmt.Errorf("render: loading label font: %w", err)
	}

	width, height := opts.Size()
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.White)

	return &dial{
		dc:      dc,
		opts:    opts,
		originX: opts.Margin + opts.Radius,
		originY: opts.Margin + opts.Radius,
		font:    font,
	}, nil
}

func (d *dial) close() {
	d.dc.Close()
}

// point returns the image coordinates at distance r from the origin along a
// direction measured clockwise from due north.
func (d *dial) point(r, angleDeg float64) (x, y float64) {
	a := unit.AngleFromDeg(angleDeg).Rad()
	return d.originX + r*math.Sin(a), d.originY - r*math.Cos(a)
}

func (d *dial) face() error {
	d.dc.DrawCircle(d.originX, d.originY, d.opts.Radius)
	d.dc.SetRGB(1, 1, 1)
	if err := d.dc.FillPreserve(); err != nil {
		return err
	}
	d.dc.SetRGB(0, 0, 0)
	d.dc.SetLineWidth(2)
	return d.dc.Stroke()
}

// equator is the 06:00-18:00 horizon line, dashed.
func (d *dial) equator() error {
	r := d.opts.Radius
	d.dc.SetRGB(0, 0, 0)
	d.dc.SetLineWidth(1.5)
	d.dc.SetDash(8, 6)
	d.dc.DrawLine(d.originX-r, d.originY, d.originX+r, d.originY)
	err := d.dc.Stroke()
	d.dc.ClearDash()
	return err
}

// meridian is the noon line, pointing true north.
func (d *dial) meridian() error {
	x, y := d.point(d.opts.Radius, 0)
	d.dc.SetRGB(0.8, 0, 0)
	d.dc.SetLineWidth(2)
	d.dc.DrawLine(d.originX, d.originY, x, y)
	if err := d.dc.Stroke(); err != nil {
		return err
	}

	d.dc.SetFont(d.font.Face(d.opts.Radius * 0.1))
	d.dc.SetRGB(0, 0, 0)
	nx, ny := d.point(d.opts.Radius*0.9, 0)
	d.dc.DrawStringAnchored("N", nx, ny, 0.5, 0.5)
	return nil
}

func (d *dial) hourLines(lines []sundial.HourLine) error {
	d.dc.SetFont(d.font.Face(d.opts.Radius * 0.035))
	for _, l := range lines {
		x, y := d.point(d.opts.Radius, l.Angle)
		d.dc.SetRGB(0, 0, 0.8)
		d.dc.SetLineWidth(2)
		d.dc.DrawLine(d.originX, d.originY, x, y)
		if err := d.dc.Stroke(); err != nil {
			return err
		}

		lx, ly := d.point(d.opts.Radius*0.75, l.Angle)
		d.dc.SetRGB(0, 0, 0)
		d.dc.DrawStringAnchored(fmt.Sprintf("%.2f°", l.Angle), lx, ly, 0.5, 0.5)
	}
	return nil
}

func (d *dial) labels(res *sundial.Result) {
	rows := []string{
		fmt.Sprintf("Latitude: %.2f°", res.Location.Latitude),
		fmt.Sprintf("Longitude: %.2f°", res.Location.Longitude),
		fmt.Sprintf("Dial tilt: %.2f°", res.Orientation.Tilt),
		fmt.Sprintf("Dial rotation: %.2f°", res.Orientation.Rotation),
	}

	row := d.opts.rowHeight()
	top := d.originY + d.opts.Radius + d.opts.Margin
	d.dc.SetRGB(0, 0, 0)
	for i, s := range rows {
		size := 0.07
		if i >= 2 {
			size = 0.055
		}
		d.dc.SetFont(d.font.Face(d.opts.Radius * size))
		d.dc.DrawStringAnchored(s, d.originX, top+row*(float64(i)+0.5), 0.5, 0.5)
	}
}
