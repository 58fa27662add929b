package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Options controls the exported image and camera.
type Options struct {
	CanvasWidthIn  float64
	CanvasHeightIn float64
	DPI            int
	ElevationDeg   float64
	AzimuthDeg     float64
}

// DefaultOptions matches the stock export: 14×10 in canvas at 150 DPI,
// camera at 20° elevation, 45° azimuth.
func DefaultOptions() Options {
	return Options{
		CanvasWidthIn:  14,
		CanvasHeightIn: 10,
		DPI:            150,
		ElevationDeg:   20,
		AzimuthDeg:     45,
	}
}

// member drawing styles
var kindStyles = map[Kind]struct {
	color color.RGBA
	width vg.Length
}{
	KindPost:   {color.RGBA{R: 0x8b, A: 0xff}, vg.Points(2)},                   // dark red
	KindBeam:   {color.RGBA{R: 0x8b, G: 0x45, B: 0x13, A: 0xff}, vg.Points(3)}, // saddle brown
	KindRafter: {color.RGBA{R: 0xcd, G: 0x85, B: 0x3f, A: 0xff}, vg.Points(3)}, // peru
	KindPlate:  {color.RGBA{R: 0xa5, G: 0x2a, B: 0x2a, A: 0xff}, vg.Points(2)}, // brown
	KindRidge:  {color.RGBA{R: 0xa5, G: 0x2a, B: 0x2a, A: 0xff}, vg.Points(2)}, // brown
}

var cubeStyle = struct {
	color color.RGBA
	width vg.Length
}{color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}, vg.Points(0.5)}

// camera is an orthographic view at a fixed elevation and azimuth,
// looking at the scene with Z up.
type camera struct {
	sinAz, cosAz float64
	sinEl, cosEl float64
}

func newCamera(elevationDeg, azimuthDeg float64) camera {
	el := elevationDeg * math.Pi / 180
	az := azimuthDeg * math.Pi / 180
	return camera{
		sinAz: math.Sin(az), cosAz: math.Cos(az),
		sinEl: math.Sin(el), cosEl: math.Cos(el),
	}
}

// project maps a scene point to the 2-D drawing plane.
func (c camera) project(v r3.Vec) plotter.XY {
	return plotter.XY{
		X: v.Y*c.cosAz - v.X*c.sinAz,
		Y: v.Z*c.cosEl - (v.X*c.cosAz+v.Y*c.sinAz)*c.sinEl,
	}
}

// Render draws the scene through the configured camera and writes it as
// a PNG to w.
func Render(s *Scene, opts Options, w io.Writer) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Timber Frame Structure\n%g ft × %g ft × %g ft walls\nSnow Load: %g psf",
		s.Spec.LengthFt, s.Spec.WidthFt, s.Spec.WallHeightFt, s.Spec.SnowLoadPSF)
	p.HideAxes()

	cam := newCamera(opts.ElevationDeg, opts.AzimuthDeg)

	if err := addCube(p, cam, s.MaxDimFt); err != nil {
		return fmt.Errorf("render: drawing bounding cube: %w", err)
	}

	for _, seg := range s.Segments {
		style := kindStyles[seg.Kind]
		l, err := plotter.NewLine(plotter.XYs{cam.project(seg.A), cam.project(seg.B)})
		if err != nil {
			return fmt.Errorf("render: drawing member segment: %w", err)
		}
		l.LineStyle.Color = style.color
		l.LineStyle.Width = style.width
		p.Add(l)
	}

	if err := addAxisLabels(p, cam, s.MaxDimFt); err != nil {
		return fmt.Errorf("render: drawing axis labels: %w", err)
	}

	setViewport(p, cam, s.MaxDimFt)

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(opts.CanvasWidthIn)*vg.Inch, vg.Length(opts.CanvasHeightIn)*vg.Inch),
		vgimg.UseDPI(opts.DPI),
	)
	p.Draw(draw.New(c))

	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("render: encoding png: %w", err)
	}
	return nil
}

// Save renders the scene to the named file.
func Save(s *Scene, opts Options, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: creating %s: %w", path, err)
	}
	if err := Render(s, opts, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("render: closing %s: %w", path, err)
	}
	return nil
}

// addCube draws the edges of the equal-aspect bounding cube [0, dim]³
// so the three scene axes stay legible in the projection.
func addCube(p *plot.Plot, cam camera, dim float64) error {
	corner := func(i int) r3.Vec {
		return r3.Vec{
			X: float64(i&1) * dim,
			Y: float64(i>>1&1) * dim,
			Z: float64(i>>2&1) * dim,
		}
	}
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			if i&bit != 0 {
				continue
			}
			l, err := plotter.NewLine(plotter.XYs{cam.project(corner(i)), cam.project(corner(i | bit))})
			if err != nil {
				return err
			}
			l.LineStyle.Color = cubeStyle.color
			l.LineStyle.Width = cubeStyle.width
			p.Add(l)
		}
	}
	return nil
}

// addAxisLabels names the three cube axes at their ground-level (and
// vertical) edge midpoints.
func addAxisLabels(p *plot.Plot, cam camera, dim float64) error {
	points := []r3.Vec{
		{X: dim / 2, Y: 0, Z: 0},
		{X: 0, Y: dim / 2, Z: 0},
		{X: 0, Y: 0, Z: dim / 2},
	}
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i] = cam.project(pt)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    xys,
		Labels: []string{"Width (ft)", "Length (ft)", "Height (ft)"},
	})
	if err != nil {
		return err
	}
	p.Add(labels)
	return nil
}

// setViewport fixes the plot ranges to the projected bounding cube with
// a small margin, so the aspect does not depend on which members exist.
func setViewport(p *plot.Plot, cam camera, dim float64) {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i := 0; i < 8; i++ {
		pt := cam.project(r3.Vec{
			X: float64(i&1) * dim,
			Y: float64(i>>1&1) * dim,
			Z: float64(i>>2&1) * dim,
		})
		minX = math.Min(minX, pt.X)
		maxX = math.Max(maxX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxY = math.Max(maxY, pt.Y)
	}

	margin := 0.05 * dim
	p.X.Min, p.X.Max = minX-margin, maxX+margin
	p.Y.Min, p.Y.Max = minY-margin, maxY+margin
}
