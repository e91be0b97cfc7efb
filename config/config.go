package config

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/midbel/axes"
	"gopkg.in/yaml.v3"
)

var (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
	DefaultDelim  = ","
)

const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

const (
	KindLinear = "linear"
	KindLog    = "log"
	KindLabel  = "label"
)

const (
	RenderLine  = "line"
	RenderStep  = "step"
	RenderPoint = "point"
)

type Config struct {
	Title   string   `toml:"title" yaml:"title"`
	Width   float64  `toml:"width" yaml:"width"`
	Height  float64  `toml:"height" yaml:"height"`
	Padding *Padding `toml:"padding" yaml:"padding"`
	Refine  int      `toml:"refine" yaml:"refine"`

	Delimiter string `toml:"delimiter" yaml:"delimiter"`
	Palette   string `toml:"palette" yaml:"palette"`

	Axes struct {
		Bottom *Axis `toml:"bottom" yaml:"bottom"`
		Top    *Axis `toml:"top" yaml:"top"`
		Left   *Axis `toml:"left" yaml:"left"`
		Right  *Axis `toml:"right" yaml:"right"`
	} `toml:"axes" yaml:"axes"`

	Constraints []Constraint `toml:"constraints" yaml:"constraints"`
	Legend      *Legend      `toml:"legend" yaml:"legend"`
	Files       []File       `toml:"files" yaml:"files"`
	Style       Style        `toml:"style" yaml:"style"`

	// directory of the description, used to resolve relative data files
	base string
	file string
}

func Default() Config {
	return Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Delimiter: DefaultDelim,
		Style:     GlobalStyle(),
	}
}

// Load reads the plot description in file. The format is chosen from its
// extension.
func Load(file string) (Config, error) {
	r, err := os.Open(file)
	if err != nil {
		return Config{}, err
	}
	defer r.Close()

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(file)), ".")
	if format == "yml" {
		format = FormatYAML
	}
	cfg, err := Decode(r, format)
	if err != nil {
		return cfg, withFile(err, file)
	}
	cfg.base = filepath.Dir(file)
	cfg.file = file
	return cfg, nil
}

func Decode(r io.Reader, format string) (Config, error) {
	cfg := Default()
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&cfg)
		if err != nil {
			return cfg, DecodeError{Message: err.Error(), Err: err}
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			k := keys[0]
			section := "root"
			if len(k) > 1 {
				section = strings.Join(k[:len(k)-1], ".")
			}
			return cfg, OptionError{
				Option:  k[len(k)-1],
				Section: section,
			}
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return cfg, DecodeError{Message: err.Error(), Err: err}
		}
	default:
		return cfg, DecodeError{
			Message: fmt.Sprintf("%q: unknown plot description format", format),
			Err:     ErrFormat,
		}
	}
	return cfg, nil
}

func withFile(err error, file string) error {
	switch e := err.(type) {
	case OptionError:
		e.File = file
		return e
	case DecodeError:
		e.File = file
		return e
	default:
		return err
	}
}

// Name identifies the plot: the base name of its description file or its
// title.
func (c Config) Name() string {
	if c.file != "" {
		return strings.TrimSuffix(filepath.Base(c.file), filepath.Ext(c.file))
	}
	if c.Title != "" {
		return c.Title
	}
	return "plot"
}

// Plot builds the plot described by c. Data files are read and the axes are
// widened to cover the series drawn with them. Bounds given in the
// description are kept.
func (c Config) Plot() (*axes.Plot, error) {
	var list [4]*axes.Axis
	for i, a := range []struct {
		*Axis
		Section string
	}{
		{c.Axes.Bottom, "axes.bottom"},
		{c.Axes.Top, "axes.top"},
		{c.Axes.Left, "axes.left"},
		{c.Axes.Right, "axes.right"},
	} {
		x, err := a.Axis.axis(a.Section)
		if err != nil {
			return nil, err
		}
		list[i] = x
	}
	plot := axes.NewPlot(list[0], list[2])
	plot.Top = list[1]
	plot.Right = list[3]
	plot.Title = c.Title
	plot.Refine = c.Refine
	if c.Padding != nil {
		plot.Padding = c.Padding.padding()
	}
	for i, x := range c.Constraints {
		cs, err := x.constraint(fmt.Sprintf("constraints[%d]", i))
		if err != nil {
			return nil, err
		}
		plot.Constraints = append(plot.Constraints, cs)
	}

	palette, err := c.palette()
	if err != nil {
		return nil, err
	}
	var entries []axes.LegendEntry
	for i, f := range c.Files {
		s, err := c.serie(f, palette.At(i))
		if err != nil {
			return nil, err
		}
		xo, yo, err := f.orientations(fmt.Sprintf("files[%d]", i))
		if err != nil {
			return nil, err
		}
		if err := plot.Add(s, xo, yo); err != nil {
			return nil, fmt.Errorf("files[%d]: %w", i, err)
		}
		entries = append(entries, s.LegendEntry())
	}
	for _, a := range []struct {
		*Axis
		Target *axes.Axis
	}{
		{c.Axes.Bottom, plot.Bottom},
		{c.Axes.Top, plot.Top},
		{c.Axes.Left, plot.Left},
		{c.Axes.Right, plot.Right},
	} {
		if err := a.Axis.fix(a.Target); err != nil {
			return nil, err
		}
	}
	if c.Legend != nil {
		lg, err := c.Legend.legend(entries)
		if err != nil {
			return nil, err
		}
		plot.Legend = lg
	}
	return plot, nil
}

func (c Config) palette() (axes.Palette, error) {
	switch c.Palette {
	case "", "category10":
		return axes.Category10, nil
	case "tableau10":
		return axes.Tableau10, nil
	default:
		return nil, OptionError{Option: "palette", Section: "root", Value: c.Palette}
	}
}

type Padding struct {
	Top    float64 `toml:"top" yaml:"top"`
	Right  float64 `toml:"right" yaml:"right"`
	Bottom float64 `toml:"bottom" yaml:"bottom"`
	Left   float64 `toml:"left" yaml:"left"`
}

func (p Padding) padding() axes.Padding {
	return axes.Padding{
		Top:    p.Top,
		Right:  p.Right,
		Bottom: p.Bottom,
		Left:   p.Left,
	}
}

type Label struct {
	Name  string  `toml:"name" yaml:"name"`
	Value float64 `toml:"value" yaml:"value"`
}

type Axis struct {
	Kind   string   `toml:"kind" yaml:"kind"`
	Min    *float64 `toml:"min" yaml:"min"`
	Max    *float64 `toml:"max" yaml:"max"`
	Label  string   `toml:"label" yaml:"label"`
	Format string   `toml:"format" yaml:"format"`

	Reversed     bool `toml:"reversed" yaml:"reversed"`
	Hidden       bool `toml:"hidden" yaml:"hidden"`
	HideTickText bool `toml:"hide-tick-text" yaml:"hide-tick-text"`

	MinStep     float64 `toml:"min-step" yaml:"min-step"`
	Step        float64 `toml:"step" yaml:"step"`
	StepValue   float64 `toml:"step-value" yaml:"step-value"`
	SmallTicks  int     `toml:"small-ticks" yaml:"small-ticks"`
	Independent bool    `toml:"independent" yaml:"independent"`

	CrossAxis   bool    `toml:"cross-axis" yaml:"cross-axis"`
	TextAngle   float64 `toml:"text-angle" yaml:"text-angle"`
	LabelOffset float64 `toml:"label-offset" yaml:"label-offset"`

	Labels      []Label `toml:"labels" yaml:"labels"`
	BetweenText bool    `toml:"between-text" yaml:"between-text"`
	KeepOrder   bool    `toml:"keep-order" yaml:"keep-order"`
	SpacingMin  float64 `toml:"spacing-min" yaml:"spacing-min"`
}

func (a *Axis) axis(section string) (*axes.Axis, error) {
	if a == nil {
		return nil, nil
	}
	var (
		min   = math.NaN()
		max   = math.NaN()
		scale axes.Scale
	)
	if a.Min != nil {
		min = *a.Min
	}
	if a.Max != nil {
		max = *a.Max
	}
	switch a.Kind {
	case "", KindLinear:
		scale = axes.LinearScale{}
	case KindLog:
		scale = axes.LogScale{}
	case KindLabel:
		ls := axes.LabelScale{
			TicksBetweenText:   a.BetweenText,
			KeepOrder:          a.KeepOrder,
			PhysicalSpacingMin: a.SpacingMin,
		}
		for _, k := range a.Labels {
			ls.Add(k.Name, k.Value)
		}
		scale = &ls
	default:
		return nil, OptionError{
			Option:  "kind",
			Section: section,
			Value:   a.Kind,
		}
	}
	if a.Kind != KindLabel && len(a.Labels) > 0 {
		return nil, OptionError{
			Option:  "labels",
			Section: section,
		}
	}
	x, err := axes.NewAxis(scale, min, max)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", section, err)
	}
	x.Label = a.Label
	if a.Format != "" {
		x.NumberFormat = a.Format
	}
	x.Reversed = a.Reversed
	x.Hidden = a.Hidden
	x.HideTickText = a.HideTickText
	if a.MinStep > 0 {
		x.MinPhysicalLargeTickStep = a.MinStep
	}
	x.LargeTickStep = a.Step
	x.LargeTickValue = a.StepValue
	x.NumberOfSmallTicks = a.SmallTicks
	x.TicksIndependentOfPhysicalExtent = a.Independent
	x.TicksCrossAxis = a.CrossAxis
	x.TickTextAngle = a.TextAngle
	x.LabelOffset = a.LabelOffset
	return x, nil
}

// fix restores the bounds set in the description on x.
func (a *Axis) fix(x *axes.Axis) error {
	if a == nil || x == nil {
		return nil
	}
	var (
		min = x.WorldMin()
		max = x.WorldMax()
	)
	if a.Min != nil {
		min = *a.Min
	}
	if a.Max != nil {
		max = *a.Max
	}
	return x.SetWorld(min, max)
}

type Constraint struct {
	Type      string  `toml:"type" yaml:"type"`
	Ratio     float64 `toml:"ratio" yaml:"ratio"`
	Direction string  `toml:"direction" yaml:"direction"`
	Pixels    float64 `toml:"pixels" yaml:"pixels"`
	Axis      string  `toml:"axis" yaml:"axis"`
	Position  float64 `toml:"position" yaml:"position"`
	Pin       string  `toml:"pin" yaml:"pin"`
	PinX      string  `toml:"pin-x" yaml:"pin-x"`
	PinY      string  `toml:"pin-y" yaml:"pin-y"`
}

func (c Constraint) constraint(section string) (axes.Constraint, error) {
	switch c.Type {
	case "aspect-ratio":
		x, err := orientation(c.PinX, section, "pin-x", axes.OrientLeft, axes.OrientRight)
		if err != nil {
			return nil, err
		}
		y, err := orientation(c.PinY, section, "pin-y", axes.OrientBottom, axes.OrientTop)
		if err != nil {
			return nil, err
		}
		return axes.AspectRatio{
			Ratio: c.Ratio,
			PinX:  x,
			PinY:  y,
		}, nil
	case "pixel-world-length":
		var (
			dir  axes.Direction
			pins = []axes.Orientation{axes.OrientLeft, axes.OrientRight}
		)
		switch c.Direction {
		case "", "x":
			dir = axes.DirX
		case "y":
			dir = axes.DirY
			pins = []axes.Orientation{axes.OrientBottom, axes.OrientTop}
		default:
			return nil, OptionError{Option: "direction", Section: section, Value: c.Direction}
		}
		pin, err := orientation(c.Pin, section, "pin", pins...)
		if err != nil {
			return nil, err
		}
		return axes.PixelWorldLength{
			Direction: dir,
			Pixels:    c.Pixels,
			Pin:       pin,
		}, nil
	case "axis-position":
		o, err := orientation(c.Axis, section, "axis", axes.OrientBottom, axes.OrientTop, axes.OrientLeft, axes.OrientRight)
		if err != nil {
			return nil, err
		}
		if o == 0 {
			return nil, OptionError{Option: "axis", Section: section}
		}
		return axes.AxisPosition{
			Axis:     o,
			Position: c.Position,
		}, nil
	default:
		return nil, OptionError{Option: "type", Section: section, Value: c.Type}
	}
}

// orientation parses str as one of the allowed orientations. An empty
// string gives the zero orientation.
func orientation(str, section, option string, allowed ...axes.Orientation) (axes.Orientation, error) {
	if str == "" {
		return 0, nil
	}
	for _, o := range allowed {
		if o.String() == str {
			return o, nil
		}
	}
	return 0, OptionError{Option: option, Section: section, Value: str}
}

type Legend struct {
	Title      string   `toml:"title" yaml:"title"`
	Position   string   `toml:"position" yaml:"position"`
	PlaceX     string   `toml:"place-x" yaml:"place-x"`
	PlaceY     string   `toml:"place-y" yaml:"place-y"`
	OffsetX    *float64 `toml:"offset-x" yaml:"offset-x"`
	OffsetY    *float64 `toml:"offset-y" yaml:"offset-y"`
	NeverShift bool     `toml:"never-shift" yaml:"never-shift"`
}

func (g *Legend) legend(entries []axes.LegendEntry) (*axes.Legend, error) {
	lg := axes.NewLegend(entries...)
	lg.Title = g.Title
	lg.NeverShiftAxes = g.NeverShift
	if g.OffsetX != nil {
		lg.OffsetX = *g.OffsetX
	}
	if g.OffsetY != nil {
		lg.OffsetY = *g.OffsetY
	}
	if g.Position != "" {
		var orient axes.Orientation
		for _, str := range strings.Split(g.Position, "-") {
			o, err := orientation(str, "legend", "position", axes.OrientBottom, axes.OrientTop, axes.OrientLeft, axes.OrientRight)
			if err != nil {
				return nil, err
			}
			orient |= o
		}
		lg.Orient = orient
	}
	var err error
	if lg.PlaceX, err = placement(g.PlaceX, "place-x", lg.PlaceX); err != nil {
		return nil, err
	}
	if lg.PlaceY, err = placement(g.PlaceY, "place-y", lg.PlaceY); err != nil {
		return nil, err
	}
	return lg, nil
}

func placement(str, option string, def axes.Placement) (axes.Placement, error) {
	switch str {
	case "":
		return def, nil
	case "inside":
		return axes.Inside, nil
	case "outside":
		return axes.Outside, nil
	default:
		return def, OptionError{Option: option, Section: "legend", Value: str}
	}
}

type Style struct {
	Type          string  `toml:"type" yaml:"type"`
	Stroke        string  `toml:"stroke" yaml:"stroke"`
	Width         float64 `toml:"width" yaml:"width"`
	Point         string  `toml:"point" yaml:"point"`
	IgnoreMissing bool    `toml:"ignore-missing" yaml:"ignore-missing"`
}

func GlobalStyle() Style {
	return Style{
		Type:  RenderLine,
		Width: 1,
	}
}

func (s Style) merge(g Style) Style {
	if s.Type == "" {
		s.Type = g.Type
	}
	if s.Stroke == "" {
		s.Stroke = g.Stroke
	}
	if s.Width == 0 {
		s.Width = g.Width
	}
	if s.Point == "" {
		s.Point = g.Point
	}
	return s
}

func (s Style) getPointFunc() (axes.PointFunc, error) {
	switch s.Point {
	case "":
		return nil, nil
	case "circle":
		return axes.GetCircle, nil
	case "square":
		return axes.GetSquare, nil
	case "diamond":
		return axes.GetDiamond, nil
	default:
		return nil, OptionError{Option: "point", Section: "style", Value: s.Point}
	}
}

func (s Style) makeRenderer() (axes.Renderer, error) {
	point, err := s.getPointFunc()
	if err != nil {
		return nil, err
	}
	switch s.Type {
	case RenderLine:
		return axes.LinearRenderer{
			Width:         s.Width,
			Point:         point,
			IgnoreMissing: s.IgnoreMissing,
		}, nil
	case RenderStep:
		return axes.StepRenderer{
			Width: s.Width,
			Point: point,
		}, nil
	case RenderPoint:
		return axes.PointRenderer{
			Point: point,
		}, nil
	default:
		return nil, OptionError{Option: "type", Section: "style", Value: s.Type}
	}
}

type File struct {
	Path  string `toml:"path" yaml:"path"`
	Ident string `toml:"ident" yaml:"ident"`
	X     int    `toml:"x" yaml:"x"`
	Y     int    `toml:"y" yaml:"y"`
	XAxis string `toml:"x-axis" yaml:"x-axis"`
	YAxis string `toml:"y-axis" yaml:"y-axis"`
	Style `toml:"style" yaml:"style"`
}

func (f File) Name() string {
	if f.Ident != "" {
		return f.Ident
	}
	return strings.TrimSuffix(filepath.Base(f.Path), filepath.Ext(f.Path))
}

func (f File) orientations(section string) (axes.Orientation, axes.Orientation, error) {
	x, err := orientation(f.XAxis, section, "x-axis", axes.OrientBottom, axes.OrientTop)
	if err != nil {
		return 0, 0, err
	}
	y, err := orientation(f.YAxis, section, "y-axis", axes.OrientLeft, axes.OrientRight)
	if err != nil {
		return 0, 0, err
	}
	if x == 0 {
		x = axes.OrientBottom
	}
	if y == 0 {
		y = axes.OrientLeft
	}
	return x, y, nil
}
