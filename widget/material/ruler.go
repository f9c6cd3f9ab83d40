// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	giomaterial "gioui.org/widget/material"

	"gioui.org/ruler"
	"gioui.org/ruler/internal/f32color"
	"gioui.org/ruler/widget"
)

// RulerStyle draws a ruler picker.
type RulerStyle struct {
	Config ruler.Config
	Ruler  *widget.Ruler

	// ScaleSpace is the distance between ticks.
	ScaleSpace unit.Dp
	// Height of the tape, from the top of the labels to the baseline.
	Height          unit.Dp
	LongTick        unit.Dp
	ShortTick       unit.Dp
	TickWidth       unit.Dp
	BaselineWidth   unit.Dp
	IndicatorWidth  unit.Dp
	IndicatorHeight unit.Dp
	TextSize        unit.Sp

	TickColor      color.NRGBA
	BaselineColor  color.NRGBA
	TextColor      color.NRGBA
	IndicatorColor color.NRGBA

	theme *giomaterial.Theme
}

// Ruler returns a style for a ruler with configuration cfg.
func Ruler(th *giomaterial.Theme, r *widget.Ruler, cfg ruler.Config) RulerStyle {
	return RulerStyle{
		Config:          cfg,
		Ruler:           r,
		ScaleSpace:      15,
		Height:          30,
		LongTick:        15,
		ShortTick:       10,
		TickWidth:       1,
		BaselineWidth:   1,
		IndicatorWidth:  10,
		IndicatorHeight: 55,
		TextSize:        th.TextSize * 11.0 / 16.0,
		TickColor:       f32color.MulAlpha(th.Palette.Fg, 0x80),
		BaselineColor:   f32color.MulAlpha(th.Palette.Fg, 0x1a),
		TextColor:       f32color.MulAlpha(th.Palette.Fg, 0x99),
		IndicatorColor:  th.Palette.ContrastBg,
		theme:           th,
	}
}

func (s RulerStyle) Layout(gtx layout.Context) layout.Dimensions {
	tapeHeight := gtx.Dp(s.Height)
	height := tapeHeight
	if h := gtx.Dp(s.IndicatorHeight); h > height {
		height = h
	}
	size := gtx.Constraints.Constrain(image.Pt(gtx.Constraints.Max.X, height))
	gtx.Constraints = layout.Exact(size)
	dims := s.Ruler.Layout(gtx, s.Config, gtx.Dp(s.ScaleSpace))

	tickColor, baseColor, textColor, indColor := s.TickColor, s.BaselineColor, s.TextColor, s.IndicatorColor
	if s.Config.Disabled || !gtx.Source.Enabled() {
		tickColor = f32color.Disabled(tickColor)
		baseColor = f32color.Disabled(baseColor)
		textColor = f32color.Disabled(textColor)
		indColor = f32color.Disabled(indColor)
	}

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	baseline := (size.Y+tapeHeight)/2 - gtx.Dp(s.BaselineWidth)
	paint.FillShape(gtx.Ops, baseColor, clip.Rect{
		Min: image.Pt(0, baseline),
		Max: image.Pt(size.X, baseline+gtx.Dp(s.BaselineWidth)),
	}.Op())

	m := s.Ruler.Model()
	if !m.Valid() {
		return dims
	}
	off := s.Ruler.Offset()
	tw := gtx.Dp(s.TickWidth)
	long, short := gtx.Dp(s.LongTick), gtx.Dp(s.ShortTick)
	first, last := m.Visible(off)
	for i := first; i <= last; i++ {
		t := m.Tick(i)
		x := int(math.Round(t.X - off))
		h := short
		if t.Major {
			h = long
		}
		paint.FillShape(gtx.Ops, tickColor, clip.Rect{
			Min: image.Pt(x-tw/2, baseline-h),
			Max: image.Pt(x-tw/2+tw, baseline),
		}.Op())
	}
	for _, t := range s.labels(m, off) {
		x := int(math.Round(t.X - off))
		s.label(gtx, m.Label(t.Value), textColor, x, baseline-long)
	}
	s.indicator(gtx, indColor, int(math.Round(m.Indicator())))
	return dims
}

// labels returns the visible major ticks at offset off that carry a
// label. Padding ticks below the minimum are not labeled.
func (s RulerStyle) labels(m ruler.Model, off float64) []ruler.Tick {
	if s.Config.HideLabels || !m.Valid() {
		return nil
	}
	var ticks []ruler.Tick
	first, last := m.Visible(off)
	for i := first; i <= last; i++ {
		t := m.Tick(i)
		if t.Major && t.Value >= s.Config.Min-s.Config.Step/2 {
			ticks = append(ticks, t)
		}
	}
	return ticks
}

// label draws txt centered horizontally on x, with its bottom at y.
func (s RulerStyle) label(gtx layout.Context, txt string, col color.NRGBA, x, y int) {
	gtx.Constraints.Min = image.Point{}
	macro := op.Record(gtx.Ops)
	l := giomaterial.Label(s.theme, s.TextSize, txt)
	l.Color = col
	l.MaxLines = 1
	dims := l.Layout(gtx)
	call := macro.Stop()
	defer op.Offset(image.Pt(x-dims.Size.X/2, y-dims.Size.Y)).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
}

// indicator draws a vertical line ending in a triangle at x.
func (s RulerStyle) indicator(gtx layout.Context, col color.NRGBA, x int) {
	size := gtx.Constraints.Min
	w := float32(gtx.Dp(s.IndicatorWidth))
	h := gtx.Dp(s.IndicatorHeight)
	if h > size.Y {
		h = size.Y
	}
	top := (size.Y - h) / 2
	bottom := float32(top + h)
	lw := gtx.Dp(s.TickWidth) * 2
	paint.FillShape(gtx.Ops, col, clip.Rect{
		Min: image.Pt(x-lw/2, top),
		Max: image.Pt(x-lw/2+lw, top+h),
	}.Op())

	var p clip.Path
	p.Begin(gtx.Ops)
	fx := float32(x)
	p.MoveTo(f32.Pt(fx, bottom-w/2))
	p.LineTo(f32.Pt(fx+w/2, bottom))
	p.LineTo(f32.Pt(fx-w/2, bottom))
	p.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: p.End()}.Op())
}
