// SPDX-License-Identifier: Unlicense OR MIT

package main

// A ruler picker demo. See https://gioui.org for more information.

import (
	"fmt"
	"log"
	"os"

	"github.com/go-logr/logr"
	"golang.org/x/exp/shiny/materialdesign/icons"
	"golang.org/x/image/font/gofont/gomono"

	"gioui.org/app"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/font/opentype"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	giomaterial "gioui.org/widget/material"

	"gioui.org/ruler"
	rwidget "gioui.org/ruler/widget"
	"gioui.org/ruler/widget/material"
)

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	logger, err := buildLogger(opts.logLevel)
	if err != nil {
		log.Fatal(err)
	}
	go func() {
		w := new(app.Window)
		w.Option(app.Title("Ruler"), app.Size(unit.Dp(400), unit.Dp(300)))
		if err := loop(w, opts, logger); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

type demo struct {
	cfg     ruler.Config
	ruler   rwidget.Ruler
	reset   widget.Clickable
	icon    *widget.Icon
	settled float64
}

func loop(w *app.Window, opts *options, logger logr.Logger) error {
	th, err := newTheme()
	if err != nil {
		return err
	}
	icon, err := widget.NewIcon(icons.NavigationRefresh)
	if err != nil {
		return err
	}
	d := &demo{cfg: opts.cfg, icon: icon}
	d.ruler.Logger = logger.WithName("ruler")
	if opts.limit > 0 {
		d.ruler.CanChange = func(v float64) bool {
			return v <= opts.limit
		}
	}
	d.settled, _ = d.cfg.DefaultValue()

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			d.update(gtx, logger)
			d.layout(gtx, th)
			e.Frame(gtx.Ops)
		}
	}
}

func newTheme() (*giomaterial.Theme, error) {
	face, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	mono := font.FontFace{Font: font.Font{Typeface: "Go Mono"}, Face: face}
	th := giomaterial.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(append(gofont.Collection(), mono)))
	th.Face = "Go Mono"
	return th, nil
}

func (d *demo) update(gtx layout.Context, logger logr.Logger) {
	if d.reset.Clicked(gtx) {
		v, _ := d.cfg.DefaultValue()
		d.ruler.SetValue(v, true)
	}
	for {
		e, ok := d.ruler.Update(gtx)
		if !ok {
			break
		}
		if e.Kind == rwidget.Settled {
			d.settled = e.Value
			logger.Info("value settled", "value", e.Value)
		}
	}
}

func (d *demo) layout(gtx layout.Context, th *giomaterial.Theme) layout.Dimensions {
	m := d.ruler.Model()
	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical, Spacing: layout.SpaceSides}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Center.Layout(gtx, giomaterial.H3(th, m.Label(d.ruler.Value())).Layout)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
			layout.Rigid(material.Ruler(th, &d.ruler, d.cfg).Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Flexed(1, giomaterial.Body1(th, "Settled at "+m.Label(d.settled)).Layout),
					layout.Rigid(giomaterial.IconButton(th, &d.reset, d.icon, "Reset").Layout),
				)
			}),
		)
	})
}
