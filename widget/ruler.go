// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"math"
	"time"

	"github.com/go-logr/logr"

	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"

	"gioui.org/ruler"
	"gioui.org/ruler/internal/snap"
)

// Ruler is the state of a horizontally scrolling ruler picker.
type Ruler struct {
	// CanChange, if set, is asked before a drag changes the value.
	// Returning false moves the ruler back to the current value.
	CanChange func(v float64) bool
	// Logger receives diagnostics about invalid configurations.
	Logger logr.Logger

	ctrl   *ruler.Controller
	scroll gesture.Scroll
	state  gesture.ScrollState
	offset float64
	anim   snap.Animation
	now    time.Time
	// initial is a value set before the first Layout.
	initial *float64
	events  []Event
}

// EventKind is the kind of a ruler Event.
type EventKind uint8

const (
	// Changed is reported for every change of the value.
	Changed EventKind = iota
	// Settled is reported when a gesture has ended and the ruler
	// snaps to its value.
	Settled
)

// Event is a change of the ruler value.
type Event struct {
	Kind  EventKind
	Value float64
}

// Update processes input events and returns the next ruler event, if
// any. Update must be called with the Context of the current frame.
func (r *Ruler) Update(gtx layout.Context) (Event, bool) {
	r.update(gtx)
	if len(r.events) == 0 {
		return Event{}, false
	}
	e := r.events[0]
	n := copy(r.events, r.events[1:])
	r.events = r.events[:n]
	return e, true
}

// Layout the ruler input area for cfg, with ticks spacePx pixels
// apart. The viewport is gtx.Constraints.Min. Replacing cfg resets the
// value to the configured default.
func (r *Ruler) Layout(gtx layout.Context, cfg ruler.Config, spacePx int) layout.Dimensions {
	size := gtx.Constraints.Min
	geom := ruler.Geometry{
		ScaleSpace: float64(spacePx),
		Viewport:   float64(size.X),
	}
	r.now = gtx.Now
	switch {
	case r.ctrl == nil:
		r.init(cfg, geom)
	default:
		if r.ctrl.Model().Geometry() != geom {
			r.ctrl.SetGeometry(geom)
		}
		if !cfg.Equal(r.ctrl.Config()) {
			r.ctrl.SetConfig(cfg)
		}
	}
	for {
		_, ok := r.Update(gtx)
		if !ok {
			break
		}
	}

	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	if cfg.Disabled {
		r.scroll.Stop()
	} else {
		r.scroll.Add(gtx.Ops)
	}
	return layout.Dimensions{Size: size}
}

func (r *Ruler) init(cfg ruler.Config, geom ruler.Geometry) {
	r.ctrl = ruler.NewController(r, cfg, geom, ruler.WithLogger(r.Logger))
	r.ctrl.SetVeto(r.veto)
	r.ctrl.OnChange(func(v float64) {
		r.events = append(r.events, Event{Kind: Changed, Value: v})
	})
	r.ctrl.OnSettle(func(v float64) {
		r.events = append(r.events, Event{Kind: Settled, Value: v})
	})
	if r.initial != nil {
		r.ctrl.SetValue(*r.initial, false)
		r.initial = nil
	}
}

func (r *Ruler) veto(v float64) bool {
	return r.CanChange == nil || r.CanChange(v)
}

func (r *Ruler) update(gtx layout.Context) {
	if r.ctrl == nil {
		return
	}
	r.now = gtx.Now
	lo, hi := r.ctrl.Model().ScrollRange()
	xrange := pointer.ScrollRange{
		Min: int(math.Floor(lo - r.offset)),
		Max: int(math.Ceil(hi - r.offset)),
	}
	d := r.scroll.Update(gtx.Metric, gtx.Source, gtx.Now, gesture.Horizontal, xrange, pointer.ScrollRange{})
	r.apply(d, r.scroll.State())
	if r.anim.Active() {
		r.offset = r.anim.Tick(gtx.Now)
	}
	if r.anim.Active() || r.state != gesture.StateIdle {
		gtx.Execute(op.InvalidateCmd{})
	}
}

// apply feeds a scroll distance and the new gesture state to the
// controller.
func (r *Ruler) apply(d int, st gesture.ScrollState) {
	prev := r.state
	r.state = st
	cfg := r.ctrl.Config()
	if cfg.Disabled || !r.ctrl.Model().Valid() {
		return
	}
	if prev == gesture.StateIdle && st != gesture.StateIdle {
		r.anim = snap.Animation{}
		r.ctrl.BeginDrag()
		prev = gesture.StateDragging
	}
	lo, hi := r.ctrl.Model().ScrollRange()
	if d != 0 {
		// Mouse wheel scrolling arrives without a gesture.
		wheel := st == gesture.StateIdle && prev == gesture.StateIdle
		if wheel {
			r.offset = r.target()
			r.anim = snap.Animation{}
			r.ctrl.BeginDrag()
		}
		r.offset = clamp(r.offset+float64(d), lo, hi)
		r.ctrl.Scroll(r.offset)
		if wheel {
			r.ctrl.EndDrag(false)
			return
		}
	}
	switch {
	case prev == gesture.StateDragging && st == gesture.StateFlinging:
		r.ctrl.EndDrag(true)
	case prev == gesture.StateDragging && st == gesture.StateIdle:
		r.ctrl.EndDrag(false)
	case prev == gesture.StateFlinging && st == gesture.StateIdle:
		r.ctrl.EndDeceleration()
	}
	if r.state == gesture.StateFlinging && (r.offset <= lo || r.offset >= hi) {
		r.scroll.Stop()
		r.state = gesture.StateIdle
		r.ctrl.EndDeceleration()
	}
}

// ScrollTo implements ruler.Surface.
func (r *Ruler) ScrollTo(offset float64, animated bool) {
	if !animated {
		r.anim = snap.Animation{}
		r.scroll.Stop()
		r.offset = offset
		return
	}
	r.anim.Start(r.now, r.offset, offset)
}

// target is the offset the ruler rests at once animations end.
func (r *Ruler) target() float64 {
	if r.anim.Active() {
		return r.anim.Target()
	}
	return r.offset
}

// SetValue selects v, clamped and snapped to the ruler ticks.
func (r *Ruler) SetValue(v float64, animated bool) {
	if r.ctrl == nil {
		r.initial = &v
		return
	}
	r.ctrl.SetValue(v, animated)
}

// Value returns the selected value.
func (r *Ruler) Value() float64 {
	switch {
	case r.ctrl != nil:
		return r.ctrl.Value()
	case r.initial != nil:
		return *r.initial
	default:
		return 0
	}
}

// Offset returns the scroll offset of the tape in pixels.
func (r *Ruler) Offset() float64 {
	return r.offset
}

// Model returns the value mapping of the last Layout.
func (r *Ruler) Model() ruler.Model {
	if r.ctrl == nil {
		return ruler.Model{}
	}
	return r.ctrl.Model()
}

// Dragging reports whether the user is dragging or flinging the
// ruler.
func (r *Ruler) Dragging() bool {
	return r.state != gesture.StateIdle
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

func (k EventKind) String() string {
	switch k {
	case Changed:
		return "Changed"
	case Settled:
		return "Settled"
	default:
		panic("invalid EventKind")
	}
}
