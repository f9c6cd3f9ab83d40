// SPDX-License-Identifier: Unlicense OR MIT

package ruler

import (
	"math"

	"github.com/go-logr/logr"
)

// Surface is the scrollable host of a ruler.
type Surface interface {
	// ScrollTo moves the surface to offset, animated or at once.
	ScrollTo(offset float64, animated bool)
}

// Phase is the gesture state of a Controller.
type Phase uint8

const (
	// Idle is the resting phase; the value is settled.
	Idle Phase = iota
	// Dragging is reported while a drag gesture delivers offsets.
	Dragging
	// Settling is reported while a fling decelerates.
	Settling
)

// Controller tracks the selected value of a ruler and turns scroll
// offsets from its Surface into value changes.
//
// A Controller is not safe for concurrent use; all methods must be
// called from the goroutine that owns the Surface.
type Controller struct {
	surface Surface
	model   Model
	log     logr.Logger

	value    float64
	previous float64
	phase    Phase

	veto    func(float64) bool
	changed []func(float64)
	settled []func(float64)
}

// Option configures a Controller.
type Option func(c *Controller)

// WithLogger directs diagnostics to l. Invalid configurations and
// ignored values are logged at verbosity 1.
func WithLogger(l logr.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// NewController returns a Controller for cfg that drives s.
func NewController(s Surface, cfg Config, geom Geometry, opts ...Option) *Controller {
	c := &Controller{
		surface: s,
		log:     logr.Discard(),
	}
	for _, o := range opts {
		o(c)
	}
	c.model.geom = geom
	c.SetConfig(cfg)
	return c
}

// SetVeto installs a hook that is asked, before every change caused by
// scrolling, whether the new value may be adopted. A nil hook accepts
// every value.
func (c *Controller) SetVeto(f func(v float64) bool) {
	c.veto = f
}

// OnChange registers f to be called with every accepted value change.
func (c *Controller) OnChange(f func(v float64)) {
	c.changed = append(c.changed, f)
}

// OnSettle registers f to be called with the value a gesture settles
// on.
func (c *Controller) OnSettle(f func(v float64)) {
	c.settled = append(c.settled, f)
}

// SetConfig replaces the configuration, recomputes the tape and resets
// the value to the configured default.
func (c *Controller) SetConfig(cfg Config) {
	geom := c.model.Geometry()
	c.model = NewModel(cfg, geom)
	c.phase = Idle
	if err := cfg.Validate(); err != nil {
		c.log.V(1).Info("ruler disabled by invalid config", "err", err)
		c.value, c.previous = 0, 0
		return
	}
	if !c.model.Valid() {
		c.log.V(1).Info("ruler disabled by invalid geometry", "scaleSpace", geom.ScaleSpace)
		c.value, c.previous = 0, 0
		return
	}
	v, ok := cfg.DefaultValue()
	if !ok {
		c.log.V(1).Info("ignoring out of range default", "default", *cfg.Default, "min", cfg.Min, "max", cfg.Max)
	}
	c.value = c.model.Snap(v)
	c.previous = c.value
	c.scrollTo(c.value, false)
}

// SetGeometry recomputes the tape for new rendering constants, keeping
// the current value.
func (c *Controller) SetGeometry(geom Geometry) {
	valid := c.model.Valid()
	c.model = NewModel(c.model.Config(), geom)
	if !c.model.Valid() {
		return
	}
	if !valid {
		// The geometry made a valid config usable.
		c.SetConfig(c.model.Config())
		return
	}
	c.scrollTo(c.value, false)
}

// Model returns the current value mapping.
func (c *Controller) Model() Model {
	return c.model
}

// Config returns the installed configuration.
func (c *Controller) Config() Config {
	return c.model.Config()
}

// Value returns the selected value.
func (c *Controller) Value() float64 {
	return c.value
}

// Previous returns the value before the latest change.
func (c *Controller) Previous() float64 {
	return c.previous
}

// Phase returns the gesture phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// SetValue selects v, clamped to the range and snapped to the nearest
// tick, and moves the surface to it. It is ignored for NaN and for
// invalid configurations.
func (c *Controller) SetValue(v float64, animated bool) {
	if !c.model.Valid() {
		c.log.V(1).Info("ignoring value for disabled ruler", "value", v)
		return
	}
	if math.IsNaN(v) {
		c.log.V(1).Info("ignoring NaN value")
		return
	}
	v = c.model.Snap(v)
	c.scrollTo(v, animated)
	if v == c.value {
		return
	}
	c.previous, c.value = c.value, v
	c.notify(c.changed)
}

// BeginDrag marks the start of a drag gesture.
func (c *Controller) BeginDrag() {
	if !c.model.Valid() {
		return
	}
	c.phase = Dragging
}

// Scroll processes a scroll offset reported by the surface. If the
// veto hook declines the value under the indicator, the surface is
// moved back to the current value.
//
// Offsets that quantize to the current value are dropped without
// consulting the veto hook or notifying listeners. A veto that turns
// stricter mid-drag therefore takes effect at the next tick change.
// NaN offsets are ignored.
func (c *Controller) Scroll(offset float64) {
	if !c.model.Valid() || math.IsNaN(offset) {
		return
	}
	v := c.model.ValueForOffset(offset)
	if v == c.value {
		return
	}
	if c.veto != nil && !c.veto(v) {
		c.scrollTo(c.value, false)
		return
	}
	c.previous, c.value = c.value, v
	c.notify(c.changed)
}

// EndDrag marks the end of a drag gesture. If decelerate is set, the
// surface keeps scrolling and EndDeceleration must follow; otherwise
// the value settles at once.
func (c *Controller) EndDrag(decelerate bool) {
	if !c.model.Valid() {
		return
	}
	if decelerate {
		c.phase = Settling
		return
	}
	c.settle()
}

// EndDeceleration settles the value after a fling has stopped.
func (c *Controller) EndDeceleration() {
	if !c.model.Valid() {
		return
	}
	c.settle()
}

func (c *Controller) settle() {
	c.scrollTo(c.value, true)
	c.phase = Idle
	c.notify(c.settled)
}

func (c *Controller) scrollTo(v float64, animated bool) {
	if c.surface != nil {
		c.surface.ScrollTo(c.model.OffsetForValue(v), animated)
	}
}

func (c *Controller) notify(fs []func(float64)) {
	for _, f := range fs {
		f(c.value)
	}
}

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Dragging:
		return "Dragging"
	case Settling:
		return "Settling"
	default:
		panic("invalid Phase")
	}
}
