// SPDX-License-Identifier: Unlicense OR MIT

package ruler

import (
	"math"
	"strconv"
)

// Geometry holds the rendering constants a Model maps against.
type Geometry struct {
	// ScaleSpace is the distance in pixels between adjacent ticks.
	ScaleSpace float64
	// Viewport is the visible width in pixels.
	Viewport float64
}

// Model maps between scroll offsets and ruler values. Offsets are
// scroll positions in pixels: offset o shows tape pixel o at the left
// edge of the viewport. The zero Model is invalid and maps everything
// to zero.
type Model struct {
	cfg  Config
	geom Geometry
	ok   bool

	// origin is the value of the first tick of the tape.
	origin float64
	// correction is the distance, in value units, between the tick
	// under the indicator at the padded tape's start and the exact
	// half viewport.
	correction float64
	// indicator is the viewport x position of the indicator.
	indicator float64
}

// Tick describes a single graduation of the tape.
type Tick struct {
	// Index counts ticks from the tape origin.
	Index int
	Value float64
	// X is the position of the tick in tape pixels.
	X     float64
	Major bool
}

// tickEpsilon is the tolerance, in ticks, for treating a value as
// lying on the tick grid.
const tickEpsilon = 1e-6

// NewModel computes the tape layout of cfg for geom.
func NewModel(cfg Config, geom Geometry) Model {
	m := Model{cfg: cfg, geom: geom}
	if cfg.Validate() != nil || !(geom.ScaleSpace > 0) {
		return m
	}
	m.ok = true
	m.origin = cfg.Min
	if cfg.Anchor == AnchorCenter {
		m.indicator = geom.Viewport / 2
		if cfg.CenterMin {
			m.origin, m.correction = tapeOrigin(cfg, geom)
		}
	}
	return m
}

// tapeOrigin pads the tape below Min by enough whole ticks for half
// the viewport to reach Min. The remainder between the padding and the
// exact half viewport is returned as a correction in value units.
func tapeOrigin(cfg Config, geom Geometry) (origin, correction float64) {
	half := geom.Viewport / 2
	if half <= 0 {
		return cfg.Min, 0
	}
	ticks := math.Ceil(half/geom.ScaleSpace - tickEpsilon)
	origin = cfg.Min - ticks*cfg.Step
	correction = (ticks*geom.ScaleSpace - half) / geom.ScaleSpace * cfg.Step
	if correction < 0 {
		correction = 0
	}
	return origin, correction
}

// Valid reports whether the model has a usable configuration.
func (m Model) Valid() bool {
	return m.ok
}

// Config returns the configuration the model was computed for.
func (m Model) Config() Config {
	return m.cfg
}

// Geometry returns the rendering constants of the model.
func (m Model) Geometry() Geometry {
	return m.geom
}

// TapeOrigin returns the value of the first tick of the tape. It is
// never greater than Min.
func (m Model) TapeOrigin() float64 {
	if !m.ok {
		return 0
	}
	return m.origin
}

// SnapCorrection returns the residual, in value units, between the
// padded tape origin and the exact half viewport.
func (m Model) SnapCorrection() float64 {
	return m.correction
}

// Indicator returns the position of the indicator in the viewport.
func (m Model) Indicator() float64 {
	return m.indicator
}

// OffsetForValue returns the scroll offset that places v under the
// indicator. The result is not rounded.
func (m Model) OffsetForValue(v float64) float64 {
	if !m.ok {
		return 0
	}
	return (v-m.origin)/m.cfg.Step*m.geom.ScaleSpace - m.indicator
}

// ValueForOffset returns the value of the tick nearest to the
// indicator at scroll offset o, clamped to [Min, Max]. Halfway
// offsets round to the larger tick.
func (m Model) ValueForOffset(o float64) float64 {
	if !m.ok {
		return 0
	}
	k := math.Floor((o+m.indicator)/m.geom.ScaleSpace + 0.5)
	return m.Clamp(m.origin + k*m.cfg.Step)
}

// Clamp limits v to [Min, Max]. NaN clamps to Min.
func (m Model) Clamp(v float64) float64 {
	switch {
	case !m.ok:
		return 0
	case math.IsNaN(v), v < m.cfg.Min:
		return m.cfg.Min
	case v > m.cfg.Max:
		return m.cfg.Max
	default:
		return v
	}
}

// Snap returns the tick value nearest to v, clamped to [Min, Max].
func (m Model) Snap(v float64) float64 {
	return m.ValueForOffset(m.OffsetForValue(v))
}

// ScrollRange returns the offsets of Min and Max.
func (m Model) ScrollRange() (lo, hi float64) {
	if !m.ok {
		return 0, 0
	}
	return m.OffsetForValue(m.cfg.Min), m.OffsetForValue(m.cfg.Max)
}

// TapeWidth returns the width in pixels of the tape from its origin
// to Max.
func (m Model) TapeWidth() float64 {
	if !m.ok {
		return 0
	}
	return (m.cfg.Max - m.origin) / m.cfg.Step * m.geom.ScaleSpace
}

// IsMajorTick reports whether v lies on a major tick. Major ticks are
// every MajorTickInterval ticks counted from Min.
func (m Model) IsMajorTick(v float64) bool {
	if !m.ok {
		return false
	}
	k := (v - m.cfg.Min) / m.cfg.Step
	rk := math.Round(k)
	if math.Abs(k-rk) > tickEpsilon {
		return false
	}
	n := m.cfg.majorInterval()
	return (int64(rk)%n+n)%n == 0
}

// TickCount returns the number of ticks on the tape, including the
// padding ticks below Min.
func (m Model) TickCount() int {
	if !m.ok {
		return 0
	}
	return int(math.Floor((m.cfg.Max-m.origin)/m.cfg.Step+tickEpsilon)) + 1
}

// Tick returns the i'th tick of the tape.
func (m Model) Tick(i int) Tick {
	if !m.ok {
		return Tick{}
	}
	v := m.origin + float64(i)*m.cfg.Step
	return Tick{
		Index: i,
		Value: v,
		X:     float64(i) * m.geom.ScaleSpace,
		Major: m.IsMajorTick(v),
	}
}

// Visible returns the range of tick indices [first, last] that
// intersect the viewport at scroll offset o. The range is empty when
// last < first.
func (m Model) Visible(o float64) (first, last int) {
	n := m.TickCount()
	if n == 0 {
		return 0, -1
	}
	first = int(math.Floor(o / m.geom.ScaleSpace))
	last = int(math.Ceil((o + m.geom.Viewport) / m.geom.ScaleSpace))
	if first < 0 {
		first = 0
	}
	if last > n-1 {
		last = n - 1
	}
	return first, last
}

// Label formats v with the precision of the step followed by the
// unit.
func (m Model) Label(v float64) string {
	prec := decimals(m.cfg.Step)
	p := math.Pow10(prec)
	v = math.Round(v*p) / p
	if v == 0 {
		// Avoid "-0".
		v = 0
	}
	return strconv.FormatFloat(v, 'f', prec, 64) + m.cfg.Unit
}

// decimals returns the number of fractional decimal digits of step,
// up to 6.
func decimals(step float64) int {
	for d := 0; d < 6; d++ {
		p := math.Pow10(d)
		if s := step * p; math.Abs(s-math.Round(s)) < tickEpsilon*p {
			return d
		}
	}
	return 6
}
