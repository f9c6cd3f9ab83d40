// SPDX-License-Identifier: Unlicense OR MIT

package ruler

import (
	"math"
	"testing"
)

func priceConfig() Config {
	return Config{Min: 0, Max: 1000, Step: 10, MajorTickInterval: 10, Unit: "¥"}
}

func TestOffsetValueScenario(t *testing.T) {
	m := NewModel(priceConfig(), Geometry{ScaleSpace: 15, Viewport: 300})
	if got := m.OffsetForValue(500); got != 750 {
		t.Errorf("OffsetForValue(500) = %v, want 750", got)
	}
	if got := m.ValueForOffset(750); got != 500 {
		t.Errorf("ValueForOffset(750) = %v, want 500", got)
	}
	if got := m.TapeWidth(); got != 1500 {
		t.Errorf("TapeWidth() = %v, want 1500", got)
	}
}

func TestRoundTrip(t *testing.T) {
	geoms := []Geometry{
		{ScaleSpace: 15, Viewport: 300},
		{ScaleSpace: 15, Viewport: 311},
		{ScaleSpace: 7.5, Viewport: 1024},
	}
	cfgs := []Config{
		priceConfig(),
		{Min: -2, Max: 3, Step: 0.1, MajorTickInterval: 5},
		{Min: 35, Max: 42, Step: 0.5, MajorTickInterval: 2, Anchor: AnchorCenter},
		{Min: 35, Max: 42, Step: 0.5, MajorTickInterval: 2, Anchor: AnchorCenter, CenterMin: true},
	}
	for _, g := range geoms {
		for _, cfg := range cfgs {
			m := NewModel(cfg, g)
			for i := 0; i < m.TickCount(); i++ {
				v := m.Tick(i).Value
				if v < cfg.Min-tickEpsilon {
					continue
				}
				if got := m.ValueForOffset(m.OffsetForValue(v)); math.Abs(got-v) > cfg.Step/2 {
					t.Fatalf("%+v %+v: round trip of %v gave %v", cfg, g, v, got)
				}
			}
		}
	}
}

func TestRoundTripExact(t *testing.T) {
	m := NewModel(priceConfig(), Geometry{ScaleSpace: 15, Viewport: 300})
	for k := 0; k <= 100; k++ {
		v := float64(k * 10)
		if got := m.ValueForOffset(m.OffsetForValue(v)); got != v {
			t.Errorf("round trip of %v gave %v", v, got)
		}
	}
}

func TestValueForOffsetClamps(t *testing.T) {
	m := NewModel(priceConfig(), Geometry{ScaleSpace: 15, Viewport: 300})
	tests := []struct {
		offset float64
		want   float64
	}{
		{-1000, 0},
		{-7, 0},
		{1500, 1000},
		{1507, 1000},
		{99999, 1000},
		{math.NaN(), 0},
	}
	for _, tc := range tests {
		if got := m.ValueForOffset(tc.offset); got != tc.want {
			t.Errorf("ValueForOffset(%v) = %v, want %v", tc.offset, got, tc.want)
		}
	}
}

func TestValueForOffsetRounding(t *testing.T) {
	m := NewModel(priceConfig(), Geometry{ScaleSpace: 15, Viewport: 300})
	tests := []struct {
		offset float64
		want   float64
	}{
		{7.4, 0},
		{7.5, 10}, // Ties round up.
		{22.4, 10},
		{22.5, 20},
	}
	for _, tc := range tests {
		if got := m.ValueForOffset(tc.offset); got != tc.want {
			t.Errorf("ValueForOffset(%v) = %v, want %v", tc.offset, got, tc.want)
		}
	}
}

func TestOffsetMonotonic(t *testing.T) {
	m := NewModel(Config{Min: -5, Max: 5, Step: 0.25, Anchor: AnchorCenter, CenterMin: true}, Geometry{ScaleSpace: 12, Viewport: 333})
	prev := math.Inf(-1)
	for v := -5.0; v <= 5; v += 0.05 {
		o := m.OffsetForValue(v)
		if o < prev {
			t.Fatalf("OffsetForValue(%v) = %v < %v", v, o, prev)
		}
		prev = o
	}
}

func TestTapeOrigin(t *testing.T) {
	tests := []struct {
		name       string
		cfg        Config
		geom       Geometry
		origin     float64
		correction float64
	}{
		{
			name:   "leading",
			cfg:    Config{Min: 0, Max: 1000, Step: 10, CenterMin: true},
			geom:   Geometry{ScaleSpace: 15, Viewport: 300},
			origin: 0,
		},
		{
			name:   "center without padding",
			cfg:    Config{Min: 0, Max: 1000, Step: 10, Anchor: AnchorCenter},
			geom:   Geometry{ScaleSpace: 15, Viewport: 300},
			origin: 0,
		},
		{
			name:   "center exact",
			cfg:    Config{Min: 0, Max: 1000, Step: 10, Anchor: AnchorCenter, CenterMin: true},
			geom:   Geometry{ScaleSpace: 15, Viewport: 300},
			origin: -100,
		},
		{
			name:       "center rounded up",
			cfg:        Config{Min: 50, Max: 1000, Step: 10, Anchor: AnchorCenter, CenterMin: true},
			geom:       Geometry{ScaleSpace: 15, Viewport: 310},
			origin:     -60,
			correction: 10.0 / 15 * 10,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewModel(tc.cfg, tc.geom)
			if got := m.TapeOrigin(); got != tc.origin {
				t.Errorf("TapeOrigin() = %v, want %v", got, tc.origin)
			}
			if got := m.SnapCorrection(); math.Abs(got-tc.correction) > 1e-9 {
				t.Errorf("SnapCorrection() = %v, want %v", got, tc.correction)
			}
			if m.TapeOrigin() > tc.cfg.Min {
				t.Errorf("tape origin %v above min %v", m.TapeOrigin(), tc.cfg.Min)
			}
			if r := math.Mod(tc.cfg.Min-m.TapeOrigin(), tc.cfg.Step); math.Abs(r) > 1e-9 {
				t.Errorf("tape origin %v is %v off the tick grid", m.TapeOrigin(), r)
			}
		})
	}
}

func TestCenteredMinUnderIndicator(t *testing.T) {
	cfg := Config{Min: 50, Max: 1000, Step: 10, Anchor: AnchorCenter, CenterMin: true}
	m := NewModel(cfg, Geometry{ScaleSpace: 15, Viewport: 310})
	o := m.OffsetForValue(cfg.Min)
	// The tick of Min sits exactly under the indicator.
	tickX := (cfg.Min - m.TapeOrigin()) / cfg.Step * 15
	if x := tickX - o; math.Abs(x-155) > 1e-9 {
		t.Errorf("min tick at viewport x %v, want 155", x)
	}
	if o < 0 {
		t.Errorf("offset of min is %v, want non-negative", o)
	}
	if got := m.ValueForOffset(o); got != cfg.Min {
		t.Errorf("ValueForOffset(%v) = %v, want %v", o, got, cfg.Min)
	}
	if lo, _ := m.ScrollRange(); lo != o {
		t.Errorf("scroll range starts at %v, want %v", lo, o)
	}
}

func TestMajorTicks(t *testing.T) {
	m := NewModel(Config{Min: 3, Max: 10, Step: 0.1, MajorTickInterval: 10}, Geometry{ScaleSpace: 15, Viewport: 300})
	for k := 0; k <= 70; k++ {
		v := 3 + float64(k)*0.1
		want := k%10 == 0
		if got := m.IsMajorTick(v); got != want {
			t.Errorf("IsMajorTick(%v) = %v, want %v", v, got, want)
		}
	}
	if m.IsMajorTick(3.05) {
		t.Error("off-grid value reported as major tick")
	}
}

func TestMajorTicksEveryTick(t *testing.T) {
	m := NewModel(Config{Min: 0, Max: 10, Step: 1}, Geometry{ScaleSpace: 15})
	for v := 0.0; v <= 10; v++ {
		if !m.IsMajorTick(v) {
			t.Errorf("IsMajorTick(%v) = false with interval 0", v)
		}
	}
}

func TestTicks(t *testing.T) {
	cfg := Config{Min: 0, Max: 1000, Step: 10, MajorTickInterval: 10, Anchor: AnchorCenter, CenterMin: true}
	m := NewModel(cfg, Geometry{ScaleSpace: 15, Viewport: 300})
	if got, want := m.TickCount(), 111; got != want {
		t.Fatalf("TickCount() = %d, want %d", got, want)
	}
	first := m.Tick(0)
	if first.Value != -100 || first.X != 0 || !first.Major {
		t.Errorf("Tick(0) = %+v", first)
	}
	last := m.Tick(m.TickCount() - 1)
	if last.Value != 1000 || last.X != 1650 || !last.Major {
		t.Errorf("last tick = %+v", last)
	}
	if tk := m.Tick(15); tk.Value != 50 || tk.Major {
		t.Errorf("Tick(15) = %+v", tk)
	}
}

func TestVisible(t *testing.T) {
	m := NewModel(priceConfig(), Geometry{ScaleSpace: 15, Viewport: 300})
	tests := []struct {
		offset      float64
		first, last int
	}{
		{0, 0, 20},
		{-50, 0, 17},
		{22, 1, 22},
		{1400, 93, 100},
	}
	for _, tc := range tests {
		first, last := m.Visible(tc.offset)
		if first != tc.first || last != tc.last {
			t.Errorf("Visible(%v) = %d, %d, want %d, %d", tc.offset, first, last, tc.first, tc.last)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		cfg  Config
		v    float64
		want string
	}{
		{priceConfig(), 500, "500¥"},
		{Config{Min: 0, Max: 10, Step: 0.5}, 2.5, "2.5"},
		{Config{Min: 0, Max: 10, Step: 0.5}, 3, "3.0"},
		{Config{Min: -1, Max: 1, Step: 0.1, Unit: "kg"}, 0.30000000000000004, "0.3kg"},
		{Config{Min: -1, Max: 1, Step: 0.1}, -0.00000001, "0.0"},
	}
	for _, tc := range tests {
		m := NewModel(tc.cfg, Geometry{ScaleSpace: 15})
		if got := m.Label(tc.v); got != tc.want {
			t.Errorf("Label(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestInvalidModel(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		geom Geometry
	}{
		{"zero step", Config{Min: 0, Max: 100}, Geometry{ScaleSpace: 15, Viewport: 300}},
		{"negative step", Config{Min: 0, Max: 100, Step: -1}, Geometry{ScaleSpace: 15, Viewport: 300}},
		{"empty range", Config{Min: 10, Max: 10, Step: 1}, Geometry{ScaleSpace: 15, Viewport: 300}},
		{"inverted range", Config{Min: 10, Max: 0, Step: 1}, Geometry{ScaleSpace: 15, Viewport: 300}},
		{"zero scale space", priceConfig(), Geometry{Viewport: 300}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewModel(tc.cfg, tc.geom)
			if m.Valid() {
				t.Fatal("model is valid")
			}
			if w := m.TapeWidth(); w != 0 {
				t.Errorf("TapeWidth() = %v", w)
			}
			if n := m.TickCount(); n != 0 {
				t.Errorf("TickCount() = %v", n)
			}
			if o := m.OffsetForValue(50); o != 0 {
				t.Errorf("OffsetForValue() = %v", o)
			}
			if v := m.ValueForOffset(50); v != 0 {
				t.Errorf("ValueForOffset() = %v", v)
			}
			if m.IsMajorTick(0) {
				t.Error("IsMajorTick() = true")
			}
			if first, last := m.Visible(0); last >= first {
				t.Errorf("Visible() = %d, %d", first, last)
			}
		})
	}
}
