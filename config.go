// SPDX-License-Identifier: Unlicense OR MIT

package ruler

import (
	"errors"
	"fmt"
	"math"
)

// Anchor is the horizontal position of the indicator in the viewport.
type Anchor uint8

const (
	// AnchorLeading places the indicator at the left edge.
	AnchorLeading Anchor = iota
	// AnchorCenter places the indicator at the horizontal center.
	AnchorCenter
)

var (
	// ErrStep is reported for a zero, negative or non-finite step.
	ErrStep = errors.New("ruler: step must be positive")
	// ErrRange is reported when Max is not greater than Min.
	ErrRange = errors.New("ruler: max must be greater than min")
)

// Config describes the range and tick layout of a ruler. A Config is
// a value; replace it wholesale to change a ruler.
type Config struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step"`
	// MajorTickInterval is the number of ticks between labeled major
	// ticks. Values below 1 make every tick a major tick.
	MajorTickInterval int `yaml:"majorTickInterval"`
	// Default is the initial value. Nil means Min.
	Default *float64 `yaml:"default,omitempty"`
	// Unit is appended to tick labels.
	Unit   string `yaml:"unit,omitempty"`
	Anchor Anchor `yaml:"anchor,omitempty"`
	// CenterMin pads the tape below Min so that Min can be dragged
	// under a centered indicator. It has no effect for AnchorLeading.
	CenterMin  bool `yaml:"centerMin,omitempty"`
	HideLabels bool `yaml:"hideLabels,omitempty"`
	// Disabled ignores drag input. Programmatic changes still apply.
	Disabled bool `yaml:"disabled,omitempty"`
}

// Float returns a pointer to v, for use with Config.Default.
func Float(v float64) *float64 {
	return &v
}

// Validate reports whether c describes a usable ruler.
func (c Config) Validate() error {
	if !(c.Step > 0) || math.IsInf(c.Step, 0) {
		return fmt.Errorf("%w: %v", ErrStep, c.Step)
	}
	if math.IsNaN(c.Min) || math.IsNaN(c.Max) || math.IsInf(c.Min, 0) || math.IsInf(c.Max, 0) || c.Max <= c.Min {
		return fmt.Errorf("%w: [%v, %v]", ErrRange, c.Min, c.Max)
	}
	return nil
}

// DefaultValue returns the initial value of the ruler and whether
// Default was usable. A nil, NaN or out-of-range Default yields Min.
func (c Config) DefaultValue() (float64, bool) {
	if c.Default == nil {
		return c.Min, true
	}
	v := *c.Default
	if math.IsNaN(v) || v < c.Min || v > c.Max {
		return c.Min, false
	}
	return v, true
}

// Equal reports whether c and o describe the same ruler.
func (c Config) Equal(o Config) bool {
	cd, od := c.Default, o.Default
	c.Default, o.Default = nil, nil
	if c != o {
		return false
	}
	switch {
	case cd == nil || od == nil:
		return cd == od
	default:
		return *cd == *od
	}
}

func (c Config) majorInterval() int64 {
	if c.MajorTickInterval < 1 {
		return 1
	}
	return int64(c.MajorTickInterval)
}

func (a Anchor) String() string {
	switch a {
	case AnchorLeading:
		return "leading"
	case AnchorCenter:
		return "center"
	default:
		panic("invalid Anchor")
	}
}

func (a Anchor) MarshalText() ([]byte, error) {
	switch a {
	case AnchorLeading, AnchorCenter:
		return []byte(a.String()), nil
	}
	return nil, fmt.Errorf("ruler: invalid anchor %d", uint8(a))
}

func (a *Anchor) UnmarshalText(b []byte) error {
	switch string(b) {
	case "leading", "":
		*a = AnchorLeading
	case "center":
		*a = AnchorCenter
	default:
		return fmt.Errorf("ruler: unknown anchor %q", b)
	}
	return nil
}
