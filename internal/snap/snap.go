// SPDX-License-Identifier: Unlicense OR MIT

// Package snap animates a scroll offset towards a target.
package snap

import (
	"time"
)

// Duration is the length of a snap animation.
const Duration = 150 * time.Millisecond

// Animation moves an offset to a target with a cubic ease-out.
type Animation struct {
	from, to float64
	t0       time.Time
	active   bool
}

// Start an animation from from to to at time now. A zero distance
// animation is not started.
func (a *Animation) Start(now time.Time, from, to float64) {
	if from == to {
		*a = Animation{}
		return
	}
	*a = Animation{
		from:   from,
		to:     to,
		t0:     now,
		active: true,
	}
}

// Active reports whether an animation is in progress.
func (a *Animation) Active() bool {
	return a.active
}

// Target returns the offset the animation ends at.
func (a *Animation) Target() float64 {
	return a.to
}

// Tick returns the animated offset at time now. The animation ends,
// and reports its exact target, once Duration has passed.
func (a *Animation) Tick(now time.Time) float64 {
	if !a.active {
		return a.to
	}
	d := now.Sub(a.t0)
	if d >= Duration {
		a.active = false
		return a.to
	}
	if d < 0 {
		d = 0
	}
	t := float64(d) / float64(Duration)
	u := 1 - t
	ease := 1 - u*u*u
	return a.from + (a.to-a.from)*ease
}
