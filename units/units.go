// SPDX-License-Identifier: MIT

// Package units converts planar map lengths into real-world walking figures.
//
// Two constants drive every conversion:
//   - Scale: metres per planar map unit.
//   - WalkingSpeed: metres per minute of an average walker.
//
// Both approximate real geometry and gait, so both are options rather than
// literals; a different campus map is expected to retune them.
//
// Formatting helpers render the figures the way the map panel shows them.
package units

import (
	"fmt"
	"math"
)

// Defaults.
const (
	// DefaultScale is metres per planar map unit.
	DefaultScale = 1.5

	// DefaultWalkingSpeed is metres per minute (a typical adult walks 60–80).
	DefaultWalkingSpeed = 65.0
)

const (
	panicScaleInvalid = "units: WithScale: scale must be finite and > 0"
	panicSpeedInvalid = "units: WithWalkingSpeed: speed must be finite and > 0"
)

// Converter translates planar lengths to metres and metres to minutes.
// The zero value is not usable; construct with New.
type Converter struct {
	scale float64
	speed float64
}

// Option configures a Converter.
type Option func(*Converter)

// WithScale sets metres per planar unit. Panics on non-positive or non-finite values.
func WithScale(metresPerUnit float64) Option {
	if !positiveFinite(metresPerUnit) {
		panic(panicScaleInvalid)
	}

	return func(c *Converter) { c.scale = metresPerUnit }
}

// WithWalkingSpeed sets metres walked per minute. Panics on non-positive or non-finite values.
func WithWalkingSpeed(metresPerMinute float64) Option {
	if !positiveFinite(metresPerMinute) {
		panic(panicSpeedInvalid)
	}

	return func(c *Converter) { c.speed = metresPerMinute }
}

// New returns a Converter with DefaultScale and DefaultWalkingSpeed, then
// applies opts left to right.
func New(opts ...Option) Converter {
	c := Converter{scale: DefaultScale, speed: DefaultWalkingSpeed}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Scale returns metres per planar unit.
func (c Converter) Scale() float64 { return c.scale }

// WalkingSpeed returns metres per minute.
func (c Converter) WalkingSpeed() float64 { return c.speed }

// ToRealDistance converts a planar length to metres. +Inf stays +Inf.
func (c Converter) ToRealDistance(planar float64) float64 {
	return planar * c.scale
}

// ToWalkingTime converts metres to walking minutes. Zero yields zero.
func (c Converter) ToWalkingTime(metres float64) float64 {
	if metres == 0 {
		return 0
	}

	return metres / c.speed
}

// FormatDuration renders fractional minutes as the map panel does:
// "45 seconds", "2 minutes", "1 minute 5 seconds".
// Seconds are rounded; a rounding carry of 60 seconds becomes a full minute.
func FormatDuration(minutes float64) string {
	if minutes <= 0 || math.IsNaN(minutes) || math.IsInf(minutes, 0) {
		return "0 seconds"
	}
	whole := math.Floor(minutes)
	secs := math.Round((minutes - whole) * 60)
	if secs == 60 {
		whole++
		secs = 0
	}
	m, s := int(whole), int(secs)

	switch {
	case m == 0:
		return plural(s, "second")
	case s == 0:
		return plural(m, "minute")
	default:
		return plural(m, "minute") + " " + plural(s, "second")
	}
}

// FormatDistance renders metres rounded to whole metres, e.g. "120 m".
func FormatDistance(metres float64) string {
	if math.IsInf(metres, 1) {
		return "unreachable"
	}

	return fmt.Sprintf("%.0f m", metres)
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}

	return fmt.Sprintf("%d %ss", n, unit)
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
