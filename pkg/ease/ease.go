// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

// Package ease provides deterministic easing curves for handlers that animate
// a value across a sub-duration. Every curve maps a progress value t in [0, 1]
// to an eased value in [0, 1]. Inputs outside the unit interval are clamped.
package ease

import "math"

// Func is an easing curve.
type Func func(t float64) float64

// Linear applies no easing.
func Linear(t float64) float64 {
	return clamp01(t)
}

// InQuad accelerates from rest.
func InQuad(t float64) float64 {
	t = clamp01(t)
	return t * t
}

// OutQuad decelerates to rest.
func OutQuad(t float64) float64 {
	t = clamp01(t)
	return 1 - (1-t)*(1-t)
}

// InOutQuad accelerates through the first half and decelerates through the
// second.
func InOutQuad(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// InCubic accelerates from rest, more sharply than InQuad.
func InCubic(t float64) float64 {
	t = clamp01(t)
	return t * t * t
}

// OutCubic decelerates to rest, more sharply than OutQuad.
func OutCubic(t float64) float64 {
	t = clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// InOutCubic accelerates then decelerates with cubic curvature.
func InOutCubic(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// OutExpo starts very fast and lands very softly.
func OutExpo(t float64) float64 {
	t = clamp01(t)
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// Lerp interpolates linearly between a and b. t=0 yields a, t=1 yields b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

var byName = map[string]Func{
	"linear":     Linear,
	"inQuad":     InQuad,
	"outQuad":    OutQuad,
	"inOutQuad":  InOutQuad,
	"inCubic":    InCubic,
	"outCubic":   OutCubic,
	"inOutCubic": InOutCubic,
	"outExpo":    OutExpo,
}

// ByName resolves an easing curve from its document name.
func ByName(name string) (Func, bool) {
	f, ok := byName[name]
	return f, ok
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
