package gamemath

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Lerp returns a + (b-a)*t. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Progress returns the elapsed fraction of duration since start, clamped to [0, 1].
// A non-positive duration is already complete.
func Progress(now, start, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	return Clamp01(float64(now-start) / float64(duration))
}

// Tween linearly moves from `from` to `to` over duration, starting at start.
// Before start it reports from; once duration has elapsed it reports exactly
// `to` and finished is true.
func Tween(from, to float64, now, start, duration time.Duration) (value float64, finished bool) {
	if duration <= 0 {
		return to, true
	}
	tw := gween.New(float32(from), float32(to), float32(duration.Seconds()), ease.Linear)
	v, done := tw.Set(float32((now - start).Seconds()))
	if done {
		return to, true
	}
	return float64(v), false
}
