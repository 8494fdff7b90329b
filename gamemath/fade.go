package gamemath

import (
	"math"
	"time"
)

// AlphaVanish returns the overlay alpha of a full-screen fade from start to
// end. The value approaches end monotonically and stays there once reached.
func AlphaVanish(start, end uint8, now, activation, duration time.Duration) uint8 {
	v, _ := Tween(float64(start), float64(end), now, activation, duration)
	return uint8(math.Round(Clamp(v, 0, 255)))
}

// Pulse is the idle breathing alpha, 128 + 128*|sin(ms/1000)| capped at 255.
func Pulse(now time.Duration) float64 {
	ms := float64(now.Milliseconds())
	return math.Min(128+128*math.Abs(math.Sin(ms/1000)), 255)
}

// ScreensaverTextAlpha fades text in from startAlpha toward endAlpha over
// emergence. Once the fade-in passes threshold the text pulses for good.
func ScreensaverTextAlpha(startAlpha, endAlpha, threshold float64, now, activation, emergence time.Duration) float64 {
	v, _ := Tween(startAlpha, endAlpha, now, activation, emergence)
	if v > threshold {
		return Pulse(now)
	}
	return v
}
