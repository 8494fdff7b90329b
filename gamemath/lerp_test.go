package gamemath

import (
	"math"
	"testing"
	"time"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-3
}

func TestLerpEndpoints(t *testing.T) {
	pairs := [][2]float64{{0, 10}, {10, 0}, {-5, 5}, {128, 128}, {1000, -100}}
	for _, p := range pairs {
		if got := Lerp(p[0], p[1], 0); got != p[0] {
			t.Errorf("Lerp(%v, %v, 0): got %v, want %v", p[0], p[1], got, p[0])
		}
		if got := Lerp(p[0], p[1], 1); got != p[1] {
			t.Errorf("Lerp(%v, %v, 1): got %v, want %v", p[0], p[1], got, p[1])
		}
	}
}

func TestLerpMonotonic(t *testing.T) {
	for _, p := range [][2]float64{{0, 10}, {10, -3}} {
		prev := Lerp(p[0], p[1], 0)
		for i := 1; i <= 100; i++ {
			cur := Lerp(p[0], p[1], float64(i)/100)
			if p[1] > p[0] && cur < prev || p[1] < p[0] && cur > prev {
				t.Fatalf("Lerp(%v, %v) not monotonic at step %d: %v after %v", p[0], p[1], i, cur, prev)
			}
			prev = cur
		}
	}
}

func TestProgressIsClamped(t *testing.T) {
	start := 2 * time.Second
	d := time.Second
	cases := []struct {
		now  time.Duration
		want float64
	}{
		{time.Second, 0},
		{start, 0},
		{start + 500*time.Millisecond, 0.5},
		{start + d, 1},
		{start + 10*d, 1},
	}
	for _, c := range cases {
		if got := Progress(c.now, start, d); got != c.want {
			t.Errorf("Progress(%v): got %v, want %v", c.now, got, c.want)
		}
	}
	if got := Progress(start, start, 0); got != 1 {
		t.Errorf("Progress with zero duration: got %v, want 1", got)
	}
}

func TestTweenSnapsToFinalValue(t *testing.T) {
	start := time.Second
	d := 2 * time.Second

	v, done := Tween(-100, 200, start, start, d)
	if done || v != -100 {
		t.Errorf("at start: got (%v, %v), want (-100, false)", v, done)
	}
	v, done = Tween(-100, 200, start+d/2, start, d)
	if done || !approx(v, 50) {
		t.Errorf("halfway: got (%v, %v), want (50, false)", v, done)
	}
	v, done = Tween(-100, 200, start+d, start, d)
	if !done || v != 200 {
		t.Errorf("at end: got (%v, %v), want (200, true)", v, done)
	}
	v, done = Tween(-100, 200, start+5*d, start, d)
	if !done || v != 200 {
		t.Errorf("long after end: got (%v, %v), want (200, true)", v, done)
	}
}
