package renderer

import (
	"math"
	"testing"
)

func TestFrameStats(t *testing.T) {
	s := newFrameStats(1, 10)
	for i := 1; i < 60; i++ {
		if _, ok := s.tick(10 + float64(i)/60); ok {
			t.Fatalf("tick %d reported before the interval elapsed", i)
		}
	}
	fps, ok := s.tick(11)
	if !ok {
		t.Fatal("no report after one interval")
	}
	if math.Abs(fps-60) > 1e-9 {
		t.Errorf("fps = %v, want 60", fps)
	}

	// counter resets after a report
	if _, ok := s.tick(11.5); ok {
		t.Error("reported again within the next interval")
	}
	fps, ok = s.tick(12)
	if !ok || math.Abs(fps-2) > 1e-9 {
		t.Errorf("tick(12) = %v, %v, want 2, true", fps, ok)
	}
}

func TestFrameStatsDisabled(t *testing.T) {
	s := newFrameStats(0, 0)
	for i := 0; i < 1000; i++ {
		if _, ok := s.tick(float64(i)); ok {
			t.Fatal("disabled stats reported")
		}
	}
}
