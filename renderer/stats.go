package renderer

// frameStats counts frames and reports the average rate once per interval.
type frameStats struct {
	interval float64
	start    float64
	frames   int
}

func newFrameStats(interval, now float64) *frameStats {
	return &frameStats{interval: interval, start: now}
}

// tick records one frame at time now. When at least interval seconds have
// elapsed since the last report it returns the frame rate over that window
// and resets the counter.
func (s *frameStats) tick(now float64) (fps float64, ok bool) {
	if s.interval <= 0 {
		return 0, false
	}
	s.frames++
	elapsed := now - s.start
	if elapsed < s.interval {
		return 0, false
	}
	fps = float64(s.frames) / elapsed
	s.frames = 0
	s.start = now
	return fps, true
}
