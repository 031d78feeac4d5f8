package tui

// microLimit bounds projected coordinates so Bresenham walks stay short
// when data lies far outside the preview.
const microLimit = 1 << 14

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampMicro(v int) int {
	switch {
	case v < -microLimit:
		return -microLimit
	case v > microLimit:
		return microLimit
	}
	return v
}
