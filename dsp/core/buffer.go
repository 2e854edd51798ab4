package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// Clone returns a copy of src that shares no memory with it.
// A nil or empty src yields nil.
func Clone(src []float64) []float64 {
	if len(src) == 0 {
		return nil
	}
	out := make([]float64, len(src))
	copy(out, src)
	return out
}

// ShiftIn moves every element of buf one slot towards the end, dropping
// the last one, and stores x at index 0. buf is therefore ordered
// most-recent-first.
func ShiftIn(buf []float64, x float64) {
	n := len(buf)
	if n == 0 {
		return
	}
	copy(buf[1:], buf[:n-1])
	buf[0] = x
}
