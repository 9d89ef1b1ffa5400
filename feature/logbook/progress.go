package logbook

// ProgressFunc receives load progress as a percentage in [0,100].
// It is invoked synchronously on the goroutine performing the parse.
type ProgressFunc func(percent float64)

// boundProgress wraps fn so that delivered values are clamped to [0,100] and
// never decrease, regardless of what the parser computes. A nil fn yields a
// no-op sink.
func boundProgress(fn ProgressFunc) ProgressFunc {
	if fn == nil {
		return func(float64) {}
	}

	var last float64
	return func(p float64) {
		if p < 0 {
			p = 0
		}
		if p > 100 {
			p = 100
		}
		if p < last {
			p = last
		}
		last = p
		fn(p)
	}
}
