package ablzw

// Hysteresis constants for the encoder's flush decision (spec.md §4.5,
// Open Questions): a 4096-byte observation window, a slow EWMA decay so
// that once the first window has seeded the ratio, later windows move it
// only gradually, and a 1.08 ratio threshold matching the worst-case
// inflation bound in spec.md §8. The first window after a start or a CLEAR
// sets the ratio directly, so that window alone can trigger a flush.
const (
	monitorWindowBytes = 4096
	monitorDecay       = 1.0 / 4096.0
	monitorFlushRatio  = 1.08
)

// perfMonitor tracks the running ratio of output bits to input bits over
// fixed-size windows, smoothing it with an EWMA so the encoder can decide
// when continuing to recycle the dictionary is no longer paying off.
type perfMonitor struct {
	ratio     float64
	warm      bool
	windowIn  int
	windowOut uint
}

func newPerfMonitor() *perfMonitor {
	return &perfMonitor{}
}

// observe records that bytesIn bytes of input produced bitsOut bits of
// output. Call it once per emitted code.
func (m *perfMonitor) observe(bytesIn int, bitsOut uint) {
	m.windowIn += bytesIn
	m.windowOut += bitsOut
	if m.windowIn < monitorWindowBytes {
		return
	}
	sample := float64(m.windowOut) / float64(m.windowIn*8)
	if m.warm {
		m.ratio += monitorDecay * (sample - m.ratio)
	} else {
		m.ratio = sample
		m.warm = true
	}
	m.windowIn = 0
	m.windowOut = 0
}

// shouldFlush reports whether the smoothed ratio has crossed the
// inflation threshold. Callers should only consult this once the
// dictionary is full; recycling is always given a chance before CLEAR.
func (m *perfMonitor) shouldFlush() bool {
	return m.warm && m.ratio > monitorFlushRatio
}

// resetAfterClear restarts the monitor's state after the encoder has
// emitted a CLEAR and reset the dictionary.
func (m *perfMonitor) resetAfterClear() {
	m.ratio = 0
	m.warm = false
	m.windowIn = 0
	m.windowOut = 0
}
