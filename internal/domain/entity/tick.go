package entity

// Tick counts simulation ticks. Timed transitions poll it; nothing ever
// interrupts a state from the outside.
type Tick struct {
	ticks   float64
	started bool
}

// Start resumes counting.
func (t *Tick) Start() { t.started = true }

// Stop pauses counting.
func (t *Tick) Stop() { t.started = false }

// Restart resets the count and starts it.
func (t *Tick) Restart() {
	t.ticks = 0
	t.started = true
}

// Update counts one tick scaled by extrp.
func (t *Tick) Update(extrp float64) {
	if t.started {
		t.ticks += extrp
	}
}

// Elapsed returns the counted ticks.
func (t *Tick) Elapsed() float64 { return t.ticks }

// IsStarted reports whether the tick counts.
func (t *Tick) IsStarted() bool { return t.started }

// ElapsedTicks reports whether at least n ticks were counted.
func (t *Tick) ElapsedTicks(n float64) bool {
	return t.started && t.ticks >= n
}

// ElapsedTime converts a delay in milliseconds to ticks at rate and reports
// whether it elapsed.
func (t *Tick) ElapsedTime(rate int, ms int) bool {
	return t.ElapsedTicks(float64(rate) * float64(ms) / 1000)
}
