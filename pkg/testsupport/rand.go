package testsupport

// ScriptedRand replays fixed draws so tests can pin every random choice.
// Floats and Ints are consumed in order and wrap around when exhausted;
// Intn reduces the scripted int modulo n.
type ScriptedRand struct {
	Floats []float64
	Ints   []int

	floatIdx int
	intIdx   int
}

// Float64 returns the next scripted float, or 0.5 when none are scripted
func (r *ScriptedRand) Float64() float64 {
	if len(r.Floats) == 0 {
		return 0.5
	}
	f := r.Floats[r.floatIdx%len(r.Floats)]
	r.floatIdx++
	return f
}

// Intn returns the next scripted int modulo n, or 0 when none are scripted
func (r *ScriptedRand) Intn(n int) int {
	if n <= 0 {
		panic("testsupport: invalid argument to Intn")
	}
	if len(r.Ints) == 0 {
		return 0
	}
	i := r.Ints[r.intIdx%len(r.Ints)]
	r.intIdx++
	return ((i % n) + n) % n
}

// Draws reports how many floats and ints have been consumed
func (r *ScriptedRand) Draws() (floats, ints int) {
	return r.floatIdx, r.intIdx
}
