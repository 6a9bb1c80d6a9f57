package fleet

// Source supplies the random draws the simulation consumes. Production
// code passes a PCG generator; tests pass scripted values.
type Source interface {
	Float64() float64 // Uniform in [0,1)
	Intn(n int) int   // Uniform in [0,n)
}

func uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}
