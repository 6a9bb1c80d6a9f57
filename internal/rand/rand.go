package rand

import (
	"time"

	"github.com/MichaelTJones/pcg"
)

const pcgSequence = 0xda3e39cb94b95bdb

// Rand is a PCG32 generator owned by whoever creates it. It is not safe
// for concurrent use.
type Rand struct {
	r *pcg.PCG32
}

// New returns a generator seeded from the wall clock.
func New() *Rand {
	r := &Rand{r: pcg.NewPCG32()}
	r.Seed(time.Now().UnixNano())
	return r
}

func (r *Rand) Seed(s int64) {
	r.r.Seed(uint64(s), pcgSequence)
}

// Intn returns a uniform value in [0,n). n must be positive.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("rand: Intn called with non-positive n")
	}
	return int(r.r.Bounded(uint32(n)))
}

// Float64 returns a uniform value in [0,1) with 53 bits of precision.
func (r *Rand) Float64() float64 {
	hi, lo := uint64(r.r.Random()), uint64(r.r.Random())
	return float64((hi<<32|lo)>>11) / (1 << 53)
}
