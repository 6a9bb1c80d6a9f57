package rand

import "testing"

func TestIntnRange(t *testing.T) {
	r := New()
	var counts [10]int
	for i := 0; i < 20000; i++ {
		v := r.Intn(10)
		if v < 0 || v >= 10 {
			t.Fatalf("Intn(10) returned %d", v)
		}
		counts[v]++
	}
	for i, c := range counts {
		if c < 1700 || c > 2300 {
			t.Errorf("bucket %d has %d samples, expected roughly 2000", i, c)
		}
	}
}

func TestFloat64Range(t *testing.T) {
	r := New()
	sum := 0.
	for i := 0; i < 20000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 returned %f", f)
		}
		sum += f
	}
	if mean := sum / 20000; mean < 0.48 || mean > 0.52 {
		t.Errorf("mean %f far from 0.5", mean)
	}
}

func TestSeedRepeats(t *testing.T) {
	a, b := New(), New()
	a.Seed(42)
	b.Seed(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("sample %d differs after identical seeds: %v vs %v", i, x, y)
		}
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("sample %d differs after identical seeds: %d vs %d", i, x, y)
		}
	}
}

func TestIntnPanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	New().Intn(0)
}
