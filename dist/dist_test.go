package dist

import (
	"errors"
	"math"
	"testing"

	"pkt.systems/slump"
)

func gen() Source { return slump.New() }

func TestUniformBounds(t *testing.T) {
	src := gen()
	for i := 0; i < 1000; i++ {
		v, err := Uniform(src, 2, 5)
		if err != nil {
			t.Fatalf("Uniform: %v", err)
		}
		if v < 2 || v >= 5 {
			t.Fatalf("Uniform(2, 5) = %v out of range", v)
		}
	}
}

func TestTriangular(t *testing.T) {
	src := gen()
	for i := 0; i < 1000; i++ {
		v, err := Triangular(src, 0, 10, 2)
		if err != nil {
			t.Fatalf("Triangular: %v", err)
		}
		if v < 0 || v > 10 {
			t.Fatalf("Triangular(0, 10, 2) = %v out of range", v)
		}
	}
	v, err := Triangular(src, 3, 3, 3)
	if err != nil {
		t.Fatalf("Triangular degenerate: %v", err)
	}
	if v != 3 {
		t.Fatalf("Triangular(3, 3, 3) = %v, want 3", v)
	}
	if _, err := Triangular(src, 0, 10, 11); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("mode outside bounds error = %v, want ErrInvalidParam", err)
	}
}

func TestExpoVariate(t *testing.T) {
	src := gen()
	if _, err := ExpoVariate(src, 0); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("zero rate error = %v, want ErrInvalidParam", err)
	}
	sum := 0.0
	const draws = 20_000
	for i := 0; i < draws; i++ {
		v, err := ExpoVariate(src, 2)
		if err != nil {
			t.Fatalf("ExpoVariate: %v", err)
		}
		if v < 0 {
			t.Fatalf("ExpoVariate(2) = %v negative", v)
		}
		sum += v
	}
	mean := sum / draws
	if math.Abs(mean-0.5) > 0.05 {
		t.Fatalf("ExpoVariate(2) mean %v, want ~0.5", mean)
	}
}

func TestNormalVariateMoments(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	src := gen()
	const draws = 20_000
	sum, sqsum := 0.0, 0.0
	for i := 0; i < draws; i++ {
		v, err := NormalVariate(src, 10, 3)
		if err != nil {
			t.Fatalf("NormalVariate: %v", err)
		}
		sum += v
		sqsum += v * v
	}
	mean := sum / draws
	stddev := math.Sqrt(sqsum/draws - mean*mean)
	if math.Abs(mean-10) > 0.2 {
		t.Fatalf("mean %v, want ~10", mean)
	}
	if math.Abs(stddev-3) > 0.2 {
		t.Fatalf("stddev %v, want ~3", stddev)
	}
}

func TestGaussMoments(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	src := gen()
	const draws = 20_000
	sum, sqsum := 0.0, 0.0
	for i := 0; i < draws; i++ {
		v, err := Gauss(src, 0, 1)
		if err != nil {
			t.Fatalf("Gauss: %v", err)
		}
		sum += v
		sqsum += v * v
	}
	mean := sum / draws
	stddev := math.Sqrt(sqsum/draws - mean*mean)
	if math.Abs(mean) > 0.05 {
		t.Fatalf("mean %v, want ~0", mean)
	}
	if math.Abs(stddev-1) > 0.05 {
		t.Fatalf("stddev %v, want ~1", stddev)
	}
}

func TestLognormVariatePositive(t *testing.T) {
	src := gen()
	for i := 0; i < 1000; i++ {
		v, err := LognormVariate(src, 0, 1)
		if err != nil {
			t.Fatalf("LognormVariate: %v", err)
		}
		if v <= 0 {
			t.Fatalf("LognormVariate = %v, want > 0", v)
		}
	}
}

func TestVonMisesVariateDomain(t *testing.T) {
	src := gen()
	if _, err := VonMisesVariate(src, 0, -1); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("negative kappa error = %v, want ErrInvalidParam", err)
	}
	for _, kappa := range []float64{0, 0.5, 4} {
		for i := 0; i < 500; i++ {
			v, err := VonMisesVariate(src, 1, kappa)
			if err != nil {
				t.Fatalf("VonMisesVariate(kappa=%v): %v", kappa, err)
			}
			if v < -2*math.Pi || v > 2*math.Pi {
				t.Fatalf("VonMisesVariate = %v outside one turn", v)
			}
		}
	}
}

func TestGammaVariate(t *testing.T) {
	src := gen()
	if _, err := GammaVariate(src, 0, 1); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("zero alpha error = %v, want ErrInvalidParam", err)
	}
	if _, err := GammaVariate(src, 1, -1); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("negative beta error = %v, want ErrInvalidParam", err)
	}
	// All three algorithm branches.
	for _, alpha := range []float64{0.5, 1, 2.5} {
		for i := 0; i < 500; i++ {
			v, err := GammaVariate(src, alpha, 1)
			if err != nil {
				t.Fatalf("GammaVariate(alpha=%v): %v", alpha, err)
			}
			if v < 0 {
				t.Fatalf("GammaVariate(alpha=%v) = %v negative", alpha, v)
			}
		}
	}
}

func TestGammaVariateMean(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	src := gen()
	const draws = 20_000
	sum := 0.0
	for i := 0; i < draws; i++ {
		v, err := GammaVariate(src, 9, 0.5)
		if err != nil {
			t.Fatalf("GammaVariate: %v", err)
		}
		sum += v
	}
	mean := sum / draws
	// Mean of gamma(9, 0.5) is 4.5; stddev is 1.5, so the error of the
	// mean is ~0.011.
	if math.Abs(mean-4.5) > 0.1 {
		t.Fatalf("GammaVariate(9, 0.5) mean %v, want ~4.5", mean)
	}
}

func TestBetaVariateRange(t *testing.T) {
	src := gen()
	for i := 0; i < 1000; i++ {
		v, err := BetaVariate(src, 3, 3)
		if err != nil {
			t.Fatalf("BetaVariate: %v", err)
		}
		if v < 0 || v > 1 {
			t.Fatalf("BetaVariate = %v outside [0, 1]", v)
		}
	}
}

func TestParetoVariate(t *testing.T) {
	src := gen()
	if _, err := ParetoVariate(src, 0); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("zero shape error = %v, want ErrInvalidParam", err)
	}
	for i := 0; i < 1000; i++ {
		v, err := ParetoVariate(src, 3)
		if err != nil {
			t.Fatalf("ParetoVariate: %v", err)
		}
		if v < 1 {
			t.Fatalf("ParetoVariate(3) = %v below minimum 1", v)
		}
	}
}

func TestWeibullVariate(t *testing.T) {
	src := gen()
	if _, err := WeibullVariate(src, 1, 0); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("zero shape error = %v, want ErrInvalidParam", err)
	}
	for i := 0; i < 1000; i++ {
		v, err := WeibullVariate(src, 2, 1.5)
		if err != nil {
			t.Fatalf("WeibullVariate: %v", err)
		}
		if v < 0 {
			t.Fatalf("WeibullVariate = %v negative", v)
		}
	}
}

func TestSourceErrorPropagates(t *testing.T) {
	srcErr := errors.New("uniform source down")
	src := failSource{err: srcErr}
	if _, err := Uniform(src, 0, 1); !errors.Is(err, srcErr) {
		t.Fatalf("Uniform error = %v, want wrapped %v", err, srcErr)
	}
	if _, err := NormalVariate(src, 0, 1); !errors.Is(err, srcErr) {
		t.Fatalf("NormalVariate error = %v, want wrapped %v", err, srcErr)
	}
	if _, err := GammaVariate(src, 2.5, 1); !errors.Is(err, srcErr) {
		t.Fatalf("GammaVariate error = %v, want wrapped %v", err, srcErr)
	}
}

type failSource struct{ err error }

func (f failSource) Float64() (float64, error) { return 0, f.err }
