// Package dist provides the classic floating-point distributions on top of a
// minimal uniform capability. Instead of inheriting from a generator base
// type, every distribution is a free function parameterized over Source, so
// any generator exposing an unbiased uniform float works; *slump.Rand
// satisfies the interface directly.
package dist

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParam reports a distribution parameter outside its valid domain.
var ErrInvalidParam = errors.New("dist: invalid parameter")

// Source is the uniform capability the distributions consume: an unbiased
// float in [0, 1) per call.
type Source interface {
	Float64() (float64, error)
}

const (
	nvMagic = 1.71552776992141 // 4*exp(-0.5)/sqrt(2), Kinderman-Monahan bound
	sgMagic = 2.50407739677627 // 1 + log(4.5), Cheng's gamma rejection bound
)

// Uniform returns a value uniformly distributed in [a, b).
func Uniform(src Source, a, b float64) (float64, error) {
	u, err := src.Float64()
	if err != nil {
		return 0, err
	}
	return a + (b-a)*u, nil
}

// Triangular returns a value from the triangular distribution on
// [low, high] with the given mode.
func Triangular(src Source, low, high, mode float64) (float64, error) {
	if low == high {
		return low, nil
	}
	if mode < low || mode > high {
		return 0, fmt.Errorf("%w: mode %v outside [%v, %v]", ErrInvalidParam, mode, low, high)
	}
	u, err := src.Float64()
	if err != nil {
		return 0, err
	}
	c := (mode - low) / (high - low)
	if u > c {
		u = 1 - u
		c = 1 - c
		low, high = high, low
	}
	return low + (high-low)*math.Sqrt(u*c), nil
}

// ExpoVariate returns a value from the exponential distribution with rate
// lambda. lambda must be non-zero; negative rates yield values up to zero.
func ExpoVariate(src Source, lambda float64) (float64, error) {
	if lambda == 0 {
		return 0, fmt.Errorf("%w: zero rate for ExpoVariate", ErrInvalidParam)
	}
	u, err := src.Float64()
	if err != nil {
		return 0, err
	}
	// u is in [0, 1), so 1-u stays clear of log(0).
	return -math.Log(1-u) / lambda, nil
}

// NormalVariate returns a value from the normal distribution with mean mu
// and standard deviation sigma, using the Kinderman-Monahan ratio method.
func NormalVariate(src Source, mu, sigma float64) (float64, error) {
	for {
		u1, err := src.Float64()
		if err != nil {
			return 0, err
		}
		u2, err := src.Float64()
		if err != nil {
			return 0, err
		}
		u2 = 1 - u2
		z := nvMagic * (u1 - 0.5) / u2
		if z*z/4 <= -math.Log(u2) {
			return mu + z*sigma, nil
		}
	}
}

// Gauss returns a normally distributed value via Box-Muller. Unlike
// generators that cache the second value of each pair, every call draws
// fresh uniforms, keeping the function stateless and concurrency-neutral.
func Gauss(src Source, mu, sigma float64) (float64, error) {
	u1, err := src.Float64()
	if err != nil {
		return 0, err
	}
	u2, err := src.Float64()
	if err != nil {
		return 0, err
	}
	z := math.Cos(2*math.Pi*u1) * math.Sqrt(-2*math.Log(1-u2))
	return mu + z*sigma, nil
}

// LognormVariate returns a value whose logarithm is normally distributed
// with mean mu and standard deviation sigma.
func LognormVariate(src Source, mu, sigma float64) (float64, error) {
	v, err := NormalVariate(src, mu, sigma)
	if err != nil {
		return 0, err
	}
	return math.Exp(v), nil
}

// VonMisesVariate returns an angle in [0, 2*pi) from the von Mises
// distribution with mean angle mu and concentration kappa, using the
// Fisher/Best rejection method. A kappa near zero degenerates to a uniform
// angle.
func VonMisesVariate(src Source, mu, kappa float64) (float64, error) {
	if kappa < 0 {
		return 0, fmt.Errorf("%w: negative concentration %v", ErrInvalidParam, kappa)
	}
	if kappa <= 1e-6 {
		u, err := src.Float64()
		if err != nil {
			return 0, err
		}
		return 2 * math.Pi * u, nil
	}
	s := 0.5 / kappa
	t := s + math.Sqrt(1+s*s)
	var z float64
	for {
		u1, err := src.Float64()
		if err != nil {
			return 0, err
		}
		z = math.Cos(math.Pi * u1)
		d := z / (t + z)
		u2, err := src.Float64()
		if err != nil {
			return 0, err
		}
		if u2 < 1-d*d || u2 <= (1-d)*math.Exp(d) {
			break
		}
	}
	q := 1 / t
	f := (q + z) / (1 + q*z)
	u3, err := src.Float64()
	if err != nil {
		return 0, err
	}
	if u3 > 0.5 {
		return math.Mod(mu+math.Acos(f), 2*math.Pi), nil
	}
	return math.Mod(mu-math.Acos(f), 2*math.Pi), nil
}

// GammaVariate returns a value from the gamma distribution with shape alpha
// and scale beta (mean alpha*beta). Both parameters must be positive.
func GammaVariate(src Source, alpha, beta float64) (float64, error) {
	if alpha <= 0 || beta <= 0 {
		return 0, fmt.Errorf("%w: gamma parameters must be > 0 (alpha %v, beta %v)", ErrInvalidParam, alpha, beta)
	}
	switch {
	case alpha > 1:
		// Cheng's GB rejection algorithm.
		ainv := math.Sqrt(2*alpha - 1)
		bbb := alpha - math.Log(4)
		ccc := alpha + ainv
		for {
			u1, err := src.Float64()
			if err != nil {
				return 0, err
			}
			if u1 <= 1e-7 || u1 >= 0.9999999 {
				continue
			}
			u2, err := src.Float64()
			if err != nil {
				return 0, err
			}
			u2 = 1 - u2
			v := math.Log(u1/(1-u1)) / ainv
			x := alpha * math.Exp(v)
			z := u1 * u1 * u2
			t := bbb + ccc*v - x
			if t+sgMagic-4.5*z >= 0 || t >= math.Log(z) {
				return x * beta, nil
			}
		}
	case alpha == 1:
		u, err := src.Float64()
		if err != nil {
			return 0, err
		}
		return -math.Log(1-u) * beta, nil
	default:
		// Algorithm GS of Ahrens and Dieter for 0 < alpha < 1.
		var x float64
		for {
			u, err := src.Float64()
			if err != nil {
				return 0, err
			}
			b := (math.E + alpha) / math.E
			p := b * u
			if p <= 1 {
				x = math.Pow(p, 1/alpha)
			} else {
				x = -math.Log((b - p) / alpha)
			}
			u1, err := src.Float64()
			if err != nil {
				return 0, err
			}
			if p > 1 {
				if u1 <= math.Pow(x, alpha-1) {
					break
				}
			} else if u1 <= math.Exp(-x) {
				break
			}
		}
		return x * beta, nil
	}
}

// BetaVariate returns a value in [0, 1] from the beta distribution with
// shape parameters alpha and beta.
func BetaVariate(src Source, alpha, beta float64) (float64, error) {
	y, err := GammaVariate(src, alpha, 1)
	if err != nil {
		return 0, err
	}
	if y == 0 {
		return 0, nil
	}
	z, err := GammaVariate(src, beta, 1)
	if err != nil {
		return 0, err
	}
	return y / (y + z), nil
}

// ParetoVariate returns a value from the Pareto distribution with shape
// alpha and minimum 1.
func ParetoVariate(src Source, alpha float64) (float64, error) {
	if alpha == 0 {
		return 0, fmt.Errorf("%w: zero shape for ParetoVariate", ErrInvalidParam)
	}
	u, err := src.Float64()
	if err != nil {
		return 0, err
	}
	return 1 / math.Pow(1-u, 1/alpha), nil
}

// WeibullVariate returns a value from the Weibull distribution with scale
// alpha and shape beta.
func WeibullVariate(src Source, alpha, beta float64) (float64, error) {
	if beta == 0 {
		return 0, fmt.Errorf("%w: zero shape for WeibullVariate", ErrInvalidParam)
	}
	u, err := src.Float64()
	if err != nil {
		return 0, err
	}
	return alpha * math.Pow(-math.Log(1-u), 1/beta), nil
}
