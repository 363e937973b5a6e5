// Package health runs statistical spot checks against an entropy source.
//
// The checks are smoke tests, not certification: a healthy report means the
// sampled output is indistinguishable from uniform bytes by a handful of
// cheap estimators (byte frequencies, bit balance, Shannon entropy, lag-1
// autocorrelation) and by general-purpose compressors, which must fail to
// shrink it. A stuck, biased or correlated source fails quickly; a subtly
// broken CSPRNG may not.
package health

import (
	"bytes"
	"fmt"
	"math"
	"math/bits"

	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"

	"pkt.systems/slump/entropy"
)

const (
	defaultSampleBytes = 1 << 20
	minSampleBytes     = 1 << 12

	// Acceptance windows for a byte-level chi-square with 255 degrees of
	// freedom: mean 255, standard deviation ~22.6. The window is wide
	// (roughly +/- 5 sigma) because Check is a tripwire, not a hypothesis
	// test.
	chiSquareMin = 145
	chiSquareMax = 370

	// Random bytes carry close to 8 bits/byte at the default sample size.
	minShannonEntropy = 7.99

	// Fraction of set bits; exactly balanced is 0.5.
	monobitTolerance = 0.005

	// Lag-1 equal-byte rate; independent bytes match at 1/256.
	autocorrTolerance = 0.002

	// Compressors pay framing overhead on incompressible input, so a
	// healthy ratio sits at or slightly above 1.0.
	minCompressionRatio = 0.99
)

// Report summarizes the statistical quality of a byte sample drawn from an
// entropy source. Findings lists every check that fell outside its window.
type Report struct {
	SampleBytes     int      `json:"sample_bytes"`
	Mean            float64  `json:"mean"`
	ChiSquare       float64  `json:"chi_square"`
	ShannonEntropy  float64  `json:"shannon_entropy"`
	MonobitFraction float64  `json:"monobit_fraction"`
	Autocorrelation float64  `json:"autocorrelation"`
	MinByteFreq     int      `json:"min_byte_freq"`
	MaxByteFreq     int      `json:"max_byte_freq"`
	SnappyRatio     float64  `json:"snappy_ratio"`
	LZ4Ratio        float64  `json:"lz4_ratio"`
	Healthy         bool     `json:"healthy"`
	Findings        []string `json:"findings,omitempty"`
}

// Option configures a health check.
type Option func(*config)

type config struct {
	sampleBytes int
}

// WithSampleSize sets how many bytes are drawn for the check. Values below
// 4 KiB panic; the estimators are meaningless on tiny samples.
func WithSampleSize(n int) Option {
	return func(cfg *config) {
		if n < minSampleBytes {
			panic(fmt.Sprintf("health: sample size must be >= %d bytes", minSampleBytes))
		}
		cfg.sampleBytes = n
	}
}

// Check draws a sample from src and evaluates it. An error is returned only
// when the source itself fails; statistical failures are reported through
// Report.Healthy and Report.Findings.
func Check(src entropy.Source, opts ...Option) (Report, error) {
	cfg := config{sampleBytes: defaultSampleBytes}
	for _, opt := range opts {
		opt(&cfg)
	}
	sample := make([]byte, cfg.sampleBytes)
	if err := src.Fill(sample); err != nil {
		return Report{}, fmt.Errorf("health: drawing sample: %w", err)
	}
	return Analyze(sample), nil
}

// Analyze evaluates an already-drawn byte sample.
func Analyze(sample []byte) Report {
	report := Report{SampleBytes: len(sample)}
	if len(sample) == 0 {
		report.Findings = append(report.Findings, "empty sample")
		return report
	}

	var freq [256]int
	var sum uint64
	setBits := 0
	for _, b := range sample {
		freq[b]++
		sum += uint64(b)
		setBits += bits.OnesCount8(b)
	}
	report.Mean = float64(sum) / float64(len(sample))
	report.MonobitFraction = float64(setBits) / float64(len(sample)*8)

	expected := float64(len(sample)) / 256
	minFreq, maxFreq := freq[0], freq[0]
	for _, count := range freq {
		diff := float64(count) - expected
		report.ChiSquare += diff * diff / expected
		if count > 0 {
			p := float64(count) / float64(len(sample))
			report.ShannonEntropy -= p * math.Log2(p)
		}
		if count < minFreq {
			minFreq = count
		}
		if count > maxFreq {
			maxFreq = count
		}
	}
	report.MinByteFreq = minFreq
	report.MaxByteFreq = maxFreq

	matches := 0
	for i := 1; i < len(sample); i++ {
		if sample[i] == sample[i-1] {
			matches++
		}
	}
	if len(sample) > 1 {
		report.Autocorrelation = float64(matches) / float64(len(sample)-1)
	}

	report.SnappyRatio = snappyRatio(sample)
	report.LZ4Ratio = lz4Ratio(sample)

	report.Findings = findings(&report)
	report.Healthy = len(report.Findings) == 0
	return report
}

func findings(r *Report) []string {
	var out []string
	if r.ChiSquare < chiSquareMin || r.ChiSquare > chiSquareMax {
		out = append(out, fmt.Sprintf("byte chi-square %.1f outside [%d, %d]", r.ChiSquare, chiSquareMin, chiSquareMax))
	}
	if r.ShannonEntropy < minShannonEntropy {
		out = append(out, fmt.Sprintf("shannon entropy %.4f below %.2f bits/byte", r.ShannonEntropy, minShannonEntropy))
	}
	if math.Abs(r.MonobitFraction-0.5) > monobitTolerance {
		out = append(out, fmt.Sprintf("monobit fraction %.4f deviates from 0.5", r.MonobitFraction))
	}
	if math.Abs(r.Autocorrelation-1.0/256) > autocorrTolerance {
		out = append(out, fmt.Sprintf("lag-1 autocorrelation %.4f deviates from 1/256", r.Autocorrelation))
	}
	if r.SnappyRatio < minCompressionRatio {
		out = append(out, fmt.Sprintf("sample compresses under snappy (ratio %.3f)", r.SnappyRatio))
	}
	if r.LZ4Ratio < minCompressionRatio {
		out = append(out, fmt.Sprintf("sample compresses under lz4 (ratio %.3f)", r.LZ4Ratio))
	}
	return out
}

// snappyRatio reports compressed/original size under the snappy stream
// framing. Uniform bytes are incompressible, so the ratio must not drop
// below 1 by more than the framing slack.
func snappyRatio(sample []byte) float64 {
	var buf bytes.Buffer
	w := snappy.NewBufferedWriter(&buf)
	if _, err := w.Write(sample); err != nil {
		return 0
	}
	if err := w.Close(); err != nil {
		return 0
	}
	return float64(buf.Len()) / float64(len(sample))
}

func lz4Ratio(sample []byte) float64 {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(sample); err != nil {
		return 0
	}
	if err := w.Close(); err != nil {
		return 0
	}
	return float64(buf.Len()) / float64(len(sample))
}
