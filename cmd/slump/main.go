// Command slump draws from the secure random library on the command line:
// unbiased integers and floats, random tokens, shuffled or sampled input
// lines, and an entropy-source health check.
//
//	slump int -max 100 -count 5
//	slump float -count 3
//	slump token -bytes 16
//	slump shuffle < names.txt
//	slump sample -k 3 < names.txt
//	slump bytes -count 64 > seed.bin
//	slump health
//
// The entropy source and log level can be selected through the environment:
// SLUMP_SOURCE=system|chacha20, SLUMP_LOG_LEVEL=debug|info|warn|error.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"pkt.systems/slump"
	"pkt.systems/slump/entropy"
	"pkt.systems/slump/health"
	"pkt.systems/slump/internal/hexid"
)

type config struct {
	Source   string `env:"SLUMP_SOURCE" envDefault:"system"`
	LogLevel string `env:"SLUMP_LOG_LEVEL" envDefault:"info"`
}

var log = logrus.New()

func main() {
	log.SetOutput(os.Stderr)

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse environment: %v", err)
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("parse SLUMP_LOG_LEVEL: %v", err)
	}
	log.SetLevel(level)

	src, err := newSource(cfg.Source)
	if err != nil {
		log.Fatal(err)
	}
	gen := slump.New(slump.WithSource(src))

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd, args := os.Args[1], os.Args[2:]

	switch cmd {
	case "int":
		err = cmdInt(gen, args)
	case "float":
		err = cmdFloat(gen, args)
	case "token":
		err = cmdToken(src, args)
	case "bytes":
		err = cmdBytes(gen, args)
	case "shuffle":
		err = cmdShuffle(gen)
	case "sample":
		err = cmdSample(gen, args)
	case "health":
		err = cmdHealth(src, args)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: slump <int|float|token|bytes|shuffle|sample|health> [flags]")
}

func newSource(name string) (entropy.Source, error) {
	switch name {
	case "system":
		return entropy.System(), nil
	case "chacha20":
		return entropy.ChaCha20()
	default:
		return nil, fmt.Errorf("unknown entropy source %q (want system or chacha20)", name)
	}
}

func cmdInt(gen *slump.Rand, args []string) error {
	fs := flag.NewFlagSet("int", flag.ExitOnError)
	min := fs.Int64("min", 0, "inclusive lower bound")
	max := fs.Int64("max", 100, "inclusive upper bound")
	count := fs.Int("count", 1, "how many values to emit")
	fs.Parse(args)

	for i := 0; i < *count; i++ {
		v, err := gen.Randint(*min, *max)
		if err != nil {
			return err
		}
		fmt.Println(v)
	}
	return nil
}

func cmdFloat(gen *slump.Rand, args []string) error {
	fs := flag.NewFlagSet("float", flag.ExitOnError)
	count := fs.Int("count", 1, "how many values to emit")
	fs.Parse(args)

	for i := 0; i < *count; i++ {
		v, err := gen.Float64()
		if err != nil {
			return err
		}
		fmt.Println(v)
	}
	return nil
}

func cmdToken(src entropy.Source, args []string) error {
	fs := flag.NewFlagSet("token", flag.ExitOnError)
	nbytes := fs.Int("bytes", 16, "entropy bytes per token")
	count := fs.Int("count", 1, "how many tokens to emit")
	fs.Parse(args)

	for i := 0; i < *count; i++ {
		id, err := hexid.New(src, *nbytes)
		if err != nil {
			return err
		}
		fmt.Println(id)
	}
	return nil
}

func cmdBytes(gen *slump.Rand, args []string) error {
	fs := flag.NewFlagSet("bytes", flag.ExitOnError)
	count := fs.Int("count", 32, "how many bytes to emit")
	fs.Parse(args)

	if term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("refusing to write raw random bytes to a terminal; redirect stdout or use token")
	}
	b, err := gen.Bytes(*count)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(b)
	return err
}

func cmdShuffle(gen *slump.Rand) error {
	lines, err := readLines(os.Stdin)
	if err != nil {
		return err
	}
	if err := slump.Shuffle(gen, lines); err != nil {
		return err
	}
	return writeLines(lines)
}

func cmdSample(gen *slump.Rand, args []string) error {
	fs := flag.NewFlagSet("sample", flag.ExitOnError)
	k := fs.Int("k", 1, "sample size")
	fs.Parse(args)

	lines, err := readLines(os.Stdin)
	if err != nil {
		return err
	}
	picked, err := slump.Sample(gen, lines, *k)
	if err != nil {
		return err
	}
	return writeLines(picked)
}

func cmdHealth(src entropy.Source, args []string) error {
	fs := flag.NewFlagSet("health", flag.ExitOnError)
	sampleBytes := fs.Int("sample", 1<<20, "sample size in bytes")
	fs.Parse(args)

	log.Debugf("drawing %d byte sample", *sampleBytes)
	report, err := health.Check(src, health.WithSampleSize(*sampleBytes))
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	if !report.Healthy {
		for _, finding := range report.Findings {
			log.Warn(finding)
		}
		os.Exit(1)
	}
	return nil
}

func readLines(f *os.File) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func writeLines(lines []string) error {
	w := bufio.NewWriter(os.Stdout)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return w.Flush()
}
