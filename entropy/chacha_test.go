package entropy

import (
	"bytes"
	"sync"
	"testing"
)

func TestChaCha20Fills(t *testing.T) {
	src, err := ChaCha20()
	if err != nil {
		t.Fatalf("ChaCha20: %v", err)
	}
	a := make([]byte, 64)
	b := make([]byte, 64)
	if err := src.Fill(a); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if err := src.Fill(b); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatal("consecutive keystream blocks identical")
	}
	if bytes.Equal(a, make([]byte, 64)) {
		t.Fatal("keystream all zero")
	}
}

func TestChaCha20OverwritesCallerBytes(t *testing.T) {
	// Fill must replace prior buffer contents with keystream.
	src, err := ChaCha20()
	if err != nil {
		t.Fatalf("ChaCha20: %v", err)
	}
	buf := bytes.Repeat([]byte{0xAA}, 32)
	if err := src.Fill(buf); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if bytes.Equal(buf, bytes.Repeat([]byte{0xAA}, 32)) {
		t.Fatal("Fill left caller bytes in place")
	}
}

func TestChaCha20RekeyBoundary(t *testing.T) {
	src, err := ChaCha20(WithRekeyBytes(1 << 10))
	if err != nil {
		t.Fatalf("ChaCha20: %v", err)
	}
	// Draw well past several rekey intervals, including a single request
	// larger than the interval.
	big := make([]byte, 5<<10)
	if err := src.Fill(big); err != nil {
		t.Fatalf("Fill across rekey boundaries: %v", err)
	}
	for i := 0; i < 100; i++ {
		if err := src.Fill(make([]byte, 64)); err != nil {
			t.Fatalf("Fill: %v", err)
		}
	}
}

func TestChaCha20RekeyIntervalValidation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for tiny rekey interval")
		}
	}()
	ChaCha20(WithRekeyBytes(16))
}

func TestChaCha20Concurrent(t *testing.T) {
	src, err := ChaCha20(WithRekeyBytes(1 << 10))
	if err != nil {
		t.Fatalf("ChaCha20: %v", err)
	}
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf := make([]byte, 97)
			for i := 0; i < 200; i++ {
				if err := src.Fill(buf); err != nil {
					t.Errorf("Fill: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkSystemFill(b *testing.B) {
	src := System()
	buf := make([]byte, 4096)
	b.SetBytes(int64(len(buf)))
	for i := 0; i < b.N; i++ {
		if err := src.Fill(buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkChaCha20Fill(b *testing.B) {
	src, err := ChaCha20()
	if err != nil {
		b.Fatal(err)
	}
	buf := make([]byte, 4096)
	b.SetBytes(int64(len(buf)))
	for i := 0; i < b.N; i++ {
		if err := src.Fill(buf); err != nil {
			b.Fatal(err)
		}
	}
}
