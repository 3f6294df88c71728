package parser_test

import (
	"strings"
	"testing"
	"time"

	"github.com/brunokim/lam/parser"
)

const largeTimeout = 10 * time.Second

func nested(depth int) string {
	return "p(" + strings.Repeat("f(", depth) + "1" + strings.Repeat(")", depth) + ")."
}

func TestParseProgram_Large(t *testing.T) {
	const n = 100000
	text := strings.Repeat("edge(X, 1, f(Y)).\n", n)
	start := time.Now()
	result, err := parser.ParseProgram(text)
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("got err: %v", err)
	}
	if len(result.Clauses) != n {
		t.Errorf("got %d clauses, want %d", len(result.Clauses), n)
	}
	if elapsed > largeTimeout {
		t.Errorf("parsing %d bytes took %v, want at most %v", len(text), elapsed, largeTimeout)
	}
}

func TestParseProgram_LargeError(t *testing.T) {
	const n = 100000
	text := strings.Repeat("edge(X, 1, f(Y)).\n", n) + "edge(X"
	start := time.Now()
	_, err := parser.ParseProgram(text)
	elapsed := time.Since(start)
	if err == nil {
		t.Fatalf("want error")
	}
	if want := "100001:7: "; !strings.HasPrefix(err.Error(), want) {
		t.Errorf("got err %q, want prefix %q", err, want)
	}
	if elapsed > largeTimeout {
		t.Errorf("parsing %d bytes took %v, want at most %v", len(text), elapsed, largeTimeout)
	}
}

func TestParseProgram_Deep(t *testing.T) {
	const depth = 50000
	text := nested(depth)
	start := time.Now()
	result, err := parser.ParseProgram(text)
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("got err: %v", err)
	}
	if len(result.Clauses) != 1 {
		t.Errorf("got %d clauses, want 1", len(result.Clauses))
	}
	if elapsed > largeTimeout {
		t.Errorf("parsing %d bytes took %v, want at most %v", len(text), elapsed, largeTimeout)
	}
}

func BenchmarkParseProgram(b *testing.B) {
	text := strings.Repeat("edge(X, 1, f(Y)).\n", 10000)
	b.SetBytes(int64(len(text)))
	for i := 0; i < b.N; i++ {
		if _, err := parser.ParseProgram(text); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseProgram_Deep(b *testing.B) {
	text := nested(10000)
	b.SetBytes(int64(len(text)))
	for i := 0; i < b.N; i++ {
		if _, err := parser.ParseProgram(text); err != nil {
			b.Fatal(err)
		}
	}
}
