package kmp_test

import (
	"testing"

	"github.com/katalvlaran/lvlseq/kmp"
	"github.com/katalvlaran/lvlseq/seqgen"
)

// BenchmarkCount_1M scans a 1M-symbol binary text for a self-overlapping
// pattern, the case where naive matching degrades most.
func BenchmarkCount_1M(b *testing.B) {
	text, err := seqgen.String(1_000_000, seqgen.WithSeed(1), seqgen.WithAlphabet("ab"))
	if err != nil {
		b.Fatalf("fixture: %v", err)
	}
	m, err := kmp.CompileString("abababab")
	if err != nil {
		b.Fatalf("compile: %v", err)
	}
	raw := []byte(text)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Count(raw)
	}
}
