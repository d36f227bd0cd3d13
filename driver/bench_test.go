package driver_test

import (
	"testing"

	"github.com/katalvlaran/mutiter/driver"
	"github.com/katalvlaran/mutiter/index"
)

// BenchmarkDriver_Range compares the driver against a plain indexed loop.
func BenchmarkDriver_Range(b *testing.B) {
	values := make([]int, 4096)
	b.ReportAllocs()
	b.SetBytes(int64(len(values)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for p := range driver.MapValues(values, index.UpTo(len(values)), driver.WithoutChecks()).All() {
			*p++
		}
	}
}

// BenchmarkDriver_RangeChecked adds the seen-positions record.
func BenchmarkDriver_RangeChecked(b *testing.B) {
	values := make([]int, 4096)
	b.ReportAllocs()
	b.SetBytes(int64(len(values)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for p := range driver.MapValues(values, index.UpTo(len(values)), driver.WithChecks()).All() {
			*p++
		}
	}
}

// BenchmarkPlainLoop is the baseline.
func BenchmarkPlainLoop(b *testing.B) {
	values := make([]int, 4096)
	b.ReportAllocs()
	b.SetBytes(int64(len(values)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := range values {
			values[j]++
		}
	}
}
