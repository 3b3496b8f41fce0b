package uniform_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unbias/uniform"
	"github.com/unbias/uniform/sampling"
)

func BenchmarkUint32n(b *testing.B) {
	src, err := sampling.NewKeyedSource(testKey)
	require.NoError(b, err)

	for _, limit := range []uint32{3, 1 << 16, 1<<31 + 1} {
		b.Run(benchString("Uint32n", uint64(limit)), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := uniform.Uint32n(src, limit); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkUint64n(b *testing.B) {
	src, err := sampling.NewKeyedSource(testKey)
	require.NoError(b, err)

	for _, limit := range []uint64{3, 1 << 48} {
		b.Run(benchString("Uint64n", limit), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := uniform.Uint64n(src, limit); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func benchString(op string, limit uint64) string {
	return op + "/limit=" + strconv.FormatUint(limit, 10)
}
