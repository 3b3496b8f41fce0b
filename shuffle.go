package uniform

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/unbias/uniform/sampling"
)

// N returns an integer drawn from the exactly uniform distribution over
// [0, limit) for any integer type. A limit that is zero or negative returns
// ErrInvalidLimit.
func N[T constraints.Integer](src sampling.Source, limit T) (T, error) {
	if limit <= 0 {
		return 0, ErrInvalidLimit
	}
	v, err := Uint64n(src, uint64(limit))
	return T(v), err
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j, using a Fisher-Yates pass driven by Uint64n so that every
// permutation is equiprobable.
func Shuffle(src sampling.Source, n int, swap func(i, j int)) error {
	if n < 0 {
		return fmt.Errorf("uniform: negative number of elements %d: %w", n, ErrInvalidLimit)
	}
	for i := n - 1; i > 0; i-- {
		j, err := Uint64n(src, uint64(i)+1)
		if err != nil {
			return err
		}
		swap(i, int(j))
	}
	return nil
}
