/*
Package uniform draws exactly uniform integers in [0, limit) from a source of
random machine words, using Daniel Lemire's nearly-divisionless method
(https://lemire.me/blog/?p=17551).

A raw 32-bit word w is treated as the fractional part of a 32.32 fixed-point
number in [0, 1). Multiplying it by the limit yields a 64-bit product whose
high half is a candidate result in [0, limit) and whose low half is the
fraction deciding whether the candidate may be kept. There are limit possible
values for the integer half; for the output to be unbiased each of them must
correspond to the same number of accepted fractions, so the samples whose
fraction falls in the leftover sliver of size (1<<32) % limit are rejected and
redrawn. When the fraction is at least limit the sample can never fall in that
sliver and is accepted without computing the exact threshold; this fast path
avoids the division on the overwhelming majority of calls.
*/
package uniform

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/unbias/uniform/sampling"
)

// ErrInvalidLimit is returned when the exclusive upper bound of the requested
// range is not strictly positive. There is no meaningful sample to draw from
// an empty range, so the condition is surfaced explicitly rather than left to
// wrap around in unsigned arithmetic.
var ErrInvalidLimit = errors.New("uniform: limit must be greater than zero")

// Uint32n returns an integer drawn from the exactly uniform distribution over
// [0, limit), consuming one word from src in the common case and more only
// when a sample must be rejected to preserve uniformity. The expected number
// of extra draws is below one for every limit; the rejection loop has no
// iteration cap, so a source that never leaves the rejection sliver (which a
// uniform source does with probability at most 0.5 per draw) would spin.
//
// A limit of zero returns ErrInvalidLimit. A source failure is returned
// wrapped; the partial draw is discarded.
func Uint32n(src sampling.Source, limit uint32) (uint32, error) {
	if limit == 0 {
		return 0, ErrInvalidLimit
	}
	w, err := src.Uint32()
	if err != nil {
		return 0, fmt.Errorf("uniform: draw: %w", err)
	}
	num := uint64(w) * uint64(limit)
	if uint32(num) < limit {
		// Exact resample threshold: (1<<32) % limit, which fits in 32 bits as
		// ((1<<32) - limit) % limit == -limit % limit. Safe because limit > 0.
		residue := -limit % limit
		for uint32(num) < residue {
			if w, err = src.Uint32(); err != nil {
				return 0, fmt.Errorf("uniform: draw: %w", err)
			}
			num = uint64(w) * uint64(limit)
		}
	}
	return uint32(num >> 32), nil
}

// Uint64n is Uint32n widened to 64 bits: it returns an integer drawn from the
// exactly uniform distribution over [0, limit), using a 64.64 fixed-point
// product and the threshold (1<<64) % limit == -limit % limit. Each draw
// consumes two words from src.
func Uint64n(src sampling.Source, limit uint64) (uint64, error) {
	if limit == 0 {
		return 0, ErrInvalidLimit
	}
	w, err := word64(src)
	if err != nil {
		return 0, err
	}
	hi, lo := bits.Mul64(w, limit)
	if lo < limit {
		residue := -limit % limit
		for lo < residue {
			if w, err = word64(src); err != nil {
				return 0, err
			}
			hi, lo = bits.Mul64(w, limit)
		}
	}
	return hi, nil
}

func word64(src sampling.Source) (uint64, error) {
	hi, err := src.Uint32()
	if err != nil {
		return 0, fmt.Errorf("uniform: draw: %w", err)
	}
	lo, err := src.Uint32()
	if err != nil {
		return 0, fmt.Errorf("uniform: draw: %w", err)
	}
	return uint64(hi)<<32 | uint64(lo), nil
}
