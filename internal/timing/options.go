package timing

import "github.com/pkg/errors"

type harnessOption func(*Harness) error

// Size sets the number of elements in the input sequence.
//
// Defaults to 100000. Size must be at least 1, New will fail
// otherwise.
func Size(n int) harnessOption {
	return func(h *Harness) error {
		if n < 1 {
			return errors.Errorf("size should be >= 1, got %d", n)
		}
		h.size = n
		return nil
	}
}

// Repetitions sets how many times every range is queried by each
// method. Reported durations are the mean and standard deviation over
// all repetitions.
//
// Defaults to 5. Must be at least 1.
func Repetitions(n int) harnessOption {
	return func(h *Harness) error {
		if n < 1 {
			return errors.Errorf("repetitions should be >= 1, got %d", n)
		}
		h.reps = n
		return nil
	}
}

// Seed sets the seed of the random distributions. Runs with the same
// seed and distribution see the same input.
func Seed(seed int64) harnessOption {
	return func(h *Harness) error {
		h.seed = seed
		return nil
	}
}

// WithDistribution selects how the input sequence is generated.
// Defaults to Sequential.
func WithDistribution(d Distribution) harnessOption {
	return func(h *Harness) error {
		if _, ok := distributionNames[d]; !ok {
			return errors.Errorf("unknown distribution %v", d)
		}
		h.dist = d
		return nil
	}
}

// Ranges replaces the default set of queried ranges. Each range is a
// half-open [left, right) pair of indices; ranges that do not fit in
// the input are clamped when the harness runs.
func Ranges(ranges ...[2]int) harnessOption {
	return func(h *Harness) error {
		for _, r := range ranges {
			if r[0] > r[1] {
				return errors.Errorf("range [%d, %d) is backwards", r[0], r[1])
			}
		}
		h.ranges = append([][2]int(nil), ranges...)
		return nil
	}
}
