package timing

import (
	"fmt"
	"strings"

	rng "github.com/leesper/go_rng"
	"github.com/pkg/errors"
)

// Distribution selects how the harness fills its input sequence.
type Distribution int

const (
	// Sequential sets element i to i.
	Sequential Distribution = iota
	// Uniform draws elements uniformly from [-Spread, Spread).
	Uniform
	// Gaussian draws elements from a normal distribution centered on 0
	// with a standard deviation of Spread.
	Gaussian
)

// Spread scales the random distributions.
const Spread = 1 << 20

var distributionNames = map[Distribution]string{
	Sequential: "sequential",
	Uniform:    "uniform",
	Gaussian:   "gaussian",
}

func (d Distribution) String() string {
	if name, ok := distributionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Distribution(%d)", int(d))
}

// ParseDistribution returns the distribution with the given name.
func ParseDistribution(name string) (Distribution, error) {
	for d, n := range distributionNames {
		if strings.EqualFold(n, name) {
			return d, nil
		}
	}
	return 0, errors.Errorf("unknown distribution %q", name)
}

type generator interface {
	Next(i int) int64
}

type sequentialGenerator struct{}

func (sequentialGenerator) Next(i int) int64 {
	return int64(i)
}

type uniformGenerator struct {
	gen *rng.UniformGenerator
}

func (g uniformGenerator) Next(int) int64 {
	return g.gen.Int64Range(-Spread, Spread)
}

type gaussianGenerator struct {
	gen *rng.GaussianGenerator
}

func (g gaussianGenerator) Next(int) int64 {
	return int64(g.gen.Gaussian(0, Spread))
}

func newGenerator(d Distribution, seed int64) generator {
	switch d {
	case Uniform:
		return uniformGenerator{rng.NewUniformGenerator(seed)}
	case Gaussian:
		return gaussianGenerator{rng.NewGaussianGenerator(seed)}
	default:
		return sequentialGenerator{}
	}
}
