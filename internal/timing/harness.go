// Package timing measures segment tree range sums against a Fenwick
// tree and against summing the input slice directly.
package timing

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/stat"

	segtree "github.com/caio/go-segtree"
	"github.com/caio/go-segtree/internal/fenwick"
)

// Harness holds a generated input sequence together with the structures
// built over it.
type Harness struct {
	size   int
	reps   int
	seed   int64
	dist   Distribution
	ranges [][2]int

	data []int64
	tree *segtree.Tree[int64]
	list *fenwick.List[int64]
}

// New generates the input sequence and builds the structures over it.
func New(options ...harnessOption) (*Harness, error) {
	h := &Harness{
		size: 100000,
		reps: 5,
		seed: 0xDEADBEEF,
		dist: Sequential,
	}

	for _, option := range options {
		if err := option(h); err != nil {
			return nil, err
		}
	}

	if h.ranges == nil {
		h.ranges = defaultRanges(h.size)
	}

	gen := newGenerator(h.dist, h.seed)
	h.data = make([]int64, h.size)
	for i := range h.data {
		h.data[i] = gen.Next(i)
	}
	h.tree = segtree.New(h.data...)
	h.list = fenwick.New(h.data...)

	return h, nil
}

// defaultRanges returns the prefixes [0, n/2^k) for k up to 7, the back
// half of the input and two fixed inner windows.
func defaultRanges(n int) [][2]int {
	ranges := make([][2]int, 0, 11)
	for k := 0; k < 8; k++ {
		ranges = append(ranges, [2]int{0, n >> k})
	}
	return append(ranges, [2]int{n / 2, n}, [2]int{1234, 5678}, [2]int{1234, 2500})
}

// Size returns the number of elements in the input sequence.
func (h *Harness) Size() int { return h.size }

// Distribution returns the distribution the input was drawn from.
func (h *Harness) Distribution() Distribution { return h.dist }

// Timing is the mean and standard deviation of a set of durations.
type Timing struct {
	Mean   time.Duration `json:"mean"`
	StdDev time.Duration `json:"stddev"`
}

func newTiming(samples []float64) Timing {
	mean, std := stat.MeanStdDev(samples, nil)
	if len(samples) < 2 {
		std = 0
	}
	return Timing{Mean: time.Duration(mean), StdDev: time.Duration(std)}
}

// Measurement is the outcome of summing one range with every method.
type Measurement struct {
	Left  int `json:"left"`
	Right int `json:"right"`

	LinearSum  int64 `json:"linearSum"`
	TreeSum    int64 `json:"treeSum"`
	FenwickSum int64 `json:"fenwickSum"`

	Linear  Timing `json:"linear"`
	Tree    Timing `json:"tree"`
	Fenwick Timing `json:"fenwick"`
}

// Agree reports whether all methods computed the same sum.
func (m Measurement) Agree() bool {
	return m.LinearSum == m.TreeSum && m.TreeSum == m.FenwickSum
}

// Run measures every configured range.
func (h *Harness) Run() []Measurement {
	ms := make([]Measurement, 0, len(h.ranges))
	for _, r := range h.ranges {
		ms = append(ms, h.Measure(r[0], r[1]))
	}
	return ms
}

// Measure sums [left, right) with every method, after clamping the
// range to the input.
func (h *Harness) Measure(left, right int) Measurement {
	left = min(max(left, 0), h.size)
	right = max(min(right, h.size), left)

	m := Measurement{Left: left, Right: right}

	var samples [3][]float64
	for rep := 0; rep < h.reps; rep++ {
		start := time.Now()
		m.LinearSum = linearSum(h.data[left:right])
		samples[0] = append(samples[0], float64(time.Since(start)))

		start = time.Now()
		m.TreeSum = h.tree.Sum(left, right)
		samples[1] = append(samples[1], float64(time.Since(start)))

		start = time.Now()
		m.FenwickSum = h.list.SumRange(left, right)
		samples[2] = append(samples[2], float64(time.Since(start)))
	}

	m.Linear = newTiming(samples[0])
	m.Tree = newTiming(samples[1])
	m.Fenwick = newTiming(samples[2])
	return m
}

func linearSum(data []int64) (sum int64) {
	for _, v := range data {
		sum += v
	}
	return sum
}

// WriteTable renders measurements as a table.
func WriteTable(w io.Writer, ms []Measurement) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"RANGE", "SUM", "LINEAR", "TREE", "FENWICK", "AGREE"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetBorder(false)

	for _, m := range ms {
		table.Append([]string{
			fmt.Sprintf("[%d, %d)", m.Left, m.Right),
			strconv.FormatInt(m.TreeSum, 10),
			m.Linear.String(),
			m.Tree.String(),
			m.Fenwick.String(),
			strconv.FormatBool(m.Agree()),
		})
	}
	table.Render()
}

func (t Timing) String() string {
	return fmt.Sprintf("%v ±%v", t.Mean, t.StdDev)
}
