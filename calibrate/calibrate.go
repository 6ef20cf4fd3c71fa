package calibrate

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/btree"
	"github.com/google/uuid"

	"github.com/fulldump/arrayinit/arrayinit"
)

var ErrInvalidConfig = errors.New("invalid calibration config")

var DefaultLengths = []int{
	1024, 4096, 16384, 32768, 65536, 131072, 262144, 1048576,
}

const DefaultRounds = 20

// MeasureFunc returns how long a single allocation of length takes with s.
type MeasureFunc func(s arrayinit.Strategy, length int) (time.Duration, error)

type Config struct {
	Lengths []int
	Rounds  int
	Measure MeasureFunc
}

type Sample struct {
	Length      int           `json:"length"`
	PreSized    time.Duration `json:"pre_sized_ns"`
	BuildResize time.Duration `json:"build_resize_ns"`
}

type Report struct {
	ID        string   `json:"id"`
	Threshold int      `json:"threshold"`
	Samples   []Sample `json:"samples"`
}

// Measure allocates an Array[any] and times it with the wall clock.
func Measure(s arrayinit.Strategy, length int) (time.Duration, error) {
	t0 := time.Now()
	a, err := arrayinit.AllocWith[any](s, length)
	took := time.Since(t0)
	if err != nil {
		return 0, err
	}
	runtime.KeepAlive(a)
	return took, nil
}

func (c Config) validate() error {
	if len(c.Lengths) == 0 {
		return fmt.Errorf("%w: no lengths", ErrInvalidConfig)
	}
	for _, l := range c.Lengths {
		if l < 0 {
			return fmt.Errorf("%w: negative length %d", ErrInvalidConfig, l)
		}
	}
	if c.Rounds < 1 {
		return fmt.Errorf("%w: rounds must be at least 1, got %d", ErrInvalidConfig, c.Rounds)
	}
	return nil
}

// Run measures both strategies for every configured length and proposes
// the largest length where build-resize still beats pre-sized.
func Run(ctx context.Context, c Config) (*Report, error) {

	if err := c.validate(); err != nil {
		return nil, err
	}

	measure := c.Measure
	if measure == nil {
		measure = Measure
	}

	samples := btree.NewG(32, func(a, b Sample) bool {
		return a.Length < b.Length
	})

	for _, length := range c.Lengths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if samples.Has(Sample{Length: length}) {
			continue
		}

		sample := Sample{Length: length}
		for round := 0; round < c.Rounds; round++ {
			// alternate the order so neither strategy always runs on a warm heap
			order := []arrayinit.Strategy{arrayinit.BuildResize, arrayinit.PreSized}
			if round%2 == 1 {
				order[0], order[1] = order[1], order[0]
			}
			for _, s := range order {
				took, err := measure(s, length)
				if err != nil {
					return nil, fmt.Errorf("measure %s with length %d: %w", s, length, err)
				}
				if s == arrayinit.PreSized {
					sample.PreSized += took
				} else {
					sample.BuildResize += took
				}
			}
		}
		sample.PreSized /= time.Duration(c.Rounds)
		sample.BuildResize /= time.Duration(c.Rounds)

		samples.ReplaceOrInsert(sample)
	}

	report := &Report{
		ID:        uuid.NewString(),
		Threshold: crossover(samples),
		Samples:   make([]Sample, 0, samples.Len()),
	}
	samples.Ascend(func(s Sample) bool {
		report.Samples = append(report.Samples, s)
		return true
	})

	return report, nil
}

// crossover walks from the largest length down while pre-sized keeps
// winning. The first length where build-resize is faster is the threshold.
func crossover(samples *btree.BTreeG[Sample]) int {
	threshold := 0
	samples.Descend(func(s Sample) bool {
		if s.BuildResize < s.PreSized {
			threshold = s.Length
			return false
		}
		return true
	})
	return threshold
}
