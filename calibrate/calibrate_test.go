package calibrate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fulldump/biff"
	"github.com/google/uuid"

	"github.com/fulldump/arrayinit/arrayinit"
)

// fakeMeasure makes build-resize cost `length` ns and pre-sized cost a flat
// `flat` ns, so the crossover sits at the largest length below flat.
func fakeMeasure(flat time.Duration) MeasureFunc {
	return func(s arrayinit.Strategy, length int) (time.Duration, error) {
		if s == arrayinit.PreSized {
			return flat, nil
		}
		return time.Duration(length), nil
	}
}

func TestRun(t *testing.T) {

	biff.Alternative("Run", func(a *biff.A) {

		ctx := context.Background()

		a.Alternative("Crossover in the middle", func(a *biff.A) {
			report, err := Run(ctx, Config{
				Lengths: []int{1000, 70000, 4000, 65536, 100000},
				Rounds:  3,
				Measure: fakeMeasure(66000),
			})
			biff.AssertNil(err)
			biff.AssertEqual(report.Threshold, 65536)

			_, err = uuid.Parse(report.ID)
			biff.AssertNil(err)

			lengths := []int{}
			for _, s := range report.Samples {
				lengths = append(lengths, s.Length)
			}
			biff.AssertEqual(lengths, []int{1000, 4000, 65536, 70000, 100000})
			biff.AssertEqual(report.Samples[0].BuildResize, time.Duration(1000))
			biff.AssertEqual(report.Samples[0].PreSized, time.Duration(66000))
		})

		a.Alternative("Pre-sized always faster", func(a *biff.A) {
			report, err := Run(ctx, Config{
				Lengths: []int{10, 20},
				Rounds:  1,
				Measure: fakeMeasure(1),
			})
			biff.AssertNil(err)
			biff.AssertEqual(report.Threshold, 0)
		})

		a.Alternative("Build-resize always faster", func(a *biff.A) {
			report, err := Run(ctx, Config{
				Lengths: []int{10, 20},
				Rounds:  1,
				Measure: fakeMeasure(1_000_000),
			})
			biff.AssertNil(err)
			biff.AssertEqual(report.Threshold, 20)
		})

		a.Alternative("A late build-resize win moves the threshold up", func(a *biff.A) {
			report, err := Run(ctx, Config{
				Lengths: []int{10, 20, 30},
				Rounds:  1,
				Measure: func(s arrayinit.Strategy, length int) (time.Duration, error) {
					if s == arrayinit.BuildResize && length != 20 {
						return 1, nil
					}
					return 5, nil
				},
			})
			biff.AssertNil(err)
			biff.AssertEqual(report.Threshold, 30)
		})

		a.Alternative("Duplicated lengths are measured once", func(a *biff.A) {
			calls := 0
			report, err := Run(ctx, Config{
				Lengths: []int{8, 8, 8},
				Rounds:  2,
				Measure: func(s arrayinit.Strategy, length int) (time.Duration, error) {
					calls++
					return 1, nil
				},
			})
			biff.AssertNil(err)
			biff.AssertEqual(calls, 4)
			biff.AssertEqual(len(report.Samples), 1)
		})

		a.Alternative("Rounds are averaged", func(a *biff.A) {
			n := time.Duration(0)
			report, err := Run(ctx, Config{
				Lengths: []int{1},
				Rounds:  4,
				Measure: func(s arrayinit.Strategy, length int) (time.Duration, error) {
					n++
					return n, nil
				},
			})
			biff.AssertNil(err)
			// calls 1..8 alternate order: BR gets 1,4,5,8 and PS gets 2,3,6,7
			biff.AssertEqual(report.Samples[0].BuildResize, time.Duration(18/4))
			biff.AssertEqual(report.Samples[0].PreSized, time.Duration(18/4))
		})

		a.Alternative("Measure error", func(a *biff.A) {
			measureErr := errors.New("boom")
			_, err := Run(ctx, Config{
				Lengths: []int{1},
				Rounds:  1,
				Measure: func(s arrayinit.Strategy, length int) (time.Duration, error) {
					return 0, measureErr
				},
			})
			biff.AssertTrue(errors.Is(err, measureErr))
		})

		a.Alternative("Canceled context", func(a *biff.A) {
			canceled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := Run(canceled, Config{
				Lengths: []int{1},
				Rounds:  1,
				Measure: fakeMeasure(1),
			})
			biff.AssertTrue(errors.Is(err, context.Canceled))
		})

		a.Alternative("Invalid config", func(a *biff.A) {
			_, err := Run(ctx, Config{Rounds: 1})
			biff.AssertTrue(errors.Is(err, ErrInvalidConfig))

			_, err = Run(ctx, Config{Lengths: []int{1}, Rounds: 0})
			biff.AssertTrue(errors.Is(err, ErrInvalidConfig))

			_, err = Run(ctx, Config{Lengths: []int{-1}, Rounds: 1})
			biff.AssertTrue(errors.Is(err, ErrInvalidConfig))
		})

		a.Alternative("Real measure", func(a *biff.A) {
			report, err := Run(ctx, Config{
				Lengths: []int{0, 1024, 65537},
				Rounds:  2,
			})
			biff.AssertNil(err)
			biff.AssertEqual(len(report.Samples), 3)
			biff.AssertTrue(report.Threshold >= 0 && report.Threshold <= 65537)
		})
	})
}
