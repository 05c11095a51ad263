package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zxfonline/structperf/log"
	"github.com/zxfonline/structperf/random"
	"github.com/zxfonline/structperf/trace"
)

type Options struct {
	Iterations int
	Rounds     int
}

type Result struct {
	RunID      string        `yaml:"run_id"`
	Variant    string        `yaml:"variant"`
	Iterations int           `yaml:"iterations"`
	Rounds     int           `yaml:"rounds"`
	Total      time.Duration `yaml:"total"`
	Best       time.Duration `yaml:"best"`
	Mean       time.Duration `yaml:"mean"`
	NsPerOp    float64       `yaml:"ns_per_op"`
	// Sink counts outputs in the upper half of the range; it keeps the calls
	// observable and doubles as a cheap determinism check.
	Sink uint64 `yaml:"sink"`
}

// Run calls v.Init once and then times opts.Rounds rounds of opts.Iterations
// calls. ctx is checked between rounds. A panic from the variant is
// returned as an error.
func Run(ctx context.Context, v Variant, opts Options) (res *Result, err error) {
	if opts.Iterations <= 0 || opts.Rounds <= 0 {
		return nil, fmt.Errorf("bench %s: iterations and rounds must be > 0", v.Name)
	}
	pt := trace.TraceStart("bench", v.Name)
	defer trace.TraceFinish(pt)
	defer func() {
		if x := recover(); x != nil {
			log.Errorf("bench %s panicked: %v\nStack:%s", v.Name, x, log.Stack())
			if e, ok := x.(error); ok {
				err = fmt.Errorf("bench %s: %w", v.Name, e)
			} else {
				err = fmt.Errorf("bench %s: %v", v.Name, x)
			}
			trace.TraceErrorf(pt, "%v", err)
			res = nil
		}
	}()

	res = &Result{
		RunID:      uuid.New().String(),
		Variant:    v.Name,
		Iterations: opts.Iterations,
		Rounds:     opts.Rounds,
	}
	if v.Init != nil {
		v.Init()
	}
	call := v.Call
	for r := 0; r < opts.Rounds; r++ {
		if err := ctx.Err(); err != nil {
			trace.TraceErrorf(pt, "canceled after %d rounds", r)
			return nil, err
		}
		var sink uint64
		start := time.Now()
		for i := 0; i < opts.Iterations; i++ {
			sink += random.Bit(call())
		}
		elapsed := time.Since(start)

		res.Sink += sink
		res.Total += elapsed
		if r == 0 || elapsed < res.Best {
			res.Best = elapsed
		}
		log.Debugf("bench %s round %d: %v", v.Name, r, elapsed)
		trace.TracePrintf(pt, "round %d: %v", r, elapsed)
	}
	res.Mean = res.Total / time.Duration(opts.Rounds)
	res.NsPerOp = float64(res.Best.Nanoseconds()) / float64(opts.Iterations)

	log.WithFields(log.Fields{
		"run_id":    res.RunID,
		"variant":   res.Variant,
		"best":      res.Best,
		"ns_per_op": res.NsPerOp,
	}).Info("bench done")
	return res, nil
}

// RunAll runs the named variants in order and stops at the first error.
func RunAll(ctx context.Context, names []string, seed uint64, opts Options) ([]*Result, error) {
	results := make([]*Result, 0, len(names))
	for _, name := range names {
		v, err := Lookup(name, seed)
		if err != nil {
			return results, err
		}
		res, err := Run(ctx, v, opts)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
