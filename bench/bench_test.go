package bench

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"

	"github.com/zxfonline/structperf/random"
)

var opts = Options{Iterations: 1000, Rounds: 3}

func expectedSink(src random.Source, n int) uint64 {
	var sink uint64
	for i := 0; i < n; i++ {
		sink += random.Bit(src.NextRand())
	}
	return sink
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		"lcg_static",
		"lcg_static_lazy",
		"lcg_struct",
		"xoshiro_static",
		"xoshiro_static_lazy",
		"xoshiro_struct",
	}, Names())
}

func TestLookup(t *testing.T) {
	v, err := Lookup("lcg_struct", 0)
	require.NoError(t, err)
	assert.Equal(t, "lcg_struct", v.Name)

	_, err = Lookup("pcg_struct", 0)
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}

func TestRun_Sink(t *testing.T) {
	total := opts.Iterations * opts.Rounds
	lcgSink := expectedSink(random.NewLCGRand(random.DefaultLCGSeed), total)
	xsSink := expectedSink(random.NewXoshiroRandState(random.DefaultXoshiroState), total)

	for _, v := range Variants(0) {
		t.Run(v.Name, func(t *testing.T) {
			res, err := Run(context.Background(), v, opts)
			require.NoError(t, err)
			assert.Equal(t, v.Name, res.Variant)
			assert.Equal(t, opts.Iterations, res.Iterations)
			assert.Equal(t, opts.Rounds, res.Rounds)
			assert.NotEmpty(t, res.RunID)
			assert.True(t, res.Best <= res.Mean)
			assert.True(t, res.Mean <= res.Total)
			if strings.HasPrefix(v.Name, "lcg") {
				assert.Equal(t, lcgSink, res.Sink)
			} else {
				assert.Equal(t, xsSink, res.Sink)
			}
		})
	}
}

func TestRun_Seeded(t *testing.T) {
	v, err := Lookup("lcg_static_lazy", 42)
	require.NoError(t, err)
	res, err := Run(context.Background(), v, opts)
	require.NoError(t, err)
	assert.Equal(t, expectedSink(random.NewLCGRand(42), 3000), res.Sink)

	v, err = Lookup("xoshiro_struct", 42)
	require.NoError(t, err)
	res, err = Run(context.Background(), v, opts)
	require.NoError(t, err)
	assert.Equal(t, expectedSink(random.NewXoshiroRand(42), 3000), res.Sink)
}

func TestRun_Panic(t *testing.T) {
	v := Variant{
		Name: "broken",
		Call: func() uint64 { panic(random.ErrNotInitialized) },
	}
	res, err := Run(context.Background(), v, opts)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, random.ErrNotInitialized), "%v", err)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	v, err := Lookup("lcg_struct", 0)
	require.NoError(t, err)
	res, err := Run(ctx, v, opts)
	assert.Nil(t, res)
	assert.Equal(t, context.Canceled, err)

	_, err = Run(context.Background(), v, Options{})
	assert.Error(t, err)
}

func TestRunAll(t *testing.T) {
	results, err := RunAll(context.Background(), []string{"lcg_struct", "xoshiro_static"}, 0, opts)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "xoshiro_static", results[1].Variant)

	results, err = RunAll(context.Background(), []string{"lcg_struct", "nope"}, 0, opts)
	assert.True(t, errors.Is(err, ErrUnknownVariant))
	assert.Len(t, results, 1)
}

func TestReport(t *testing.T) {
	results, err := RunAll(context.Background(), []string{"lcg_static"}, 0, opts)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, results))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "VARIANT"))
	assert.True(t, strings.HasPrefix(lines[1], "lcg_static"))

	buf.Reset()
	require.NoError(t, WriteYAML(&buf, results))
	var back struct {
		Results []struct {
			Variant string `yaml:"variant"`
			Sink    uint64 `yaml:"sink"`
			RunID   string `yaml:"run_id"`
		} `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	require.Len(t, back.Results, 1)
	assert.Equal(t, "lcg_static", back.Results[0].Variant)
	assert.Equal(t, results[0].Sink, back.Results[0].Sink)
	assert.Equal(t, results[0].RunID, back.Results[0].RunID)
}

func BenchmarkVariants(b *testing.B) {
	for _, v := range Variants(0) {
		b.Run(v.Name, func(b *testing.B) {
			v.Init()
			var sink uint64
			for i := 0; i < b.N; i++ {
				sink += v.Call()
			}
			_ = sink
		})
	}
}
