package main

import (
	"math/rand"
	"time"

	"github.com/NVIDIA/sortedset"
	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/spf13/cobra"
)

const benchProgressInterval = 100_000

type benchMetrics struct {
	registry   *prometheus.Registry
	adds       prometheus.Counter
	duplicates prometheus.Counter
	removes    prometheus.Counter
	size       prometheus.Gauge
}

func newBenchMetrics(order string) *benchMetrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	labels := prometheus.Labels{"order": order}

	return &benchMetrics{
		registry: registry,
		adds: factory.NewCounter(prometheus.CounterOpts{
			Name:        "sortedset_bench_adds_total",
			Help:        "number of values inserted into the set",
			ConstLabels: labels,
		}),
		duplicates: factory.NewCounter(prometheus.CounterOpts{
			Name:        "sortedset_bench_duplicates_total",
			Help:        "number of Add calls rejected as duplicates",
			ConstLabels: labels,
		}),
		removes: factory.NewCounter(prometheus.CounterOpts{
			Name:        "sortedset_bench_removes_total",
			Help:        "number of values removed from the set",
			ConstLabels: labels,
		}),
		size: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "sortedset_bench_size",
			Help:        "number of values currently in the set",
			ConstLabels: labels,
		}),
	}
}

func benchCommand(ctx *driverContext) *cobra.Command {
	var (
		count    int
		seed     int64
		order    string
		validate bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "insert then remove a run of integers, reporting throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := benchValues(order, count, seed)
			if err != nil {
				return err
			}

			metrics := newBenchMetrics(order)
			set := sortedset.NewOrderedSortedSet[int]()

			since := time.Now()
			for i, value := range values {
				added, err := set.Add(value)
				if err != nil {
					return err
				}
				if !added {
					return errors.Newf("value %d unexpectedly already present", value)
				}
				metrics.adds.Inc()
				metrics.size.Set(float64(set.Count()))

				if validate {
					if err := set.Validate(); err != nil {
						return errors.Wrapf(err, "after adding %d", value)
					}
				}
				if (i+1)%benchProgressInterval == 0 {
					ctx.Log.Info().Msgf("added %s values", humanize.Comma(int64(i+1)))
				}
			}
			logThroughput(ctx, "added", len(values), time.Since(since))

			// Every value is present now, so each of these must be rejected
			for _, value := range values[:min(len(values), benchProgressInterval)] {
				added, err := set.Add(value)
				if err != nil {
					return err
				}
				if added {
					return errors.Newf("duplicate value %d was accepted", value)
				}
				metrics.duplicates.Inc()
			}

			since = time.Now()
			for i, value := range values {
				removed, err := set.Remove(value)
				if err != nil {
					return err
				}
				if !removed {
					return errors.Newf("value %d unexpectedly absent", value)
				}
				metrics.removes.Inc()
				metrics.size.Set(float64(set.Count()))

				if validate {
					if err := set.Validate(); err != nil {
						return errors.Wrapf(err, "after removing %d", value)
					}
				}
				if (i+1)%benchProgressInterval == 0 {
					ctx.Log.Info().Msgf("removed %s values", humanize.Comma(int64(i+1)))
				}
			}
			logThroughput(ctx, "removed", len(values), time.Since(since))

			if set.Count() != 0 {
				return errors.Newf("expected an empty set; %d values remain", set.Count())
			}

			return logMetrics(ctx, metrics)
		},
	}
	cmd.Flags().IntVar(&count, "count", 100_000, "number of distinct values to insert")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for --order random")
	cmd.Flags().StringVar(&order, "order", "random", "insertion and removal order: asc, desc or random")
	cmd.Flags().BoolVar(&validate, "validate", false, "check every tree invariant after each operation")

	return cmd
}

func benchValues(order string, count int, seed int64) ([]int, error) {
	if count < 0 {
		return nil, errors.Newf("--count must not be negative, got %d", count)
	}

	values := make([]int, count)
	switch order {
	case "asc":
		for i := range values {
			values[i] = i
		}
	case "desc":
		for i := range values {
			values[i] = count - 1 - i
		}
	case "random":
		values = rand.New(rand.NewSource(seed)).Perm(count)
	default:
		return nil, errors.Newf("unknown --order %q", order)
	}

	return values, nil
}

func logThroughput(ctx *driverContext, verb string, n int, elapsed time.Duration) {
	perSecond := int64(0)
	if elapsed > 0 {
		perSecond = int64(float64(n) / elapsed.Seconds())
	}

	ctx.Log.Info().Msgf("%s %s values in %s; %s values/s",
		verb,
		humanize.Comma(int64(n)),
		elapsed,
		humanize.Comma(perSecond))
}

func logMetrics(ctx *driverContext, metrics *benchMetrics) error {
	families, err := metrics.registry.Gather()
	if err != nil {
		return err
	}

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			value := metric.GetCounter().GetValue()
			if metric.GetGauge() != nil {
				value = metric.GetGauge().GetValue()
			}
			ctx.Log.Info().Str("metric", family.GetName()).Float64("value", value).Msg("final")
		}
	}

	return nil
}
