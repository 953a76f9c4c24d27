// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/neilotoole/errgroup"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/eventqueue/factory"
	"github.com/ava-labs/eventqueue/hold"
	"github.com/ava-labs/eventqueue/instrument"
	"github.com/ava-labs/eventqueue/utils"
)

const latencyMetric = "hold_latency"

var (
	holdConfigFile  string
	queueConfigFile string
	kinds           string
	initial         int
	holds           int
	threshold       int
	seed            uint64
	distribution    string
	requeueRatio    float64
	parallel        int

	holdCmd = &cobra.Command{
		Use:   "hold",
		Short: "Run the hold model against queue kinds",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return ErrInvalidArgs
			}
			holdConfig, queueConfig, err := loadConfigs(cmd)
			if err != nil {
				return err
			}
			selected, err := factory.ParseKinds(kinds)
			if err != nil {
				return err
			}
			log.Info("running holds",
				zap.Strings("kinds", utils.Map(factory.Kind.String, selected)),
				zap.Int("parallel", parallel),
			)
			reports, err := runHolds(cmd.Context(), selected, holdConfig, queueConfig)
			if err != nil {
				return err
			}
			printReports(holdConfig, reports)
			return nil
		},
	}
)

func initHold() {
	flags := holdCmd.Flags()
	flags.StringVar(&holdConfigFile, "config", "", "hold config file (JSON or YAML)")
	flags.StringVar(&queueConfigFile, "queue-config", "", "queue config file (JSON or YAML)")
	flags.StringVar(&kinds, "kinds", "", "comma separated queue kinds (all if empty)")
	flags.IntVar(&initial, "initial", 0, "events seeded before the first hold")
	flags.IntVar(&holds, "holds", 0, "number of holds")
	flags.IntVar(&threshold, "threshold", 0, "near tier size of twotier queues, initial bucket count of bucket queues")
	flags.Uint64Var(&seed, "seed", 0, "random seed")
	flags.StringVar(&distribution, "distribution", "", "increment distribution (exponential, uniform, bimodal, constant)")
	flags.Float64Var(&requeueRatio, "requeue-ratio", 0, "chance of a requeue after each hold")
	flags.IntVar(&parallel, "parallel", runtime.NumCPU(), "number of kinds run at once")
}

// loadConfigs reads the config files and applies the flags the user set on
// top of them.
func loadConfigs(cmd *cobra.Command) (hold.Config, factory.Config, error) {
	var (
		holdConfig  = hold.NewConfig()
		queueConfig = factory.NewConfig()
		err         error
	)
	if holdConfigFile != "" {
		holdConfig, err = hold.LoadConfig(holdConfigFile)
		if err != nil {
			return hold.Config{}, factory.Config{}, err
		}
	}
	if queueConfigFile != "" {
		queueConfig, err = factory.LoadConfig(queueConfigFile)
		if err != nil {
			return hold.Config{}, factory.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("initial") {
		holdConfig.Initial = initial
	}
	if flags.Changed("holds") {
		holdConfig.Holds = holds
	}
	if flags.Changed("seed") {
		holdConfig.Seed = seed
	}
	if flags.Changed("requeue-ratio") {
		holdConfig.RequeueRatio = requeueRatio
	}
	if flags.Changed("distribution") {
		d, err := hold.ParseDistribution(distribution)
		if err != nil {
			return hold.Config{}, factory.Config{}, err
		}
		holdConfig.Distribution = d
	}
	if flags.Changed("threshold") {
		queueConfig.Threshold = threshold
	}
	if parallel < 1 {
		return hold.Config{}, factory.Config{}, fmt.Errorf("%w: %d", ErrInvalidParallel, parallel)
	}
	return holdConfig, queueConfig, holdConfig.Verify()
}

type report struct {
	kind     factory.Kind
	index    float64
	result   hold.Result
	latency  float64 // mean nanoseconds per hold
	enqueued float64
}

// runHolds gives every kind its own queue, registry and goroutine. Queues
// are never shared between goroutines.
func runHolds(
	ctx context.Context,
	selected []factory.Kind,
	holdConfig hold.Config,
	queueConfig factory.Config,
) ([]report, error) {
	reports := make([]report, len(selected))
	g, gctx := errgroup.WithContextN(ctx, parallel, len(selected))
	for i, kind := range selected {
		i, kind := i, kind
		g.Go(func() error {
			r, err := runHold(gctx, kind, holdConfig, queueConfig)
			if err != nil {
				return fmt.Errorf("%s: %w", kind, err)
			}
			reports[i] = r
			return nil
		})
	}
	return reports, g.Wait()
}

func runHold(
	ctx context.Context,
	kind factory.Kind,
	holdConfig hold.Config,
	queueConfig factory.Config,
) (report, error) {
	f, err := factory.Get[*hold.Event, float64](log, kind)
	if err != nil {
		return report{}, err
	}
	queueConfig.Kind = kind
	q, err := f.New(queueConfig)
	if err != nil {
		return report{}, err
	}

	registry := prometheus.NewRegistry()
	iq, err := instrument.New(q, registry, "queue")
	if err != nil {
		return report{}, err
	}
	latency, err := metric.NewAverager(
		"",
		latencyMetric,
		"time spent per hold",
		registry,
	)
	if err != nil {
		return report{}, err
	}

	result, err := hold.Run(ctx, log, iq, holdConfig, latency)
	if err != nil {
		return report{}, err
	}
	families, err := registry.Gather()
	if err != nil {
		return report{}, err
	}
	values := make(map[string]float64, len(families))
	for _, family := range families {
		for _, m := range family.GetMetric() {
			values[family.GetName()] += m.GetCounter().GetValue() + m.GetGauge().GetValue()
		}
	}

	r := report{
		kind:     kind,
		index:    f.EfficiencyIndex(),
		result:   result,
		enqueued: values["queue_enqueued"],
	}
	if count := values[latencyMetric+"_count"]; count > 0 {
		r.latency = values[latencyMetric+"_sum"] / count
	}
	log.Info("hold run complete",
		zap.Stringer("kind", kind),
		zap.Float64("holdsPerSecond", result.HoldsPerSecond()),
		zap.Float64("meanHoldNanos", r.latency),
		zap.Int("violations", result.Violations),
	)
	return r, nil
}

func printReports(c hold.Config, reports []report) {
	utils.Outf(
		"{{yellow}}holds:{{/}} %d {{yellow}}initial:{{/}} %d {{yellow}}distribution:{{/}} %s {{yellow}}requeue ratio:{{/}} %.2f\n",
		c.Holds,
		c.Initial,
		c.Distribution,
		c.RequeueRatio,
	)
	utils.Outf(
		"{{bold}}%-12s %6s %14s %12s %10s %10s %14s %10s{{/}}\n",
		"kind", "index", "holds/s", "ns/hold", "requeues", "enqueued", "end time", "violations",
	)
	for _, r := range reports {
		color := "green"
		if r.result.Violations > 0 {
			color = "red"
		}
		utils.Outf(
			"{{cyan}}%-12s{{/}} %6.2f %14.0f %12.1f %10d %10.0f %14.3f {{"+color+"}}%10d{{/}}\n",
			r.kind,
			r.index,
			r.result.HoldsPerSecond(),
			r.latency,
			r.result.Requeues,
			r.enqueued,
			r.result.Time,
			r.result.Violations,
		)
	}
}
