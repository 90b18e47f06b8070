package bench

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/kocubinski/bstree/bench/metrics"
	"github.com/kocubinski/bstree/bench/util"
)

type RunConfig struct {
	Use   string
	Short string
	// TreeLoader overrides the implementation selected by --impl.
	TreeLoader TreeLoader
}

// Report is what gets written to report.json in --out-dir.
type Report struct {
	Config  Config        `json:"config"`
	Started time.Time     `json:"started"`
	Elapsed time.Duration `json:"elapsed_ns"`
	Results []Result      `json:"results"`
}

func NewCommand(cfg RunConfig) *cobra.Command {
	if cfg.Use == "" {
		cfg.Use = "run"
	}
	if cfg.Short == "" {
		cfg.Short = "Runs the tree benchmarks."
	}
	var (
		configFile string
		dumpConfig bool
	)
	cmd := &cobra.Command{
		Use:          cfg.Use,
		Short:        cfg.Short,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}
	BindFlags(cmd.Flags())
	cmd.Flags().StringVar(&configFile, "config", "", "YAML file with benchmark options.")
	cmd.Flags().BoolVar(&dumpConfig, "dump-config", false, "Print the resolved configuration as YAML and exit.")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		conf, err := LoadConfig(cmd.Flags(), configFile)
		if err != nil {
			return err
		}
		if dumpConfig {
			bz, err := conf.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(bz)
			return err
		}

		load := cfg.TreeLoader
		if load == nil {
			if load, err = LoaderFor(conf.Impl); err != nil {
				return err
			}
		}

		var logOut io.Writer = cmd.ErrOrStderr()
		if conf.LogFile != "" {
			f, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("error opening log file: %w", err)
			}
			defer f.Close()
			logOut = f
		}
		logger, err := util.NewLogger(conf.LogFormat, logOut)
		if err != nil {
			return err
		}
		logger = logger.With().Str("impl", conf.Impl).Logger()
		slog.SetDefault(slog.New(util.NewZerologHandler(logger)))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		m := metrics.NewMetrics(conf.Impl)
		if conf.MetricsAddr != "" {
			go func() {
				if err := m.Run(ctx, conf.MetricsAddr); err != nil {
					logger.Error().Err(err).Msg("metrics server failed")
				}
			}()
			logger.Info().Str("addr", conf.MetricsAddr).Msg("serving metrics")
		}

		started := time.Now()
		logger.Info().
			Int("trials", conf.Trials).
			Str("base_n", humanize.Comma(int64(conf.BaseN))).
			Str("max_n", humanize.Comma(int64(conf.MaxN))).
			Uint64("seed", conf.Seed).
			Msg("starting sweep")
		bctx := &Context{Context: ctx, Log: logger, Config: conf, Metrics: m}
		results, err := bctx.Sweep(load)
		if err != nil {
			return err
		}
		elapsed := time.Since(started)

		if err := WriteTable(cmd.OutOrStdout(), results); err != nil {
			return err
		}
		if conf.OutDir != "" {
			report := Report{Config: conf, Started: started, Elapsed: elapsed, Results: results}
			if err := util.SaveReport(conf.OutDir, report); err != nil {
				return fmt.Errorf("error writing report: %w", err)
			}
		}

		summary, err := m.Print()
		if err != nil {
			return err
		}
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)
		slog.Info(
			"sweep complete",
			"duration", elapsed,
			"results", len(results),
			"mem_allocs", humanize.Bytes(memStats.Alloc),
			"mem_sys", humanize.Bytes(memStats.Sys),
			"mem_num_gc", humanize.Comma(int64(memStats.NumGC)),
		)
		logger.Debug().Msg("metrics\n" + summary)
		return nil
	}
	return cmd
}

// Run executes the benchmark command and exits non-zero on failure.
func Run(cfg RunConfig) {
	if err := NewCommand(cfg).Execute(); err != nil {
		slog.Error("error running benchmarks", "error", err)
		os.Exit(1)
	}
}
