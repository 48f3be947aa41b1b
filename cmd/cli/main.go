package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stockdash/internal/benchmark"
	"stockdash/internal/chartexport"
	"stockdash/internal/domain"
	"stockdash/internal/export"
	"stockdash/internal/schema"
	"stockdash/internal/segmenter"
	"stockdash/internal/util"
)

var (
	inputPath   string
	csvPath     string
	granularity string
	outPath     string
	benchSymbol string
)

func loadSnapshots(path string) ([]domain.DailySnapshot, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	var raw []schema.Snapshot
	if err := json.Unmarshal(f, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return schema.ParseSnapshots(raw)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "stockdash",
		Short: "derive rebalance segments and period returns from a simulation run",
	}
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "path to snapshot JSON file")
	if err := rootCmd.MarkPersistentFlagRequired("input"); err != nil {
		panic(err)
	}

	segmentsCmd := &cobra.Command{
		Use:   "segments",
		Short: "partition the series into rebalance segments with per-holding attribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshots, err := loadSnapshots(inputPath)
			if err != nil {
				return err
			}
			segments, err := segmenter.ComputeRebalanceSegments(snapshots)
			if err != nil {
				return err
			}
			if csvPath != "" {
				f, err := os.Create(csvPath)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := export.WriteSegments(f, segments); err != nil {
					return err
				}
				fmt.Printf("wrote %d segments to %s\n", len(segments), csvPath)
				return nil
			}
			util.Pprint(segments)
			return nil
		},
	}
	segmentsCmd.Flags().StringVar(&csvPath, "csv", "", "write segments as CSV to this path instead of printing JSON")

	attributionCmd := &cobra.Command{
		Use:   "attribution",
		Short: "export per-holding attribution rows for every segment as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshots, err := loadSnapshots(inputPath)
			if err != nil {
				return err
			}
			segments, err := segmenter.ComputeRebalanceSegments(snapshots)
			if err != nil {
				return err
			}
			return export.WriteAttribution(os.Stdout, segments)
		},
	}

	calendarCmd := &cobra.Command{
		Use:   "calendar",
		Short: "compute calendar-period returns and their statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := domain.ParseGranularity(granularity)
			if err != nil {
				return err
			}
			snapshots, err := loadSnapshots(inputPath)
			if err != nil {
				return err
			}
			periods, err := segmenter.ComputeCalendarPeriodReturns(snapshots, g)
			if err != nil {
				return err
			}
			statistics, err := segmenter.AggregateStatistics(periods)
			if err != nil {
				return err
			}
			util.Pprint(map[string]any{
				"periods":    periods,
				"statistics": statistics,
			})
			return nil
		},
	}
	calendarCmd.Flags().StringVarP(&granularity, "granularity", "g", "monthly", "monthly, quarterly, or yearly")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "aggregate statistics over monthly returns",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshots, err := loadSnapshots(inputPath)
			if err != nil {
				return err
			}
			periods, err := segmenter.ComputeCalendarPeriodReturns(snapshots, domain.GranularityMonthly)
			if err != nil {
				return err
			}
			statistics, err := segmenter.AggregateStatistics(periods)
			if err != nil {
				return err
			}
			util.Pprint(statistics)
			return nil
		},
	}

	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "render portfolio vs benchmark as a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshots, err := loadSnapshots(inputPath)
			if err != nil {
				return err
			}
			png, err := chartexport.RenderValueChart(snapshots, "portfolio vs benchmark")
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, png, 0o644); err != nil {
				return err
			}
			fmt.Printf("wrote chart to %s\n", outPath)
			return nil
		},
	}
	chartCmd.Flags().StringVarP(&outPath, "out", "o", "chart.png", "output PNG path")

	benchmarkCmd := &cobra.Command{
		Use:   "benchmark",
		Short: "backfill the benchmark series from daily adjusted closes",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshots, err := loadSnapshots(inputPath)
			if err != nil {
				return err
			}
			closes, err := benchmark.FetchDailyCloses(
				benchSymbol,
				snapshots[0].Date,
				snapshots[len(snapshots)-1].Date,
			)
			if err != nil {
				return err
			}
			if err := benchmark.Backfill(snapshots, closes); err != nil {
				return err
			}
			util.Pprint(snapshots)
			return nil
		},
	}
	benchmarkCmd.Flags().StringVar(&benchSymbol, "symbol", "SPY", "benchmark symbol")

	rootCmd.AddCommand(segmentsCmd, attributionCmd, calendarCmd, statsCmd, chartCmd, benchmarkCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
