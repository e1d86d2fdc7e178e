package insights

import (
	"context"

	"brandstudio/domain/insights"
	"brandstudio/domain/studio"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// Profiler computes distribution statistics for enriched dashboard rows.
// Like the aggregator it degrades silently: degenerate inputs produce zeroed
// profiles, never errors.
type Profiler struct{}

// NewProfiler creates a new distribution profiler
func NewProfiler() *Profiler {
	return &Profiler{}
}

// Profile summarizes the traffic and rate distributions of the enriched rows
// and their traffic-vs-conversions correlation. The three computations are
// independent and run concurrently.
func (p *Profiler) Profile(ctx context.Context, rows []insights.EnrichedRow) *studio.DistributionProfile {
	traffic := make([]float64, len(rows))
	rate := make([]float64, len(rows))
	conversions := make([]float64, len(rows))
	for i, r := range rows {
		traffic[i] = r.Traffic
		rate[i] = r.Rate
		conversions[i] = r.Conversions
	}

	profile := &studio.DistributionProfile{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		profile.Traffic = columnStats(traffic)
		return nil
	})
	g.Go(func() error {
		profile.Rate = columnStats(rate)
		return nil
	})
	g.Go(func() error {
		profile.Correlation = correlation(traffic, conversions)
		return nil
	})
	// The workers never return errors; Wait only synchronizes them.
	_ = g.Wait()

	return profile
}

// columnStats computes descriptive statistics for one column. The stats
// library errors on empty input; those degrade to zero values.
func columnStats(data []float64) studio.ColumnStats {
	if len(data) == 0 {
		return studio.ColumnStats{}
	}

	mean, _ := stats.Mean(data)
	median, _ := stats.Median(data)
	stdDev, _ := stats.StandardDeviation(data)
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)
	q25, _ := stats.Percentile(data, 25)
	q75, _ := stats.Percentile(data, 75)

	return studio.ColumnStats{
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
		Q25:    q25,
		Q75:    q75,
	}
}

// correlation computes the Pearson correlation between two columns, guarding
// the zero-variance and short-input cases that make it undefined.
func correlation(x, y []float64) float64 {
	if len(x) < 2 || len(x) != len(y) {
		return 0
	}
	if stat.Variance(x, nil) == 0 || stat.Variance(y, nil) == 0 {
		return 0
	}
	return stat.Correlation(x, y, nil)
}
