package bamqc

import (
	"log"

	"github.com/gonum/stat"
)

// Samples beyond this many cohort standard deviations from the mean are
// flagged as outliers.
const outlierStdDevs = 2.0

// CohortStats holds the per-metric statistics behind the outlier
// classification.
type CohortStats struct {
	N      int
	Mean   float64
	StdDev float64

	// LowerBoundNegative is set when mean - 2*stdev < 0, i.e. the lower
	// fail bound is not meaningful for a metric that cannot go negative.
	LowerBoundNegative bool
}

// StatsTable holds one CohortStats per metric.
type StatsTable [numMetrics]CohortStats

// Stats returns the cohort statistics for one metric.
func (t *StatsTable) Stats(m Metric) CohortStats { return t[m] }

// DetectOutliers classifies every sample's value for every metric
// against the cohort mean plus or minus two sample standard deviations
// (strict inequalities; a value equal to a bound passes). Statuses are
// written onto the samples; the per-metric statistics are returned.
// Each metric is an independent two-pass computation over the whole
// cohort, recomputed from scratch on every run.
func DetectOutliers(cohort Cohort) StatsTable {
	var table StatsTable
	for _, m := range Metrics() {
		table[m] = detectMetric(cohort, m)
	}
	return table
}

// detectMetric gathers the metric's values across the cohort, then
// classifies each sample. Fewer than two values cannot produce a
// standard deviation: mean and stdev report as 0, the condition is
// logged, and every present value classifies as pass. (Inheriting the
// degenerate [0,0] band would fail every nonzero value; a one-sample
// cohort has no outliers by definition.)
func detectMetric(cohort Cohort, m Metric) CohortStats {
	values := make([]float64, 0, len(cohort))
	for _, s := range cohort {
		if v := s.Metrics[m]; v.Valid {
			values = append(values, v.Float64)
		}
	}

	if len(values) < 2 {
		log.Printf("metric %q: %d value(s) in cohort, too few for outlier detection", m.Key(), len(values))
		for _, s := range cohort {
			if s.Metrics[m].Valid {
				s.Status[m] = Pass
			}
		}
		return CohortStats{N: len(values)}
	}

	mean, sd := stat.MeanStdDev(values, nil)

	for _, s := range cohort {
		v := s.Metrics[m]
		if !v.Valid {
			continue
		}
		if v.Float64 > mean+outlierStdDevs*sd || v.Float64 < mean-outlierStdDevs*sd {
			s.Status[m] = Fail
		} else {
			s.Status[m] = Pass
		}
	}

	return CohortStats{
		N:                  len(values),
		Mean:               mean,
		StdDev:             sd,
		LowerBoundNegative: mean-outlierStdDevs*sd < 0,
	}
}
