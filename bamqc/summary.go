package bamqc

import "github.com/montanaflynn/stats"

// MetricSummary is the cohort-wide block reported for each metric
// alongside the dumps.
type MetricSummary struct {
	N                  int     `json:"n"`
	Mean               float64 `json:"mean"`
	StdDev             float64 `json:"stdev"`
	Min                float64 `json:"min"`
	Max                float64 `json:"max"`
	Median             float64 `json:"median"`
	LowerBoundNegative bool    `json:"lower_bound_negative"`
}

// Summarize combines the outlier-detection statistics with order
// statistics over the same value sets.
func Summarize(cohort Cohort, table StatsTable) map[string]MetricSummary {
	out := make(map[string]MetricSummary, numMetrics)

	for _, m := range Metrics() {
		values := make([]float64, 0, len(cohort))
		for _, s := range cohort {
			if v := s.Metrics[m]; v.Valid {
				values = append(values, v.Float64)
			}
		}

		st := table[m]
		sum := MetricSummary{
			N:                  st.N,
			Mean:               st.Mean,
			StdDev:             st.StdDev,
			LowerBoundNegative: st.LowerBoundNegative,
		}

		if len(values) > 0 {
			sum.Min, _ = stats.Min(values)
			sum.Max, _ = stats.Max(values)
			sum.Median, _ = stats.Median(values)
		}

		out[m.Key()] = sum
	}

	return out
}
