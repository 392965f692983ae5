package bamqc

import "gopkg.in/guregu/null.v3"

// Derived holds the secondary metrics computed from a sample's raw
// values. Each stays invalid when the raw metrics it needs were never
// parsed.
type Derived struct {
	MapPercent      null.Float
	OnTargetPercent null.Float
	EstimatedYield  null.Float
	Coverage        null.Float
}

// ComputeDerived fills in the secondary metrics for one sample,
// independently of the rest of the cohort. Every division substitutes 1
// for a zero denominator, so the result is a degenerate but defined
// number rather than an error.
func ComputeDerived(s *Sample) {
	mapped := s.Metrics[MappedReads]
	total := s.Metrics[TotalReads]
	if mapped.Valid && total.Valid {
		s.Derived.MapPercent = null.FloatFrom(mapped.Float64 / orOne(total.Float64) * 100)
	}

	onTarget := s.Metrics[ReadsOnTarget]
	if onTarget.Valid && mapped.Valid {
		s.Derived.OnTargetPercent = null.FloatFrom(onTarget.Float64 / orOne(mapped.Float64) * 100)
	}

	aligned := s.Metrics[AlignedBases]
	perStart := s.Metrics[ReadsPerStartPoint]
	if aligned.Valid && perStart.Valid && s.Derived.OnTargetPercent.Valid {
		yield := aligned.Float64 * (s.Derived.OnTargetPercent.Float64 / 100) / orOne(perStart.Float64)
		s.Derived.EstimatedYield = null.FloatFrom(yield)
	}

	target := s.Metrics[TargetSize]
	if s.Derived.EstimatedYield.Valid && target.Valid {
		s.Derived.Coverage = null.FloatFrom(s.Derived.EstimatedYield.Float64 / orOne(target.Float64))
	}
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
