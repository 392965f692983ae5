package bamqc

import (
	"math"
	"testing"

	"gopkg.in/guregu/null.v3"
)

func sampleWithMetrics(values map[Metric]float64) *Sample {
	s := &Sample{ID: "A"}
	for m, v := range values {
		s.Metrics[m] = null.FloatFrom(v)
	}
	return s
}

func TestComputeDerivedFullChain(t *testing.T) {
	s := sampleWithMetrics(map[Metric]float64{
		MappedReads:        90,
		TotalReads:         100,
		ReadsOnTarget:      45,
		AlignedBases:       1000,
		ReadsPerStartPoint: 2,
		TargetSize:         50,
	})
	ComputeDerived(s)

	if v := s.Derived.MapPercent; !v.Valid || v.Float64 != 90 {
		t.Errorf("map percent = %+v, want 90", v)
	}
	if v := s.Derived.OnTargetPercent; !v.Valid || v.Float64 != 50 {
		t.Errorf("on target percent = %+v, want 50", v)
	}
	// 1000 * 0.5 / 2
	if v := s.Derived.EstimatedYield; !v.Valid || v.Float64 != 250 {
		t.Errorf("estimated yield = %+v, want 250", v)
	}
	if v := s.Derived.Coverage; !v.Valid || v.Float64 != 5 {
		t.Errorf("coverage = %+v, want 5", v)
	}
}

func TestComputeDerivedZeroTotalReads(t *testing.T) {
	s := sampleWithMetrics(map[Metric]float64{
		MappedReads: 50,
		TotalReads:  0,
	})
	ComputeDerived(s)

	// The zero denominator substitutes 1: 50/1*100, never a division error.
	if v := s.Derived.MapPercent; !v.Valid || v.Float64 != 5000 {
		t.Errorf("map percent = %+v, want 5000", v)
	}
}

func TestComputeDerivedZeroMappedReads(t *testing.T) {
	s := sampleWithMetrics(map[Metric]float64{
		MappedReads:   0,
		TotalReads:    100,
		ReadsOnTarget: 30,
	})
	ComputeDerived(s)

	if v := s.Derived.MapPercent; !v.Valid || v.Float64 != 0 {
		t.Errorf("map percent = %+v, want 0", v)
	}
	if v := s.Derived.OnTargetPercent; !v.Valid || v.Float64 != 3000 {
		t.Errorf("on target percent = %+v, want 3000", v)
	}
}

func TestComputeDerivedZeroReadsPerStartPointAndTargetSize(t *testing.T) {
	s := sampleWithMetrics(map[Metric]float64{
		MappedReads:        100,
		TotalReads:         100,
		ReadsOnTarget:      50,
		AlignedBases:       200,
		ReadsPerStartPoint: 0,
		TargetSize:         0,
	})
	ComputeDerived(s)

	// 200 * 0.5 / 1
	if v := s.Derived.EstimatedYield; !v.Valid || math.Abs(v.Float64-100) > 1e-12 {
		t.Errorf("estimated yield = %+v, want 100", v)
	}
	// 100 / 1
	if v := s.Derived.Coverage; !v.Valid || math.Abs(v.Float64-100) > 1e-12 {
		t.Errorf("coverage = %+v, want 100", v)
	}
}

func TestComputeDerivedMissingInputsStayUnset(t *testing.T) {
	s := sampleWithMetrics(map[Metric]float64{
		MappedReads: 90,
	})
	ComputeDerived(s)

	if s.Derived.MapPercent.Valid {
		t.Error("map percent needs total reads, should stay unset")
	}
	if s.Derived.OnTargetPercent.Valid {
		t.Error("on target percent needs reads on target, should stay unset")
	}
	if s.Derived.EstimatedYield.Valid || s.Derived.Coverage.Valid {
		t.Error("yield and coverage should stay unset")
	}
}
