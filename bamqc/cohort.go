package bamqc

import (
	"errors"
	"log"
	"sort"
)

// ErrNoSamples is the hard failure for a run left with zero samples
// after filtering: no report can be produced.
var ErrNoSamples = errors.New("bamqc: no samples found after filtering")

// Report is the result of one pipeline run over a cohort.
type Report struct {
	// Raw is keyed by the file-derived sample id and always holds every
	// parsed sample; the dumps serialize this view.
	Raw Cohort
	// Keyed is keyed by display identity and backs presentation. Samples
	// with incomplete metadata are absent here but present in Raw.
	Keyed    Cohort
	Stats    StatsTable
	Summary  map[string]MetricSummary
	Sections []Section
}

// Run executes the full pipeline over the raw records: parse all,
// report metric gaps, filter, detect outliers, compute derived metrics,
// resolve identities. The stages run strictly in sequence because the
// statistics need the whole cohort in memory. The optional filter is
// applied exactly once, after parsing and before statistics.
func Run(records map[string]string, filter func(Cohort) Cohort) (*Report, error) {
	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	cohort := make(Cohort, len(records))
	for _, id := range ids {
		s := ParseRecord(records[id], id)
		for _, m := range MissingMetrics(s) {
			log.Printf("sample %s: data for %q is missing", id, m.Key())
		}
		cohort[id] = s
	}

	if filter != nil {
		cohort = filter(cohort)
	}
	if len(cohort) == 0 {
		return nil, ErrNoSamples
	}
	log.Println("Found", len(cohort), "reports")

	table := DetectOutliers(cohort)

	for _, id := range ids {
		if s, ok := cohort[id]; ok {
			ComputeDerived(s)
		}
	}

	keyed, rekeyErrs := Rekey(cohort)
	for _, err := range rekeyErrs {
		log.Println(err)
	}

	return &Report{
		Raw:      cohort,
		Keyed:    keyed,
		Stats:    table,
		Summary:  Summarize(cohort, table),
		Sections: BuildSections(keyed),
	}, nil
}
