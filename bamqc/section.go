package bamqc

// Section is the per-metric payload handed to the report renderer: the
// cohort's values split into pass and fail buckets for coloring, plus
// formatting hints. Rendering itself (bar charts, HTML) happens
// elsewhere.
type Section struct {
	ID          string
	Name        string
	Anchor      string
	Description string
	Decimals    int
	Commas      bool
	Pass        map[string]float64
	Fail        map[string]float64
}

// BuildSections produces one section per plotted metric, in the fixed
// report order, keyed by whatever keys the given cohort view uses
// (display identities for presentation). A sample with a value for a
// metric lands in exactly one bucket.
func BuildSections(cohort Cohort) []Section {
	sections := make([]Section, 0, numMetrics)

	for _, m := range Metrics() {
		if !metricLayouts[m].Plot {
			continue
		}

		sec := Section{
			ID:          m.Anchor() + "_plot",
			Name:        m.Name(),
			Anchor:      m.Anchor(),
			Description: metricLayouts[m].Description,
			Decimals:    m.Decimals(),
			Commas:      metricLayouts[m].Commas,
			Pass:        make(map[string]float64),
			Fail:        make(map[string]float64),
		}

		for key, s := range cohort {
			v := s.Metrics[m]
			if !v.Valid {
				continue
			}
			if s.Status[m] == Fail {
				sec.Fail[key] = v.Float64
			} else {
				sec.Pass[key] = v.Float64
			}
		}

		sections = append(sections, sec)
	}

	return sections
}

// Column describes one results-table column for the renderer: header
// title, formatting hints, and default visibility.
type Column struct {
	Key      string
	Title    string
	Decimals int
	Commas   bool
	Hidden   bool
}

// TableColumns lists the results-table columns in report order: the
// nine raw metrics followed by the derived metrics.
func TableColumns() []Column {
	cols := make([]Column, 0, numMetrics+4)

	for _, m := range Metrics() {
		l := metricLayouts[m]
		cols = append(cols, Column{
			Key:      l.Key,
			Title:    l.Name,
			Decimals: l.Decimals,
			Commas:   l.Commas,
			Hidden:   l.Hidden,
		})
	}

	cols = append(cols,
		Column{Key: keyMapPercent, Title: "Map Percent", Decimals: 1},
		Column{Key: keyOnTargetPercent, Title: "On Target Percent", Decimals: 1},
		Column{Key: keyEstimatedYield, Title: "Estimated Yield", Commas: true, Hidden: true},
		Column{Key: keyCoverage, Title: "Coverage", Decimals: 1},
	)

	return cols
}
