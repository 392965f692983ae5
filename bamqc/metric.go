// Package bamqc ingests per-sample BamQC reports, flags cohort-wide
// outliers, computes derived quality metrics, and reconstructs display
// identities for presentation.
package bamqc

// Metric identifies one of the fixed numeric measurements parsed out of
// every BamQC record.
type Metric int

const (
	ReadsOnTarget Metric = iota
	ReadsPerStartPoint
	TotalReads
	PairedReads
	MappedReads
	AlignedBases
	SoftClipBases
	InsertMean
	TargetSize

	numMetrics
)

type metricLayout struct {
	Key         string // key as it appears in the record fragments
	Name        string
	Anchor      string
	Description string
	Decimals    int
	Commas      bool // thousands separators for counts, not for rates
	Plot        bool // target size is tabulated but never plotted
	Hidden      bool // results-table columns collapsed by default
}

var metricLayouts = [numMetrics]metricLayout{
	ReadsOnTarget:      {"reads on target", "Reads on Target", "bamqc_reads_on_target", "Reads on target data for each sample.", 0, true, true, false},
	ReadsPerStartPoint: {"reads per start point", "Reads per Start Point", "bamqc_reads_per_start_point", "Reads per Start Point data for each sample.", 2, false, true, false},
	TotalReads:         {"total reads", "Total Reads", "bamqc_total_reads", "Total Reads data for each sample.", 0, true, true, false},
	PairedReads:        {"paired reads", "Paired Reads", "bamqc_paired_reads", "Paired reads data for each sample.", 0, true, true, false},
	MappedReads:        {"mapped reads", "Mapped Reads", "bamqc_mapped_reads", "Mapped Reads data for each sample.", 0, true, true, false},
	AlignedBases:       {"aligned bases", "Aligned Bases", "bamqc_aligned_bases", "Aligned Bases data for each sample.", 0, true, true, false},
	SoftClipBases:      {"soft clip bases", "Soft Clip Bases", "bamqc_soft_clip_bases", "Soft clip bases data for each sample.", 0, true, true, true},
	InsertMean:         {"insert mean", "Insert Mean", "bamqc_insert_mean", "Insert mean data for each sample.", 1, false, true, false},
	TargetSize:         {"target size", "Target Size", "bamqc_target_size", "", 0, true, false, true},
}

var metricByKey = func() map[string]Metric {
	out := make(map[string]Metric, numMetrics)
	for _, m := range Metrics() {
		out[m.Key()] = m
	}
	return out
}()

// Metrics returns the required metric set in report order.
func Metrics() []Metric {
	out := make([]Metric, numMetrics)
	for i := range out {
		out[i] = Metric(i)
	}
	return out
}

// MetricFromKey resolves a normalized fragment key to its metric.
func MetricFromKey(key string) (Metric, bool) {
	m, ok := metricByKey[key]
	return m, ok
}

// Key is the metric's name as it appears in the input records and in
// the data dumps.
func (m Metric) Key() string { return metricLayouts[m].Key }

func (m Metric) String() string { return m.Key() }

// Name is the human-readable metric title used in report sections.
func (m Metric) Name() string { return metricLayouts[m].Name }

// Anchor is the stable section identifier for the report renderer.
func (m Metric) Anchor() string { return metricLayouts[m].Anchor }

// Decimals is the number of decimal places the renderer should show.
func (m Metric) Decimals() int { return metricLayouts[m].Decimals }
