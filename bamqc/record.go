package bamqc

import "gopkg.in/guregu/null.v3"

// Status is a sample's cohort classification for one metric. The zero
// value means the metric was never classified (no value was parsed).
type Status string

const (
	Pass Status = "pass"
	Fail Status = "fail"
)

// Sample is the full per-sample state for one pipeline run: the raw
// parsed metrics, the identity metadata, and the fields later stages
// fill in (derived metrics, outlier statuses, display identity).
type Sample struct {
	ID      string
	Metrics [numMetrics]null.Float
	Status  [numMetrics]Status
	Derived Derived
	Meta    Metadata
	Display string // set during identity resolution; empty when metadata is incomplete
}

// Metric returns the sample's parsed value for one metric; invalid
// until the parser saw it.
func (s *Sample) Metric(m Metric) null.Float { return s.Metrics[m] }

// MetricStatus returns the sample's outlier classification for one
// metric.
func (s *Sample) MetricStatus(m Metric) Status { return s.Status[m] }

// Metadata carries the identity fields embedded in a record. Each field
// is only valid when the source text contained the corresponding key.
type Metadata struct {
	Library null.String
	RunName null.String
	Barcode null.String
	GroupID null.String
	Lane    null.String // kept as the raw string, never type-converted
}

func (md *Metadata) set(key, value string) bool {
	switch key {
	case "library":
		md.Library = null.StringFrom(value)
	case "run name":
		md.RunName = null.StringFrom(value)
	case "barcode", "index":
		md.Barcode = null.StringFrom(value)
	case "group id":
		md.GroupID = null.StringFrom(value)
	case "lane":
		md.Lane = null.StringFrom(value)
	default:
		return false
	}
	return true
}

// Cohort maps a sample key to its record. The pipeline builds one
// keyed by file-derived sample id and derives a second keyed by display
// identity; both share the same underlying samples.
type Cohort map[string]*Sample
