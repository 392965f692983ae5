package bamqc

import (
	"log"
	"strconv"
	"strings"

	"gopkg.in/guregu/null.v3"
)

// ParseRecord parses one raw BamQC blob into a Sample. The input is a
// comma-separated list of loosely JSON-like "key: value" fragments; it
// is not a strict grammar, so parsing is best-effort. Fragments without
// a colon, with unknown keys, or with unparseable numbers are skipped.
// A later fragment with an already-seen key overwrites the earlier one.
func ParseRecord(raw, sampleID string) *Sample {
	s := &Sample{ID: sampleID}

	for _, fragment := range strings.Split(raw, ",") {
		rawKey, rawValue, found := cut(fragment, ":")
		if !found {
			continue
		}

		key := normalizeKey(rawKey)
		value := normalizeValue(rawValue)

		if m, ok := MetricFromKey(key); ok {
			v, ok := parseNumber(value)
			if !ok {
				continue
			}
			if s.Metrics[m].Valid {
				log.Printf("sample %s: duplicate property %q, overwriting", sampleID, key)
			}
			s.Metrics[m] = null.FloatFrom(v)
			continue
		}

		s.Meta.set(key, value)
	}

	return s
}

// MissingMetrics reports which required metrics a sample's record never
// provided, in report order. Gaps are diagnostics, not failures: the
// sample stays in the cohort with a partial record.
func MissingMetrics(s *Sample) []Metric {
	var missing []Metric
	for _, m := range Metrics() {
		if !s.Metrics[m].Valid {
			missing = append(missing, m)
		}
	}
	return missing
}

func cut(s, sep string) (before, after string, found bool) {
	i := strings.Index(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}

func normalizeKey(s string) string {
	s = strings.ReplaceAll(s, "{", "")
	s = strings.ReplaceAll(s, `"`, "")
	return strings.TrimSpace(s)
}

func normalizeValue(s string) string {
	s = strings.ReplaceAll(s, `"`, "")
	s = strings.ReplaceAll(s, "}", "")
	return strings.TrimSpace(s)
}

// parseNumber converts a value the way the records encode them: a
// literal '.' means floating point, anything else must be an integer.
func parseNumber(s string) (float64, bool) {
	if strings.Contains(s, ".") {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return float64(v), true
}
