package bamqc

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"sort"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
	"gopkg.in/guregu/null.v3"
)

// Derived metric names as they appear in the dumps.
const (
	keyMapPercent      = "map percent"
	keyOnTargetPercent = "on target percent"
	keyEstimatedYield  = "estimated yield"
	keyCoverage        = "coverage"
)

// DumpData flattens the raw cohort into the nested map schema of the
// multiqc_bamqc.json artifact: sample id to metric name to number, with
// nested derived, status, and metadata fields. Re-ingesting the dump as
// a plain mapping reproduces every numeric field computed during the
// run.
func DumpData(cohort Cohort) map[string]map[string]interface{} {
	out := make(map[string]map[string]interface{}, len(cohort))

	for id, s := range cohort {
		rec := make(map[string]interface{})

		for _, m := range Metrics() {
			if v := s.Metrics[m]; v.Valid {
				rec[m.Key()] = v.Float64
			}
		}

		derived := make(map[string]float64)
		putFloat(derived, keyMapPercent, s.Derived.MapPercent)
		putFloat(derived, keyOnTargetPercent, s.Derived.OnTargetPercent)
		putFloat(derived, keyEstimatedYield, s.Derived.EstimatedYield)
		putFloat(derived, keyCoverage, s.Derived.Coverage)
		if len(derived) > 0 {
			rec["derived"] = derived
		}

		status := make(map[string]string)
		for _, m := range Metrics() {
			if st := s.Status[m]; st != "" {
				status[m.Key()] = string(st)
			}
		}
		if len(status) > 0 {
			rec["status"] = status
		}

		if s.Display != "" {
			rec["display"] = s.Display
		}
		putString(rec, "library", s.Meta.Library)
		putString(rec, "run name", s.Meta.RunName)
		putString(rec, "barcode", s.Meta.Barcode)
		putString(rec, "group id", s.Meta.GroupID)
		putString(rec, "lane", s.Meta.Lane)

		out[id] = rec
	}

	return out
}

func putFloat(m map[string]float64, key string, v null.Float) {
	if v.Valid {
		m[key] = v.Float64
	}
}

func putString(m map[string]interface{}, key string, v null.String) {
	if v.Valid {
		m[key] = v.String
	}
}

// WriteJSON writes the nested dump for downstream machine consumption.
func WriteJSON(w io.Writer, cohort Cohort) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return pfx.Err(enc.Encode(DumpData(cohort)))
}

// Row is one line of the flat results table (multiqc_bamqc.txt).
type Row struct {
	Sample  string      `csv:"Sample"`
	Display null.String `csv:"Display"`
	Library null.String `csv:"Library"`
	RunName null.String `csv:"Run Name"`
	Barcode null.String `csv:"Barcode"`
	GroupID null.String `csv:"Group ID"`
	Lane    null.String `csv:"Lane"`

	ReadsOnTarget      null.Float `csv:"reads on target"`
	ReadsPerStartPoint null.Float `csv:"reads per start point"`
	TotalReads         null.Float `csv:"total reads"`
	PairedReads        null.Float `csv:"paired reads"`
	MappedReads        null.Float `csv:"mapped reads"`
	AlignedBases       null.Float `csv:"aligned bases"`
	SoftClipBases      null.Float `csv:"soft clip bases"`
	InsertMean         null.Float `csv:"insert mean"`
	TargetSize         null.Float `csv:"target size"`

	MapPercent      null.Float `csv:"map percent"`
	OnTargetPercent null.Float `csv:"on target percent"`
	EstimatedYield  null.Float `csv:"estimated yield"`
	Coverage        null.Float `csv:"coverage"`

	ReadsOnTargetStatus      Status `csv:"reads on target status"`
	ReadsPerStartPointStatus Status `csv:"reads per start point status"`
	TotalReadsStatus         Status `csv:"total reads status"`
	PairedReadsStatus        Status `csv:"paired reads status"`
	MappedReadsStatus        Status `csv:"mapped reads status"`
	AlignedBasesStatus       Status `csv:"aligned bases status"`
	SoftClipBasesStatus      Status `csv:"soft clip bases status"`
	InsertMeanStatus         Status `csv:"insert mean status"`
	TargetSizeStatus         Status `csv:"target size status"`
}

// Rows flattens the raw cohort into table rows sorted by sample id.
func Rows(cohort Cohort) []Row {
	ids := make([]string, 0, len(cohort))
	for id := range cohort {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([]Row, 0, len(cohort))
	for _, id := range ids {
		s := cohort[id]
		row := Row{
			Sample:  s.ID,
			Library: s.Meta.Library,
			RunName: s.Meta.RunName,
			Barcode: s.Meta.Barcode,
			GroupID: s.Meta.GroupID,
			Lane:    s.Meta.Lane,

			ReadsOnTarget:      s.Metrics[ReadsOnTarget],
			ReadsPerStartPoint: s.Metrics[ReadsPerStartPoint],
			TotalReads:         s.Metrics[TotalReads],
			PairedReads:        s.Metrics[PairedReads],
			MappedReads:        s.Metrics[MappedReads],
			AlignedBases:       s.Metrics[AlignedBases],
			SoftClipBases:      s.Metrics[SoftClipBases],
			InsertMean:         s.Metrics[InsertMean],
			TargetSize:         s.Metrics[TargetSize],

			MapPercent:      s.Derived.MapPercent,
			OnTargetPercent: s.Derived.OnTargetPercent,
			EstimatedYield:  s.Derived.EstimatedYield,
			Coverage:        s.Derived.Coverage,

			ReadsOnTargetStatus:      s.Status[ReadsOnTarget],
			ReadsPerStartPointStatus: s.Status[ReadsPerStartPoint],
			TotalReadsStatus:         s.Status[TotalReads],
			PairedReadsStatus:        s.Status[PairedReads],
			MappedReadsStatus:        s.Status[MappedReads],
			AlignedBasesStatus:       s.Status[AlignedBases],
			SoftClipBasesStatus:      s.Status[SoftClipBases],
			InsertMeanStatus:         s.Status[InsertMean],
			TargetSizeStatus:         s.Status[TargetSize],
		}
		if s.Display != "" {
			row.Display = null.StringFrom(s.Display)
		}
		rows = append(rows, row)
	}

	return rows
}

// WriteTSV writes the flat per-sample results table, tab-delimited.
func WriteTSV(w io.Writer, cohort Cohort) error {
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		cw := csv.NewWriter(out)
		cw.Comma = '\t'
		return gocsv.NewSafeCSVWriter(cw)
	})

	rows := Rows(cohort)
	return pfx.Err(gocsv.Marshal(&rows, w))
}
