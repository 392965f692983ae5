package bamqc

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestDumpRoundTrip(t *testing.T) {
	records := map[string]string{
		"a": testRecord(100, "LIB1", "1"),
		"b": testRecord(110, "LIB2", "2"),
	}
	report, err := Run(records, nil)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, report.Raw); err != nil {
		t.Fatal(err)
	}

	var reread map[string]map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &reread); err != nil {
		t.Fatal(err)
	}

	for id, s := range report.Raw {
		rec, ok := reread[id]
		if !ok {
			t.Fatalf("sample %s missing from the dump", id)
		}

		for _, m := range Metrics() {
			v := s.Metrics[m]
			if !v.Valid {
				continue
			}
			got, ok := rec[m.Key()].(float64)
			if !ok || got != v.Float64 {
				t.Errorf("sample %s %q = %v, want %v", id, m.Key(), rec[m.Key()], v.Float64)
			}
		}

		derived, ok := rec["derived"].(map[string]interface{})
		if !ok {
			t.Fatalf("sample %s has no derived block", id)
		}
		if got := derived["map percent"].(float64); got != s.Derived.MapPercent.Float64 {
			t.Errorf("sample %s map percent = %v, want %v", id, got, s.Derived.MapPercent.Float64)
		}

		status, ok := rec["status"].(map[string]interface{})
		if !ok {
			t.Fatalf("sample %s has no status block", id)
		}
		if got := status["total reads"]; got != "pass" {
			t.Errorf("sample %s total reads status = %v, want pass", id, got)
		}

		if got := rec["display"]; got != s.Display {
			t.Errorf("sample %s display = %v, want %v", id, got, s.Display)
		}
	}
}

func TestDumpIntegersStayIntegers(t *testing.T) {
	cohort := Cohort{"a": ParseRecord(`{"total reads": 123, "insert mean": 12.5}`, "a")}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, cohort); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, `"total reads": 123`) {
		t.Errorf("integer metric not serialized as an integer:\n%s", out)
	}
	if !strings.Contains(out, `"insert mean": 12.5`) {
		t.Errorf("float metric lost its fraction:\n%s", out)
	}
}

func TestWriteTSV(t *testing.T) {
	records := map[string]string{
		"b": testRecord(110, "LIB2", "2"),
		"a": testRecord(100, "LIB1", "1"),
	}
	report, err := Run(records, nil)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteTSV(&buf, report.Raw); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows", len(lines))
	}

	header := strings.Split(lines[0], "\t")
	if header[0] != "Sample" {
		t.Errorf("first column = %q, want Sample", header[0])
	}
	found := false
	for _, h := range header {
		if h == "reads on target" {
			found = true
		}
	}
	if !found {
		t.Error("header is missing the reads on target column")
	}

	// Rows are sorted by sample id.
	if !strings.HasPrefix(lines[1], "a\t") || !strings.HasPrefix(lines[2], "b\t") {
		t.Errorf("rows out of order:\n%s", buf.String())
	}
}
