package main

import (
	"encoding/json"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"

	multiqc "github.com/evelii/MultiQC"
	"github.com/evelii/MultiQC/bamqc"
)

// findReports walks the input directory for BamQC output files and
// returns the raw blob per cleaned sample name. When two files clean to
// the same sample name, the later one wins.
func findReports(inputDir string) (map[string]string, error) {
	records := make(map[string]string)

	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isReportFile(d.Name()) {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		name := multiqc.CleanSampleName(d.Name())
		if _, dup := records[name]; dup {
			log.Printf("Duplicate sample name found! Overwriting: %s", name)
		}
		records[name] = string(raw)
		return nil
	})
	if err != nil {
		return nil, pfx.Err(err)
	}

	return records, nil
}

func isReportFile(name string) bool {
	return strings.Contains(name, ".BamQC") || strings.Contains(name, ".annotated")
}

// ignoreFilter adapts the sample-name exclusion patterns into the
// cohort filter the pipeline applies after parsing.
func ignoreFilter(patterns []string) func(bamqc.Cohort) bamqc.Cohort {
	if len(patterns) == 0 {
		return nil
	}

	return func(cohort bamqc.Cohort) bamqc.Cohort {
		out := make(bamqc.Cohort, len(cohort))
		for id, s := range cohort {
			if multiqc.Ignored(id, patterns) {
				log.Printf("Ignoring sample %s", id)
				continue
			}
			out[id] = s
		}
		return out
	}
}

func writeOutputs(outDir string, report *bamqc.Report) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return pfx.Err(err)
	}

	txt, err := os.Create(filepath.Join(outDir, "multiqc_bamqc.txt"))
	if err != nil {
		return pfx.Err(err)
	}
	defer txt.Close()
	if err := bamqc.WriteTSV(txt, report.Raw); err != nil {
		return err
	}

	jsonFile, err := os.Create(filepath.Join(outDir, "multiqc_bamqc.json"))
	if err != nil {
		return pfx.Err(err)
	}
	defer jsonFile.Close()
	if err := bamqc.WriteJSON(jsonFile, report.Raw); err != nil {
		return err
	}

	summaryFile, err := os.Create(filepath.Join(outDir, "multiqc_bamqc_summary.json"))
	if err != nil {
		return pfx.Err(err)
	}
	defer summaryFile.Close()

	enc := json.NewEncoder(summaryFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report.Summary); err != nil {
		return pfx.Err(err)
	}

	log.Println("Wrote report data to", outDir)
	return nil
}
