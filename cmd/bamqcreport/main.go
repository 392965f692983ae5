// bamqcreport ingests per-sample BamQC output, flags cohort outliers,
// and writes the machine-readable report dumps.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/evelii/MultiQC/bamqc"
)

func main() {
	var inputDir, outDir, ignore string

	flag.StringVar(&inputDir, "input", "", "Directory containing BamQC output files (*.bam.BamQC.json; .annotated names are cleaned)")
	flag.StringVar(&outDir, "outdir", ".", "Directory where multiqc_bamqc.txt, multiqc_bamqc.json, and multiqc_bamqc_summary.json are written")
	flag.StringVar(&ignore, "ignore", "", "Comma-separated sample name patterns to exclude (glob or exact)")

	flag.Parse()

	if inputDir == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	log.Println("Launched bamqcreport")

	if err := runAll(inputDir, outDir, splitPatterns(ignore)); err != nil {
		log.Fatalln(err)
	}
}

func splitPatterns(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func runAll(inputDir, outDir string, ignore []string) error {
	records, err := findReports(inputDir)
	if err != nil {
		return err
	}
	log.Println("Loaded", len(records), "report files from", inputDir)

	report, err := bamqc.Run(records, ignoreFilter(ignore))
	if err != nil {
		return err
	}

	for _, m := range bamqc.Metrics() {
		st := report.Stats.Stats(m)
		if st.LowerBoundNegative {
			log.Printf("metric %q: mean - 2 SD is negative, low outliers cannot be flagged", m.Key())
		}
		sum := report.Summary[m.Key()]
		log.Printf("%s: n=%d mean=%.4g stdev=%.4g median=%.4g min=%.4g max=%.4g",
			m.Key(), sum.N, sum.Mean, sum.StdDev, sum.Median, sum.Min, sum.Max)
	}

	for _, sec := range report.Sections {
		log.Printf("section %s: %d pass, %d fail", sec.ID, len(sec.Pass), len(sec.Fail))
	}

	return writeOutputs(outDir, report)
}
