// Package multiqc holds the report-side helpers shared by QC modules:
// recovering a sample name from an input filename, and excluding samples
// by name pattern.
package multiqc

import (
	"path/filepath"
	"strings"
)

// CleanExts are the filename fragments removed when deriving a sample
// name from a report file. Order matters: compound suffixes go first.
var CleanExts = []string{
	".bam.BamQC.json",
	".BamQC.json",
	".annotated",
	".bam",
	".json",
}

// CleanSampleName derives the sample name from a report filename by
// removing every occurrence of the known extensions.
func CleanSampleName(filename string) string {
	s := filepath.Base(filename)
	for _, ext := range CleanExts {
		s = strings.ReplaceAll(s, ext, "")
	}
	return s
}
