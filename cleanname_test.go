package multiqc

import "testing"

func TestCleanSampleName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Sample1.bam.BamQC.json", "Sample1"},
		{"Sample1.annotated.bam.BamQC.json", "Sample1"},
		{"Sample1.annotated", "Sample1"},
		{"/some/dir/Sample1.bam.BamQC.json", "Sample1"},
		{"Sample1", "Sample1"},
	}

	for _, c := range cases {
		if got := CleanSampleName(c.in); got != c.want {
			t.Errorf("CleanSampleName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
