package multiqc

import "testing"

func TestIgnored(t *testing.T) {
	patterns := []string{"control_*", "blank"}

	cases := []struct {
		name string
		want bool
	}{
		{"control_1", true},
		{"control_lane_8", true},
		{"blank", true},
		{"sample_1", false},
		{"controls", false},
	}

	for _, c := range cases {
		if got := Ignored(c.name, patterns); got != c.want {
			t.Errorf("Ignored(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestIgnoredEmptyPatterns(t *testing.T) {
	if Ignored("sample", nil) {
		t.Error("no patterns should ignore nothing")
	}
	if Ignored("sample", []string{""}) {
		t.Error("an empty pattern should ignore nothing")
	}
}
