package bamqc

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/carbocation/pfx"
)

// DisplayIdentity reconstructs the human-meaningful sample name from
// record metadata: library, optional group id, the leading
// underscore-delimited token of the run name (the run date), and the
// lane zero-padded to width 3 behind an "L". Library, run name, and
// lane are mandatory; without them no identity exists.
func DisplayIdentity(md Metadata) (string, error) {
	if !md.Library.Valid || !md.RunName.Valid || !md.Lane.Valid {
		return "", fmt.Errorf("metadata incomplete: library, run name, and lane are required")
	}

	date := strings.SplitN(md.RunName.String, "_", 2)[0]

	// Run folders lead with a numeric yymmdd token; anything else should
	// at least look like a date.
	if _, err := strconv.Atoi(date); err != nil {
		if _, err := dateparse.ParseAny(date); err != nil {
			log.Printf("run name %q does not start with a date-like token", md.RunName.String)
		}
	}

	lane := md.Lane.String
	for len(lane) < 3 {
		lane = "0" + lane
	}

	parts := make([]string, 0, 4)
	parts = append(parts, md.Library.String)
	if md.GroupID.Valid {
		parts = append(parts, md.GroupID.String)
	}
	parts = append(parts, date, "L"+lane)

	return strings.Join(parts, "_"), nil
}

// Rekey produces a new cohort mapping keyed by display identity and
// records the identity on each sample. The raw mapping is never
// mutated. Samples whose metadata cannot build an identity are returned
// as per-sample errors and stay only in the raw view; they are reported,
// never silently dropped.
func Rekey(cohort Cohort) (Cohort, []error) {
	ids := make([]string, 0, len(cohort))
	for id := range cohort {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make(Cohort, len(cohort))
	var errs []error
	for _, id := range ids {
		s := cohort[id]
		display, err := DisplayIdentity(s.Meta)
		if err != nil {
			errs = append(errs, pfx.Err(fmt.Errorf("sample %s: %v", id, err)))
			continue
		}
		s.Display = display
		out[display] = s
	}

	return out, errs
}
