package records

import (
	"regexp"
	"strings"

	"sitetrack-backend/internal/domain"
)

var tenderIDLabel = regexp.MustCompile(`(?i)tender\s*id`)

// ParseTenderDetails splits the combined tender cell into reference, tender ID
// and EMD UTR. It is a best-effort heuristic over hand-typed text:
//   - the first line that is longer than 5 characters and mentions none of the
//     labels is the reference;
//   - a line mentioning "Tender ID" has the label stripped and becomes the ID;
//   - a line mentioning "UTR" contributes the text after its last ':'.
//
// When several lines qualify for the same field the first one wins.
func ParseTenderDetails(text string) domain.TenderInfo {
	var t domain.TenderInfo
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		hasID := strings.Contains(lower, "tender id")
		hasUTR := strings.Contains(lower, "utr")
		hasRef := strings.Contains(lower, "tender reference number")

		if t.Reference == "" && !hasID && !hasUTR && !hasRef && len(line) > 5 {
			t.Reference = line
		}
		if t.ID == "" && hasID {
			id := tenderIDLabel.ReplaceAllString(line, "")
			t.ID = strings.Trim(id, " :-#.\t")
		}
		if t.UTR == "" && hasUTR {
			parts := strings.Split(line, ":")
			t.UTR = strings.TrimSpace(parts[len(parts)-1])
		}
	}
	return t
}
