package classify

import (
	"regexp"
	"strings"

	"github.com/campuscard/recap/internal/model"
)

// stallPattern matches floor-dash-stall tokens like "2F-5" or "3f-12",
// word-bounded so digits inside longer tokens don't count.
var stallPattern = regexp.MustCompile(`(?i)\b[1-9]f-[0-9]+\b`)

// Detector decides whether an expense row is dining spend. The floor-stall
// pattern is a heuristic for cafeteria stalls; stalls that don't follow
// the naming convention go on the allow-list (dining.allow_list in
// recap.yaml), matched case-insensitively as substrings of the service
// field.
type Detector struct {
	allow []string
}

// NewDetector builds a Detector from an allow-list of stall names. Blank
// entries are dropped.
func NewDetector(allowList []string) *Detector {
	allow := make([]string, 0, len(allowList))
	for _, name := range allowList {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			allow = append(allow, name)
		}
	}
	return &Detector{allow: allow}
}

// IsDining reports whether a row is cafeteria spend. Only expense rows
// qualify; the stall pattern is tested against the raw service field.
func (d *Detector) IsDining(row model.Row) bool {
	if Classify(row) != model.CategoryExpense {
		return false
	}
	if stallPattern.MatchString(row.Service) {
		return true
	}

	service := strings.ToLower(row.Service)
	for _, name := range d.allow {
		if strings.Contains(service, name) {
			return true
		}
	}
	return false
}
