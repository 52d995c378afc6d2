package catalog

import (
	"fmt"
	"strings"

	"residence-facilities/internal/domain"
)

// Severity ranks a catalog issue.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Issue is one finding reported by Check. The catalog data is never rewritten
// to resolve it.
type Issue struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Subject  string   `json:"subject" yaml:"subject"`
	Message  string   `json:"message" yaml:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Subject, i.Message)
}

// Check inspects a category and facility catalog for inconsistencies such as
// facilities tagged with a category id that no control offers.
func Check(cats []domain.Category, items []domain.Facility) []Issue {
	var issues []Issue

	ids := make(map[string]bool, len(cats))
	folded := make(map[string]string, len(cats))
	hasAll := false
	for _, c := range cats {
		if c.IsAll() {
			hasAll = true
		}
		if ids[c.ID] {
			issues = append(issues, Issue{SeverityWarning, "category " + c.ID, "duplicate category id"})
			continue
		}
		ids[c.ID] = true
		folded[strings.ToLower(c.ID)] = c.ID
	}
	if !hasAll {
		issues = append(issues, Issue{SeverityWarning, "categories", fmt.Sprintf("missing reserved %q category", domain.CategoryAll)})
	}

	titles := make(map[string]bool, len(items))
	for _, f := range items {
		subject := "facility " + f.Title
		if titles[f.Title] {
			issues = append(issues, Issue{SeverityWarning, subject, "duplicate title"})
		}
		titles[f.Title] = true

		switch {
		case f.Category == domain.CategoryAll:
			issues = append(issues, Issue{SeverityWarning, subject, fmt.Sprintf("tagged with reserved category %q", domain.CategoryAll)})
		case ids[f.Category]:
		case folded[strings.ToLower(f.Category)] != "":
			issues = append(issues, Issue{SeverityWarning, subject, fmt.Sprintf(
				"category %q differs only in case from %q and is unreachable by filter", f.Category, folded[strings.ToLower(f.Category)])})
		default:
			issues = append(issues, Issue{SeverityWarning, subject, fmt.Sprintf("unknown category %q", f.Category)})
		}

		for i, feat := range f.Features {
			if strings.TrimSpace(feat) == "" {
				issues = append(issues, Issue{SeverityInfo, subject, fmt.Sprintf("feature %d is blank", i)})
			}
		}
	}
	return issues
}

// HasWarnings reports whether any issue is at warning severity.
func HasWarnings(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityWarning {
			return true
		}
	}
	return false
}
