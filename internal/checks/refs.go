package checks

import (
	"regexp"
	"sort"

	"github.com/starford/ansuz/internal/models"
	"github.com/starford/ansuz/internal/parser"
)

// RelatedHeading is the level-2 heading that marks a skill's cross-reference
// section. Matching is case-insensitive.
const RelatedHeading = "Related Skills"

// RefsReport holds the two independent buckets of the cross-reference check:
// skills lacking a Related Skills section at all, and skills whose section
// cites identifiers that do not resolve to a known skill. Only the broken
// bucket fails the run.
type RefsReport struct {
	Total          int                 `json:"total"`
	MissingSection []string            `json:"missing_section,omitempty"`
	Broken         map[string][]string `json:"broken,omitempty"`
}

// Failed reports whether any broken reference was found. A skill merely
// lacking the section is reported but does not fail the run on its own.
func (r *RefsReport) Failed() bool {
	return len(r.Broken) > 0
}

// refPatterns matches a prefixed identifier in the three surface forms a
// Related Skills section uses: bold-wrapped, as the first token of a list
// item (optionally bold-wrapped), or inside square brackets.
func refPatterns(prefix string) []*regexp.Regexp {
	p := regexp.QuoteMeta(prefix)
	return []*regexp.Regexp{
		regexp.MustCompile(`\*\*(` + p + `[a-z0-9-]+)\*\*`),
		regexp.MustCompile(`(?m)^\s*[-*]\s+\**(` + p + `[a-z0-9-]+)`),
		regexp.MustCompile(`\[(` + p + `[a-z0-9-]+)\]`),
	}
}

// Refs verifies that every identifier cited in a skill's Related Skills
// section resolves to a known skill name. known is the full identifier set;
// prefix is the identifier naming-convention prefix (e.g. "bknd-").
func Refs(skills []*models.Skill, known []string, prefix string) *RefsReport {
	knownSet := make(map[string]struct{}, len(known))
	for _, n := range known {
		knownSet[n] = struct{}{}
	}
	patterns := refPatterns(prefix)

	report := &RefsReport{
		Total:  len(skills),
		Broken: map[string][]string{},
	}

	for _, skill := range skills {
		section, ok := parser.Section(skill.Content, RelatedHeading)
		if !ok {
			report.MissingSection = append(report.MissingSection, skill.Name)
			continue
		}

		cited := map[string]struct{}{}
		for _, re := range patterns {
			for _, m := range re.FindAllStringSubmatch(section, -1) {
				cited[m[1]] = struct{}{}
			}
		}

		var broken []string
		for id := range cited {
			if _, ok := knownSet[id]; !ok {
				broken = append(broken, id)
			}
		}
		if len(broken) > 0 {
			sort.Strings(broken)
			report.Broken[skill.Name] = broken
		}
	}

	sort.Strings(report.MissingSection)
	return report
}
