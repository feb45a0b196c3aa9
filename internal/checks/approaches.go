package checks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/starford/ansuz/internal/models"
)

// PatternList is an ordered list of indicator patterns evaluated in sequence;
// the first pattern that matches wins and its matched fragment is retained
// for display.
type PatternList []*regexp.Regexp

// FirstMatch returns the fragment matched by the first pattern in the list
// that matches content, and whether any pattern matched.
func (l PatternList) FirstMatch(content string) (string, bool) {
	for _, re := range l {
		if m := re.FindString(content); m != "" {
			return strings.TrimSpace(m), true
		}
	}
	return "", false
}

// CompilePatterns compiles expressions into a PatternList, preserving order.
func CompilePatterns(exprs []string) (PatternList, error) {
	out := make(PatternList, 0, len(exprs))
	for _, e := range exprs {
		re, err := regexp.Compile(e)
		if err != nil {
			return nil, fmt.Errorf("checks: invalid pattern %q: %w", e, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// MustPatterns compiles a list of expressions, panicking on an invalid one.
// Intended for the code-level default lists.
func MustPatterns(exprs []string) PatternList {
	out, err := CompilePatterns(exprs)
	if err != nil {
		panic(err)
	}
	return out
}

// ApproachPatterns bundles the three indicator lists of the dual-approach
// check. The lists are deliberately broad: many legitimate documents phrase
// these concepts differently, so precision is traded for recall.
type ApproachPatterns struct {
	UI     PatternList
	Code   PatternList
	Choice PatternList
}

// DefaultApproachPatterns returns the built-in indicator lists.
func DefaultApproachPatterns() *ApproachPatterns {
	return &ApproachPatterns{
		UI: MustPatterns([]string{
			`(?im)^#{2,3}[^\n]*(admin (ui|panel)|ui approach|via the ui|in the admin)`,
			`(?i)using the admin (ui|panel)`,
			`(?i)ui[- ]based approach`,
			`(?im)^#{2,3}[^\n]*dashboard`,
		}),
		Code: MustPatterns([]string{
			`(?im)^#{2,3}[^\n]*(code approach|programmatic|via code|in code)`,
			`(?i)code[- ]based approach`,
			`(?i)bknd\.config\.(ts|js)`,
			// A generic setup heading counts as a code indicator on purpose.
			`(?im)^#{2,3}[^\n]*setup`,
		}),
		Choice: MustPatterns([]string{
			`(?i)when to use (the )?(ui|code)`,
			`(?i)choosing (between|an?) approach`,
			`(?im)^#{2,3}[^\n]*(ui vs\.? code|which approach)`,
		}),
	}
}

// ApproachResult records the dual-approach findings for one in-scope skill.
type ApproachResult struct {
	Name         string `json:"name"`
	Missing      bool   `json:"missing,omitempty"` // no document found for the skill
	HasUI        bool   `json:"has_ui_section"`
	HasCode      bool   `json:"has_code_section"`
	HasChoice    bool   `json:"has_choice_guidance"`
	UIFragment   string `json:"ui_fragment,omitempty"`
	CodeFragment string `json:"code_fragment,omitempty"`
	ChoiceFrag   string `json:"choice_fragment,omitempty"`
}

// Passed reports whether both a UI and a code approach were found. The
// choice-guidance match is informational only.
func (r *ApproachResult) Passed() bool {
	return r.HasUI && r.HasCode
}

// Approaches evaluates the dual-approach check for every skill named in
// scope, in scope order (callers pass a sorted allow-list). Skills outside
// the allow-list are ignored; an in-scope skill with no loaded document is
// reported as missing and fails.
func Approaches(skills []*models.Skill, scope []string, pats *ApproachPatterns) []*ApproachResult {
	byName := make(map[string]*models.Skill, len(skills))
	for _, s := range skills {
		byName[s.Name] = s
	}

	out := make([]*ApproachResult, 0, len(scope))
	for _, name := range scope {
		res := &ApproachResult{Name: name}
		skill, ok := byName[name]
		if !ok {
			res.Missing = true
			out = append(out, res)
			continue
		}
		res.UIFragment, res.HasUI = pats.UI.FirstMatch(skill.Content)
		res.CodeFragment, res.HasCode = pats.Code.FirstMatch(skill.Content)
		res.ChoiceFrag, res.HasChoice = pats.Choice.FirstMatch(skill.Content)
		out = append(out, res)
	}
	return out
}
