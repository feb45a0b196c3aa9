// Package checks implements the rule evaluators for skill documents:
// frontmatter metadata, related-skills cross-references, and dual-approach
// section coverage.
package checks

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/starford/ansuz/internal/models"
	"github.com/starford/ansuz/internal/parser"
)

const (
	maxNameLen        = 64
	maxDescriptionLen = 1024
	triggerPhrase     = "use when"
)

// nameRe allows a single lowercase alphanumeric character, or a lowercase
// alphanumeric/hyphen string with no leading or trailing hyphen.
var nameRe = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// Metadata validates a skill document's frontmatter. A document without a
// frontmatter block gets a single structural error and no field checks; a
// document with a block accumulates every field error and warning that
// applies.
func Metadata(skill *models.Skill) *models.Result {
	res := &models.Result{Path: skill.DocPath}

	rec, ok := parser.ExtractFrontmatter(skill.Content)
	if !ok {
		res.AddError("Missing frontmatter")
		return res
	}

	checkName(res, rec, skill.Name)
	checkDescription(res, rec)
	return res
}

func checkName(res *models.Result, rec parser.Record, dirName string) {
	name, ok := rec["name"]
	if !ok {
		res.AddError("Missing required field: name")
		return
	}
	if n := utf8.RuneCountInString(name); n < 1 || n > maxNameLen {
		res.AddError(fmt.Sprintf("name must be 1-%d characters, got %d", maxNameLen, n))
	}
	if !nameRe.MatchString(name) {
		res.AddError(fmt.Sprintf("invalid name %q: must be lowercase letters, digits, and hyphens, starting and ending with a letter or digit", name))
	}
	if name != dirName {
		res.AddWarning(fmt.Sprintf("name %q does not match directory name %q", name, dirName))
	}
}

func checkDescription(res *models.Result, rec parser.Record) {
	desc, ok := rec["description"]
	if !ok {
		res.AddError("Missing required field: description")
		return
	}
	if strings.TrimSpace(desc) == "" {
		res.AddError("description must not be empty")
	}
	if n := utf8.RuneCountInString(desc); n > maxDescriptionLen {
		res.AddError(fmt.Sprintf("description must be at most %d characters, got %d", maxDescriptionLen, n))
	}
	if !strings.Contains(strings.ToLower(desc), triggerPhrase) {
		res.AddWarning(`description should state when to use the skill (include "Use when ...")`)
	}
}
