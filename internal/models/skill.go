// Package models defines the domain types for Ansuz.
package models

// Skill represents one skill directory and its primary document.
type Skill struct {
	// Name is the directory name, which doubles as the skill identifier.
	Name string `json:"name"`
	// DocPath is the path of the primary document relative to the skills root.
	DocPath string `json:"doc_path"`
	// Content is the raw text of the primary document.
	Content string `json:"-"`
}

// Result accumulates the findings for a single document. Errors make the
// document (and the run) fail; warnings are advisory and never affect the
// exit code.
type Result struct {
	Path     string   `json:"path"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// AddError appends an error to the result.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// AddWarning appends an advisory warning to the result.
func (r *Result) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Failed reports whether the document accumulated any errors.
func (r *Result) Failed() bool {
	return len(r.Errors) > 0
}
