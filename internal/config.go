package internal

import (
	"fmt"
	"log/slog"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App        ApplicationConfig `yaml:"app"`
	Skills     SkillsConfig      `yaml:"skills"`
	Refs       RefsConfig        `yaml:"refs"`
	Approaches ApproachesConfig  `yaml:"approaches"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Skills.Validate(); err != nil {
		return err
	}
	if err := c.Refs.Validate(); err != nil {
		return err
	}
	return c.Approaches.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// SkillsConfig locates the skills tree: a root directory with one
// subdirectory per skill, each holding one primary document.
type SkillsConfig struct {
	Root string `yaml:"root"`
	Doc  string `yaml:"doc"`
}

// Validate validates the skills configuration.
func (c *SkillsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
		validation.Field(&c.Doc, validation.Required),
	)
}

var prefixRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*-$`)

// RefsConfig configures the cross-reference check.
type RefsConfig struct {
	// Prefix is the identifier naming-convention prefix, e.g. "bknd-".
	Prefix string `yaml:"prefix"`
}

// Validate validates the refs configuration.
func (c *RefsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Prefix, validation.Required,
			validation.Match(prefixRe).Error("must be lowercase segments ending in a hyphen, e.g. \"bknd-\"")),
	)
}

// ApproachesConfig configures the dual-approach check. Scope is the
// allow-list of in-scope skills; the pattern lists, when set, replace the
// built-in indicator lists.
type ApproachesConfig struct {
	Scope          []string `yaml:"scope"`
	UIPatterns     []string `yaml:"ui_patterns"`
	CodePatterns   []string `yaml:"code_patterns"`
	ChoicePatterns []string `yaml:"choice_patterns"`
}

// Validate validates the approaches configuration, including that every
// configured pattern compiles.
func (c *ApproachesConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Scope, validation.Required),
	); err != nil {
		return err
	}
	for _, list := range [][]string{c.UIPatterns, c.CodePatterns, c.ChoicePatterns} {
		for _, expr := range list {
			if _, err := regexp.Compile(expr); err != nil {
				return fmt.Errorf("approaches: invalid pattern %q: %w", expr, err)
			}
		}
	}
	return nil
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Skills: SkillsConfig{
			Root: "skills",
			Doc:  "SKILL.md",
		},
		Refs: RefsConfig{
			Prefix: "bknd-",
		},
		Approaches: ApproachesConfig{
			Scope: []string{
				"bknd-auth-setup",
				"bknd-auth-social",
				"bknd-create-entity",
				"bknd-deploy",
				"bknd-entity-relations",
				"bknd-functions",
				"bknd-media-uploads",
				"bknd-permissions",
				"bknd-query-data",
				"bknd-seed-data",
			},
		},
	}
}
