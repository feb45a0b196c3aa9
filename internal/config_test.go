package internal

import (
	"strings"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Skills.Root != "skills" || cfg.Skills.Doc != "SKILL.md" {
		t.Errorf("skills defaults = %q, %q", cfg.Skills.Root, cfg.Skills.Doc)
	}
	if cfg.Refs.Prefix != "bknd-" {
		t.Errorf("prefix default = %q", cfg.Refs.Prefix)
	}
	if len(cfg.Approaches.Scope) == 0 {
		t.Error("default scope must not be empty")
	}
}

func TestSkillsConfig_RequiresRootAndDoc(t *testing.T) {
	cfg := SkillsConfig{Root: "", Doc: "SKILL.md"}
	if err := cfg.Validate(); err == nil {
		t.Error("empty root should fail validation")
	}
	cfg = SkillsConfig{Root: "skills", Doc: ""}
	if err := cfg.Validate(); err == nil {
		t.Error("empty doc name should fail validation")
	}
}

func TestRefsConfig_PrefixShape(t *testing.T) {
	for _, prefix := range []string{"bknd-", "my-framework-"} {
		cfg := RefsConfig{Prefix: prefix}
		if err := cfg.Validate(); err != nil {
			t.Errorf("%q should validate: %v", prefix, err)
		}
	}
	for _, prefix := range []string{"", "bknd", "Bknd-", "-bknd-"} {
		cfg := RefsConfig{Prefix: prefix}
		if err := cfg.Validate(); err == nil {
			t.Errorf("%q should fail validation", prefix)
		}
	}
}

func TestApproachesConfig_InvalidPatternRejected(t *testing.T) {
	cfg := ApproachesConfig{
		Scope:      []string{"bknd-deploy"},
		UIPatterns: []string{`([unclosed`},
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("invalid pattern should fail validation")
	}
	if !strings.Contains(err.Error(), "invalid pattern") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestApproachesConfig_EmptyScopeRejected(t *testing.T) {
	cfg := ApproachesConfig{}
	if err := cfg.Validate(); err == nil {
		t.Error("empty scope should fail validation")
	}
}
