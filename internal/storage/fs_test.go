package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/starford/ansuz/internal/apperr"
)

func tempTree(t *testing.T) (string, *FS) {
	t.Helper()
	dir := t.TempDir()
	fs, err := NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return dir, fs
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNewFS_MissingRoot(t *testing.T) {
	if _, err := NewFS(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for a nonexistent root")
	}
}

func TestGlob_SortedMatches(t *testing.T) {
	root, s := tempTree(t)
	writeFile(t, root, "bknd-b/SKILL.md", "b")
	writeFile(t, root, "bknd-a/SKILL.md", "a")
	writeFile(t, root, "bknd-a/notes.md", "not matched")

	got, err := s.Glob("*/SKILL.md")
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	want := []string{"bknd-a/SKILL.md", "bknd-b/SKILL.md"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Glob = %v, want %v", got, want)
	}
}

func TestGlob_ZeroMatchesIsNotAnError(t *testing.T) {
	_, s := tempTree(t)
	got, err := s.Glob("*/SKILL.md")
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Glob = %v, want none", got)
	}
}

func TestRead(t *testing.T) {
	root, s := tempTree(t)
	writeFile(t, root, "bknd-a/SKILL.md", "# Hello\n")
	got, err := s.Read("bknd-a/SKILL.md")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "# Hello\n" {
		t.Errorf("content mismatch: got %q", got)
	}
}

func TestRead_NotFound(t *testing.T) {
	_, s := tempTree(t)
	_, err := s.Read("missing/SKILL.md")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want wrapped apperr.ErrNotFound", err)
	}
}

func TestRead_RejectsEscapingPaths(t *testing.T) {
	_, s := tempTree(t)
	if _, err := s.Read("../outside.md"); err == nil {
		t.Error("expected traversal to be rejected")
	}
	if _, err := s.Read("/etc/hosts"); err == nil {
		t.Error("expected absolute path to be rejected")
	}
}

func TestDirs(t *testing.T) {
	root, s := tempTree(t)
	writeFile(t, root, "bknd-b/SKILL.md", "b")
	writeFile(t, root, "bknd-a/SKILL.md", "a")
	writeFile(t, root, "stray.md", "not a directory")

	got, err := s.Dirs("")
	if err != nil {
		t.Fatalf("Dirs: %v", err)
	}
	want := []string{"bknd-a", "bknd-b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Dirs = %v, want %v", got, want)
	}
}
