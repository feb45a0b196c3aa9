package catalog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/ansuz/internal/storage"
)

func testCatalog(t *testing.T) (string, *Catalog) {
	t.Helper()
	root := t.TempDir()
	store, err := storage.NewFS(root)
	if err != nil {
		t.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return root, New(store, "SKILL.md", logger)
}

func writeSkill(t *testing.T, root, name, content string) {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNames(t *testing.T) {
	root, cat := testCatalog(t)
	writeSkill(t, root, "bknd-b", "b")
	writeSkill(t, root, "bknd-a", "a")

	names, err := cat.Names()
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	if len(names) != 2 || names[0] != "bknd-a" || names[1] != "bknd-b" {
		t.Errorf("names = %v", names)
	}
}

func TestLoad_SortedAndComplete(t *testing.T) {
	root, cat := testCatalog(t)
	writeSkill(t, root, "bknd-b", "content b")
	writeSkill(t, root, "bknd-a", "content a")

	skills, err := cat.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(skills) != 2 {
		t.Fatalf("len = %d, want 2", len(skills))
	}
	if skills[0].Name != "bknd-a" || skills[1].Name != "bknd-b" {
		t.Errorf("order = %s, %s", skills[0].Name, skills[1].Name)
	}
	if skills[0].Content != "content a" {
		t.Errorf("content = %q", skills[0].Content)
	}
	if skills[0].DocPath != "bknd-a/SKILL.md" {
		t.Errorf("doc path = %q", skills[0].DocPath)
	}
}

func TestLoad_SkipsDirectoryWithoutDocument(t *testing.T) {
	root, cat := testCatalog(t)
	writeSkill(t, root, "bknd-a", "a")
	if err := os.MkdirAll(filepath.Join(root, "bknd-empty"), 0o755); err != nil {
		t.Fatal(err)
	}

	skills, err := cat.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(skills) != 1 || skills[0].Name != "bknd-a" {
		t.Errorf("skills = %v", skills)
	}
}

func TestLoadPattern(t *testing.T) {
	root, cat := testCatalog(t)
	writeSkill(t, root, "bknd-a", "a")
	writeSkill(t, root, "bknd-b", "b")

	skills, err := cat.LoadPattern(context.Background(), "*/SKILL.md")
	if err != nil {
		t.Fatalf("LoadPattern: %v", err)
	}
	if len(skills) != 2 {
		t.Fatalf("len = %d, want 2", len(skills))
	}
	if skills[0].Name != "bknd-a" || skills[1].Name != "bknd-b" {
		t.Errorf("order = %s, %s", skills[0].Name, skills[1].Name)
	}
}

func TestGet(t *testing.T) {
	root, cat := testCatalog(t)
	writeSkill(t, root, "bknd-a", "hello")

	skill, err := cat.Get("bknd-a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if skill.Content != "hello" {
		t.Errorf("content = %q", skill.Content)
	}
	if _, err := cat.Get("bknd-missing"); err == nil {
		t.Error("expected error for a missing skill")
	}
}
