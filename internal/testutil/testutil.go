// Package testutil provides shared test helpers for materializing temporary
// skill trees.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/ansuz/internal/parser"
	"github.com/starford/ansuz/internal/storage"
)

// TestTree creates a temporary skills root with a storage provider over it.
func TestTree(t *testing.T) (string, *storage.FS) {
	t.Helper()
	root := t.TempDir()
	store, err := storage.NewFS(root)
	if err != nil {
		t.Fatal(err)
	}
	return root, store
}

// WriteSkill materializes a skill directory holding a SKILL.md with content.
func WriteSkill(t *testing.T, root, name, content string) {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// Doc renders a frontmatter record followed by a Markdown body.
func Doc(rec parser.Record, body string) string {
	return parser.Render(rec) + body
}
