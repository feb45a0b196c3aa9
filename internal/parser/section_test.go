package parser

import (
	"strings"
	"testing"
)

func TestSection_Basic(t *testing.T) {
	doc := "# Title\n\n## Related Skills\n\n- **bknd-deploy**\n\n## Next Heading\n\nmore\n"
	sec, ok := Section(doc, "Related Skills")
	if !ok {
		t.Fatal("expected section to be found")
	}
	if !strings.Contains(sec, "bknd-deploy") {
		t.Errorf("section missing list item: %q", sec)
	}
	if strings.Contains(sec, "Next Heading") {
		t.Errorf("section should end before the next level-2 heading: %q", sec)
	}
}

func TestSection_CaseInsensitive(t *testing.T) {
	doc := "## related skills\n\n- **bknd-deploy**\n"
	if _, ok := Section(doc, "Related Skills"); !ok {
		t.Error("heading match should be case-insensitive")
	}
}

func TestSection_RunsToEndOfDocument(t *testing.T) {
	doc := "## Related Skills\n\n- **bknd-deploy**\n\n### Subheading stays inside\n"
	sec, ok := Section(doc, "Related Skills")
	if !ok {
		t.Fatal("expected section")
	}
	if !strings.Contains(sec, "Subheading stays inside") {
		t.Errorf("level-3 headings should not terminate the section: %q", sec)
	}
}

func TestSection_NotFound(t *testing.T) {
	if _, ok := Section("# Title\n\n## Other\n", "Related Skills"); ok {
		t.Error("expected section to be absent")
	}
}
