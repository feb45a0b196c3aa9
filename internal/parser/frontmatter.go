// Package parser extracts frontmatter records and heading sections from
// Markdown skill documents.
package parser

import (
	"sort"
	"strings"
)

const delimiter = "---"

// Record holds the key/value pairs of a frontmatter block. Keys are unique;
// when a key appears twice inside one block the last occurrence wins.
type Record map[string]string

// ExtractFrontmatter parses the leading frontmatter block of a document.
// The block must start on the very first line with a line that is exactly
// "---" and is closed by the next such line. The boolean reports whether a
// block was found at all: an absent block is distinct from an empty one.
//
// Inside the block each line is split at its first colon; the trimmed text
// before the colon is the key, the trimmed text after it is the value. Lines
// without a colon, and lines whose colon is the first character, are ignored.
// A value wrapped in one matching pair of double or single quotes is
// unquoted.
func ExtractFrontmatter(content string) (Record, bool) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != delimiter {
		return nil, false
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") == delimiter {
			end = i
			break
		}
	}
	if end < 0 {
		return nil, false
	}

	rec := Record{}
	for _, line := range lines[1:end] {
		line = strings.TrimRight(line, "\r")
		idx := strings.Index(line, ":")
		if idx <= 0 {
			// No colon, or an empty key.
			continue
		}
		key := strings.TrimSpace(line[:idx])
		if key == "" {
			continue
		}
		rec[key] = unquote(strings.TrimSpace(line[idx+1:]))
	}
	return rec, true
}

// unquote strips one matching pair of surrounding quote characters.
func unquote(v string) string {
	if len(v) >= 2 {
		first, last := v[0], v[len(v)-1]
		if first == last && (first == '"' || first == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}

// Render is the inverse of ExtractFrontmatter for records whose values do not
// themselves contain "---" lines: it produces a delimited block that extracts
// back to the same record. Keys are emitted in sorted order.
func Render(rec Record) string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(delimiter)
	b.WriteString("\n")
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(rec[k])
		b.WriteString("\n")
	}
	b.WriteString(delimiter)
	b.WriteString("\n")
	return b.String()
}
