package parser

import "strings"

// Section returns the block of content that starts at the first
// case-insensitive occurrence of the literal level-2 heading marker
// ("## " + heading) and ends just before the next level-2 heading or at the
// end of the document. The boolean reports whether the marker was found.
func Section(content, heading string) (string, bool) {
	marker := strings.ToLower("## " + heading)
	lower := strings.ToLower(content)

	start := strings.Index(lower, marker)
	if start < 0 {
		return "", false
	}

	// The block runs up to the next level-2 heading after the marker.
	rest := lower[start+len(marker):]
	idx := strings.Index(rest, "\n## ")
	if idx < 0 {
		return content[start:], true
	}
	end := start + len(marker) + idx + 1
	return content[start:end], true
}
