package suggest

import "strings"

// ParseTagList splits comma-separated user input. Blank input yields the
// default tag.
func ParseTagList(input string) []string {
	var tags []string
	for _, part := range strings.Split(input, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}

	if len(tags) == 0 {
		return []string{DefaultTag}
	}
	return tags
}
