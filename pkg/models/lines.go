package models

import "strings"

// Lines stores multi-line text as one string per source line. Exported
// documents keep text this way so that edits produce line-scoped diffs in
// version control. Splitting and joining are exact inverses for any text
// without a trailing newline.
type Lines []string

// LinesFromText splits text on newline boundaries. Empty text yields nil so
// the field is omitted from the serialized document.
func LinesFromText(text string) Lines {
	if text == "" {
		return nil
	}
	return Lines(strings.Split(text, "\n"))
}

// Join reconstructs the displayed text.
func (l Lines) Join() string {
	return strings.Join(l, "\n")
}

// IsEmpty reports whether there is no content at all.
func (l Lines) IsEmpty() bool {
	return len(l) == 0
}
