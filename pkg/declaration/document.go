// Package declaration patches Gradle dependency declarations so that unused
// transitive modules are excluded, leaving every other line untouched.
package declaration

import "strings"

// Document is a declaration file as an ordered sequence of lines.
type Document struct {
	Lines []string
}

// Parse splits content on "\n". A trailing newline yields a final empty
// line so that String restores the content byte for byte.
func Parse(content string) Document {
	return Document{Lines: strings.Split(content, "\n")}
}

// String joins the lines with "\n".
func (d Document) String() string {
	return strings.Join(d.Lines, "\n")
}
