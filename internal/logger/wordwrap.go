package logger

import "strings"

const (
	// Indent is the fixed left margin applied to every wrapped line.
	Indent = "            "
	// MaxLineLength is the maximum width of a wrapped line, indent
	// included.
	MaxLineLength = 120
)

// WordWrap lays out the given values as indented lines no longer than
// MaxLineLength columns. An input producing no words yields no lines.
func WordWrap(values []Value) []string {
	return wrap(Indent, MaxLineLength, values)
}

func wrap(indent string, maxLen int, values []Value) []string {
	var lines []string
	line := indent

	flush := func() {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
		line = indent
	}

	for _, v := range values {
		if v.deferred() {
			// Deferred renderings stand alone, never wrapped.
			flush()
			lines = append(lines, v.render())
			continue
		}

		for _, word := range v.words() {
			switch {
			case len(indent)+len(word) > maxLen:
				// Too long to fit even on an empty line; give it its own.
				flush()
				lines = append(lines, indent+word)
			case len(line)+len(word) > maxLen:
				lines = append(lines, line)
				line = indent + word + " "
			default:
				line += word + " "
			}
		}
	}

	flush()
	return lines
}
