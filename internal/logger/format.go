package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/hayuki/ionic-app-scripts/internal/ui/style"
)

// maxFileNameLength bounds file references in single-line diagnostic
// headers.
const maxFileNameLength = 80

// FormatFileName shortens a file path for display: the project root prefix
// and one leading separator are stripped, and anything longer than 80
// characters keeps only its trailing 80, marked with an ellipsis.
func FormatFileName(rootDir, fileName string) string {
	name := strings.TrimPrefix(fileName, rootDir)
	name = strings.TrimPrefix(name, string(os.PathSeparator))
	name = strings.TrimPrefix(name, "/")
	if len(name) > maxFileNameLength {
		name = style.Ellipsis + name[len(name)-maxFileNameLength:]
	}
	return name
}

// FormatHeader builds a one-line diagnostic header such as
// "ERROR: src/app.ts, lines: 5 - 9". Line references are only appended
// for positive start lines; a range is used when endLine is strictly
// greater than startLine.
func FormatHeader(kind, fileName, rootDir string, startLine, endLine int) string {
	header := fmt.Sprintf("%s: %s", kind, FormatFileName(rootDir, fileName))
	switch {
	case startLine > 0 && endLine > startLine:
		header += fmt.Sprintf(", lines: %d - %d", startLine, endLine)
	case startLine > 0:
		header += fmt.Sprintf(", line: %d", startLine)
	}
	return header
}
