package logger_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hayuki/ionic-app-scripts/internal/core/domain"
	"github.com/hayuki/ionic-app-scripts/internal/logger"
)

func TestFormatFileName(t *testing.T) {
	tests := []struct {
		name     string
		rootDir  string
		fileName string
		want     string
	}{
		{
			name:     "strips root prefix",
			rootDir:  "/home/user/myapp",
			fileName: "/home/user/myapp/src/app.ts",
			want:     "src/app.ts",
		},
		{
			name:     "unrelated path kept",
			rootDir:  "/home/user/myapp",
			fileName: "src/pages/home.ts",
			want:     "src/pages/home.ts",
		},
		{
			name:     "root itself",
			rootDir:  "/home/user/myapp",
			fileName: "/home/user/myapp",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatFileName(tt.rootDir, tt.fileName))
		})
	}
}

func TestFormatFileName_TruncatesLongPaths(t *testing.T) {
	long := "src/" + strings.Repeat("deeply/", 20) + "component.ts"
	got := logger.FormatFileName("/root", long)

	assert.True(t, strings.HasPrefix(got, "..."))
	assert.Equal(t, 83, len(got))
	assert.True(t, strings.HasSuffix(got, "component.ts"))
}

func TestFormatHeader_FromDiagnostic(t *testing.T) {
	d := domain.Diagnostic{
		Level:       "error",
		Type:        "TypeScript",
		Header:      "TypeScript Error",
		MessageText: "cannot find name 'foo'",
		AbsFileName: "/app/src/pages/home.ts",
		RelFileName: "src/pages/home.ts",
		Lines: []domain.PrintLine{
			{LineIndex: 4, LineNumber: 5, Text: "  foo();", ErrorCharStart: 2, ErrorLength: 3},
			{LineIndex: 8, LineNumber: 9, Text: "}", ErrorCharStart: 0, ErrorLength: 1},
		},
	}

	first := d.Lines[0].LineNumber
	last := d.Lines[len(d.Lines)-1].LineNumber
	header := logger.FormatHeader(d.Header, d.AbsFileName, "/app", first, last)

	assert.Equal(t, "TypeScript Error: src/pages/home.ts, lines: 5 - 9", header)
}

func TestFormatHeader(t *testing.T) {
	tests := []struct {
		name      string
		startLine int
		endLine   int
		want      string
	}{
		{
			name:      "line range",
			startLine: 5,
			endLine:   9,
			want:      "ERROR: src/app.ts, lines: 5 - 9",
		},
		{
			name:      "single line",
			startLine: 5,
			endLine:   5,
			want:      "ERROR: src/app.ts, line: 5",
		},
		{
			name:      "end before start",
			startLine: 5,
			endLine:   2,
			want:      "ERROR: src/app.ts, line: 5",
		},
		{
			name:      "no position",
			startLine: 0,
			endLine:   0,
			want:      "ERROR: src/app.ts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := logger.FormatHeader("ERROR", "/app/src/app.ts", "/app", tt.startLine, tt.endLine)
			assert.Equal(t, tt.want, got)
		})
	}
}
