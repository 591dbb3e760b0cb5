package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayuki/ionic-app-scripts/internal/logger"
)

func TestWordWrap_Empty(t *testing.T) {
	tests := []struct {
		name string
		args []any
	}{
		{
			name: "no values",
			args: nil,
		},
		{
			name: "empty string",
			args: []any{""},
		},
		{
			name: "whitespace only",
			args: []any{"   \t  \n  "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := logger.WordWrap(logger.Values(tt.args...))
			assert.Empty(t, lines)
		})
	}
}

func TestWordWrap_SingleLine(t *testing.T) {
	lines := logger.WordWrap(logger.Values("build dev started"))

	require.Len(t, lines, 1)
	assert.Equal(t, logger.Indent+"build dev started ", lines[0])
}

func TestWordWrap_CollapsesWhitespace(t *testing.T) {
	lines := logger.WordWrap(logger.Values("  build \t dev\nstarted  "))

	require.Len(t, lines, 1)
	assert.Equal(t, logger.Indent+"build dev started ", lines[0])
}

func TestWordWrap_BreaksAtMaxLineLength(t *testing.T) {
	// Eleven ten-character words cannot fit on one 120-column line.
	word := strings.Repeat("x", 10)
	var args []any
	for i := 0; i < 11; i++ {
		args = append(args, word)
	}

	lines := logger.WordWrap(logger.Values(args...))

	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), logger.MaxLineLength)
		assert.True(t, strings.HasPrefix(line, logger.Indent))
	}
}

func TestWordWrap_OversizedWordStandsAlone(t *testing.T) {
	huge := strings.Repeat("y", logger.MaxLineLength)

	lines := logger.WordWrap(logger.Values("before", huge, "after"))

	require.Len(t, lines, 3)
	assert.Equal(t, logger.Indent+"before ", lines[0])
	assert.Equal(t, logger.Indent+huge, lines[1])
	assert.Equal(t, logger.Indent+"after ", lines[2])
}

func TestWordWrap_PrimitiveValues(t *testing.T) {
	lines := logger.WordWrap(logger.Values(nil, true, 42, 3.5))

	require.Len(t, lines, 1)
	assert.Equal(t, logger.Indent+"null true 42 3.5 ", lines[0])
}

func TestWordWrap_DeferredStandsAlone(t *testing.T) {
	lines := logger.WordWrap(logger.Values(
		"details follow",
		func() string { return "first\nsecond" },
		"and then",
	))

	require.Len(t, lines, 3)
	assert.Equal(t, logger.Indent+"details follow ", lines[0])
	assert.Equal(t, "first\nsecond", lines[1])
	assert.Equal(t, logger.Indent+"and then ", lines[2])
}

func TestWordWrap_ErrorIsDeferred(t *testing.T) {
	lines := logger.WordWrap(logger.Values(errors.New("boom happened")))

	require.Len(t, lines, 1)
	assert.Equal(t, "boom happened", lines[0])
}

func TestWordWrap_CompositeIsDeferred(t *testing.T) {
	type payload struct {
		Name string
		Size int
	}

	lines := logger.WordWrap(logger.Values(payload{Name: "main.js", Size: 7}))

	require.Len(t, lines, 1)
	assert.Equal(t, "{Name:main.js Size:7}", lines[0])
}

func TestValues_NamedFunction(t *testing.T) {
	lines := logger.WordWrap(logger.Values(strings.ToUpper))

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "strings.ToUpper")
}
