package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/hayuki/ionic-app-scripts/internal/ui/output"
	"github.com/hayuki/ionic-app-scripts/internal/ui/style"
)

func TestColorProfile(t *testing.T) {
	// NO_COLOR forces the Ascii profile.
	t.Setenv("NO_COLOR", "1")
	p := output.ColorProfile()
	assert.Equal(t, termenv.Ascii, p, "NO_COLOR should force Ascii profile")

	// Without NO_COLOR the profile depends on the environment; just verify
	// a valid profile comes back.
	t.Setenv("NO_COLOR", "")
	p = output.ColorProfile()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii, "should return a valid profile")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)
	assert.NotNil(t, out)

	_, _ = out.WriteString("test")
	assert.Equal(t, "test", buf.String())
}

func TestNew_Nil(t *testing.T) {
	// Should default to stderr, we just check it doesn't panic.
	out := output.New(nil)
	assert.NotNil(t, out)
}

func TestForeground_AsciiPassthrough(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	out := output.New(&buf)

	assert.Equal(t, "text", output.Foreground(out, style.Red)("text"))
	assert.Equal(t, "text", output.Faint(out)("text"))
}
