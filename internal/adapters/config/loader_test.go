package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayuki/ionic-app-scripts/internal/adapters/config"
	"github.com/hayuki/ionic-app-scripts/internal/core/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0o600))
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
version: "1"
debug: true
phases:
  - name: transpile
    cmd: ["tsc", "--project", "."]
    env:
      NODE_ENV: production
  - name: sass
    cmd: ["sass", "src:www"]
    workingDir: app
watch:
  paths: ["src", "assets"]
  debounceMs: 500
`)

	project, err := config.NewLoader().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, project.Root)
	assert.True(t, project.Debug)

	require.Len(t, project.Phases, 2)
	assert.Equal(t, "transpile", project.Phases[0].Name)
	assert.Equal(t, []string{"tsc", "--project", "."}, project.Phases[0].Command)
	assert.Equal(t, "production", project.Phases[0].Env["NODE_ENV"])
	assert.Equal(t, filepath.Join(dir, "app"), project.Phases[1].WorkingDir,
		"relative working directories resolve against the project root")

	assert.Equal(t, []string{"src", "assets"}, project.Watch.Paths)
	assert.Equal(t, 500*time.Millisecond, project.Watch.Debounce)
}

func TestLoader_Load_WalksUpward(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
phases:
  - name: build
    cmd: ["make"]
`)

	nested := filepath.Join(root, "src", "pages")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	project, err := config.NewLoader().Load(nested)
	require.NoError(t, err)
	assert.Equal(t, root, project.Root, "the config location defines the project root")
}

func TestLoader_Load_NotFound(t *testing.T) {
	_, err := config.NewLoader().Load(t.TempDir())

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}

func TestLoader_Load_ParseFailure(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "phases: [broken")

	_, err := config.NewLoader().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
}

func TestLoader_Load_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "no phases",
			content: "version: \"1\"\n",
			wantErr: domain.ErrNoPhases,
		},
		{
			name: "duplicate phase name",
			content: `
phases:
  - name: build
    cmd: ["make"]
  - name: build
    cmd: ["make", "again"]
`,
			wantErr: domain.ErrDuplicatePhaseName,
		},
		{
			name: "empty phase command",
			content: `
phases:
  - name: build
    cmd: []
`,
			wantErr: domain.ErrEmptyPhaseCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			// zerr wraps sentinels by message, so match on the text.
			_, err := config.NewLoader().Load(dir)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestLoader_Load_DefaultDebounce(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
phases:
  - name: build
    cmd: ["make"]
watch:
  paths: ["src"]
`)

	project, err := config.NewLoader().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 200*time.Millisecond, project.Watch.Debounce)
}
