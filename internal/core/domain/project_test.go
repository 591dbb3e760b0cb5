package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayuki/ionic-app-scripts/internal/core/domain"
)

func TestProject_Phase(t *testing.T) {
	project := &domain.Project{
		Phases: []domain.Phase{
			{Name: "transpile", Command: []string{"tsc"}},
			{Name: "sass", Command: []string{"sass"}},
		},
	}

	phase := project.Phase("sass")
	require.NotNil(t, phase)
	assert.Equal(t, []string{"sass"}, phase.Command)
	assert.Same(t, &project.Phases[1], phase, "lookup returns the stored phase, not a copy")

	assert.Nil(t, project.Phase("bundle"))
}
