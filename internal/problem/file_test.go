package problem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidOlmos03/graphyc/internal/model"
)

// writeFile writes a problem file into a fresh temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoad_YAML verifies loading the YAML format.
func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "problem.yaml", `
constraints:
  - "x + y <= 4"
  - "x <= 3"
objective: "max 3x + 2y"
`)

	def, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []model.Constraint{
		{A: 1, B: 1, Rel: model.LessEq, C: 4},
		{A: 1, B: 0, Rel: model.LessEq, C: 3},
	}, def.Constraints)
	require.NotNil(t, def.Objective)
	assert.Equal(t, model.Objective{P: 3, Q: 2, Direction: model.Maximize}, *def.Objective)
}

// TestLoad_JSONC verifies loading the JSON format, including comments,
// which are stripped before parsing.
func TestLoad_JSONC(t *testing.T) {
	path := writeFile(t, "problem.jsonc", `{
  // production capacity
  "constraints": ["x + y <= 4", "x <= 3"],
  "objective": "max 3x + 2y" // profit
}`)

	def, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, def.Constraints, 2)
	require.NotNil(t, def.Objective)
	assert.Equal(t, model.Maximize, def.Objective.Direction)
}

// TestLoad_FormatsAgree verifies that the same problem written in YAML and
// JSON loads to identical definitions.
func TestLoad_FormatsAgree(t *testing.T) {
	yamlPath := writeFile(t, "p.yml", "constraints: [\"2x + 3y <= 12\"]\nobjective: \"min x + y\"\n")
	jsonPath := writeFile(t, "p.json", `{"constraints": ["2x + 3y <= 12"], "objective": "min x + y"}`)

	fromYAML, err := Load(yamlPath)
	require.NoError(t, err)
	fromJSON, err := Load(jsonPath)
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromJSON)
}

// TestLoad_NoObjective verifies that the objective is optional.
func TestLoad_NoObjective(t *testing.T) {
	path := writeFile(t, "p.yaml", "constraints:\n  - \"x <= 5\"\n")

	def, err := Load(path)
	require.NoError(t, err)
	assert.Nil(t, def.Objective)
	assert.Len(t, def.Constraints, 1)
}

// TestLoad_Errors verifies the failure modes: missing file, unsupported
// extension, empty constraint list, malformed document, and a constraint
// expression that does not parse.
func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, "p.toml", "constraints = []")
		_, err := Load(path)
		assert.ErrorContains(t, err, "unsupported problem file extension")
	})

	t.Run("no constraints", func(t *testing.T) {
		path := writeFile(t, "p.yaml", "constraints: []\n")
		_, err := Load(path)
		assert.ErrorContains(t, err, "no constraints")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, "p.yaml", "constraints: [\"x <= 1\"\n")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("bad expression", func(t *testing.T) {
		path := writeFile(t, "p.yaml", "constraints:\n  - \"x plus y\"\n")
		_, err := Load(path)
		assert.Error(t, err)
	})
}
