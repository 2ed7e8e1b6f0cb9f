package problem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/DavidOlmos03/graphyc/internal/model"
	"github.com/DavidOlmos03/graphyc/internal/parse"
)

// rawProblem is the on-disk schema shared by the YAML and JSON formats.
// Expressions are kept textual in the file and parsed afterwards, so the
// file format stays readable and format-agnostic.
type rawProblem struct {
	Constraints []string `yaml:"constraints" json:"constraints"`
	Objective   string   `yaml:"objective,omitempty" json:"objective,omitempty"`
}

// Definition is a fully parsed problem: the validated constraint set and
// the optional objective.
type Definition struct {
	Constraints []model.Constraint
	Objective   *model.Objective
}

// Load reads and parses a problem-definition file. The format is chosen by
// extension; anything other than .yaml/.yml/.json/.jsonc is rejected.
func Load(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("reading problem file: %w", err)
	}

	var raw rawProblem
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Definition{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".json", ".jsonc":
		// Problem files may carry comments; strip them to plain JSON first.
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return Definition{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return Definition{}, fmt.Errorf("unsupported problem file extension %q (want .yaml, .yml, .json or .jsonc)", ext)
	}

	return fromRaw(raw)
}

// fromRaw parses the textual expressions of a raw problem into model values.
func fromRaw(raw rawProblem) (Definition, error) {
	if len(raw.Constraints) == 0 {
		return Definition{}, fmt.Errorf("problem file defines no constraints")
	}

	def := Definition{Constraints: make([]model.Constraint, 0, len(raw.Constraints))}
	for _, expr := range raw.Constraints {
		k, err := parse.Constraint(expr)
		if err != nil {
			return Definition{}, err
		}
		def.Constraints = append(def.Constraints, k)
	}

	if raw.Objective != "" {
		obj, err := parse.Objective(raw.Objective)
		if err != nil {
			return Definition{}, err
		}
		def.Objective = &obj
	}
	return def, nil
}
