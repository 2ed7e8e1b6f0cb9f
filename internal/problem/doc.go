// Package problem loads problem definitions from files for the CLI.
//
// Two formats are supported, selected by file extension:
//
//   - .yaml / .yml — parsed with gopkg.in/yaml.v3
//   - .json / .jsonc — JSON with comments, stripped with
//     github.com/tidwall/jsonc before parsing with encoding/json
//
// Both decode to the same schema: a list of constraint expressions and an
// optional objective expression, in the notation of the parse package:
//
//	constraints:
//	  - "x + y <= 4"
//	  - "x <= 3"
//	objective: "max 3x + 2y"
//
// The loader is pure input handling — it never writes files and the tool
// keeps no state of its own between runs.
package problem
