// Package types holds the options document shared by the CLI surface and
// the engine façade.
//
// Options can arrive as a JSON document; it is validated against an
// embedded JSON Schema before use so malformed configuration fails with a
// precise path instead of silently defaulting.
package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// OptionsDocument is the JSON form of an engine run configuration
type OptionsDocument struct {
	CollectMetrics   bool     `json:"collect_metrics"`
	BuildTruthTables bool     `json:"build_truth_tables"`
	EmitAdvanced     bool     `json:"emit_advanced"`
	Formats          []string `json:"formats,omitempty"`
}

// optionsSchema is the contract for OptionsDocument. Unknown keys are
// rejected: a typo in a flag name should fail loudly.
const optionsSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "collect_metrics":    {"type": "boolean"},
    "build_truth_tables": {"type": "boolean"},
    "emit_advanced":      {"type": "boolean"},
    "formats": {
      "type": "array",
      "items": {
        "type": "string",
        "enum": ["dimacs", "blif", "verilog", "latex", "math", "csv"]
      },
      "uniqueItems": true
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func schema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("options.schema.json", strings.NewReader(optionsSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("options.schema.json")
	})
	return compiledSchema, schemaErr
}

// ParseOptions validates raw JSON against the options schema and decodes it
func ParseOptions(raw []byte) (*OptionsDocument, error) {
	sch, err := schema()
	if err != nil {
		return nil, fmt.Errorf("options schema compilation failed: %w", err)
	}

	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("options document is not valid JSON: %w", err)
	}
	if err := sch.Validate(value); err != nil {
		return nil, fmt.Errorf("options document rejected: %w", err)
	}

	var doc OptionsDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("options document decode failed: %w", err)
	}
	return &doc, nil
}
