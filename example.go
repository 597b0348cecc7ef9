// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FlowKit Authors
// Source: github.com/flowkit/blockdoc

package blockdoc

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ExampleFormat selects sample step configuration encoding.
type ExampleFormat string

const (
	// ExampleFormatJSON encodes the sample step configuration as indented JSON.
	ExampleFormatJSON ExampleFormat = "json"
	// ExampleFormatYAML encodes the sample step configuration as YAML.
	ExampleFormatYAML ExampleFormat = "yaml"
)

// exampleScalarPlaceholders substitute values for primitive properties without
// declared examples or defaults.
var exampleScalarPlaceholders = map[string]any{
	"string":  "<string>",
	"integer": 0,
	"number":  0,
	"boolean": true,
	"null":    nil,
}

// exampleSelectorPlaceholder stands in for values wired from another block's output.
const exampleSelectorPlaceholder = "$steps.<step_name>.<output_name>"

// GenerateStepExample builds a sample step configuration payload from a block
// manifest. Declared const, enum, examples and default values win over
// shape-based placeholders. Keys are encoded deterministically.
func GenerateStepExample(manifest map[string]any, propertyOrder []string, format ExampleFormat) ([]byte, error) {
	properties := asMap(manifest["properties"])
	payload := make(map[string]any, len(properties))

	for _, name := range normalizePropertyOrder(propertyOrder, properties) {
		payload[name] = examplePropertyValue(asMap(properties[name]))
	}

	switch format {
	case ExampleFormatJSON:
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeExampleJSON, err)
		}

		return append(data, '\n'), nil

	case ExampleFormatYAML:
		data, err := yaml.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeExampleYAML, err)
		}

		return data, nil

	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownExampleFormat, format)
	}
}

// examplePropertyValue picks a sample value for one manifest property schema.
func examplePropertyValue(schema map[string]any) any {
	if value, ok := schema["const"]; ok {
		return value
	}

	if values := asSlice(schema["enum"]); len(values) > 0 {
		return values[0]
	}

	if values := asSlice(schema["examples"]); len(values) > 0 {
		return values[0]
	}

	if value, ok := schema["default"]; ok {
		return value
	}

	switch shapeOf(schema) {
	case shapePrimitive:
		return exampleScalarPlaceholders[asString(schema["type"])]

	case shapeArray:
		items := asMap(schema["items"])
		if len(items) == 0 {
			return []any{}
		}

		if hasReferenceMarker(items) {
			return []any{exampleSelectorPlaceholder}
		}

		return []any{examplePropertyValue(items)}

	case shapeUnion:
		for _, branch := range unionBranches(schema) {
			if hasReferenceMarker(branch) {
				continue
			}

			return examplePropertyValue(branch)
		}

		return exampleSelectorPlaceholder

	case shapeReference:
		return exampleSelectorPlaceholder

	default:
		return nil
	}
}
