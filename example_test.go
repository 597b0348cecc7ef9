// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FlowKit Authors
// Source: github.com/flowkit/blockdoc

package blockdoc

import (
	"encoding/json"
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestGenerateStepExampleJSON(t *testing.T) {
	t.Parallel()

	block := exampleManifestFixture()
	data, err := GenerateStepExample(block.Manifest, block.PropertyOrder, ExampleFormatJSON)
	if err != nil {
		t.Fatalf("GenerateStepExample: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal generated json: %v", err)
	}

	if got["type"] != "RelativeStaticCrop" {
		t.Fatalf("const value lost: %v", got["type"])
	}

	if got["name"] != "<string>" {
		t.Fatalf("scalar placeholder = %v", got["name"])
	}

	if got["x_center"] != 0.3 {
		t.Fatalf("declared example lost: %v", got["x_center"])
	}

	if got["images"] != exampleSelectorPlaceholder {
		t.Fatalf("selector placeholder = %v", got["images"])
	}
}

func TestGenerateStepExampleYAML(t *testing.T) {
	t.Parallel()

	block := exampleManifestFixture()
	data, err := GenerateStepExample(block.Manifest, block.PropertyOrder, ExampleFormatYAML)
	if err != nil {
		t.Fatalf("GenerateStepExample: %v", err)
	}

	var got map[string]any
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal generated yaml: %v", err)
	}

	if got["type"] != "RelativeStaticCrop" {
		t.Fatalf("const value lost: %v", got["type"])
	}
}

func TestGenerateStepExampleUnknownFormat(t *testing.T) {
	t.Parallel()

	block := exampleManifestFixture()
	_, err := GenerateStepExample(block.Manifest, block.PropertyOrder, "toml")
	if !errors.Is(err, ErrUnknownExampleFormat) {
		t.Fatalf("expected ErrUnknownExampleFormat, got: %v", err)
	}
}

func TestExamplePropertyValueArrayShapes(t *testing.T) {
	t.Parallel()

	got := examplePropertyValue(map[string]any{
		"items": map[string]any{"type": "integer"},
	})
	want := []any{0}
	if len(got.([]any)) != 1 || got.([]any)[0] != want[0] {
		t.Fatalf("array example = %v", got)
	}

	got = examplePropertyValue(map[string]any{
		"items": map[string]any{"reference": true},
	})
	if got.([]any)[0] != exampleSelectorPlaceholder {
		t.Fatalf("reference array example = %v", got)
	}
}

// exampleManifestFixture returns a crop-style manifest for example generation tests.
func exampleManifestFixture() BlockDescriptor {
	return BlockDescriptor{
		Manifest: map[string]any{
			"properties": map[string]any{
				"type": map[string]any{"const": "RelativeStaticCrop"},
				"name": map[string]any{"type": "string"},
				"x_center": map[string]any{
					"examples": []any{0.3, "$inputs.center_x"},
					"anyOf": []any{
						map[string]any{"type": "number"},
						map[string]any{"reference": true},
					},
				},
				"images": map[string]any{
					"anyOf": []any{
						map[string]any{"reference": true},
					},
				},
			},
		},
		PropertyOrder: []string{"type", "name", "x_center", "images"},
	}
}
