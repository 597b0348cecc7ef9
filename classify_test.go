// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FlowKit Authors
// Source: github.com/flowkit/blockdoc

package blockdoc

import (
	"io"
	"log/slog"
	"testing"
)

func TestClassifyPropertyPrimitiveTypeTable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		schemaType string
		want       string
	}{
		{"number", "float"},
		{"integer", "int"},
		{"boolean", "bool"},
		{"string", "str"},
		{"null", "None"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.schemaType, func(t *testing.T) {
			t.Parallel()

			field, _, ok := classifyProperty("value", map[string]any{"type": tc.schemaType})
			if !ok {
				t.Fatalf("primitive %q should classify", tc.schemaType)
			}

			if field.DisplayType != tc.want {
				t.Fatalf("display type = %q, want %q", field.DisplayType, tc.want)
			}

			if field.ReferencesBlock {
				t.Fatalf("primitive must not reference another block")
			}
		})
	}
}

func TestClassifyPropertySkipsDiscriminatorRegardlessOfSchema(t *testing.T) {
	t.Parallel()

	schemas := []map[string]any{
		{"type": "string"},
		{"items": map[string]any{"type": "string"}},
		{},
	}

	for _, schema := range schemas {
		if _, reason, ok := classifyProperty("type", schema); ok || reason != skipDiscriminator {
			t.Fatalf("property named \"type\" must always skip, got ok=%v reason=%q", ok, reason)
		}
	}
}

func TestClassifyPropertyDescriptionFallback(t *testing.T) {
	t.Parallel()

	field, _, ok := classifyProperty("name", map[string]any{"type": "string"})
	if !ok {
		t.Fatalf("expected classified field")
	}

	if field.Description != "not available" {
		t.Fatalf("description fallback = %q", field.Description)
	}

	field, _, _ = classifyProperty("name", map[string]any{
		"type":        "string",
		"description": "Unique name of step in workflows",
	})
	if field.Description != "Unique name of step in workflows" {
		t.Fatalf("declared description lost: %q", field.Description)
	}
}

func TestClassifyPropertySkipsArrayOfReferences(t *testing.T) {
	t.Parallel()

	_, reason, ok := classifyProperty("crops", map[string]any{
		"items": map[string]any{"reference": true},
	})
	if ok || reason != skipArrayReference {
		t.Fatalf("array of references must skip, got ok=%v reason=%q", ok, reason)
	}
}

func TestClassifyPropertySkipsUnionOfReferencesOnly(t *testing.T) {
	t.Parallel()

	_, reason, ok := classifyProperty("images", map[string]any{
		"anyOf": []any{
			map[string]any{"reference": true, "selected_element": "workflow_image"},
			map[string]any{"reference": true, "selected_element": "step_output"},
		},
	})
	if ok || reason != skipUnionReference {
		t.Fatalf("union of references must skip, got ok=%v reason=%q", ok, reason)
	}
}

func TestClassifyPropertySkipsBareReference(t *testing.T) {
	t.Parallel()

	_, reason, ok := classifyProperty("parent", map[string]any{"reference": true})
	if ok || reason != skipBareReference {
		t.Fatalf("bare reference must skip, got ok=%v reason=%q", ok, reason)
	}
}

func TestClassifyPropertySkipsUnknownShapeSilently(t *testing.T) {
	t.Parallel()

	_, reason, ok := classifyProperty("mystery", map[string]any{"format": "uri"})
	if ok || reason != skipUnknownShape {
		t.Fatalf("unknown shape must skip, got ok=%v reason=%q", ok, reason)
	}
}

func TestClassifyPropertyUnionWithReferenceBranchSetsFlag(t *testing.T) {
	t.Parallel()

	field, _, ok := classifyProperty("x_center", map[string]any{
		"anyOf": []any{
			map[string]any{"type": "number"},
			map[string]any{"reference": true},
		},
	})
	if !ok {
		t.Fatalf("expected classified field")
	}

	if field.DisplayType != "float" {
		t.Fatalf("display type = %q, want float", field.DisplayType)
	}

	if !field.ReferencesBlock {
		t.Fatalf("reference branch must set flag")
	}
}

func TestFormatInputFieldsKeepsDeclarationOrderAndCountsSkips(t *testing.T) {
	t.Parallel()

	manifest := map[string]any{
		"properties": map[string]any{
			"type":   map[string]any{"type": "string"},
			"name":   map[string]any{"type": "string"},
			"images": map[string]any{"reference": true},
			"width":  map[string]any{"type": "number"},
		},
	}

	fields, skipped := formatInputFields(manifest, []string{"type", "name", "images", "width"}, discardLogger())
	if skipped != 2 {
		t.Fatalf("skipped = %d, want 2", skipped)
	}

	if len(fields) != 2 || fields[0].Name != "name" || fields[1].Name != "width" {
		t.Fatalf("unexpected fields: %+v", fields)
	}
}

func TestFormatInputFieldsFallsBackToSortedOrder(t *testing.T) {
	t.Parallel()

	manifest := map[string]any{
		"properties": map[string]any{
			"zeta":  map[string]any{"type": "string"},
			"alpha": map[string]any{"type": "integer"},
		},
	}

	fields, _ := formatInputFields(manifest, nil, discardLogger())
	if len(fields) != 2 || fields[0].Name != "alpha" || fields[1].Name != "zeta" {
		t.Fatalf("expected deterministic sorted fallback, got %+v", fields)
	}
}

// discardLogger returns a logger dropping all records, for classifier tests.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
