// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FlowKit Authors
// Source: github.com/flowkit/blockdoc

package blockdoc

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderInputsTable(t *testing.T) {
	t.Parallel()

	got := renderInputsTable([]FormattedField{
		{Name: "name", DisplayType: "str", Description: "Unique name of step in workflows"},
		{Name: "x_center", DisplayType: "float", Description: "Center X of static crop", ReferencesBlock: true},
	})

	want := strings.Join([]string{
		"| **Name** | **Type** | **Description** | **Parameterizable** |",
		"|:---------|:---------|:----------------|:--------------------|",
		"| `name` | `str` | Unique name of step in workflows. | false |",
		"| `x_center` | `float` | Center X of static crop. | true |",
	}, "\n")

	if got != want {
		t.Fatalf("inputs table mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderInputsTableEmptyFieldsKeepsHeader(t *testing.T) {
	t.Parallel()

	got := renderInputsTable(nil)
	if !strings.HasPrefix(got, "| **Name** | **Type** |") {
		t.Fatalf("header missing: %q", got)
	}

	if strings.Count(got, "\n") != 1 {
		t.Fatalf("expected header-only table, got:\n%s", got)
	}
}

func TestRenderOutputsTableSingleKind(t *testing.T) {
	t.Parallel()

	got, err := renderOutputsTable([]OutputSpec{
		{Name: "crops", Kind: []KindDescriptor{
			{Name: "Batch[image]", Description: "Image in workflows"},
		}},
	})
	if err != nil {
		t.Fatalf("renderOutputsTable: %v", err)
	}

	assertContains(t, got, "| `crops` | `Batch[image]` | Image in workflows. |")
}

func TestRenderOutputsTableUnionOfKinds(t *testing.T) {
	t.Parallel()

	got, err := renderOutputsTable([]OutputSpec{
		{Name: "predictions", Kind: []KindDescriptor{
			{Name: "Batch[object_detection_prediction]", Description: "Detections"},
			{Name: "Batch[classification_prediction]", Description: "Classes"},
		}},
	})
	if err != nil {
		t.Fatalf("renderOutputsTable: %v", err)
	}

	assertContains(t, got, "`Union[Batch[object_detection_prediction], Batch[classification_prediction]]`")
	assertContains(t, got, "Detections if `Batch[object_detection_prediction]` or Classes if `Batch[classification_prediction]`. |")
}

func TestRenderOutputsTableEmptyKindFails(t *testing.T) {
	t.Parallel()

	_, err := renderOutputsTable([]OutputSpec{{Name: "broken"}})
	if !errors.Is(err, ErrEmptyOutputKind) {
		t.Fatalf("expected ErrEmptyOutputKind, got: %v", err)
	}
}

// assertContains fails the test when haystack does not contain needle.
func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\noutput:\n%s", needle, haystack)
	}
}

// assertNotContains fails the test when haystack contains needle.
func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("expected output to not contain %q\noutput:\n%s", needle, haystack)
	}
}
