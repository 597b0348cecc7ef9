// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FlowKit Authors
// Source: github.com/flowkit/blockdoc

package blockdoc

import "testing"

func TestPreviewHTMLRendersHeadingsAndTables(t *testing.T) {
	t.Parallel()

	result, err := Generate([]BlockDescriptor{cropBlockDescriptor()}, Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	html, err := PreviewHTML([]byte(result.Documents[0].Markdown))
	if err != nil {
		t.Fatalf("PreviewHTML: %v", err)
	}

	got := string(html)
	assertContains(t, got, "<h1")
	assertContains(t, got, "RelativeStaticCropBlock")
	assertContains(t, got, "<table>")
	assertContains(t, got, "<code>x_center</code>")
}

func TestPreviewHTMLEmptyInput(t *testing.T) {
	t.Parallel()

	html, err := PreviewHTML(nil)
	if err != nil {
		t.Fatalf("PreviewHTML: %v", err)
	}

	if len(html) != 0 {
		t.Fatalf("empty markdown should render empty html, got %q", string(html))
	}
}
