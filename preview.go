// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FlowKit Authors
// Source: github.com/flowkit/blockdoc

package blockdoc

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// previewMarkdown converts generated pages to HTML. Pages are mostly pipe
// tables, so the table extension is required.
var previewMarkdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// PreviewHTML converts one generated markdown page into an HTML fragment for
// local inspection of the rendered reference.
func PreviewHTML(markdown []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := previewMarkdown.Convert(markdown, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderPreview, err)
	}

	return out.Bytes(), nil
}
