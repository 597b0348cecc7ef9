// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FlowKit Authors
// Source: github.com/flowkit/blockdoc

/*
Package blockdoc renders markdown reference documentation for workflow blocks.

A workflow block describes itself with a JSON-Schema-like manifest (its user
configuration) and a list of declared outputs. The package turns a listing of
such block descriptors into one markdown reference page per block plus a set of
single-line HTML cards spliced into a marker-delimited region of an existing
index document.

Generate pages and cards without touching the filesystem:

	listing, err := blockdoc.LoadRegistryFile("registry.yaml")
	if err != nil {
		return err
	}

	result, err := blockdoc.Generate(listing, blockdoc.Options{})
	if err != nil {
		return err
	}

	for _, doc := range result.Documents {
		fmt.Println(doc.FileSlug, len(doc.Markdown))
	}

Run the full pipeline, writing per-block pages and updating the index:

	err := blockdoc.Run(listing, blockdoc.Options{
		DocsDir:   "docs/workflows/blocks",
		IndexFile: "docs/workflows/blocks.md",
	})
	if err != nil {
		return err
	}

Splice card lines into an index document held in memory:

	updated, err := blockdoc.SpliceIndex(indexLines, result.CardLines, blockdoc.DefaultSentinelToken)
	if err != nil {
		return err
	}

	fmt.Println(strings.Join(updated, "\n"))

Render an HTML preview of one generated page:

	html, err := blockdoc.PreviewHTML([]byte(result.Documents[0].Markdown))
	if err != nil {
		return err
	}

	fmt.Println(string(html))

Generate a sample step configuration from a block manifest:

	payload, err := blockdoc.GenerateStepExample(listing[0].Manifest, listing[0].PropertyOrder, blockdoc.ExampleFormatYAML)
	if err != nil {
		return err
	}

	fmt.Println(string(payload))
*/
package blockdoc
