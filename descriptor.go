// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FlowKit Authors
// Source: github.com/flowkit/blockdoc

package blockdoc

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultSentinelToken delimits the autogenerated card region in the index document.
	DefaultSentinelToken = "<!--- AUTOGENERATED_BLOCKS_LIST -->"
	// DefaultDocsDir stores one generated markdown page per block.
	DefaultDocsDir = "docs/workflows/blocks"
	// DefaultIndexFile is the hand-edited document carrying the card region.
	DefaultIndexFile = "docs/workflows/blocks.md"
)

// BlockDescriptor is one self-describing workflow block from the registry
// listing. Descriptors are read-only input; the pipeline never mutates them.
type BlockDescriptor struct {
	// FullyQualifiedClassName is the dotted implementation class path.
	FullyQualifiedClassName string `yaml:"fully_qualified_class_name"`
	// Manifest is the JSON-Schema-like user configuration mapping.
	Manifest map[string]any `yaml:"block_manifest"`
	// Outputs lists declared block outputs in manifest order.
	Outputs []OutputSpec `yaml:"outputs_manifest"`
	// PropertyOrder records manifest property declaration order. Go maps do not
	// keep it, so the registry loader extracts it from the document nodes.
	PropertyOrder []string `yaml:"-"`
}

// OutputSpec is one declared block output.
type OutputSpec struct {
	// Name is the output binding name.
	Name string `yaml:"name"`
	// Kind lists semantic type tags the output value may carry; never empty.
	Kind []KindDescriptor `yaml:"kind"`
}

// KindDescriptor is one named semantic type tag with a human description.
type KindDescriptor struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// GeneratedDocument is one rendered per-block markdown page.
type GeneratedDocument struct {
	// FileSlug is the snake_case page file name without extension.
	FileSlug string
	// Markdown is the complete page body.
	Markdown string
}

// GenerateResult carries everything one pipeline pass produced.
type GenerateResult struct {
	// Documents holds per-block pages in listing order.
	Documents []GeneratedDocument
	// CardLines holds one single-line HTML card per block in listing order.
	CardLines []string
	// SkippedProperties counts manifest properties dropped from tables.
	SkippedProperties int
}

// Options configures documentation generation.
type Options struct {
	// DocsDir is the per-block page output directory; created when absent.
	DocsDir string
	// IndexFile is the index document carrying the sentinel-delimited region.
	IndexFile string
	// SentinelToken overrides the default region marker token.
	SentinelToken string
	// WrapWidth wraps plain description paragraphs when positive; zero keeps
	// description text verbatim.
	WrapWidth int
	// PageTemplateText overrides the built-in page template when non-empty.
	PageTemplateText string
	// Logger receives skip diagnostics; nil discards them.
	Logger *slog.Logger
}

// normalize applies option defaults without mutating the caller's value.
func (opt Options) normalize() Options {
	if opt.DocsDir == "" {
		opt.DocsDir = DefaultDocsDir
	}

	if opt.IndexFile == "" {
		opt.IndexFile = DefaultIndexFile
	}

	if opt.SentinelToken == "" {
		opt.SentinelToken = DefaultSentinelToken
	}

	if opt.WrapWidth < 0 {
		opt.WrapWidth = 0
	}

	if opt.Logger == nil {
		opt.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return opt
}

// registryDocument is the on-disk shape of a block registry listing.
type registryDocument struct {
	Blocks []BlockDescriptor `yaml:"blocks"`
}

// LoadRegistryFile reads a block registry listing from a YAML or JSON file.
func LoadRegistryFile(path string) ([]BlockDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadRegistryFile, err)
	}

	return ParseRegistry(data)
}

// ParseRegistry decodes a block registry listing. JSON input works as well
// since YAML is a superset. Manifest property declaration order is preserved
// through node-level decoding.
func ParseRegistry(data []byte) ([]BlockDescriptor, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeRegistry, err)
	}

	var doc registryDocument
	if err := root.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeRegistry, err)
	}

	for i, blockNode := range registryBlockNodes(&root) {
		if i >= len(doc.Blocks) {
			break
		}

		propertiesNode := mappingValue(mappingValue(blockNode, "block_manifest"), "properties")
		doc.Blocks[i].PropertyOrder = mappingKeys(propertiesNode)
	}

	return doc.Blocks, nil
}

// registryBlockNodes returns the sequence item nodes under the "blocks" key.
func registryBlockNodes(root *yaml.Node) []*yaml.Node {
	node := root
	if node != nil && node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	blocks := mappingValue(node, "blocks")
	if blocks == nil || blocks.Kind != yaml.SequenceNode {
		return nil
	}

	return blocks.Content
}

// mappingValue returns the value node for one key of a mapping node.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}

	return nil
}

// mappingKeys returns mapping keys in document declaration order.
func mappingKeys(node *yaml.Node) []string {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}

	out := make([]string, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		out = append(out, node.Content[i].Value)
	}

	return out
}
