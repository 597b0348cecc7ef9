// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FlowKit Authors
// Source: github.com/flowkit/blockdoc

package blockdoc

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Generate renders pages and card lines for every descriptor in listing order.
// It performs no file I/O and is deterministic for a fixed listing.
func Generate(listing []BlockDescriptor, opt Options) (GenerateResult, error) {
	opt = opt.normalize()

	pageTemplate, err := resolvePageTemplate(opt)
	if err != nil {
		return GenerateResult{}, err
	}

	cardTemplate, err := resolveCardTemplate()
	if err != nil {
		return GenerateResult{}, err
	}

	result := GenerateResult{
		Documents: make([]GeneratedDocument, 0, len(listing)),
		CardLines: make([]string, 0, len(listing)),
	}

	for _, block := range listing {
		className := classNameOf(block.FullyQualifiedClassName)
		fields, skipped := formatInputFields(block.Manifest, block.PropertyOrder, opt.Logger)
		result.SkippedProperties += skipped

		outputsTable, err := renderOutputsTable(block.Outputs)
		if err != nil {
			return GenerateResult{}, fmt.Errorf("block %q: %w", className, err)
		}

		markdown, err := buildPage(pageTemplate, pageView{
			ClassName:    className,
			Description:  formatDescription(asString(block.Manifest["long_description"]), opt.WrapWidth),
			InputsTable:  renderInputsTable(fields),
			OutputsTable: outputsTable,
		})
		if err != nil {
			return GenerateResult{}, fmt.Errorf("block %q: %w", className, err)
		}

		card, err := buildCardLine(cardTemplate, cardView{
			URL:         ToSnakeCase(className),
			Name:        ToTitle(className),
			Description: asString(block.Manifest["short_description"]),
			Labels:      strings.ToUpper(asString(block.Manifest["block_type"])),
			Author:      "",
		})
		if err != nil {
			return GenerateResult{}, fmt.Errorf("block %q: %w", className, err)
		}

		result.Documents = append(result.Documents, GeneratedDocument{
			FileSlug: ToSnakeCase(className),
			Markdown: markdown,
		})
		result.CardLines = append(result.CardLines, card)

		opt.Logger.Debug("block page generated",
			slog.String("block", className),
			slog.Int("fields", len(fields)),
			slog.Int("skipped", skipped))
	}

	return result, nil
}

// SpliceIndex replaces the lines strictly between the first and second
// sentinel-token lines with cardLines, leaving both marker lines untouched.
// The token must appear exactly twice.
func SpliceIndex(indexLines, cardLines []string, token string) ([]string, error) {
	markers := make([]int, 0, 2)
	for i, line := range indexLines {
		if strings.Contains(line, token) {
			markers = append(markers, i)
		}
	}

	if len(markers) != 2 {
		return nil, fmt.Errorf("%w: token %q found %d time(s)", ErrSentinelToken, token, len(markers))
	}

	start, end := markers[0], markers[1]
	out := make([]string, 0, start+1+len(cardLines)+len(indexLines)-end)
	out = append(out, indexLines[:start+1]...)
	out = append(out, cardLines...)
	out = append(out, indexLines[end:]...)
	return out, nil
}

// Run executes the full pipeline against the filesystem: it validates the
// index document sentinel region, writes one page per block into the docs
// directory and rewrites the index with spliced card lines. The sentinel check
// happens before any write so a misconfigured index aborts the whole run.
// Re-running with an unchanged listing produces byte-identical output.
func Run(listing []BlockDescriptor, opt Options) error {
	opt = opt.normalize()

	indexLines, err := readIndexLines(opt.IndexFile)
	if err != nil {
		return err
	}

	result, err := Generate(listing, opt)
	if err != nil {
		return err
	}

	updatedIndex, err := SpliceIndex(indexLines, result.CardLines, opt.SentinelToken)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opt.DocsDir, 0o750); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteBlockPage, err)
	}

	for _, doc := range result.Documents {
		path := filepath.Join(opt.DocsDir, doc.FileSlug+".md")
		if err := os.WriteFile(path, []byte(doc.Markdown), 0o600); err != nil {
			return fmt.Errorf("%w %q: %w", ErrWriteBlockPage, path, err)
		}
	}

	body := strings.Join(updatedIndex, "\n") + "\n"
	if err := os.WriteFile(opt.IndexFile, []byte(body), 0o600); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteIndexFile, opt.IndexFile, err)
	}

	opt.Logger.Info("documentation generated",
		slog.Int("blocks", len(result.Documents)),
		slog.Int("skipped_properties", result.SkippedProperties))

	return nil
}

// readIndexLines reads the index document as right-trimmed lines.
func readIndexLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadIndexFile, err)
	}

	text := strings.TrimRight(normalizeLineEndings(string(data)), "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return lines, nil
}
