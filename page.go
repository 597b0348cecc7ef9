// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FlowKit Authors
// Source: github.com/flowkit/blockdoc

package blockdoc

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"text/template"
)

const (
	templateBlockName = "block"
	templateCardName  = "card"
)

// templateFS stores built-in page and card templates embedded into the package.
//
//go:embed templates/*.gotmpl
var templateFS embed.FS

// builtInTemplateFiles maps template aliases to embedded file paths.
var builtInTemplateFiles = map[string]string{
	templateBlockName: "templates/block.md.gotmpl",
	templateCardName:  "templates/card.html.gotmpl",
}

// pageView is the view model for the per-block page template.
type pageView struct {
	ClassName    string
	Description  string
	InputsTable  string
	OutputsTable string
}

// cardView is the view model for the single-line HTML card template.
type cardView struct {
	URL         string
	Name        string
	Description string
	Labels      string
	Author      string
}

// BuiltinTemplateNames returns all available built-in template names.
func BuiltinTemplateNames() []string {
	names := make([]string, 0, len(builtInTemplateFiles))
	for name := range builtInTemplateFiles {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// BuiltinTemplate returns one built-in template text by name.
func BuiltinTemplate(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	path, ok := builtInTemplateFiles[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
	}

	data, err := templateFS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadBuiltinTemplate, err)
	}

	return string(data), nil
}

// resolvePageTemplate parses custom or built-in page template text.
func resolvePageTemplate(opt Options) (*template.Template, error) {
	templateText := strings.TrimSpace(opt.PageTemplateText)
	if templateText != "" {
		return template.New("custom").Parse(templateText)
	}

	templateText, err := BuiltinTemplate(templateBlockName)
	if err != nil {
		return nil, err
	}

	parsed, err := template.New(templateBlockName).Parse(templateText)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParseBuiltinTemplate, templateBlockName, err)
	}

	return parsed, nil
}

// buildPage renders one per-block markdown page from its view model.
func buildPage(pageTemplate *template.Template, view pageView) (string, error) {
	var out strings.Builder
	if err := pageTemplate.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecutePageTemplate, err)
	}

	return ensureTrailingNewline(normalizeMarkdownOutput(out.String())), nil
}

// buildCardLine renders one single-line HTML card from its view model.
func buildCardLine(cardTemplate *template.Template, view cardView) (string, error) {
	var out strings.Builder
	if err := cardTemplate.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecutePageTemplate, err)
	}

	return strings.TrimRight(out.String(), "\n"), nil
}

// resolveCardTemplate parses the built-in card template.
func resolveCardTemplate() (*template.Template, error) {
	templateText, err := BuiltinTemplate(templateCardName)
	if err != nil {
		return nil, err
	}

	parsed, err := template.New(templateCardName).Parse(templateText)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParseBuiltinTemplate, templateCardName, err)
	}

	return parsed, nil
}
