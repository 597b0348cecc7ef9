// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FlowKit Authors
// Source: github.com/flowkit/blockdoc

package blockdoc

import (
	"log/slog"
	"sort"
)

const (
	// discriminatorPropertyName is the reserved manifest field selecting block implementation.
	discriminatorPropertyName = "type"
	// missingDescriptionFallback is rendered when a property declares no description.
	missingDescriptionFallback = "not available"
	// unknownTypeName is rendered when a nested type name cannot be resolved.
	unknownTypeName = "unknown"
)

// primitiveTypeNames maps JSON-Schema primitive type names to display type names.
var primitiveTypeNames = map[string]string{
	"number":  "float",
	"integer": "int",
	"boolean": "bool",
	"string":  "str",
	"null":    "None",
}

// FormattedField is one classified manifest property ready for table rendering.
type FormattedField struct {
	// Name is the manifest property name.
	Name string
	// DisplayType is the resolved display type string.
	DisplayType string
	// Description is the property description or a fallback marker.
	Description string
	// ReferencesBlock reports whether the value may come from another block's output.
	ReferencesBlock bool
}

// skipReason explains why one manifest property was dropped from documentation.
type skipReason string

const (
	skipDiscriminator  skipReason = "reserved discriminator field"
	skipArrayReference skipReason = "array of cross-block references"
	skipUnionReference skipReason = "union of cross-block references only"
	skipBareReference  skipReason = "bare cross-block reference"
	skipUnknownShape   skipReason = "unrecognized schema shape"
)

// mapPrimitiveType resolves a primitive schema type name into its display name.
// Absence from the table signals fallback classification, not an error.
func mapPrimitiveType(name string) (string, bool) {
	mapped, ok := primitiveTypeNames[name]
	return mapped, ok
}

// classifyProperty resolves one manifest property into a formatted field.
// Rules are tried in order and the first match wins; a false result means the
// property is excluded from the rendered table.
func classifyProperty(name string, schema map[string]any) (FormattedField, skipReason, bool) {
	if name == discriminatorPropertyName {
		return FormattedField{}, skipDiscriminator, false
	}

	switch shapeOf(schema) {
	case shapePrimitive:
		mapped, _ := mapPrimitiveType(asString(schema["type"]))
		return FormattedField{
			Name:        name,
			DisplayType: mapped,
			Description: propertyDescription(schema),
		}, "", true

	case shapeArray:
		if items := asMap(schema["items"]); hasReferenceMarker(items) {
			return FormattedField{}, skipArrayReference, false
		}

		displayType, references := formatArrayType(schema)
		return FormattedField{
			Name:            name,
			DisplayType:     displayType,
			Description:     propertyDescription(schema),
			ReferencesBlock: references,
		}, "", true

	case shapeUnion:
		displayType, references, ok := formatUnionType(schema)
		if !ok {
			return FormattedField{}, skipUnionReference, false
		}

		return FormattedField{
			Name:            name,
			DisplayType:     displayType,
			Description:     propertyDescription(schema),
			ReferencesBlock: references,
		}, "", true

	case shapeReference:
		return FormattedField{}, skipBareReference, false

	default:
		return FormattedField{}, skipUnknownShape, false
	}
}

// formatInputFields classifies all manifest properties in declaration order.
// Skipped properties are counted and reported through the logger so schema
// shapes dropped for forward compatibility stay observable.
func formatInputFields(manifest map[string]any, propertyOrder []string, logger *slog.Logger) ([]FormattedField, int) {
	properties := asMap(manifest["properties"])
	if len(properties) == 0 {
		return nil, 0
	}

	order := normalizePropertyOrder(propertyOrder, properties)
	out := make([]FormattedField, 0, len(order))
	skipped := 0

	for _, name := range order {
		schema := asMap(properties[name])
		field, reason, ok := classifyProperty(name, schema)
		if !ok {
			skipped++
			logger.Debug("manifest property skipped",
				slog.String("property", name),
				slog.String("reason", string(reason)))
			continue
		}

		out = append(out, field)
	}

	return out, skipped
}

// normalizePropertyOrder keeps declared order, then appends unlisted keys sorted.
func normalizePropertyOrder(declared []string, properties map[string]any) []string {
	out := make([]string, 0, len(properties))
	seen := make(map[string]struct{}, len(properties))

	for _, name := range declared {
		if _, ok := properties[name]; !ok {
			continue
		}

		if _, exists := seen[name]; exists {
			continue
		}

		seen[name] = struct{}{}
		out = append(out, name)
	}

	rest := make([]string, 0, len(properties))
	for name := range properties {
		if _, exists := seen[name]; exists {
			continue
		}

		rest = append(rest, name)
	}

	sort.Strings(rest)
	out = append(out, rest...)
	return out
}

// propertyDescription extracts property description with a literal fallback marker.
func propertyDescription(schema map[string]any) string {
	description := asString(schema["description"])
	if description == "" {
		return missingDescriptionFallback
	}

	return description
}
