// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FlowKit Authors
// Source: github.com/flowkit/blockdoc

package blockdoc

import "strings"

// schemaShape classifies one manifest property schema by which keys it carries.
// Shapes are probed in declaration order; the first matching shape wins.
type schemaShape int

const (
	// shapePrimitive is a schema with a "type" present in the primitive type table.
	shapePrimitive schemaShape = iota
	// shapeArray is a schema carrying an "items" sub-schema.
	shapeArray
	// shapeUnion is a schema carrying any of anyOf/oneOf/allOf branch lists.
	shapeUnion
	// shapeReference is a schema carrying only a cross-block reference marker.
	shapeReference
	// shapeUnknown is any schema not matching a recognized shape.
	shapeUnknown
)

// unionKeywords are probed in this order; branch lists are concatenated in the same order.
var unionKeywords = []string{"anyOf", "oneOf", "allOf"}

// shapeOf determines the schema shape of one property definition.
func shapeOf(schema map[string]any) schemaShape {
	if _, ok := mapPrimitiveType(asString(schema["type"])); ok {
		return shapePrimitive
	}

	if _, ok := schema["items"]; ok {
		return shapeArray
	}

	for _, keyword := range unionKeywords {
		if _, ok := schema[keyword]; ok {
			return shapeUnion
		}
	}

	if hasReferenceMarker(schema) {
		return shapeReference
	}

	return shapeUnknown
}

// hasReferenceMarker reports whether schema value is produced by another block.
func hasReferenceMarker(schema map[string]any) bool {
	_, ok := schema["reference"]
	return ok
}

// unionBranches concatenates anyOf, oneOf and allOf branch schemas preserving order.
func unionBranches(schema map[string]any) []map[string]any {
	out := make([]map[string]any, 0, 4)
	for _, keyword := range unionKeywords {
		for _, raw := range asSlice(schema[keyword]) {
			branch, ok := raw.(map[string]any)
			if !ok {
				continue
			}

			out = append(out, branch)
		}
	}

	return out
}

// referenceName extracts referenced definition name from trailing $ref path segment.
func referenceName(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}

	parts := strings.Split(ref, "/")
	return parts[len(parts)-1]
}

// asString converts raw schema value to string and returns empty string otherwise.
func asString(value any) string {
	text, ok := value.(string)
	if !ok {
		return ""
	}

	return text
}

// asSlice converts raw schema value to a generic slice and returns nil otherwise.
func asSlice(value any) []any {
	out, ok := value.([]any)
	if !ok {
		return nil
	}

	return out
}

// asBool converts raw schema value to bool and reports conversion success.
func asBool(value any) (bool, bool) {
	out, ok := value.(bool)
	return out, ok
}

// asMap converts raw schema value to a string-keyed map and returns nil otherwise.
func asMap(value any) map[string]any {
	out, ok := value.(map[string]any)
	if !ok {
		return nil
	}

	return out
}
