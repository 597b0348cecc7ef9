// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FlowKit Authors
// Source: github.com/flowkit/blockdoc

package blockdoc

// formatArrayType computes display type text for an array-shaped schema.
// The second result reports whether the element type references another
// block's output. Unresolvable element types degrade to "unknown" and never
// fail the run.
func formatArrayType(schema map[string]any) (string, bool) {
	prefix := "List"
	if unique, ok := asBool(schema["uniqueItems"]); ok && unique {
		prefix = "Set"
	}

	items := asMap(schema["items"])
	if len(items) == 0 {
		return prefix + "[Any]", false
	}

	references := hasReferenceMarker(items)
	inner, innerReferences := arrayElementType(items)
	return prefix + "[" + inner + "]", references || innerReferences
}

// arrayElementType resolves element display type for one items sub-schema.
func arrayElementType(items map[string]any) (string, bool) {
	if ref := asString(items["$ref"]); ref != "" {
		return referenceName(ref), true
	}

	typeName := asString(items["type"])
	if mapped, ok := mapPrimitiveType(typeName); ok {
		return mapped, false
	}

	// Arrays of arrays recurse into the nested schema and keep the pair contract.
	if typeName == "array" {
		return formatArrayType(items)
	}

	return unknownTypeName, false
}
