// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FlowKit Authors
// Source: github.com/flowkit/blockdoc

package blockdoc

import (
	"sort"
	"strings"
)

// formatUnionType flattens anyOf/oneOf/allOf branches into one display type.
// The second result reports whether any branch carries a cross-block reference
// marker; a false third result means every branch is a reference and the field
// has nothing displayable.
func formatUnionType(schema map[string]any) (string, bool, bool) {
	branches := unionBranches(schema)
	displayable := make([]map[string]any, 0, len(branches))
	for _, branch := range branches {
		if hasReferenceMarker(branch) {
			continue
		}

		displayable = append(displayable, branch)
	}

	if len(displayable) == 0 {
		return "", false, false
	}

	references := len(displayable) != len(branches)
	seen := make(map[string]struct{}, len(displayable))
	names := make([]string, 0, len(displayable))

	for _, branch := range displayable {
		name, branchReferences := unionBranchType(branch)
		references = references || branchReferences
		if _, exists := seen[name]; exists {
			continue
		}

		seen[name] = struct{}{}
		names = append(names, name)
	}

	sort.Strings(names)
	wrapper := "Union"
	if filtered := removeName(names, "None"); len(filtered) != len(names) {
		wrapper = "Optional"
		names = filtered
	}

	// A union of nulls alone resolves back to the bare None display name.
	if len(names) == 0 {
		return "None", references, true
	}

	// A single surviving branch stays unwrapped: anyOf [TypeA, null] renders as
	// TypeA rather than Optional[TypeA].
	if len(names) == 1 {
		return names[0], references, true
	}

	return wrapper + "[" + strings.Join(names, ", ") + "]", references, true
}

// unionBranchType resolves display type for one non-reference union branch.
func unionBranchType(branch map[string]any) (string, bool) {
	if ref := asString(branch["$ref"]); ref != "" {
		return referenceName(ref), false
	}

	typeName := asString(branch["type"])
	if mapped, ok := mapPrimitiveType(typeName); ok {
		return mapped, false
	}

	if typeName == "array" {
		return formatArrayType(branch)
	}

	return unknownTypeName, false
}

// removeName filters one name out of a sorted name list preserving order.
func removeName(names []string, drop string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == drop {
			continue
		}

		out = append(out, name)
	}

	return out
}
