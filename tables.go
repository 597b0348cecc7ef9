// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FlowKit Authors
// Source: github.com/flowkit/blockdoc

package blockdoc

import (
	"fmt"
	"strconv"
	"strings"
)

// userConfigurationHeader opens the per-block input table. The last column
// name is historical: it reflects the cross-block reference flag, not general
// parameterizability, and is preserved as-is for existing documentation links.
var userConfigurationHeader = []string{
	"| **Name** | **Type** | **Description** | **Parameterizable** |",
	"|:---------|:---------|:----------------|:--------------------|",
}

// blockOutputsHeader opens the per-block output table.
var blockOutputsHeader = []string{
	"| **Name** | **Kind** | **Description** |",
	"|:---------|:---------|:----------------|",
}

// renderInputsTable renders classified manifest fields as a markdown table.
func renderInputsTable(fields []FormattedField) string {
	rows := make([]string, 0, len(userConfigurationHeader)+len(fields))
	rows = append(rows, userConfigurationHeader...)

	for _, field := range fields {
		rows = append(rows, fmt.Sprintf("| `%s` | `%s` | %s. | %s |",
			field.Name,
			field.DisplayType,
			field.Description,
			strconv.FormatBool(field.ReferencesBlock)))
	}

	return strings.Join(rows, "\n")
}

// renderOutputsTable renders declared block outputs as a markdown table.
// Outputs with several kind descriptors render as a tagged union with each
// description back-referencing its own kind name.
func renderOutputsTable(outputs []OutputSpec) (string, error) {
	rows := make([]string, 0, len(blockOutputsHeader)+len(outputs))
	rows = append(rows, blockOutputsHeader...)

	for _, output := range outputs {
		if len(output.Kind) == 0 {
			return "", fmt.Errorf("%w: output %q", ErrEmptyOutputKind, output.Name)
		}

		if len(output.Kind) == 1 {
			kind := output.Kind[0]
			rows = append(rows, fmt.Sprintf("| `%s` | `%s` | %s. |", output.Name, kind.Name, kind.Description))
			continue
		}

		names := make([]string, 0, len(output.Kind))
		descriptions := make([]string, 0, len(output.Kind))
		for _, kind := range output.Kind {
			names = append(names, kind.Name)
			descriptions = append(descriptions, fmt.Sprintf("%s if `%s`", kind.Description, kind.Name))
		}

		rows = append(rows, fmt.Sprintf("| `%s` | `Union[%s]` | %s. |",
			output.Name,
			strings.Join(names, ", "),
			strings.Join(descriptions, " or ")))
	}

	return strings.Join(rows, "\n"), nil
}
