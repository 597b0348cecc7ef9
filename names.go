// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FlowKit Authors
// Source: github.com/flowkit/blockdoc

package blockdoc

import (
	"regexp"
	"strings"
)

// blockSuffixToken is dropped from block titles when it ends the class name.
const blockSuffixToken = "Block"

var (
	snakeBoundaryFirst  = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	snakeBoundarySecond = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// ToSnakeCase converts a class-style identifier into a snake_case slug.
func ToSnakeCase(identifier string) string {
	identifier = snakeBoundaryFirst.ReplaceAllString(identifier, "${1}_${2}")
	identifier = snakeBoundarySecond.ReplaceAllString(identifier, "${1}_${2}")
	return strings.ToLower(identifier)
}

// ToTitle converts a class-style identifier into a human title, dropping a
// trailing "Block" token. Callers must pass non-empty identifiers starting
// with an uppercase letter; anything else tokenizes to an empty title.
func ToTitle(identifier string) string {
	words := splitTitleWords(identifier)
	if len(words) == 0 {
		return ""
	}

	if words[len(words)-1] == blockSuffixToken {
		words = words[:len(words)-1]
	}

	return strings.Join(words, " ")
}

// splitTitleWords tokenizes capitalized words: an uppercase letter followed by
// a lowercase run, or a maximal uppercase run whose last letter is not the
// start of a following capitalized word ("HTTPServer" splits as HTTP, Server).
func splitTitleWords(identifier string) []string {
	runes := []rune(identifier)
	words := make([]string, 0, 4)

	for i := 0; i < len(runes); {
		if !isUpperASCII(runes[i]) {
			i++
			continue
		}

		start := i
		i++
		if i < len(runes) && isLowerASCII(runes[i]) {
			for i < len(runes) && isLowerASCII(runes[i]) {
				i++
			}
		} else {
			for i < len(runes) && isUpperASCII(runes[i]) {
				if i+1 < len(runes) && isLowerASCII(runes[i+1]) {
					break
				}

				i++
			}
		}

		words = append(words, string(runes[start:i]))
	}

	return words
}

// classNameOf returns the trailing segment of a fully qualified class name.
func classNameOf(fullyQualifiedName string) string {
	parts := strings.Split(fullyQualifiedName, ".")
	return parts[len(parts)-1]
}

func isUpperASCII(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isLowerASCII(r rune) bool {
	return r >= 'a' && r <= 'z'
}
