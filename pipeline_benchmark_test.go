// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FlowKit Authors
// Source: github.com/flowkit/blockdoc

package blockdoc

import "testing"

// BenchmarkGenerate measures full in-memory page and card generation cost.
func BenchmarkGenerate(b *testing.B) {
	listing := make([]BlockDescriptor, 0, 32)
	for i := 0; i < 32; i++ {
		listing = append(listing, cropBlockDescriptor())
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Generate(listing, Options{}); err != nil {
			b.Fatalf("Generate: %v", err)
		}
	}
}

// BenchmarkParseRegistry measures registry decoding and order extraction cost.
func BenchmarkParseRegistry(b *testing.B) {
	data := []byte(registryFixtureYAML)

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for i := 0; i < b.N; i++ {
		if _, err := ParseRegistry(data); err != nil {
			b.Fatalf("ParseRegistry: %v", err)
		}
	}
}
