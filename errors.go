// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FlowKit Authors
// Source: github.com/flowkit/blockdoc

package blockdoc

import "errors"

var (
	// ErrReadRegistryFile is returned when block registry file loading fails.
	ErrReadRegistryFile = errors.New("read registry file")
	// ErrDecodeRegistry is returned when block registry decoding fails.
	ErrDecodeRegistry = errors.New("decode registry")
	// ErrReadIndexFile is returned when index document loading fails.
	ErrReadIndexFile = errors.New("read index file")
	// ErrWriteIndexFile is returned when updated index document writing fails.
	ErrWriteIndexFile = errors.New("write index file")
	// ErrWriteBlockPage is returned when per-block page writing fails.
	ErrWriteBlockPage = errors.New("write block page")
	// ErrSentinelToken is returned when index document does not carry exactly two sentinel marker lines.
	ErrSentinelToken = errors.New("index document must contain the sentinel token exactly twice; add one marker line before and one after the autogenerated card list")
	// ErrExecutePageTemplate is returned when page template execution fails.
	ErrExecutePageTemplate = errors.New("execute page template")
	// ErrParseBuiltinTemplate is returned when built-in template parsing fails.
	ErrParseBuiltinTemplate = errors.New("parse built-in template")
	// ErrUnknownBuiltinTemplate is returned when requested built-in template name is not registered.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrReadBuiltinTemplate is returned when built-in template file loading fails.
	ErrReadBuiltinTemplate = errors.New("read built-in template")
	// ErrEmptyOutputKind is returned when a declared block output carries no kind descriptors.
	ErrEmptyOutputKind = errors.New("block output must declare at least one kind")
	// ErrRenderPreview is returned when markdown to HTML preview conversion fails.
	ErrRenderPreview = errors.New("render html preview")
	// ErrUnknownExampleFormat is returned when example generation format is not supported.
	ErrUnknownExampleFormat = errors.New("unknown example format")
	// ErrEncodeExampleJSON is returned when generated example JSON encoding fails.
	ErrEncodeExampleJSON = errors.New("encode example json")
	// ErrEncodeExampleYAML is returned when generated example YAML encoding fails.
	ErrEncodeExampleYAML = errors.New("encode example yaml")
)
