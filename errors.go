// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/moduledoc

package moduledoc

import "errors"

var (
	// ErrReadRecordFile is returned when module metadata file loading fails.
	ErrReadRecordFile = errors.New("read record file")
	// ErrDecodeRecord is returned when module metadata JSON decoding fails.
	ErrDecodeRecord = errors.New("decode record")
	// ErrSummaryType is returned when record summary is not a string.
	ErrSummaryType = errors.New("summary must be a string")
	// ErrDescriptionType is returned when record description is not an array of strings.
	ErrDescriptionType = errors.New("description must be an array of strings")
	// ErrFormatSchemaJSON is returned when a schema value cannot be pretty printed.
	ErrFormatSchemaJSON = errors.New("format schema json")
	// ErrParseTemplate is returned when markdown template parsing fails.
	ErrParseTemplate = errors.New("parse markdown template")
	// ErrExecuteTemplate is returned when markdown template execution fails.
	ErrExecuteTemplate = errors.New("execute markdown template")
	// ErrReadConfig is returned when config file loading fails.
	ErrReadConfig = errors.New("read config file")
	// ErrDecodeConfig is returned when config YAML decoding fails.
	ErrDecodeConfig = errors.New("decode config")
	// ErrInvalidConfig is returned when config values are out of range.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrGitNotFound is returned when git executable is not available in PATH.
	ErrGitNotFound = errors.New("git executable not found in PATH")
	// ErrCloneRepository is returned when shallow clone fails.
	ErrCloneRepository = errors.New("clone repository")
	// ErrCleanOutput is returned when stale markdown pages cannot be removed.
	ErrCleanOutput = errors.New("clean output directory")
	// ErrWriteDocument is returned when rendered page cannot be written.
	ErrWriteDocument = errors.New("write document")
)
