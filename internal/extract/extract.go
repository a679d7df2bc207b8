// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract recovers raw text from uploaded bill-of-materials files.
// It is a pure dispatch over detected file format: plain-text passthrough,
// semicolon-delimited tabular reconstruction, and a best-effort string
// scavenger for binary spreadsheet containers.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies how a file's bytes are turned into text.
type Format string

const (
	// FormatText is plain-text passthrough.
	FormatText Format = "text"

	// FormatCSV is the semicolon-delimited house export format.
	FormatCSV Format = "csv"

	// FormatSpreadsheet is a binary spreadsheet container handled by
	// byte-level string recovery.
	FormatSpreadsheet Format = "spreadsheet"
)

// DetectFormat picks a Format from the file name's extension. Anything
// unrecognized falls back to plain text; detection never fails.
func DetectFormat(fileName string) Format {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return FormatCSV
	case ".xlsx", ".xls":
		return FormatSpreadsheet
	default:
		return FormatText
	}
}

// Text recovers raw text from a named byte blob, dispatching on the
// detected format.
func Text(fileName string, data []byte) string {
	switch DetectFormat(fileName) {
	case FormatCSV:
		return reconstructDelimited(string(data))
	case FormatSpreadsheet:
		return scavengeSpreadsheet(data)
	default:
		return string(data)
	}
}

// File reads a file and recovers its text. A read failure is a hard
// failure for this file only; callers processing batches keep going.
func File(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return Text(filepath.Base(path), data), nil
}
