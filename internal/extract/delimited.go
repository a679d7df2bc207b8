// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"unicode"
)

// headerKeywords flag a first row as a column header when none of its
// fields carry digits.
var headerKeywords = []string{
	"category", "material", "name", "weight", "unit", "component", "quantity",
}

// reconstructDelimited rebuilds a parseable text stream from the
// semicolon-delimited house export format. Each row is
// category;name;weight[;unit]. A category change emits the label as its
// own header line before the entry line, and weights written with a comma
// decimal separator are normalized to a dot.
func reconstructDelimited(content string) string {
	var (
		out             strings.Builder
		currentCategory string
		first           = true
	)

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if first {
			first = false
			if isHeaderRow(line) {
				continue
			}
		}

		fields := strings.Split(line, ";")
		if len(fields) < 3 {
			continue
		}
		for i := range fields {
			fields[i] = cleanField(fields[i])
		}

		category := fields[0]
		name := fields[1]
		weight := strings.ReplaceAll(fields[2], ",", ".")
		unit := "t"
		if len(fields) > 3 && fields[3] != "" {
			unit = fields[3]
		}

		if name == "" || weight == "" {
			continue
		}

		if category != "" && category != currentCategory {
			currentCategory = category
			out.WriteString(category + "\n")
		}
		out.WriteString(name + " " + weight + " " + unit + "\n")
	}

	return out.String()
}

// isHeaderRow reports whether a row looks like a column header: it
// mentions a known header keyword and carries no digits.
func isHeaderRow(line string) bool {
	for _, r := range line {
		if unicode.IsDigit(r) {
			return false
		}
	}
	lower := strings.ToLower(line)
	for _, kw := range headerKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// cleanField strips surrounding quotes and whitespace from one field.
func cleanField(field string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(field), `"'`))
}
