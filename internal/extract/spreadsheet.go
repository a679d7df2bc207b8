// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/gwp-engine/internal/taxonomy"
)

// Spreadsheet recovery is a heuristic, not a container parser. It scans
// the raw bytes for printable-ASCII runs, keeps the ones that look like
// category markers, material keywords, or numbers, and pairs keywords
// with nearby numbers into entry lines. Anything it cannot place is
// dropped silently; data loss on non-conforming inputs is expected and
// is not an error.

const (
	minRunLen   = 2
	maxTokenLen = 100

	// numericLookahead is how many following tokens are checked when
	// pairing a material string with its weight.
	numericLookahead = 2
)

var numericTokenRe = regexp.MustCompile(`^\d+([.,]\d+)?$`)

// scavengeSpreadsheet recovers a parseable text stream from a binary
// spreadsheet container.
func scavengeSpreadsheet(data []byte) string {
	tokens := recoverStrings(data)
	return reassemble(tokens)
}

// recoverStrings scans for contiguous runs of printable ASCII (32-126)
// terminated by a null or non-printable byte, keeping runs that pass the
// allowlist in extraction order.
func recoverStrings(data []byte) []string {
	var (
		tokens []string
		run    []byte
	)

	flush := func() {
		if len(run) >= minRunLen {
			token := strings.TrimSpace(string(run))
			if acceptToken(token) {
				tokens = append(tokens, token)
			}
		}
		run = run[:0]
	}

	for _, b := range data {
		if b >= 32 && b <= 126 {
			run = append(run, b)
			continue
		}
		flush()
	}
	flush()

	return tokens
}

// acceptToken applies the allowlist: a token must look like a category
// marker, a material keyword, or a pure number, and fit the length bounds.
func acceptToken(token string) bool {
	if len(token) < minRunLen || len(token) > maxTokenLen {
		return false
	}
	return isCategoryToken(token) || isMaterialToken(token) || numericTokenRe.MatchString(token)
}

// isCategoryToken reports whether the token is a taxonomy short code or a
// full category name.
func isCategoryToken(token string) bool {
	if taxonomy.ByCode(token) != nil {
		return true
	}
	for _, c := range taxonomy.All() {
		if strings.EqualFold(token, c.Name) {
			return true
		}
	}
	return false
}

// isMaterialToken reports whether the token contains a known material
// keyword.
func isMaterialToken(token string) bool {
	lt := strings.ToLower(token)
	for _, kw := range taxonomy.MaterialKeywords() {
		if strings.Contains(lt, kw) {
			return true
		}
	}
	return false
}

// reassemble turns the surviving tokens into structured lines: category
// tokens become header lines, and each material token is paired with the
// nearest following numeric token within the lookahead window to form a
// "name weight t" line. Unpaired tokens are discarded.
func reassemble(tokens []string) string {
	var out strings.Builder
	used := make([]bool, len(tokens))

	for i, token := range tokens {
		if used[i] {
			continue
		}

		if isCategoryToken(token) {
			out.WriteString(token + "\n")
			continue
		}

		if !isMaterialToken(token) {
			continue
		}

		for j := i + 1; j <= i+numericLookahead && j < len(tokens); j++ {
			if used[j] || !numericTokenRe.MatchString(tokens[j]) {
				continue
			}
			weight := strings.ReplaceAll(tokens[j], ",", ".")
			out.WriteString(token + " " + weight + " t\n")
			used[j] = true
			break
		}
	}

	return out.String()
}
