package nlsql

import (
	"regexp"
	"strings"
)

// A cleaned result shorter than this is treated as a failed extraction and
// the original text is returned instead.
const minStatementLength = 5

// statementPattern finds the first SQL statement keyword at a token boundary
// and captures through the first terminating semicolon or the end of the
// text. (?s) lets the statement span multiple lines.
var statementPattern = regexp.MustCompile(`(?is)\b(?:SELECT|WITH|INSERT|UPDATE|DELETE)\b.*?(?:;|$)`)

// extractStrategy attempts to isolate a SQL statement from the given text.
// It returns false to decline, letting the next strategy try.
type extractStrategy func(text string) (string, bool)

var extractStrategies = []extractStrategy{
	extractByKeyword,
	extractByLineScan,
}

// CleanSQL extracts a single candidate SQL statement from raw completion
// output that may contain prose, markdown fencing, multiple blocks, or
// trailing commentary. If no clear statement can be isolated it falls back
// to the trimmed input rather than returning nothing.
//
// The result is normalized to a single line: internal newlines and
// indentation collapse to single spaces and one trailing semicolon is
// stripped. Cleaning its own output again is a no-op.
func CleanSQL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	text := trimmed
	if block, ok := extractFencedBlock(text); ok {
		text = block
	}

	candidate := text
	for _, extract := range extractStrategies {
		if match, ok := extract(text); ok {
			candidate = match
			break
		}
	}

	cleaned := normalizeStatement(candidate)
	if len(cleaned) < minStatementLength {
		// Too short to be SQL. Hand back what we started from (minus any
		// fencing) so the caller can still see what the backend produced.
		return strings.TrimSpace(text)
	}
	return cleaned
}

// extractFencedBlock returns the content of the first fenced code block,
// stripping a leading "sql" language tag.
func extractFencedBlock(text string) (string, bool) {
	if !strings.Contains(text, "```") {
		return "", false
	}
	parts := strings.Split(text, "```")
	if len(parts) < 2 {
		return "", false
	}
	block := parts[1]
	if len(block) >= 3 && strings.EqualFold(block[:3], "sql") {
		rest := block[3:]
		if rest == "" || isSpace(rest[0]) {
			block = rest
		}
	}
	return strings.TrimSpace(block), true
}

// extractByKeyword captures from the first statement keyword through the
// first semicolon, or the end of the text when none terminates it.
func extractByKeyword(text string) (string, bool) {
	match := statementPattern.FindString(text)
	if match == "" {
		return "", false
	}
	return match, true
}

// extractByLineScan walks the text line by line: capture starts at a line
// beginning with a statement keyword, non-empty lines are appended, and a
// line ending in a semicolon stops the scan.
func extractByLineScan(text string) (string, bool) {
	var captured []string
	capturing := false
	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if !capturing {
			if !startsWithStatementKeyword(stripped) {
				continue
			}
			capturing = true
		}
		if stripped == "" {
			continue
		}
		captured = append(captured, stripped)
		if strings.HasSuffix(stripped, ";") {
			break
		}
	}
	if !capturing {
		return "", false
	}
	return strings.Join(captured, " "), true
}

var statementKeywords = []string{"SELECT", "WITH", "INSERT", "UPDATE", "DELETE"}

func startsWithStatementKeyword(line string) bool {
	upper := strings.ToUpper(line)
	for _, keyword := range statementKeywords {
		if strings.HasPrefix(upper, keyword) {
			rest := upper[len(keyword):]
			if rest == "" || !isWordChar(rest[0]) {
				return true
			}
		}
	}
	return false
}

func normalizeStatement(s string) string {
	joined := strings.Join(strings.Fields(s), " ")
	joined = strings.TrimSuffix(joined, ";")
	return strings.TrimSpace(joined)
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isWordChar(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
