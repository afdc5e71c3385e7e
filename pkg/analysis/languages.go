package analysis

import (
	"bytes"
	"strings"

	"github.com/yaklabco/mdsplit/pkg/langdetect"
)

// countFencedLanguages scans section text for fenced code blocks and
// tallies their languages into counts. An explicit info string wins;
// unlabeled blocks fall back to content-based detection. A fence left
// open at the end of the section still counts, matching CommonMark's
// run-to-EOF behavior.
func countFencedLanguages(section []byte, counts map[string]int) {
	var (
		inFence    bool
		fenceChar  byte
		fenceLen   int
		fenceLang  string
		fenceBody  [][]byte
		settleOpen = func() {
			lang := fenceLang
			if lang == "" {
				lang = langdetect.Detect(bytes.Join(fenceBody, []byte("\n")))
			}
			counts[lang]++
			fenceBody = nil
		}
	)

	for _, line := range bytes.Split(section, []byte("\n")) {
		if inFence {
			if isClosingFence(line, fenceChar, fenceLen) {
				inFence = false
				settleOpen()
				continue
			}
			fenceBody = append(fenceBody, line)
			continue
		}

		char, length, info, ok := parseFenceOpen(line)
		if !ok {
			continue
		}
		inFence = true
		fenceChar = char
		fenceLen = length
		fenceLang = info
	}

	if inFence {
		settleOpen()
	}
}

// parseFenceOpen reports whether line opens a code fence and, if so,
// the fence character, its length, and the normalized language tag
// from the info string.
func parseFenceOpen(line []byte) (char byte, length int, lang string, ok bool) {
	trimmed := trimFenceIndent(line)
	if len(trimmed) < 3 {
		return 0, 0, "", false
	}

	char = trimmed[0]
	if char != '`' && char != '~' {
		return 0, 0, "", false
	}

	length = 1
	for length < len(trimmed) && trimmed[length] == char {
		length++
	}
	if length < 3 {
		return 0, 0, "", false
	}

	info := strings.TrimSpace(string(trimmed[length:]))
	// Backtick fences cannot carry backticks in the info string.
	if char == '`' && strings.ContainsRune(info, '`') {
		return 0, 0, "", false
	}

	// First word of the info string is the language tag.
	if idx := strings.IndexAny(info, " \t"); idx >= 0 {
		info = info[:idx]
	}
	return char, length, strings.ToLower(info), true
}

// isClosingFence reports whether line closes a fence opened with the
// given character and length.
func isClosingFence(line []byte, char byte, minLen int) bool {
	trimmed := trimFenceIndent(line)
	if len(trimmed) < minLen {
		return false
	}
	n := 0
	for n < len(trimmed) && trimmed[n] == char {
		n++
	}
	if n < minLen {
		return false
	}
	return len(bytes.TrimSpace(trimmed[n:])) == 0
}

// trimFenceIndent strips up to three leading spaces, the indentation
// CommonMark allows before a fence.
func trimFenceIndent(line []byte) []byte {
	line = bytes.TrimRight(line, "\r")
	indent := 0
	for indent < 3 && indent < len(line) && line[indent] == ' ' {
		indent++
	}
	return line[indent:]
}
