package query

import (
	"bufio"
	"regexp"
	"strings"
)

// Candidate search phrases usually come back from a chat model wrapped in
// conversational boilerplate and markdown emphasis. Normalize reduces that
// to the single line the encyclopedia lookup actually wants.
var (
	preambleRe = regexp.MustCompile(`(?i)^(sure, here is the search phrase:|search phrase:|here(?:'s| is) the (?:search )?phrase:)\s*`)
	emphasisRe = regexp.MustCompile("[*_`]+")
)

// Normalize strips known LLM preamble prefixes and markdown emphasis from a
// raw candidate phrase and returns its first non-blank line, trimmed. An
// empty return value means there was no usable query; no error is ever
// raised, the empty string is the signal.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	text := preambleRe.ReplaceAllString(raw, "")
	text = emphasisRe.ReplaceAllString(text, "")

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Split(bufio.ScanLines)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			return line
		}
	}
	return ""
}
