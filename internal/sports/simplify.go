package sports

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var parenthetical = regexp.MustCompile(`\s*\([^)]*\)\s*`)

// maxExtractLen is the length past which multi-sentence extracts are cut
// down to their first sentence.
const maxExtractLen = 240

// Simplify turns an encyclopedia extract into one short plain sentence:
// parenthetical asides are removed, long multi-sentence text keeps only
// its first sentence, and the result always starts with an uppercase
// letter and ends with terminal punctuation.
func Simplify(text string) string {
	if text == "" {
		return ""
	}

	text = parenthetical.ReplaceAllString(text, " ")

	sentences := splitSentences(text)
	if utf8.RuneCountInString(text) > maxExtractLen && len(sentences) > 1 {
		text = sentences[0]
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if !strings.ContainsRune(".!?", rune(text[len(text)-1])) {
		text += "."
	}

	r, size := utf8.DecodeRuneInString(text)
	return string(unicode.ToUpper(r)) + text[size:]
}

// splitSentences splits after terminal punctuation followed by
// whitespace, keeping the punctuation with its sentence.
func splitSentences(text string) []string {
	var out []string
	start := 0
	runes := []rune(text)
	for i := 0; i < len(runes)-1; i++ {
		if strings.ContainsRune(".!?", runes[i]) && unicode.IsSpace(runes[i+1]) {
			out = append(out, strings.TrimSpace(string(runes[start:i+1])))
			for i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				i++
			}
			start = i + 1
		}
	}
	if start < len(runes) {
		out = append(out, strings.TrimSpace(string(runes[start:])))
	}
	return out
}
