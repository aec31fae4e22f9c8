package chunker

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// simpleBoundaryRe marks a run of ASCII sentence-final punctuation followed
// by whitespace or end of text. The boundary sits after the whitespace run,
// so the separator stays attached to the sentence it terminates.
var simpleBoundaryRe = regexp.MustCompile(`[.!?]+(?:\s+|$)`)

// Sentence-final marks beyond ASCII: fullwidth and CJK terminals, Arabic and
// Devanagari terminators, inverted marks and doubled forms.
var unicodeTerminals = map[rune]struct{}{
	'.': {}, '!': {}, '?': {},
	'。': {}, '｡': {}, '！': {}, '？': {}, '．': {},
	'؟': {}, '۔': {}, '।': {}, '॥': {},
	'…': {}, '‼': {}, '⁇': {}, '⁈': {}, '⁉': {},
}

// Closing quotation and bracket characters that cluster after terminal
// punctuation. The boundary falls after the full cluster.
var closingCluster = map[rune]struct{}{
	'"': {}, '\'': {},
	'”': {}, '’': {}, '»': {}, '›': {},
	')': {}, ']': {}, '}': {},
	'」': {}, '』': {}, '）': {}, '〉': {}, '》': {}, '】': {}, '〕': {},
}

// SentenceBoundaries returns the byte offsets immediately after each detected
// sentence end, in strictly increasing order. The final offset may equal
// len(text). Empty input yields no boundaries. The text is never mutated or
// normalized.
func SentenceBoundaries(text string, variant DetectorVariant) []int {
	if text == "" {
		return nil
	}
	if variant == DetectorUnicode {
		return unicodeBoundaries(text)
	}
	return simpleBoundaries(text)
}

func simpleBoundaries(text string) []int {
	matches := simpleBoundaryRe.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}
	bounds := make([]int, 0, len(matches))
	for _, m := range matches {
		bounds = append(bounds, m[1])
	}
	return bounds
}

func unicodeBoundaries(text string) []int {
	var bounds []int
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if _, ok := unicodeTerminals[r]; !ok {
			i += size
			continue
		}

		// Consume the full run of terminal marks.
		j := i
		wide := false
		for j < len(text) {
			tr, tsz := utf8.DecodeRuneInString(text[j:])
			if _, ok := unicodeTerminals[tr]; !ok {
				break
			}
			if tr > unicode.MaxASCII {
				wide = true
			}
			j += tsz
		}

		// Absorb a cluster of closing quotes and brackets.
		clustered := false
		for j < len(text) {
			cr, csz := utf8.DecodeRuneInString(text[j:])
			if _, ok := closingCluster[cr]; !ok {
				break
			}
			clustered = true
			j += csz
		}

		// Absorb trailing whitespace so the separator stays with the
		// sentence it ends.
		spaced := false
		for j < len(text) {
			wr, wsz := utf8.DecodeRuneInString(text[j:])
			if !unicode.IsSpace(wr) {
				break
			}
			spaced = true
			j += wsz
		}

		// ASCII terminals need whitespace or end of text after the cluster,
		// otherwise "3.14" or "v1.2" would split. Non-Latin terminal marks
		// end a sentence on their own.
		if spaced || wide || clustered || j == len(text) {
			bounds = append(bounds, j)
		}
		i = j
	}
	return bounds
}

// sentenceSpans converts boundary offsets into tiling sentence spans. Text
// after the last boundary becomes a final span.
func sentenceSpans(text string, variant DetectorVariant) []span {
	if text == "" {
		return nil
	}
	var spans []span
	prev := 0
	for _, b := range SentenceBoundaries(text, variant) {
		if b <= prev {
			continue
		}
		spans = append(spans, span{prev, b})
		prev = b
	}
	if prev < len(text) {
		spans = append(spans, span{prev, len(text)})
	}
	return spans
}
