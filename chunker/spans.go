package chunker

import (
	"strings"
	"unicode/utf8"
)

// span is a half-open byte range into the source text. Spans produced by the
// unit splitters below always tile their input: consecutive spans share a
// boundary and their union covers the whole string.
type span struct {
	start int
	end   int
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// runeOffsets returns the byte offset of every rune start plus a final
// entry equal to len(s), so offsets[i]..offsets[j] slices i..j runes.
func runeOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}

// fixedSpans tiles text into spans of exactly maxSize runes; the final span
// holds the remainder.
func fixedSpans(text string, maxSize int) []span {
	if text == "" {
		return nil
	}
	var spans []span
	start := 0
	count := 0
	for i := range text {
		if count == maxSize {
			spans = append(spans, span{start, i})
			start = i
			count = 0
		}
		count++
	}
	return append(spans, span{start, len(text)})
}

// paragraphSpans splits text at blank-line separators. A paragraph span runs
// from its first line to the start of the next paragraph, so blank-line runs
// attach to the preceding paragraph and the spans tile the input.
func paragraphSpans(text string) []span {
	if text == "" {
		return nil
	}
	var spans []span
	start := 0
	pos := 0
	inBlankRun := false
	seenContent := false

	for pos < len(text) {
		next := len(text)
		line := text[pos:]
		if idx := strings.IndexByte(line, '\n'); idx >= 0 {
			line = line[:idx]
			next = pos + idx + 1
		}
		if strings.TrimSpace(line) == "" {
			if seenContent {
				inBlankRun = true
			}
		} else {
			if inBlankRun {
				spans = append(spans, span{start, pos})
				start = pos
			}
			seenContent = true
			inBlankRun = false
		}
		pos = next
	}
	return append(spans, span{start, len(text)})
}

// greedyGroup merges consecutive tiling spans while the merged size stays
// within maxSize runes. A single span exceeding the budget is kept whole.
func greedyGroup(text string, spans []span, maxSize int) []span {
	if len(spans) == 0 {
		return nil
	}
	groups := make([]span, 0, len(spans))
	cur := spans[0]
	curSize := runeLen(text[cur.start:cur.end])

	for _, s := range spans[1:] {
		size := runeLen(text[s.start:s.end])
		if curSize+size <= maxSize {
			cur.end = s.end
			curSize += size
			continue
		}
		groups = append(groups, cur)
		cur = s
		curSize = size
	}
	return append(groups, cur)
}
