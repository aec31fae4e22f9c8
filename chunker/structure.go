package chunker

import (
	"fmt"
	"regexp"
	"strings"
)

type blockKind int

const (
	blockContent blockKind = iota
	blockHeading
	blockFence
)

// block is a classified run of text produced by the structural parser.
// Blocks tile the input: line terminators belong to the line they end.
type block struct {
	kind  blockKind
	start int
	end   int
	// level and title are set for heading blocks.
	level int
	title string
	// section is the heading label active at this block, formatted as
	// "h{level}: {text}". Empty before the first heading. A heading block
	// carries its own label.
	section string
}

var (
	fenceRe   = regexp.MustCompile("^(`{3,}|~{3,})(\\w*)\\s*$")
	headingRe = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
)

// parseBlocks scans text once, left to right, classifying lines into fenced
// code blocks, headings and plain content. Fence interiors are taken
// verbatim and never scanned for headings. An unterminated fence extends to
// the end of the text.
func parseBlocks(text string) []block {
	var blocks []block
	section := ""
	pos := 0
	inFence := false
	fenceStart := 0
	contentStart := -1

	flushContent := func(end int) {
		if contentStart >= 0 && end > contentStart {
			blocks = append(blocks, block{kind: blockContent, start: contentStart, end: end, section: section})
		}
		contentStart = -1
	}

	for pos < len(text) {
		lineEnd := len(text)
		line := text[pos:]
		if idx := strings.IndexByte(line, '\n'); idx >= 0 {
			line = line[:idx]
			lineEnd = pos + idx + 1
		}

		switch {
		case inFence:
			if fenceRe.MatchString(line) {
				blocks = append(blocks, block{kind: blockFence, start: fenceStart, end: lineEnd, section: section})
				inFence = false
			}
		case fenceRe.MatchString(line):
			flushContent(pos)
			inFence = true
			fenceStart = pos
		default:
			if m := headingRe.FindStringSubmatch(line); m != nil {
				flushContent(pos)
				level := len(m[1])
				title := strings.TrimSpace(m[2])
				section = fmt.Sprintf("h%d: %s", level, title)
				blocks = append(blocks, block{
					kind:    blockHeading,
					start:   pos,
					end:     lineEnd,
					level:   level,
					title:   title,
					section: section,
				})
			} else if contentStart < 0 {
				contentStart = pos
			}
		}
		pos = lineEnd
	}

	if inFence {
		blocks = append(blocks, block{kind: blockFence, start: fenceStart, end: len(text), section: section})
	} else {
		flushContent(len(text))
	}
	return blocks
}
