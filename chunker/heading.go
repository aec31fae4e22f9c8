package chunker

import (
	"slices"

	"github.com/sevigo/textchunk/schema"
)

// HeadingChunker splits strictly at heading boundaries: every chunk spans
// from one heading up to the next, or to end of document. The size budget is
// not enforced within a section; structural fidelity wins over size
// compliance.
type HeadingChunker struct {
	// Levels filters which heading levels start a new section. Empty means
	// every level splits.
	Levels []int
}

// NewHeadingChunker returns a heading chunker splitting at the given levels,
// or at every level when none are given.
func NewHeadingChunker(levels ...int) HeadingChunker {
	return HeadingChunker{Levels: levels}
}

func (HeadingChunker) Name() string { return MethodHeading }

func (h HeadingChunker) splitsAt(level int) bool {
	return len(h.Levels) == 0 || slices.Contains(h.Levels, level)
}

func (h HeadingChunker) Chunk(text string, cfg Config) ([]schema.Chunk, error) {
	if err := validateMaxSize(cfg.MaxSize); err != nil {
		return nil, err
	}
	if text == "" {
		return []schema.Chunk{}, nil
	}

	type sectionMark struct {
		start int
		label string
	}
	sections := []sectionMark{{start: 0}}
	for _, b := range parseBlocks(text) {
		if b.kind != blockHeading || !h.splitsAt(b.level) {
			continue
		}
		if b.start == 0 {
			sections[0].label = b.section
			continue
		}
		sections = append(sections, sectionMark{start: b.start, label: b.section})
	}

	chunks := make([]schema.Chunk, 0, len(sections))
	for i, s := range sections {
		end := len(text)
		if i+1 < len(sections) {
			end = sections[i+1].start
		}
		if end == s.start {
			continue
		}
		chunks = append(chunks, schema.NewChunk(text[s.start:end], s.start, end, schema.ChunkMetadata{
			Method:  MethodHeading,
			Section: s.label,
		}))
	}
	return chunks, nil
}
