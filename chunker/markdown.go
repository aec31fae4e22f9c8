package chunker

import "github.com/sevigo/textchunk/schema"

// MarkdownChunker groups plain content paragraph-wise under the size budget
// while keeping fenced code blocks atomic, even when they exceed the budget.
// Headings start a new chunk and set the section label for everything that
// follows.
type MarkdownChunker struct{}

func (MarkdownChunker) Name() string { return MethodMarkdown }

func (MarkdownChunker) Chunk(text string, cfg Config) ([]schema.Chunk, error) {
	if err := validateMaxSize(cfg.MaxSize); err != nil {
		return nil, err
	}
	if text == "" {
		return []schema.Chunk{}, nil
	}

	var chunks []schema.Chunk
	groupStart := 0
	groupSize := 0
	groupLabel := ""
	open := false

	flush := func(end int) {
		if open && end > groupStart {
			chunks = append(chunks, schema.NewChunk(text[groupStart:end], groupStart, end, schema.ChunkMetadata{
				Method:  MethodMarkdown,
				Section: groupLabel,
			}))
		}
		open = false
		groupSize = 0
	}
	begin := func(start int, label string) {
		if !open {
			groupStart = start
			groupLabel = label
			open = true
		}
	}

	for _, b := range parseBlocks(text) {
		switch b.kind {
		case blockHeading:
			flush(b.start)
			begin(b.start, b.section)
			groupSize += runeLen(text[b.start:b.end])

		case blockFence:
			size := runeLen(text[b.start:b.end])
			if open && groupSize+size > cfg.MaxSize {
				flush(b.start)
			}
			if size > cfg.MaxSize {
				// The fence is atomic, so it becomes its own oversized chunk.
				chunks = append(chunks, schema.NewChunk(text[b.start:b.end], b.start, b.end, schema.ChunkMetadata{
					Method:  MethodMarkdown,
					Section: b.section,
				}))
				continue
			}
			begin(b.start, b.section)
			groupSize += size

		case blockContent:
			for _, p := range paragraphSpans(text[b.start:b.end]) {
				start, end := b.start+p.start, b.start+p.end
				size := runeLen(text[start:end])
				if open && groupSize+size > cfg.MaxSize {
					flush(start)
				}
				begin(start, b.section)
				groupSize += size
			}
		}
	}
	flush(len(text))
	return chunks, nil
}
