package chunker

import (
	"github.com/google/uuid"

	"github.com/sevigo/textchunk/schema"
)

// RecursiveChunker guarantees that every emitted chunk stays within the size
// budget (a hard ceiling, unlike the soft budget of the greedy algorithms).
// It walks three explicit strategy levels: paragraph grouping, sentence
// grouping inside oversized paragraphs, and fixed-size tiling inside
// oversized sentences. Fixed-size tiling has no minimum granularity, so the
// walk always terminates and its depth never depends on the input.
type RecursiveChunker struct{}

func (RecursiveChunker) Name() string { return MethodRecursive }

func (RecursiveChunker) Chunk(text string, cfg Config) ([]schema.Chunk, error) {
	if err := validateMaxSize(cfg.MaxSize); err != nil {
		return nil, err
	}
	if text == "" {
		return []schema.Chunk{}, nil
	}

	var chunks []schema.Chunk
	for _, pg := range greedyGroup(text, paragraphSpans(text), cfg.MaxSize) {
		if runeLen(text[pg.start:pg.end]) <= cfg.MaxSize {
			chunks = append(chunks, schema.NewChunk(text[pg.start:pg.end], pg.start, pg.end, schema.ChunkMetadata{
				Method: MethodRecursiveParagraph,
			}))
			continue
		}

		// The paragraph unit exceeds the ceiling; its children reference the
		// id it would have carried.
		paragraphID := uuid.NewString()
		paragraph := text[pg.start:pg.end]
		for _, sg := range greedyGroup(paragraph, sentenceSpans(paragraph, cfg.Detector), cfg.MaxSize) {
			start, end := pg.start+sg.start, pg.start+sg.end
			if runeLen(text[start:end]) <= cfg.MaxSize {
				chunks = append(chunks, schema.NewChunk(text[start:end], start, end, schema.ChunkMetadata{
					Method:        MethodRecursiveSentence,
					ParentChunkID: paragraphID,
				}))
				continue
			}

			sentenceID := uuid.NewString()
			for _, fs := range fixedSpans(text[start:end], cfg.MaxSize) {
				fstart, fend := start+fs.start, start+fs.end
				chunks = append(chunks, schema.NewChunk(text[fstart:fend], fstart, fend, schema.ChunkMetadata{
					Method:        MethodRecursiveFixedSize,
					ParentChunkID: sentenceID,
				}))
			}
		}
	}
	return chunks, nil
}
