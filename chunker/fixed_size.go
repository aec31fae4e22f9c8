package chunker

import "github.com/sevigo/textchunk/schema"

// FixedSizeChunker partitions text into contiguous chunks of exactly MaxSize
// characters; the final chunk holds the remainder.
type FixedSizeChunker struct{}

func (FixedSizeChunker) Name() string { return MethodFixedSize }

func (FixedSizeChunker) Chunk(text string, cfg Config) ([]schema.Chunk, error) {
	if err := validateMaxSize(cfg.MaxSize); err != nil {
		return nil, err
	}
	if text == "" {
		return []schema.Chunk{}, nil
	}
	return chunksFromSpans(text, fixedSpans(text, cfg.MaxSize), MethodFixedSize), nil
}

// chunksFromSpans materializes tiling spans as chunks. Every chunk text is
// the exact slice of the input covered by its span.
func chunksFromSpans(text string, spans []span, method string) []schema.Chunk {
	chunks := make([]schema.Chunk, 0, len(spans))
	for _, s := range spans {
		chunks = append(chunks, schema.NewChunk(text[s.start:s.end], s.start, s.end, schema.ChunkMetadata{
			Method: method,
		}))
	}
	return chunks
}
