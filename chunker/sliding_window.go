package chunker

import "github.com/sevigo/textchunk/schema"

// SlidingWindowChunker produces chunks of MaxSize characters where each
// chunk after the first starts Overlap characters before the previous
// chunk's end.
type SlidingWindowChunker struct{}

func (SlidingWindowChunker) Name() string { return MethodSlidingWindow }

func (SlidingWindowChunker) Chunk(text string, cfg Config) ([]schema.Chunk, error) {
	if err := validateMaxSize(cfg.MaxSize); err != nil {
		return nil, err
	}
	if err := validateOverlap(cfg.Overlap, cfg.MaxSize); err != nil {
		return nil, err
	}
	if text == "" {
		return []schema.Chunk{}, nil
	}

	offsets := runeOffsets(text)
	n := len(offsets) - 1
	step := cfg.MaxSize - cfg.Overlap

	var chunks []schema.Chunk
	for start := 0; start < n; start += step {
		end := start + cfg.MaxSize
		if end > n {
			end = n
		}

		metadata := schema.ChunkMetadata{Method: MethodSlidingWindow}
		if start > 0 {
			overlap := cfg.Overlap
			metadata.OverlapChars = &overlap
		}
		chunks = append(chunks, schema.NewChunk(
			text[offsets[start]:offsets[end]], offsets[start], offsets[end], metadata))

		if end == n {
			break
		}
	}
	return chunks, nil
}
