package chunker

import "github.com/sevigo/textchunk/schema"

// ParagraphChunker splits at blank-line separators and greedily accumulates
// whole paragraphs under the size budget. An oversized single paragraph is
// emitted whole.
type ParagraphChunker struct{}

func (ParagraphChunker) Name() string { return MethodParagraph }

func (ParagraphChunker) Chunk(text string, cfg Config) ([]schema.Chunk, error) {
	if err := validateMaxSize(cfg.MaxSize); err != nil {
		return nil, err
	}
	if text == "" {
		return []schema.Chunk{}, nil
	}
	groups := greedyGroup(text, paragraphSpans(text), cfg.MaxSize)
	return chunksFromSpans(text, groups, MethodParagraph), nil
}
