package chunker

import "github.com/sevigo/textchunk/schema"

// SentenceChunker greedily accumulates whole sentences into chunks until
// adding the next sentence would exceed the size budget. A single sentence
// longer than the budget is emitted whole, never split mid-sentence.
type SentenceChunker struct{}

func (SentenceChunker) Name() string { return MethodSentence }

func (SentenceChunker) Chunk(text string, cfg Config) ([]schema.Chunk, error) {
	if err := validateMaxSize(cfg.MaxSize); err != nil {
		return nil, err
	}
	if text == "" {
		return []schema.Chunk{}, nil
	}
	groups := greedyGroup(text, sentenceSpans(text, cfg.Detector), cfg.MaxSize)
	return chunksFromSpans(text, groups, MethodSentence), nil
}
