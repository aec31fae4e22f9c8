// Package chunker splits documents into chunks with positional and
// structural metadata. Every operation is a pure function of its inputs:
// chunks are exact slices of the original text, sized by a character budget,
// and ordered by non-decreasing start offset.
package chunker

import (
	"log/slog"

	"github.com/sevigo/textchunk/schema"
)

// Stable method names exposed by the Chunker facade.
const (
	MethodFixedSize     = "fixed_size"
	MethodSlidingWindow = "sliding_window"
	MethodSentence      = "sentence"
	MethodParagraph     = "paragraph"
	MethodMarkdown      = "markdown"
	MethodHeading       = "heading"
	MethodRecursive     = "recursive"

	// Composite tags reported by the recursive algorithm, naming the leaf
	// strategy actually applied to each chunk.
	MethodRecursiveParagraph = "recursive_paragraph"
	MethodRecursiveSentence  = "recursive_sentence"
	MethodRecursiveFixedSize = "recursive_fixed_size"
)

var methodOrder = []string{
	MethodFixedSize,
	MethodSlidingWindow,
	MethodSentence,
	MethodParagraph,
	MethodMarkdown,
	MethodHeading,
	MethodRecursive,
}

// Chunker exposes one operation per algorithm under a stable name. It holds
// no mutable state and is safe to share across concurrent callers.
type Chunker struct {
	logger   *slog.Logger
	registry *Registry
	detector DetectorVariant
}

// New creates a Chunker with all built-in algorithms registered.
func New(opts ...Option) *Chunker {
	o := options{
		logger:   slog.Default(),
		detector: DetectorSimple,
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Chunker{
		logger:   o.logger.With("component", "chunker"),
		registry: NewRegistry(o.logger),
		detector: o.detector,
	}
	for _, algorithm := range []Algorithm{
		FixedSizeChunker{},
		SlidingWindowChunker{},
		SentenceChunker{},
		ParagraphChunker{},
		MarkdownChunker{},
		NewHeadingChunker(),
		RecursiveChunker{},
	} {
		if err := c.registry.Register(algorithm); err != nil {
			c.logger.Warn("skipping algorithm registration", "method", algorithm.Name(), "error", err)
		}
	}
	return c
}

// ChunkFixed partitions text into contiguous chunks of exactly maxSize
// characters.
func (c *Chunker) ChunkFixed(text string, maxSize int) ([]schema.Chunk, error) {
	return c.run(FixedSizeChunker{}, text, Config{MaxSize: maxSize})
}

// ChunkSliding produces overlapping chunks of maxSize characters where each
// chunk after the first shares overlap characters with its predecessor.
func (c *Chunker) ChunkSliding(text string, maxSize, overlap int) ([]schema.Chunk, error) {
	return c.run(SlidingWindowChunker{}, text, Config{MaxSize: maxSize, Overlap: overlap})
}

// ChunkSentences groups whole sentences under the size budget using the
// given boundary detector.
func (c *Chunker) ChunkSentences(text string, maxSize int, detector DetectorVariant) ([]schema.Chunk, error) {
	return c.run(SentenceChunker{}, text, Config{MaxSize: maxSize, Detector: detector})
}

// ChunkParagraphs groups whole paragraphs under the size budget.
func (c *Chunker) ChunkParagraphs(text string, maxSize int) ([]schema.Chunk, error) {
	return c.run(ParagraphChunker{}, text, Config{MaxSize: maxSize})
}

// ChunkMarkdown chunks markdown text, keeping fenced code blocks atomic and
// labeling chunks with their enclosing heading.
func (c *Chunker) ChunkMarkdown(text string, maxSize int) ([]schema.Chunk, error) {
	return c.run(MarkdownChunker{}, text, Config{MaxSize: maxSize})
}

// ChunkHeadings splits text at heading boundaries, one chunk per section.
func (c *Chunker) ChunkHeadings(text string, maxSize int) ([]schema.Chunk, error) {
	return c.run(NewHeadingChunker(), text, Config{MaxSize: maxSize})
}

// ChunkRecursive splits text with a hard size ceiling, preferring paragraph
// boundaries, then sentences, then fixed-size pieces.
func (c *Chunker) ChunkRecursive(text string, maxSize int) ([]schema.Chunk, error) {
	return c.run(RecursiveChunker{}, text, Config{MaxSize: maxSize, Detector: c.detector})
}

// Chunk dispatches to a registered algorithm by method name.
func (c *Chunker) Chunk(method, text string, maxSize int) ([]schema.Chunk, error) {
	algorithm, err := c.registry.Get(method)
	if err != nil {
		return nil, err
	}
	return c.run(algorithm, text, Config{MaxSize: maxSize, Detector: c.detector})
}

// AvailableMethods returns the fixed, ordered set of supported method names.
func (c *Chunker) AvailableMethods() []string {
	methods := make([]string, len(methodOrder))
	copy(methods, methodOrder)
	return methods
}

func (c *Chunker) run(algorithm Algorithm, text string, cfg Config) ([]schema.Chunk, error) {
	chunks, err := algorithm.Chunk(text, cfg)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("chunking completed",
		"method", algorithm.Name(), "input_bytes", len(text), "chunks", len(chunks))
	return chunks, nil
}
