package chunker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/textchunk/chunker"
)

func TestParagraphChunker(t *testing.T) {
	c := chunker.ParagraphChunker{}

	t.Run("MergesUnderBudget", func(t *testing.T) {
		chunks, err := c.Chunk("A.\n\nB.", chunker.Config{MaxSize: 10})
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Equal(t, "A.\n\nB.", chunks[0].Text)
		assert.Equal(t, "paragraph", chunks[0].Metadata.Method)
	})

	t.Run("SplitsBySizeBudget", func(t *testing.T) {
		text := "First paragraph here.\n\nSecond paragraph here.\n\nThird paragraph here."
		chunks, err := c.Chunk(text, chunker.Config{MaxSize: 30})
		require.NoError(t, err)
		assert.Greater(t, len(chunks), 1)
		assertPartition(t, text, chunks)
	})

	t.Run("SingleParagraph", func(t *testing.T) {
		text := "Just one paragraph with no breaks."
		chunks, err := c.Chunk(text, chunker.Config{MaxSize: 1000})
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Equal(t, text, chunks[0].Text)
	})

	t.Run("OversizedParagraphEmittedWhole", func(t *testing.T) {
		text := "short\n\nthis paragraph is clearly longer than ten characters"
		chunks, err := c.Chunk(text, chunker.Config{MaxSize: 10})
		require.NoError(t, err)
		require.Len(t, chunks, 2)
		assertPartition(t, text, chunks)
	})

	t.Run("WhitespaceOnlyInputCoveredByOneChunk", func(t *testing.T) {
		chunks, err := c.Chunk("\n\n\n\n", chunker.Config{MaxSize: 100})
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Equal(t, "\n\n\n\n", chunks[0].Text)
	})

	t.Run("SeparatorsStayWithPrecedingParagraph", func(t *testing.T) {
		text := "alpha\n\n\nbeta"
		chunks, err := c.Chunk(text, chunker.Config{MaxSize: 8})
		require.NoError(t, err)
		require.Len(t, chunks, 2)
		assert.Equal(t, "alpha\n\n\n", chunks[0].Text)
		assert.Equal(t, "beta", chunks[1].Text)
	})

	t.Run("Empty", func(t *testing.T) {
		chunks, err := c.Chunk("", chunker.Config{MaxSize: 100})
		require.NoError(t, err)
		assert.Empty(t, chunks)
	})
}
