package chunker_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/textchunk/chunker"
)

func TestHeadingChunker(t *testing.T) {
	t.Run("OneChunkPerSection", func(t *testing.T) {
		c := chunker.NewHeadingChunker()
		text := "# One\n\nA.\n\n# Two\n\nB."
		chunks, err := c.Chunk(text, chunker.Config{MaxSize: 1000})
		require.NoError(t, err)
		require.Len(t, chunks, 2)
		assert.Contains(t, chunks[0].Text, "# One")
		assert.Contains(t, chunks[1].Text, "# Two")
		assertPartition(t, text, chunks)
	})

	t.Run("SectionMetadata", func(t *testing.T) {
		c := chunker.NewHeadingChunker()
		chunks, err := c.Chunk("## My Section\n\nContent here.", chunker.Config{MaxSize: 1000})
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Equal(t, "h2: My Section", chunks[0].Metadata.Section)
		assert.Equal(t, "heading", chunks[0].Metadata.Method)
	})

	t.Run("EveryLevelSplitsByDefault", func(t *testing.T) {
		c := chunker.NewHeadingChunker()
		text := "# Main\n\n## Sub 1\n\nContent.\n\n## Sub 2\n\nMore.\n"
		chunks, err := c.Chunk(text, chunker.Config{MaxSize: 1000})
		require.NoError(t, err)
		assert.Len(t, chunks, 3)
	})

	t.Run("LevelFilter", func(t *testing.T) {
		c := chunker.NewHeadingChunker(1)
		text := "# Main\n\n## Sub 1\n\nContent.\n\n## Sub 2\n\nMore.\n"
		chunks, err := c.Chunk(text, chunker.Config{MaxSize: 1000})
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Contains(t, chunks[0].Text, "Sub 1")
		assert.Contains(t, chunks[0].Text, "Sub 2")
	})

	t.Run("PreambleHasNoSection", func(t *testing.T) {
		c := chunker.NewHeadingChunker()
		text := "before any heading\n\n# First\n\nbody\n"
		chunks, err := c.Chunk(text, chunker.Config{MaxSize: 1000})
		require.NoError(t, err)
		require.Len(t, chunks, 2)
		assert.Empty(t, chunks[0].Metadata.Section)
		assert.Equal(t, "h1: First", chunks[1].Metadata.Section)
	})

	t.Run("SizeBudgetNotEnforced", func(t *testing.T) {
		c := chunker.NewHeadingChunker()
		text := "# Big\n\n" + strings.Repeat("word ", 100)
		chunks, err := c.Chunk(text, chunker.Config{MaxSize: 10})
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Greater(t, chunks[0].Size(), 10)
	})

	t.Run("HeadingsInsideFenceDoNotSplit", func(t *testing.T) {
		c := chunker.NewHeadingChunker()
		text := "# Real\n\n```\n# fake heading\n```\n"
		chunks, err := c.Chunk(text, chunker.Config{MaxSize: 1000})
		require.NoError(t, err)
		assert.Len(t, chunks, 1)
	})

	t.Run("Empty", func(t *testing.T) {
		c := chunker.NewHeadingChunker()
		chunks, err := c.Chunk("", chunker.Config{MaxSize: 100})
		require.NoError(t, err)
		assert.Empty(t, chunks)
	})
}
