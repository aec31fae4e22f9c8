package schema_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/textchunk/schema"
)

func TestNewChunk(t *testing.T) {
	chunk := schema.NewChunk("hello", 0, 5, schema.ChunkMetadata{Method: "fixed_size"})

	assert.Equal(t, "hello", chunk.Text)
	assert.Equal(t, 0, chunk.Start)
	assert.Equal(t, 5, chunk.End)
	assert.Equal(t, "fixed_size", chunk.Metadata.Method)

	_, err := uuid.Parse(chunk.ID)
	assert.NoError(t, err, "chunk ids are uuids")

	other := schema.NewChunk("hello", 0, 5, schema.ChunkMetadata{Method: "fixed_size"})
	assert.NotEqual(t, chunk.ID, other.ID)
}

func TestChunkSize(t *testing.T) {
	assert.Equal(t, 5, schema.Chunk{Text: "hello"}.Size())
	assert.Equal(t, 3, schema.Chunk{Text: "日本語"}.Size(), "size counts runes, not bytes")
	assert.Equal(t, 0, schema.Chunk{}.Size())
}

func TestChunkIsEmpty(t *testing.T) {
	assert.True(t, schema.Chunk{}.IsEmpty())
	assert.False(t, schema.Chunk{Text: " "}.IsEmpty())
}

func TestChunkString(t *testing.T) {
	t.Run("ShortTextVerbatim", func(t *testing.T) {
		s := schema.Chunk{ID: "abc", Text: "short", Start: 0, End: 5}.String()
		assert.Contains(t, s, `"short"`)
		assert.Contains(t, s, "abc")
	})

	t.Run("LongTextTruncated", func(t *testing.T) {
		s := schema.Chunk{Text: strings.Repeat("a", 80)}.String()
		assert.Contains(t, s, "...")
		assert.NotContains(t, s, strings.Repeat("a", 80))
	})

	t.Run("TruncationRespectsRuneBoundaries", func(t *testing.T) {
		s := schema.Chunk{Text: strings.Repeat("語", 40)}.String()
		assert.True(t, strings.Contains(s, "語..."), "preview must not cut a rune in half: %s", s)
	})
}

func TestChunkJSON(t *testing.T) {
	t.Run("OmitsEmptyOptionalFields", func(t *testing.T) {
		chunk := schema.NewChunk("x", 0, 1, schema.ChunkMetadata{Method: "paragraph"})
		data, err := json.Marshal(chunk)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "overlap_chars")
		assert.NotContains(t, string(data), "section")
		assert.NotContains(t, string(data), "parent_chunk_id")
	})

	t.Run("OverlapZeroIsStillEmitted", func(t *testing.T) {
		overlap := 0
		chunk := schema.NewChunk("x", 0, 1, schema.ChunkMetadata{
			Method:       "sliding_window",
			OverlapChars: &overlap,
		})
		data, err := json.Marshal(chunk)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"overlap_chars":0`)
	})
}
