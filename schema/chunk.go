package schema

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ChunkMetadata describes how a chunk was produced. It never affects
// reconstruction of the original text.
type ChunkMetadata struct {
	// Method is the name of the producing algorithm, e.g. "fixed_size" or
	// "recursive_sentence".
	Method string `json:"method"`
	// Section is the nearest enclosing heading label at the chunk's
	// position, formatted as "h{level}: {text}". Empty when no heading
	// precedes the chunk or the method is not structure-aware.
	Section string `json:"section,omitempty"`
	// OverlapChars is the number of characters shared with the preceding
	// chunk. Nil for the first chunk of a sequence and for all
	// non-overlapping methods.
	OverlapChars *int `json:"overlap_chars,omitempty"`
	// ParentChunkID references the chunk id allocated for an oversized unit
	// that had to be re-split by the recursive strategy.
	ParentChunkID string `json:"parent_chunk_id,omitempty"`
}

// Chunk is a labeled substring of an input document. Start and End are byte
// offsets into the original text, so Text == input[Start:End] always holds.
type Chunk struct {
	ID       string        `json:"id"`
	Text     string        `json:"text"`
	Start    int           `json:"start"`
	End      int           `json:"end"`
	Metadata ChunkMetadata `json:"metadata"`
}

// NewChunk creates a chunk with a fresh UUID. IDs are unique within one
// result sequence only; callers must not rely on cross-call identity.
func NewChunk(text string, start, end int, metadata ChunkMetadata) Chunk {
	return Chunk{
		ID:       uuid.NewString(),
		Text:     text,
		Start:    start,
		End:      end,
		Metadata: metadata,
	}
}

// Size returns the chunk length in characters (runes).
func (c Chunk) Size() int {
	return utf8.RuneCountInString(c.Text)
}

// IsEmpty reports whether the chunk holds no text.
func (c Chunk) IsEmpty() bool {
	return len(c.Text) == 0
}

func (c Chunk) String() string {
	preview := c.Text
	if len(preview) > 50 {
		cut := 50
		for cut > 0 && !utf8.RuneStart(preview[cut]) {
			cut--
		}
		preview = preview[:cut] + "..."
	}
	return fmt.Sprintf("Chunk(id=%s, text=%q, start=%d, end=%d)", c.ID, preview, c.Start, c.End)
}
