package chunker

// DetectorVariant selects the sentence boundary detection strategy. It is a
// closed choice: algorithms dispatch on the variant at call time.
type DetectorVariant int

const (
	// DetectorSimple treats a run of '.', '!' or '?' followed by whitespace
	// or end of text as a sentence boundary.
	DetectorSimple DetectorVariant = iota
	// DetectorUnicode additionally recognizes sentence-final marks of
	// non-Latin scripts and absorbs closing quote/bracket clusters.
	DetectorUnicode
)

func (v DetectorVariant) String() string {
	switch v {
	case DetectorUnicode:
		return "unicode"
	default:
		return "simple"
	}
}

// Default budgets for the public operations.
const (
	DefaultMaxSize           = 512
	DefaultStructuralMaxSize = 1000
	DefaultOverlap           = 64
)

// Config holds the effective parameters for one chunking call.
type Config struct {
	// MaxSize is the size budget per chunk in characters. Must be positive.
	MaxSize int
	// Overlap is the number of characters shared between consecutive
	// sliding-window chunks. Ignored by other algorithms.
	Overlap int
	// Detector selects the sentence boundary strategy for sentence-aware
	// algorithms.
	Detector DetectorVariant
}

// DefaultConfig returns the configuration used when callers pass no
// explicit parameters.
func DefaultConfig() Config {
	return Config{MaxSize: DefaultMaxSize, Detector: DetectorSimple}
}
