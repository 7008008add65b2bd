// Package chunker splits raw document text into fixed-width chunks for embedding.
package chunker

// Chunker performs a greedy, non-overlapping fixed-width split of text.
// The width is measured in Unicode code points so multi-byte characters
// are never cut mid-sequence.
type Chunker struct {
	size int
}

// New creates a Chunker producing chunks of at most size characters.
func New(size int) *Chunker {
	if size <= 0 {
		size = 1
	}
	return &Chunker{size: size}
}

// Split segments text into ordered chunks of at most the configured width.
// All characters are preserved, including whitespace and newlines, so the
// concatenation of the returned chunks equals the input exactly. Empty
// input yields no chunks.
func (c *Chunker) Split(text string) []string {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	chunks := make([]string, 0, (len(runes)+c.size-1)/c.size)

	for start := 0; start < len(runes); start += c.size {
		end := start + c.size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}

	return chunks
}
