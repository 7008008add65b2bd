package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// TestSplit_ChunkCount verifies that a text of length L produces
// ceil(L/size) chunks, each within the size limit.
func TestSplit_ChunkCount(t *testing.T) {
	tests := []struct {
		name   string
		length int
		size   int
		want   int
	}{
		{"exact multiple", 1000, 500, 2},
		{"one over", 1001, 500, 3},
		{"one under", 999, 500, 2},
		{"single char", 1, 500, 1},
		{"smaller than size", 42, 500, 1},
		{"exactly size", 500, 500, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := strings.Repeat("a", tt.length)
			chunks := New(tt.size).Split(text)

			if len(chunks) != tt.want {
				t.Errorf("Expected %d chunks, got %d", tt.want, len(chunks))
			}
			for i, chunk := range chunks {
				if n := utf8.RuneCountInString(chunk); n > tt.size {
					t.Errorf("Chunk %d has %d characters, limit is %d", i, n, tt.size)
				}
			}
		})
	}
}

// TestSplit_RoundTrip verifies that concatenating the chunks reproduces
// the original text, whitespace and newlines included.
func TestSplit_RoundTrip(t *testing.T) {
	text := "First paragraph with some text.\n\nSecond paragraph.\n\tIndented line.\n" +
		strings.Repeat("filler content ", 100)

	chunks := New(500).Split(text)

	if got := strings.Join(chunks, ""); got != text {
		t.Errorf("Round trip failed: concatenated chunks differ from input")
	}
}

// TestSplit_Empty verifies empty input produces zero chunks.
func TestSplit_Empty(t *testing.T) {
	chunks := New(500).Split("")
	if len(chunks) != 0 {
		t.Errorf("Expected 0 chunks for empty input, got %d", len(chunks))
	}
}

// TestSplit_MultiByte verifies multi-byte characters are never cut
// mid-sequence and the width is counted in code points, not bytes.
func TestSplit_MultiByte(t *testing.T) {
	text := strings.Repeat("日本語テキスト", 100) // 600 runes, 1800 bytes

	chunks := New(500).Split(text)

	if len(chunks) != 2 {
		t.Fatalf("Expected 2 chunks, got %d", len(chunks))
	}
	if n := utf8.RuneCountInString(chunks[0]); n != 500 {
		t.Errorf("First chunk: expected 500 characters, got %d", n)
	}
	for i, chunk := range chunks {
		if !utf8.ValidString(chunk) {
			t.Errorf("Chunk %d contains invalid UTF-8", i)
		}
	}
	if strings.Join(chunks, "") != text {
		t.Errorf("Round trip failed for multi-byte text")
	}
}

// TestSplit_OrderPreserved verifies chunks come back in document order.
func TestSplit_OrderPreserved(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 26; i++ {
		b.WriteString(strings.Repeat(string(rune('a'+i)), 100))
	}

	chunks := New(500).Split(b.String())

	prev := byte(0)
	for i, chunk := range chunks {
		first := chunk[0]
		if first < prev {
			t.Errorf("Chunk %d out of order: %q follows %q", i, first, prev)
		}
		prev = chunk[len(chunk)-1]
	}
}
