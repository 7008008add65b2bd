package storage

// Point is the unit stored in Qdrant: a chunk of uploaded text together
// with its embedding vector.
type Point struct {
	ID     string    // UUID
	Vector []float32 // 1536-dim embedding (text-embedding-3-small)
	Text   string    // Original chunk text, stored in the payload
}

// ScoredPoint is a Point returned from similarity search with its
// cosine similarity score, higher is more similar.
type ScoredPoint struct {
	ID    string
	Text  string
	Score float64
}
