// Package config loads environment-sourced configuration for the askdocs service.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Fixed service parameters. These are deliberately not configurable:
// the collection schema, chunking, and retrieval behavior must match
// whatever is already stored in Qdrant.
const (
	// CollectionName is the single Qdrant collection for all uploaded documents.
	CollectionName = "my-collection"

	// ChunkSize is the maximum chunk length in characters (Unicode code points).
	ChunkSize = 500

	// RetrievalLimit is the number of nearest chunks retrieved per question.
	RetrievalLimit = 3

	// EmbeddingModel is the model used for chunk and query embeddings.
	EmbeddingModel = "text-embedding-3-small"

	// VectorDimension is the embedding size for text-embedding-3-small.
	VectorDimension = 1536

	// CompletionModel is the chat model used to generate answers.
	CompletionModel = "llama-3.3-70b-versatile"

	// CompletionBaseURL is the OpenAI-compatible endpoint for completions.
	CompletionBaseURL = "https://api.groq.com/openai/v1"
)

// Qdrant holds vector store connection settings.
type Qdrant struct {
	Host   string
	Port   int
	APIKey string
	UseTLS bool
}

// Config holds all environment-sourced settings for the HTTP server.
type Config struct {
	// Port is the HTTP listening port.
	Port int

	// StaticDir is the directory of public assets served at /.
	StaticDir string

	// Qdrant addresses the vector store's gRPC API.
	Qdrant Qdrant

	// OpenAIAPIKey authenticates embedding requests.
	OpenAIAPIKey string

	// GroqAPIKey authenticates completion requests.
	GroqAPIKey string
}

// LoadQdrant reads the vector store settings from the environment.
// QDRANT_URL accepts http(s)://host[:port] or a bare host:port pair;
// https implies TLS for the gRPC channel.
func LoadQdrant() (Qdrant, error) {
	q := Qdrant{
		Host:   "localhost",
		Port:   6334,
		APIKey: os.Getenv("QDRANT_API_KEY"),
	}

	if raw := os.Getenv("QDRANT_URL"); raw != "" {
		host, port, tls, err := parseQdrantURL(raw)
		if err != nil {
			return Qdrant{}, fmt.Errorf("parse QDRANT_URL: %w", err)
		}
		q.Host = host
		q.Port = port
		q.UseTLS = tls
	}

	return q, nil
}

// Load reads the full server configuration from the environment,
// applying defaults. Both provider API keys are required.
func Load() (*Config, error) {
	qdrant, err := LoadQdrant()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:         getEnvInt("PORT", 3000),
		StaticDir:    getEnv("STATIC_DIR", "public"),
		Qdrant:       qdrant,
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		GroqAPIKey:   os.Getenv("GROQ_API_KEY"),
	}

	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	if cfg.GroqAPIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY environment variable not set")
	}

	return cfg, nil
}

// parseQdrantURL extracts host, port, and TLS mode from a Qdrant URL.
func parseQdrantURL(raw string) (host string, port int, tls bool, err error) {
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", 0, false, err
	}
	if u.Hostname() == "" {
		return "", 0, false, fmt.Errorf("missing host in %q", raw)
	}

	tls = u.Scheme == "https"
	port = 6334
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil {
			return "", 0, false, fmt.Errorf("invalid port in %q", raw)
		}
	}

	return u.Hostname(), port, tls, nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}
