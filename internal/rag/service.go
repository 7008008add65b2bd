// Package rag implements the ingest and query pipelines of the askdocs service.
package rag

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tutorkit/askdocs/internal/chunker"
	"github.com/tutorkit/askdocs/internal/config"
	"github.com/tutorkit/askdocs/internal/storage"
)

// Embedder converts texts into unit-normalized embedding vectors.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// VectorStore persists and searches chunk points.
type VectorStore interface {
	UpsertPoints(ctx context.Context, points []*storage.Point) error
	SearchPoints(ctx context.Context, vector []float32, limit int) ([]*storage.ScoredPoint, error)
}

// Completer generates an answer from a system+user message pair.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Answer is the result of a question: the generated text and the context
// that grounded it.
type Answer struct {
	Answer      string
	UsedContext string
}

// Service orchestrates the ingest and query pipelines.
type Service struct {
	chunker   *chunker.Chunker
	embedder  Embedder
	store     VectorStore
	completer Completer
	logger    *zap.Logger
}

// NewService creates a Service wired to the given collaborators.
func NewService(embedder Embedder, store VectorStore, completer Completer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		chunker:   chunker.New(config.ChunkSize),
		embedder:  embedder,
		store:     store,
		completer: completer,
		logger:    logger,
	}
}

// Ingest splits the uploaded document into chunks, embeds them in one
// batched provider call, and upserts all resulting points in a single
// batch. Returns the number of chunks stored. Re-ingesting identical
// content is additive: every call mints fresh point ids.
func (s *Service) Ingest(ctx context.Context, document []byte) (int, error) {
	start := time.Now()

	chunks := s.chunker.Split(string(document))
	if len(chunks) == 0 {
		s.logger.Info("ingest skipped, empty document")
		return 0, nil
	}

	embeddings, err := s.embedder.EmbedTexts(ctx, chunks)
	if err != nil {
		s.logger.Warn("embedding failed", zap.Int("chunks", len(chunks)), zap.Error(err))
		return 0, embeddingError(err)
	}

	points := make([]*storage.Point, len(chunks))
	for i, chunk := range chunks {
		points[i] = &storage.Point{
			ID:     uuid.New().String(),
			Vector: embeddings[i],
			Text:   chunk,
		}
	}

	if err := s.store.UpsertPoints(ctx, points); err != nil {
		s.logger.Warn("upsert failed", zap.Int("points", len(points)), zap.Error(err))
		return 0, storeError(err)
	}

	s.logger.Info("ingest complete",
		zap.Int("chunks", len(chunks)),
		zap.Int("bytes", len(document)),
		zap.Duration("duration", time.Since(start)),
	)

	return len(chunks), nil
}

// Ask embeds the question, retrieves the nearest stored chunks, and asks
// the completion provider to answer strictly from that context.
func (s *Service) Ask(ctx context.Context, question string) (*Answer, error) {
	if question == "" {
		return nil, validationError("Query is required")
	}

	start := time.Now()

	vector, err := s.embedder.EmbedText(ctx, question)
	if err != nil {
		s.logger.Warn("query embedding failed", zap.Error(err))
		return nil, embeddingError(err)
	}

	hits, err := s.store.SearchPoints(ctx, vector, config.RetrievalLimit)
	if err != nil {
		s.logger.Warn("search failed", zap.Error(err))
		return nil, storeError(err)
	}

	usedContext := buildContext(hits)

	answer, err := s.completer.Complete(ctx, systemPrompt, buildUserPrompt(usedContext, question))
	if err != nil {
		s.logger.Warn("completion failed", zap.Error(err))
		return nil, completionError(err)
	}

	s.logger.Info("question answered",
		zap.Int("hits", len(hits)),
		zap.Duration("duration", time.Since(start)),
	)

	return &Answer{
		Answer:      answer,
		UsedContext: usedContext,
	}, nil
}

// buildContext concatenates hit texts in descending similarity order,
// separated by a blank line. Hits without payload text contribute an
// empty string.
func buildContext(hits []*storage.ScoredPoint) string {
	texts := make([]string, len(hits))
	for i, hit := range hits {
		texts[i] = hit.Text
	}
	return strings.Join(texts, "\n\n")
}
