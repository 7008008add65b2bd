// Package main provides the askdocs administration CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tutorkit/askdocs/internal/config"
	"github.com/tutorkit/askdocs/internal/embedding"
	"github.com/tutorkit/askdocs/internal/rag"
	"github.com/tutorkit/askdocs/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "admin",
	Short: "askdocs administration tool",
	Long:  "CLI tool for managing the askdocs chunk collection in Qdrant",
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the chunk collection if it does not exist",
	Long: `Connects to Qdrant, verifies health, and creates the collection
with 1536-dimension cosine vectors. Safe to run repeatedly.

Environment variables:
  QDRANT_URL     Qdrant address (default: localhost:6334)
  QDRANT_API_KEY Qdrant API key (optional)`,
	RunE: runInit,
}

var ingestCmd = &cobra.Command{
	Use:   "ingest <files...>",
	Short: "Chunk, embed, and store text files",
	Long: `Reads each file as UTF-8 text, splits it into 500-character chunks,
embeds the chunks, and upserts them into the collection.

Environment variables:
  QDRANT_URL     Qdrant address (default: localhost:6334)
  QDRANT_API_KEY Qdrant API key (optional)
  OPENAI_API_KEY OpenAI API key for embeddings (required)`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all stored chunks",
	Long:  "Drops the collection and recreates it empty.",
	RunE:  runClear,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show collection health and point count",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(statusCmd)
}

func main() {
	// Load .env file if present (local development), ignore if missing (production)
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// connect opens a Qdrant connection from environment configuration.
// Only the Qdrant settings are needed here; the provider API keys are
// checked by the commands that use them.
func connect() (*storage.QdrantStorage, error) {
	qdrant, err := config.LoadQdrant()
	if err != nil {
		return nil, err
	}

	fmt.Printf("Connecting to Qdrant at %s:%d...\n", qdrant.Host, qdrant.Port)
	return storage.NewQdrantStorage(storage.Config{
		Host:   qdrant.Host,
		Port:   qdrant.Port,
		APIKey: qdrant.APIKey,
		UseTLS: qdrant.UseTLS,
	})
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	store, err := connect()
	if err != nil {
		return fmt.Errorf("failed to connect to Qdrant: %w", err)
	}
	defer store.Close()

	if err := store.EnsureCollection(ctx); err != nil {
		return fmt.Errorf("failed to ensure collection: %w", err)
	}

	fmt.Printf("Collection %q ready (%d-dim, cosine)\n", config.CollectionName, config.VectorDimension)
	return nil
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	start := time.Now()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	store, err := connect()
	if err != nil {
		return fmt.Errorf("failed to connect to Qdrant: %w", err)
	}
	defer store.Close()

	embeddingClient, err := embedding.NewClient(apiKey)
	if err != nil {
		return err
	}
	embedder := embedding.NewEmbedder(embeddingClient, 0)

	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()

	// The admin tool never answers questions, so no completer is wired.
	svc := rag.NewService(embedder, store, nil, logger)

	total := 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		count, err := svc.Ingest(ctx, data)
		if err != nil {
			return fmt.Errorf("ingest %s: %w", path, err)
		}

		fmt.Printf("%s: %d chunks\n", path, count)
		total += count
	}

	fmt.Println()
	fmt.Printf("Stored %d chunks from %d files in %s\n", total, len(args), time.Since(start).Round(time.Millisecond))
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	store, err := connect()
	if err != nil {
		return fmt.Errorf("failed to connect to Qdrant: %w", err)
	}
	defer store.Close()

	if err := store.ClearCollection(ctx); err != nil {
		return fmt.Errorf("failed to clear collection: %w", err)
	}

	fmt.Printf("Collection %q cleared\n", config.CollectionName)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	store, err := connect()
	if err != nil {
		return fmt.Errorf("failed to connect to Qdrant: %w", err)
	}
	defer store.Close()

	if err := store.Health(ctx); err != nil {
		return fmt.Errorf("qdrant health check failed: %w", err)
	}
	fmt.Println("Qdrant healthy")

	info, err := store.GetCollectionInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to get collection info: %w", err)
	}

	fmt.Printf("Collection: %s\n", config.CollectionName)
	fmt.Printf("Points:     %d\n", info.PointsCount)
	return nil
}
