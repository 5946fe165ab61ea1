package cmd

import (
	"context"
	"log/slog"

	"github.com/retriva/retriva/internal/config"
	"github.com/retriva/retriva/internal/corpus"
	"github.com/retriva/retriva/internal/embed"
	"github.com/retriva/retriva/internal/genai"
	"github.com/retriva/retriva/internal/index"
	"github.com/retriva/retriva/internal/search"
)

// buildRetrieval assembles the retrieval service from configuration:
// load the corpus, build the dense index, and wire the reranker. A
// missing embedding backend degrades to lexical-only retrieval; a
// missing reranker endpoint disables reranking.
func buildRetrieval(ctx context.Context, cfg *config.Config) (*search.Service, *corpus.Corpus, error) {
	docs, err := corpus.Load(cfg.Corpus.Path)
	if err != nil {
		return nil, nil, err
	}

	var dense search.DenseSearcher = search.NewNoOpDenseSearcher()
	embedder, err := embed.NewOllamaEmbedder(embed.OllamaConfig{
		Host:       cfg.Embeddings.Host,
		Model:      cfg.Embeddings.Model,
		Dimensions: cfg.Embeddings.Dimensions,
		Timeout:    cfg.Embeddings.Timeout,
		BatchSize:  cfg.Embeddings.BatchSize,
	})
	if err == nil {
		cached := embed.NewCachedEmbedder(embedder, cfg.Embeddings.CacheSize)
		searcher, buildErr := search.NewVectorSearcher(ctx, cached, docs)
		if buildErr != nil {
			slog.Warn("dense index unavailable, continuing with lexical retrieval only",
				slog.String("error", buildErr.Error()))
		} else {
			dense = searcher
		}
	} else {
		slog.Warn("embedder misconfigured, continuing with lexical retrieval only",
			slog.String("error", err.Error()))
	}

	var reranker search.Reranker = search.NewNoOpReranker()
	if cfg.Reranker.Endpoint != "" {
		reranker = search.NewHTTPReranker(search.HTTPRerankerConfig{
			Endpoint: cfg.Reranker.Endpoint,
			Model:    cfg.Reranker.Model,
			Timeout:  cfg.Reranker.Timeout,
		}, slog.Default())
	}

	svc := search.NewService(docs, dense, reranker, search.Config{
		BM25: index.BM25Params{
			K1:    cfg.Search.K1,
			B:     cfg.Search.B,
			Delta: cfg.Search.Delta,
		},
		HistoryWindow: cfg.Search.HistoryWindow,
		HistoryDecay:  cfg.Search.HistoryDecay,
	}, slog.Default())

	return svc, docs, nil
}

// buildGenerator creates the answer-generation client from configuration.
func buildGenerator(cfg *config.Config) (genai.Generator, error) {
	return genai.NewOpenAIGenerator(genai.OpenAIConfig{
		BaseURL:     cfg.Generation.BaseURL,
		Token:       cfg.Generation.Token,
		Model:       cfg.Generation.Model,
		Temperature: cfg.Generation.Temperature,
	}, slog.Default())
}
