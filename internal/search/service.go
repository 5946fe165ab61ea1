package search

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/retriva/retriva/internal/corpus"
	rerrors "github.com/retriva/retriva/internal/errors"
	"github.com/retriva/retriva/internal/index"
)

// Config holds the tunable parameters of the retrieval service.
type Config struct {
	// BM25 holds the lexical scoring constants.
	BM25 index.BM25Params

	// HistoryWindow is the number of trailing turns used for query
	// augmentation. Zero means the default.
	HistoryWindow int

	// HistoryDecay is the per-turn weight decay. Zero means the default.
	HistoryDecay float64
}

// DefaultConfig returns the default service configuration.
func DefaultConfig() Config {
	return Config{
		BM25:          index.DefaultBM25Params(),
		HistoryWindow: DefaultHistoryWindow,
		HistoryDecay:  DefaultHistoryDecay,
	}
}

// Service is the retrieval engine. The corpus and both lexical indices
// are built once at construction and read without locking afterwards;
// all per-query state lives on the stack of a single call.
type Service struct {
	corpus   *corpus.Corpus
	bm25     *index.BM25L
	tfidf    *index.TFIDF
	dense    DenseSearcher
	reranker Reranker
	history  *HistoryWeighter
	fallback *KeywordFallback
	logger   *slog.Logger
}

// NewService builds the lexical and sparse indices over the corpus and
// wires the external collaborators.
func NewService(c *corpus.Corpus, dense DenseSearcher, reranker Reranker, cfg Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	texts := c.Texts()
	return &Service{
		corpus:   c,
		bm25:     index.NewBM25L(texts, cfg.BM25),
		tfidf:    index.NewTFIDF(texts),
		dense:    dense,
		reranker: reranker,
		history:  NewHistoryWeighter(cfg.HistoryWindow, cfg.HistoryDecay),
		fallback: NewKeywordFallback(c),
		logger:   logger,
	}
}

// GetRelevantContext selects the most relevant corpus passages for the
// query and its recent conversation history, joined into a single
// context string. It always returns a string: every internal failure
// degrades to keyword search, with the no-match message as the floor.
func (s *Service) GetRelevantContext(ctx context.Context, query string, history []Turn) string {
	augmented := s.history.Augment(query, history)

	result, err := s.retrieve(ctx, augmented)
	if err != nil {
		// The reranker is the only stage that propagates errors. Its
		// fallback runs on the original query, not the augmented one.
		s.logger.Error("retrieval failed, degrading to keyword search",
			slog.String("error", err.Error()))
		return s.fallback.Search(query)
	}
	return result
}

// retrieve runs the primary pipeline against the augmented query.
func (s *Service) retrieve(ctx context.Context, augmented string) (string, error) {
	var (
		denseResults []DenseResult
		lexicalHits  []index.Hit
	)

	// Dense and lexical search are independent reads over immutable
	// state; fan out and join before fusion. A failed signal logs and
	// contributes an empty result set rather than failing the pipeline.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		results, err := s.dense.Search(gctx, augmented, SignalPoolSize)
		if err != nil {
			s.logger.Warn("dense search failed, continuing without it",
				slog.String("error", err.Error()))
			return nil
		}
		denseResults = results
		return nil
	})
	g.Go(func() error {
		lexicalHits = s.bm25.Retrieve(augmented, SignalPoolSize)
		return nil
	})
	_ = g.Wait()

	if len(denseResults) == 0 && len(lexicalHits) == 0 {
		s.logger.Warn("all retrieval signals empty, using keyword search")
		return s.fallback.Search(augmented), nil
	}

	fused := fuse(denseResults, lexicalHits, s.corpus, s.tfidf, augmented)

	texts := make([]string, len(fused))
	for i, cand := range fused {
		texts[i] = cand.Text
	}

	scores, err := s.reranker.Score(ctx, augmented, texts)
	if err != nil {
		return "", err
	}
	if len(scores) != len(texts) {
		return "", rerrors.New(rerrors.CodeRerankFailed, "reranker returned misaligned scores")
	}

	return blend(fused, scores), nil
}

// blend combines reranker scores with pre-rerank fused scores and joins
// the top texts into the final context string.
func blend(fused []FusedCandidate, rerankScores []float64) string {
	type ranked struct {
		text  string
		score float64
	}

	combined := make([]ranked, len(fused))
	for i, cand := range fused {
		combined[i] = ranked{
			text:  cand.Text,
			score: RerankWeight*rerankScores[i] + PreRankWeight*cand.Score,
		}
	}
	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].score > combined[j].score
	})

	n := len(combined)
	if n > ContextSize {
		n = ContextSize
	}
	texts := make([]string, n)
	for i := 0; i < n; i++ {
		texts[i] = combined[i].text
	}
	return strings.Join(texts, "\n")
}
