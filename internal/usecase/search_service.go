package usecase

import (
	"log"
	"sort"

	"github.com/dermalens/backend/internal/catalog"
	"github.com/dermalens/backend/internal/domain"
	"github.com/dermalens/backend/internal/embedding"
)

// SearchService ranks catalog products against a free-text query using
// cosine similarity of text embeddings. The catalog is small enough that a
// full scan-and-score per query is the deliberate design; there is no index.
type SearchService struct {
	catalog            *catalog.Static
	enableDebugLogging bool
}

// NewSearchService creates a search service over the given catalog.
func NewSearchService(cat *catalog.Static, enableDebugLogging bool) *SearchService {
	return &SearchService{
		catalog:            cat,
		enableDebugLogging: enableDebugLogging,
	}
}

// Search returns the topK most similar products, sorted by descending score.
// Ties preserve catalog order (stable sort). If topK exceeds the catalog
// size the whole catalog is returned; an empty catalog returns an empty
// slice. An empty query scores 0 against everything and never errors.
func (s *SearchService) Search(query string, topK int) []domain.RankedProduct {
	products := s.catalog.Products()
	if len(products) == 0 || topK <= 0 {
		return nil
	}

	queryVec := embedding.Embed(query)

	ranked := make([]domain.RankedProduct, 0, len(products))
	for i, p := range products {
		productVec := embedding.Embed(s.catalog.SearchText(i))
		score := embedding.Cosine(queryVec, productVec)
		ranked = append(ranked, domain.RankedProduct{Product: p, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if topK < len(ranked) {
		ranked = ranked[:topK]
	}

	if s.enableDebugLogging {
		log.Printf("[SEARCH] query=%q topK=%d returned=%d", query, topK, len(ranked))
	}

	return ranked
}
