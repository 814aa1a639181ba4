package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/dermalens/backend/internal/catalog"
	"github.com/dermalens/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// Generation shaping constants
const (
	temperatureMedical = 0.6
	temperatureDefault = 0.7
	topPDefault        = 0.9
	maxTokensLong      = 350 // comparison and routine answers
	maxTokensShort     = 250
)

const fallbackDescriptionRunes = 150

// RecommendConfig holds configuration for the recommendation service
type RecommendConfig struct {
	// TopK is the candidate count for queries without a price constraint.
	// Price-constrained queries always search the whole catalog so strict
	// filtering cannot empty a small pre-filtered list.
	TopK int
	// ContextLimit caps how many candidates are rendered into the prompt.
	ContextLimit int
	// MaxProducts caps the products field of the final response.
	MaxProducts int
	// StrictConditionFilter disables the degrade-to-unfiltered rule: when a
	// condition filter matches nothing, return nothing instead of the
	// broader ranking.
	StrictConditionFilter bool
	CacheTTL              time.Duration
	EnableDebugLogging    bool
}

// RecommendService sequences the recommendation pipeline: query analysis,
// similarity search, filtering, context assembly, the generative backend
// call, and the templated fallback when that call fails. It never returns
// an error to the caller; every failure degrades to usable text.
type RecommendService struct {
	catalog   *catalog.Static
	search    *SearchService
	generator domain.TextGenerator
	cache     domain.CacheRepository

	topK         int
	contextLimit int
	maxProducts  int
	strictFilter bool
	cacheTTL     time.Duration
	debug        bool
}

// NewRecommendService creates a recommendation service with dependencies.
// cache may be nil to disable response caching.
func NewRecommendService(
	cat *catalog.Static,
	generator domain.TextGenerator,
	cache domain.CacheRepository,
	config RecommendConfig,
) *RecommendService {
	topK := config.TopK
	if topK <= 0 {
		topK = 10
	}
	contextLimit := config.ContextLimit
	if contextLimit <= 0 {
		contextLimit = 10
	}
	maxProducts := config.MaxProducts
	if maxProducts <= 0 {
		maxProducts = 3
	}
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}

	return &RecommendService{
		catalog:      cat,
		search:       NewSearchService(cat, config.EnableDebugLogging),
		generator:    generator,
		cache:        cache,
		topK:         topK,
		contextLimit: contextLimit,
		maxProducts:  maxProducts,
		strictFilter: config.StrictConditionFilter,
		cacheTTL:     cacheTTL,
		debug:        config.EnableDebugLogging,
	}
}

// GenerateResponse answers a user query. The caller always receives a
// well-formed result: backend failures surface only as templated fallback
// text and any internal panic degrades to a generic apology with no
// products.
func (s *RecommendService) GenerateResponse(ctx context.Context, query string) (result domain.ChatResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[RAG] panic recovered while answering %q: %v", query, r)
			result = domain.ChatResult{
				Response: "Maaf, terjadi kesalahan dalam memproses permintaan Anda. " +
					"Silakan coba lagi atau hubungi customer service kami untuk bantuan.",
				Products: []domain.Product{},
			}
		}
	}()

	cacheKey := s.cacheKey(query)
	if cached, ok := s.getCached(ctx, cacheKey); ok {
		if s.debug {
			log.Printf("[RAG] cache hit for %q", query)
		}
		return cached
	}

	result, degraded := s.respond(ctx, query)

	// Only generator-backed answers are worth replaying.
	if !degraded {
		s.setCached(ctx, cacheKey, result)
	}

	return result
}

// respond runs the pipeline and reports whether the answer came from the
// fallback path.
func (s *RecommendService) respond(ctx context.Context, query string) (domain.ChatResult, bool) {
	intent := ClassifyIntent(query)
	priceLimit, hasPrice := ExtractPrice(query)
	conditions := ExtractConditions(query)

	if s.debug {
		log.Printf("[RAG] query=%q intent=%+v priceLimit=%d conditions=%v",
			query, intent, priceLimit, conditions)
	}

	var candidates []domain.RankedProduct
	if !intent.MedicalOnly() {
		topK := s.topK
		if hasPrice {
			// Strict price filtering over a small pre-filtered topK can
			// eliminate everything, so rank the whole catalog instead.
			topK = s.catalog.Len()
		}
		candidates = s.search.Search(query, topK)
	}

	if hasPrice {
		candidates = filterByPrice(candidates, priceLimit)
	}
	if len(conditions) > 0 {
		candidates = s.filterByConditions(candidates, conditions)
	}

	contextCandidates := candidates
	if len(contextCandidates) > s.contextLimit {
		contextCandidates = contextCandidates[:s.contextLimit]
	}
	productContext := BuildContext(contextCandidates, priceLimit, conditions)
	instruction := buildInstruction(intent, priceLimit, hasPrice)
	prompt := BuildPrompt(query, productContext, instruction)

	opts := domain.GenerateOptions{
		Temperature: temperatureDefault,
		TopP:        topPDefault,
		MaxTokens:   maxTokensShort,
	}
	if intent.MedicalInfo {
		opts.Temperature = temperatureMedical
	}
	if intent.Comparison || intent.Routine {
		opts.MaxTokens = maxTokensLong
	}

	text, err := s.generator.Generate(ctx, prompt, opts)
	if err == nil {
		products := []domain.Product{}
		if !intent.MedicalOnly() {
			products = s.topProducts(candidates)
		}
		return domain.ChatResult{Response: text, Products: products}, false
	}

	log.Printf("[RAG] generator failed, using fallback: %v", err)
	return s.fallback(intent, candidates, priceLimit, hasPrice), true
}

// buildInstruction selects the single response-shaping instruction for the
// generative backend. Intent flags are not mutually exclusive but only one
// instruction block can be sent, chosen by this precedence:
// medical-info-only > price-constrained > comparison > routine > none.
func buildInstruction(intent domain.Intent, priceLimit int, hasPrice bool) string {
	switch {
	case intent.MedicalOnly():
		return "\n\nIMPORTANT: User is asking for MEDICAL/EDUCATIONAL information about a skin condition. " +
			"Provide clear, informative explanation about the condition. DO NOT recommend products unless " +
			"explicitly asked. Always advise consulting a dermatologist for proper diagnosis and treatment."
	case hasPrice:
		return fmt.Sprintf("\n\nIMPORTANT: User has budget constraint of Rp %s. "+
			"ONLY recommend products within this budget. Clearly mention prices.", formatRupiah(priceLimit))
	case intent.Comparison:
		return "\n\nIMPORTANT: User wants product comparison. Provide detailed comparison of features, " +
			"ingredients, benefits, and value for money. Help them make informed decision."
	case intent.Routine:
		return "\n\nIMPORTANT: User asking about skincare routine. Provide step-by-step guidance " +
			"with product order and timing. Explain the purpose of each step."
	}
	return ""
}

// filterByPrice drops candidates above the limit and re-sorts the remainder
// ascending by price. This deliberately supersedes the similarity ranking:
// for budget queries the cheapest match comes first.
func filterByPrice(candidates []domain.RankedProduct, limit int) []domain.RankedProduct {
	var kept []domain.RankedProduct
	for _, c := range candidates {
		if c.Product.Price <= limit {
			kept = append(kept, c)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Product.Price < kept[j].Product.Price
	})
	return kept
}

// filterByConditions keeps candidates whose for-conditions labels overlap
// the extracted condition tags. When nothing overlaps, the pre-filter list
// is kept instead (unless strict filtering is configured): a condition
// filter must degrade to the broader ranking, never zero out results.
func (s *RecommendService) filterByConditions(candidates []domain.RankedProduct, conditions []string) []domain.RankedProduct {
	var kept []domain.RankedProduct
	for _, c := range candidates {
		joined := strings.ToLower(strings.Join(c.Product.ForConditions, " "))
		for _, cond := range conditions {
			if strings.Contains(joined, cond) {
				kept = append(kept, c)
				break
			}
		}
	}
	if len(kept) == 0 && !s.strictFilter {
		return candidates
	}
	return kept
}

// topProducts returns at most maxProducts candidates, deduplicated by id.
func (s *RecommendService) topProducts(candidates []domain.RankedProduct) []domain.Product {
	products := make([]domain.Product, 0, s.maxProducts)
	seen := make(map[string]bool)
	for _, c := range candidates {
		if seen[c.Product.ID] {
			continue
		}
		seen[c.Product.ID] = true
		products = append(products, c.Product)
		if len(products) == s.maxProducts {
			break
		}
	}
	return products
}

// fallback synthesizes a templated response when the generative backend is
// unavailable.
func (s *RecommendService) fallback(intent domain.Intent, candidates []domain.RankedProduct, priceLimit int, hasPrice bool) domain.ChatResult {
	if intent.MedicalInfo {
		return domain.ChatResult{
			Response: "Untuk informasi medis yang akurat mengenai kondisi kulit, saya sangat menyarankan " +
				"Anda berkonsultasi langsung dengan dokter kulit (dermatologist). Mereka dapat memberikan " +
				"diagnosis yang tepat dan perawatan yang sesuai dengan kondisi Anda." +
				"\n\nJika Anda memerlukan produk perawatan kulit umum, saya dengan senang hati dapat " +
				"membantu merekomendasikan produk yang sesuai!",
			Products: []domain.Product{},
		}
	}

	if len(candidates) == 0 {
		return domain.ChatResult{
			Response: "Maaf, saat ini saya tidak menemukan produk yang sesuai dengan kriteria Anda. " +
				"Coba jelaskan kebutuhan skincare Anda dengan lebih detail, atau hubungi " +
				"customer service kami untuk bantuan lebih lanjut!",
			Products: []domain.Product{},
		}
	}

	products := s.topProducts(candidates)

	var b strings.Builder
	b.WriteString("Berdasarkan kebutuhan Anda, berikut rekomendasi produk dari kami:\n\n")
	for i, p := range products {
		fmt.Fprintf(&b, "%d. **%s** (Rp %s)\n", i+1, p.Name, formatRupiah(p.Price))
		fmt.Fprintf(&b, "   %s...\n\n", truncateRunes(p.Description, fallbackDescriptionRunes))
	}
	if hasPrice {
		fmt.Fprintf(&b, "\nSemua produk di atas sesuai dengan budget Anda (<= Rp %s). ", formatRupiah(priceLimit))
	}
	b.WriteString("\n\nProduk-produk ini dipilih berdasarkan kecocokan dengan kebutuhan skincare Anda. " +
		"Untuk hasil terbaik, gunakan secara rutin sesuai petunjuk penggunaan. " +
		"Jika ada pertanyaan lebih lanjut, jangan ragu untuk bertanya!")

	return domain.ChatResult{Response: b.String(), Products: products}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// cacheKey normalizes a query for use as cache key.
// Format: "chat:{normalized_query}"
func (s *RecommendService) cacheKey(query string) string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	normalized = nonAlphanumericRegex.ReplaceAllString(normalized, "")
	normalized = multipleSpacesRegex.ReplaceAllString(normalized, " ")
	return "chat:" + normalized
}

func (s *RecommendService) getCached(ctx context.Context, key string) (domain.ChatResult, bool) {
	if s.cache == nil {
		return domain.ChatResult{}, false
	}
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return domain.ChatResult{}, false
	}

	// The memory cache JSON round-trips stored values, so re-marshal into
	// the typed result.
	raw, err := json.Marshal(value)
	if err != nil {
		return domain.ChatResult{}, false
	}
	var result domain.ChatResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return domain.ChatResult{}, false
	}
	if result.Products == nil {
		result.Products = []domain.Product{}
	}
	return result, true
}

func (s *RecommendService) setCached(ctx context.Context, key string, result domain.ChatResult) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, result, s.cacheTTL); err != nil {
		log.Printf("[RAG] failed to cache response: %v", err)
	}
}
