package usecase

import (
	"strings"

	"github.com/dermalens/backend/internal/domain"
)

// intentRule pairs an intent category with its ordered trigger phrases.
// Triggers are matched as case-insensitive substrings of the query; this is
// a coarse keyword approximation, not NLP classification, kept as a rule
// table so it stays testable and extensible.
type intentRule struct {
	category string
	triggers []string
}

const (
	intentMedicalInfo   = "medical_info"
	intentProductSearch = "product_search"
	intentPriceQuery    = "price_query"
	intentComparison    = "comparison"
	intentRoutine       = "routine"
	intentIngredient    = "ingredient"
)

var intentRules = []intentRule{
	{intentMedicalInfo, []string{
		"apa itu", "what is", "jelaskan", "explain", "maksud", "meaning", "define",
		"gejala", "symptom", "penyebab", "cause", "cara mengobati", "how to treat",
		"berbahaya", "danger", "menular", "contagious", "ciri-ciri", "characteristics",
		"kenapa", "mengapa", "why", "apakah", "is it", "bisakah", "can it",
	}},
	{intentProductSearch, []string{
		"rekomendasi", "recommend", "saran", "suggest", "produk", "product",
		"bagus", "good", "cocok", "suitable", "ada", "have", "jual", "sell",
		"cari", "looking for", "butuh", "need", "mau", "want", "ingin", "wish",
	}},
	{intentPriceQuery, []string{
		"harga", "price", "murah", "cheap", "mahal", "expensive", "budget",
		"terjangkau", "affordable", "di bawah", "dibawah", "under", "maksimal", "maximum",
	}},
	{intentComparison, []string{
		"banding", "compare", "vs", "atau", "or", "lebih baik", "better",
		"pilih", "choose", "mana", "which", "perbedaan", "difference",
	}},
	{intentRoutine, []string{
		"rutinitas", "routine", "urutan", "order", "step", "langkah",
		"cara pakai", "how to use", "pagi", "morning", "malam", "night",
	}},
	{intentIngredient, []string{
		"kandungan", "ingredient", "komposisi", "composition", "mengandung", "contains",
		"ada niacinamide", "ada retinol", "ada vitamin", "dengan", "with",
	}},
}

// ClassifyIntent tags a query with zero or more intent categories. Multiple
// categories may be true at once; none being true is the generic flow.
func ClassifyIntent(query string) domain.Intent {
	lower := strings.ToLower(query)

	var intent domain.Intent
	for _, rule := range intentRules {
		matched := false
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		switch rule.category {
		case intentMedicalInfo:
			intent.MedicalInfo = true
		case intentProductSearch:
			intent.ProductSearch = true
		case intentPriceQuery:
			intent.PriceQuery = true
		case intentComparison:
			intent.Comparison = true
		case intentRoutine:
			intent.Routine = true
		case intentIngredient:
			intent.Ingredient = true
		}
	}
	return intent
}
