package domain

// Intent holds the coarse query classification flags. Multiple flags may be
// set at once; all false means a generic product/informational query.
type Intent struct {
	MedicalInfo   bool `json:"medical_info"`
	ProductSearch bool `json:"product_search"`
	PriceQuery    bool `json:"price_query"`
	Comparison    bool `json:"comparison"`
	Routine       bool `json:"routine"`
	Ingredient    bool `json:"ingredient"`
}

// MedicalOnly reports whether the query asks for medical information without
// also asking for products. Such queries must never return product
// recommendations.
func (i Intent) MedicalOnly() bool {
	return i.MedicalInfo && !i.ProductSearch
}

// GenerateOptions controls the generative backend call.
type GenerateOptions struct {
	Temperature float64
	TopP        float64
	MaxTokens   int
}
