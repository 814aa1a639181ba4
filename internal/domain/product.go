package domain

// Product represents a single catalog entry. Products are authored once at
// startup and never mutated, so values can be shared freely across requests.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int      `json:"price"` // rupiah
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Ingredients   string   `json:"ingredients,omitempty"`
	Usage         string   `json:"usage,omitempty"`
	ForConditions []string `json:"for_conditions,omitempty"`
}

// RankedProduct pairs a product with its similarity score for a query.
type RankedProduct struct {
	Product Product `json:"product"`
	Score   float64 `json:"score"`
}

// ChatResult is what the recommendation pipeline hands back to the caller.
// Products holds at most 3 entries and is always empty for pure
// medical-information queries.
type ChatResult struct {
	Response string    `json:"response"`
	Products []Product `json:"products"`
}
