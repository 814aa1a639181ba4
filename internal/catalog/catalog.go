package catalog

import (
	"strings"

	"github.com/dermalens/backend/internal/domain"
)

// Static is an immutable in-memory product catalog. It is built once at
// startup and shared by every request; no locking is needed because it is
// never mutated after construction.
type Static struct {
	products   []domain.Product
	searchText []string
}

// New builds a catalog from the given products. The search text for each
// product is precomputed here: the authored description is enriched with
// ingredient and usage clauses so similarity search sees that vocabulary
// without a separate field.
func New(products []domain.Product) *Static {
	c := &Static{
		products:   products,
		searchText: make([]string, len(products)),
	}
	for i, p := range products {
		c.searchText[i] = buildSearchText(p)
	}
	return c
}

// Default returns the authored store catalog.
func Default() *Static {
	return New(products)
}

// Products returns the full product list in catalog order.
func (c *Static) Products() []domain.Product {
	return c.products
}

// SearchText returns the enriched text used to embed product i.
func (c *Static) SearchText(i int) string {
	return c.searchText[i]
}

// Len returns the number of products in the catalog.
func (c *Static) Len() int {
	return len(c.products)
}

func buildSearchText(p domain.Product) string {
	var b strings.Builder
	b.WriteString(p.Name)
	b.WriteString(" ")
	b.WriteString(p.Description)
	if p.Ingredients != "" {
		b.WriteString(" Ingredients: ")
		b.WriteString(p.Ingredients)
	}
	if p.Usage != "" {
		b.WriteString(" Usage: ")
		b.WriteString(p.Usage)
	}
	b.WriteString(" ")
	b.WriteString(p.Category)
	if len(p.ForConditions) > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Join(p.ForConditions, " "))
	}
	return b.String()
}
