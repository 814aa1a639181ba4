package usecase

import (
	"fmt"
	"strings"

	"github.com/dermalens/backend/internal/catalog"
	"github.com/dermalens/backend/internal/domain"
)

// BuildContext renders the candidate products into the deterministic text
// block handed to the generative backend. Entry order mirrors the input
// list; ranking, filtering, and capping are the caller's responsibility.
func BuildContext(candidates []domain.RankedProduct, priceLimit int, conditions []string) string {
	if len(candidates) == 0 {
		return ""
	}

	var b strings.Builder

	if priceLimit > 0 {
		fmt.Fprintf(&b, "\n=== PRODUCTS WITHIN BUDGET (<= Rp %s) ===\n\n", formatRupiah(priceLimit))
	} else {
		b.WriteString("\n=== AVAILABLE PRODUCTS IN OUR STORE ===\n\n")
	}

	if len(conditions) > 0 {
		fmt.Fprintf(&b, "User's Concerns: %s\n\n", strings.Join(conditions, ", "))
	}

	for i, c := range candidates {
		p := c.Product
		fmt.Fprintf(&b, "%d. %s - Rp %s\n", i+1, p.Name, formatRupiah(p.Price))
		category := p.Category
		if category == "" {
			category = "General"
		}
		fmt.Fprintf(&b, "   Category: %s\n", category)
		if len(p.ForConditions) > 0 {
			fmt.Fprintf(&b, "   Best For: %s\n", strings.Join(p.ForConditions, ", "))
		}
		fmt.Fprintf(&b, "   Description: %s\n", p.Description)
		if p.Ingredients != "" {
			fmt.Fprintf(&b, "   Key Ingredients: %s\n", p.Ingredients)
		}
		if p.Usage != "" {
			fmt.Fprintf(&b, "   Usage: %s\n", p.Usage)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// BuildPrompt assembles the full prompt for the generative backend: the
// consultant persona, the static skincare knowledge base, the product
// context, the intent-specific instruction, and the user's question.
func BuildPrompt(query, productContext, instruction string) string {
	var b strings.Builder

	b.WriteString("You are an expert skincare consultant AI for a professional online skincare store.\n\n")
	b.WriteString("KNOWLEDGE BASE:\n")
	b.WriteString(catalog.SkincareKnowledge)
	b.WriteString("\n\n")
	b.WriteString(productContext)
	b.WriteString(`
YOUR ROLE:
- Provide accurate, personalized skincare advice
- Recommend suitable products based on user's skin concerns
- Explain product benefits and usage clearly
- Guide users with professional yet friendly tone
- Always prioritize skin health and safety

RESPONSE GUIDELINES:
- Be concise but comprehensive (2-4 paragraphs)
- Recommend 1-3 specific products when relevant
- Explain WHY each product is suitable
- Mention key ingredients and their benefits
- Include usage tips when appropriate
- For serious conditions, advise medical consultation
- Stay focused on skincare topics only
`)
	b.WriteString(instruction)
	fmt.Fprintf(&b, "\n\nUser Question: %s\n\nYour Response:", query)

	return b.String()
}

// formatRupiah renders an amount with thousands separators, e.g. 150000 ->
// "150,000".
func formatRupiah(amount int) string {
	s := fmt.Sprintf("%d", amount)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
