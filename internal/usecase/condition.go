package usecase

import "strings"

// conditionRule maps a canonical skin-condition tag to its trigger
// substrings. Tags double as filter terms against product for-conditions
// labels, so they stay lowercase Indonesian like the catalog data.
type conditionRule struct {
	tag      string
	triggers []string
}

var conditionRules = []conditionRule{
	{"jerawat", []string{"jerawat", "acne", "breakout", "pimple", "komedo", "blackhead", "whitehead"}},
	{"kering", []string{"kering", "dry", "dehidrasi", "dehydrated", "flaky", "bersisik"}},
	{"berminyak", []string{"berminyak", "oily", "greasy", "kilang", "shiny"}},
	{"sensitif", []string{"sensitif", "sensitive", "iritasi", "irritated", "kemerahan", "redness"}},
	{"kusam", []string{"kusam", "dull", "tidak cerah", "gelap", "dark"}},
	{"aging", []string{"aging", "keriput", "wrinkle", "fine line", "garis halus", "kendur", "sagging"}},
	{"hiperpigmentasi", []string{"flek", "dark spot", "hiperpigmentasi", "bekas", "scar", "melasma"}},
	{"pori", []string{"pori", "pore", "large pore", "pori besar"}},
}

// ExtractConditions returns the canonical condition tags whose triggers
// occur in the query. An empty result means "no filter", never "exclude
// everything".
func ExtractConditions(query string) []string {
	lower := strings.ToLower(query)

	var conditions []string
	for _, rule := range conditionRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				conditions = append(conditions, rule.tag)
				break
			}
		}
	}
	return conditions
}
