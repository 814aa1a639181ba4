package usecase

import (
	"strings"
	"testing"

	"github.com/dermalens/backend/internal/domain"
)

func rankedFixture() []domain.RankedProduct {
	return []domain.RankedProduct{
		{Product: domain.Product{
			ID: "1", Name: "Azarine Hydrasoothe Sunscreen Gel SPF 45", Price: 55000,
			Category: "Sunscreen", Description: "Sunscreen gel ultra-light",
			Ingredients: "Hyaluronic Acid", Usage: "Aplikasikan 15 menit sebelum keluar",
			ForConditions: []string{"Kulit Berminyak"},
		}, Score: 0.9},
		{Product: domain.Product{
			ID: "2", Name: "Wardah Aloe Vera Gel", Price: 25000,
			Description: "Gel aloe vera murni",
		}, Score: 0.7},
	}
}

func TestBuildContext(t *testing.T) {
	t.Run("empty candidate list yields empty context", func(t *testing.T) {
		if got := BuildContext(nil, 0, nil); got != "" {
			t.Errorf("BuildContext = %q, want empty", got)
		}
	})

	t.Run("default header without price limit", func(t *testing.T) {
		got := BuildContext(rankedFixture(), 0, nil)
		if !strings.Contains(got, "AVAILABLE PRODUCTS IN OUR STORE") {
			t.Errorf("missing default header: %q", got)
		}
	})

	t.Run("budget header with formatted limit", func(t *testing.T) {
		got := BuildContext(rankedFixture(), 100000, nil)
		if !strings.Contains(got, "PRODUCTS WITHIN BUDGET (<= Rp 100,000)") {
			t.Errorf("missing budget header: %q", got)
		}
	})

	t.Run("detected conditions listed", func(t *testing.T) {
		got := BuildContext(rankedFixture(), 0, []string{"jerawat", "berminyak"})
		if !strings.Contains(got, "User's Concerns: jerawat, berminyak") {
			t.Errorf("missing concerns line: %q", got)
		}
	})

	t.Run("entries mirror input order with all fields", func(t *testing.T) {
		got := BuildContext(rankedFixture(), 0, nil)

		first := strings.Index(got, "1. Azarine Hydrasoothe Sunscreen Gel SPF 45 - Rp 55,000")
		second := strings.Index(got, "2. Wardah Aloe Vera Gel - Rp 25,000")
		if first == -1 || second == -1 || second < first {
			t.Fatalf("entries missing or out of order:\n%s", got)
		}

		for _, want := range []string{
			"Category: Sunscreen",
			"Best For: Kulit Berminyak",
			"Description: Sunscreen gel ultra-light",
			"Key Ingredients: Hyaluronic Acid",
			"Usage: Aplikasikan 15 menit sebelum keluar",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("missing %q in context", want)
			}
		}
	})

	t.Run("optional fields omitted and category defaults", func(t *testing.T) {
		got := BuildContext(rankedFixture()[1:], 0, nil)
		if !strings.Contains(got, "Category: General") {
			t.Errorf("missing default category: %q", got)
		}
		if strings.Contains(got, "Key Ingredients:") || strings.Contains(got, "Usage:") ||
			strings.Contains(got, "Best For:") {
			t.Errorf("optional clauses rendered for absent fields: %q", got)
		}
	})
}

func TestBuildPrompt(t *testing.T) {
	got := BuildPrompt("apa itu jerawat?", "PRODUCT CONTEXT HERE", "\n\nIMPORTANT: test instruction")

	for _, want := range []string{
		"expert skincare consultant",
		"KNOWLEDGE BASE:",
		"PRODUCT CONTEXT HERE",
		"IMPORTANT: test instruction",
		"User Question: apa itu jerawat?",
		"Your Response:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{55000, "55,000"},
		{150000, "150,000"},
		{2000000, "2,000,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := formatRupiah(tt.in); got != tt.want {
			t.Errorf("formatRupiah(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
