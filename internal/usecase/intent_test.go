package usecase

import "testing"

func TestClassifyIntent(t *testing.T) {
	t.Run("medical info query", func(t *testing.T) {
		intent := ClassifyIntent("Apa itu jerawat?")
		if !intent.MedicalInfo {
			t.Error("MedicalInfo = false, want true")
		}
		if !intent.MedicalOnly() {
			t.Error("MedicalOnly() = false, want true")
		}
	})

	t.Run("product search query", func(t *testing.T) {
		intent := ClassifyIntent("rekomendasi sunscreen untuk kulit berminyak")
		if !intent.ProductSearch {
			t.Error("ProductSearch = false, want true")
		}
		if intent.MedicalInfo {
			t.Error("MedicalInfo = true, want false")
		}
	})

	t.Run("medical plus product search is not medical only", func(t *testing.T) {
		intent := ClassifyIntent("apa itu acne dan produk apa yang cocok?")
		if !intent.MedicalInfo || !intent.ProductSearch {
			t.Fatalf("intent = %+v, want both MedicalInfo and ProductSearch", intent)
		}
		if intent.MedicalOnly() {
			t.Error("MedicalOnly() = true, want false")
		}
	})

	t.Run("price query in both languages", func(t *testing.T) {
		for _, q := range []string{
			"sunscreen murah dong",
			"any cheap moisturizer under 100k",
			"rekomendasi sunscreen di bawah 50000",
		} {
			if intent := ClassifyIntent(q); !intent.PriceQuery {
				t.Errorf("ClassifyIntent(%q).PriceQuery = false, want true", q)
			}
		}
	})

	t.Run("comparison and routine flags", func(t *testing.T) {
		if intent := ClassifyIntent("bagusan effaclar atau somethinc?"); !intent.Comparison {
			t.Error("Comparison = false, want true")
		}
		if intent := ClassifyIntent("urutan skincare routine pagi gimana?"); !intent.Routine {
			t.Error("Routine = false, want true")
		}
	})

	t.Run("ingredient flag", func(t *testing.T) {
		if intent := ClassifyIntent("serum yang mengandung niacinamide"); !intent.Ingredient {
			t.Error("Ingredient = false, want true")
		}
	})

	t.Run("no trigger sets no flags", func(t *testing.T) {
		intent := ClassifyIntent("halo")
		if intent != (ClassifyIntent("halo")) {
			t.Fatal("classification not deterministic")
		}
		if intent.MedicalInfo || intent.ProductSearch || intent.PriceQuery ||
			intent.Comparison || intent.Routine || intent.Ingredient {
			t.Errorf("intent = %+v, want all false", intent)
		}
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		if intent := ClassifyIntent("REKOMENDASI SUNSCREEN"); !intent.ProductSearch {
			t.Error("ProductSearch = false for uppercase query, want true")
		}
	})
}
