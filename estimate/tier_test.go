package estimate

import "testing"

func TestTier_WidthAndString(t *testing.T) {
	tests := []struct {
		tier  Tier
		width int
		name  string
	}{
		{TierScalar, 1, "scalar"},
		{TierNarrow, 4, "avx2"},
		{TierWide, 8, "avx512"},
		{Tier(7), 1, "Tier(7)"},
	}
	for _, tt := range tests {
		if got := tt.tier.Width(); got != tt.width {
			t.Errorf("%s.Width() = %d, want %d", tt.name, got, tt.width)
		}
		if got := tt.tier.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
	}
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		in   string
		want Tier
	}{
		{"scalar", TierScalar},
		{"generic", TierScalar},
		{"AVX2", TierNarrow},
		{"narrow", TierNarrow},
		{" avx512 ", TierWide},
		{"avx-512", TierWide},
		{"wide", TierWide},
	}
	for _, tt := range tests {
		got, err := ParseTier(tt.in)
		if err != nil {
			t.Fatalf("ParseTier(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseTier(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseTier("neon"); err == nil {
		t.Fatal("expected error for unknown tier")
	}
}

func TestSelect_NeverAboveRequested(t *testing.T) {
	for _, tier := range allTiers {
		if got := Select(tier).Tier(); got > tier {
			t.Errorf("Select(%s) runs %s", tier, got)
		}
	}
	if got := Select(TierScalar).Name(); got != "generic" {
		t.Errorf("Select(TierScalar).Name() = %q, want generic", got)
	}
}

func TestBest_IsActiveTier(t *testing.T) {
	if got := Best().Tier(); got != ActiveTier() {
		t.Fatalf("Best().Tier() = %s, ActiveTier() = %s", got, ActiveTier())
	}
}

func TestCategory_String(t *testing.T) {
	names := map[Category]string{
		CategoryDirect:          "direct",
		CategoryLabor:           "labor",
		CategoryMachineOperator: "machine operator",
		CategoryMaterial:        "material",
		CategoryMachine:         "machine",
		Category(9):             "unknown",
	}
	for c, want := range names {
		if got := c.String(); got != want {
			t.Errorf("Category(%d).String() = %q, want %q", int(c), got, want)
		}
	}
}
