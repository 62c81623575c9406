package governance

import "testing"

func TestTierForYield_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		yield float64
		want  string
	}{
		{"well below floor", 0, "bronze"},
		{"just below bronze threshold", 39.99, "bronze"},
		{"bronze threshold", 40.0, "bronze"},
		{"just below silver", 59.99, "bronze"},
		{"silver threshold", 60.0, "silver"},
		{"gold threshold", 80.0, "gold"},
		{"just below platinum", 94.99, "gold"},
		{"platinum threshold", 95.0, "platinum"},
		{"above 100", 200, "platinum"},
		{"negative yield still floors to bronze", -10, "bronze"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TierForYield(tt.yield)
			if got.Name != tt.want {
				t.Errorf("TierForYield(%.2f) = %s, want %s", tt.yield, got.Name, tt.want)
			}
		})
	}
}

func TestTierForYield_Monotonic(t *testing.T) {
	rank := map[string]int{"bronze": 0, "silver": 1, "gold": 2, "platinum": 3}

	prev := -1
	for y := -20.0; y <= 220; y += 0.25 {
		tier := TierForYield(y)
		r, ok := rank[tier.Name]
		if !ok {
			t.Fatalf("TierForYield(%.2f) returned unknown tier %q", y, tier.Name)
		}
		if r < prev {
			t.Fatalf("tier rank decreased at yield %.2f: %s", y, tier.Name)
		}
		prev = r
	}
}

func TestTierForYield_CarriesRewardAndColor(t *testing.T) {
	tier := TierForYield(97)
	if tier.RewardValue <= 0 {
		t.Errorf("platinum reward value = %.2f, want positive", tier.RewardValue)
	}
	if tier.Color == "" {
		t.Error("platinum tier has no display color")
	}
}

func TestTiers_OrderedDescending(t *testing.T) {
	all := Tiers()
	if len(all) != 4 {
		t.Fatalf("Tiers() returned %d tiers, want 4", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].MinYield >= all[i-1].MinYield {
			t.Errorf("tier table not descending at index %d: %.1f >= %.1f",
				i, all[i].MinYield, all[i-1].MinYield)
		}
	}
}
