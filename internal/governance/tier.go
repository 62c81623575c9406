package governance

import "github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/model"

// Reward tiers ordered highest threshold first. Bronze doubles as the
// floor tier: a yield below 40 still resolves to bronze, never to an
// unranked state.
var tiers = []model.Tier{
	{Name: "platinum", MinYield: 95, RewardValue: 1000, Color: "#E5E4E2"},
	{Name: "gold", MinYield: 80, RewardValue: 500, Color: "#FFD700"},
	{Name: "silver", MinYield: 60, RewardValue: 250, Color: "#C0C0C0"},
	{Name: "bronze", MinYield: 40, RewardValue: 100, Color: "#CD7F32"},
}

// TierForYield classifies a yield percentage into a reward tier.
// Monotonic: a higher yield never produces a lower tier. Never errors;
// yields above 100 still resolve to platinum.
func TierForYield(yieldPercent float64) model.Tier {
	for _, t := range tiers {
		if yieldPercent >= t.MinYield {
			return t
		}
	}
	return tiers[len(tiers)-1]
}

// Tiers returns the tier table ordered highest threshold first.
func Tiers() []model.Tier {
	out := make([]model.Tier, len(tiers))
	copy(out, tiers)
	return out
}
