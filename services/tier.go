package services

// Tier names in ascending order. Thresholds are inclusive lower bounds;
// everything from 3000 up is Legend.
const (
	TierBronze   = "Bronze"
	TierSilver   = "Silver"
	TierGold     = "Gold"
	TierPlatinum = "Platinum"
	TierDiamond  = "Diamond"
	TierMaster   = "Master"
	TierLegend   = "Legend"
)

type tierThreshold struct {
	Name      string
	MinPoints int
}

// Ordered lowest to highest.
var tierThresholds = []tierThreshold{
	{TierBronze, 0},
	{TierSilver, 500},
	{TierGold, 1000},
	{TierPlatinum, 1500},
	{TierDiamond, 2000},
	{TierMaster, 2500},
	{TierLegend, 3000},
}

// ClassifyTier maps ranked points to a tier name. Deterministic and total:
// negative input clamps to Bronze.
func ClassifyTier(rankedPoints int) string {
	tier := TierBronze
	for _, t := range tierThresholds {
		if rankedPoints >= t.MinPoints {
			tier = t.Name
		}
	}
	return tier
}

// TierRank returns the ordinal of a tier name (Bronze=0 … Legend=6), or -1
// for an unknown name. Used for ordering and filter validation.
func TierRank(name string) int {
	for i, t := range tierThresholds {
		if t.Name == name {
			return i
		}
	}
	return -1
}

// TierNames lists all tiers lowest first.
func TierNames() []string {
	names := make([]string, len(tierThresholds))
	for i, t := range tierThresholds {
		names[i] = t.Name
	}
	return names
}
