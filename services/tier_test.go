package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTier(t *testing.T) {
	cases := []struct {
		points int
		want   string
	}{
		{-100, TierBronze},
		{0, TierBronze},
		{499, TierBronze},
		{500, TierSilver},
		{999, TierSilver},
		{1000, TierGold},
		{1499, TierGold},
		{1500, TierPlatinum},
		{2000, TierDiamond},
		{2500, TierMaster},
		{2999, TierMaster},
		{3000, TierLegend},
		{100000, TierLegend},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ClassifyTier(c.points), "points=%d", c.points)
	}
}

func TestClassifyTierMonotonic(t *testing.T) {
	prev := -1
	for points := 0; points <= 3500; points += 50 {
		rank := TierRank(ClassifyTier(points))
		assert.GreaterOrEqual(t, rank, prev, "tier rank dropped at %d points", points)
		prev = rank
	}
}

func TestTierRank(t *testing.T) {
	assert.Equal(t, 0, TierRank(TierBronze))
	assert.Equal(t, 6, TierRank(TierLegend))
	assert.Equal(t, -1, TierRank("Wood"))
}

func TestTierNames(t *testing.T) {
	names := TierNames()
	assert.Len(t, names, 7)
	assert.Equal(t, TierBronze, names[0])
	assert.Equal(t, TierLegend, names[6])
}
